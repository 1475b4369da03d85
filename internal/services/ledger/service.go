package ledger

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/avendel/pokerledger/internal/dependencies/clock"
	"github.com/avendel/pokerledger/internal/model"
	"github.com/avendel/pokerledger/internal/storage"
)

// Service is the authoritative ledger for one active game. It owns the
// in-memory session aggregate, validates every mutation before applying it,
// and mirrors the aggregate to the local session store after each change.
// The mutex serializes mutations from concurrent HTTP handlers.
type Service struct {
	store  storage.SessionStore
	clock  clock.Clock
	logger *slog.Logger

	mu      sync.Mutex
	session *model.Session
}

// New creates a ledger service, seeding it from the local session slot.
// An unreadable or unparsable slot degrades to an empty session; it never
// fails construction.
func New(ctx context.Context, store storage.SessionStore, clk clock.Clock, logger *slog.Logger) *Service {
	s := &Service{
		store:  store,
		clock:  clk,
		logger: logger,
	}

	session, err := store.LoadSession(ctx)
	switch {
	case err == nil:
		session.Normalize()
		s.session = session
		logger.Info("session restored from local store",
			slog.Int("players", len(session.Players)),
			slog.Int("transactions", len(session.Transactions)),
		)
	case errors.Is(err, model.ErrSessionNotFound):
		s.session = model.EmptySession()
	default:
		logger.Warn("could not load saved session, starting empty",
			slog.String("error", err.Error()),
		)
		s.session = model.EmptySession()
	}

	return s
}

// computeTotalPot derives the pot from the current roster. The pot is never
// mutated independently of this function.
func computeTotalPot(players []model.Player) int {
	total := 0
	for _, p := range players {
		total += p.TotalInvested
	}
	return total
}

// AddPlayer creates a player with an initial buy-in and appends the buy-in
// transaction. Names are unique case-insensitively among active players.
func (s *Service) AddPlayer(ctx context.Context, name string, initialBuyIn int) (*model.Player, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, model.ErrEmptyName
	}
	if initialBuyIn <= 0 {
		return nil, model.ErrInvalidAmount
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.session.Players {
		if strings.EqualFold(p.Name, name) {
			return nil, model.ErrDuplicateName
		}
	}

	player := model.Player{
		ID:            model.PlayerID(uuid.NewString()),
		Name:          name,
		Chips:         initialBuyIn,
		TotalInvested: initialBuyIn,
	}
	s.session.Players = append(s.session.Players, player)
	s.appendTransaction(player.ID, name, model.TransactionBuyIn, initialBuyIn, player.Chips)
	s.session.TotalPot = computeTotalPot(s.session.Players)
	s.persist(ctx)

	s.logger.Info("player added",
		slog.String("player_id", string(player.ID)),
		slog.String("name", name),
		slog.Int("buy_in", initialBuyIn),
		slog.Int("total_pot", s.session.TotalPot),
	)

	return &player, nil
}

// EditPlayerName renames a player and rewrites the name cached on all of
// that player's past transactions.
func (s *Service) EditPlayerName(ctx context.Context, id model.PlayerID, newName string) (*model.Player, error) {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return nil, model.ErrEmptyName
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.session.FindPlayer(id)
	if idx < 0 {
		return nil, model.ErrPlayerNotFound
	}

	s.session.Players[idx].Name = newName
	for i := range s.session.Transactions {
		if s.session.Transactions[i].PlayerID == id {
			s.session.Transactions[i].PlayerName = newName
		}
	}
	s.persist(ctx)

	player := s.session.Players[idx]
	return &player, nil
}

// RemovePlayer drops a player from the active roster. Their transaction
// history is kept and the pot is deliberately not recomputed: money already
// contributed stays in the payout pool.
func (s *Service) RemovePlayer(ctx context.Context, id model.PlayerID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.session.FindPlayer(id)
	if idx < 0 {
		return model.ErrPlayerNotFound
	}

	name := s.session.Players[idx].Name
	s.session.Players = append(s.session.Players[:idx], s.session.Players[idx+1:]...)
	s.persist(ctx)

	s.logger.Info("player removed",
		slog.String("player_id", string(id)),
		slog.String("name", name),
	)

	return nil
}

// PerformTransaction applies a rebuy or cut to a player's stack. A cut is
// bounded by the player's current chips; total invested is clamped at zero.
func (s *Service) PerformTransaction(ctx context.Context, id model.PlayerID, txType model.TransactionType, amount int) (*model.Transaction, error) {
	if txType != model.TransactionRebuy && txType != model.TransactionCut {
		return nil, model.ErrInvalidTransactionType
	}
	if amount <= 0 {
		return nil, model.ErrInvalidAmount
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.session.FindPlayer(id)
	if idx < 0 {
		return nil, model.ErrPlayerNotFound
	}
	player := &s.session.Players[idx]

	switch txType {
	case model.TransactionRebuy:
		player.Chips += amount
		player.TotalInvested += amount
	case model.TransactionCut:
		if amount > player.Chips {
			return nil, model.ErrCutExceedsChips
		}
		player.Chips -= amount
		player.TotalInvested -= amount
		if player.TotalInvested < 0 {
			player.TotalInvested = 0
		}
	}

	tx := s.appendTransaction(player.ID, player.Name, txType, amount, player.Chips)
	s.session.TotalPot = computeTotalPot(s.session.Players)
	s.persist(ctx)

	s.logger.Info("transaction recorded",
		slog.String("player_id", string(id)),
		slog.String("type", string(txType)),
		slog.Int("amount", amount),
		slog.Int("balance_after", player.Chips),
		slog.Int("total_pot", s.session.TotalPot),
	)

	return tx, nil
}

// AdjustPayout applies a post-game correction to a player's chip balance.
// The adjustment may be negative and may push the stack below zero; that is
// reported as a warning, not rejected. Invested totals and the pot are
// untouched: payout corrections never rewrite buy-in history.
func (s *Service) AdjustPayout(ctx context.Context, id model.PlayerID, adjustment int) (*model.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.session.FindPlayer(id)
	if idx < 0 {
		return nil, model.ErrPlayerNotFound
	}
	player := &s.session.Players[idx]

	player.Chips += adjustment
	if player.Chips < 0 {
		s.logger.Warn("payout adjustment left player with negative chips",
			slog.String("player_id", string(id)),
			slog.Int("chips", player.Chips),
		)
	}

	amount := adjustment
	if amount < 0 {
		amount = -amount
	}
	tx := s.appendTransaction(player.ID, player.Name, model.TransactionPayoutAdjustment, amount, player.Chips)
	s.persist(ctx)

	return tx, nil
}

// ResetGame clears players, transactions, and pot. Irreversible for the
// active session; prior state survives only in previously saved snapshots.
func (s *Service) ResetGame(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session = model.EmptySession()
	s.session.TotalPot = computeTotalPot(s.session.Players)
	s.persist(ctx)

	s.logger.Info("game reset")
}

// Session returns a copy of the current aggregate
func (s *Service) Session() *model.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session.Clone()
}

// Replace swaps in a whole new aggregate, e.g. after a remote load
func (s *Service) Replace(ctx context.Context, session *model.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session.Normalize()
	s.session = session.Clone()
	s.persist(ctx)

	s.logger.Info("session replaced",
		slog.Int("players", len(session.Players)),
		slog.Int("transactions", len(session.Transactions)),
	)
}

// appendTransaction records an immutable ledger entry. Caller holds the lock.
func (s *Service) appendTransaction(playerID model.PlayerID, playerName string, txType model.TransactionType, amount, balanceAfter int) *model.Transaction {
	tx := model.Transaction{
		ID:           model.TransactionID(uuid.NewString()),
		PlayerID:     playerID,
		PlayerName:   playerName,
		Type:         txType,
		Amount:       amount,
		BalanceAfter: balanceAfter,
		Timestamp:    s.clock.Now(),
	}
	s.session.Transactions = append(s.session.Transactions, tx)
	return &tx
}

// persist mirrors the aggregate to the local store. A write failure is
// surfaced in the log but never rolls back the in-memory state. Caller
// holds the lock.
func (s *Service) persist(ctx context.Context) {
	if err := s.store.SaveSession(ctx, s.session); err != nil {
		s.logger.Warn("failed to mirror session to local store",
			slog.String("error", err.Error()),
		)
	}
}

// ServiceInterface is the ledger surface consumed by handlers and the
// sync service
type ServiceInterface interface {
	AddPlayer(ctx context.Context, name string, initialBuyIn int) (*model.Player, error)
	EditPlayerName(ctx context.Context, id model.PlayerID, newName string) (*model.Player, error)
	RemovePlayer(ctx context.Context, id model.PlayerID) error
	PerformTransaction(ctx context.Context, id model.PlayerID, txType model.TransactionType, amount int) (*model.Transaction, error)
	AdjustPayout(ctx context.Context, id model.PlayerID, adjustment int) (*model.Transaction, error)
	ResetGame(ctx context.Context)
	Session() *model.Session
	Replace(ctx context.Context, session *model.Session)
}

var _ ServiceInterface = (*Service)(nil)

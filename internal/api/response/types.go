package response

import (
	"time"

	"github.com/avendel/pokerledger/internal/model"
	"github.com/avendel/pokerledger/internal/services/stats"
)

// Player represents a player in API responses
type Player struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Chips         int    `json:"chips"`
	TotalInvested int    `json:"total_invested"`
}

// PlayerFromModel converts a model.Player to a response Player
func PlayerFromModel(p *model.Player) Player {
	return Player{
		ID:            string(p.ID),
		Name:          p.Name,
		Chips:         p.Chips,
		TotalInvested: p.TotalInvested,
	}
}

// Transaction represents a ledger transaction in API responses
type Transaction struct {
	ID           string    `json:"id"`
	PlayerID     string    `json:"player_id"`
	PlayerName   string    `json:"player_name"`
	Type         string    `json:"type"`
	Amount       int       `json:"amount"`
	BalanceAfter int       `json:"balance_after"`
	Timestamp    time.Time `json:"timestamp"`
}

// TransactionFromModel converts a model.Transaction
func TransactionFromModel(t *model.Transaction) Transaction {
	return Transaction{
		ID:           string(t.ID),
		PlayerID:     string(t.PlayerID),
		PlayerName:   t.PlayerName,
		Type:         string(t.Type),
		Amount:       t.Amount,
		BalanceAfter: t.BalanceAfter,
		Timestamp:    t.Timestamp,
	}
}

// Session represents the full session aggregate in API responses
type Session struct {
	Players      []Player      `json:"players"`
	Transactions []Transaction `json:"transactions"`
	TotalPot     int           `json:"total_pot"`
}

// SessionFromModel converts a model.Session
func SessionFromModel(s *model.Session) Session {
	players := make([]Player, len(s.Players))
	for i := range s.Players {
		players[i] = PlayerFromModel(&s.Players[i])
	}
	transactions := make([]Transaction, len(s.Transactions))
	for i := range s.Transactions {
		transactions[i] = TransactionFromModel(&s.Transactions[i])
	}
	return Session{
		Players:      players,
		Transactions: transactions,
		TotalPot:     s.TotalPot,
	}
}

// SyncResult is the response for a remote save or load
type SyncResult struct {
	Session  Session   `json:"session"`
	SyncedAt time.Time `json:"synced_at"`
}

// SyncResultFromDocument converts a model.SessionDocument
func SyncResultFromDocument(doc *model.SessionDocument) SyncResult {
	return SyncResult{
		Session:  SessionFromModel(&doc.Session),
		SyncedAt: doc.SyncedAt,
	}
}

// SnapshotSummary is a lightweight listing entry for a saved snapshot
type SnapshotSummary struct {
	ID       string    `json:"id"`
	Players  int       `json:"players"`
	TotalPot int       `json:"total_pot"`
	SavedAt  time.Time `json:"saved_at"`
}

// SnapshotSummaryFromModel converts a model.Snapshot
func SnapshotSummaryFromModel(s *model.Snapshot) SnapshotSummary {
	return SnapshotSummary{
		ID:       string(s.ID),
		Players:  len(s.Players),
		TotalPot: s.TotalPot,
		SavedAt:  s.SavedAt,
	}
}

// PlayerNet is one player's net result within a single game
type PlayerNet struct {
	PlayerName string  `json:"player_name"`
	NetValue   float64 `json:"net_value"`
}

// PlayerNetFromStat converts a stats.PlayerNet
func PlayerNetFromStat(n stats.PlayerNet) PlayerNet {
	return PlayerNet{
		PlayerName: n.PlayerName,
		NetValue:   n.NetValue,
	}
}

// LifetimeStat is one player's accumulated result across all games
type LifetimeStat struct {
	PlayerName            string  `json:"player_name"`
	GamesPlayed           int     `json:"games_played"`
	TotalNetValueAllGames float64 `json:"total_net_value_all_games"`
}

// LifetimeStatFromStat converts a stats.LifetimeStat
func LifetimeStatFromStat(s stats.LifetimeStat) LifetimeStat {
	return LifetimeStat{
		PlayerName:            s.PlayerName,
		GamesPlayed:           s.GamesPlayed,
		TotalNetValueAllGames: s.TotalNetValueAllGames,
	}
}

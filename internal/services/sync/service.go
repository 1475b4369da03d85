package sync

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/avendel/pokerledger/internal/dependencies/clock"
	"github.com/avendel/pokerledger/internal/model"
	"github.com/avendel/pokerledger/internal/services/ledger"
	"github.com/avendel/pokerledger/internal/storage"
)

// Errors
var (
	// ErrRemoteUnavailable means no remote store is configured; remote
	// operations check this first and never attempt the call
	ErrRemoteUnavailable = errors.New("remote store is not configured")

	// ErrSyncInProgress means another remote operation is still running.
	// Only one remote operation may be in flight at a time.
	ErrSyncInProgress = errors.New("a sync operation is already in progress")

	// ErrNothingToLoad means the remote document has never been written
	ErrNothingToLoad = errors.New("no remote session to load")
)

// Service mirrors the ledger aggregate to the remote document store: the
// fixed current-session document plus the historical snapshot collection.
// The remote document is shared across clients with no concurrency check;
// the last writer wins.
type Service struct {
	ledger ledger.ServiceInterface
	remote storage.SnapshotStore // nil when unconfigured
	clock  clock.Clock
	logger *slog.Logger

	inFlight atomic.Bool
}

// New creates a sync service. remote may be nil, in which case every remote
// operation fails with ErrRemoteUnavailable.
func New(ledgerService ledger.ServiceInterface, remote storage.SnapshotStore, clk clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		ledger: ledgerService,
		remote: remote,
		clock:  clk,
		logger: logger,
	}
}

// InFlight reports whether a remote operation is currently running
func (s *Service) InFlight() bool {
	return s.inFlight.Load()
}

// acquire claims the single in-flight slot
func (s *Service) acquire() error {
	if s.remote == nil {
		return ErrRemoteUnavailable
	}
	if !s.inFlight.CompareAndSwap(false, true) {
		return ErrSyncInProgress
	}
	return nil
}

// Save overwrites the fixed remote document with the full current aggregate
// and a server-assigned sync instant.
func (s *Service) Save(ctx context.Context) (*model.SessionDocument, error) {
	if err := s.acquire(); err != nil {
		return nil, err
	}
	defer s.inFlight.Store(false)

	doc := &model.SessionDocument{
		Session:  *s.ledger.Session(),
		SyncedAt: s.clock.Now(),
	}

	if err := s.remote.SaveCurrent(ctx, doc); err != nil {
		s.logger.Error("remote save failed", slog.String("error", err.Error()))
		return nil, err
	}

	s.logger.Info("session synced to remote",
		slog.Int("players", len(doc.Players)),
		slog.Time("synced_at", doc.SyncedAt),
	)

	return doc, nil
}

// Load reads the fixed remote document and, if present, replaces the entire
// in-memory aggregate with its contents. An absent document leaves current
// state untouched and reports ErrNothingToLoad.
func (s *Service) Load(ctx context.Context) (*model.SessionDocument, error) {
	if err := s.acquire(); err != nil {
		return nil, err
	}
	defer s.inFlight.Store(false)

	doc, err := s.remote.LoadCurrent(ctx)
	if err != nil {
		if errors.Is(err, model.ErrSessionNotFound) {
			return nil, ErrNothingToLoad
		}
		s.logger.Error("remote load failed", slog.String("error", err.Error()))
		return nil, err
	}

	doc.Normalize()
	s.ledger.Replace(ctx, &doc.Session)

	s.logger.Info("session loaded from remote",
		slog.Int("players", len(doc.Players)),
		slog.Time("synced_at", doc.SyncedAt),
	)

	return doc, nil
}

// SaveSnapshot writes an immutable historical copy of the current aggregate
// to the snapshot collection.
func (s *Service) SaveSnapshot(ctx context.Context) (*model.Snapshot, error) {
	if err := s.acquire(); err != nil {
		return nil, err
	}
	defer s.inFlight.Store(false)

	snapshot := model.SnapshotFromSession(
		model.SnapshotID(uuid.NewString()),
		s.ledger.Session(),
		s.clock.Now(),
	)

	if err := s.remote.SaveSnapshot(ctx, snapshot); err != nil {
		s.logger.Error("snapshot save failed", slog.String("error", err.Error()))
		return nil, err
	}

	s.logger.Info("snapshot saved",
		slog.String("snapshot_id", string(snapshot.ID)),
		slog.Int("players", len(snapshot.Players)),
	)

	return snapshot, nil
}

// Snapshots lists all saved snapshots, newest first
func (s *Service) Snapshots(ctx context.Context) ([]*model.Snapshot, error) {
	if s.remote == nil {
		return nil, ErrRemoteUnavailable
	}
	return s.remote.ListSnapshots(ctx)
}

// Snapshot returns one snapshot by id
func (s *Service) Snapshot(ctx context.Context, id model.SnapshotID) (*model.Snapshot, error) {
	if s.remote == nil {
		return nil, ErrRemoteUnavailable
	}
	return s.remote.GetSnapshot(ctx, id)
}

package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/avendel/pokerledger/internal/model"
	"github.com/avendel/pokerledger/internal/storage"
)

// Storage is an in-memory implementation of both storage interfaces,
// used as the default backend and in tests
type Storage struct {
	mu sync.RWMutex

	session   *model.Session
	current   *model.SessionDocument
	snapshots map[model.SnapshotID]*model.Snapshot
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		snapshots: make(map[model.SnapshotID]*model.Snapshot),
	}
}

// Ensure Storage implements both interfaces
var (
	_ storage.SessionStore  = (*Storage)(nil)
	_ storage.SnapshotStore = (*Storage)(nil)
)

// Session slot

func (s *Storage) SaveSession(ctx context.Context, session *model.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = session.Clone()
	return nil
}

func (s *Storage) LoadSession(ctx context.Context) (*model.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.session == nil {
		return nil, model.ErrSessionNotFound
	}
	return s.session.Clone(), nil
}

func (s *Storage) ClearSession(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = nil
	return nil
}

// Current remote document

func (s *Storage) SaveCurrent(ctx context.Context, doc *model.SessionDocument) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cloned := *doc
	cloned.Session = *doc.Session.Clone()
	s.current = &cloned
	return nil
}

func (s *Storage) LoadCurrent(ctx context.Context) (*model.SessionDocument, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil, model.ErrSessionNotFound
	}
	cloned := *s.current
	cloned.Session = *s.current.Session.Clone()
	return &cloned, nil
}

// Snapshot collection

func (s *Storage) SaveSnapshot(ctx context.Context, snapshot *model.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshots[snapshot.ID] = snapshot.Clone()
	return nil
}

func (s *Storage) GetSnapshot(ctx context.Context, id model.SnapshotID) (*model.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snapshot, ok := s.snapshots[id]
	if !ok {
		return nil, model.ErrSnapshotNotFound
	}
	return snapshot.Clone(), nil
}

func (s *Storage) ListSnapshots(ctx context.Context) ([]*model.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*model.Snapshot, 0, len(s.snapshots))
	for _, snapshot := range s.snapshots {
		out = append(out, snapshot.Clone())
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].SavedAt.After(out[j].SavedAt)
	})
	return out, nil
}

package storage

import (
	"context"

	"github.com/avendel/pokerledger/internal/model"
)

// SessionStore is the local mirror: a single fixed slot holding the active
// session aggregate. Writes happen after every ledger mutation, so
// implementations should be cheap and synchronous.
type SessionStore interface {
	// SaveSession overwrites the slot with the given aggregate
	SaveSession(ctx context.Context, session *model.Session) error

	// LoadSession returns the stored aggregate, or model.ErrSessionNotFound
	// if the slot is empty
	LoadSession(ctx context.Context) (*model.Session, error)

	// ClearSession empties the slot
	ClearSession(ctx context.Context) error
}

// SnapshotStore is the remote document store: a fixed current-session
// document plus an append-style collection of historical snapshots.
// The current document has no optimistic-concurrency check; the last
// writer wins.
type SnapshotStore interface {
	// SaveCurrent fully overwrites the fixed session document
	SaveCurrent(ctx context.Context, doc *model.SessionDocument) error

	// LoadCurrent returns the fixed session document, or
	// model.ErrSessionNotFound if it has never been written
	LoadCurrent(ctx context.Context) (*model.SessionDocument, error)

	// SaveSnapshot writes a historical snapshot under its own id
	SaveSnapshot(ctx context.Context, snapshot *model.Snapshot) error

	// GetSnapshot returns a snapshot by id, or model.ErrSnapshotNotFound
	GetSnapshot(ctx context.Context, id model.SnapshotID) (*model.Snapshot, error)

	// ListSnapshots returns all saved snapshots, newest first
	ListSnapshots(ctx context.Context) ([]*model.Snapshot, error)
}

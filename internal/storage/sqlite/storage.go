package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/avendel/pokerledger/internal/model"
	"github.com/avendel/pokerledger/internal/storage"
)

// The active session lives in a single fixed row: the table is a durable
// key-value slot, not a relational model of the ledger.
const (
	createSessionTableSQL = `
	CREATE TABLE IF NOT EXISTS session_slot (
		slot TEXT PRIMARY KEY,
		data TEXT NOT NULL,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`

	sessionSlotKey = "current"
)

// Storage is a SQLite-backed implementation of the local session store
type Storage struct {
	db *sql.DB
}

// New opens (creating if needed) a SQLite database at the given path
func New(dbPath string) (*Storage, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("creating database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.Exec(createSessionTableSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating session table: %w", err)
	}

	return &Storage{db: db}, nil
}

// Close closes the underlying database
func (s *Storage) Close() error {
	return s.db.Close()
}

// Ensure Storage implements the interface
var _ storage.SessionStore = (*Storage)(nil)

func (s *Storage) SaveSession(ctx context.Context, session *model.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encoding session: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO session_slot (slot, data, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(slot) DO UPDATE SET data = excluded.data, updated_at = CURRENT_TIMESTAMP`,
		sessionSlotKey, string(data),
	)
	if err != nil {
		return fmt.Errorf("writing session slot: %w", err)
	}
	return nil
}

func (s *Storage) LoadSession(ctx context.Context) (*model.Session, error) {
	var data string
	err := s.db.QueryRowContext(ctx,
		`SELECT data FROM session_slot WHERE slot = ?`, sessionSlotKey,
	).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("reading session slot: %w", err)
	}

	var session model.Session
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("decoding session: %w", err)
	}
	session.Normalize()
	return &session, nil
}

func (s *Storage) ClearSession(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM session_slot WHERE slot = ?`, sessionSlotKey,
	)
	if err != nil {
		return fmt.Errorf("clearing session slot: %w", err)
	}
	return nil
}

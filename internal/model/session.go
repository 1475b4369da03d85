package model

import "time"

// Session is the authoritative aggregate for one active game: the roster,
// the full transaction history, and the derived pot total. It is the unit
// persisted to the local mirror and the remote document.
type Session struct {
	Players      []Player      `json:"players"`
	Transactions []Transaction `json:"transactions"`
	TotalPot     int           `json:"totalPot"`
}

// EmptySession returns a fresh session with non-nil slices
func EmptySession() *Session {
	return &Session{
		Players:      []Player{},
		Transactions: []Transaction{},
	}
}

// Normalize defaults nil slices to empty ones. Persisted documents are not
// schema-checked at write time, so decoded sessions may be missing fields.
func (s *Session) Normalize() {
	if s.Players == nil {
		s.Players = []Player{}
	}
	if s.Transactions == nil {
		s.Transactions = []Transaction{}
	}
}

// Clone returns a deep copy of the session
func (s *Session) Clone() *Session {
	out := &Session{
		Players:      make([]Player, len(s.Players)),
		Transactions: make([]Transaction, len(s.Transactions)),
		TotalPot:     s.TotalPot,
	}
	copy(out.Players, s.Players)
	copy(out.Transactions, s.Transactions)
	return out
}

// FindPlayer returns the index of the player with the given id, or -1
func (s *Session) FindPlayer(id PlayerID) int {
	for i := range s.Players {
		if s.Players[i].ID == id {
			return i
		}
	}
	return -1
}

// SessionDocument is the shape of the fixed remote session document:
// the full aggregate plus the server-assigned sync instant.
type SessionDocument struct {
	Session
	SyncedAt time.Time `json:"syncedAt"`
}

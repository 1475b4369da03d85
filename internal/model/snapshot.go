package model

import "time"

// SnapshotID uniquely identifies a saved game snapshot
type SnapshotID string

// SnapshotPlayer is a player record inside a historical snapshot. Historical
// documents predate current field conventions, so the numeric fields are kept
// loosely typed and resolved defensively by the statistics aggregator.
// Name stays `any` for the same reason: malformed entries are skipped there,
// not rejected.
type SnapshotPlayer struct {
	ID                     string `json:"id,omitempty"`
	Name                   any    `json:"name"`
	Chips                  any    `json:"chips,omitempty"`
	TotalInvested          any    `json:"totalInvested,omitempty"`
	FinalChips             any    `json:"finalChips,omitempty"`
	NetValueFromFinalChips any    `json:"netValueFromFinalChips,omitempty"`
}

// Snapshot is an immutable point-in-time copy of a session aggregate saved
// to the remote snapshot collection. Many snapshots accumulate over time,
// each independently addressable.
type Snapshot struct {
	ID            SnapshotID       `json:"id"`
	Players       []SnapshotPlayer `json:"players"`
	Transactions  []Transaction    `json:"transactions"`
	TotalPot      int              `json:"totalPot"`
	SavedAt       time.Time        `json:"savedAt"`
	LastUpdatedAt *time.Time       `json:"lastUpdatedAt,omitempty"`
}

// Normalize defaults nil slices to empty ones
func (s *Snapshot) Normalize() {
	if s.Players == nil {
		s.Players = []SnapshotPlayer{}
	}
	if s.Transactions == nil {
		s.Transactions = []Transaction{}
	}
}

// Clone returns a deep copy of the snapshot
func (s *Snapshot) Clone() *Snapshot {
	out := &Snapshot{
		ID:           s.ID,
		Players:      make([]SnapshotPlayer, len(s.Players)),
		Transactions: make([]Transaction, len(s.Transactions)),
		TotalPot:     s.TotalPot,
		SavedAt:      s.SavedAt,
	}
	copy(out.Players, s.Players)
	copy(out.Transactions, s.Transactions)
	if s.LastUpdatedAt != nil {
		t := *s.LastUpdatedAt
		out.LastUpdatedAt = &t
	}
	return out
}

// SnapshotFromSession builds a snapshot of the given session
func SnapshotFromSession(id SnapshotID, session *Session, savedAt time.Time) *Snapshot {
	players := make([]SnapshotPlayer, len(session.Players))
	for i, p := range session.Players {
		players[i] = SnapshotPlayer{
			ID:            string(p.ID),
			Name:          p.Name,
			Chips:         p.Chips,
			TotalInvested: p.TotalInvested,
		}
	}
	transactions := make([]Transaction, len(session.Transactions))
	copy(transactions, session.Transactions)

	return &Snapshot{
		ID:           id,
		Players:      players,
		Transactions: transactions,
		TotalPot:     session.TotalPot,
		SavedAt:      savedAt,
	}
}

package model

// PlayerID uniquely identifies a player within a session
type PlayerID string

// Player represents a participant in the active session.
// Chips is the current stack; TotalInvested is the cumulative net buy-in,
// clamped at zero (a cut can never push it negative).
type Player struct {
	ID            PlayerID `json:"id"`
	Name          string   `json:"name"`
	Chips         int      `json:"chips"`
	TotalInvested int      `json:"totalInvested"`
}

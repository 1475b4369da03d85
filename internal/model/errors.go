package model

import "errors"

// Common errors used across the application
var (
	// Validation errors: the operation is rejected and no state changes
	ErrEmptyName              = errors.New("player name must not be empty")
	ErrDuplicateName          = errors.New("a player with that name already exists")
	ErrInvalidAmount          = errors.New("amount must be positive")
	ErrCutExceedsChips        = errors.New("cannot cut more than the player's current chips")
	ErrInvalidTransactionType = errors.New("invalid transaction type")

	// Lookup errors
	ErrPlayerNotFound   = errors.New("player not found")
	ErrSessionNotFound  = errors.New("no saved session")
	ErrSnapshotNotFound = errors.New("snapshot not found")
)

package model

import "time"

// TransactionID uniquely identifies a ledger transaction
type TransactionID string

// TransactionType classifies a ledger transaction
type TransactionType string

const (
	TransactionBuyIn            TransactionType = "buy-in"
	TransactionRebuy            TransactionType = "rebuy"
	TransactionCut              TransactionType = "cut"
	TransactionPayoutAdjustment TransactionType = "payout_adjustment"
)

// Valid reports whether t is one of the known transaction types
func (t TransactionType) Valid() bool {
	switch t {
	case TransactionBuyIn, TransactionRebuy, TransactionCut, TransactionPayoutAdjustment:
		return true
	}
	return false
}

// Transaction is an immutable append-only ledger record. Amount is always
// stored non-negative; the sign is implied by Type. PlayerName is a display
// cache that is rewritten when the player is renamed; PlayerID is the
// authoritative linkage.
type Transaction struct {
	ID           TransactionID   `json:"id"`
	PlayerID     PlayerID        `json:"playerId"`
	PlayerName   string          `json:"playerName"`
	Type         TransactionType `json:"type"`
	Amount       int             `json:"amount"`
	BalanceAfter int             `json:"balanceAfter"`
	Timestamp    time.Time       `json:"timestamp"`
}

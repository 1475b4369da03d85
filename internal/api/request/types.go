package request

// AddPlayerRequest is the request body for adding a player
type AddPlayerRequest struct {
	Name  string `json:"name"`
	BuyIn int    `json:"buy_in"`
}

// RenamePlayerRequest is the request body for renaming a player
type RenamePlayerRequest struct {
	Name string `json:"name"`
}

// TransactionRequest is the request body for a rebuy or cut
type TransactionRequest struct {
	Type   string `json:"type"`
	Amount int    `json:"amount"`
}

// PayoutRequest is the request body for a payout adjustment.
// Adjustment may be negative.
type PayoutRequest struct {
	Adjustment int `json:"adjustment"`
}

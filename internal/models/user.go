package models

import "time"

// User is a ledger participant. Users are created lazily on first reference and never deleted.
// swagger:model User
type User struct {
	ID           string    `json:"id"`           // Opaque user identifier supplied by the caller
	Name         string    `json:"name"`         // Display name
	BalancesEUR  Balances  `json:"balancesEUR"`  // Running balance totals
	Transactions []string  `json:"transactions"` // Owned transaction ids in insertion order
	Investments  []string  `json:"investments"`  // Owned investment ids in insertion order
	CreatedAt    time.Time `json:"createdAt"`    // First reference time
}

// UserSummaryResponse represents a user with the entities referenced by their id lists
// swagger:model UserSummaryResponse
type UserSummaryResponse struct {
	OK           bool           `json:"ok"`
	User         *User          `json:"user"`
	Transactions []*Transaction `json:"transactions"`
	Investments  []*Investment  `json:"investments"`
}

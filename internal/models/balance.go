package models

import "github.com/shopspring/decimal"

// Balance buckets
const (
	BucketMain   = "main"
	BucketProfit = "profit"
)

// Balances holds the EUR-denominated buckets of a user.
// swagger:model Balances
type Balances struct {
	// Spendable funds available for new investments
	// example: 1000
	Main decimal.Decimal `json:"main"`

	// Earnings bucket, reserved for yield logic
	// example: 0
	Profit decimal.Decimal `json:"profit"`
}

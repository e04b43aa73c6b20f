package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Investment statuses
const (
	InvestmentStatusActive  = "active"
	InvestmentStatusMatured = "matured"
	InvestmentStatusClosed  = "closed"
)

// Investment is a position opened from a confirmed transaction.
// swagger:model Investment
type Investment struct {
	ID        string          `json:"id"`        // Unique investment id
	UserID    string          `json:"userId"`    // Owner
	TxID      string          `json:"txId"`      // Source transaction
	PlanID    string          `json:"planId"`    // Investment product
	AmountEUR decimal.Decimal `json:"amountEUR"` // Copied from the source transaction
	Status    string          `json:"status"`    // active
	CreatedAt time.Time       `json:"createdAt"` // Creation time
}

// InvestmentRequest represents the JSON body for opening an investment
// swagger:model InvestmentRequest
type InvestmentRequest struct {
	// Owner of the transaction
	// required: true
	// example: u1
	UserID string `json:"userId"`

	// Confirmed transaction to invest
	// required: true
	TxID string `json:"txId"`

	// Plan identifier
	// required: true
	// example: gold
	PlanID string `json:"planId"`
}

// InvestmentResponse represents a created investment
// swagger:model InvestmentResponse
type InvestmentResponse struct {
	OK  bool        `json:"ok"`
	Inv *Investment `json:"inv"`
}

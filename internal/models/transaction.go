package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction types
const (
	TransactionTypeDeposit = "deposit"
)

// Transaction statuses
const (
	TransactionStatusPending = "pending"
	TransactionStatusSuccess = "success"
	TransactionStatusFailed  = "failed"
)

// Transaction is a deposit made by a user. It is mutated only by confirmation.
// swagger:model Transaction
type Transaction struct {
	ID          string          `json:"id"`                    // Unique transaction id
	UserID      string          `json:"userId"`                // Owner
	Type        string          `json:"type"`                  // deposit
	AmountEUR   decimal.Decimal `json:"amountEUR"`             // Requested amount in EUR
	Method      string          `json:"method"`                // Payment rail, e.g. BTC or BANK
	Status      string          `json:"status"`                // pending or success
	CreatedAt   time.Time       `json:"createdAt"`             // Creation time
	ConfirmedAt *time.Time      `json:"confirmedAt,omitempty"` // Set by the success transition
}

// ConfirmRequest represents the JSON body for confirming a deposit
// swagger:model ConfirmRequest
type ConfirmRequest struct {
	// Transaction id
	// required: true
	// example: 0b6a2c9e-5d3e-4d0e-9c2a-1f9b8f3c7a11
	TxID string `json:"txId"`

	// Fail with state_error when the transaction is no longer pending
	// example: false
	RequirePending bool `json:"requirePending,omitempty"`
}

// ConfirmResponse represents a confirmed deposit
// swagger:model ConfirmResponse
type ConfirmResponse struct {
	OK bool         `json:"ok"`
	Tx *Transaction `json:"tx"`
}

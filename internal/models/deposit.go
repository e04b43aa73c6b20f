package models

import "github.com/shopspring/decimal"

// DepositRequest represents the JSON body for creating a deposit
// swagger:model DepositRequest
type DepositRequest struct {
	// Depositing user, created on first reference
	// required: true
	// example: u1
	UserID string `json:"userId"`

	// Amount to deposit in EUR
	// required: true
	// example: 1000
	AmountEUR decimal.Decimal `json:"amountEUR"`

	// Payment method, BTC when empty
	// example: BANK
	Method string `json:"method,omitempty"`
}

// DepositResponse represents a created deposit with payment instructions
// swagger:model DepositResponse
type DepositResponse struct {
	OK          bool                 `json:"ok"`
	Transaction *Transaction         `json:"transaction"`
	Payment     *PaymentInstructions `json:"payment"`
}

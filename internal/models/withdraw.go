package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Withdraw request statuses
const (
	WithdrawStatusPending  = "pending"
	WithdrawStatusApproved = "approved"
	WithdrawStatusRejected = "rejected"
)

// DefaultWithdrawDestination is used when no destination is given.
const DefaultWithdrawDestination = "not specified"

// WithdrawRequest is a withdrawal awaiting or past admin review.
// swagger:model WithdrawRequest
type WithdrawRequest struct {
	ID         string          `json:"id"`
	UserID     string          `json:"userId"`
	AmountEUR  decimal.Decimal `json:"amountEUR"`
	To         string          `json:"to"`
	Status     string          `json:"status"`
	CreatedAt  time.Time       `json:"createdAt"`
	ApprovedAt *time.Time      `json:"approvedAt,omitempty"`
	RejectedAt *time.Time      `json:"rejectedAt,omitempty"`
}

// WithdrawalRequestBody represents the JSON body for requesting a withdrawal
// swagger:model WithdrawalRequestBody
type WithdrawalRequestBody struct {
	// Requesting user
	// required: true
	// example: u1
	UserID string `json:"userId"`

	// Amount to withdraw
	// required: true
	// example: 500
	AmountEUR decimal.Decimal `json:"amountEUR"`

	// Destination, free-form
	// example: IBAN DE89370400440532013000
	ToAddress string `json:"toAddress,omitempty"`
}

// WithdrawalResponse represents a created withdrawal request
// swagger:model WithdrawalResponse
type WithdrawalResponse struct {
	OK              bool             `json:"ok"`
	WithdrawRequest *WithdrawRequest `json:"withdrawRequest"`
}

// WithdrawListResponse lists withdrawal requests, newest first
// swagger:model WithdrawListResponse
type WithdrawListResponse struct {
	OK        bool               `json:"ok"`
	Withdraws []*WithdrawRequest `json:"withdraws"`
}

// WithdrawDecisionRequest is the optional body of approve/reject calls
// swagger:model WithdrawDecisionRequest
type WithdrawDecisionRequest struct {
	// Fail with state_error when the request is no longer pending
	RequirePending bool `json:"requirePending,omitempty"`
}

// WithdrawDecisionResponse represents an approved or rejected request
// swagger:model WithdrawDecisionResponse
type WithdrawDecisionResponse struct {
	OK bool             `json:"ok"`
	WR *WithdrawRequest `json:"wr"`
}

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Ledger event types
const (
	EventDepositCreated      = "deposit.created"
	EventDepositConfirmed    = "deposit.confirmed"
	EventInvestmentCreated   = "investment.created"
	EventWithdrawalRequested = "withdrawal.requested"
	EventWithdrawalApproved  = "withdrawal.approved"
	EventWithdrawalRejected  = "withdrawal.rejected"
)

// LedgerEvent is published after every committed ledger mutation.
type LedgerEvent struct {
	EventID    string          `json:"event_id"`    // Unique event id
	Type       string          `json:"type"`        // One of the Event* constants
	UserID     string          `json:"user_id"`     // Affected user
	EntityID   string          `json:"entity_id"`   // Transaction, investment or withdraw request id
	AmountEUR  decimal.Decimal `json:"amount_eur"`  // Amount carried by the entity
	Status     string          `json:"status"`      // Entity status after the mutation
	OccurredAt time.Time       `json:"occurred_at"` // Commit time
}

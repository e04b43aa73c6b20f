package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/gw-invest-ledger/internal/logger"
	"github.com/sbilibin2017/gw-invest-ledger/internal/models"
)

// PaymentInstructor builds payment instructions for a stored deposit.
type PaymentInstructor interface {
	Instructions(ctx context.Context, tx *models.Transaction) *models.PaymentInstructions
}

// TransactionService creates and confirms deposits.
type TransactionService struct {
	store    LedgerStore
	ids      IDGenerator
	payments PaymentInstructor
	events   *EventPublisher
	now      func() time.Time
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(
	store LedgerStore,
	ids IDGenerator,
	payments PaymentInstructor,
	events *EventPublisher,
) *TransactionService {
	return &TransactionService{
		store:    store,
		ids:      ids,
		payments: payments,
		events:   events,
		now:      utcNow,
	}
}

// CreateDeposit stores a pending deposit for userID, creating the user on
// first reference, and returns it with payment instructions.
func (s *TransactionService) CreateDeposit(
	ctx context.Context,
	userID string,
	amount decimal.Decimal,
	method string,
) (*models.Transaction, *models.PaymentInstructions, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, nil, NewValidationError("userId is required")
	}
	if !amount.IsPositive() {
		return nil, nil, NewValidationError("amountEUR must be a positive number")
	}
	method = strings.TrimSpace(method)
	if method == "" {
		method = models.DefaultDepositMethod
	}

	id := s.ids.NewID()
	now := s.now()

	var created models.Transaction
	err := s.store.Update(ctx, func(st *models.State) error {
		if _, exists := st.Transactions[id]; exists {
			return fmt.Errorf("transaction id %s already taken", id)
		}
		user, _ := st.GetOrCreateUser(userID, now)
		tx := &models.Transaction{
			ID:        id,
			UserID:    userID,
			Type:      models.TransactionTypeDeposit,
			AmountEUR: amount,
			Method:    method,
			Status:    models.TransactionStatusPending,
			CreatedAt: now,
		}
		st.PutTransaction(tx)
		user.Transactions = append(user.Transactions, tx.ID)
		created = *tx
		return nil
	})
	if err != nil {
		logger.Log.Errorw("failed to create deposit", "user_id", userID, "amount", amount, "method", method, "error", err)
		return nil, nil, err
	}

	logger.Log.Infow("deposit created", "tx_id", created.ID, "user_id", userID, "amount", amount, "method", method)
	s.events.Publish(ctx, models.LedgerEvent{
		Type:       models.EventDepositCreated,
		UserID:     created.UserID,
		EntityID:   created.ID,
		AmountEUR:  created.AmountEUR,
		Status:     created.Status,
		OccurredAt: now,
	})

	payment := s.payments.Instructions(ctx, &created)
	return &created, payment, nil
}

// ConfirmDeposit marks the transaction successful and credits the owner's
// main balance. Without requirePending a repeated confirmation credits again.
func (s *TransactionService) ConfirmDeposit(ctx context.Context, txID string, requirePending bool) (*models.Transaction, error) {
	txID = strings.TrimSpace(txID)
	if txID == "" {
		return nil, NewValidationError("txId is required")
	}

	now := s.now()

	var confirmed models.Transaction
	err := s.store.Update(ctx, func(st *models.State) error {
		tx, ok := st.Transactions[txID]
		if !ok {
			return NewNotFoundError("transaction %s not found", txID)
		}
		if requirePending && tx.Status != models.TransactionStatusPending {
			return NewStateError("transaction %s is already %s", txID, tx.Status)
		}

		tx.Status = models.TransactionStatusSuccess
		confirmedAt := now
		tx.ConfirmedAt = &confirmedAt
		if user, ok := st.Users[tx.UserID]; ok {
			user.BalancesEUR.Main = user.BalancesEUR.Main.Add(tx.AmountEUR)
		}
		confirmed = *tx
		return nil
	})
	if err != nil {
		logger.Log.Errorw("failed to confirm deposit", "tx_id", txID, "error", err)
		return nil, err
	}

	logger.Log.Infow("deposit confirmed", "tx_id", txID, "user_id", confirmed.UserID, "amount", confirmed.AmountEUR)
	s.events.Publish(ctx, models.LedgerEvent{
		Type:       models.EventDepositConfirmed,
		UserID:     confirmed.UserID,
		EntityID:   confirmed.ID,
		AmountEUR:  confirmed.AmountEUR,
		Status:     confirmed.Status,
		OccurredAt: now,
	})
	return &confirmed, nil
}

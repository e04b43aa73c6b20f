package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sbilibin2017/gw-invest-ledger/internal/logger"
	"github.com/sbilibin2017/gw-invest-ledger/internal/models"
)

// InvestmentService converts confirmed deposits into investments.
type InvestmentService struct {
	store  LedgerStore
	ids    IDGenerator
	events *EventPublisher
	now    func() time.Time
}

// NewInvestmentService creates a new InvestmentService.
func NewInvestmentService(store LedgerStore, ids IDGenerator, events *EventPublisher) *InvestmentService {
	return &InvestmentService{
		store:  store,
		ids:    ids,
		events: events,
		now:    utcNow,
	}
}

// CreateInvestment invests the full amount of a confirmed deposit owned by
// userID into planID and debits the main balance by that amount. The debit
// does not check for sufficient funds.
func (s *InvestmentService) CreateInvestment(ctx context.Context, userID, txID, planID string) (*models.Investment, error) {
	userID = strings.TrimSpace(userID)
	txID = strings.TrimSpace(txID)
	planID = strings.TrimSpace(planID)
	if userID == "" || txID == "" || planID == "" {
		return nil, NewValidationError("userId, txId and planId are required")
	}

	id := s.ids.NewID()
	now := s.now()

	var created models.Investment
	err := s.store.Update(ctx, func(st *models.State) error {
		tx, ok := st.Transactions[txID]
		if !ok || tx.UserID != userID {
			return NewMismatchError("transaction not found or mismatch")
		}
		if tx.Status != models.TransactionStatusSuccess {
			return NewStateError("transaction not confirmed")
		}
		if _, exists := st.Investments[id]; exists {
			return fmt.Errorf("investment id %s already taken", id)
		}

		user, _ := st.GetOrCreateUser(userID, now)
		inv := &models.Investment{
			ID:        id,
			UserID:    userID,
			TxID:      txID,
			PlanID:    planID,
			AmountEUR: tx.AmountEUR,
			Status:    models.InvestmentStatusActive,
			CreatedAt: now,
		}
		st.PutInvestment(inv)
		user.Investments = append(user.Investments, inv.ID)
		user.BalancesEUR.Main = user.BalancesEUR.Main.Sub(tx.AmountEUR)
		created = *inv
		return nil
	})
	if err != nil {
		logger.Log.Errorw("failed to create investment", "user_id", userID, "tx_id", txID, "plan_id", planID, "error", err)
		return nil, err
	}

	logger.Log.Infow("investment created", "inv_id", created.ID, "user_id", userID, "plan_id", planID, "amount", created.AmountEUR)
	s.events.Publish(ctx, models.LedgerEvent{
		Type:       models.EventInvestmentCreated,
		UserID:     created.UserID,
		EntityID:   created.ID,
		AmountEUR:  created.AmountEUR,
		Status:     created.Status,
		OccurredAt: now,
	})
	return &created, nil
}

package services

import (
	"context"
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/gw-invest-ledger/internal/logger"
	"github.com/sbilibin2017/gw-invest-ledger/internal/models"
)

// Withdrawal eligibility thresholds.
const (
	MinInvestmentsForWithdrawal   = 5
	MinDistinctPlansForWithdrawal = 5
)

// WithdrawNotAllowedReason explains a failed eligibility check.
const WithdrawNotAllowedReason = "You must have at least 5 investments in different plans before withdrawal."

// Notifier delivers administrative alerts.
type Notifier interface {
	Notify(ctx context.Context, n models.Notification) error
}

// WithdrawService drives withdraw requests from creation to an admin decision.
type WithdrawService struct {
	store         LedgerStore
	ids           IDGenerator
	notifier      Notifier
	events        *EventPublisher
	adminEmail    string
	notifyTimeout time.Duration
	now           func() time.Time
}

// NewWithdrawService creates a new WithdrawService. adminEmail is used when
// the ledger settings carry none; notifier may be nil.
func NewWithdrawService(
	store LedgerStore,
	ids IDGenerator,
	notifier Notifier,
	events *EventPublisher,
	adminEmail string,
	notifyTimeout time.Duration,
) *WithdrawService {
	return &WithdrawService{
		store:         store,
		ids:           ids,
		notifier:      notifier,
		events:        events,
		adminEmail:    adminEmail,
		notifyTimeout: notifyTimeout,
		now:           utcNow,
	}
}

// eligible reports whether the investments satisfy the withdrawal rule.
func eligible(invs []*models.Investment) bool {
	plans := make(map[string]struct{}, len(invs))
	for _, inv := range invs {
		plans[inv.PlanID] = struct{}{}
	}
	return len(invs) >= MinInvestmentsForWithdrawal && len(plans) >= MinDistinctPlansForWithdrawal
}

// RequestWithdrawal creates a pending withdraw request for an eligible user
// and alerts the administrator. Alert failures are logged, not returned.
func (s *WithdrawService) RequestWithdrawal(
	ctx context.Context,
	userID string,
	amount decimal.Decimal,
	to string,
) (*models.WithdrawRequest, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, NewValidationError("userId is required")
	}
	if !amount.IsPositive() {
		return nil, NewValidationError("amountEUR must be a positive number")
	}
	to = strings.TrimSpace(to)
	if to == "" {
		to = models.DefaultWithdrawDestination
	}

	id := s.ids.NewID()
	now := s.now()

	var (
		created    models.WithdrawRequest
		adminEmail string
	)
	err := s.store.Update(ctx, func(st *models.State) error {
		user, ok := st.Users[userID]
		if !ok {
			return NewNotFoundError("user %s not found", userID)
		}
		if !eligible(st.UserInvestments(user)) {
			return NewWithdrawNotAllowedError(WithdrawNotAllowedReason)
		}
		if _, exists := st.WithdrawRequests[id]; exists {
			return fmt.Errorf("withdraw request id %s already taken", id)
		}

		wr := &models.WithdrawRequest{
			ID:        id,
			UserID:    userID,
			AmountEUR: amount,
			To:        to,
			Status:    models.WithdrawStatusPending,
			CreatedAt: now,
		}
		st.PutWithdrawRequest(wr)
		created = *wr
		adminEmail = st.Settings.AdminEmail
		return nil
	})
	if err != nil {
		logger.Log.Errorw("failed to request withdrawal", "user_id", userID, "amount", amount, "error", err)
		return nil, err
	}

	logger.Log.Infow("withdrawal requested", "wr_id", created.ID, "user_id", userID, "amount", amount, "to", to)
	if adminEmail == "" {
		adminEmail = s.adminEmail
	}
	s.notifyAdmin(ctx, adminEmail, &created)
	s.events.Publish(ctx, models.LedgerEvent{
		Type:       models.EventWithdrawalRequested,
		UserID:     created.UserID,
		EntityID:   created.ID,
		AmountEUR:  created.AmountEUR,
		Status:     created.Status,
		OccurredAt: now,
	})
	return &created, nil
}

func (s *WithdrawService) notifyAdmin(ctx context.Context, to string, wr *models.WithdrawRequest) {
	if s.notifier == nil || to == "" {
		return
	}

	if s.notifyTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.notifyTimeout)
		defer cancel()
	}

	if err := s.notifier.Notify(ctx, withdrawNotification(to, wr)); err != nil {
		logger.Log.Warnw("admin notification failed", "wr_id", wr.ID, "to", to, "error", NewExternalServiceError("notifier", err))
		return
	}
	logger.Log.Infow("admin notified", "wr_id", wr.ID, "to", to)
}

func withdrawNotification(to string, wr *models.WithdrawRequest) models.Notification {
	amount := wr.AmountEUR.String()
	return models.Notification{
		To:      to,
		Subject: fmt.Sprintf("Withdraw request %s from %s", wr.ID, wr.UserID),
		Text: fmt.Sprintf("User %s requested withdrawal of %s EUR. Request id: %s To: %s",
			wr.UserID, amount, wr.ID, wr.To),
		HTML: fmt.Sprintf("<p>User <b>%s</b> requested withdrawal of <b>%s EUR</b>.</p><p>Request id: %s</p><p>To: %s</p>",
			html.EscapeString(wr.UserID), amount, html.EscapeString(wr.ID), html.EscapeString(wr.To)),
	}
}

// Approve moves the request to approved.
func (s *WithdrawService) Approve(ctx context.Context, id string, requirePending bool) (*models.WithdrawRequest, error) {
	return s.decide(ctx, id, models.WithdrawStatusApproved, requirePending)
}

// Reject moves the request to rejected.
func (s *WithdrawService) Reject(ctx context.Context, id string, requirePending bool) (*models.WithdrawRequest, error) {
	return s.decide(ctx, id, models.WithdrawStatusRejected, requirePending)
}

// decide stamps a terminal status. Unless requirePending is set a terminal
// request is overwritten.
func (s *WithdrawService) decide(ctx context.Context, id, status string, requirePending bool) (*models.WithdrawRequest, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, NewValidationError("withdraw request id is required")
	}

	now := s.now()

	var decided models.WithdrawRequest
	err := s.store.Update(ctx, func(st *models.State) error {
		wr, ok := st.WithdrawRequests[id]
		if !ok {
			return NewNotFoundError("withdraw request %s not found", id)
		}
		if requirePending && wr.Status != models.WithdrawStatusPending {
			return NewStateError("withdraw request %s is already %s", id, wr.Status)
		}

		at := now
		wr.Status = status
		switch status {
		case models.WithdrawStatusApproved:
			wr.ApprovedAt = &at
		case models.WithdrawStatusRejected:
			wr.RejectedAt = &at
		}
		decided = *wr
		return nil
	})
	if err != nil {
		logger.Log.Errorw("failed to decide withdraw request", "wr_id", id, "status", status, "error", err)
		return nil, err
	}

	logger.Log.Infow("withdraw request decided", "wr_id", id, "status", status)
	eventType := models.EventWithdrawalApproved
	if status == models.WithdrawStatusRejected {
		eventType = models.EventWithdrawalRejected
	}
	s.events.Publish(ctx, models.LedgerEvent{
		Type:       eventType,
		UserID:     decided.UserID,
		EntityID:   decided.ID,
		AmountEUR:  decided.AmountEUR,
		Status:     decided.Status,
		OccurredAt: now,
	})
	return &decided, nil
}

// List returns every withdraw request, newest first.
func (s *WithdrawService) List(ctx context.Context) ([]*models.WithdrawRequest, error) {
	var out []*models.WithdrawRequest
	err := s.store.View(ctx, func(st *models.State) error {
		out = st.ListWithdrawRequests()
		return nil
	})
	if err != nil {
		logger.Log.Errorw("failed to list withdraw requests", "error", err)
		return nil, err
	}
	return out, nil
}

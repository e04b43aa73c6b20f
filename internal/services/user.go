package services

import (
	"context"
	"strings"

	"github.com/sbilibin2017/gw-invest-ledger/internal/logger"
	"github.com/sbilibin2017/gw-invest-ledger/internal/models"
)

// UserService reads user summaries.
type UserService struct {
	store LedgerStore
}

// NewUserService creates a new UserService.
func NewUserService(store LedgerStore) *UserService {
	return &UserService{store: store}
}

// Summary returns the user with its transactions and investments in the
// order they were created.
func (s *UserService) Summary(ctx context.Context, userID string) (*models.User, []*models.Transaction, []*models.Investment, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, nil, nil, NewValidationError("userId is required")
	}

	var (
		user *models.User
		txs  []*models.Transaction
		invs []*models.Investment
	)
	err := s.store.View(ctx, func(st *models.State) error {
		u, ok := st.Users[userID]
		if !ok {
			return NewNotFoundError("user %s not found", userID)
		}
		user = u
		txs = st.UserTransactions(u)
		invs = st.UserInvestments(u)
		return nil
	})
	if err != nil {
		logger.Log.Errorw("failed to load user summary", "user_id", userID, "error", err)
		return nil, nil, nil, err
	}
	return user, txs, invs, nil
}

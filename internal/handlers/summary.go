package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sbilibin2017/gw-invest-ledger/internal/models"
)

// UserSummaryReader defines the interface that the service must implement.
type UserSummaryReader interface {
	Summary(ctx context.Context, userID string) (*models.User, []*models.Transaction, []*models.Investment, error)
}

// NewUserSummaryHandler returns an HTTP handler with a user's balances and history.
// @Summary User summary
// @Tags users
// @Produce json
// @Param userId path string true "User id"
// @Success 200 {object} models.UserSummaryResponse
// @Failure 404 {object} models.ErrorResponse "User not found"
// @Router /user/{userId}/summary [get]
func NewUserSummaryHandler(svc UserSummaryReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := chi.URLParam(r, "userId")

		user, txs, invs, err := svc.Summary(r.Context(), userID)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, models.UserSummaryResponse{
			OK:           true,
			User:         user,
			Transactions: txs,
			Investments:  invs,
		})
	}
}

package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/gw-invest-ledger/internal/models"
)

// WithdrawRequester defines the interface that the service must implement.
type WithdrawRequester interface {
	RequestWithdrawal(ctx context.Context, userID string, amount decimal.Decimal, to string) (*models.WithdrawRequest, error)
}

// WithdrawLister lists withdraw requests for review.
type WithdrawLister interface {
	List(ctx context.Context) ([]*models.WithdrawRequest, error)
}

// WithdrawDecider records the admin decision on a withdraw request.
type WithdrawDecider interface {
	Approve(ctx context.Context, id string, requirePending bool) (*models.WithdrawRequest, error)
	Reject(ctx context.Context, id string, requirePending bool) (*models.WithdrawRequest, error)
}

// NewRequestWithdrawalHandler returns an HTTP handler creating a withdraw request.
// @Summary Request withdrawal
// @Description Creates a pending withdraw request. The user needs at least 5 investments in 5 different plans.
// @Tags withdraws
// @Accept json
// @Produce json
// @Param request body models.WithdrawalRequestBody true "Withdrawal Request"
// @Success 200 {object} models.WithdrawalResponse
// @Failure 400 {object} models.ErrorResponse "Missing fields or withdraw_not_allowed"
// @Failure 404 {object} models.ErrorResponse "User not found"
// @Router /withdraws/request [post]
func NewRequestWithdrawalHandler(svc WithdrawRequester) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.WithdrawalRequestBody
		if err := decodeBody(r, &req, false); err != nil {
			writeError(w, err)
			return
		}

		wr, err := svc.RequestWithdrawal(r.Context(), req.UserID, req.AmountEUR, req.ToAddress)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, models.WithdrawalResponse{OK: true, WithdrawRequest: wr})
	}
}

// NewListWithdrawsHandler returns an HTTP handler listing withdraw requests, newest first.
// @Summary List withdraw requests
// @Tags admin
// @Produce json
// @Success 200 {object} models.WithdrawListResponse
// @Failure 401 {object} models.ErrorResponse
// @Router /admin/withdraws [get]
// @Security BearerAuth
func NewListWithdrawsHandler(svc WithdrawLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := svc.List(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		if list == nil {
			list = []*models.WithdrawRequest{}
		}

		writeJSON(w, http.StatusOK, models.WithdrawListResponse{OK: true, Withdraws: list})
	}
}

// NewApproveWithdrawHandler returns an HTTP handler approving a withdraw request.
// @Summary Approve withdraw request
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Withdraw request id"
// @Param request body models.WithdrawDecisionRequest false "Decision options"
// @Success 200 {object} models.WithdrawDecisionResponse
// @Failure 400 {object} models.ErrorResponse "Request no longer pending"
// @Failure 404 {object} models.ErrorResponse "Withdraw request not found"
// @Router /withdraws/{id}/approve [post]
// @Security BearerAuth
func NewApproveWithdrawHandler(svc WithdrawDecider) http.HandlerFunc {
	return newDecisionHandler(svc.Approve)
}

// NewRejectWithdrawHandler returns an HTTP handler rejecting a withdraw request.
// @Summary Reject withdraw request
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Withdraw request id"
// @Param request body models.WithdrawDecisionRequest false "Decision options"
// @Success 200 {object} models.WithdrawDecisionResponse
// @Failure 400 {object} models.ErrorResponse "Request no longer pending"
// @Failure 404 {object} models.ErrorResponse "Withdraw request not found"
// @Router /withdraws/{id}/reject [post]
// @Security BearerAuth
func NewRejectWithdrawHandler(svc WithdrawDecider) http.HandlerFunc {
	return newDecisionHandler(svc.Reject)
}

func newDecisionHandler(decide func(ctx context.Context, id string, requirePending bool) (*models.WithdrawRequest, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.WithdrawDecisionRequest
		if err := decodeBody(r, &req, true); err != nil {
			writeError(w, err)
			return
		}

		wr, err := decide(r.Context(), chi.URLParam(r, "id"), req.RequirePending)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, models.WithdrawDecisionResponse{OK: true, WR: wr})
	}
}

package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-invest-ledger/internal/models"
)

// InvestmentCreator defines the interface that the service must implement.
type InvestmentCreator interface {
	CreateInvestment(ctx context.Context, userID, txID, planID string) (*models.Investment, error)
}

// NewCreateInvestmentHandler returns an HTTP handler investing a confirmed deposit.
// @Summary Create investment
// @Description Invests the full amount of a confirmed deposit into a plan and debits the main balance.
// @Tags investments
// @Accept json
// @Produce json
// @Param request body models.InvestmentRequest true "Investment Request"
// @Success 200 {object} models.InvestmentResponse
// @Failure 400 {object} models.ErrorResponse "Missing fields, transaction mismatch or not confirmed"
// @Router /investments/create [post]
func NewCreateInvestmentHandler(svc InvestmentCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.InvestmentRequest
		if err := decodeBody(r, &req, false); err != nil {
			writeError(w, err)
			return
		}

		inv, err := svc.CreateInvestment(r.Context(), req.UserID, req.TxID, req.PlanID)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, models.InvestmentResponse{OK: true, Inv: inv})
	}
}

package handlers

import (
	"context"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/gw-invest-ledger/internal/logger"
	"github.com/sbilibin2017/gw-invest-ledger/internal/models"
)

// DepositCreator defines the interface that the service must implement.
type DepositCreator interface {
	CreateDeposit(ctx context.Context, userID string, amount decimal.Decimal, method string) (*models.Transaction, *models.PaymentInstructions, error)
}

// DepositConfirmer confirms pending deposits.
type DepositConfirmer interface {
	ConfirmDeposit(ctx context.Context, txID string, requirePending bool) (*models.Transaction, error)
}

// NewDepositHandler returns an HTTP handler creating a pending deposit.
// @Summary Create deposit
// @Description Stores a pending deposit for the user, creating the user on first use, and returns payment instructions. Price oracle failures are reported in payment.error.
// @Tags transactions
// @Accept json
// @Produce json
// @Param request body models.DepositRequest true "Deposit Request"
// @Success 200 {object} models.DepositResponse
// @Failure 400 {object} models.ErrorResponse "Missing user or non-positive amount"
// @Failure 500 {object} models.ErrorResponse
// @Router /transactions/deposit [post]
func NewDepositHandler(svc DepositCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.DepositRequest
		if err := decodeBody(r, &req, false); err != nil {
			logger.Log.Warnw("failed to decode deposit request", "error", err)
			writeError(w, err)
			return
		}

		tx, payment, err := svc.CreateDeposit(r.Context(), req.UserID, req.AmountEUR, req.Method)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, models.DepositResponse{
			OK:          true,
			Transaction: tx,
			Payment:     payment,
		})
	}
}

// NewConfirmDepositHandler returns an HTTP handler confirming a deposit.
// @Summary Confirm deposit
// @Description Marks the transaction successful and credits the owner's main balance. Repeated confirmation credits again unless requirePending is set.
// @Tags transactions
// @Accept json
// @Produce json
// @Param request body models.ConfirmRequest true "Confirm Request"
// @Success 200 {object} models.ConfirmResponse
// @Failure 400 {object} models.ErrorResponse "Missing txId or transaction already confirmed"
// @Failure 404 {object} models.ErrorResponse "Transaction not found"
// @Router /transactions/confirm [post]
func NewConfirmDepositHandler(svc DepositConfirmer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.ConfirmRequest
		if err := decodeBody(r, &req, false); err != nil {
			writeError(w, err)
			return
		}

		tx, err := svc.ConfirmDeposit(r.Context(), req.TxID, req.RequirePending)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, models.ConfirmResponse{OK: true, Tx: tx})
	}
}

package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-invest-ledger/internal/logger"
	"github.com/sbilibin2017/gw-invest-ledger/internal/models"
	"github.com/sbilibin2017/gw-invest-ledger/internal/repositories"
)

// StateDumper returns the persisted ledger document.
type StateDumper interface {
	Dump(ctx context.Context) ([]byte, error)
}

// NewStateDumpHandler returns an HTTP handler serving the raw ledger state.
// @Summary Raw state dump
// @Tags admin
// @Produce json
// @Success 200 {object} models.State
// @Failure 404 {object} models.ErrorResponse "No state persisted yet"
// @Router /db.json [get]
// @Security BearerAuth
func NewStateDumpHandler(store StateDumper) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data, err := store.Dump(r.Context())
		if err != nil {
			if errors.Is(err, repositories.ErrStateNotFound) {
				writeJSON(w, http.StatusNotFound, models.ErrorResponse{OK: false, Error: "not_found", Reason: "no db"})
				return
			}
			logger.Log.Errorw("failed to dump state", "error", err)
			writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{OK: false, Error: errInternal})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
	}
}

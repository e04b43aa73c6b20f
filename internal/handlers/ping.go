package handlers

import (
	"net/http"
	"time"

	"github.com/sbilibin2017/gw-invest-ledger/internal/models"
)

// NewPingHandler returns a health check handler.
// @Summary Health check
// @Tags system
// @Produce json
// @Success 200 {object} models.PingResponse
// @Router /ping [get]
func NewPingHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, models.PingResponse{OK: true, Timestamp: time.Now().UTC()})
	}
}

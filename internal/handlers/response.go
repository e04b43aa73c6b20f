package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/sbilibin2017/gw-invest-ledger/internal/logger"
	"github.com/sbilibin2017/gw-invest-ledger/internal/models"
	"github.com/sbilibin2017/gw-invest-ledger/internal/services"
)

const errInternal = "internal_error"

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Errorw("failed to encode response", "error", err)
	}
}

// statusFor maps a ledger error kind to an HTTP status.
func statusFor(kind services.ErrorKind) int {
	switch kind {
	case services.KindValidation,
		services.KindMismatch,
		services.KindState,
		services.KindWithdrawNotAllowed:
		return http.StatusBadRequest
	case services.KindNotFound:
		return http.StatusNotFound
	case services.KindUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, err error) {
	kind := services.KindOf(err)
	status := statusFor(kind)
	if status == http.StatusInternalServerError {
		writeJSON(w, status, models.ErrorResponse{OK: false, Error: errInternal})
		return
	}
	writeJSON(w, status, models.ErrorResponse{
		OK:     false,
		Error:  string(kind),
		Reason: services.ReasonOf(err),
	})
}

// decodeBody decodes a JSON body into v. With optional set an empty body
// leaves v untouched.
func decodeBody(r *http.Request, v any, optional bool) error {
	err := json.NewDecoder(r.Body).Decode(v)
	if err == nil {
		return nil
	}
	if optional && errors.Is(err, io.EOF) {
		return nil
	}
	return services.NewValidationError("invalid request body")
}

package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-invest-ledger/internal/models"
)

// AdminLoginer defines the interface that the login service must implement.
type AdminLoginer interface {
	Login(ctx context.Context, password string) (string, error)
}

// NewAdminLoginHandler returns an HTTP handler for admin login.
// @Summary Admin login
// @Description Checks the admin password and returns a JWT token for the admin routes
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body models.AdminLoginRequest true "Login Request"
// @Success 200 {object} models.AdminLoginResponse "JWT token returned"
// @Failure 400 {object} models.ErrorResponse "Invalid request body"
// @Failure 401 {object} models.ErrorResponse "Invalid credentials"
// @Router /admin/login [post]
func NewAdminLoginHandler(svc AdminLoginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.AdminLoginRequest
		if err := decodeBody(r, &req, false); err != nil {
			writeError(w, err)
			return
		}

		token, err := svc.Login(r.Context(), req.Password)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, models.AdminLoginResponse{OK: true, Token: token})
	}
}

package services

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/sbilibin2017/gw-invest-ledger/internal/logger"
)

// AdminSubject is the token subject issued to the administrator.
const AdminSubject = "admin"

// JWTGenerator defines an interface for generating JWT tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, subject string) (string, error)
}

// AdminAuthService authenticates the administrator.
type AdminAuthService struct {
	passwordHash []byte
	jwt          JWTGenerator
}

// NewAdminAuthService creates a new AdminAuthService from a bcrypt hash.
func NewAdminAuthService(passwordHash string, jwt JWTGenerator) *AdminAuthService {
	return &AdminAuthService{
		passwordHash: []byte(passwordHash),
		jwt:          jwt,
	}
}

// Login checks the admin password and returns a JWT token.
func (svc *AdminAuthService) Login(ctx context.Context, password string) (string, error) {
	if password == "" {
		return "", NewValidationError("password is required")
	}
	if len(svc.passwordHash) == 0 {
		logger.Log.Errorw("admin login attempted without a configured password hash")
		return "", &LedgerError{Kind: KindUnauthorized, Reason: "admin login disabled"}
	}

	if err := bcrypt.CompareHashAndPassword(svc.passwordHash, []byte(password)); err != nil {
		logger.Log.Warnw("invalid admin credentials")
		return "", &LedgerError{Kind: KindUnauthorized, Reason: "invalid credentials"}
	}

	token, err := svc.jwt.Generate(ctx, AdminSubject)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return "", err
	}

	return token, nil
}

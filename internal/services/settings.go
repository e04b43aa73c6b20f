package services

import (
	"context"
	"strings"

	"github.com/sbilibin2017/gw-invest-ledger/internal/logger"
	"github.com/sbilibin2017/gw-invest-ledger/internal/models"
)

// DefaultAdminEmail is seeded when neither the ledger nor the configuration
// carries an admin address.
const DefaultAdminEmail = "ops@example.com"

// SettingsService manages administrative settings stored with the ledger.
type SettingsService struct {
	store LedgerStore
}

// NewSettingsService creates a new SettingsService.
func NewSettingsService(store LedgerStore) *SettingsService {
	return &SettingsService{store: store}
}

// InitSettings seeds the admin email. A value already stored wins over
// the configured one.
func (s *SettingsService) InitSettings(ctx context.Context, adminEmail string) (models.Settings, error) {
	adminEmail = strings.TrimSpace(adminEmail)
	if adminEmail == "" {
		adminEmail = DefaultAdminEmail
	}

	var settings models.Settings
	err := s.store.Update(ctx, func(st *models.State) error {
		if st.Settings.AdminEmail == "" {
			st.Settings.AdminEmail = adminEmail
		}
		settings = st.Settings
		return nil
	})
	if err != nil {
		logger.Log.Errorw("failed to init settings", "error", err)
		return models.Settings{}, err
	}

	logger.Log.Infow("settings initialized", "admin_email", settings.AdminEmail)
	return settings, nil
}

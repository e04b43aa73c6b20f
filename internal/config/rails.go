package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v2"

	"github.com/sbilibin2017/gw-invest-ledger/internal/models"
)

type railsFile struct {
	Rails []models.PaymentRail `yaml:"rails"`
}

// DefaultPaymentRails is used when no rails file is configured.
func DefaultPaymentRails(fallbackAddress string) []models.PaymentRail {
	return []models.PaymentRail{
		{
			Method:    "BTC",
			Asset:     "BTC",
			CoinID:    "bitcoin",
			Address:   fallbackAddress,
			URIScheme: "bitcoin",
			Decimals:  8,
		},
	}
}

// LoadPaymentRails reads crypto rails from a YAML file. Rails without an
// address get fallbackAddress.
func LoadPaymentRails(path, fallbackAddress string) ([]models.PaymentRail, error) {
	if path == "" {
		return DefaultPaymentRails(fallbackAddress), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read %s: %w", path, err)
	}

	var f railsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("unable to parse %s: %w", path, err)
	}

	seen := make(map[string]struct{}, len(f.Rails))
	for i := range f.Rails {
		rail := &f.Rails[i]
		rail.Method = strings.ToUpper(strings.TrimSpace(rail.Method))
		if rail.Method == "" {
			return nil, fmt.Errorf("rail at index %d missing method", i)
		}
		if _, dup := seen[rail.Method]; dup {
			return nil, fmt.Errorf("duplicate rail for method %s", rail.Method)
		}
		seen[rail.Method] = struct{}{}
		if rail.Asset == "" {
			rail.Asset = rail.Method
		}
		if rail.CoinID == "" {
			return nil, fmt.Errorf("rail %s missing coin_id", rail.Method)
		}
		if rail.Address == "" {
			rail.Address = fallbackAddress
		}
		if rail.URIScheme == "" {
			rail.URIScheme = strings.ToLower(rail.CoinID)
		}
		if rail.Decimals <= 0 {
			rail.Decimals = 8
		}
	}
	return f.Rails, nil
}

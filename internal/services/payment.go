package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/gw-invest-ledger/internal/logger"
	"github.com/sbilibin2017/gw-invest-ledger/internal/models"
)

// QuoteCurrency is the currency deposits are denominated in.
const QuoteCurrency = "EUR"

// DefaultBankAccount is quoted in bank transfer instructions when none is configured.
const DefaultBankAccount = "account X"

// PriceOracle supplies spot conversion rates.
type PriceOracle interface {
	GetRate(ctx context.Context, asset, quote string) (decimal.Decimal, error)
}

// RateCache keeps recently fetched rates.
type RateCache interface {
	GetRate(ctx context.Context, asset, quote string) (decimal.Decimal, error)
	SetRate(ctx context.Context, asset, quote string, rate decimal.Decimal) error
}

// PaymentService builds payment instructions for deposits.
type PaymentService struct {
	rails       map[string]models.PaymentRail
	oracle      PriceOracle
	cache       RateCache
	timeout     time.Duration
	bankAccount string
}

// NewPaymentService creates a new PaymentService. cache may be nil.
func NewPaymentService(
	rails []models.PaymentRail,
	oracle PriceOracle,
	cache RateCache,
	timeout time.Duration,
	bankAccount string,
) *PaymentService {
	byMethod := make(map[string]models.PaymentRail, len(rails))
	for _, r := range rails {
		byMethod[strings.ToUpper(r.Method)] = r
	}
	if bankAccount == "" {
		bankAccount = DefaultBankAccount
	}
	return &PaymentService{
		rails:       byMethod,
		oracle:      oracle,
		cache:       cache,
		timeout:     timeout,
		bankAccount: bankAccount,
	}
}

// IsCrypto reports whether deposits made with method are paid on a crypto rail.
func (s *PaymentService) IsCrypto(method string) bool {
	_, ok := s.rails[strings.ToUpper(method)]
	return ok
}

// Instructions tells the payer how to fund tx. Oracle failures never fail
// the call; they are reported through the Error field.
func (s *PaymentService) Instructions(ctx context.Context, tx *models.Transaction) *models.PaymentInstructions {
	payment := &models.PaymentInstructions{Method: tx.Method}

	rail, ok := s.rails[strings.ToUpper(tx.Method)]
	if !ok {
		payment.Instructions = fmt.Sprintf("Send bank transfer to %s. Use reference: %s", s.bankAccount, tx.ID)
		return payment
	}

	rate, err := s.rate(ctx, rail.Asset)
	if err != nil {
		logger.Log.Warnw("price oracle unavailable", "tx_id", tx.ID, "asset", rail.Asset, "error", err)
		payment.Error = strings.ToLower(rail.Method) + " error"
		return payment
	}

	amount := tx.AmountEUR.DivRound(rate, rail.Decimals+8).Round(rail.Decimals)
	payment.Asset = rail.Asset
	payment.Address = rail.Address
	payment.AmountCrypto = &amount
	payment.RateEUR = &rate
	payment.URI = fmt.Sprintf("%s:%s?amount=%s", rail.URIScheme, rail.Address, amount.String())
	return payment
}

// rate returns the asset price in EUR, consulting the cache first.
func (s *PaymentService) rate(ctx context.Context, asset string) (decimal.Decimal, error) {
	if s.cache != nil {
		rate, err := s.cache.GetRate(ctx, asset, QuoteCurrency)
		if err == nil && rate.IsPositive() {
			return rate, nil
		}
	}

	if s.oracle == nil {
		return decimal.Zero, NewExternalServiceError("price oracle", errors.New("not configured"))
	}

	octx := ctx
	if s.timeout > 0 {
		var cancel context.CancelFunc
		octx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	rate, err := s.oracle.GetRate(octx, asset, QuoteCurrency)
	if err != nil {
		return decimal.Zero, NewExternalServiceError("price oracle", err)
	}
	if !rate.IsPositive() {
		return decimal.Zero, NewExternalServiceError("price oracle", fmt.Errorf("non-positive rate %s", rate))
	}

	if s.cache != nil {
		if err := s.cache.SetRate(ctx, asset, QuoteCurrency, rate); err != nil {
			logger.Log.Errorw("failed to cache rate", "asset", asset, "rate", rate, "error", err)
		}
	}
	return rate, nil
}

package facades

import (
	"context"
	"fmt"

	pb "github.com/sbilibin2017/proto-exchange/exchange"
	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/gw-invest-ledger/internal/logger"
)

// ExchangeRateGRPCFacade reads spot rates from the exchanger service over gRPC.
type ExchangeRateGRPCFacade struct {
	client pb.ExchangeServiceClient
}

// NewExchangeRateGRPCFacade creates a new facade with a gRPC client.
func NewExchangeRateGRPCFacade(client pb.ExchangeServiceClient) *ExchangeRateGRPCFacade {
	return &ExchangeRateGRPCFacade{client: client}
}

// GetRate returns the price of one unit of asset in quote.
func (f *ExchangeRateGRPCFacade) GetRate(ctx context.Context, asset, quote string) (decimal.Decimal, error) {
	req := &pb.CurrencyRequest{
		FromCurrency: asset,
		ToCurrency:   quote,
	}

	resp, err := f.client.GetExchangeRateForCurrency(ctx, req)
	if err != nil {
		logger.Log.Errorw("failed to fetch exchange rate via gRPC", "from", asset, "to", quote, "error", err)
		return decimal.Zero, err
	}

	rate := decimal.NewFromFloat32(resp.Rate)
	if !rate.IsPositive() {
		return decimal.Zero, fmt.Errorf("exchanger returned non-positive rate %s for %s/%s", rate, asset, quote)
	}
	return rate, nil
}

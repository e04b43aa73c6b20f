package facades

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/gw-invest-ledger/internal/logger"
)

// DefaultCoinGeckoURL is the public CoinGecko API root.
const DefaultCoinGeckoURL = "https://api.coingecko.com/api/v3"

// CoinGeckoFacade reads spot prices from the CoinGecko simple price API.
type CoinGeckoFacade struct {
	baseURL    string
	coinIDs    map[string]string
	httpClient *http.Client
}

// NewCoinGeckoFacade creates a new facade. coinIDs maps asset symbols such
// as BTC to CoinGecko ids such as bitcoin.
func NewCoinGeckoFacade(baseURL string, coinIDs map[string]string, timeout time.Duration) *CoinGeckoFacade {
	if baseURL == "" {
		baseURL = DefaultCoinGeckoURL
	}
	ids := make(map[string]string, len(coinIDs))
	for asset, id := range coinIDs {
		ids[strings.ToUpper(asset)] = id
	}
	return &CoinGeckoFacade{
		baseURL: strings.TrimRight(baseURL, "/"),
		coinIDs: ids,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// GetRate returns the price of one unit of asset in quote.
func (f *CoinGeckoFacade) GetRate(ctx context.Context, asset, quote string) (decimal.Decimal, error) {
	coinID, ok := f.coinIDs[strings.ToUpper(asset)]
	if !ok {
		return decimal.Zero, fmt.Errorf("no coin id for asset %s", asset)
	}
	vs := strings.ToLower(quote)

	q := url.Values{}
	q.Set("ids", coinID)
	q.Set("vs_currencies", vs)
	endpoint := f.baseURL + "/simple/price?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		logger.Log.Errorw("coingecko request failed", "coin", coinID, "error", err)
		return decimal.Zero, fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return decimal.Zero, fmt.Errorf("coingecko returned status %d: %s", resp.StatusCode, string(body))
	}

	var prices map[string]map[string]json.Number
	if err := json.NewDecoder(resp.Body).Decode(&prices); err != nil {
		return decimal.Zero, fmt.Errorf("failed to decode response: %w", err)
	}

	price, ok := prices[coinID][vs]
	if !ok {
		return decimal.Zero, fmt.Errorf("price for %s in %s not found in response", coinID, vs)
	}
	rate, err := decimal.NewFromString(price.String())
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid price %q: %w", price, err)
	}
	if !rate.IsPositive() {
		return decimal.Zero, fmt.Errorf("non-positive price %s for %s", rate, coinID)
	}
	return rate, nil
}

package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/gw-invest-ledger/internal/logger"
)

// ErrRateNotCached is returned on a cache miss.
var ErrRateNotCached = errors.New("rate not found in cache")

// RateCacheRepository caches oracle spot rates in Redis.
type RateCacheRepository struct {
	client *redis.Client
	exp    time.Duration
}

// NewRateCacheRepository creates a cache whose entries expire after expiration.
func NewRateCacheRepository(client *redis.Client, expiration time.Duration) *RateCacheRepository {
	return &RateCacheRepository{client: client, exp: expiration}
}

func rateKey(asset, quote string) string {
	return fmt.Sprintf("price_rate:%s:%s", asset, quote)
}

// GetRate returns the cached price of one unit of asset in quote currency.
func (r *RateCacheRepository) GetRate(ctx context.Context, asset, quote string) (decimal.Decimal, error) {
	key := rateKey(asset, quote)

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		logger.Log.Debugw("rate cache get", "key", key, "error", err)
		if errors.Is(err, redis.Nil) {
			return decimal.Zero, fmt.Errorf("%w for %s->%s", ErrRateNotCached, asset, quote)
		}
		return decimal.Zero, err
	}

	rate, err := decimal.NewFromString(val)
	logger.Log.Debugw("rate cache get", "key", key, "value", val, "error", err)
	if err != nil {
		return decimal.Zero, err
	}
	return rate, nil
}

// SetRate stores a rate with the configured expiration.
func (r *RateCacheRepository) SetRate(ctx context.Context, asset, quote string, rate decimal.Decimal) error {
	key := rateKey(asset, quote)
	err := r.client.Set(ctx, key, rate.String(), r.exp).Err()
	logger.Log.Debugw("rate cache set", "key", key, "rate", rate.String(), "ttl", r.exp, "error", err)
	return err
}

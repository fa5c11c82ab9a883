package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/la-castro-web/solanapix/internal/assetbook"
	"github.com/la-castro-web/solanapix/internal/pkg/logger"
	"github.com/la-castro-web/solanapix/internal/txstats"

	redis "github.com/redis/go-redis/v9"
)

// defaultRateTTL keeps cached rates short-lived: prices move.
const defaultRateTTL = time.Minute

// rateCacheKey returns the key under which one conversion rate is stored.
//
// Format: "price:{asset}:{currency}"
func rateCacheKey(asset assetbook.Asset, currency string) string {
	return fmt.Sprintf("price:%s:%s", asset, currency)
}

// rateCache decorates a RateSource with a Redis-backed cache. Cache
// failures fall through to the wrapped source; unavailable rates are not
// cached so a recovering oracle is picked up immediately.
type rateCache struct {
	conn   *redis.Client
	source txstats.RateSource
	ttl    time.Duration
}

var _ txstats.RateSource = (*rateCache)(nil)

// RateCache wraps source with a cache backed by this client's connection.
// A non-positive ttl falls back to the default.
func (c *client) RateCache(source txstats.RateSource, ttl time.Duration) *rateCache {
	if ttl <= 0 {
		ttl = defaultRateTTL
	}

	return &rateCache{
		conn:   c.conn,
		source: source,
		ttl:    ttl,
	}
}

// RateFor implements the txstats.RateSource interface.
func (rc *rateCache) RateFor(ctx context.Context, asset assetbook.Asset, currency string) (float64, error) {
	key := rateCacheKey(asset, currency)

	cached, err := rc.conn.Get(ctx, key).Result()
	if err == nil {
		if rate, parseErr := strconv.ParseFloat(cached, 64); parseErr == nil {
			return rate, nil
		}
	} else if err != redis.Nil {
		logger.Debug(ctx, "rate cache read failed", "key", key, "error", err)
	}

	rate, err := rc.source.RateFor(ctx, asset, currency)
	if err != nil {
		return 0, err
	}

	if err := rc.conn.Set(ctx, key, strconv.FormatFloat(rate, 'f', -1, 64), rc.ttl).Err(); err != nil {
		logger.Debug(ctx, "rate cache write failed", "key", key, "error", err)
	}

	return rate, nil
}

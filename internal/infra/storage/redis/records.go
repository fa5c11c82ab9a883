package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/la-castro-web/solanapix/internal/activity"
	"github.com/la-castro-web/solanapix/internal/txhistory"

	redis "github.com/redis/go-redis/v9"
)

// defaultRecordTTL bounds how long a cached record lives. Finalized
// records are immutable, so the TTL only limits memory usage.
const defaultRecordTTL = 24 * time.Hour

// recordCacheKey returns the key under which one transaction record is
// stored.
//
// Format: "tx:record:{signature}"
func recordCacheKey(signature string) string {
	return fmt.Sprintf("tx:record:%s", signature)
}

// recordCache implements txhistory.RecordCache on a Redis connection.
type recordCache struct {
	conn *redis.Client
	ttl  time.Duration
}

var _ txhistory.RecordCache = (*recordCache)(nil)

// RecordCache returns a record cache backed by this client's connection.
// A non-positive ttl falls back to the default.
func (c *client) RecordCache(ttl time.Duration) *recordCache {
	if ttl <= 0 {
		ttl = defaultRecordTTL
	}

	return &recordCache{
		conn: c.conn,
		ttl:  ttl,
	}
}

// GetRecord implements the txhistory.RecordCache interface. A missing key
// is a plain miss, not an error.
func (rc *recordCache) GetRecord(ctx context.Context, signature string) (activity.TransactionRecord, bool, error) {
	data, err := rc.conn.Get(ctx, recordCacheKey(signature)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return activity.TransactionRecord{}, false, nil
		}
		return activity.TransactionRecord{}, false, err
	}

	var rec activity.TransactionRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return activity.TransactionRecord{}, false, err
	}

	return rec, true, nil
}

// PutRecord implements the txhistory.RecordCache interface.
func (rc *recordCache) PutRecord(ctx context.Context, signature string, rec activity.TransactionRecord) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}

	return rc.conn.Set(ctx, recordCacheKey(signature), data, rc.ttl).Err()
}

package redis

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const dedupTTL = time.Hour

// DedupChecker remembers recently processed webhook deliveries.
// Key format: mirante:dedup:<subscriber_id>:<sha1(message)>
type DedupChecker struct {
	client redis.Cmdable
	ttl    time.Duration
}

// NewDedupChecker creates a DedupChecker wrapping the given Redis client.
func NewDedupChecker(client redis.Cmdable) *DedupChecker {
	return &DedupChecker{client: client, ttl: dedupTTL}
}

// IsDuplicate reports whether this delivery has already been processed.
func (d *DedupChecker) IsDuplicate(ctx context.Context, subscriberID, message string) (bool, error) {
	n, err := d.client.Exists(ctx, Key(subscriberID, message)).Result()
	if err != nil {
		return false, fmt.Errorf("dedup check: %w", err)
	}
	return n > 0, nil
}

// Mark records that this delivery has been processed (expires after the TTL).
func (d *DedupChecker) Mark(ctx context.Context, subscriberID, message string) error {
	return d.client.Set(ctx, Key(subscriberID, message), "1", d.ttl).Err()
}

// Key builds the dedup key for a delivery. Messages are hashed so that
// arbitrary user text never ends up in a key.
func Key(subscriberID, message string) string {
	sum := sha1.Sum([]byte(message))
	return fmt.Sprintf("mirante:dedup:%s:%s", subscriberID, hex.EncodeToString(sum[:]))
}

package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	appreview "github.com/estuaire/backend/internal/application/review"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const defaultRatingTTL = 10 * time.Minute

// RedisVendorRatingCache is a Redis-backed read cache for vendor rating
// aggregates. Entries are invalidated whenever a review mutation
// recomputes the aggregate.
type RedisVendorRatingCache struct {
	client    *redis.Client
	keyPrefix string
	ttl       time.Duration
}

// NewRedisVendorRatingCache creates a cache over an existing Redis client
func NewRedisVendorRatingCache(client *redis.Client) *RedisVendorRatingCache {
	return &RedisVendorRatingCache{
		client:    client,
		keyPrefix: "vendor:rating:",
		ttl:       defaultRatingTTL,
	}
}

// Get returns the cached aggregate, or (nil, nil) on a cache miss
func (c *RedisVendorRatingCache) Get(ctx context.Context, vendorID uuid.UUID) (*appreview.VendorRatingResponse, error) {
	data, err := c.client.Get(ctx, c.key(vendorID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read vendor rating cache: %w", err)
	}

	var rating appreview.VendorRatingResponse
	if err := json.Unmarshal(data, &rating); err != nil {
		// Treat a corrupt entry as a miss
		return nil, nil
	}
	return &rating, nil
}

// Set stores the aggregate with the cache TTL
func (c *RedisVendorRatingCache) Set(ctx context.Context, rating *appreview.VendorRatingResponse) error {
	data, err := json.Marshal(rating)
	if err != nil {
		return fmt.Errorf("failed to encode vendor rating: %w", err)
	}
	if err := c.client.Set(ctx, c.key(rating.VendorID), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write vendor rating cache: %w", err)
	}
	return nil
}

// Invalidate drops the vendor's cached aggregate
func (c *RedisVendorRatingCache) Invalidate(ctx context.Context, vendorID uuid.UUID) error {
	if err := c.client.Del(ctx, c.key(vendorID)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate vendor rating cache: %w", err)
	}
	return nil
}

func (c *RedisVendorRatingCache) key(vendorID uuid.UUID) string {
	return c.keyPrefix + vendorID.String()
}

var _ appreview.RatingCache = (*RedisVendorRatingCache)(nil)

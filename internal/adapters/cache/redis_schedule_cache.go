package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/darren10101/SnapEvent-sub001/internal/domain"
)

// Redis-backed implementation of the ScheduleCache port. Entries are
// stored as JSON under schedule:{eventID} with a TTL slightly past the
// freshness window; the service-level freshness check remains the
// source of truth, the TTL only bounds garbage.
type RedisScheduleCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisScheduleCache(client *redis.Client, ttl time.Duration) *RedisScheduleCache {
	return &RedisScheduleCache{Client: client, TTL: ttl}
}

func (c *RedisScheduleCache) key(eventID string) string {
	return "schedule:" + eventID
}

func (c *RedisScheduleCache) Get(ctx context.Context, eventID string) (*domain.ScheduleCacheEntry, error) {
	if c.Client == nil {
		return nil, errors.New("schedule cache: redis client is nil")
	}
	if eventID == "" {
		return nil, errors.New("schedule cache: event id must not be empty")
	}

	raw, err := c.Client.Get(ctx, c.key(eventID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get schedule cache %q: %w", eventID, err)
	}

	var entry domain.ScheduleCacheEntry
	if err := json.Unmarshal(raw, &entry); err != nil {
		return nil, fmt.Errorf("get schedule cache %q: decode entry: %w", eventID, err)
	}

	return &entry, nil
}

func (c *RedisScheduleCache) Put(ctx context.Context, eventID string, entry *domain.ScheduleCacheEntry) error {
	if c.Client == nil {
		return errors.New("schedule cache: redis client is nil")
	}
	if eventID == "" {
		return errors.New("schedule cache: event id must not be empty")
	}
	if entry == nil {
		return errors.New("schedule cache: entry must not be nil")
	}

	raw, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("put schedule cache %q: encode entry: %w", eventID, err)
	}

	if err := c.Client.Set(ctx, c.key(eventID), raw, c.TTL).Err(); err != nil {
		return fmt.Errorf("put schedule cache %q: %w", eventID, err)
	}

	return nil
}

func (c *RedisScheduleCache) Invalidate(ctx context.Context, eventID string) error {
	if c.Client == nil {
		return errors.New("schedule cache: redis client is nil")
	}
	if eventID == "" {
		return errors.New("schedule cache: event id must not be empty")
	}

	if err := c.Client.Del(ctx, c.key(eventID)).Err(); err != nil {
		return fmt.Errorf("invalidate schedule cache %q: %w", eventID, err)
	}

	return nil
}

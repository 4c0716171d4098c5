package cache

import (
	"context"
	"errors"
	"sync"

	"github.com/darren10101/SnapEvent-sub001/internal/domain"
)

// In-process implementation of the ScheduleCache port, used for local
// runs and tests. Entries are replaced wholesale; readers never observe
// a half-written entry.
type MemoryScheduleCache struct {
	mu      sync.RWMutex
	entries map[string]*domain.ScheduleCacheEntry
}

func NewMemoryScheduleCache() *MemoryScheduleCache {
	return &MemoryScheduleCache{entries: make(map[string]*domain.ScheduleCacheEntry)}
}

func (c *MemoryScheduleCache) Get(ctx context.Context, eventID string) (*domain.ScheduleCacheEntry, error) {
	if eventID == "" {
		return nil, errors.New("schedule cache: event id must not be empty")
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[eventID]
	if !ok {
		return nil, nil
	}

	// Copy so callers cannot mutate the stored entry in place.
	out := *entry
	return &out, nil
}

func (c *MemoryScheduleCache) Put(ctx context.Context, eventID string, entry *domain.ScheduleCacheEntry) error {
	if eventID == "" {
		return errors.New("schedule cache: event id must not be empty")
	}
	if entry == nil {
		return errors.New("schedule cache: entry must not be nil")
	}

	stored := *entry

	c.mu.Lock()
	c.entries[eventID] = &stored
	c.mu.Unlock()

	return nil
}

func (c *MemoryScheduleCache) Invalidate(ctx context.Context, eventID string) error {
	if eventID == "" {
		return errors.New("schedule cache: event id must not be empty")
	}

	c.mu.Lock()
	delete(c.entries, eventID)
	c.mu.Unlock()

	return nil
}

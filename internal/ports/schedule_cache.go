package ports

import (
	"context"

	"github.com/darren10101/SnapEvent-sub001/internal/domain"
)

// Port: per-event storage for the latest generated schedule set.
// Implementations may back this with the event store itself or a
// faster dedicated cache; the schedule service only sees this
// interface.
type ScheduleCache interface {
	// Get returns the stored entry, or (nil, nil) when absent.
	Get(ctx context.Context, eventID string) (*domain.ScheduleCacheEntry, error)
	// Put replaces the entry wholesale.
	Put(ctx context.Context, eventID string, entry *domain.ScheduleCacheEntry) error
	// Invalidate removes the entry outright. Removing an absent entry
	// is not an error.
	Invalidate(ctx context.Context, eventID string) error
}

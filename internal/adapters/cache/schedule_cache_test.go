package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/darren10101/SnapEvent-sub001/internal/domain"
	"github.com/darren10101/SnapEvent-sub001/internal/ports"
)

func sampleEntry() *domain.ScheduleCacheEntry {
	return &domain.ScheduleCacheEntry{
		Schedules: []domain.TravelSchedule{
			{ParticipantID: "alice", ParticipantName: "Alice", TransportMode: domain.ModeDriving},
		},
		GeneratedAt:    time.Date(2026, 9, 10, 16, 0, 0, 0, time.UTC),
		EventVersion:   time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		ParticipantIDs: []string{"alice", "bob"},
	}
}

func exerciseCache(t *testing.T, c ports.ScheduleCache) {
	t.Helper()
	ctx := context.Background()

	entry, err := c.Get(ctx, "e1")
	if err != nil {
		t.Fatalf("get absent: %v", err)
	}
	if entry != nil {
		t.Fatal("expected absent entry before put")
	}

	if err := c.Put(ctx, "e1", sampleEntry()); err != nil {
		t.Fatalf("put: %v", err)
	}

	entry, err = c.Get(ctx, "e1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if entry == nil {
		t.Fatal("expected entry after put")
	}
	if len(entry.Schedules) != 1 || entry.Schedules[0].ParticipantID != "alice" {
		t.Errorf("entry content mangled: %+v", entry)
	}
	if !entry.GeneratedAt.Equal(sampleEntry().GeneratedAt) {
		t.Errorf("generated at = %v, want %v", entry.GeneratedAt, sampleEntry().GeneratedAt)
	}

	if err := c.Invalidate(ctx, "e1"); err != nil {
		t.Fatalf("invalidate: %v", err)
	}

	entry, err = c.Get(ctx, "e1")
	if err != nil {
		t.Fatalf("get after invalidate: %v", err)
	}
	if entry != nil {
		t.Fatal("entry must be removed outright by invalidation")
	}

	// Invalidating an absent entry is not an error.
	if err := c.Invalidate(ctx, "e1"); err != nil {
		t.Fatalf("repeat invalidate: %v", err)
	}
}

func TestMemoryScheduleCache(t *testing.T) {
	exerciseCache(t, NewMemoryScheduleCache())
}

func TestMemoryScheduleCacheCopies(t *testing.T) {
	c := NewMemoryScheduleCache()
	ctx := context.Background()

	stored := sampleEntry()
	if err := c.Put(ctx, "e1", stored); err != nil {
		t.Fatalf("put: %v", err)
	}
	stored.ParticipantIDs = nil

	entry, err := c.Get(ctx, "e1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(entry.ParticipantIDs) != 2 {
		t.Error("stored entry shares memory with the caller's value")
	}
}

func TestRedisScheduleCache(t *testing.T) {
	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})

	exerciseCache(t, NewRedisScheduleCache(client, 35*time.Minute))
}

func TestRedisScheduleCacheTTL(t *testing.T) {
	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	c := NewRedisScheduleCache(client, 35*time.Minute)

	if err := c.Put(context.Background(), "e1", sampleEntry()); err != nil {
		t.Fatalf("put: %v", err)
	}

	srv.FastForward(36 * time.Minute)

	entry, err := c.Get(context.Background(), "e1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if entry != nil {
		t.Fatal("entry should expire with the TTL")
	}
}

package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/darren10101/SnapEvent-sub001/internal/domain"
	"github.com/darren10101/SnapEvent-sub001/internal/platform/obs"
	"github.com/darren10101/SnapEvent-sub001/internal/ports"
)

// scheduleFreshness is the window after which a cache entry triggers
// synchronous regeneration on the read path.
const scheduleFreshness = 30 * time.Minute

// The definite answer to a schedule request: the schedules plus cache
// provenance and the generated-of-requested aggregate.
type ScheduleSet struct {
	Schedules   []domain.TravelSchedule
	Cached      bool
	GeneratedAt time.Time
	Requested   int
	Generated   int
}

// ScheduleService owns the travel-schedule cache lifecycle: serving
// fresh entries, regenerating on miss/expiry/force, and removing
// entries when events mutate.
type ScheduleService struct {
	Events   ports.EventRepository
	Users    ports.UserRepository
	Provider ports.DirectionsProvider
	Cache    ports.ScheduleCache

	now   func() time.Time
	group singleflight.Group
}

func NewScheduleService(
	events ports.EventRepository,
	users ports.UserRepository,
	provider ports.DirectionsProvider,
	cache ports.ScheduleCache,
) *ScheduleService {
	return &ScheduleService{
		Events:   events,
		Users:    users,
		Provider: provider,
		Cache:    cache,
		now:      time.Now,
	}
}

// GetOrRegenerateSchedules returns the travel schedules for an event,
// serving the cached entry when it is fresh, was generated against the
// event's current version, and covers the requesting participant, and
// regenerating synchronously otherwise. An entry left behind by a
// failed removal carries a stale version and is treated as a miss; a
// failed regeneration leaves the prior entry untouched and reports the
// failure.
//
// requestingParticipantID may name an identity outside the event's
// stored participant set; regeneration then includes it in the fresh
// set without persisting a membership change.
func (s *ScheduleService) GetOrRegenerateSchedules(
	ctx context.Context,
	eventID string,
	requestingParticipantID string,
	forceRegenerate bool,
) (_ *ScheduleSet, err error) {
	defer obs.Time(ctx, "schedules.get_or_regenerate")(&err)

	event, err := s.Events.GetEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("get schedules: %w", err)
	}

	if !forceRegenerate {
		entry, err := s.Cache.Get(ctx, eventID)
		if err != nil {
			// A broken cache backend degrades to a miss.
			log.Printf("op=schedules.cache_get event=%s err=%v", eventID, err)
		}
		if entry.Fresh(s.now(), scheduleFreshness) && entry.Matches(event.Version) && entry.Covers(requestingParticipantID) {
			return &ScheduleSet{
				Schedules:   entry.Schedules,
				Cached:      true,
				GeneratedAt: entry.GeneratedAt,
				Requested:   len(entry.ParticipantIDs),
				Generated:   len(entry.Schedules),
			}, nil
		}
	}

	// Concurrent regeneration requests for one event are collapsed so
	// cache writes never interleave. A collapsed caller outside the
	// stored participant set may have joined a run started for a
	// different requester; rerun until a run executed for this identity.
	outsider := requestingParticipantID != "" && !event.HasParticipant(requestingParticipantID)
	for {
		ran := false
		v, err, _ := s.group.Do(eventID, func() (any, error) {
			ran = true
			return s.regenerate(ctx, event, requestingParticipantID)
		})
		if err != nil {
			return nil, err
		}

		set := v.(*ScheduleSet)
		if ran || !outsider {
			return set, nil
		}
	}
}

func (s *ScheduleService) regenerate(
	ctx context.Context,
	event *domain.Event,
	requestingParticipantID string,
) (*ScheduleSet, error) {
	ids := event.ParticipantIDs
	if requestingParticipantID != "" && !event.HasParticipant(requestingParticipantID) {
		ids = append(append([]string{}, ids...), requestingParticipantID)
	}

	if len(ids) == 0 {
		return nil, fmt.Errorf("regenerate schedules for event %q: %w", event.ID, domain.ErrEmptyParticipantSet)
	}

	participants := ResolveParticipants(ctx, s.Users, ids)

	// All participants dropping out of resolution is a degraded empty
	// result, distinct from an empty invitation set.
	schedules := []domain.TravelSchedule{}
	if len(participants) > 0 {
		var err error
		schedules, err = GenerateEventSchedules(ctx, s.Provider, event, participants)
		if err != nil {
			return nil, fmt.Errorf("regenerate schedules for event %q: %w", event.ID, err)
		}
	}

	generatedAt := s.now()
	entry := &domain.ScheduleCacheEntry{
		Schedules:      schedules,
		GeneratedAt:    generatedAt,
		EventVersion:   event.Version,
		ParticipantIDs: ids,
	}
	if err := s.Cache.Put(ctx, event.ID, entry); err != nil {
		// The result is still valid; only the next request pays for
		// the missed cache write.
		log.Printf("op=schedules.cache_put event=%s err=%v", event.ID, err)
	}

	return &ScheduleSet{
		Schedules:   schedules,
		Cached:      false,
		GeneratedAt: generatedAt,
		Requested:   len(ids),
		Generated:   len(schedules),
	}, nil
}

// InvalidateSchedules removes the cache entry for an event. Event
// mutation paths must call this in the same logical operation as the
// mutation.
func (s *ScheduleService) InvalidateSchedules(ctx context.Context, eventID string) error {
	if err := s.Cache.Invalidate(ctx, eventID); err != nil {
		return fmt.Errorf("invalidate schedules: %w", err)
	}
	return nil
}

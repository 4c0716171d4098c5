package services

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/darren10101/SnapEvent-sub001/internal/domain"
	"github.com/darren10101/SnapEvent-sub001/internal/ports"
)

type scheduleResult struct {
	participantID string
	schedule      *domain.TravelSchedule
	err           error
}

// GenerateEventSchedules fans out schedule generation across the
// resolved participants, one task per participant bounded by a small
// semaphore. Each participant performs its two leg calls sequentially;
// one participant's failure never cancels another's in-flight calls.
//
// The returned list holds only successfully produced schedules, in
// completion order. An empty upstream participant list is the distinct
// domain.ErrEmptyParticipantSet; zero successes is an empty list.
func GenerateEventSchedules(
	ctx context.Context,
	provider ports.DirectionsProvider,
	event *domain.Event,
	participants []*domain.Participant,
) ([]domain.TravelSchedule, error) {
	if len(participants) == 0 {
		return nil, fmt.Errorf("generate schedules for event %q: %w", event.ID, domain.ErrEmptyParticipantSet)
	}

	sem := make(chan struct{}, 5)
	resultsCh := make(chan scheduleResult, len(participants))
	var wg sync.WaitGroup

	for _, p := range participants {
		wg.Add(1)
		go func(p *domain.Participant) {
			sem <- struct{}{}
			defer wg.Done()
			defer func() { <-sem }()

			schedule, err := GenerateSchedule(ctx, provider, p, event)
			resultsCh <- scheduleResult{participantID: p.ID, schedule: schedule, err: err}
		}(p)
	}

	wg.Wait()
	close(resultsCh)

	schedules := make([]domain.TravelSchedule, 0, len(participants))
	for res := range resultsCh {
		if res.err != nil {
			log.Printf("op=generate_schedules event=%s participant=%s omitted=true err=%v", event.ID, res.participantID, res.err)
			continue
		}
		schedules = append(schedules, *res.schedule)
	}

	log.Printf("op=generate_schedules event=%s generated=%d of=%d", event.ID, len(schedules), len(participants))

	return schedules, nil
}

package services

import (
	"context"
	"fmt"
	"time"

	"github.com/darren10101/SnapEvent-sub001/internal/domain"
	"github.com/darren10101/SnapEvent-sub001/internal/ports"
)

// arrivalBuffer is subtracted from the event start when the provider
// reports no arrival time for the outbound leg. Kept as a named
// constant so it can become mode-dependent without touching callers.
const arrivalBuffer = 5 * time.Minute

// GenerateSchedule produces the round-trip travel plan for one
// participant and one event: an outbound leg timed to arrive by the
// event start and a return leg departing at the event end.
//
// The participant's preferred modes are tried in order; an unsupported
// mode falls through to the next preference, any other route failure
// makes the whole schedule absent. Partial schedules are never emitted.
func GenerateSchedule(
	ctx context.Context,
	provider ports.DirectionsProvider,
	participant *domain.Participant,
	event *domain.Event,
) (*domain.TravelSchedule, error) {
	origin, ok := event.OriginFor(participant)
	if !ok {
		return nil, fmt.Errorf("generate schedule: participant %q has no usable origin", participant.ID)
	}

	var lastErr error
	for _, tag := range participant.PreferredModes() {
		mode, known := domain.NormalizeMode(tag)
		if !known {
			lastErr = &domain.RouteError{Kind: domain.InvalidMode, Msg: "unknown mode tag " + tag}
			continue
		}

		schedule, err := generateForMode(ctx, provider, participant, event, origin, mode)
		if err != nil {
			if domain.IsRouteKind(err, domain.InvalidMode) {
				lastErr = err
				continue
			}
			return nil, fmt.Errorf("generate schedule for %q: %w", participant.ID, err)
		}

		return schedule, nil
	}

	return nil, fmt.Errorf("generate schedule for %q: no supported transport mode: %w", participant.ID, lastErr)
}

func generateForMode(
	ctx context.Context,
	provider ports.DirectionsProvider,
	participant *domain.Participant,
	event *domain.Event,
	origin domain.Coordinates,
	mode string,
) (*domain.TravelSchedule, error) {
	outbound, err := provider.GetRoute(ctx, origin, event.Location, mode, ports.TimingConstraint{ArriveBy: &event.Start})
	if err != nil {
		return nil, fmt.Errorf("outbound leg: %w", err)
	}

	ret, err := provider.GetRoute(ctx, event.Location, origin, mode, ports.TimingConstraint{DepartAt: &event.End})
	if err != nil {
		return nil, fmt.Errorf("return leg: %w", err)
	}

	reconcileOutbound(outbound, event.Start)
	reconcileReturn(ret, event.End)

	return &domain.TravelSchedule{
		ParticipantID:   participant.ID,
		ParticipantName: participant.DisplayName,
		TransportMode:   mode,
		Outbound:        *outbound,
		Return:          *ret,
	}, nil
}

// reconcileOutbound fills missing provider timing fields for the leg
// toward the event. A missing arrival is pinned arrivalBuffer before
// the event start; a missing departure is derived from the arrival and
// the leg's own duration, never earlier than necessary.
func reconcileOutbound(leg *domain.TravelLeg, eventStart time.Time) {
	if leg.ArrivalTime == nil {
		arrival := eventStart.Add(-arrivalBuffer)
		leg.ArrivalTime = &arrival
	}
	if leg.DepartureTime == nil {
		departure := leg.ArrivalTime.Add(-time.Duration(leg.DurationMinutes) * time.Minute)
		leg.DepartureTime = &departure
	}
}

// reconcileReturn fills missing timing fields for the leg home: the
// departure defaults to the event end, the arrival to the departure
// plus the leg duration. Absence of a provider timing field never
// means zero duration.
func reconcileReturn(leg *domain.TravelLeg, eventEnd time.Time) {
	if leg.DepartureTime == nil {
		departure := eventEnd
		leg.DepartureTime = &departure
	}
	if leg.ArrivalTime == nil {
		arrival := leg.DepartureTime.Add(time.Duration(leg.DurationMinutes) * time.Minute)
		leg.ArrivalTime = &arrival
	}
}

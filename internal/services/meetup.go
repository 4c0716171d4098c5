package services

import (
	"context"
	"fmt"

	"github.com/darren10101/SnapEvent-sub001/internal/domain"
	"github.com/darren10101/SnapEvent-sub001/internal/platform/obs"
	"github.com/darren10101/SnapEvent-sub001/internal/ports"
)

// MeetupService computes a fair meeting point for a group that has not
// yet chosen a venue. It shares no state with the travel-schedule
// cache; every call computes fresh.
type MeetupService struct {
	Provider  ports.DirectionsProvider
	Placement PlacementStrategy
}

func NewMeetupService(provider ports.DirectionsProvider, placement PlacementStrategy) *MeetupService {
	if placement == nil {
		placement = CentroidStrategy{}
	}
	return &MeetupService{Provider: provider, Placement: placement}
}

// FindMeetupPoint places a candidate location, queries a one-to-many
// matrix from every participant to it, and evaluates the travel times
// against the maximum-travel-time constraint.
//
// A failed matrix call fails the whole operation. Individual failed
// cells are reported with a nil duration and excluded from max/average;
// the call still succeeds provided at least one cell succeeded.
func (m *MeetupService) FindMeetupPoint(
	ctx context.Context,
	participants []domain.MeetupParticipant,
	constraints domain.MeetupConstraints,
) (_ *domain.MeetupResult, err error) {
	defer obs.Time(ctx, "meetup.find_point")(&err)

	if len(participants) == 0 {
		return nil, fmt.Errorf("find meetup point: participant list must not be empty")
	}
	constraints = constraints.WithDefaults()

	candidate, err := m.Placement.Place(participants)
	if err != nil {
		return nil, fmt.Errorf("find meetup point: place candidate: %w", err)
	}

	origins := make([]domain.Coordinates, 0, len(participants))
	for _, p := range participants {
		origins = append(origins, p.Location)
	}

	grid, err := m.Provider.GetMatrix(ctx, origins, []domain.Coordinates{candidate}, domain.ModeDriving)
	if err != nil {
		return nil, fmt.Errorf("find meetup point: matrix to candidate: %w", err)
	}
	if len(grid) != len(participants) {
		return nil, &domain.RouteError{
			Kind: domain.ProviderError,
			Msg:  fmt.Sprintf("matrix returned %d rows for %d participants", len(grid), len(participants)),
		}
	}

	result := &domain.MeetupResult{
		CandidateLocation:    candidate,
		PerParticipantTravel: make([]domain.ParticipantTravelTime, 0, len(participants)),
	}

	maxDuration := 0
	sum := 0
	succeeded := 0

	for i, p := range participants {
		if len(grid[i]) != 1 || grid[i][0].Status != ports.MatrixStatusOK {
			result.PerParticipantTravel = append(result.PerParticipantTravel, domain.ParticipantTravelTime{
				ParticipantID: p.ID,
			})
			continue
		}

		cell := grid[i][0]
		duration := cell.DurationMinutes
		result.PerParticipantTravel = append(result.PerParticipantTravel, domain.ParticipantTravelTime{
			ParticipantID:   p.ID,
			DurationMinutes: &duration,
			DistanceText:    cell.DistanceText,
		})

		if duration > maxDuration {
			maxDuration = duration
		}
		sum += duration
		succeeded++
	}

	if succeeded == 0 {
		return nil, &domain.RouteError{Kind: domain.ProviderError, Msg: "matrix failed for every participant"}
	}

	result.MaxDurationMinutes = maxDuration
	result.AverageDurationMinutes = float64(sum) / float64(succeeded)
	result.WithinConstraint = maxDuration <= constraints.MaxTravelTimeMinutes

	return result, nil
}

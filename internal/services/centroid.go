package services

import (
	"errors"

	"github.com/darren10101/SnapEvent-sub001/internal/domain"
)

// PlacementStrategy proposes a candidate meeting point for a set of
// participants. The constraint-evaluation contract in FindMeetupPoint
// is independent of the strategy, so a smarter placement heuristic can
// replace the centroid without touching callers.
type PlacementStrategy interface {
	Place(participants []domain.MeetupParticipant) (domain.Coordinates, error)
}

// CentroidStrategy places the candidate at the unweighted arithmetic
// mean of all participant coordinates. A deliberate simplification: it
// ignores road networks, barriers, and venue availability.
type CentroidStrategy struct{}

func (CentroidStrategy) Place(participants []domain.MeetupParticipant) (domain.Coordinates, error) {
	if len(participants) == 0 {
		return domain.Coordinates{}, errors.New("centroid: participant list must not be empty")
	}

	var sumLat, sumLng float64
	for _, p := range participants {
		sumLat += p.Location.Lat
		sumLng += p.Location.Lng
	}

	n := float64(len(participants))
	return domain.Coordinates{Lat: sumLat / n, Lng: sumLng / n}, nil
}

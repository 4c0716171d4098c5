package services

import (
	"context"
	"math"
	"testing"

	"github.com/darren10101/SnapEvent-sub001/internal/adapters/directions"
	"github.com/darren10101/SnapEvent-sub001/internal/domain"
	"github.com/darren10101/SnapEvent-sub001/internal/ports"
)

func meetupTrio() []domain.MeetupParticipant {
	return []domain.MeetupParticipant{
		{ID: "a", Name: "A", Location: domain.Coordinates{Lat: 0, Lng: 0}},
		{ID: "b", Name: "B", Location: domain.Coordinates{Lat: 0, Lng: 2}},
		{ID: "c", Name: "C", Location: domain.Coordinates{Lat: 2, Lng: 0}},
	}
}

func okCell(minutes int) []ports.MatrixCell {
	return []ports.MatrixCell{{DurationMinutes: minutes, DistanceText: "10 km", Status: ports.MatrixStatusOK}}
}

func TestCentroidStrategy(t *testing.T) {
	candidate, err := CentroidStrategy{}.Place(meetupTrio())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := 2.0 / 3.0
	if math.Abs(candidate.Lat-want) > 1e-9 || math.Abs(candidate.Lng-want) > 1e-9 {
		t.Errorf("centroid = (%v, %v), want (%v, %v)", candidate.Lat, candidate.Lng, want, want)
	}
}

func TestFindMeetupPointConstraintEvaluation(t *testing.T) {
	provider := directions.NewMockDirectionsProvider(nil)
	provider.MatrixGrid = [][]ports.MatrixCell{okCell(30), okCell(45), okCell(90)}

	svc := NewMeetupService(provider, CentroidStrategy{})
	result, err := svc.FindMeetupPoint(context.Background(), meetupTrio(), domain.MeetupConstraints{MaxTravelTimeMinutes: 60})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.WithinConstraint {
		t.Error("90 minute worst case must violate a 60 minute constraint")
	}
	if result.MaxDurationMinutes != 90 {
		t.Errorf("max = %d, want 90", result.MaxDurationMinutes)
	}
	if math.Abs(result.AverageDurationMinutes-55) > 1e-9 {
		t.Errorf("average = %v, want 55", result.AverageDurationMinutes)
	}
}

func TestFindMeetupPointPartialCellFailure(t *testing.T) {
	provider := directions.NewMockDirectionsProvider(nil)
	provider.MatrixGrid = [][]ports.MatrixCell{
		okCell(30),
		{{Status: ports.MatrixStatusFailed}},
		okCell(50),
	}

	svc := NewMeetupService(provider, CentroidStrategy{})
	result, err := svc.FindMeetupPoint(context.Background(), meetupTrio(), domain.MeetupConstraints{})
	if err != nil {
		t.Fatalf("partial cell failure must not fail the call: %v", err)
	}

	nilCount := 0
	for _, p := range result.PerParticipantTravel {
		if p.DurationMinutes == nil {
			nilCount++
		}
	}
	if nilCount != 1 {
		t.Fatalf("expected exactly 1 failed participant, got %d", nilCount)
	}

	if result.MaxDurationMinutes != 50 {
		t.Errorf("max = %d, want 50 from the surviving cells", result.MaxDurationMinutes)
	}
	if math.Abs(result.AverageDurationMinutes-40) > 1e-9 {
		t.Errorf("average = %v, want 40 from the surviving cells", result.AverageDurationMinutes)
	}
	if !result.WithinConstraint {
		t.Error("50 minutes is within the default 60 minute constraint")
	}
}

func TestFindMeetupPointMatrixFailure(t *testing.T) {
	provider := directions.NewMockDirectionsProvider(nil)
	provider.MatrixErr = &domain.RouteError{Kind: domain.ProviderError, Msg: "matrix down"}

	svc := NewMeetupService(provider, CentroidStrategy{})
	if _, err := svc.FindMeetupPoint(context.Background(), meetupTrio(), domain.MeetupConstraints{}); err == nil {
		t.Fatal("whole-matrix failure must fail the call")
	}
}

func TestFindMeetupPointAllCellsFailed(t *testing.T) {
	provider := directions.NewMockDirectionsProvider(nil)
	provider.MatrixGrid = [][]ports.MatrixCell{
		{{Status: ports.MatrixStatusFailed}},
		{{Status: ports.MatrixStatusFailed}},
		{{Status: ports.MatrixStatusFailed}},
	}

	svc := NewMeetupService(provider, CentroidStrategy{})
	_, err := svc.FindMeetupPoint(context.Background(), meetupTrio(), domain.MeetupConstraints{})
	if !domain.IsRouteKind(err, domain.ProviderError) {
		t.Fatalf("expected ProviderError when every cell fails, got %v", err)
	}
}

package services

import (
	"context"
	"testing"
	"time"

	"github.com/darren10101/SnapEvent-sub001/internal/adapters/directions"
	"github.com/darren10101/SnapEvent-sub001/internal/domain"
)

func roundTrip(from domain.Coordinates, mode string, minutes int) []directions.MockRoute {
	leg := domain.TravelLeg{DurationMinutes: minutes, DistanceText: "12 km"}
	return []directions.MockRoute{
		{From: from, To: venueLoc, Mode: mode, Leg: leg},
		{From: venueLoc, To: from, Mode: mode, Leg: leg},
	}
}

func TestGenerateScheduleReconcilesTiming(t *testing.T) {
	provider := directions.NewMockDirectionsProvider(roundTrip(aliceLoc, domain.ModeDriving, 30))
	alice := &domain.Participant{
		ID:              "alice",
		DisplayName:     "Alice",
		DefaultLocation: &aliceLoc,
		TransportModes:  []string{"driving"},
	}
	ev := testEvent("alice")

	s, err := GenerateSchedule(context.Background(), provider, alice, ev)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if s.TransportMode != domain.ModeDriving {
		t.Errorf("mode = %q, want driving", s.TransportMode)
	}

	// The provider returned no timing fields, so the outbound arrival
	// is pinned five minutes before the event start.
	wantArrival := eventStart.Add(-5 * time.Minute)
	if s.Outbound.ArrivalTime == nil || !s.Outbound.ArrivalTime.Equal(wantArrival) {
		t.Errorf("outbound arrival = %v, want %v", s.Outbound.ArrivalTime, wantArrival)
	}
	wantDeparture := wantArrival.Add(-30 * time.Minute)
	if s.Outbound.DepartureTime == nil || !s.Outbound.DepartureTime.Equal(wantDeparture) {
		t.Errorf("outbound departure = %v, want %v", s.Outbound.DepartureTime, wantDeparture)
	}

	if s.Outbound.ArrivalTime.After(ev.Start) {
		t.Error("outbound arrival must not be after the event start")
	}

	if s.Return.DepartureTime == nil || !s.Return.DepartureTime.Equal(eventEnd) {
		t.Errorf("return departure = %v, want %v", s.Return.DepartureTime, eventEnd)
	}
	wantHome := eventEnd.Add(30 * time.Minute)
	if s.Return.ArrivalTime == nil || !s.Return.ArrivalTime.Equal(wantHome) {
		t.Errorf("return arrival = %v, want %v", s.Return.ArrivalTime, wantHome)
	}
	if s.Return.DepartureTime.Before(ev.End) {
		t.Error("return departure must not be before the event end")
	}
}

func TestGenerateScheduleKeepsProviderTiming(t *testing.T) {
	depart := eventStart.Add(-50 * time.Minute)
	arrive := eventStart.Add(-10 * time.Minute)
	leg := domain.TravelLeg{
		DurationMinutes: 40,
		DistanceText:    "18 km",
		DepartureTime:   &depart,
		ArrivalTime:     &arrive,
	}
	provider := directions.NewMockDirectionsProvider([]directions.MockRoute{
		{From: aliceLoc, To: venueLoc, Mode: domain.ModeTransit, Leg: leg},
		{From: venueLoc, To: aliceLoc, Mode: domain.ModeTransit, Leg: leg},
	})

	alice := &domain.Participant{
		ID:              "alice",
		DefaultLocation: &aliceLoc,
		TransportModes:  []string{"transit"},
	}

	s, err := GenerateSchedule(context.Background(), provider, alice, testEvent("alice"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !s.Outbound.ArrivalTime.Equal(arrive) {
		t.Errorf("provider arrival overwritten: got %v, want %v", s.Outbound.ArrivalTime, arrive)
	}
	if !s.Outbound.DepartureTime.Equal(depart) {
		t.Errorf("provider departure overwritten: got %v, want %v", s.Outbound.DepartureTime, depart)
	}
}

func TestGenerateScheduleModeFallback(t *testing.T) {
	provider := directions.NewMockDirectionsProvider(roundTrip(aliceLoc, domain.ModeWalking, 45))
	alice := &domain.Participant{
		ID:              "alice",
		DefaultLocation: &aliceLoc,
		TransportModes:  []string{"hoverboard", "walk"},
	}

	s, err := GenerateSchedule(context.Background(), provider, alice, testEvent("alice"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.TransportMode != domain.ModeWalking {
		t.Errorf("mode = %q, want walking after fallback", s.TransportMode)
	}
}

func TestGenerateScheduleUsesOriginOverride(t *testing.T) {
	office := domain.Coordinates{Lat: 43.66, Lng: -79.39}
	provider := directions.NewMockDirectionsProvider(roundTrip(office, domain.ModeDriving, 10))

	alice := &domain.Participant{
		ID:              "alice",
		DefaultLocation: &aliceLoc,
		TransportModes:  []string{"driving"},
	}
	ev := testEvent("alice")
	ev.OriginOverrides["alice"] = domain.OriginOverride{Location: office, Description: "office"}

	// Only routes from the override origin are scripted; success proves
	// the override superseded the default location.
	if _, err := GenerateSchedule(context.Background(), provider, alice, ev); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestGenerateScheduleAbsentOnMissingRoute(t *testing.T) {
	// Outbound scripted, return missing: no partial schedule.
	leg := domain.TravelLeg{DurationMinutes: 30}
	provider := directions.NewMockDirectionsProvider([]directions.MockRoute{
		{From: aliceLoc, To: venueLoc, Mode: domain.ModeDriving, Leg: leg},
	})

	alice := &domain.Participant{ID: "alice", DefaultLocation: &aliceLoc}
	if _, err := GenerateSchedule(context.Background(), provider, alice, testEvent("alice")); err == nil {
		t.Fatal("expected error when the return leg has no route")
	}
}

func TestGenerateScheduleNoUsableOrigin(t *testing.T) {
	provider := directions.NewMockDirectionsProvider(nil)
	nowhere := &domain.Participant{ID: "ghost"}

	if _, err := GenerateSchedule(context.Background(), provider, nowhere, testEvent("ghost")); err == nil {
		t.Fatal("expected error for participant without origin")
	}
	if provider.RouteCalls != 0 {
		t.Errorf("provider called %d times for unroutable participant", provider.RouteCalls)
	}
}

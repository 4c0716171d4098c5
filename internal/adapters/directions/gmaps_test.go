package directions

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/darren10101/SnapEvent-sub001/internal/domain"
	"github.com/darren10101/SnapEvent-sub001/internal/ports"
)

func testProvider(t *testing.T, handler http.HandlerFunc) *GoogleDirectionsProvider {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	p, err := NewGoogleDirectionsProvider("test-key")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p.baseURL = srv.URL
	return p
}

const directionsBody = `{
	"status": "OK",
	"routes": [{
		"legs": [{
			"duration": {"value": 1800, "text": "30 mins"},
			"distance": {"value": 12000, "text": "12 km"},
			"arrival_time": {"value": 1757526900, "text": "5:55 PM"},
			"steps": [
				{
					"html_instructions": "Head <b>north</b> on <b>Main St</b>",
					"duration": {"value": 300},
					"distance": {"text": "2 km"},
					"travel_mode": "DRIVING"
				},
				{
					"html_instructions": "Turn <b>left</b>",
					"duration": {"value": 1500},
					"distance": {"text": "10 km"},
					"travel_mode": "DRIVING"
				}
			]
		}]
	}]
}`

func TestGetRouteNormalizesLeg(t *testing.T) {
	var gotQuery map[string]string
	p := testProvider(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{
			"origin":       r.URL.Query().Get("origin"),
			"destination":  r.URL.Query().Get("destination"),
			"mode":         r.URL.Query().Get("mode"),
			"arrival_time": r.URL.Query().Get("arrival_time"),
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(directionsBody))
	})

	origin := domain.Coordinates{Lat: 43.6, Lng: -79.5}
	dest := domain.Coordinates{Lat: 43.65, Lng: -79.38}
	arriveBy := time.Date(2026, 9, 10, 18, 0, 0, 0, time.UTC)

	leg, err := p.GetRoute(context.Background(), origin, dest, domain.ModeDriving, ports.TimingConstraint{ArriveBy: &arriveBy})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotQuery["origin"] != "43.6,-79.5" || gotQuery["destination"] != "43.65,-79.38" {
		t.Errorf("coordinates not forwarded: %v", gotQuery)
	}
	if gotQuery["mode"] != "driving" {
		t.Errorf("mode = %q, want driving", gotQuery["mode"])
	}
	if gotQuery["arrival_time"] == "" {
		t.Error("arrive-by constraint not forwarded")
	}

	if leg.DurationMinutes != 30 {
		t.Errorf("duration = %d minutes, want 30", leg.DurationMinutes)
	}
	if leg.DistanceText != "12 km" {
		t.Errorf("distance = %q, want 12 km", leg.DistanceText)
	}
	if leg.ArrivalTime == nil {
		t.Fatal("arrival time missing")
	}
	if leg.DepartureTime != nil {
		t.Error("departure time fabricated from nothing")
	}

	if len(leg.Steps) != 2 {
		t.Fatalf("expected 2 steps, got %d", len(leg.Steps))
	}
	if leg.Steps[0].Instruction != "Head north on Main St" {
		t.Errorf("instruction markup not stripped: %q", leg.Steps[0].Instruction)
	}
	if leg.Steps[0].TravelMode != "driving" {
		t.Errorf("step mode = %q, want driving", leg.Steps[0].TravelMode)
	}
}

func TestGetRouteZeroResults(t *testing.T) {
	p := testProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "ZERO_RESULTS", "routes": []}`))
	})

	_, err := p.GetRoute(context.Background(), domain.Coordinates{}, domain.Coordinates{Lat: 1}, domain.ModeWalking, ports.TimingConstraint{})
	if !domain.IsRouteKind(err, domain.NoRoute) {
		t.Fatalf("expected NoRoute, got %v", err)
	}
}

func TestGetRouteInvalidModeSkipsNetwork(t *testing.T) {
	called := false
	p := testProvider(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	_, err := p.GetRoute(context.Background(), domain.Coordinates{}, domain.Coordinates{}, "hoverboard", ports.TimingConstraint{})
	if !domain.IsRouteKind(err, domain.InvalidMode) {
		t.Fatalf("expected InvalidMode, got %v", err)
	}
	if called {
		t.Error("invalid mode must not reach the provider")
	}
}

func TestGetRouteRetriesTransientFailure(t *testing.T) {
	attempts := 0
	p := testProvider(t, func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte(directionsBody))
	})

	_, err := p.GetRoute(context.Background(), domain.Coordinates{}, domain.Coordinates{Lat: 1}, domain.ModeDriving, ports.TimingConstraint{})
	if err != nil {
		t.Fatalf("unexpected error after retry: %v", err)
	}
	if attempts != 2 {
		t.Errorf("attempts = %d, want 2", attempts)
	}
}

func TestGetMatrixGridAlignment(t *testing.T) {
	p := testProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"status": "OK",
			"rows": [
				{"elements": [{"status": "OK", "duration": {"value": 1800}, "distance": {"text": "12 km"}}]},
				{"elements": [{"status": "ZERO_RESULTS"}]}
			]
		}`))
	})

	origins := []domain.Coordinates{{Lat: 1}, {Lat: 2}}
	dests := []domain.Coordinates{{Lat: 3}}

	grid, err := p.GetMatrix(context.Background(), origins, dests, domain.ModeDriving)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(grid) != 2 || len(grid[0]) != 1 {
		t.Fatalf("grid shape %dx%d, want 2x1", len(grid), len(grid[0]))
	}
	if grid[0][0].Status != ports.MatrixStatusOK || grid[0][0].DurationMinutes != 30 {
		t.Errorf("cell[0][0] = %+v", grid[0][0])
	}
	if grid[1][0].Status != ports.MatrixStatusFailed {
		t.Errorf("cell[1][0] = %+v, want failed", grid[1][0])
	}
}

func TestGetMatrixTopLevelFailure(t *testing.T) {
	p := testProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "OVER_QUERY_LIMIT", "rows": []}`))
	})

	_, err := p.GetMatrix(context.Background(), []domain.Coordinates{{Lat: 1}}, []domain.Coordinates{{Lat: 2}}, domain.ModeDriving)
	if !domain.IsRouteKind(err, domain.ProviderError) {
		t.Fatalf("expected ProviderError, got %v", err)
	}
}

package directions

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/darren10101/SnapEvent-sub001/internal/domain"
	"github.com/darren10101/SnapEvent-sub001/internal/platform/obs"
	"github.com/darren10101/SnapEvent-sub001/internal/ports"
)

type valueText struct {
	Value int64  `json:"value"`
	Text  string `json:"text"`
}

type directionsStep struct {
	HTMLInstructions string    `json:"html_instructions"`
	Duration         valueText `json:"duration"`
	Distance         valueText `json:"distance"`
	TravelMode       string    `json:"travel_mode"`
}

type directionsLeg struct {
	Duration      valueText        `json:"duration"`
	Distance      valueText        `json:"distance"`
	DepartureTime *valueText       `json:"departure_time"`
	ArrivalTime   *valueText       `json:"arrival_time"`
	Steps         []directionsStep `json:"steps"`
}

type directionsResponse struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
	Routes       []struct {
		Legs []directionsLeg `json:"legs"`
	} `json:"routes"`
}

// GetRoute issues one directions call and normalizes the first route's
// first leg. Failures are classified via domain.RouteError.
func (g *GoogleDirectionsProvider) GetRoute(
	ctx context.Context,
	origin, destination domain.Coordinates,
	mode string,
	timing ports.TimingConstraint,
) (_ *domain.TravelLeg, err error) {
	defer obs.Time(ctx, "gmaps.GetRoute")(&err)

	if err := validMode(mode); err != nil {
		return nil, err
	}

	endpoint := g.baseURL + "/maps/api/directions/json"

	resp, err := g.doWithRetry(ctx, func() (*http.Request, error) {
		req, err := g.newRequest(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, err
		}
		q := req.URL.Query()
		q.Set("origin", origin.LatLng())
		q.Set("destination", destination.LatLng())
		q.Set("mode", mode)
		q.Set("key", g.apiKey)
		if timing.ArriveBy != nil {
			q.Set("arrival_time", strconv.FormatInt(timing.ArriveBy.Unix(), 10))
		} else if timing.DepartAt != nil {
			q.Set("departure_time", strconv.FormatInt(timing.DepartAt.Unix(), 10))
		}
		req.URL.RawQuery = q.Encode()
		return req, nil
	})
	if err != nil {
		return nil, &domain.RouteError{Kind: domain.ProviderError, Msg: "directions request failed", Err: err}
	}
	defer resp.Body.Close()

	var decoded directionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, &domain.RouteError{Kind: domain.ProviderError, Msg: "decode directions response", Err: err}
	}

	switch decoded.Status {
	case "OK":
	case "ZERO_RESULTS", "NOT_FOUND":
		return nil, &domain.RouteError{
			Kind: domain.NoRoute,
			Msg:  fmt.Sprintf("no %s route from %s to %s", mode, origin.LatLng(), destination.LatLng()),
		}
	default:
		return nil, &domain.RouteError{
			Kind: domain.ProviderError,
			Msg:  fmt.Sprintf("directions status %s: %s", decoded.Status, decoded.ErrorMessage),
		}
	}

	if len(decoded.Routes) == 0 || len(decoded.Routes[0].Legs) == 0 {
		return nil, &domain.RouteError{Kind: domain.NoRoute, Msg: "directions response contains no legs"}
	}

	leg := decoded.Routes[0].Legs[0]
	return normalizeLeg(leg, mode), nil
}

// normalizeLeg converts a provider leg into the internal representation.
// Timing fields are transit-dependent and may be absent; absence is
// preserved so the schedule generator can reconcile against the event
// window instead of assuming zero duration.
func normalizeLeg(leg directionsLeg, mode string) *domain.TravelLeg {
	out := &domain.TravelLeg{
		DurationMinutes: minutesFromSeconds(leg.Duration.Value),
		DistanceText:    leg.Distance.Text,
		Steps:           make([]domain.TravelStep, 0, len(leg.Steps)),
	}

	if leg.DepartureTime != nil {
		t := time.Unix(leg.DepartureTime.Value, 0).UTC()
		out.DepartureTime = &t
	}
	if leg.ArrivalTime != nil {
		t := time.Unix(leg.ArrivalTime.Value, 0).UTC()
		out.ArrivalTime = &t
	}

	for _, s := range leg.Steps {
		stepMode := strings.ToLower(s.TravelMode)
		if stepMode == "" {
			stepMode = mode
		}
		out.Steps = append(out.Steps, domain.TravelStep{
			Instruction:     stripTags(s.HTMLInstructions),
			DurationMinutes: minutesFromSeconds(s.Duration.Value),
			DistanceText:    s.Distance.Text,
			TravelMode:      stepMode,
		})
	}

	return out
}

func minutesFromSeconds(sec int64) int {
	m := int(math.Round(float64(sec) / 60))
	if m < 0 {
		return 0
	}
	return m
}

// stripTags flattens the provider's HTML instruction markup to plain text.
func stripTags(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	inTag := false
	for _, r := range s {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

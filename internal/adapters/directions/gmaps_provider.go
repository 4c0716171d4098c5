package directions

import (
	"errors"
	"net/http"
	"time"

	"github.com/darren10101/SnapEvent-sub001/internal/domain"
)

// GoogleDirectionsProvider implements DirectionsProvider against the
// Google Maps Directions and Distance Matrix web services.
//
// It coordinates:
//   - Request construction with arrival/departure timing constraints
//   - Response normalization into domain travel legs
//   - External API calls with retry/backoff and a bounded per-call timeout
//
// The provider is safe for concurrent use.
type GoogleDirectionsProvider struct {
	session *http.Client
	apiKey  string
	baseURL string
}

func NewGoogleDirectionsProvider(apiKey string) (*GoogleDirectionsProvider, error) {
	if apiKey == "" {
		return nil, errors.New("google maps api key is empty")
	}

	provider := &GoogleDirectionsProvider{
		session: &http.Client{Timeout: 10 * time.Second},
		apiKey:  apiKey,
		baseURL: "https://maps.googleapis.com",
	}

	return provider, nil
}

// validMode rejects unsupported transport modes before any network
// call so mode fallback stays cheap and deterministic.
func validMode(mode string) error {
	switch mode {
	case domain.ModeDriving, domain.ModeWalking, domain.ModeBicycling, domain.ModeTransit:
		return nil
	}
	return &domain.RouteError{Kind: domain.InvalidMode, Msg: "unsupported transport mode " + mode}
}

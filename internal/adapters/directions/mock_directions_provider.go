package directions

import (
	"context"
	"sync"

	"github.com/darren10101/SnapEvent-sub001/internal/domain"
	"github.com/darren10101/SnapEvent-sub001/internal/ports"
)

type MockRoute struct {
	From, To domain.Coordinates
	Mode     string
	Leg      domain.TravelLeg
	Err      error
}

// MockDirectionsProvider serves scripted routes and matrix grids for
// tests. Unscripted route lookups fail with NoRoute.
type MockDirectionsProvider struct {
	routes map[string]MockRoute

	MatrixGrid [][]ports.MatrixCell
	MatrixErr  error

	// Call counters are guarded because schedule generation fans out
	// route lookups across goroutines. Read them only after the call
	// under test has returned.
	mu          sync.Mutex
	RouteCalls  int
	MatrixCalls int
}

func NewMockDirectionsProvider(routes []MockRoute) *MockDirectionsProvider {
	m := make(map[string]MockRoute, len(routes))
	for _, r := range routes {
		m[routeKey(r.From, r.To, r.Mode)] = r
	}
	return &MockDirectionsProvider{routes: m}
}

func routeKey(from, to domain.Coordinates, mode string) string {
	return from.LatLng() + "|" + to.LatLng() + "|" + mode
}

func (p *MockDirectionsProvider) GetRoute(
	ctx context.Context,
	origin, destination domain.Coordinates,
	mode string,
	timing ports.TimingConstraint,
) (*domain.TravelLeg, error) {
	p.mu.Lock()
	p.RouteCalls++
	p.mu.Unlock()

	r, ok := p.routes[routeKey(origin, destination, mode)]
	if !ok {
		return nil, &domain.RouteError{
			Kind: domain.NoRoute,
			Msg:  "no scripted route " + routeKey(origin, destination, mode),
		}
	}
	if r.Err != nil {
		return nil, r.Err
	}

	leg := r.Leg
	return &leg, nil
}

func (p *MockDirectionsProvider) GetMatrix(
	ctx context.Context,
	origins, destinations []domain.Coordinates,
	mode string,
) ([][]ports.MatrixCell, error) {
	p.mu.Lock()
	p.MatrixCalls++
	p.mu.Unlock()

	if p.MatrixErr != nil {
		return nil, p.MatrixErr
	}
	return p.MatrixGrid, nil
}

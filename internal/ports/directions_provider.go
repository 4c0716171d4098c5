package ports

import (
	"context"
	"time"

	"github.com/darren10101/SnapEvent-sub001/internal/domain"
)

// Timing constraint for a directions request. At most one of the two
// fields is set; both nil means "leave now".
type TimingConstraint struct {
	ArriveBy *time.Time
	DepartAt *time.Time
}

// Per-cell matrix status values.
const (
	MatrixStatusOK     = "OK"
	MatrixStatusFailed = "FAILED"
)

// One cell of a distance-matrix response. Duration and distance are
// only meaningful when Status is MatrixStatusOK.
type MatrixCell struct {
	DurationMinutes int
	DistanceText    string
	Status          string
}

// Contract for the external routing provider.
type DirectionsProvider interface {
	// GetRoute returns the first route's first leg normalized as a
	// TravelLeg, or a *domain.RouteError describing the failure.
	GetRoute(ctx context.Context, origin, destination domain.Coordinates, mode string, timing TimingConstraint) (*domain.TravelLeg, error)

	// GetMatrix returns a grid aligned to the cartesian product of the
	// inputs: row = origin index, column = destination index. Callers
	// must not assume symmetry.
	GetMatrix(ctx context.Context, origins, destinations []domain.Coordinates, mode string) ([][]MatrixCell, error)
}

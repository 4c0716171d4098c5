package domain

import (
	"errors"
	"fmt"
)

// Classification of a failed routing-provider call.
type RouteErrorKind string

const (
	// The provider found no path for the requested mode.
	NoRoute RouteErrorKind = "no_route"
	// Timeout, 5xx, or malformed provider response.
	ProviderError RouteErrorKind = "provider_error"
	// The transport mode is not supported by the provider.
	InvalidMode RouteErrorKind = "invalid_mode"
)

// RouteError is returned by the directions provider as a value; route
// failures are never swallowed into empty routes.
type RouteError struct {
	Kind RouteErrorKind
	Msg  string
	Err  error
}

func (e *RouteError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("route %s: %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("route %s: %s", e.Kind, e.Msg)
}

func (e *RouteError) Unwrap() error { return e.Err }

// IsRouteKind reports whether err carries a RouteError of the given kind.
func IsRouteKind(err error, kind RouteErrorKind) bool {
	var re *RouteError
	return errors.As(err, &re) && re.Kind == kind
}

var (
	// The requested event does not exist; fatal for the whole request.
	ErrEventNotFound = errors.New("event not found")
	// The event has nobody to plan for, distinct from planning failing
	// for everyone.
	ErrEmptyParticipantSet = errors.New("event has no participants")
)

package ports

import (
	"context"
	"time"

	"github.com/darren10101/SnapEvent-sub001/internal/domain"
)

// Field changes for an event mutation. Nil fields are left untouched.
// Any applied change bumps the event version; callers are responsible
// for invalidating cached schedules in the same logical operation.
type EventChanges struct {
	Title          *string
	Location       *domain.Coordinates
	Start          *time.Time
	End            *time.Time
	ParticipantIDs *[]string
}

// IsZero reports whether the change set touches nothing.
func (c EventChanges) IsZero() bool {
	return c.Title == nil && c.Location == nil && c.Start == nil && c.End == nil && c.ParticipantIDs == nil
}

// Port: boundary for event persistence. Get returns
// domain.ErrEventNotFound (possibly wrapped) for unknown ids.
type EventRepository interface {
	GetEvent(ctx context.Context, id string) (*domain.Event, error)
	PutEvent(ctx context.Context, ev *domain.Event) error
	UpdateEvent(ctx context.Context, id string, changes EventChanges) error
	SetOriginOverride(ctx context.Context, eventID, participantID string, ov domain.OriginOverride) error
	RemoveOriginOverride(ctx context.Context, eventID, participantID string) error
	DeleteEvent(ctx context.Context, id string) error
	ListEvents(ctx context.Context) ([]*domain.Event, error)
}

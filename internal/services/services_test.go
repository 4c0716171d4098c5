package services

import (
	"context"
	"fmt"
	"time"

	"github.com/darren10101/SnapEvent-sub001/internal/domain"
	"github.com/darren10101/SnapEvent-sub001/internal/ports"
)

// Shared fixtures for service tests.

var (
	venueLoc = domain.Coordinates{Lat: 43.65, Lng: -79.38}
	aliceLoc = domain.Coordinates{Lat: 43.6, Lng: -79.5}
	bobLoc   = domain.Coordinates{Lat: 43.7, Lng: -79.3}

	eventStart = time.Date(2026, 9, 10, 18, 0, 0, 0, time.UTC)
	eventEnd   = time.Date(2026, 9, 10, 20, 0, 0, 0, time.UTC)
)

func testEvent(participantIDs ...string) *domain.Event {
	return &domain.Event{
		ID:              "e1",
		Title:           "dinner",
		Location:        venueLoc,
		Start:           eventStart,
		End:             eventEnd,
		ParticipantIDs:  participantIDs,
		OriginOverrides: map[string]domain.OriginOverride{},
		Version:         time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
	}
}

type fakeUserRepo struct {
	users   map[string]*domain.Participant
	failing map[string]bool
}

func (r *fakeUserRepo) GetUser(ctx context.Context, id string) (*domain.Participant, error) {
	if r.failing[id] {
		return nil, fmt.Errorf("get user %q: store unavailable", id)
	}
	p, ok := r.users[id]
	if !ok {
		return nil, fmt.Errorf("get user %q: no such user", id)
	}
	cp := *p
	return &cp, nil
}

type fakeEventRepo struct {
	events map[string]*domain.Event
}

func (r *fakeEventRepo) GetEvent(ctx context.Context, id string) (*domain.Event, error) {
	ev, ok := r.events[id]
	if !ok {
		return nil, fmt.Errorf("get event %q: %w", id, domain.ErrEventNotFound)
	}
	cp := *ev
	return &cp, nil
}

func (r *fakeEventRepo) PutEvent(ctx context.Context, ev *domain.Event) error {
	r.events[ev.ID] = ev
	return nil
}

func (r *fakeEventRepo) UpdateEvent(ctx context.Context, id string, changes ports.EventChanges) error {
	ev, ok := r.events[id]
	if !ok {
		return domain.ErrEventNotFound
	}
	if changes.ParticipantIDs != nil {
		ev.ParticipantIDs = *changes.ParticipantIDs
	}
	if changes.Start != nil {
		ev.Start = *changes.Start
	}
	if changes.End != nil {
		ev.End = *changes.End
	}
	if changes.Location != nil {
		ev.Location = *changes.Location
	}
	ev.Version = time.Now().UTC()
	return nil
}

func (r *fakeEventRepo) SetOriginOverride(ctx context.Context, eventID, participantID string, ov domain.OriginOverride) error {
	ev, ok := r.events[eventID]
	if !ok {
		return domain.ErrEventNotFound
	}
	ev.OriginOverrides[participantID] = ov
	return nil
}

func (r *fakeEventRepo) RemoveOriginOverride(ctx context.Context, eventID, participantID string) error {
	ev, ok := r.events[eventID]
	if !ok {
		return domain.ErrEventNotFound
	}
	delete(ev.OriginOverrides, participantID)
	return nil
}

func (r *fakeEventRepo) DeleteEvent(ctx context.Context, id string) error {
	delete(r.events, id)
	return nil
}

func (r *fakeEventRepo) ListEvents(ctx context.Context) ([]*domain.Event, error) {
	out := make([]*domain.Event, 0, len(r.events))
	for _, ev := range r.events {
		out = append(out, ev)
	}
	return out, nil
}

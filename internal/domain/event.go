package domain

import "time"

// Event-specific starting location for one participant, superseding
// their default profile location for this event only.
type OriginOverride struct {
	Location    Coordinates `json:"location"`
	Description string      `json:"description,omitempty"`
}

// A scheduled gathering with a fixed location and time window.
// Version carries the timestamp of the last mutation to the fields the
// scheduling core reads; cached schedules record the version they were
// computed against.
type Event struct {
	ID              string
	Title           string
	Location        Coordinates
	Start           time.Time
	End             time.Time
	ParticipantIDs  []string
	OriginOverrides map[string]OriginOverride
	Version         time.Time
}

// OriginFor resolves the starting point used when planning travel for
// the given participant: an event override when present, else the
// participant's default location. The boolean is false when neither
// exists, in which case the participant cannot be scheduled.
func (e *Event) OriginFor(p *Participant) (Coordinates, bool) {
	if ov, ok := e.OriginOverrides[p.ID]; ok {
		return ov.Location, true
	}
	if p.DefaultLocation != nil {
		return *p.DefaultLocation, true
	}
	return Coordinates{}, false
}

// HasParticipant reports membership in the event's invited set.
func (e *Event) HasParticipant(id string) bool {
	for _, pid := range e.ParticipantIDs {
		if pid == id {
			return true
		}
	}
	return false
}

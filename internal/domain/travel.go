package domain

import "time"

// A single instruction within a travel leg.
type TravelStep struct {
	Instruction     string `json:"instruction"`
	DurationMinutes int    `json:"duration_minutes"`
	DistanceText    string `json:"distance_text"`
	TravelMode      string `json:"travel_mode"`
}

// One directional trip segment (outbound to the event or return from
// it). DepartureTime and ArrivalTime are nil when the provider did not
// report them; the schedule generator reconciles missing fields against
// the event window before a leg is published.
type TravelLeg struct {
	DurationMinutes int          `json:"duration_minutes"`
	DistanceText    string       `json:"distance_text"`
	DepartureTime   *time.Time   `json:"departure_time,omitempty"`
	ArrivalTime     *time.Time   `json:"arrival_time,omitempty"`
	Steps           []TravelStep `json:"steps"`
}

// Round-trip travel plan for one participant and one event.
type TravelSchedule struct {
	ParticipantID   string    `json:"participant_id"`
	ParticipantName string    `json:"participant_name"`
	TransportMode   string    `json:"transport_mode"`
	Outbound        TravelLeg `json:"outbound"`
	Return          TravelLeg `json:"return"`
}

// The stored result of the most recent successful schedule generation
// for an event. Entries are replaced wholesale on regeneration and
// removed outright when the event mutates.
type ScheduleCacheEntry struct {
	Schedules      []TravelSchedule `json:"schedules"`
	GeneratedAt    time.Time        `json:"generated_at"`
	EventVersion   time.Time        `json:"event_version"`
	ParticipantIDs []string         `json:"participant_ids"`
}

// Fresh reports whether the entry is still within its freshness window.
func (e *ScheduleCacheEntry) Fresh(now time.Time, window time.Duration) bool {
	if e == nil {
		return false
	}
	return now.Sub(e.GeneratedAt) < window
}

// Matches reports whether the entry was generated against the given
// event version. An entry written before a mutation carries the old
// version and must not be served, even when the removal that should
// have accompanied the mutation failed.
func (e *ScheduleCacheEntry) Matches(version time.Time) bool {
	if e == nil {
		return false
	}
	return e.EventVersion.Equal(version)
}

// Covers reports whether the entry was generated for a set including
// the given participant. An empty id trivially holds so anonymous
// readers can be served from cache.
func (e *ScheduleCacheEntry) Covers(participantID string) bool {
	if participantID == "" {
		return true
	}
	for _, id := range e.ParticipantIDs {
		if id == participantID {
			return true
		}
	}
	return false
}

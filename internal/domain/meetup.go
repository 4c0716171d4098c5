package domain

// A participant as supplied to the meetup optimizer: people who have
// not yet chosen a venue, so only name and current coordinates matter.
type MeetupParticipant struct {
	ID       string
	Name     string
	Location Coordinates
}

// Tunable limits for meetup-point search.
type MeetupConstraints struct {
	MaxTravelTimeMinutes int
	SearchRadiusMeters   int
}

const (
	DefaultMaxTravelTimeMinutes = 60
	DefaultSearchRadiusMeters   = 10000
)

// WithDefaults fills unset constraint fields.
func (c MeetupConstraints) WithDefaults() MeetupConstraints {
	if c.MaxTravelTimeMinutes <= 0 {
		c.MaxTravelTimeMinutes = DefaultMaxTravelTimeMinutes
	}
	if c.SearchRadiusMeters <= 0 {
		c.SearchRadiusMeters = DefaultSearchRadiusMeters
	}
	return c
}

// Travel time from one participant to the candidate point.
// DurationMinutes is nil when the matrix cell for this participant
// failed; such entries are excluded from aggregate metrics.
type ParticipantTravelTime struct {
	ParticipantID   string
	DurationMinutes *int
	DistanceText    string
}

// Output of the meetup-point optimizer. Computed fresh on every call
// and never persisted.
type MeetupResult struct {
	CandidateLocation      Coordinates
	PerParticipantTravel   []ParticipantTravelTime
	MaxDurationMinutes     int
	AverageDurationMinutes float64
	WithinConstraint       bool
}

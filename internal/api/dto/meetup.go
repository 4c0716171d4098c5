package dto

type MeetupParticipantRequest struct {
	ID   string  `json:"id"`
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
}

type MeetupRequest struct {
	Participants         []MeetupParticipantRequest `json:"participants"`
	MaxTravelTimeMinutes int                        `json:"max_travel_time_minutes"`
	SearchRadiusMeters   int                        `json:"search_radius_meters"`
}

type MeetupTravelTimeResponse struct {
	ParticipantID   string `json:"participant_id"`
	DurationMinutes *int   `json:"duration_minutes"`
	DistanceText    string `json:"distance_text,omitempty"`
}

type MeetupResponse struct {
	Lat                    float64                    `json:"lat"`
	Lng                    float64                    `json:"lng"`
	PerParticipant         []MeetupTravelTimeResponse `json:"per_participant"`
	MaxDurationMinutes     int                        `json:"max_duration_minutes"`
	AverageDurationMinutes float64                    `json:"average_duration_minutes"`
	WithinConstraint       bool                       `json:"within_constraint"`
}

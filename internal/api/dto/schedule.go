package dto

import "time"

type TravelStepResponse struct {
	Instruction     string `json:"instruction"`
	DurationMinutes int    `json:"duration_minutes"`
	DistanceText    string `json:"distance_text"`
	TravelMode      string `json:"travel_mode"`
}

type TravelLegResponse struct {
	DurationMinutes int                  `json:"duration_minutes"`
	DistanceText    string               `json:"distance_text"`
	DepartureTime   *time.Time           `json:"departure_time,omitempty"`
	ArrivalTime     *time.Time           `json:"arrival_time,omitempty"`
	Steps           []TravelStepResponse `json:"steps"`
}

type ScheduleResponse struct {
	ParticipantID   string            `json:"participant_id"`
	ParticipantName string            `json:"participant_name"`
	TransportMode   string            `json:"transport_mode"`
	Outbound        TravelLegResponse `json:"outbound"`
	Return          TravelLegResponse `json:"return"`
}

type SchedulesResponse struct {
	Schedules   []ScheduleResponse `json:"schedules"`
	Cached      bool               `json:"cached"`
	GeneratedAt time.Time          `json:"generated_at"`
	Requested   int                `json:"requested"`
	Generated   int                `json:"generated"`
}

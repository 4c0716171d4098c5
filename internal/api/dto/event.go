package dto

import "time"

type CreateEventRequest struct {
	Title          string    `json:"title"`
	Lat            float64   `json:"lat"`
	Lng            float64   `json:"lng"`
	StartAt        time.Time `json:"start_at"`
	EndAt          time.Time `json:"end_at"`
	ParticipantIDs []string  `json:"participant_ids"`
}

type UpdateEventRequest struct {
	Title          *string    `json:"title"`
	Lat            *float64   `json:"lat"`
	Lng            *float64   `json:"lng"`
	StartAt        *time.Time `json:"start_at"`
	EndAt          *time.Time `json:"end_at"`
	ParticipantIDs *[]string  `json:"participant_ids"`
}

type OriginOverrideRequest struct {
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
	Description string  `json:"description"`
}

type EventResponse struct {
	EventID        string    `json:"event_id"`
	Title          string    `json:"title"`
	Lat            float64   `json:"lat"`
	Lng            float64   `json:"lng"`
	StartAt        time.Time `json:"start_at"`
	EndAt          time.Time `json:"end_at"`
	ParticipantIDs []string  `json:"participant_ids"`
}

type ListEventsResponse struct {
	Events []EventResponse `json:"events"`
}

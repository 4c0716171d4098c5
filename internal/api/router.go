package api

import (
	"net/http"

	"github.com/darren10101/SnapEvent-sub001/internal/api/handlers"
	"github.com/darren10101/SnapEvent-sub001/internal/ports"
	"github.com/darren10101/SnapEvent-sub001/internal/services"
)

// NewRouter wires HTTP handlers with their dependencies and returns an
// http.Handler. This is the API composition root (handlers stay
// unaware of concrete adapters).
func NewRouter(
	events ports.EventRepository,
	schedules *services.ScheduleService,
	meetup *services.MeetupService,
) http.Handler {
	mux := http.NewServeMux()

	eventHandler := &handlers.EventHandler{Repo: events, Schedules: schedules}
	scheduleHandler := &handlers.ScheduleHandler{Service: schedules}
	meetupHandler := &handlers.MeetupHandler{Service: meetup}

	mux.HandleFunc("GET /health", handlers.Health)

	mux.HandleFunc("POST /events", eventHandler.Create)
	mux.HandleFunc("GET /events", eventHandler.List)
	mux.HandleFunc("GET /events/{id}", eventHandler.Get)
	mux.HandleFunc("PATCH /events/{id}", eventHandler.Update)
	mux.HandleFunc("DELETE /events/{id}", eventHandler.Delete)

	mux.HandleFunc("PUT /events/{id}/origins/{participantID}", eventHandler.SetOrigin)
	mux.HandleFunc("DELETE /events/{id}/origins/{participantID}", eventHandler.RemoveOrigin)

	mux.HandleFunc("GET /events/{id}/schedules", scheduleHandler.Get)

	mux.HandleFunc("POST /meetup", meetupHandler.Find)

	return loggingMiddleware(mux)
}

package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/darren10101/SnapEvent-sub001/internal/api/dto"
	"github.com/darren10101/SnapEvent-sub001/internal/domain"
	"github.com/darren10101/SnapEvent-sub001/internal/ports"
	"github.com/darren10101/SnapEvent-sub001/internal/services"
)

// EventHandler exposes event CRUD and origin-override mutation.
// Every mutation invalidates the event's schedule cache in the same
// operation, on top of the store-level column removal.
type EventHandler struct {
	Repo      ports.EventRepository
	Schedules *services.ScheduleService
}

func (h *EventHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateEventRequest
	if err := decodeStrict(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if !req.EndAt.After(req.StartAt) {
		writeError(w, r, http.StatusBadRequest, "end_at must be after start_at")
		return
	}

	ev := &domain.Event{
		ID:             uuid.NewString(),
		Title:          req.Title,
		Location:       domain.Coordinates{Lat: req.Lat, Lng: req.Lng},
		Start:          req.StartAt.UTC(),
		End:            req.EndAt.UTC(),
		ParticipantIDs: req.ParticipantIDs,
		Version:        time.Now().UTC(),
	}

	if err := h.Repo.PutEvent(r.Context(), ev); err != nil {
		log.Printf("create event failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusCreated, eventResponse(ev))
}

func (h *EventHandler) Get(w http.ResponseWriter, r *http.Request) {
	ev, err := h.Repo.GetEvent(r.Context(), r.PathValue("id"))
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, eventResponse(ev))
}

func (h *EventHandler) List(w http.ResponseWriter, r *http.Request) {
	events, err := h.Repo.ListEvents(r.Context())
	if err != nil {
		log.Printf("list events failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListEventsResponse{Events: make([]dto.EventResponse, 0, len(events))}
	for _, ev := range events {
		res.Events = append(res.Events, eventResponse(ev))
	}
	writeJSON(w, r, http.StatusOK, res)
}

// Update serves PATCH /events/{id}. Changing the location, time
// window, or participant set makes any cached schedule set obsolete.
func (h *EventHandler) Update(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("id")

	var req dto.UpdateEventRequest
	if err := decodeStrict(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	changes := ports.EventChanges{
		Title:          req.Title,
		Start:          req.StartAt,
		End:            req.EndAt,
		ParticipantIDs: req.ParticipantIDs,
	}
	if req.Lat != nil || req.Lng != nil {
		if req.Lat == nil || req.Lng == nil {
			writeError(w, r, http.StatusBadRequest, "lat and lng must be updated together")
			return
		}
		changes.Location = &domain.Coordinates{Lat: *req.Lat, Lng: *req.Lng}
	}
	if changes.IsZero() {
		writeError(w, r, http.StatusBadRequest, "no fields to update")
		return
	}

	if err := h.Repo.UpdateEvent(r.Context(), eventID, changes); err != nil {
		writeDomainError(w, r, err)
		return
	}
	h.invalidate(r, eventID)

	ev, err := h.Repo.GetEvent(r.Context(), eventID)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, eventResponse(ev))
}

func (h *EventHandler) Delete(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("id")

	if err := h.Repo.DeleteEvent(r.Context(), eventID); err != nil {
		writeDomainError(w, r, err)
		return
	}
	h.invalidate(r, eventID)

	w.WriteHeader(http.StatusNoContent)
}

// SetOrigin serves PUT /events/{id}/origins/{participantID}.
func (h *EventHandler) SetOrigin(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("id")
	participantID := r.PathValue("participantID")

	var req dto.OriginOverrideRequest
	if err := decodeStrict(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	ov := domain.OriginOverride{
		Location:    domain.Coordinates{Lat: req.Lat, Lng: req.Lng},
		Description: req.Description,
	}
	if err := h.Repo.SetOriginOverride(r.Context(), eventID, participantID, ov); err != nil {
		writeDomainError(w, r, err)
		return
	}
	h.invalidate(r, eventID)

	w.WriteHeader(http.StatusNoContent)
}

// RemoveOrigin serves DELETE /events/{id}/origins/{participantID}.
func (h *EventHandler) RemoveOrigin(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("id")
	participantID := r.PathValue("participantID")

	if err := h.Repo.RemoveOriginOverride(r.Context(), eventID, participantID); err != nil {
		writeDomainError(w, r, err)
		return
	}
	h.invalidate(r, eventID)

	w.WriteHeader(http.StatusNoContent)
}

func (h *EventHandler) invalidate(r *http.Request, eventID string) {
	if err := h.Schedules.InvalidateSchedules(r.Context(), eventID); err != nil {
		// The entry left behind carries the pre-mutation version, which
		// the read path rejects; the mutation itself already succeeded.
		log.Printf("invalidate schedules failed: event=%s err=%v", eventID, err)
	}
}

func eventResponse(ev *domain.Event) dto.EventResponse {
	return dto.EventResponse{
		EventID:        ev.ID,
		Title:          ev.Title,
		Lat:            ev.Location.Lat,
		Lng:            ev.Location.Lng,
		StartAt:        ev.Start,
		EndAt:          ev.End,
		ParticipantIDs: ev.ParticipantIDs,
	}
}

package handlers

import (
	"net/http"
	"sort"

	"github.com/darren10101/SnapEvent-sub001/internal/api/dto"
	"github.com/darren10101/SnapEvent-sub001/internal/domain"
	"github.com/darren10101/SnapEvent-sub001/internal/services"
)

// ScheduleHandler exposes travel-schedule retrieval for an event.
type ScheduleHandler struct {
	Service *services.ScheduleService
}

// Get serves GET /events/{id}/schedules. The optional participant
// query parameter names the requesting identity; force=true bypasses
// the freshness check.
func (h *ScheduleHandler) Get(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("id")
	requester := r.URL.Query().Get("participant")
	force := r.URL.Query().Get("force") == "true"

	set, err := h.Service.GetOrRegenerateSchedules(r.Context(), eventID, requester, force)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	// Generation completes in concurrency order; sort so the HTTP
	// surface is deterministic.
	schedules := append([]domain.TravelSchedule{}, set.Schedules...)
	sort.Slice(schedules, func(i, j int) bool {
		return schedules[i].ParticipantID < schedules[j].ParticipantID
	})

	res := dto.SchedulesResponse{
		Schedules:   make([]dto.ScheduleResponse, 0, len(schedules)),
		Cached:      set.Cached,
		GeneratedAt: set.GeneratedAt,
		Requested:   set.Requested,
		Generated:   set.Generated,
	}
	for _, s := range schedules {
		res.Schedules = append(res.Schedules, dto.ScheduleResponse{
			ParticipantID:   s.ParticipantID,
			ParticipantName: s.ParticipantName,
			TransportMode:   s.TransportMode,
			Outbound:        legResponse(s.Outbound),
			Return:          legResponse(s.Return),
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

func legResponse(leg domain.TravelLeg) dto.TravelLegResponse {
	out := dto.TravelLegResponse{
		DurationMinutes: leg.DurationMinutes,
		DistanceText:    leg.DistanceText,
		DepartureTime:   leg.DepartureTime,
		ArrivalTime:     leg.ArrivalTime,
		Steps:           make([]dto.TravelStepResponse, 0, len(leg.Steps)),
	}
	for _, s := range leg.Steps {
		out.Steps = append(out.Steps, dto.TravelStepResponse{
			Instruction:     s.Instruction,
			DurationMinutes: s.DurationMinutes,
			DistanceText:    s.DistanceText,
			TravelMode:      s.TravelMode,
		})
	}
	return out
}

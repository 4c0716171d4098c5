package handlers

import (
	"net/http"

	"github.com/darren10101/SnapEvent-sub001/internal/api/dto"
	"github.com/darren10101/SnapEvent-sub001/internal/domain"
	"github.com/darren10101/SnapEvent-sub001/internal/services"
)

// MeetupHandler exposes the group meeting-point optimizer.
type MeetupHandler struct {
	Service *services.MeetupService
}

func (h *MeetupHandler) Find(w http.ResponseWriter, r *http.Request) {
	var req dto.MeetupRequest
	if err := decodeStrict(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if len(req.Participants) == 0 {
		writeError(w, r, http.StatusBadRequest, "participants must not be empty")
		return
	}

	participants := make([]domain.MeetupParticipant, 0, len(req.Participants))
	for _, p := range req.Participants {
		participants = append(participants, domain.MeetupParticipant{
			ID:       p.ID,
			Name:     p.Name,
			Location: domain.Coordinates{Lat: p.Lat, Lng: p.Lng},
		})
	}

	constraints := domain.MeetupConstraints{
		MaxTravelTimeMinutes: req.MaxTravelTimeMinutes,
		SearchRadiusMeters:   req.SearchRadiusMeters,
	}

	result, err := h.Service.FindMeetupPoint(r.Context(), participants, constraints)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	res := dto.MeetupResponse{
		Lat:                    result.CandidateLocation.Lat,
		Lng:                    result.CandidateLocation.Lng,
		PerParticipant:         make([]dto.MeetupTravelTimeResponse, 0, len(result.PerParticipantTravel)),
		MaxDurationMinutes:     result.MaxDurationMinutes,
		AverageDurationMinutes: result.AverageDurationMinutes,
		WithinConstraint:       result.WithinConstraint,
	}
	for _, t := range result.PerParticipantTravel {
		res.PerParticipant = append(res.PerParticipant, dto.MeetupTravelTimeResponse{
			ParticipantID:   t.ParticipantID,
			DurationMinutes: t.DurationMinutes,
			DistanceText:    t.DistanceText,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/darren10101/SnapEvent-sub001/internal/domain"
)

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode failed: method=%s path=%s err=%v", r.Method, r.URL.Path, err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, map[string]string{"error": msg})
}

// decodeStrict reads exactly one JSON object from the body, rejecting
// unknown fields and trailing content.
func decodeStrict(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		return errors.New("invalid json body")
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return errors.New("body must contain only one JSON object")
	}
	return nil
}

// writeDomainError maps the scheduling error taxonomy onto HTTP status
// codes. Anything unclassified is an opaque 500.
func writeDomainError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrEventNotFound):
		writeError(w, r, http.StatusNotFound, "event not found")
	case errors.Is(err, domain.ErrEmptyParticipantSet):
		writeError(w, r, http.StatusUnprocessableEntity, "event has no participants")
	case domain.IsRouteKind(err, domain.ProviderError):
		log.Printf("provider failure: %v", err)
		writeError(w, r, http.StatusBadGateway, "routing provider unavailable")
	default:
		log.Printf("request failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
	}
}

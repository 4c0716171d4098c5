package services

import (
	"context"
	"log"

	"github.com/darren10101/SnapEvent-sub001/internal/domain"
	"github.com/darren10101/SnapEvent-sub001/internal/ports"
)

// ResolveParticipants fetches participant profiles in input order,
// deduplicating ids and dropping entries whose profile fetch fails.
// Each drop is logged; a drop is a degraded result, never an error.
//
// Participants without a usable location are kept here: whether a
// location exists depends on per-event origin overrides, which the
// schedule generator resolves.
func ResolveParticipants(
	ctx context.Context,
	users ports.UserRepository,
	participantIDs []string,
) []*domain.Participant {
	seen := make(map[string]struct{}, len(participantIDs))
	out := make([]*domain.Participant, 0, len(participantIDs))

	for _, id := range participantIDs {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}

		p, err := users.GetUser(ctx, id)
		if err != nil {
			log.Printf("op=resolve_participants participant=%s dropped=fetch_failed err=%v", id, err)
			continue
		}

		log.Printf("op=resolve_participants participant=%s resolved=true", id)
		out = append(out, p)
	}

	return out
}

package ports

import (
	"context"

	"github.com/darren10101/SnapEvent-sub001/internal/domain"
)

// Port: boundary for retrieving participant profiles from the user store.
type UserRepository interface {
	// Retrieve one participant profile by id.
	GetUser(ctx context.Context, id string) (*domain.Participant, error)
}

package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/darren10101/SnapEvent-sub001/internal/domain"
)

// Postgres-backed implementation of the UserRepository port.
type PostgresUserRepository struct{ DB *sql.DB }

func NewPostgresUserRepository(db *sql.DB) *PostgresUserRepository {
	return &PostgresUserRepository{DB: db}
}

// Retrieve one participant profile. A user without a stored home
// location yields a nil DefaultLocation, not an error.
func (r *PostgresUserRepository) GetUser(ctx context.Context, id string) (*domain.Participant, error) {
	if r.DB == nil {
		return nil, errors.New("user repository: DB is nil")
	}

	q := `
	SELECT
		user_id,
		display_name,
		lat,
		lng,
		transport_modes
	FROM users
	WHERE user_id = $1;
	`

	var (
		p     domain.Participant
		lat   sql.NullFloat64
		lng   sql.NullFloat64
		modes []byte
	)

	err := r.DB.QueryRowContext(ctx, q, id).Scan(&p.ID, &p.DisplayName, &lat, &lng, &modes)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get user %q: no such user", id)
	}
	if err != nil {
		return nil, fmt.Errorf("get user %q: query users table: %w", id, err)
	}

	if lat.Valid && lng.Valid {
		p.DefaultLocation = &domain.Coordinates{Lat: lat.Float64, Lng: lng.Float64}
	}

	if len(modes) > 0 {
		if err := json.Unmarshal(modes, &p.TransportModes); err != nil {
			return nil, fmt.Errorf("get user %q: decode transport modes: %w", id, err)
		}
	}

	return &p, nil
}

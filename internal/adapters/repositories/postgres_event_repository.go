package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/darren10101/SnapEvent-sub001/internal/domain"
	"github.com/darren10101/SnapEvent-sub001/internal/ports"
)

// Postgres-backed implementation of the EventRepository port.
//
// Mutations bump the event version and null the schedule_cache column
// in the same statement, so cache removal and the mutation are one
// logical operation even when the cache is store-backed.
type PostgresEventRepository struct{ DB *sql.DB }

func NewPostgresEventRepository(db *sql.DB) *PostgresEventRepository {
	return &PostgresEventRepository{DB: db}
}

const eventColumns = `
	event_id,
	title,
	lat,
	lng,
	start_at,
	end_at,
	participant_ids,
	origin_overrides,
	version
`

func (r *PostgresEventRepository) GetEvent(ctx context.Context, id string) (*domain.Event, error) {
	if r.DB == nil {
		return nil, errors.New("event repository: DB is nil")
	}

	q := `
	SELECT ` + eventColumns + `
	FROM events
	WHERE event_id = $1;
	`

	ev, err := scanEvent(r.DB.QueryRowContext(ctx, q, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get event %q: %w", id, domain.ErrEventNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get event %q: %w", id, err)
	}

	return ev, nil
}

func (r *PostgresEventRepository) PutEvent(ctx context.Context, ev *domain.Event) error {
	if r.DB == nil {
		return errors.New("event repository: DB is nil")
	}
	if ev == nil || ev.ID == "" {
		return errors.New("put event: event with a non-empty id is required")
	}

	participants, err := json.Marshal(ev.ParticipantIDs)
	if err != nil {
		return fmt.Errorf("put event %q: encode participant ids: %w", ev.ID, err)
	}

	overrides := ev.OriginOverrides
	if overrides == nil {
		overrides = map[string]domain.OriginOverride{}
	}
	overridesJSON, err := json.Marshal(overrides)
	if err != nil {
		return fmt.Errorf("put event %q: encode origin overrides: %w", ev.ID, err)
	}

	q := `
	INSERT INTO events (` + eventColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	ON CONFLICT (event_id) DO UPDATE
	SET title = EXCLUDED.title,
		lat = EXCLUDED.lat,
		lng = EXCLUDED.lng,
		start_at = EXCLUDED.start_at,
		end_at = EXCLUDED.end_at,
		participant_ids = EXCLUDED.participant_ids,
		origin_overrides = EXCLUDED.origin_overrides,
		version = EXCLUDED.version,
		schedule_cache = NULL;
	`

	_, err = r.DB.ExecContext(ctx, q,
		ev.ID, ev.Title, ev.Location.Lat, ev.Location.Lng,
		ev.Start.UTC(), ev.End.UTC(), participants, overridesJSON, ev.Version.UTC(),
	)
	if err != nil {
		return fmt.Errorf("put event %q: upsert events table: %w", ev.ID, err)
	}

	return nil
}

func (r *PostgresEventRepository) UpdateEvent(ctx context.Context, id string, changes ports.EventChanges) error {
	if r.DB == nil {
		return errors.New("event repository: DB is nil")
	}
	if changes.IsZero() {
		return nil
	}

	sets := make([]string, 0, 6)
	args := make([]any, 0, 7)
	args = append(args, id)

	add := func(col string, v any) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}

	if changes.Title != nil {
		add("title", *changes.Title)
	}
	if changes.Location != nil {
		add("lat", changes.Location.Lat)
		add("lng", changes.Location.Lng)
	}
	if changes.Start != nil {
		add("start_at", changes.Start.UTC())
	}
	if changes.End != nil {
		add("end_at", changes.End.UTC())
	}
	if changes.ParticipantIDs != nil {
		encoded, err := json.Marshal(*changes.ParticipantIDs)
		if err != nil {
			return fmt.Errorf("update event %q: encode participant ids: %w", id, err)
		}
		add("participant_ids", encoded)
	}
	add("version", time.Now().UTC())
	sets = append(sets, "schedule_cache = NULL")

	q := fmt.Sprintf(`
	UPDATE events
	SET %s
	WHERE event_id = $1;
	`, strings.Join(sets, ",\n\t\t"))

	res, err := r.DB.ExecContext(ctx, q, args...)
	if err != nil {
		return fmt.Errorf("update event %q: update events table: %w", id, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("update event %q: %w", id, domain.ErrEventNotFound)
	}

	return nil
}

func (r *PostgresEventRepository) SetOriginOverride(ctx context.Context, eventID, participantID string, ov domain.OriginOverride) error {
	if r.DB == nil {
		return errors.New("event repository: DB is nil")
	}
	if participantID == "" {
		return errors.New("set origin override: participant id must not be empty")
	}

	encoded, err := json.Marshal(ov)
	if err != nil {
		return fmt.Errorf("set origin override for %q: encode override: %w", eventID, err)
	}

	q := `
	UPDATE events
	SET origin_overrides = jsonb_set(origin_overrides, ARRAY[$2], $3::jsonb),
		version = $4,
		schedule_cache = NULL
	WHERE event_id = $1;
	`

	res, err := r.DB.ExecContext(ctx, q, eventID, participantID, encoded, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("set origin override for %q: update events table: %w", eventID, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("set origin override for %q: %w", eventID, domain.ErrEventNotFound)
	}

	return nil
}

func (r *PostgresEventRepository) RemoveOriginOverride(ctx context.Context, eventID, participantID string) error {
	if r.DB == nil {
		return errors.New("event repository: DB is nil")
	}

	q := `
	UPDATE events
	SET origin_overrides = origin_overrides - $2,
		version = $3,
		schedule_cache = NULL
	WHERE event_id = $1;
	`

	res, err := r.DB.ExecContext(ctx, q, eventID, participantID, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("remove origin override for %q: update events table: %w", eventID, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("remove origin override for %q: %w", eventID, domain.ErrEventNotFound)
	}

	return nil
}

func (r *PostgresEventRepository) DeleteEvent(ctx context.Context, id string) error {
	if r.DB == nil {
		return errors.New("event repository: DB is nil")
	}

	if _, err := r.DB.ExecContext(ctx, `DELETE FROM events WHERE event_id = $1;`, id); err != nil {
		return fmt.Errorf("delete event %q: %w", id, err)
	}

	return nil
}

func (r *PostgresEventRepository) ListEvents(ctx context.Context) ([]*domain.Event, error) {
	if r.DB == nil {
		return nil, errors.New("event repository: DB is nil")
	}

	q := `
	SELECT ` + eventColumns + `
	FROM events
	ORDER BY start_at, event_id;
	`

	rows, err := r.DB.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list events: query events table: %w", err)
	}
	defer rows.Close()

	events := make([]*domain.Event, 0, 16)
	for rows.Next() {
		ev, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("list events: %w", err)
		}
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list events: row iteration: %w", err)
	}

	return events, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner) (*domain.Event, error) {
	var (
		ev            domain.Event
		participants  []byte
		overridesJSON []byte
	)

	err := row.Scan(
		&ev.ID, &ev.Title, &ev.Location.Lat, &ev.Location.Lng,
		&ev.Start, &ev.End, &participants, &overridesJSON, &ev.Version,
	)
	if err != nil {
		return nil, err
	}

	if len(participants) > 0 {
		if err := json.Unmarshal(participants, &ev.ParticipantIDs); err != nil {
			return nil, fmt.Errorf("decode participant ids: %w", err)
		}
	}
	ev.OriginOverrides = map[string]domain.OriginOverride{}
	if len(overridesJSON) > 0 {
		if err := json.Unmarshal(overridesJSON, &ev.OriginOverrides); err != nil {
			return nil, fmt.Errorf("decode origin overrides: %w", err)
		}
	}

	return &ev, nil
}

package cache

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/darren10101/SnapEvent-sub001/internal/domain"
)

// SQL-backed implementation of the ScheduleCache port, storing the
// entry as a JSONB column on the event row itself. Invalidation
// removes the column value entirely (NULL) rather than writing an
// empty entry.
type SQLScheduleCache struct {
	DB *sql.DB
}

func NewSQLScheduleCache(db *sql.DB) *SQLScheduleCache {
	return &SQLScheduleCache{DB: db}
}

func (c *SQLScheduleCache) Get(ctx context.Context, eventID string) (*domain.ScheduleCacheEntry, error) {
	if c.DB == nil {
		return nil, errors.New("schedule cache: db is nil")
	}
	if eventID == "" {
		return nil, errors.New("schedule cache: event id must not be empty")
	}

	q := `
	SELECT schedule_cache
	FROM events
	WHERE event_id = $1;
	`

	var raw []byte
	err := c.DB.QueryRowContext(ctx, q, eventID).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		// Unknown event reads as a cache miss; existence is the event
		// repository's concern.
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get schedule cache %q: query events table: %w", eventID, err)
	}

	if len(raw) == 0 {
		return nil, nil
	}

	var entry domain.ScheduleCacheEntry
	if err := json.Unmarshal(raw, &entry); err != nil {
		return nil, fmt.Errorf("get schedule cache %q: decode entry: %w", eventID, err)
	}

	return &entry, nil
}

func (c *SQLScheduleCache) Put(ctx context.Context, eventID string, entry *domain.ScheduleCacheEntry) error {
	if c.DB == nil {
		return errors.New("schedule cache: db is nil")
	}
	if eventID == "" {
		return errors.New("schedule cache: event id must not be empty")
	}
	if entry == nil {
		return errors.New("schedule cache: entry must not be nil")
	}

	raw, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("put schedule cache %q: encode entry: %w", eventID, err)
	}

	q := `
	UPDATE events
	SET schedule_cache = $2
	WHERE event_id = $1;
	`

	res, err := c.DB.ExecContext(ctx, q, eventID, raw)
	if err != nil {
		return fmt.Errorf("put schedule cache %q: update events table: %w", eventID, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("put schedule cache %q: event row does not exist", eventID)
	}

	return nil
}

func (c *SQLScheduleCache) Invalidate(ctx context.Context, eventID string) error {
	if c.DB == nil {
		return errors.New("schedule cache: db is nil")
	}
	if eventID == "" {
		return errors.New("schedule cache: event id must not be empty")
	}

	q := `
	UPDATE events
	SET schedule_cache = NULL
	WHERE event_id = $1;
	`

	if _, err := c.DB.ExecContext(ctx, q, eventID); err != nil {
		return fmt.Errorf("invalidate schedule cache %q: update events table: %w", eventID, err)
	}

	return nil
}

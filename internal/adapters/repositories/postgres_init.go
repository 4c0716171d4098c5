package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
)

// Initialize the postgres schema for the event and user store.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createUsersQuery := `
	CREATE TABLE IF NOT EXISTS users (
		user_id TEXT PRIMARY KEY,
		display_name TEXT NOT NULL,
		lat DOUBLE PRECISION,
		lng DOUBLE PRECISION,
		transport_modes JSONB NOT NULL DEFAULT '[]'::jsonb
	);
	`

	createEventsQuery := `
	CREATE TABLE IF NOT EXISTS events (
		event_id TEXT PRIMARY KEY,
		title TEXT NOT NULL DEFAULT '',
		lat DOUBLE PRECISION NOT NULL,
		lng DOUBLE PRECISION NOT NULL,
		start_at TIMESTAMPTZ NOT NULL,
		end_at TIMESTAMPTZ NOT NULL,
		participant_ids JSONB NOT NULL DEFAULT '[]'::jsonb,
		origin_overrides JSONB NOT NULL DEFAULT '{}'::jsonb,
		schedule_cache JSONB,
		version TIMESTAMPTZ NOT NULL
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_events_start_at
	ON events(start_at);
	`

	statements := []string{
		createUsersQuery,
		createEventsQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

type UserSeed struct {
	UserID         string   `json:"user_id"`
	DisplayName    string   `json:"display_name"`
	Lat            *float64 `json:"lat"`
	Lng            *float64 `json:"lng"`
	TransportModes []string `json:"transport_modes"`
}

type EventSeed struct {
	EventID        string    `json:"event_id"`
	Title          string    `json:"title"`
	Lat            float64   `json:"lat"`
	Lng            float64   `json:"lng"`
	StartAt        time.Time `json:"start_at"`
	EndAt          time.Time `json:"end_at"`
	ParticipantIDs []string  `json:"participant_ids"`
}

type Seed struct {
	Users  []UserSeed  `json:"users"`
	Events []EventSeed `json:"events"`
}

// Populate the store with demo users and events from a JSON file.
func SeedFromJSON(db *sql.DB, jsonPath string) error {
	raw, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed store: read %q: %w", jsonPath, err)
	}

	var data Seed
	if err := json.Unmarshal(raw, &data); err != nil {
		return fmt.Errorf("seed store: parse json: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed store: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	userStmt, err := tx.Prepare(`
	INSERT INTO users (user_id, display_name, lat, lng, transport_modes)
	VALUES ($1, $2, $3, $4, $5)
	ON CONFLICT (user_id) DO UPDATE
	SET display_name = EXCLUDED.display_name,
		lat = EXCLUDED.lat,
		lng = EXCLUDED.lng,
		transport_modes = EXCLUDED.transport_modes;
	`)
	if err != nil {
		return fmt.Errorf("seed store: prepare user insert: %w", err)
	}
	defer userStmt.Close()

	for i, u := range data.Users {
		if strings.TrimSpace(u.UserID) == "" {
			return fmt.Errorf("seed store: user at index %d has empty user_id", i+1)
		}

		modes, err := json.Marshal(u.TransportModes)
		if err != nil {
			return fmt.Errorf("seed store: encode modes for %q: %w", u.UserID, err)
		}

		if _, err := userStmt.Exec(u.UserID, u.DisplayName, u.Lat, u.Lng, modes); err != nil {
			return fmt.Errorf("seed store: insert user_id=%q: %w", u.UserID, err)
		}
	}

	eventStmt, err := tx.Prepare(`
	INSERT INTO events (event_id, title, lat, lng, start_at, end_at, participant_ids, version)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	ON CONFLICT (event_id) DO UPDATE
	SET title = EXCLUDED.title,
		lat = EXCLUDED.lat,
		lng = EXCLUDED.lng,
		start_at = EXCLUDED.start_at,
		end_at = EXCLUDED.end_at,
		participant_ids = EXCLUDED.participant_ids,
		version = EXCLUDED.version,
		schedule_cache = NULL;
	`)
	if err != nil {
		return fmt.Errorf("seed store: prepare event insert: %w", err)
	}
	defer eventStmt.Close()

	for i, e := range data.Events {
		if strings.TrimSpace(e.EventID) == "" {
			return fmt.Errorf("seed store: event at index %d has empty event_id", i+1)
		}
		if !e.EndAt.After(e.StartAt) {
			return fmt.Errorf("seed store: event %q ends before it starts", e.EventID)
		}

		participants, err := json.Marshal(e.ParticipantIDs)
		if err != nil {
			return fmt.Errorf("seed store: encode participants for %q: %w", e.EventID, err)
		}

		if _, err := eventStmt.Exec(
			e.EventID, e.Title, e.Lat, e.Lng,
			e.StartAt.UTC(), e.EndAt.UTC(), participants, time.Now().UTC(),
		); err != nil {
			return fmt.Errorf("seed store: insert event_id=%q: %w", e.EventID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed store: commit tx: %w", err)
	}

	return nil
}

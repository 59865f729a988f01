// EventAtlas - Geotagged Event Feed and Map Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/eventatlas

package store

import (
	"context"
	"database/sql"
	"fmt"
	"runtime"
	"time"

	_ "github.com/duckdb/duckdb-go/v2" // registers the "duckdb" driver
	"github.com/tomtom215/eventatlas/internal/logging"
	"github.com/tomtom215/eventatlas/internal/models"
)

// createEventsTable is the schema the seeder and server both expect.
const createEventsTable = `
CREATE TABLE IF NOT EXISTS events (
    id          TEXT PRIMARY KEY,
    title       TEXT NOT NULL,
    starts_at   TIMESTAMP NOT NULL,
    description TEXT,
    latitude    DOUBLE NOT NULL,
    longitude   DOUBLE NOT NULL
)`

// DuckDB reads event rows from an embedded DuckDB database file.
// One handle is opened per process and lives until Close.
type DuckDB struct {
	conn *sql.DB
	path string
}

// NewDuckDB opens the database at path, configures the connection pool,
// and creates the events table if missing.
func NewDuckDB(path string) (*DuckDB, error) {
	connStr := fmt.Sprintf("%s?access_mode=read_write&threads=%d", path, runtime.NumCPU())

	conn, err := sql.Open("duckdb", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open duckdb at %s: %w", path, err)
	}

	conn.SetMaxOpenConns(runtime.NumCPU())
	conn.SetMaxIdleConns(2)
	conn.SetConnMaxLifetime(time.Hour)
	conn.SetConnMaxIdleTime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to ping duckdb: %w", err)
	}

	if _, err := conn.ExecContext(ctx, createEventsTable); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to create events table: %w", err)
	}

	logging.Info().Str("path", path).Msg("DuckDB store opened")

	return &DuckDB{conn: conn, path: path}, nil
}

// FetchEventRows reads all events ordered by start time.
func (s *DuckDB) FetchEventRows(ctx context.Context) ([]models.EventRow, error) {
	const query = `
		SELECT id, title, starts_at, description, latitude, longitude
		FROM events
		ORDER BY starts_at`

	rows, err := s.conn.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			logging.Error().Err(cerr).Msg("Failed to close event rows")
		}
	}()

	var events []models.EventRow
	for rows.Next() {
		var (
			row         models.EventRow
			startsAt    time.Time
			description sql.NullString
			lat, lon    float64
		)
		if err := rows.Scan(&row.ID, &row.Title, &startsAt, &description, &lat, &lon); err != nil {
			return nil, fmt.Errorf("failed to scan event row: %w", err)
		}
		row.StartsAt = startsAt
		if description.Valid {
			row.Description = &description.String
		}
		row.Latitude = lat
		row.Longitude = lon
		events = append(events, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("event row iteration failed: %w", err)
	}

	return events, nil
}

// InsertEvent writes one event. Used by the seeder and tests; the HTTP
// surface never writes.
func (s *DuckDB) InsertEvent(ctx context.Context, row models.EventRow) error {
	const query = `
		INSERT INTO events (id, title, starts_at, description, latitude, longitude)
		VALUES (?, ?, ?, ?, ?, ?)`

	_, err := s.conn.ExecContext(ctx, query,
		row.ID, row.Title, row.StartsAt, row.Description, row.Latitude, row.Longitude)
	if err != nil {
		return fmt.Errorf("failed to insert event %s: %w", row.ID, err)
	}
	return nil
}

// ClearEvents removes all rows. Used by the seeder before re-seeding.
func (s *DuckDB) ClearEvents(ctx context.Context) error {
	if _, err := s.conn.ExecContext(ctx, "DELETE FROM events"); err != nil {
		return fmt.Errorf("failed to clear events: %w", err)
	}
	return nil
}

// Ping verifies the database connection.
func (s *DuckDB) Ping(ctx context.Context) error {
	return s.conn.PingContext(ctx)
}

// Close closes the database handle.
func (s *DuckDB) Close() error {
	logging.Debug().Str("path", s.path).Msg("Closing DuckDB store")
	return s.conn.Close()
}

// EventAtlas - Geotagged Event Feed and Map Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/eventatlas

package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/tomtom215/eventatlas/internal/models"
)

func newTestDuckDB(t *testing.T) *DuckDB {
	t.Helper()
	s, err := NewDuckDB(filepath.Join(t.TempDir(), "events.db"))
	if err != nil {
		t.Fatalf("NewDuckDB failed: %v", err)
	}
	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Errorf("Close failed: %v", err)
		}
	})
	return s
}

func TestDuckDB_RoundTrip(t *testing.T) {
	t.Parallel()

	s := newTestDuckDB(t)
	ctx := context.Background()

	desc := "Outdoor movie night"
	events := []models.EventRow{
		{
			ID:        "evt-2",
			Title:     "Second",
			StartsAt:  time.Date(2026, 9, 2, 19, 0, 0, 0, time.UTC),
			Latitude:  29.43,
			Longitude: -98.48,
		},
		{
			ID:          "evt-1",
			Title:       "First",
			StartsAt:    time.Date(2026, 9, 1, 19, 0, 0, 0, time.UTC),
			Description: &desc,
			Latitude:    29.42,
			Longitude:   -98.49,
		},
	}
	for _, e := range events {
		if err := s.InsertEvent(ctx, e); err != nil {
			t.Fatalf("InsertEvent(%s) failed: %v", e.ID, err)
		}
	}

	rows, err := s.FetchEventRows(ctx)
	if err != nil {
		t.Fatalf("FetchEventRows failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}

	// Rows come back ordered by starts_at, not insertion order.
	if rows[0].ID != "evt-1" || rows[1].ID != "evt-2" {
		t.Errorf("order = [%s, %s], want [evt-1, evt-2]", rows[0].ID, rows[1].ID)
	}

	if rows[0].Description == nil || *rows[0].Description != desc {
		t.Errorf("evt-1 description = %v", rows[0].Description)
	}
	if rows[1].Description != nil {
		t.Errorf("evt-2 description = %v, want nil", rows[1].Description)
	}

	if ts, ok := rows[0].StartsAt.(time.Time); !ok || !ts.Equal(time.Date(2026, 9, 1, 19, 0, 0, 0, time.UTC)) {
		t.Errorf("evt-1 starts_at = %v (%T)", rows[0].StartsAt, rows[0].StartsAt)
	}
	if lat, ok := rows[0].Latitude.(float64); !ok || lat != 29.42 {
		t.Errorf("evt-1 latitude = %v (%T)", rows[0].Latitude, rows[0].Latitude)
	}
}

func TestDuckDB_EmptyTable(t *testing.T) {
	t.Parallel()

	s := newTestDuckDB(t)

	rows, err := s.FetchEventRows(context.Background())
	if err != nil {
		t.Fatalf("FetchEventRows failed: %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("got %d rows from empty table, want 0", len(rows))
	}
}

func TestDuckDB_ClearEvents(t *testing.T) {
	t.Parallel()

	s := newTestDuckDB(t)
	ctx := context.Background()

	if err := s.InsertEvent(ctx, models.EventRow{
		ID: "evt-1", Title: "T", StartsAt: time.Now().UTC(), Latitude: 1.0, Longitude: 2.0,
	}); err != nil {
		t.Fatalf("InsertEvent failed: %v", err)
	}
	if err := s.ClearEvents(ctx); err != nil {
		t.Fatalf("ClearEvents failed: %v", err)
	}

	rows, err := s.FetchEventRows(ctx)
	if err != nil {
		t.Fatalf("FetchEventRows failed: %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("got %d rows after clear, want 0", len(rows))
	}
}

func TestDuckDB_Ping(t *testing.T) {
	t.Parallel()

	s := newTestDuckDB(t)
	if err := s.Ping(context.Background()); err != nil {
		t.Errorf("Ping failed: %v", err)
	}
}

// EventAtlas - Geotagged Event Feed and Map Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/eventatlas

package geojson

import (
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/tomtom215/eventatlas/internal/models"
)

func strPtr(s string) *string { return &s }

func TestTranslate_CoordinateOrder(t *testing.T) {
	t.Parallel()

	// Rows carry latitude then longitude; GeoJSON wants [longitude, latitude].
	rows := []models.EventRow{
		{ID: "e1", Title: "Concert", Latitude: 29.4241, Longitude: -98.4936},
	}

	fc := Translate(rows)

	if len(fc.Features) != 1 {
		t.Fatalf("expected 1 feature, got %d", len(fc.Features))
	}

	coords := fc.Features[0].Geometry.Coordinates
	if len(coords) != 2 {
		t.Fatalf("expected 2 coordinates, got %d", len(coords))
	}
	if coords[0] != -98.4936 {
		t.Errorf("coordinates[0] = %v, want longitude -98.4936", coords[0])
	}
	if coords[1] != 29.4241 {
		t.Errorf("coordinates[1] = %v, want latitude 29.4241", coords[1])
	}
}

func TestTranslate_CountAndOrderPreserved(t *testing.T) {
	t.Parallel()

	rows := make([]models.EventRow, 50)
	for i := range rows {
		rows[i] = models.EventRow{
			ID:        fmt.Sprintf("evt-%03d", i),
			Title:     fmt.Sprintf("Event %d", i),
			Latitude:  29.0,
			Longitude: -98.0,
		}
	}

	fc := Translate(rows)

	if len(fc.Features) != len(rows) {
		t.Fatalf("feature count = %d, want %d", len(fc.Features), len(rows))
	}
	for i, f := range fc.Features {
		if f.Properties.ID != rows[i].ID {
			t.Errorf("feature %d has id %q, want %q", i, f.Properties.ID, rows[i].ID)
		}
	}
}

func TestTranslate_EmptyInput(t *testing.T) {
	t.Parallel()

	for name, rows := range map[string][]models.EventRow{
		"nil":   nil,
		"empty": {},
	} {
		fc := Translate(rows)
		if fc.Type != "FeatureCollection" {
			t.Errorf("%s: type = %q, want FeatureCollection", name, fc.Type)
		}
		if fc.Features == nil {
			t.Errorf("%s: features is nil, want empty slice", name)
		}
		if len(fc.Features) != 0 {
			t.Errorf("%s: got %d features, want 0", name, len(fc.Features))
		}
	}
}

func TestTranslate_FeatureShape(t *testing.T) {
	t.Parallel()

	rows := []models.EventRow{
		{
			ID:          "evt-1",
			Title:       "Food Truck Rally",
			StartsAt:    time.Date(2026, 9, 14, 18, 30, 0, 0, time.UTC),
			Description: strPtr("Live music and food trucks"),
			Latitude:    29.4241,
			Longitude:   -98.4936,
		},
	}

	f := Translate(rows).Features[0]

	if f.Type != "Feature" {
		t.Errorf("feature type = %q, want Feature", f.Type)
	}
	if f.Geometry.Type != "Point" {
		t.Errorf("geometry type = %q, want Point", f.Geometry.Type)
	}
	if f.Properties.Title != "Food Truck Rally" {
		t.Errorf("title = %q", f.Properties.Title)
	}
	if f.Properties.Datetime != "2026-09-14T18:30:00.000Z" {
		t.Errorf("datetime = %q, want 2026-09-14T18:30:00.000Z", f.Properties.Datetime)
	}
	if f.Properties.Description != "Live music and food trucks" {
		t.Errorf("description = %q", f.Properties.Description)
	}
}

func TestTranslate_NilDescription(t *testing.T) {
	t.Parallel()

	rows := []models.EventRow{
		{ID: "e1", Title: "No details", Description: nil, Latitude: 1.0, Longitude: 2.0},
	}

	got := Translate(rows).Features[0].Properties.Description
	if got != "" {
		t.Errorf("description = %q, want empty string", got)
	}
}

func TestNormalizeTimestamp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input any
		want  string
	}{
		{"nil is empty", nil, ""},
		{"empty string stays empty", "", ""},
		{
			"native time renders in UTC",
			time.Date(2026, 3, 1, 9, 15, 30, 0, time.FixedZone("CST", -6*3600)),
			"2026-03-01T15:15:30.000Z",
		},
		{"epoch zero", time.Unix(0, 0), "1970-01-01T00:00:00.000Z"},
		{"rfc3339 string", "2026-07-04T12:00:00Z", "2026-07-04T12:00:00.000Z"},
		{"rfc3339 with offset", "2026-07-04T12:00:00-05:00", "2026-07-04T17:00:00.000Z"},
		{"naive T separator treated as UTC", "2026-07-04T12:00:00", "2026-07-04T12:00:00.000Z"},
		{"space separator", "2026-07-04 12:00:00", "2026-07-04T12:00:00.000Z"},
		{"date only", "2026-07-04", "2026-07-04T00:00:00.000Z"},
		{"unix seconds as float", float64(1767225600), "2026-01-01T00:00:00.000Z"},
		{"unix seconds as int64", int64(1767225600), "2026-01-01T00:00:00.000Z"},
		{"garbage kept verbatim", "next tuesday-ish", "next tuesday-ish"},
		{"numeric-looking garbage kept verbatim", "2026-13-45", "2026-13-45"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := normalizeTimestamp(tt.input); got != tt.want {
				t.Errorf("normalizeTimestamp(%v) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestTranslate_MalformedTimestampDoesNotAbortBatch(t *testing.T) {
	t.Parallel()

	rows := []models.EventRow{
		{ID: "good-1", StartsAt: "2026-05-01T10:00:00Z", Latitude: 1.0, Longitude: 2.0},
		{ID: "bad", StartsAt: "not a date", Latitude: 1.0, Longitude: 2.0},
		{ID: "good-2", StartsAt: "2026-05-02T10:00:00Z", Latitude: 1.0, Longitude: 2.0},
	}

	fc := Translate(rows)

	if len(fc.Features) != 3 {
		t.Fatalf("got %d features, want 3", len(fc.Features))
	}
	if fc.Features[0].Properties.Datetime != "2026-05-01T10:00:00.000Z" {
		t.Errorf("first datetime = %q", fc.Features[0].Properties.Datetime)
	}
	if fc.Features[1].Properties.Datetime != "not a date" {
		t.Errorf("malformed datetime = %q, want raw value preserved", fc.Features[1].Properties.Datetime)
	}
	if fc.Features[2].Properties.Datetime != "2026-05-02T10:00:00.000Z" {
		t.Errorf("last datetime = %q", fc.Features[2].Properties.Datetime)
	}
}

func TestCoerceFloat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   any
		want    float64
		wantNaN bool
	}{
		{name: "float64 passthrough", input: 29.4241, want: 29.4241},
		{name: "float32", input: float32(2.5), want: 2.5},
		{name: "int", input: 42, want: 42},
		{name: "numeric string", input: "-98.4936", want: -98.4936},
		{name: "garbage string", input: "downtown", wantNaN: true},
		{name: "nil", input: nil, wantNaN: true},
		{name: "bool", input: true, wantNaN: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := coerceFloat(tt.input)
			if tt.wantNaN {
				if !math.IsNaN(got) {
					t.Errorf("coerceFloat(%v) = %v, want NaN", tt.input, got)
				}
				return
			}
			if got != tt.want {
				t.Errorf("coerceFloat(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

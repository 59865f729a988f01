// EventAtlas - Geotagged Event Feed and Map Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/eventatlas

// Package geojson translates event rows into a GeoJSON FeatureCollection.
//
// The translation is pure and total: every input row yields exactly one
// output feature, in input order, with malformed field values degraded
// per-field rather than failing the batch.
package geojson

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/tomtom215/eventatlas/internal/logging"
	"github.com/tomtom215/eventatlas/internal/models"
)

// isoFormat is the canonical timestamp format for the datetime property:
// millisecond precision, rendered in UTC with a literal Z.
const isoFormat = "2006-01-02T15:04:05.000Z07:00"

// GeoJSON type definitions
type Geometry struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"`
}

type Properties struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Datetime    string `json:"datetime"`
	Description string `json:"description"`
}

type Feature struct {
	Type       string     `json:"type"`
	Geometry   Geometry   `json:"geometry"`
	Properties Properties `json:"properties"`
}

type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}

// Translate converts event rows into a GeoJSON FeatureCollection.
// Output features preserve input order and count; a malformed field
// degrades that field only, never the row or the batch. A nil or empty
// input yields a collection with an empty (non-nil) features array.
func Translate(rows []models.EventRow) FeatureCollection {
	features := make([]Feature, 0, len(rows))
	for i := range rows {
		features = append(features, buildFeature(&rows[i]))
	}

	return FeatureCollection{
		Type:     "FeatureCollection",
		Features: features,
	}
}

// buildFeature creates a GeoJSON Point feature from one event row.
// Coordinates are emitted [longitude, latitude] per RFC 7946.
func buildFeature(row *models.EventRow) Feature {
	return Feature{
		Type: "Feature",
		Geometry: Geometry{
			Type:        "Point",
			Coordinates: []float64{coerceFloat(row.Longitude), coerceFloat(row.Latitude)},
		},
		Properties: Properties{
			ID:          row.ID,
			Title:       row.Title,
			Datetime:    normalizeTimestamp(row.StartsAt),
			Description: derefString(row.Description),
		},
	}
}

// timestampLayouts are tried in order for string timestamps. Layouts
// without an offset are interpreted as UTC.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// normalizeTimestamp renders a row's start value in the canonical ISO
// format. Absent values become "". Unparseable strings are kept verbatim
// with a warning so feed corruption stays visible to consumers.
func normalizeTimestamp(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case time.Time:
		return t.UTC().Format(isoFormat)
	case string:
		if t == "" {
			return ""
		}
		for _, layout := range timestampLayouts {
			if parsed, err := time.ParseInLocation(layout, t, time.UTC); err == nil {
				return parsed.UTC().Format(isoFormat)
			}
		}
		logging.Warn().Str("value", t).Msg("Unparseable event timestamp, keeping raw value")
		return t
	case float64:
		sec, frac := math.Modf(t)
		return time.Unix(int64(sec), int64(frac*float64(time.Second))).UTC().Format(isoFormat)
	case int64:
		return time.Unix(t, 0).UTC().Format(isoFormat)
	case int:
		return time.Unix(int64(t), 0).UTC().Format(isoFormat)
	default:
		raw := fmt.Sprint(v)
		logging.Warn().Str("value", raw).Msg("Unsupported event timestamp type, keeping raw value")
		return raw
	}
}

// coerceFloat converts a loosely-typed coordinate to float64.
// Malformed values become NaN; rows are never dropped over coordinates.
func coerceFloat(v any) float64 {
	switch f := v.(type) {
	case float64:
		return f
	case float32:
		return float64(f)
	case int:
		return float64(f)
	case int64:
		return float64(f)
	case string:
		if parsed, err := strconv.ParseFloat(f, 64); err == nil {
			return parsed
		}
		logging.Warn().Str("value", f).Msg("Unparseable event coordinate")
		return math.NaN()
	default:
		return math.NaN()
	}
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

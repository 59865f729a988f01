// EventAtlas - Geotagged Event Feed and Map Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/eventatlas

// Package models defines the data structures shared across EventAtlas.
package models

// EventRow is one event as produced by a row source, before translation
// into GeoJSON. Field types are deliberately loose at this boundary:
// the DuckDB backend yields native time.Time and float64 values, while
// the file backend yields whatever the JSON feed contained (strings,
// numbers, or nothing). The translator owns all coercion.
type EventRow struct {
	// ID is the stable event identifier.
	ID string

	// Title is the human-readable event name.
	Title string

	// StartsAt is the event start: time.Time, string, numeric epoch
	// seconds, or nil depending on the backend.
	StartsAt any

	// Description is optional free text; nil when absent.
	Description *string

	// Latitude and Longitude carry the coordinate pair as the backend
	// produced it: float64, a numeric string, or nil.
	Latitude  any
	Longitude any
}

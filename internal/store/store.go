// EventAtlas - Geotagged Event Feed and Map Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/eventatlas

// Package store provides the event row sources backing the feed.
//
// Two backends are available: an embedded DuckDB database (the default)
// and a static JSON file re-read on every fetch. Both produce
// []models.EventRow; all GeoJSON concerns live upstream in the
// translator.
package store

import (
	"context"
	"fmt"

	"github.com/tomtom215/eventatlas/internal/models"
)

// Store is a source of event rows. Implementations return rows ordered
// by start time and never cache across fetches.
type Store interface {
	// FetchEventRows reads all events from the backend.
	FetchEventRows(ctx context.Context) ([]models.EventRow, error)

	// Ping reports whether the backend is reachable.
	Ping(ctx context.Context) error

	// Close releases backend resources. The store is unusable afterwards.
	Close() error
}

// Backend names accepted by Open.
const (
	BackendDuckDB = "duckdb"
	BackendFile   = "file"
)

// Open constructs the store selected by backend. The path is the DuckDB
// database file or the JSON events file respectively.
func Open(backend, path string) (Store, error) {
	switch backend {
	case BackendDuckDB:
		return NewDuckDB(path)
	case BackendFile:
		return NewFile(path)
	default:
		return nil, fmt.Errorf("unknown store backend %q", backend)
	}
}

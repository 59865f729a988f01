// EventAtlas - Geotagged Event Feed and Map Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/eventatlas

package store

import (
	"context"
	"fmt"
	"os"

	json "github.com/goccy/go-json"
	"github.com/tomtom215/eventatlas/internal/models"
)

// File reads event rows from a JSON file containing an array of event
// objects. The file is re-read on every fetch so edits show up without
// a restart; there is no caching anywhere in the read path.
type File struct {
	path string
}

// fileEvent is the on-disk shape. StartsAt and the coordinates stay
// loosely typed; the translator owns coercion, the store only maps
// field names onto EventRow.
type fileEvent struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	StartsAt    any     `json:"starts_at"`
	Description *string `json:"description"`
	Latitude    any     `json:"latitude"`
	Longitude   any     `json:"longitude"`
}

// NewFile creates a file-backed store. The file must exist and hold a
// JSON array; contents are validated on open so a bad path fails fast.
func NewFile(path string) (*File, error) {
	s := &File{path: path}
	if _, err := s.FetchEventRows(context.Background()); err != nil {
		return nil, err
	}
	return s, nil
}

// FetchEventRows reads and decodes the whole file.
func (s *File) FetchEventRows(_ context.Context) ([]models.EventRow, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read events file %s: %w", s.path, err)
	}

	var raw []fileEvent
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode events file %s: %w", s.path, err)
	}

	events := make([]models.EventRow, 0, len(raw))
	for _, e := range raw {
		events = append(events, models.EventRow{
			ID:          e.ID,
			Title:       e.Title,
			StartsAt:    e.StartsAt,
			Description: e.Description,
			Latitude:    e.Latitude,
			Longitude:   e.Longitude,
		})
	}
	return events, nil
}

// Ping checks that the events file is still readable.
func (s *File) Ping(_ context.Context) error {
	if _, err := os.Stat(s.path); err != nil {
		return fmt.Errorf("events file unavailable: %w", err)
	}
	return nil
}

// Close is a no-op; the file is opened per fetch.
func (s *File) Close() error {
	return nil
}

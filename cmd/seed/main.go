// EventAtlas - Geotagged Event Feed and Map Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/eventatlas

// Seeder for the EventAtlas DuckDB database: clears the events table
// and inserts synthetic community events around central San Antonio.
// Run out of band before starting the server:
//
//	go run ./cmd/seed -db data/events.duckdb -count 24
package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/tomtom215/eventatlas/internal/config"
	"github.com/tomtom215/eventatlas/internal/logging"
	"github.com/tomtom215/eventatlas/internal/models"
	"github.com/tomtom215/eventatlas/internal/store"
)

const (
	centerLat = 29.4241
	centerLng = -98.4936
)

var eventTopics = []string{
	"Farmers Market",
	"Live Music",
	"Tech Meetup",
	"Art Walk",
	"Food Truck Rally",
	"Community Yoga",
	"Book Club",
	"Outdoor Movie",
	"Charity Run",
	"Craft Fair",
}

var descriptions = []string{
	"Local vendors, seasonal produce, and handmade goods.",
	"An evening of performances from neighborhood artists.",
	"Talks, demos, and networking with fellow builders.",
	"Gallery crawl featuring emerging creators.",
	"A rotation of the city's favorite food trucks.",
	"Sunrise flow for all levels. Bring your own mat.",
	"Discussing the latest reads over coffee.",
	"Family-friendly screening under the stars.",
	"5K/10K routes followed by a block party.",
	"DIY workshops and pop-up boutique stalls.",
}

func generateEvents(count int) []models.EventRow {
	now := time.Now().Truncate(time.Hour)
	events := make([]models.EventRow, 0, count)

	for i := 0; i < count; i++ {
		topic := eventTopics[rand.Intn(len(eventTopics))]
		desc := descriptions[rand.Intn(len(descriptions))]
		startsAt := now.Add(time.Duration(rand.Intn(31))*24*time.Hour +
			time.Duration(1+rand.Intn(12))*time.Hour)

		events = append(events, models.EventRow{
			ID:          uuid.New().String(),
			Title:       fmt.Sprintf("%s #%d", topic, 1+rand.Intn(25)),
			StartsAt:    startsAt,
			Description: &desc,
			Latitude:    centerLat + (rand.Float64()*0.09 - 0.045),
			Longitude:   centerLng + (rand.Float64()*0.09 - 0.045),
		})
	}

	return events
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}
	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})

	dbPath := flag.String("db", cfg.Store.DuckDBPath, "DuckDB database file")
	count := flag.Int("count", 24, "number of events to generate")
	flag.Parse()

	if err := os.MkdirAll(filepath.Dir(*dbPath), 0o755); err != nil {
		logging.Fatal().Err(err).Str("path", *dbPath).Msg("Failed to create data directory")
	}

	st, err := store.NewDuckDB(*dbPath)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to open DuckDB")
	}
	defer func() {
		if err := st.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing store")
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if err := st.ClearEvents(ctx); err != nil {
		logging.Fatal().Err(err).Msg("Failed to clear events table")
	}

	events := generateEvents(*count)
	for _, e := range events {
		if err := st.InsertEvent(ctx, e); err != nil {
			logging.Fatal().Err(err).Str("id", e.ID).Msg("Failed to insert event")
		}
	}

	logging.Info().Int("count", len(events)).Str("path", *dbPath).Msg("Seeded events")
}

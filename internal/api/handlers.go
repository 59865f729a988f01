// EventAtlas - Geotagged Event Feed and Map Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/eventatlas

// Package api provides the HTTP surface of EventAtlas: the GeoJSON feed
// endpoint, health probes, Prometheus metrics, and the bundled map UI.
package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/eventatlas/internal/geojson"
	"github.com/tomtom215/eventatlas/internal/logging"
	"github.com/tomtom215/eventatlas/internal/metrics"
	"github.com/tomtom215/eventatlas/internal/store"
)

// Handler processes API requests. It holds the row source and nothing
// else; translation happens per request and nothing is cached.
type Handler struct {
	store     store.Store
	backend   string
	startTime time.Time
}

// NewHandler creates an API handler backed by the given store.
// backend names the store flavor for metrics labels ("duckdb", "file").
func NewHandler(st store.Store, backend string) *Handler {
	return &Handler{
		store:     st,
		backend:   backend,
		startTime: time.Now(),
	}
}

// Events serves GET /api/events: every stored event as a GeoJSON
// FeatureCollection. The response body is the bare collection, no
// envelope; map clients consume it directly.
func (h *Handler) Events(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	rows, err := h.store.FetchEventRows(r.Context())
	metrics.RecordStoreFetch(h.backend, time.Since(start), err)
	if err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("Failed to fetch event rows")
		respondError(w, http.StatusInternalServerError, "failed to load events")
		return
	}

	fc := geojson.Translate(rows)
	metrics.FeedFeatures.Set(float64(len(fc.Features)))

	writeJSON(w, http.StatusOK, fc)
}

// HealthLive handles liveness probe requests. Returns 200 whenever the
// process is up.
func (h *Handler) HealthLive(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"alive":  true,
		"uptime": time.Since(h.startTime).Seconds(),
	})
}

// HealthReady handles readiness probe requests. Returns 200 only when
// the store answers a ping, 503 otherwise.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	storeConnected := h.store.Ping(r.Context()) == nil

	statusCode := http.StatusOK
	if !storeConnected {
		statusCode = http.StatusServiceUnavailable
	}

	writeJSON(w, statusCode, map[string]any{
		"store_connected": storeConnected,
		"ready_to_serve":  storeConnected,
		"uptime":          time.Since(h.startTime).Seconds(),
	})
}

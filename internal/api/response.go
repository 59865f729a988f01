// EventAtlas - Geotagged Event Feed and Map Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/eventatlas

package api

import (
	"net/http"

	json "github.com/goccy/go-json"
	"github.com/tomtom215/eventatlas/internal/logging"
)

// errorBody is the JSON error shape for every non-2xx response.
// Internal error detail is logged server-side and never leaks here.
type errorBody struct {
	Error string `json:"error"`
}

// writeJSON writes v as a JSON response with the given status. The body
// is marshaled before the status line is committed, so an encode failure
// (a NaN coordinate from a degenerate feed row, for instance) answers
// with a clean 500 error body instead of a truncated success.
func writeJSON(w http.ResponseWriter, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to encode JSON response")
		// errorBody itself always marshals, so this cannot recurse
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: "failed to encode response"})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	// Headers already sent, write failures can only be logged
	if _, err := w.Write(body); err != nil {
		logging.Error().Err(err).Msg("Failed to write JSON response")
	}
}

// respondError writes a JSON error body with the given status.
func respondError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorBody{Error: message})
}

// Stationdata - Climate Station Metadata Service
// Copyright 2026 Meteonet
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/meteonet/stationdata

package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/goccy/go-json"

	"github.com/meteonet/stationdata/internal/database"
	"github.com/meteonet/stationdata/internal/logging"
)

// errorBody is the error response payload. Collections and items are
// returned bare (a JSON array or object), not wrapped in an envelope;
// errors carry a single message field.
type errorBody struct {
	Message string `json:"message"`
}

// respondJSON sends a JSON response with caching headers. All metadata this
// service serves is slowly-changing, so short-lived public caching is safe.
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "public, max-age=60")
	w.Header().Set("Vary", "Accept-Encoding")

	data, err := json.Marshal(payload)
	if err != nil {
		logging.Error().Err(err).Msg("failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("ETag", generateETag(data))
	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Error().Err(err).Msg("failed to write JSON response")
	}
}

// generateETag creates an ETag from the response body using FNV-1a.
func generateETag(data []byte) string {
	hash := uint32(2166136261)
	for _, b := range data {
		hash ^= uint32(b)
		hash *= 16777619
	}
	return strconv.FormatUint(uint64(hash), 16)
}

// respondError sends an error response body and logs the underlying error
// when present.
func respondError(w http.ResponseWriter, r *http.Request, status int, message string, err error) {
	if err != nil {
		logging.Ctx(r.Context()).Error().Err(err).
			Int("status", status).Str("path", r.URL.Path).Msg("request failed")
	}
	respondJSON(w, status, errorBody{Message: message})
}

// respondQueryError classifies an error from the database layer and sends
// the matching error response. Not-found maps to 404; everything else,
// including data integrity violations, is a 500.
func respondQueryError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, database.ErrNotFound):
		respondError(w, r, http.StatusNotFound, "no such record", err)
	case errors.Is(err, database.ErrDataIntegrity):
		respondError(w, r, http.StatusInternalServerError, "data integrity violation", err)
	default:
		respondError(w, r, http.StatusInternalServerError, "database query failed", err)
	}
}

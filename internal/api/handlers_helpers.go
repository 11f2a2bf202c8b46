// Stationdata - Climate Station Metadata Service
// Copyright 2026 Meteonet
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/meteonet/stationdata

package api

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/meteonet/stationdata/internal/validation"
)

// getURLInt extracts an integer path parameter. A malformed value is a
// client error; chi routes guarantee the parameter is present.
func getURLInt(r *http.Request, key string) (int, error) {
	raw := chi.URLParam(r, key)
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", key, raw)
	}
	return value, nil
}

// getIntParam extracts an integer query parameter with a default value.
// Malformed values fall back to the default.
func getIntParam(r *http.Request, key string, defaultValue int) int {
	value := r.URL.Query().Get(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return intValue
}

// getBoolParam extracts a boolean query parameter with a default value.
// Accepts the forms strconv.ParseBool accepts (true/false/1/0/...).
func getBoolParam(r *http.Request, key string, defaultValue bool) bool {
	value := r.URL.Query().Get(key)
	if value == "" {
		return defaultValue
	}
	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return boolValue
}

// getStringParamPtr extracts a query parameter preserving the distinction
// between absent (nil) and present-but-empty. The provinces filter depends
// on it: absent means no filter, empty means match nothing.
func getStringParamPtr(r *http.Request, key string) *string {
	if !r.URL.Query().Has(key) {
		return nil
	}
	value := r.URL.Query().Get(key)
	return &value
}

// parseCommaSeparatedInts parses a comma-separated integer list, ignoring
// whitespace. Input with no elements (empty, or separators only) yields
// nil, so downstream filters treat it as absent. Any malformed element
// fails the whole parse.
func parseCommaSeparatedInts(value string) ([]int, error) {
	if value == "" {
		return nil, nil
	}
	parts := strings.Split(value, ",")
	result := make([]int, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("invalid integer %q", p)
		}
		result = append(result, n)
	}
	if len(result) == 0 {
		return nil, nil
	}
	return result, nil
}

// dateParamLayouts are the accepted query date formats, tried in order.
var dateParamLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// parseDateParam parses an ISO 8601 date or datetime query parameter.
// Empty input yields nil.
func parseDateParam(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	for _, layout := range dateParamLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("invalid date %q", value)
}

// validateRequest validates a request struct and responds with a 400 when
// validation fails. Returns false if a response was written.
func validateRequest(w http.ResponseWriter, r *http.Request, req interface{}) bool {
	if err := validation.ValidateStruct(req); err != nil {
		respondError(w, r, http.StatusBadRequest, err.Error(), nil)
		return false
	}
	return true
}

// Stationdata - Climate Station Metadata Service
// Copyright 2026 Meteonet
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/meteonet/stationdata

package api

import "github.com/meteonet/stationdata/internal/config"

// Handlers holds the HTTP handlers and their dependencies.
type Handlers struct {
	store Store
	cfg   *config.APIConfig
}

// NewHandlers creates the handler set.
func NewHandlers(store Store, cfg *config.APIConfig) *Handlers {
	return &Handlers{store: store, cfg: cfg}
}

// clampLimit bounds a requested collection limit by the configured maximum.
// Zero means unlimited unless a maximum is configured.
func (h *Handlers) clampLimit(limit int) int {
	max := h.cfg.MaxLimit
	if max <= 0 {
		return limit
	}
	if limit <= 0 || limit > max {
		return max
	}
	return limit
}

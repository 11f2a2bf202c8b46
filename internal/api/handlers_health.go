// Stationdata - Climate Station Metadata Service
// Copyright 2026 Meteonet
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/meteonet/stationdata

package api

import "net/http"

type healthRep struct {
	Status   string `json:"status"`
	Database string `json:"database,omitempty"`
}

// HealthLive handles GET /health/live. Liveness means the process is
// serving requests; it does not touch the database.
func (h *Handlers) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, healthRep{Status: "ok"})
}

// HealthReady handles GET /health/ready. Readiness requires database
// connectivity.
func (h *Handlers) HealthReady(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Ping(r.Context()); err != nil {
		respondError(w, r, http.StatusServiceUnavailable, "database unavailable", err)
		return
	}
	respondJSON(w, http.StatusOK, healthRep{Status: "ok"})
}

// Health handles GET /health: overall status with a database component
// breakdown.
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	rep := healthRep{Status: "ok", Database: "ok"}
	status := http.StatusOK
	if err := h.store.Ping(r.Context()); err != nil {
		rep.Status = "degraded"
		rep.Database = "unavailable"
		status = http.StatusServiceUnavailable
	}
	respondJSON(w, status, rep)
}

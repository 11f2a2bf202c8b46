// Stationdata - Climate Station Metadata Service
// Copyright 2026 Meteonet
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/meteonet/stationdata

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter wires all routes. Every data endpoint is a GET; the service is
// strictly read-only.
func NewRouter(h *Handlers, mw *Middleware) http.Handler {
	r := chi.NewRouter()

	r.Use(RequestIDWithLogging())
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(mw.CORS())
	r.Use(RequestLogging())

	r.Route("/health", func(r chi.Router) {
		r.Get("/", h.Health)
		r.Get("/live", h.HealthLive)
		r.Get("/ready", h.HealthReady)
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		r.Use(mw.RateLimit())

		r.Get("/networks", h.ListNetworks)
		r.Get("/networks/{id}", h.GetNetwork)

		r.Get("/variables", h.ListVariables)
		r.Get("/variables/{id}", h.GetVariable)

		r.Get("/stations", h.ListStations)
		r.Get("/stations/{station_id}", h.GetStation)
		r.Get("/stations/{station_id}/variables", h.StationVariables)
		r.Get("/stations/{station_id}/variables/{variable_id}", h.StationVariable)
		r.Get("/stations/{station_id}/variables/{variable_id}/observations", h.StationVariableObservations)

		r.Get("/histories", h.ListHistories)
		r.Get("/histories/{id}", h.GetHistory)

		r.Get("/observations/counts", h.ObservationCounts)
		r.Get("/frequencies", h.Frequencies)
		r.Get("/crmp_network_geoserver", h.NetworkGeoserver)

		r.Get("/weather/monthly", h.MonthlyWeather)
		r.Get("/baseline/monthly", h.MonthlyBaseline)
	})

	return r
}

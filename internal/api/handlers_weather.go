// Stationdata - Climate Station Metadata Service
// Copyright 2026 Meteonet
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/meteonet/stationdata

package api

import "net/http"

// MonthlyWeather handles GET /weather/monthly: one aggregated value per
// reporting station for the requested variable, year and month.
func (h *Handlers) MonthlyWeather(w http.ResponseWriter, r *http.Request) {
	req := MonthlyWeatherRequest{
		Variable: r.URL.Query().Get("variable"),
		Year:     getIntParam(r, "year", 0),
		Month:    getIntParam(r, "month", 0),
	}
	if !validateRequest(w, r, &req) {
		return
	}

	items, err := h.store.MonthlyWeather(r.Context(), req.Variable, req.Year, req.Month)
	if err != nil {
		respondQueryError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, monthlyWeatherCollectionRep(items))
}

// MonthlyBaseline handles GET /baseline/monthly: the climate baseline value
// per station for the requested variable and calendar month.
func (h *Handlers) MonthlyBaseline(w http.ResponseWriter, r *http.Request) {
	req := MonthlyBaselineRequest{
		Variable: r.URL.Query().Get("variable"),
		Month:    getIntParam(r, "month", 0),
	}
	if !validateRequest(w, r, &req) {
		return
	}

	items, err := h.store.MonthlyBaseline(r.Context(), req.Variable, req.Month)
	if err != nil {
		respondQueryError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, baselineCollectionRep(items))
}

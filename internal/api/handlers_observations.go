// Stationdata - Climate Station Metadata Service
// Copyright 2026 Meteonet
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/meteonet/stationdata

package api

import "net/http"

// ObservationCounts handles GET /observations/counts: approximate
// observation totals per station, accurate to one-month periods.
//
// Climatology counts come from a view with no time dimension, so the
// start/end date filters apply only to the observation counts.
func (h *Handlers) ObservationCounts(w http.ResponseWriter, r *http.Request) {
	startDate, err := parseDateParam(r.URL.Query().Get("start_date"))
	if err != nil {
		respondError(w, r, http.StatusBadRequest, err.Error(), nil)
		return
	}
	endDate, err := parseDateParam(r.URL.Query().Get("end_date"))
	if err != nil {
		respondError(w, r, http.StatusBadRequest, err.Error(), nil)
		return
	}
	stationIDs, err := parseCommaSeparatedInts(r.URL.Query().Get("station_ids"))
	if err != nil {
		respondError(w, r, http.StatusBadRequest, err.Error(), nil)
		return
	}
	provinces := getStringParamPtr(r, "provinces")

	ctx := r.Context()
	obsCounts, err := h.store.ObsCountsByStation(ctx, startDate, endDate, stationIDs, provinces)
	if err != nil {
		respondQueryError(w, r, err)
		return
	}
	climoCounts, err := h.store.ClimoCountsByStation(ctx, stationIDs, provinces)
	if err != nil {
		respondQueryError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, ObservationCountsRep{
		URI:               observationCountsURI,
		Provinces:         provinces,
		StartDate:         startDate,
		EndDate:           endDate,
		StationIDs:        stationIDs,
		ObservationCounts: obsCounts,
		ClimatologyCounts: climoCounts,
	})
}

// Stationdata - Climate Station Metadata Service
// Copyright 2026 Meteonet
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/meteonet/stationdata

package api

import (
	"net/http"

	"github.com/meteonet/stationdata/internal/database"
	"github.com/meteonet/stationdata/internal/models"
)

// ListStations handles GET /stations.
//
// Defaults are compact=true and expand=histories: the common client is a
// map front-end that wants every station with nested compact histories in
// one request. Collapsing histories (expand absent from the parameter)
// skips the bulk history and variable prefetches entirely; the history ids
// come back aggregated on the station rows instead.
func (h *Handlers) ListStations(w http.ResponseWriter, r *http.Request) {
	provinces := getStringParamPtr(r, "provinces")
	compact := getBoolParam(r, "compact", true)
	expand := r.URL.Query().Get("expand")
	if !r.URL.Query().Has("expand") {
		expand = "histories"
	}
	expandHistories := isExpanded("histories", expand)

	req := StationListRequest{
		Stride: getIntParam(r, "stride", 0),
		Limit:  getIntParam(r, "limit", 0),
		Offset: getIntParam(r, "offset", 0),
	}
	if !validateRequest(w, r, &req) {
		return
	}

	ctx := r.Context()
	stations, err := h.store.ListStations(ctx, database.StationListOptions{
		Provinces: provinces,
		Params: database.ListParams{
			Stride: req.Stride,
			Limit:  h.clampLimit(req.Limit),
			Offset: req.Offset,
		},
		IncludeHistoryIDs: !expandHistories,
	})
	if err != nil {
		respondQueryError(w, r, err)
		return
	}

	var (
		historiesByStation map[int][]models.HistoryWithStats
		varsByHistory      map[int][]int64
	)
	if expandHistories {
		historiesByStation, err = h.store.AllHistoriesByStation(ctx, provinces)
		if err != nil {
			respondQueryError(w, r, err)
			return
		}
		varsByHistory, err = h.store.AllVariableIDsByHistory(ctx, h.cfg.GroupVarsInDatabase)
		if err != nil {
			respondQueryError(w, r, err)
			return
		}
	}

	respondJSON(w, http.StatusOK,
		stationCollectionRep(stations, historiesByStation, varsByHistory, compact, expandHistories))
}

// GetStation handles GET /stations/{station_id}.
func (h *Handlers) GetStation(w http.ResponseWriter, r *http.Request) {
	id, err := getURLInt(r, "station_id")
	if err != nil {
		respondError(w, r, http.StatusBadRequest, err.Error(), nil)
		return
	}
	compact := getBoolParam(r, "compact", true)
	expand := r.URL.Query().Get("expand")
	if !r.URL.Query().Has("expand") {
		expand = "histories"
	}
	expandHistories := isExpanded("histories", expand)

	ctx := r.Context()
	station, err := h.store.GetStation(ctx, id)
	if err != nil {
		respondQueryError(w, r, err)
		return
	}
	histories, err := h.store.HistoriesForStation(ctx, id)
	if err != nil {
		respondQueryError(w, r, err)
		return
	}

	var varsByHistory map[int][]int64
	if expandHistories {
		varsByHistory, err = h.store.AllVariableIDsByHistory(ctx, h.cfg.GroupVarsInDatabase)
		if err != nil {
			respondQueryError(w, r, err)
			return
		}
	}

	historyIDs := make([]int64, len(histories))
	for i, hx := range histories {
		historyIDs[i] = int64(hx.ID)
	}
	rep := stationRep(
		models.StationWithHistoryIDs{Station: station, HistoryIDs: historyIDs},
		histories, varsByHistory, compact, expandHistories)
	respondJSON(w, http.StatusOK, rep)
}

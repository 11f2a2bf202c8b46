// Stationdata - Climate Station Metadata Service
// Copyright 2026 Meteonet
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/meteonet/stationdata

package api

import (
	"net/http"
	"time"
)

// observationsMaxSpan bounds the observation window a single request can
// ask for. Raw observations are dense; an unbounded range could read an
// entire station archive in one query.
const observationsMaxSpan = 26 * 7 * 24 * time.Hour

// StationVariablesRep is the response for a station's variables listing.
type StationVariablesRep struct {
	StationID int                  `json:"station_id"`
	Variables []StationVariableRep `json:"variables"`
}

// StationVariables handles GET /stations/{station_id}/variables.
func (h *Handlers) StationVariables(w http.ResponseWriter, r *http.Request) {
	stationID, err := getURLInt(r, "station_id")
	if err != nil {
		respondError(w, r, http.StatusBadRequest, err.Error(), nil)
		return
	}

	ctx := r.Context()
	// Resolves the station first so an unknown or unpublished station is a
	// 404 rather than an empty variables list.
	if _, err := h.store.GetStation(ctx, stationID); err != nil {
		respondQueryError(w, r, err)
		return
	}

	variables, err := h.store.VariablesForStation(ctx, stationID)
	if err != nil {
		respondQueryError(w, r, err)
		return
	}

	reps := make([]StationVariableRep, 0, len(variables))
	for _, v := range variables {
		timespan, err := h.store.VariableTimespan(ctx, stationID, v.ID)
		if err != nil {
			respondQueryError(w, r, err)
			return
		}
		reps = append(reps, StationVariableRep{
			VariableRep: variableRep(v),
			MinObsTime:  timespan.MinObsTime,
			MaxObsTime:  timespan.MaxObsTime,
			StationID:   stationID,
		})
	}

	respondJSON(w, http.StatusOK, StationVariablesRep{
		StationID: stationID,
		Variables: reps,
	})
}

// StationVariable handles GET /stations/{station_id}/variables/{variable_id}.
func (h *Handlers) StationVariable(w http.ResponseWriter, r *http.Request) {
	stationID, err := getURLInt(r, "station_id")
	if err != nil {
		respondError(w, r, http.StatusBadRequest, err.Error(), nil)
		return
	}
	variableID, err := getURLInt(r, "variable_id")
	if err != nil {
		respondError(w, r, http.StatusBadRequest, err.Error(), nil)
		return
	}

	ctx := r.Context()
	variable, err := h.store.GetVariable(ctx, variableID)
	if err != nil {
		respondQueryError(w, r, err)
		return
	}
	timespan, err := h.store.VariableTimespan(ctx, stationID, variableID)
	if err != nil {
		respondQueryError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, StationVariableRep{
		VariableRep: variableRep(variable),
		MinObsTime:  timespan.MinObsTime,
		MaxObsTime:  timespan.MaxObsTime,
		StationID:   stationID,
	})
}

// observationWindow resolves the requested observation date range. The end
// date defaults to today; the start date defaults to, and is clamped to,
// at most the maximum span before the end date. A start after the end is
// also replaced by the default.
func observationWindow(startDate, endDate *time.Time, now time.Time) (time.Time, time.Time) {
	end := now
	if endDate != nil {
		end = *endDate
	}
	earliest := end.Add(-observationsMaxSpan)
	if startDate == nil || startDate.After(end) || startDate.Before(earliest) {
		return earliest, end
	}
	return *startDate, end
}

// StationVariableObservations handles
// GET /stations/{station_id}/variables/{variable_id}/observations.
func (h *Handlers) StationVariableObservations(w http.ResponseWriter, r *http.Request) {
	stationID, err := getURLInt(r, "station_id")
	if err != nil {
		respondError(w, r, http.StatusBadRequest, err.Error(), nil)
		return
	}
	variableID, err := getURLInt(r, "variable_id")
	if err != nil {
		respondError(w, r, http.StatusBadRequest, err.Error(), nil)
		return
	}

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
	start, end := observationWindow(startDate, endDate, time.Now())

	ctx := r.Context()
	station, err := h.store.GetStation(ctx, stationID)
	if err != nil {
		respondQueryError(w, r, err)
		return
	}
	variable, err := h.store.GetVariable(ctx, variableID)
	if err != nil {
		respondQueryError(w, r, err)
		return
	}
	observations, err := h.store.ObservationsForStationVariable(ctx, stationID, variableID, start, end)
	if err != nil {
		respondQueryError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, ObservationsSpanRep{
		URI:       stationVariableObservationsURI(stationID, variableID),
		StartDate: start,
		EndDate:   end,
		Station: ObservationStationRef{
			ID:         station.ID,
			URI:        stationURI(station.ID),
			NetworkURI: networkURI(station.NetworkID),
		},
		Variable: ObservationVariableRef{
			ID:   variable.ID,
			URI:  variableURI(variable.ID),
			Name: variable.DisplayName,
			Unit: variable.Unit,
		},
		Observations: observationsRep(observations),
	})
}

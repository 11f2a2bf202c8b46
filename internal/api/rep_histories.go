// Stationdata - Climate Station Metadata Service
// Copyright 2026 Meteonet
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/meteonet/stationdata

package api

import (
	"time"

	"github.com/meteonet/stationdata/internal/models"
)

// HistoryRef is the collapsed history representation: an id reference the
// client can resolve against /histories/{id}.
type HistoryRef struct {
	ID int `json:"id"`
}

// HistoryRepCompact is the compact JSON representation of a history. The
// URI is included only for single-item responses.
type HistoryRepCompact struct {
	ID          int        `json:"id"`
	URI         string     `json:"uri,omitempty"`
	StationName *string    `json:"station_name"`
	Lon         *float64   `json:"lon"`
	Lat         *float64   `json:"lat"`
	Elevation   *float64   `json:"elevation"`
	Province    *string    `json:"province"`
	Freq        *string    `json:"freq"`
	MinObsTime  *time.Time `json:"min_obs_time"`
	MaxObsTime  *time.Time `json:"max_obs_time"`
	VariableIDs []int64    `json:"variable_ids"`
}

// HistoryRep is the full representation: the compact one plus rarely-used
// attributes.
type HistoryRep struct {
	HistoryRepCompact
	Sdate    *time.Time `json:"sdate"`
	Edate    *time.Time `json:"edate"`
	TZOffset *string    `json:"tz_offset"`
	Country  *string    `json:"country"`
}

// historyRep assembles one history representation. A nil Stats renders as
// null observation bounds, not an error: a history without observations is
// valid data.
func historyRep(h models.HistoryWithStats, variableIDs []int64, compact, includeURI bool) interface{} {
	rep := HistoryRepCompact{
		ID:          h.ID,
		StationName: h.StationName,
		Lon:         h.Lon,
		Lat:         h.Lat,
		Elevation:   h.Elevation,
		Province:    h.Province,
		Freq:        h.Freq,
		VariableIDs: variableIDs,
	}
	if includeURI {
		rep.URI = historyURI(h.ID)
	}
	if h.Stats != nil {
		rep.MinObsTime = h.Stats.MinObsTime
		rep.MaxObsTime = h.Stats.MaxObsTime
	}
	if rep.VariableIDs == nil {
		rep.VariableIDs = []int64{}
	}
	if compact {
		return rep
	}
	return HistoryRep{
		HistoryRepCompact: rep,
		Sdate:             h.Sdate,
		Edate:             h.Edate,
		TZOffset:          h.TZOffset,
		Country:           h.Country,
	}
}

// historyCollectionRep assembles a histories collection. varsByHistory maps
// history id to variable ids; a missing key means no variables.
func historyCollectionRep(histories []models.HistoryWithStats, varsByHistory map[int][]int64, compact, includeURI bool) []interface{} {
	reps := make([]interface{}, len(histories))
	for i, h := range histories {
		reps[i] = historyRep(h, varsByHistory[h.ID], compact, includeURI)
	}
	return reps
}

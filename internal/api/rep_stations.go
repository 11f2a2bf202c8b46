// Stationdata - Climate Station Metadata Service
// Copyright 2026 Meteonet
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/meteonet/stationdata

package api

import (
	"strings"
	"time"

	"github.com/meteonet/stationdata/internal/models"
)

// StationRepCompact is the compact JSON representation of a station. The
// histories attribute holds either full history representations or bare id
// references, depending on the expand parameter.
type StationRepCompact struct {
	ID         int           `json:"id"`
	URI        string        `json:"uri"`
	NativeID   *string       `json:"native_id"`
	NetworkURI string        `json:"network_uri"`
	Histories  []interface{} `json:"histories"`
}

// StationRep is the full representation: the compact one plus the
// aggregated observation bounds.
type StationRep struct {
	StationRepCompact
	MinObsTime *time.Time `json:"min_obs_time"`
	MaxObsTime *time.Time `json:"max_obs_time"`
}

// isExpanded reports whether the named associated item is expanded by the
// expand parameter, a comma-separated list of item names where "*" expands
// everything.
func isExpanded(item, expand string) bool {
	for _, e := range strings.Split(expand, ",") {
		if e == item || e == "*" {
			return true
		}
	}
	return false
}

// stationRep assembles one station representation.
//
// With expandHistories the station's histories render as full or compact
// history representations (compact also governs the station itself).
// Without it each history collapses to an id reference taken from the
// station row's aggregated history ids, and the histories/varsByHistory
// arguments go unused.
func stationRep(
	s models.StationWithHistoryIDs,
	histories []models.HistoryWithStats,
	varsByHistory map[int][]int64,
	compact bool,
	expandHistories bool,
) interface{} {
	var historiesRep []interface{}
	if expandHistories {
		historiesRep = historyCollectionRep(histories, varsByHistory, compact, false)
	} else {
		historiesRep = make([]interface{}, len(s.HistoryIDs))
		for i, id := range s.HistoryIDs {
			historiesRep[i] = HistoryRef{ID: int(id)}
		}
	}

	rep := StationRepCompact{
		ID:         s.ID,
		URI:        stationURI(s.ID),
		NativeID:   s.NativeID,
		NetworkURI: networkURI(s.NetworkID),
		Histories:  historiesRep,
	}
	if compact {
		return rep
	}
	return StationRep{
		StationRepCompact: rep,
		MinObsTime:        s.MinObsTime,
		MaxObsTime:        s.MaxObsTime,
	}
}

// stationCollectionRep assembles a stations collection. historiesByStation
// maps station id to its histories; a missing key means no histories
// survived the filters, which renders as an empty histories list.
func stationCollectionRep(
	stations []models.StationWithHistoryIDs,
	historiesByStation map[int][]models.HistoryWithStats,
	varsByHistory map[int][]int64,
	compact bool,
	expandHistories bool,
) []interface{} {
	reps := make([]interface{}, len(stations))
	for i, s := range stations {
		reps[i] = stationRep(s, historiesByStation[s.ID], varsByHistory, compact, expandHistories)
	}
	return reps
}

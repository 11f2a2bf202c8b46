// Stationdata - Climate Station Metadata Service
// Copyright 2026 Meteonet
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/meteonet/stationdata

// Representation assemblers convert database rows into the JSON shapes the
// API serves. They are pure functions; all I/O happens before assembly.
//
// Compact representations are structs and full representations embed them,
// so a full representation is a superset of the compact one by
// construction.
package api

import "github.com/meteonet/stationdata/internal/models"

// NetworkRep is the JSON representation of a network.
type NetworkRep struct {
	ID           int     `json:"id"`
	URI          string  `json:"uri"`
	Name         *string `json:"name"`
	LongName     *string `json:"long_name"`
	Virtual      *string `json:"virtual"`
	Publish      bool    `json:"publish"`
	Color        *string `json:"color"`
	StationCount int     `json:"station_count"`
}

func networkRep(n models.NetworkWithStationCount) NetworkRep {
	return NetworkRep{
		ID:           n.ID,
		URI:          networkURI(n.ID),
		Name:         n.Name,
		LongName:     n.LongName,
		Virtual:      n.Virtual,
		Publish:      n.Publish,
		Color:        n.Color,
		StationCount: n.StationCount,
	}
}

func networkCollectionRep(networks []models.NetworkWithStationCount) []NetworkRep {
	reps := make([]NetworkRep, len(networks))
	for i, n := range networks {
		reps[i] = networkRep(n)
	}
	return reps
}

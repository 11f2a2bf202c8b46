// Stationdata - Climate Station Metadata Service
// Copyright 2026 Meteonet
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/meteonet/stationdata

package api

import (
	"regexp"
	"time"

	"github.com/meteonet/stationdata/internal/models"
)

// VariableRep is the JSON representation of a variable.
type VariableRep struct {
	ID           int      `json:"id"`
	URI          string   `json:"uri"`
	Name         *string  `json:"name"`
	DisplayName  string   `json:"display_name"`
	ShortName    *string  `json:"short_name"`
	StandardName *string  `json:"standard_name"`
	CellMethod   *string  `json:"cell_method"`
	Unit         *string  `json:"unit"`
	Precision    *float64 `json:"precision"`
	NetworkURI   string   `json:"network_uri"`
	Tags         []string `json:"tags"`
}

// StationVariableRep is a variable in the context of one station: the usual
// variable representation plus the observation time bounds for that
// variable at that station.
type StationVariableRep struct {
	VariableRep
	MinObsTime *time.Time `json:"min_obs_time"`
	MaxObsTime *time.Time `json:"max_obs_time"`
	StationID  int        `json:"station_id"`
}

var climatologyPattern = regexp.MustCompile(`(?i)climatolog`)

// variableTags classifies a variable from its display name. Climatological
// variables are tagged "climatology", everything else "observation". The
// display name is the single source of this classification.
func variableTags(displayName string) []string {
	if climatologyPattern.MatchString(displayName) {
		return []string{"climatology"}
	}
	return []string{"observation"}
}

func variableRep(v models.Variable) VariableRep {
	return VariableRep{
		ID:           v.ID,
		URI:          variableURI(v.ID),
		Name:         v.Name,
		DisplayName:  v.DisplayName,
		ShortName:    v.ShortName,
		StandardName: v.StandardName,
		CellMethod:   v.CellMethod,
		Unit:         v.Unit,
		Precision:    v.Precision,
		NetworkURI:   networkURI(v.NetworkID),
		Tags:         variableTags(v.DisplayName),
	}
}

func variableCollectionRep(variables []models.Variable) []VariableRep {
	reps := make([]VariableRep, len(variables))
	for i, v := range variables {
		reps[i] = variableRep(v)
	}
	return reps
}

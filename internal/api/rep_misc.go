// Stationdata - Climate Station Metadata Service
// Copyright 2026 Meteonet
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/meteonet/stationdata

package api

import (
	"time"

	"github.com/meteonet/stationdata/internal/models"
)

// MonthlyWeatherRep is one aggregated monthly weather value with station
// context.
type MonthlyWeatherRep struct {
	NetworkName         *string  `json:"network_name"`
	StationDBID         int      `json:"station_db_id"`
	StationNativeID     *string  `json:"station_native_id"`
	HistoryDBID         int      `json:"history_db_id"`
	StationName         *string  `json:"station_name"`
	Lon                 *float64 `json:"lon"`
	Lat                 *float64 `json:"lat"`
	Elevation           *float64 `json:"elevation"`
	Frequency           *string  `json:"frequency"`
	NetworkVariableName *string  `json:"network_variable_name"`
	CellMethod          *string  `json:"cell_method"`
	Statistic           *float64 `json:"statistic"`
	DataCoverage        *float64 `json:"data_coverage"`
}

func monthlyWeatherCollectionRep(items []models.MonthlyWeather) []MonthlyWeatherRep {
	reps := make([]MonthlyWeatherRep, len(items))
	for i, w := range items {
		reps[i] = MonthlyWeatherRep{
			NetworkName:         w.NetworkName,
			StationDBID:         w.StationDBID,
			StationNativeID:     w.StationNativeID,
			HistoryDBID:         w.HistoryDBID,
			StationName:         w.StationName,
			Lon:                 w.Lon,
			Lat:                 w.Lat,
			Elevation:           w.Elevation,
			Frequency:           w.Frequency,
			NetworkVariableName: w.NetworkVariableName,
			CellMethod:          w.CellMethod,
			Statistic:           w.Statistic,
			DataCoverage:        w.DataCoverage,
		}
	}
	return reps
}

// BaselineRep is one climate baseline value with station context.
type BaselineRep struct {
	NetworkName     *string  `json:"network_name"`
	StationDBID     int      `json:"station_db_id"`
	StationNativeID *string  `json:"station_native_id"`
	HistoryDBID     int      `json:"history_db_id"`
	StationName     *string  `json:"station_name"`
	Lon             *float64 `json:"lon"`
	Lat             *float64 `json:"lat"`
	Elevation       *float64 `json:"elevation"`
	Datum           float64  `json:"datum"`
}

func baselineCollectionRep(items []models.BaselineValue) []BaselineRep {
	reps := make([]BaselineRep, len(items))
	for i, b := range items {
		reps[i] = BaselineRep{
			NetworkName:     b.NetworkName,
			StationDBID:     b.StationDBID,
			StationNativeID: b.StationNativeID,
			HistoryDBID:     b.HistoryDBID,
			StationName:     b.StationName,
			Lon:             b.Lon,
			Lat:             b.Lat,
			Elevation:       b.Elevation,
			Datum:           b.Datum,
		}
	}
	return reps
}

// NetworkGeoserverRep is one row of the denormalized geoserver view.
type NetworkGeoserverRep struct {
	NetworkName  *string    `json:"network_name"`
	NativeID     *string    `json:"native_id"`
	StationName  *string    `json:"station_name"`
	Lon          *float64   `json:"lon"`
	Lat          *float64   `json:"lat"`
	Elev         *float64   `json:"elev"`
	MinObsTime   *time.Time `json:"min_obs_time"`
	MaxObsTime   *time.Time `json:"max_obs_time"`
	Freq         *string    `json:"freq"`
	TZOffset     *string    `json:"tz_offset"`
	Province     *string    `json:"province"`
	StationID    int        `json:"station_id"`
	HistoryID    int        `json:"history_id"`
	Country      *string    `json:"country"`
	Comments     *string    `json:"comments"`
	SensorID     *int       `json:"sensor_id"`
	Description  *string    `json:"description"`
	NetworkID    int        `json:"network_id"`
	ColHex       *string    `json:"col_hex"`
	Vars         *string    `json:"vars"`
	DisplayNames *string    `json:"display_names"`
}

func networkGeoserverCollectionRep(items []models.NetworkGeoserverItem) []NetworkGeoserverRep {
	reps := make([]NetworkGeoserverRep, len(items))
	for i, g := range items {
		reps[i] = NetworkGeoserverRep{
			NetworkName:  g.NetworkName,
			NativeID:     g.NativeID,
			StationName:  g.StationName,
			Lon:          g.Lon,
			Lat:          g.Lat,
			Elev:         g.Elev,
			MinObsTime:   g.MinObsTime,
			MaxObsTime:   g.MaxObsTime,
			Freq:         g.Freq,
			TZOffset:     g.TZOffset,
			Province:     g.Province,
			StationID:    g.StationID,
			HistoryID:    g.HistoryID,
			Country:      g.Country,
			Comments:     g.Comments,
			SensorID:     g.SensorID,
			Description:  g.Description,
			NetworkID:    g.NetworkID,
			ColHex:       g.ColHex,
			Vars:         g.Vars,
			DisplayNames: g.DisplayNames,
		}
	}
	return reps
}

// ObservationCountsRep echoes the count request parameters and carries the
// per-station totals. JSON object keys are strings, so the station-keyed
// maps marshal with stringified station ids.
type ObservationCountsRep struct {
	URI               string        `json:"uri"`
	Provinces         *string       `json:"provinces"`
	StartDate         *time.Time    `json:"start_date"`
	EndDate           *time.Time    `json:"end_date"`
	StationIDs        []int         `json:"station_ids"`
	ObservationCounts map[int]int64 `json:"observationCounts"`
	ClimatologyCounts map[int]int64 `json:"climatologyCounts"`
}

// ObservationRep is a single observed value.
type ObservationRep struct {
	Value float64   `json:"value"`
	Time  time.Time `json:"time"`
}

// ObservationStationRef and ObservationVariableRef identify the station and
// variable of an observations span, with resolvable links.
type ObservationStationRef struct {
	ID         int    `json:"id"`
	URI        string `json:"uri"`
	NetworkURI string `json:"network_uri"`
}

type ObservationVariableRef struct {
	ID   int     `json:"id"`
	URI  string  `json:"uri"`
	Name string  `json:"name"`
	Unit *string `json:"unit"`
}

// ObservationsSpanRep is the observations response for one station and
// variable over a date range.
type ObservationsSpanRep struct {
	URI          string                 `json:"uri"`
	StartDate    time.Time              `json:"start_date"`
	EndDate      time.Time              `json:"end_date"`
	Station      ObservationStationRef  `json:"station"`
	Variable     ObservationVariableRef `json:"variable"`
	Observations []ObservationRep       `json:"observations"`
}

func observationsRep(observations []models.Observation) []ObservationRep {
	reps := make([]ObservationRep, len(observations))
	for i, o := range observations {
		reps[i] = ObservationRep{Value: o.Datum, Time: o.Time}
	}
	return reps
}

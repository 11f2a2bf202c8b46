// Stationdata - Climate Station Metadata Service
// Copyright 2026 Meteonet
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/meteonet/stationdata

// Package models defines the row types read from the CRMP metadata schema.
// The schema is owned by an external library; every type here is a read-only
// projection. JSON representations live in the api package and are assembled
// from these rows.
package models

import "time"

// Network is a row from meta_network. Only networks with Publish == true are
// ever exposed.
type Network struct {
	ID       int
	Name     *string
	LongName *string
	Virtual  *string
	Publish  bool
	Color    *string
}

// NetworkWithStationCount is a Network joined with its distinct count of
// stations that have at least one history.
type NetworkWithStationCount struct {
	Network
	StationCount int
}

// Station is a row from meta_station. Min/MaxObsTime are the observed data
// bounds aggregated over the station's histories.
type Station struct {
	ID         int
	NativeID   *string
	NetworkID  int
	MinObsTime *time.Time
	MaxObsTime *time.Time
}

// StationWithHistoryIDs is a Station joined with the aggregated ids of its
// histories. Used by the stations collection when histories are collapsed to
// id references.
type StationWithHistoryIDs struct {
	Station
	HistoryIDs []int64
}

// History is a row from meta_history: one time-bounded stint of a station's
// identity, location and metadata. Sdate/Edate are metadata validity bounds,
// distinct from the observed data bounds in ObsStats.
type History struct {
	ID          int
	StationID   int
	StationName *string
	Lon         *float64
	Lat         *float64
	Elevation   *float64
	Sdate       *time.Time
	Edate       *time.Time
	TZOffset    *string
	Province    *string
	Country     *string
	Freq        *string
}

// ObsStats is a row from station_obs_stats_mv: derived min/max timestamps of
// actual observation data per history.
type ObsStats struct {
	MinObsTime *time.Time
	MaxObsTime *time.Time
}

// HistoryWithStats pairs a History with its observation stats. Stats is nil
// for histories that have no observation-stats row.
type HistoryWithStats struct {
	History
	Stats *ObsStats
}

// Variable is a row from meta_vars. A variable is scoped to one network.
type Variable struct {
	ID           int
	Name         *string
	DisplayName  string
	ShortName    *string
	StandardName *string
	CellMethod   *string
	Unit         *string
	Precision    *float64
	NetworkID    int
}

// HistoryVariablePair is one (history, variable) association row from
// vars_per_history_mv.
type HistoryVariablePair struct {
	HistoryID  int
	VariableID int
}

// HistoryVariableIDs is an aggregated vars_per_history_mv row: all variable
// ids recorded during one history, grouped in the database.
type HistoryVariableIDs struct {
	HistoryID   int
	VariableIDs []int64
}

// StationCount is an aggregated observation count for one station.
type StationCount struct {
	StationID int
	Total     int64
}

// VariableTimespan is the min/max observation time for one variable at one
// station, aggregated over the station's histories.
type VariableTimespan struct {
	MinObsTime *time.Time
	MaxObsTime *time.Time
}

// Observation is a single raw observation value.
type Observation struct {
	Time  time.Time
	Datum float64
}

// MonthlyWeather is a row from one of the monthly weather matviews joined up
// through History, Station, Network and Variable for descriptive fields.
type MonthlyWeather struct {
	NetworkName         *string
	StationDBID         int
	StationNativeID     *string
	HistoryDBID         int
	StationName         *string
	Lon                 *float64
	Lat                 *float64
	Elevation           *float64
	Frequency           *string
	NetworkVariableName *string
	CellMethod          *string
	Statistic           *float64
	DataCoverage        *float64
}

// BaselineValue is a climate baseline datum joined with station descriptive
// fields.
type BaselineValue struct {
	NetworkName     *string
	StationDBID     int
	StationNativeID *string
	HistoryDBID     int
	StationName     *string
	Lon             *float64
	Lat             *float64
	Elevation       *float64
	Datum           float64
}

// NetworkGeoserverItem is a row from the crmp_network_geoserver view, a
// denormalized per-history summary consumed by mapping front-ends.
type NetworkGeoserverItem struct {
	NetworkName  *string
	NativeID     *string
	StationName  *string
	Lon          *float64
	Lat          *float64
	Elev         *float64
	MinObsTime   *time.Time
	MaxObsTime   *time.Time
	Freq         *string
	TZOffset     *string
	Province     *string
	StationID    int
	HistoryID    int
	Country      *string
	Comments     *string
	SensorID     *int
	Description  *string
	NetworkID    int
	ColHex       *string
	Vars         *string
	DisplayNames *string
}

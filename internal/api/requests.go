// Stationdata - Climate Station Metadata Service
// Copyright 2026 Meteonet
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/meteonet/stationdata

package api

// Request parameter structs with validation tags. Handlers populate these
// from query parameters and validate before touching the database.

// StationListRequest carries the stations collection parameters.
type StationListRequest struct {
	Stride int `validate:"min=0"`
	Limit  int `validate:"min=0"`
	Offset int `validate:"min=0"`
}

// MonthlyWeatherRequest carries the monthly weather parameters. Year bounds
// reject obvious nonsense while admitting the full historical record.
type MonthlyWeatherRequest struct {
	Variable string `validate:"required,oneof=tmax tmin precip"`
	Year     int    `validate:"required,min=1850,max=2100"`
	Month    int    `validate:"required,min=1,max=12"`
}

// MonthlyBaselineRequest carries the climate baseline parameters.
type MonthlyBaselineRequest struct {
	Variable string `validate:"required,oneof=tmax tmin precip"`
	Month    int    `validate:"required,min=1,max=12"`
}

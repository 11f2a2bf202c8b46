// Stationdata - Climate Station Metadata Service
// Copyright 2026 Meteonet
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/meteonet/stationdata

package api

import (
	"context"
	"time"

	"github.com/meteonet/stationdata/internal/database"
	"github.com/meteonet/stationdata/internal/models"
)

// Store is the data access surface the handlers depend on. *database.DB
// implements it; tests substitute a stub.
type Store interface {
	Ping(ctx context.Context) error

	ListNetworks(ctx context.Context, provinces *string) ([]models.NetworkWithStationCount, error)
	GetNetwork(ctx context.Context, id int) (models.NetworkWithStationCount, error)

	ListStations(ctx context.Context, opts database.StationListOptions) ([]models.StationWithHistoryIDs, error)
	GetStation(ctx context.Context, id int) (models.Station, error)

	AllHistoriesWithStats(ctx context.Context, provinces *string) ([]models.HistoryWithStats, error)
	AllHistoriesByStation(ctx context.Context, provinces *string) (map[int][]models.HistoryWithStats, error)
	HistoriesForStation(ctx context.Context, stationID int) ([]models.HistoryWithStats, error)
	GetHistory(ctx context.Context, id int) (models.HistoryWithStats, error)
	VariableIDsForHistory(ctx context.Context, historyID int) ([]int, error)
	AllVariableIDsByHistory(ctx context.Context, groupInDB bool) (map[int][]int64, error)

	ListVariables(ctx context.Context, provinces *string) ([]models.Variable, error)
	GetVariable(ctx context.Context, id int) (models.Variable, error)
	VariablesForStation(ctx context.Context, stationID int) ([]models.Variable, error)
	VariableTimespan(ctx context.Context, stationID, variableID int) (models.VariableTimespan, error)

	ObsCountsByStation(ctx context.Context, startDate, endDate *time.Time, stationIDs []int, provinces *string) (map[int]int64, error)
	ClimoCountsByStation(ctx context.Context, stationIDs []int, provinces *string) (map[int]int64, error)
	ObservationsForStationVariable(ctx context.Context, stationID, variableID int, startDate, endDate time.Time) ([]models.Observation, error)

	MonthlyWeather(ctx context.Context, variable string, year, month int) ([]models.MonthlyWeather, error)
	MonthlyBaseline(ctx context.Context, variable string, month int) ([]models.BaselineValue, error)

	Frequencies(ctx context.Context) ([]*string, error)
	NetworkGeoserver(ctx context.Context) ([]models.NetworkGeoserverItem, error)
}

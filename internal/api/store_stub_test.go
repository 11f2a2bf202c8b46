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

// stubStore implements Store with overridable function fields. Methods with
// a nil field return zero values, so each test only wires what it uses.
type stubStore struct {
	listNetworks func(provinces *string) ([]models.NetworkWithStationCount, error)
	getNetwork   func(id int) (models.NetworkWithStationCount, error)

	listStations func(opts database.StationListOptions) ([]models.StationWithHistoryIDs, error)
	getStation   func(id int) (models.Station, error)

	allHistoriesWithStats   func(provinces *string) ([]models.HistoryWithStats, error)
	allHistoriesByStation   func(provinces *string) (map[int][]models.HistoryWithStats, error)
	historiesForStation     func(stationID int) ([]models.HistoryWithStats, error)
	getHistory              func(id int) (models.HistoryWithStats, error)
	variableIDsForHistory   func(historyID int) ([]int, error)
	allVariableIDsByHistory func(groupInDB bool) (map[int][]int64, error)

	listVariables       func(provinces *string) ([]models.Variable, error)
	getVariable         func(id int) (models.Variable, error)
	variablesForStation func(stationID int) ([]models.Variable, error)
	variableTimespan    func(stationID, variableID int) (models.VariableTimespan, error)

	obsCountsByStation   func(startDate, endDate *time.Time, stationIDs []int, provinces *string) (map[int]int64, error)
	climoCountsByStation func(stationIDs []int, provinces *string) (map[int]int64, error)
	observations         func(stationID, variableID int, startDate, endDate time.Time) ([]models.Observation, error)

	monthlyWeather  func(variable string, year, month int) ([]models.MonthlyWeather, error)
	monthlyBaseline func(variable string, month int) ([]models.BaselineValue, error)

	frequencies      func() ([]*string, error)
	networkGeoserver func() ([]models.NetworkGeoserverItem, error)

	pingErr error
}

func (s *stubStore) Ping(context.Context) error { return s.pingErr }

func (s *stubStore) ListNetworks(_ context.Context, provinces *string) ([]models.NetworkWithStationCount, error) {
	if s.listNetworks == nil {
		return nil, nil
	}
	return s.listNetworks(provinces)
}

func (s *stubStore) GetNetwork(_ context.Context, id int) (models.NetworkWithStationCount, error) {
	if s.getNetwork == nil {
		return models.NetworkWithStationCount{}, nil
	}
	return s.getNetwork(id)
}

func (s *stubStore) ListStations(_ context.Context, opts database.StationListOptions) ([]models.StationWithHistoryIDs, error) {
	if s.listStations == nil {
		return nil, nil
	}
	return s.listStations(opts)
}

func (s *stubStore) GetStation(_ context.Context, id int) (models.Station, error) {
	if s.getStation == nil {
		return models.Station{}, nil
	}
	return s.getStation(id)
}

func (s *stubStore) AllHistoriesWithStats(_ context.Context, provinces *string) ([]models.HistoryWithStats, error) {
	if s.allHistoriesWithStats == nil {
		return nil, nil
	}
	return s.allHistoriesWithStats(provinces)
}

func (s *stubStore) AllHistoriesByStation(_ context.Context, provinces *string) (map[int][]models.HistoryWithStats, error) {
	if s.allHistoriesByStation == nil {
		return nil, nil
	}
	return s.allHistoriesByStation(provinces)
}

func (s *stubStore) HistoriesForStation(_ context.Context, stationID int) ([]models.HistoryWithStats, error) {
	if s.historiesForStation == nil {
		return nil, nil
	}
	return s.historiesForStation(stationID)
}

func (s *stubStore) GetHistory(_ context.Context, id int) (models.HistoryWithStats, error) {
	if s.getHistory == nil {
		return models.HistoryWithStats{}, nil
	}
	return s.getHistory(id)
}

func (s *stubStore) VariableIDsForHistory(_ context.Context, historyID int) ([]int, error) {
	if s.variableIDsForHistory == nil {
		return nil, nil
	}
	return s.variableIDsForHistory(historyID)
}

func (s *stubStore) AllVariableIDsByHistory(_ context.Context, groupInDB bool) (map[int][]int64, error) {
	if s.allVariableIDsByHistory == nil {
		return nil, nil
	}
	return s.allVariableIDsByHistory(groupInDB)
}

func (s *stubStore) ListVariables(_ context.Context, provinces *string) ([]models.Variable, error) {
	if s.listVariables == nil {
		return nil, nil
	}
	return s.listVariables(provinces)
}

func (s *stubStore) GetVariable(_ context.Context, id int) (models.Variable, error) {
	if s.getVariable == nil {
		return models.Variable{}, nil
	}
	return s.getVariable(id)
}

func (s *stubStore) VariablesForStation(_ context.Context, stationID int) ([]models.Variable, error) {
	if s.variablesForStation == nil {
		return nil, nil
	}
	return s.variablesForStation(stationID)
}

func (s *stubStore) VariableTimespan(_ context.Context, stationID, variableID int) (models.VariableTimespan, error) {
	if s.variableTimespan == nil {
		return models.VariableTimespan{}, nil
	}
	return s.variableTimespan(stationID, variableID)
}

func (s *stubStore) ObsCountsByStation(_ context.Context, startDate, endDate *time.Time, stationIDs []int, provinces *string) (map[int]int64, error) {
	if s.obsCountsByStation == nil {
		return nil, nil
	}
	return s.obsCountsByStation(startDate, endDate, stationIDs, provinces)
}

func (s *stubStore) ClimoCountsByStation(_ context.Context, stationIDs []int, provinces *string) (map[int]int64, error) {
	if s.climoCountsByStation == nil {
		return nil, nil
	}
	return s.climoCountsByStation(stationIDs, provinces)
}

func (s *stubStore) ObservationsForStationVariable(_ context.Context, stationID, variableID int, startDate, endDate time.Time) ([]models.Observation, error) {
	if s.observations == nil {
		return nil, nil
	}
	return s.observations(stationID, variableID, startDate, endDate)
}

func (s *stubStore) MonthlyWeather(_ context.Context, variable string, year, month int) ([]models.MonthlyWeather, error) {
	if s.monthlyWeather == nil {
		return nil, nil
	}
	return s.monthlyWeather(variable, year, month)
}

func (s *stubStore) MonthlyBaseline(_ context.Context, variable string, month int) ([]models.BaselineValue, error) {
	if s.monthlyBaseline == nil {
		return nil, nil
	}
	return s.monthlyBaseline(variable, month)
}

func (s *stubStore) Frequencies(context.Context) ([]*string, error) {
	if s.frequencies == nil {
		return nil, nil
	}
	return s.frequencies()
}

func (s *stubStore) NetworkGeoserver(context.Context) ([]models.NetworkGeoserverItem, error) {
	if s.networkGeoserver == nil {
		return nil, nil
	}
	return s.networkGeoserver()
}

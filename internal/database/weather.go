// Stationdata - Climate Station Metadata Service
// Copyright 2026 Meteonet
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/meteonet/stationdata

package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/meteonet/stationdata/internal/models"
)

// monthlyWeatherView maps a requested weather variable to its materialized
// view. Handlers validate the variable name; an unknown name here is a
// programming error.
func monthlyWeatherView(variable string) (string, error) {
	switch variable {
	case "tmax":
		return viewMonthlyTmax, nil
	case "tmin":
		return viewMonthlyTmin, nil
	case "precip":
		return viewMonthlyPrecip, nil
	default:
		return "", fmt.Errorf("no monthly weather view for variable %q", variable)
	}
}

// baselineVariableName maps a requested baseline variable to its variable
// name in the climate baseline network.
func baselineVariableName(variable string) (string, error) {
	switch variable {
	case "tmax":
		return "Tx_Climatology", nil
	case "tmin":
		return "Tn_Climatology", nil
	case "precip":
		return "Precip_Climatology", nil
	default:
		return "", fmt.Errorf("no baseline variable name for variable %q", variable)
	}
}

// MonthlyWeather returns the aggregated weather values of every station for
// one variable, year and month, joined with station descriptive fields.
//
// Precipitation results are restricted to variables whose standard name is
// liquid-water-equivalent precipitation, excluding snowfall thickness.
func (db *DB) MonthlyWeather(ctx context.Context, variable string, year, month int) ([]models.MonthlyWeather, error) {
	view, err := monthlyWeatherView(variable)
	if err != nil {
		return nil, err
	}

	qb := newQueryBuilder(
		"SELECT n.network_name, s.station_id, s.native_id, h.history_id," +
			" h.station_name, h.lon::double precision, h.lat::double precision," +
			" h.elev::double precision, h.freq, v.net_var_name, v.cell_method," +
			" mw.statistic, mw.data_coverage" +
			" FROM " + view + " mw")
	qb.join("JOIN " + tableHistory + " h ON h.history_id = mw.history_id")
	qb.join("JOIN " + tableStation + " s ON s.station_id = h.station_id")
	qb.join("JOIN " + tableNetwork + " n ON n.network_id = s.network_id")
	qb.join("JOIN " + tableVariable + " v ON v.vars_id = mw.vars_id")
	qb.where(fmt.Sprintf("mw.obs_month = make_date(%s, %s, 1)",
		qb.bind(year), qb.bind(month)))
	if view == viewMonthlyPrecip {
		qb.where(fmt.Sprintf("v.standard_name = %s", qb.bind(lwePrecipStandardName)))
	}
	query, args := qb.build("ORDER BY s.station_id ASC, h.history_id ASC")

	return queryAndScan(ctx, db, "monthly_weather", query, args,
		func(rows pgx.Rows) (models.MonthlyWeather, error) {
			var w models.MonthlyWeather
			err := rows.Scan(&w.NetworkName, &w.StationDBID, &w.StationNativeID,
				&w.HistoryDBID, &w.StationName, &w.Lon, &w.Lat, &w.Elevation,
				&w.Frequency, &w.NetworkVariableName, &w.CellMethod,
				&w.Statistic, &w.DataCoverage)
			return w, err
		})
}

// MonthlyBaseline returns the climate baseline values of every station for
// one variable and calendar month, joined with station descriptive fields.
// Baseline values live in the derived-values table under the dedicated
// climate baseline network.
func (db *DB) MonthlyBaseline(ctx context.Context, variable string, month int) ([]models.BaselineValue, error) {
	varName, err := baselineVariableName(variable)
	if err != nil {
		return nil, err
	}

	qb := newQueryBuilder(
		"SELECT sn.network_name, s.station_id, s.native_id, h.history_id," +
			" h.station_name, h.lon::double precision, h.lat::double precision," +
			" h.elev::double precision, dv.datum" +
			" FROM " + tableDerived + " dv")
	qb.join("JOIN " + tableVariable + " v ON v.vars_id = dv.vars_id")
	qb.join("JOIN " + tableNetwork + " vn ON vn.network_id = v.network_id")
	qb.join("JOIN " + tableHistory + " h ON h.history_id = dv.history_id")
	qb.join("JOIN " + tableStation + " s ON s.station_id = h.station_id")
	qb.join("JOIN " + tableNetwork + " sn ON sn.network_id = s.network_id")
	qb.where(fmt.Sprintf("vn.network_name = %s", qb.bind(climateBaselineNetworkName)))
	qb.where(fmt.Sprintf("v.net_var_name = %s", qb.bind(varName)))
	qb.where(fmt.Sprintf("date_part('month', dv.obs_time) = %s", qb.bind(float64(month))))
	query, args := qb.build("ORDER BY s.station_id ASC, h.history_id ASC")

	return queryAndScan(ctx, db, "monthly_baseline", query, args,
		func(rows pgx.Rows) (models.BaselineValue, error) {
			var b models.BaselineValue
			err := rows.Scan(&b.NetworkName, &b.StationDBID, &b.StationNativeID,
				&b.HistoryDBID, &b.StationName, &b.Lon, &b.Lat, &b.Elevation,
				&b.Datum)
			return b, err
		})
}

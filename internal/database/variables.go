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

const variableColumns = `v.vars_id, v.net_var_name, v.display_name,
	v.short_name, v.standard_name, v.cell_method, v.unit, v.precision,
	v.network_id`

func scanVariable(rows pgx.Rows) (models.Variable, error) {
	var v models.Variable
	err := rows.Scan(&v.ID, &v.Name, &v.DisplayName, &v.ShortName,
		&v.StandardName, &v.CellMethod, &v.Unit, &v.Precision, &v.NetworkID)
	return v, err
}

// publishedNetworkIDsQuery builds the subquery of network ids that qualify
// for the variables collection: published, and with at least one station
// history (optionally restricted by province).
func publishedNetworkIDsQuery(provinces *string) (string, []interface{}) {
	qb := newQueryBuilder("SELECT DISTINCT n.network_id FROM " + tableNetwork + " n")
	qb.join("JOIN " + tableStation + " s ON s.network_id = n.network_id")
	qb.join("JOIN " + tableHistory + " h ON h.station_id = s.station_id")
	qb.where("n.publish = true")
	addProvinceFilter(qb, provinces)
	return qb.build("")
}

// ListVariables returns all variables of qualifying networks, ordered by
// variable id.
//
// A CTE computes the qualifying network ids once; filtering variables
// through the station/history joins directly would multiply variable rows
// per station and force a DISTINCT over the whole select list.
func (db *DB) ListVariables(ctx context.Context, provinces *string) ([]models.Variable, error) {
	inner, args := publishedNetworkIDsQuery(provinces)
	query := fmt.Sprintf(
		"WITH published_networks AS (%s)"+
			" SELECT "+variableColumns+
			" FROM "+tableVariable+" v"+
			" JOIN published_networks pn ON pn.network_id = v.network_id"+
			" ORDER BY v.vars_id ASC", inner)
	return queryAndScan(ctx, db, "list_variables", query, args, scanVariable)
}

// GetVariable returns the single variable with the given id, provided its
// network is published. Zero matches yield ErrNotFound.
func (db *DB) GetVariable(ctx context.Context, id int) (models.Variable, error) {
	qb := newQueryBuilder("SELECT " + variableColumns + " FROM " + tableVariable + " v")
	qb.join("JOIN " + tableNetwork + " n ON n.network_id = v.network_id")
	qb.where("n.publish = true")
	qb.where(fmt.Sprintf("v.vars_id = %s", qb.bind(id)))
	query, args := qb.build("")
	return queryExactlyOne(ctx, db, "get_variable", query, args, scanVariable)
}

// VariablesForStation returns the distinct variables recorded at any of a
// station's histories, ordered by variable id.
func (db *DB) VariablesForStation(ctx context.Context, stationID int) ([]models.Variable, error) {
	qb := newQueryBuilder("SELECT DISTINCT " + variableColumns + " FROM " + tableVariable + " v")
	qb.join("JOIN " + viewVarsPerHistory + " vph ON vph.vars_id = v.vars_id")
	qb.join("JOIN " + tableHistory + " h ON h.history_id = vph.history_id")
	qb.where(fmt.Sprintf("h.station_id = %s", qb.bind(stationID)))
	query, args := qb.build("ORDER BY v.vars_id ASC")
	return queryAndScan(ctx, db, "variables_for_station", query, args, scanVariable)
}

// VariableTimespan returns the observation time bounds for one variable at
// one station, aggregated over the station's histories. Stations or
// variables with no associations yield null bounds, not ErrNotFound.
func (db *DB) VariableTimespan(ctx context.Context, stationID, variableID int) (models.VariableTimespan, error) {
	qb := newQueryBuilder(
		"SELECT min(vph.start_time), max(vph.end_time) FROM " + viewVarsPerHistory + " vph")
	qb.join("JOIN " + tableHistory + " h ON h.history_id = vph.history_id")
	qb.where(fmt.Sprintf("h.station_id = %s", qb.bind(stationID)))
	qb.where(fmt.Sprintf("vph.vars_id = %s", qb.bind(variableID)))
	query, args := qb.build("")
	return queryExactlyOne(ctx, db, "variable_timespan", query, args,
		func(rows pgx.Rows) (models.VariableTimespan, error) {
			var ts models.VariableTimespan
			err := rows.Scan(&ts.MinObsTime, &ts.MaxObsTime)
			return ts, err
		})
}

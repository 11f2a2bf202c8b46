// Stationdata - Climate Station Metadata Service
// Copyright 2026 Meteonet
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/meteonet/stationdata

package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/meteonet/stationdata/internal/logging"
	"github.com/meteonet/stationdata/internal/models"
)

// historyColumns are the meta_history columns selected by every history
// query, in scan order. tz_offset is cast to text; its interval encoding is
// opaque to this service.
const historyColumns = `h.history_id, h.station_id, h.station_name,
	h.lon, h.lat, h.elev, h.sdate, h.edate, h.tz_offset::text,
	h.province, h.country, h.freq`

// obsStatsColumns carry the outer-joined observation stats. sos.history_id
// distinguishes "no stats row" from "stats row with null bounds".
const obsStatsColumns = `sos.history_id, sos.min_obs_time, sos.max_obs_time`

// baseHistoryQuery joins History to Station and outer-joins the observation
// stats view, so every returned row carries a History and its possibly-null
// stats. Returned unexecuted for further filter composition.
func baseHistoryQuery() *queryBuilder {
	qb := newQueryBuilder(
		"SELECT " + historyColumns + ", " + obsStatsColumns +
			" FROM " + tableHistory + " h")
	qb.join("JOIN " + tableStation + " s ON h.station_id = s.station_id")
	qb.join("LEFT JOIN " + viewStationObsStats + " sos ON sos.history_id = h.history_id")
	return qb
}

// scanHistoryWithStats scans one base-history-query row.
func scanHistoryWithStats(rows pgx.Rows) (models.HistoryWithStats, error) {
	var (
		h            models.History
		sosHistoryID *int
		stats        models.ObsStats
	)
	err := rows.Scan(
		&h.ID, &h.StationID, &h.StationName,
		&h.Lon, &h.Lat, &h.Elevation, &h.Sdate, &h.Edate, &h.TZOffset,
		&h.Province, &h.Country, &h.Freq,
		&sosHistoryID, &stats.MinObsTime, &stats.MaxObsTime,
	)
	if err != nil {
		return models.HistoryWithStats{}, err
	}
	result := models.HistoryWithStats{History: h}
	if sosHistoryID != nil {
		result.Stats = &stats
	}
	return result, nil
}

// AllHistoriesWithStats returns every history of a published network's
// station, with observation stats, optionally filtered by province.
//
// Rows are ordered by station id (then history id): the ordering is the
// precondition for the single-pass grouping in AllHistoriesByStation and is
// enforced here, in the query, rather than assumed.
func (db *DB) AllHistoriesWithStats(ctx context.Context, provinces *string) ([]models.HistoryWithStats, error) {
	qb := baseHistoryQuery()
	addStationNetworkPublishFilter(qb)
	addProvinceFilter(qb, provinces)
	query, args := qb.build("ORDER BY h.station_id ASC, h.history_id ASC")
	return queryAndScan(ctx, db, "all_histories_with_stats", query, args, scanHistoryWithStats)
}

// AllHistoriesByStation returns all histories (with stats) of published
// networks grouped by station id, in at most one database round trip.
// Stations absent from the map have no matching histories.
func (db *DB) AllHistoriesByStation(ctx context.Context, provinces *string) (map[int][]models.HistoryWithStats, error) {
	histories, err := db.AllHistoriesWithStats(ctx, provinces)
	if err != nil {
		return nil, err
	}
	defer logging.Timed("group histories by station")()
	return groupByKey(histories, func(h models.HistoryWithStats) int {
		return h.StationID
	}), nil
}

// HistoriesForStation returns the histories (with stats) of a single
// station, ordered by history id.
func (db *DB) HistoriesForStation(ctx context.Context, stationID int) ([]models.HistoryWithStats, error) {
	qb := baseHistoryQuery()
	qb.where(fmt.Sprintf("h.station_id = %s", qb.bind(stationID)))
	query, args := qb.build("ORDER BY h.history_id ASC")
	return queryAndScan(ctx, db, "histories_for_station", query, args, scanHistoryWithStats)
}

// GetHistory returns the single history with the given id, provided its
// station belongs to a published network. Zero matches yield ErrNotFound.
func (db *DB) GetHistory(ctx context.Context, id int) (models.HistoryWithStats, error) {
	qb := baseHistoryQuery()
	addStationNetworkPublishFilter(qb)
	qb.where(fmt.Sprintf("h.history_id = %s", qb.bind(id)))
	query, args := qb.build("")
	return queryExactlyOne(ctx, db, "get_history", query, args, scanHistoryWithStats)
}

// VariableIDsForHistory returns the distinct variable ids recorded during
// one history, ordered by variable id.
func (db *DB) VariableIDsForHistory(ctx context.Context, historyID int) ([]int, error) {
	qb := newQueryBuilder(
		"SELECT DISTINCT vph.vars_id FROM " + viewVarsPerHistory + " vph")
	qb.where(fmt.Sprintf("vph.history_id = %s", qb.bind(historyID)))
	query, args := qb.build("ORDER BY vph.vars_id ASC")
	return queryAndScan(ctx, db, "variable_ids_for_history", query, args,
		func(rows pgx.Rows) (int, error) {
			var id int
			err := rows.Scan(&id)
			return id, err
		})
}

// AllVariableIDsByHistory returns the ids of the variables recorded during
// each history, keyed by history id. Callers must treat a missing key as
// "no variables recorded".
//
// When groupInDB is true the grouping happens in the database with
// array_agg; otherwise the raw association rows are fetched and grouped in
// memory. Both strategies produce the same map; the flag exists because
// their relative cost depends on the deployment's data shape.
func (db *DB) AllVariableIDsByHistory(ctx context.Context, groupInDB bool) (map[int][]int64, error) {
	if groupInDB {
		return db.variableIDsByHistoryInDatabase(ctx)
	}
	return db.variableIDsByHistoryInMemory(ctx)
}

func (db *DB) variableIDsByHistoryInDatabase(ctx context.Context) (map[int][]int64, error) {
	// The LEFT JOIN keeps histories with no variables; array_remove strips
	// the NULL that array_agg produces for them, yielding an empty array.
	query := "SELECT h.history_id, array_remove(array_agg(DISTINCT vph.vars_id), NULL)" +
		" FROM " + tableHistory + " h" +
		" LEFT JOIN " + viewVarsPerHistory + " vph ON vph.history_id = h.history_id" +
		" GROUP BY h.history_id"
	rows, err := queryAndScan(ctx, db, "variable_ids_by_history_db", query, nil,
		func(rows pgx.Rows) (models.HistoryVariableIDs, error) {
			var hv models.HistoryVariableIDs
			err := rows.Scan(&hv.HistoryID, &hv.VariableIDs)
			return hv, err
		})
	if err != nil {
		return nil, err
	}
	result := make(map[int][]int64, len(rows))
	for _, hv := range rows {
		result[hv.HistoryID] = hv.VariableIDs
	}
	return result, nil
}

func (db *DB) variableIDsByHistoryInMemory(ctx context.Context) (map[int][]int64, error) {
	query := "SELECT vph.history_id, vph.vars_id FROM " + viewVarsPerHistory + " vph" +
		" ORDER BY vph.history_id ASC, vph.vars_id ASC"
	pairs, err := queryAndScan(ctx, db, "variable_ids_by_history_mem", query, nil,
		func(rows pgx.Rows) (models.HistoryVariablePair, error) {
			var p models.HistoryVariablePair
			err := rows.Scan(&p.HistoryID, &p.VariableID)
			return p, err
		})
	if err != nil {
		return nil, err
	}

	defer logging.Timed("group variable ids by history")()
	keys := make([]int, len(pairs))
	values := make([]int64, len(pairs))
	for i, p := range pairs {
		keys[i] = p.HistoryID
		values[i] = int64(p.VariableID)
	}
	return groupDistinctByKey(keys, values), nil
}

// Stationdata - Climate Station Metadata Service
// Copyright 2026 Meteonet
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/meteonet/stationdata

package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/meteonet/stationdata/internal/models"
)

func scanStationCount(rows pgx.Rows) (models.StationCount, error) {
	var c models.StationCount
	err := rows.Scan(&c.StationID, &c.Total)
	return c, err
}

// ObsCountsByStation returns the total observation count per station within
// the given month bounds, computed from the per-month counts view. Both
// bounds are truncated to month resolution, matching the view's
// granularity; nil bounds are open.
//
// Counts are grouped per station in the database, one row per station that
// has any counted observations. Callers must treat a missing station id as
// a count of zero.
func (db *DB) ObsCountsByStation(ctx context.Context, startDate, endDate *time.Time, stationIDs []int, provinces *string) (map[int]int64, error) {
	qb := newQueryBuilder(
		"SELECT h.station_id, sum(oc.count)::bigint FROM " + viewObsCountPerMonth + " oc")
	qb.join("JOIN " + tableHistory + " h ON h.history_id = oc.history_id")
	if startDate != nil {
		qb.where(fmt.Sprintf("oc.date_trunc >= date_trunc('month', %s::timestamp)", qb.bind(*startDate)))
	}
	if endDate != nil {
		qb.where(fmt.Sprintf("oc.date_trunc <= date_trunc('month', %s::timestamp)", qb.bind(*endDate)))
	}
	// An empty id list would render an invalid IN (); treat it as no filter.
	if len(stationIDs) > 0 {
		qb.where(fmt.Sprintf("h.station_id IN (%s)", qb.bindInts(stationIDs)))
	}
	addProvinceFilter(qb, provinces)
	qb.group("h.station_id")
	query, args := qb.build("ORDER BY h.station_id ASC")

	counts, err := queryAndScan(ctx, db, "obs_counts_by_station", query, args, scanStationCount)
	if err != nil {
		return nil, err
	}
	return countsToMap(counts), nil
}

// ClimoCountsByStation returns the total climatology observation count per
// station. The climatology counts view has no time dimension, so unlike
// ObsCountsByStation no date bounds apply.
func (db *DB) ClimoCountsByStation(ctx context.Context, stationIDs []int, provinces *string) (map[int]int64, error) {
	qb := newQueryBuilder(
		"SELECT h.station_id, sum(cc.count)::bigint FROM " + viewClimoObsCount + " cc")
	qb.join("JOIN " + tableHistory + " h ON h.history_id = cc.history_id")
	if len(stationIDs) > 0 {
		qb.where(fmt.Sprintf("h.station_id IN (%s)", qb.bindInts(stationIDs)))
	}
	addProvinceFilter(qb, provinces)
	qb.group("h.station_id")
	query, args := qb.build("ORDER BY h.station_id ASC")

	counts, err := queryAndScan(ctx, db, "climo_counts_by_station", query, args, scanStationCount)
	if err != nil {
		return nil, err
	}
	return countsToMap(counts), nil
}

func countsToMap(counts []models.StationCount) map[int]int64 {
	result := make(map[int]int64, len(counts))
	for _, c := range counts {
		result[c.StationID] = c.Total
	}
	return result
}

// ObservationsForStationVariable returns the raw observations of one
// variable at one station between the given day bounds, ordered by time.
// Bounds are truncated to day resolution. Callers bound the interval;
// see the handler's window clamp.
func (db *DB) ObservationsForStationVariable(ctx context.Context, stationID, variableID int, startDate, endDate time.Time) ([]models.Observation, error) {
	qb := newQueryBuilder(
		"SELECT obs.obs_time, obs.datum FROM " + tableObsRaw + " obs")
	qb.join("JOIN " + tableHistory + " h ON h.history_id = obs.history_id")
	qb.where(fmt.Sprintf("h.station_id = %s", qb.bind(stationID)))
	qb.where(fmt.Sprintf("obs.vars_id = %s", qb.bind(variableID)))
	qb.where(fmt.Sprintf("obs.obs_time >= date_trunc('day', %s::timestamp)", qb.bind(startDate)))
	qb.where(fmt.Sprintf("obs.obs_time <= date_trunc('day', %s::timestamp)", qb.bind(endDate)))
	query, args := qb.build("ORDER BY obs.obs_time ASC")
	return queryAndScan(ctx, db, "observations_for_station_variable", query, args,
		func(rows pgx.Rows) (models.Observation, error) {
			var o models.Observation
			err := rows.Scan(&o.Time, &o.Datum)
			return o, err
		})
}

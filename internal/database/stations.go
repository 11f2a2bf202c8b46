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

// stationColumns are the meta_station columns plus the aggregated
// observation bounds over the station's histories.
const stationColumns = `s.station_id, s.native_id, s.network_id,
	min(sos.min_obs_time), max(sos.max_obs_time)`

// StationListOptions parameterize the stations collection query.
type StationListOptions struct {
	Provinces *string
	Params    ListParams

	// IncludeHistoryIDs aggregates each station's history ids into the
	// result rows. Used when the response collapses histories to id
	// references: the history ids are then the only per-history data
	// needed and a separate bulk history fetch is skipped.
	IncludeHistoryIDs bool
}

// baseStationQuery joins stations to their histories and outer-joins the
// per-history observation stats, aggregating observation bounds per
// station. Only stations with at least one history qualify.
func baseStationQuery(selectList string) *queryBuilder {
	qb := newQueryBuilder("SELECT " + selectList + " FROM " + tableStation + " s")
	qb.join("JOIN " + tableHistory + " h ON h.station_id = s.station_id")
	qb.join("LEFT JOIN " + viewStationObsStats + " sos ON sos.history_id = h.history_id")
	qb.group("s.station_id")
	return qb
}

func scanStation(rows pgx.Rows) (models.Station, error) {
	var s models.Station
	err := rows.Scan(&s.ID, &s.NativeID, &s.NetworkID, &s.MinObsTime, &s.MaxObsTime)
	return s, err
}

func scanStationWithHistoryIDs(rows pgx.Rows) (models.StationWithHistoryIDs, error) {
	var s models.StationWithHistoryIDs
	err := rows.Scan(&s.ID, &s.NativeID, &s.NetworkID,
		&s.MinObsTime, &s.MaxObsTime, &s.HistoryIDs)
	return s, err
}

// ListStations returns the stations of published networks, ordered by
// station id, with optional province, stride and paging filters.
//
// The stride filter applies to the station id space before paging, so a
// given (stride, limit, offset) triple is deterministic.
func (db *DB) ListStations(ctx context.Context, opts StationListOptions) ([]models.StationWithHistoryIDs, error) {
	selectList := stationColumns
	if opts.IncludeHistoryIDs {
		selectList += ", array_agg(DISTINCT h.history_id)"
	}
	qb := baseStationQuery(selectList)
	addStationNetworkPublishFilter(qb)
	addProvinceFilter(qb, opts.Provinces)
	addStrideFilter(qb, "s.station_id", opts.Params.Stride)
	suffix := qb.listSuffix("s.station_id ASC", opts.Params)
	query, args := qb.build(suffix)

	if opts.IncludeHistoryIDs {
		return queryAndScan(ctx, db, "list_stations_with_history_ids", query, args, scanStationWithHistoryIDs)
	}
	stations, err := queryAndScan(ctx, db, "list_stations", query, args, scanStation)
	if err != nil {
		return nil, err
	}
	result := make([]models.StationWithHistoryIDs, len(stations))
	for i, s := range stations {
		result[i] = models.StationWithHistoryIDs{Station: s}
	}
	return result, nil
}

// GetStation returns the single station with the given id, provided its
// network is published. Zero matches yield ErrNotFound.
func (db *DB) GetStation(ctx context.Context, id int) (models.Station, error) {
	qb := baseStationQuery(stationColumns)
	addStationNetworkPublishFilter(qb)
	qb.where(fmt.Sprintf("s.station_id = %s", qb.bind(id)))
	query, args := qb.build("")
	return queryExactlyOne(ctx, db, "get_station", query, args, scanStation)
}

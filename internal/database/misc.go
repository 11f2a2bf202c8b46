// Stationdata - Climate Station Metadata Service
// Copyright 2026 Meteonet
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/meteonet/stationdata

package database

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/meteonet/stationdata/internal/models"
)

// Frequencies returns the distinct observation frequencies across all
// histories. A null frequency, if present in the data, is returned as nil.
func (db *DB) Frequencies(ctx context.Context) ([]*string, error) {
	query := "SELECT DISTINCT h.freq FROM " + tableHistory + " h ORDER BY h.freq ASC"
	return queryAndScan(ctx, db, "frequencies", query, nil,
		func(rows pgx.Rows) (*string, error) {
			var freq *string
			err := rows.Scan(&freq)
			return freq, err
		})
}

// NetworkGeoserver returns every row of the denormalized per-history
// geoserver view, ordered by network id. The view is read as-is; all
// denormalization happens in the database.
func (db *DB) NetworkGeoserver(ctx context.Context) ([]models.NetworkGeoserverItem, error) {
	query := "SELECT cng.network_name, cng.native_id, cng.station_name," +
		" cng.lon, cng.lat, cng.elev, cng.min_obs_time, cng.max_obs_time," +
		" cng.freq, cng.tz_offset::text, cng.province, cng.station_id," +
		" cng.history_id, cng.country, cng.comments, cng.sensor_id," +
		" cng.description, cng.network_id, cng.col_hex, cng.vars," +
		" cng.display_names" +
		" FROM " + viewNetworkGeoserver + " cng" +
		" ORDER BY cng.network_id ASC"
	return queryAndScan(ctx, db, "network_geoserver", query, nil,
		func(rows pgx.Rows) (models.NetworkGeoserverItem, error) {
			var g models.NetworkGeoserverItem
			err := rows.Scan(&g.NetworkName, &g.NativeID, &g.StationName,
				&g.Lon, &g.Lat, &g.Elev, &g.MinObsTime, &g.MaxObsTime,
				&g.Freq, &g.TZOffset, &g.Province, &g.StationID,
				&g.HistoryID, &g.Country, &g.Comments, &g.SensorID,
				&g.Description, &g.NetworkID, &g.ColHex, &g.Vars,
				&g.DisplayNames)
			return g, err
		})
}

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

// baseNetworkQuery selects published networks with their distinct station
// count. The History join means only stations with at least one history are
// counted, matching the station and history collections.
func baseNetworkQuery() *queryBuilder {
	qb := newQueryBuilder(
		"SELECT n.network_id, n.network_name, n.description, n.virtual," +
			" n.publish, n.col_hex, count(DISTINCT s.station_id)" +
			" FROM " + tableNetwork + " n")
	qb.join("JOIN " + tableStation + " s ON s.network_id = n.network_id")
	qb.join("JOIN " + tableHistory + " h ON h.station_id = s.station_id")
	qb.where("n.publish = true")
	qb.group("n.network_id")
	return qb
}

func scanNetworkWithCount(rows pgx.Rows) (models.NetworkWithStationCount, error) {
	var n models.NetworkWithStationCount
	err := rows.Scan(&n.ID, &n.Name, &n.LongName, &n.Virtual,
		&n.Publish, &n.Color, &n.StationCount)
	return n, err
}

// ListNetworks returns all published networks with station counts,
// optionally restricted to networks that have stations in the given
// provinces. Ordered by network name.
func (db *DB) ListNetworks(ctx context.Context, provinces *string) ([]models.NetworkWithStationCount, error) {
	qb := baseNetworkQuery()
	addProvinceFilter(qb, provinces)
	query, args := qb.build("ORDER BY n.network_name ASC")
	return queryAndScan(ctx, db, "list_networks", query, args, scanNetworkWithCount)
}

// GetNetwork returns the single published network with the given id. Zero
// matches yield ErrNotFound, whether the id is absent or unpublished.
func (db *DB) GetNetwork(ctx context.Context, id int) (models.NetworkWithStationCount, error) {
	qb := baseNetworkQuery()
	qb.where(fmt.Sprintf("n.network_id = %s", qb.bind(id)))
	query, args := qb.build("")
	return queryExactlyOne(ctx, db, "get_network", query, args, scanNetworkWithCount)
}

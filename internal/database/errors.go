// Stationdata - Climate Station Metadata Service
// Copyright 2026 Meteonet
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/meteonet/stationdata

package database

import "errors"

// Sentinel errors returned by single-row queries. Handlers classify these
// with errors.Is to choose an HTTP status; everything else is an upstream
// query failure.
var (
	// ErrNotFound indicates a single-record query matched zero rows.
	ErrNotFound = errors.New("no matching record")

	// ErrDataIntegrity indicates a single-record query matched more than one
	// row. Schema uniqueness should make this impossible; it is detected
	// rather than silently picking the first row.
	ErrDataIntegrity = errors.New("query matched more than one record")
)

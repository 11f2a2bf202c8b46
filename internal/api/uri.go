// Stationdata - Climate Station Metadata Service
// Copyright 2026 Meteonet
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/meteonet/stationdata

package api

import "strconv"

// URI helpers for the self/related links embedded in representations.
// Links are service-relative paths of the form /<collection>/<id>; clients
// resolve them against the service base URL.

func networkURI(id int) string {
	return "/networks/" + strconv.Itoa(id)
}

func stationURI(id int) string {
	return "/stations/" + strconv.Itoa(id)
}

func historyURI(id int) string {
	return "/histories/" + strconv.Itoa(id)
}

func variableURI(id int) string {
	return "/variables/" + strconv.Itoa(id)
}

func stationVariableObservationsURI(stationID, variableID int) string {
	return stationURI(stationID) + "/variables/" + strconv.Itoa(variableID) + "/observations"
}

const observationCountsURI = "/observations/counts"

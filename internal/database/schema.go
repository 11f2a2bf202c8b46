// Stationdata - Climate Station Metadata Service
// Copyright 2026 Meteonet
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/meteonet/stationdata

package database

// Relation names in the CRMP schema. The schema, its migrations and its
// materialized views are owned by an external library; this service never
// writes to any of these.
const (
	tableNetwork  = "crmp.meta_network"
	tableStation  = "crmp.meta_station"
	tableHistory  = "crmp.meta_history"
	tableVariable = "crmp.meta_vars"
	tableObsRaw   = "crmp.obs_raw"
	tableDerived  = "crmp.obs_derived_values"

	viewVarsPerHistory   = "crmp.vars_per_history_mv"
	viewStationObsStats  = "crmp.station_obs_stats_mv"
	viewObsCountPerMonth = "crmp.obs_count_per_month_history_mv"
	viewClimoObsCount    = "crmp.climo_obs_count_mv"
	viewNetworkGeoserver = "crmp.crmp_network_geoserver"

	viewMonthlyTmax   = "crmp.monthly_average_of_daily_tmax_temperature_mv"
	viewMonthlyTmin   = "crmp.monthly_average_of_daily_tmin_temperature_mv"
	viewMonthlyPrecip = "crmp.monthly_total_precipitation_mv"
)

// climateBaselineNetworkName is the network under which climate baseline
// variables are filed. Fixed by the upstream data model.
const climateBaselineNetworkName = "PCIC Climate Variables"

// lwePrecipStandardName is the CF standard name for liquid-water-equivalent
// precipitation. Monthly precipitation results are restricted to it so that
// snowfall-thickness variables are excluded.
const lwePrecipStandardName = "lwe_thickness_of_precipitation_amount"

// Stationdata - Climate Station Metadata Service
// Copyright 2026 Meteonet
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/meteonet/stationdata

package database

// groupByKey groups rows by key in a single pass, returning a map from key
// to a freshly-owned slice of that key's rows. The bulk queries feeding it
// order rows by key, so each group's slice is built with locality and group
// members keep their query order.
//
// Callers must treat a missing key as "zero children", not as an error.
func groupByKey[K comparable, T any](rows []T, key func(T) K) map[K][]T {
	groups := make(map[K][]T)
	for _, row := range rows {
		k := key(row)
		groups[k] = append(groups[k], row)
	}
	return groups
}

// groupDistinctByKey groups (key, value) pairs by key, deduplicating values
// within each group. The value order within a group follows first
// occurrence. Used by the in-memory variable grouping fallback, where the
// association view may repeat pairs.
func groupDistinctByKey[K comparable, V comparable](keys []K, values []V) map[K][]V {
	groups := make(map[K][]V, len(keys))
	seen := make(map[K]map[V]struct{}, len(keys))
	for i, k := range keys {
		v := values[i]
		if _, ok := seen[k]; !ok {
			seen[k] = make(map[V]struct{})
		}
		if _, dup := seen[k][v]; dup {
			continue
		}
		seen[k][v] = struct{}{}
		groups[k] = append(groups[k], v)
	}
	return groups
}

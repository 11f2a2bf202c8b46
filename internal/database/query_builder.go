// Stationdata - Climate Station Metadata Service
// Copyright 2026 Meteonet
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/meteonet/stationdata

package database

import (
	"fmt"
	"strings"
)

// queryBuilder composes parameterized SQL queries with PostgreSQL positional
// placeholders. Filters and joins are deduplicated by text, so the shared
// filter helpers below are idempotent: calling them on an already-joined
// builder does not duplicate joins or predicates.
//
// Example:
//
//	qb := newQueryBuilder("SELECT s.station_id FROM crmp.meta_station s")
//	qb.join("JOIN crmp.meta_history h ON h.station_id = s.station_id")
//	qb.where(fmt.Sprintf("s.station_id = %s", qb.bind(id)))
//	query, args := qb.build("ORDER BY s.station_id ASC")
type queryBuilder struct {
	base    string
	joins   []string
	filters []string
	groupBy string
	args    []interface{}
}

// newQueryBuilder creates a query builder with a base SELECT ... FROM clause.
func newQueryBuilder(base string) *queryBuilder {
	return &queryBuilder{
		base:    base,
		joins:   make([]string, 0, 4),
		filters: make([]string, 0, 4),
		args:    make([]interface{}, 0, 8),
	}
}

// bind appends an argument and returns its positional placeholder ($N).
func (qb *queryBuilder) bind(arg interface{}) string {
	qb.args = append(qb.args, arg)
	return fmt.Sprintf("$%d", len(qb.args))
}

// bindStrings appends each value and returns a comma-joined placeholder list
// for use inside an IN clause.
func (qb *queryBuilder) bindStrings(values []string) string {
	placeholders := make([]string, len(values))
	for i, v := range values {
		placeholders[i] = qb.bind(v)
	}
	return strings.Join(placeholders, ",")
}

// bindInts appends each value and returns a comma-joined placeholder list
// for use inside an IN clause.
func (qb *queryBuilder) bindInts(values []int) string {
	placeholders := make([]string, len(values))
	for i, v := range values {
		placeholders[i] = qb.bind(v)
	}
	return strings.Join(placeholders, ",")
}

// join adds a JOIN clause unless an identical clause is already present.
func (qb *queryBuilder) join(clause string) {
	for _, j := range qb.joins {
		if j == clause {
			return
		}
	}
	qb.joins = append(qb.joins, clause)
}

// where adds a filter condition unless an identical condition is already
// present. Conditions combine with AND.
func (qb *queryBuilder) where(condition string) {
	for _, f := range qb.filters {
		if f == condition {
			return
		}
	}
	qb.filters = append(qb.filters, condition)
}

// group sets the GROUP BY clause (without the keywords).
func (qb *queryBuilder) group(columns string) {
	qb.groupBy = columns
}

// build constructs the final query text and argument list. The suffix
// (ORDER BY / LIMIT / OFFSET) is appended verbatim after any GROUP BY.
func (qb *queryBuilder) build(suffix string) (string, []interface{}) {
	var sb strings.Builder
	sb.WriteString(qb.base)
	for _, j := range qb.joins {
		sb.WriteString(" ")
		sb.WriteString(j)
	}
	if len(qb.filters) > 0 {
		sb.WriteString(" WHERE ")
		sb.WriteString(strings.Join(qb.filters, " AND "))
	}
	if qb.groupBy != "" {
		sb.WriteString(" GROUP BY ")
		sb.WriteString(qb.groupBy)
	}
	if suffix != "" {
		sb.WriteString(" ")
		sb.WriteString(suffix)
	}
	return sb.String(), qb.args
}

// addStationNetworkPublishFilter restricts a query that already joins
// meta_station (aliased s) to stations of published networks. Idempotent.
func addStationNetworkPublishFilter(qb *queryBuilder) {
	qb.join("JOIN " + tableNetwork + " n ON s.network_id = n.network_id")
	qb.where("n.publish = true")
}

// addProvinceFilter restricts a query that already joins meta_history
// (aliased h) to histories in the given provinces.
//
// A nil provinces parameter means "no filter" and leaves the query
// unchanged. A non-nil value is parsed as a comma-separated list; a value
// that parses to an empty set (for example the empty string) matches
// nothing, never everything.
func addProvinceFilter(qb *queryBuilder, provinces *string) {
	if provinces == nil {
		return
	}
	set := splitProvinces(*provinces)
	if len(set) == 0 {
		qb.where("false")
		return
	}
	qb.where(fmt.Sprintf("h.province IN (%s)", qb.bindStrings(set)))
}

// splitProvinces parses a comma-separated province list, dropping empty
// elements.
func splitProvinces(provinces string) []string {
	parts := strings.Split(provinces, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			result = append(result, p)
		}
	}
	return result
}

// ListParams are the common collection query parameters. Zero values mean
// "not specified".
type ListParams struct {
	// Stride keeps only rows whose primary key is divisible by it. This is
	// a SQL-level filter on the id space, not a sampling of the result set:
	// with non-contiguous ids the number of returned rows per page varies.
	// Kept deliberately; see the observations in DESIGN.md.
	Stride int
	Limit  int
	Offset int
}

// addStrideFilter applies the stride filter on the given id column.
func addStrideFilter(qb *queryBuilder, idColumn string, stride int) {
	if stride > 0 {
		qb.where(fmt.Sprintf("%s %% %s = 0", idColumn, qb.bind(stride)))
	}
}

// listSuffix renders the ORDER BY / LIMIT / OFFSET suffix for a collection
// query. Collections order deterministically so that limit/offset paging is
// stable across calls.
func (qb *queryBuilder) listSuffix(orderBy string, p ListParams) string {
	suffix := "ORDER BY " + orderBy
	if p.Limit > 0 {
		suffix += " LIMIT " + qb.bind(p.Limit)
	}
	if p.Offset > 0 {
		suffix += " OFFSET " + qb.bind(p.Offset)
	}
	return suffix
}

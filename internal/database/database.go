// Stationdata - Climate Station Metadata Service
// Copyright 2026 Meteonet
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/meteonet/stationdata

// Package database reads climate-station metadata from the external CRMP
// PostgreSQL schema. It is structured in three layers:
//
//   - query builders (query_builder.go and the per-entity base queries):
//     pure functions composing parameterized SQL, independently testable
//   - execution helpers (this file): pgx pool access, row scanning, metrics
//   - grouping (grouping.go): single-pass bulk grouping of child rows by
//     parent id, avoiding one query per parent
//
// All access is read-only. Every query takes a context and respects its
// deadline; when the caller's context carries no deadline a configurable
// per-query timeout is applied.
package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/meteonet/stationdata/internal/config"
	"github.com/meteonet/stationdata/internal/logging"
	"github.com/meteonet/stationdata/internal/metrics"
)

// DB wraps the PostgreSQL connection pool and provides the data access
// methods used by the API handlers.
type DB struct {
	pool         *pgxpool.Pool
	queryTimeout time.Duration
}

// New creates a connection pool for the CRMP database and verifies it with
// a ping.
func New(ctx context.Context, cfg *config.DatabaseConfig) (*DB, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database DSN: %w", err)
	}
	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = cfg.MaxConns
	}
	if cfg.ConnectTimeout > 0 {
		poolCfg.ConnConfig.ConnectTimeout = cfg.ConnectTimeout
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	db := &DB{pool: pool, queryTimeout: cfg.QueryTimeout}
	if err := db.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logging.Info().
		Str("host", poolCfg.ConnConfig.Host).
		Str("database", poolCfg.ConnConfig.Database).
		Int32("max_conns", poolCfg.MaxConns).
		Msg("connected to metadata database")

	return db, nil
}

// Close releases the pool resources.
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// Ping checks database connectivity. Used by the readiness endpoint.
func (db *DB) Ping(ctx context.Context) error {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()
	return db.pool.Ping(ctx)
}

// ensureContext applies the configured query timeout when the incoming
// context has no earlier deadline.
func (db *DB) ensureContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if db.queryTimeout <= 0 {
		return ctx, func() {}
	}
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, db.queryTimeout)
}

// scanFunc scans a single row into a result type.
type scanFunc[T any] func(pgx.Rows) (T, error)

// queryAndScan executes a query and scans all rows using the provided scan
// function. The name labels the query in logs and metrics.
func queryAndScan[T any](ctx context.Context, db *DB, name, query string, args []interface{}, scan scanFunc[T]) ([]T, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	start := time.Now()
	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		metrics.ObserveDBQuery(name, start, err)
		return nil, fmt.Errorf("%s: query failed: %w", name, err)
	}
	defer rows.Close()

	var results []T
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			metrics.ObserveDBQuery(name, start, err)
			return nil, fmt.Errorf("%s: scan failed: %w", name, err)
		}
		results = append(results, item)
	}
	if err := rows.Err(); err != nil {
		metrics.ObserveDBQuery(name, start, err)
		return nil, fmt.Errorf("%s: row iteration failed: %w", name, err)
	}

	metrics.ObserveDBQuery(name, start, nil)
	logging.Ctx(ctx).Debug().Str("query", name).Int("rows", len(results)).
		Dur("elapsed", time.Since(start)).Msg("query complete")
	return results, nil
}

// queryExactlyOne executes a query that must match exactly one row.
// Zero rows yields ErrNotFound, more than one yields ErrDataIntegrity.
func queryExactlyOne[T any](ctx context.Context, db *DB, name, query string, args []interface{}, scan scanFunc[T]) (T, error) {
	var zero T
	results, err := queryAndScan(ctx, db, name, query, args, scan)
	if err != nil {
		return zero, err
	}
	switch len(results) {
	case 0:
		return zero, fmt.Errorf("%s: %w", name, ErrNotFound)
	case 1:
		return results[0], nil
	default:
		return zero, fmt.Errorf("%s matched %d rows: %w", name, len(results), ErrDataIntegrity)
	}
}

// Stationdata - Climate Station Metadata Service
// Copyright 2026 Meteonet
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/meteonet/stationdata

// Command server runs the climate station metadata HTTP service.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/meteonet/stationdata/internal/api"
	"github.com/meteonet/stationdata/internal/config"
	"github.com/meteonet/stationdata/internal/database"
	"github.com/meteonet/stationdata/internal/logging"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Optional .env for local development; absence is not an error.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("failed to load configuration")
	}

	logCfg := logging.DefaultConfig()
	logCfg.Level = cfg.Logging.Level
	logCfg.Format = cfg.Logging.Format
	logCfg.Caller = cfg.Logging.Caller
	logging.Init(logCfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.New(ctx, &cfg.Database)
	if err != nil {
		logging.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	handlers := api.NewHandlers(db, &cfg.API)
	middleware := api.NewMiddleware(api.MiddlewareConfig{
		CORSAllowedOrigins: cfg.Server.CORSOrigins,
		RateLimitRequests:  cfg.Server.RateLimitReqs,
		RateLimitWindow:    cfg.Server.RateLimitWindow,
		RateLimitDisabled:  cfg.Server.RateLimitDisabled,
	})

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           api.NewRouter(handlers, middleware),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logging.Info().Str("addr", server.Addr).Msg("server listening")
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal().Err(err).Msg("server failed")
		}
	case <-ctx.Done():
		logging.Info().Msg("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logging.Error().Err(err).Msg("graceful shutdown failed")
		os.Exit(1)
	}
	logging.Info().Msg("server stopped")
}

// Stationdata - Climate Station Metadata Service
// Copyright 2026 Meteonet
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/meteonet/stationdata

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"

	"github.com/meteonet/stationdata/internal/logging"
	"github.com/meteonet/stationdata/internal/metrics"
)

// MiddlewareConfig holds the router middleware settings.
type MiddlewareConfig struct {
	CORSAllowedOrigins []string
	RateLimitRequests  int
	RateLimitWindow    time.Duration
	RateLimitDisabled  bool
}

// Middleware provides chi-compatible middleware factories built from the
// server configuration.
type Middleware struct {
	cors      func(http.Handler) http.Handler
	rateLimit func(http.Handler) http.Handler
}

// NewMiddleware creates the middleware set.
func NewMiddleware(cfg MiddlewareConfig) *Middleware {
	corsHandler := cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSAllowedOrigins,
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
		MaxAge:         86400,
	})

	rateLimit := func(next http.Handler) http.Handler { return next }
	if !cfg.RateLimitDisabled && cfg.RateLimitRequests > 0 {
		rateLimit = httprate.Limit(
			cfg.RateLimitRequests,
			cfg.RateLimitWindow,
			httprate.WithKeyFuncs(httprate.KeyByIP),
		)
	}

	return &Middleware{cors: corsHandler, rateLimit: rateLimit}
}

// CORS returns the CORS middleware.
func (m *Middleware) CORS() func(http.Handler) http.Handler {
	return m.cors
}

// RateLimit returns the IP-keyed rate limiting middleware, or a no-op when
// rate limiting is disabled.
func (m *Middleware) RateLimit() func(http.Handler) http.Handler {
	return m.rateLimit
}

// RequestIDWithLogging assigns each request an id, exposes it in the
// X-Request-ID response header and attaches it to the logging context so
// every log line of the request carries it.
func RequestIDWithLogging() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := r.Header.Get("X-Request-ID")
			if requestID == "" {
				requestID = logging.GenerateRequestID()
			}
			w.Header().Set("X-Request-ID", requestID)

			ctx := logging.ContextWithRequestID(r.Context(), requestID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequestLogging logs one structured line per request and records the
// Prometheus request metrics. The route pattern, not the raw path, labels
// the metrics to keep cardinality bounded.
func RequestLogging() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			metrics.APIActiveRequests.Inc()
			defer metrics.APIActiveRequests.Dec()

			next.ServeHTTP(ww, r)

			elapsed := time.Since(start)
			endpoint := r.URL.Path
			if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
				endpoint = rctx.RoutePattern()
			}
			metrics.ObserveAPIRequest(r.Method, endpoint, ww.Status(), elapsed)
			logging.Ctx(r.Context()).Info().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", ww.Status()).
				Int("bytes", ww.BytesWritten()).
				Dur("elapsed", elapsed).
				Msg("request")
		})
	}
}

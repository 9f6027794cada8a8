// SPDX-License-Identifier: MIT

package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	charmlog "github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/katalvlaran/costflow/internal/config"
)

// shutdownTimeout bounds the drain of in-flight requests on Run's exit.
const shutdownTimeout = 10 * time.Second

// NewRouter wires all routes and middleware.
func NewRouter(cfg config.Server, logger *charmlog.Logger) chi.Router {
	h := NewHandlers(cfg, logger)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(requestLog(h.logger))
	r.Use(middleware.Recoverer)
	r.Use(securityHeaders)
	r.Use(middleware.ThrottleWithOpts(middleware.ThrottleOpts{
		Limit:        cfg.MaxConcurrent,
		StatusCode:   http.StatusServiceUnavailable,
		RetryAfterFn: func(bool) time.Duration { return time.Second },
	}))

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/solve", h.HandleSolve)
		r.Post("/shortest-paths", h.HandleShortestPaths)
		r.Get("/health", h.HandleHealth)
	})

	return r
}

// NewServer creates an HTTP server for cfg.
func NewServer(cfg config.Server, logger *charmlog.Logger) *http.Server {
	return &http.Server{
		Addr:         cfg.Addr,
		Handler:      NewRouter(cfg, logger),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
}

// Run serves until ctx is done, then shuts down gracefully.
func Run(ctx context.Context, srv *http.Server, logger *charmlog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		logger.Info("shutting down", "cause", context.Cause(ctx))
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(sctx); err != nil {
			return err
		}
		if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

// requestLog logs one line per request with status and latency.
func requestLog(logger *charmlog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			logger.Info("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"elapsed", time.Since(start).Round(time.Microsecond),
				"request_id", middleware.GetReqID(r.Context()),
			)
		})
	}
}

func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("Cache-Control", "no-store")
		next.ServeHTTP(w, r)
	})
}

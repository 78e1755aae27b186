// Package server wires the HTTP surface together.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/reqlens/reqlens/internal/domain/services"
	"github.com/reqlens/reqlens/internal/handler"
	"github.com/reqlens/reqlens/internal/infrastructure/config"
	"github.com/reqlens/reqlens/internal/infrastructure/providers"
	"github.com/reqlens/reqlens/internal/middleware"
)

// SetupMux wires handlers with the full middleware chain.
func SetupMux(service *services.AnalysisService, cfg *config.Config) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", handler.Health())
	mux.HandleFunc("/api/providers", handler.Providers(cfg))
	mux.HandleFunc("/api/analyze", handler.Analyze(service))
	mux.HandleFunc("/api/extract", handler.Extract(service))
	mux.Handle("/metrics", promhttp.Handler())

	return middleware.Chain(mux)
}

// Run starts the HTTP server and blocks until ctx is cancelled, then
// shuts down gracefully.
func Run(ctx context.Context, cfg *config.Config) error {
	dispatcher := providers.NewDispatcher(cfg)
	service := services.NewAnalysisService(dispatcher)

	srv := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      SetupMux(service, cfg),
		ReadTimeout:  cfg.Server.ReadTimeout(),
		WriteTimeout: cfg.Server.WriteTimeout(),
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server listening", "addr", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("shutting down")
	return srv.Shutdown(context.Background())
}

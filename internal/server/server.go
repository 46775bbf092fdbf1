// Package server wires the configured HTTP API: the viewer, the session hub and
// the router, plus graceful shutdown.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/kesava936/money-muling-detection/internal/config"
	"github.com/kesava936/money-muling-detection/internal/handlers"
	"github.com/kesava936/money-muling-detection/internal/render"
)

const shutdownTimeout = 10 * time.Second

type Server struct {
	httpServer *http.Server
	hub        *render.Hub
	viewer     *render.Viewer
}

func New(cfg *config.Config) (*Server, error) {
	hubPosition, err := cfg.HubPosition()
	if err != nil {
		return nil, fmt.Errorf("invalid graph config: %w", err)
	}

	hub := render.NewHub(cfg.Server.CORSOrigin)
	viewer := render.NewViewer(hub)
	graph := handlers.NewGraphHandler(viewer, hub, hubPosition, cfg.Server.MaxBodyBytes)

	router := handlers.NewRouter(graph, handlers.RouterConfig{
		CORSOrigin: cfg.Server.CORSOrigin,
		RateLimit:  cfg.Server.RateLimit,
		RateBurst:  cfg.Server.RateBurst,
	})

	return &Server{
		httpServer: &http.Server{
			Addr:              cfg.Addr(),
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
		hub:    hub,
		viewer: viewer,
	}, nil
}

func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Run serves until ctx is cancelled, then drains open requests.
func (s *Server) Run(ctx context.Context) error {
	hubCtx, stopHub := context.WithCancel(context.Background())
	defer stopHub()
	go s.hub.Run(hubCtx)

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("HTTP server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	slog.Info("shutting down", "clients", s.hub.ClientCount())

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("HTTP server shutdown: %w", err)
	}

	return nil
}

// Package server implements the HTTP JSON API for paletto serve.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/hashicorp/go-hclog"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jmylchreest/paletto/internal/store"
)

// Config holds server configuration.
type Config struct {
	Listen          string
	ShutdownTimeout time.Duration
}

// DefaultConfig returns a default configuration.
func DefaultConfig() Config {
	return Config{
		Listen:          "127.0.0.1:7410",
		ShutdownTimeout: 5 * time.Second,
	}
}

// HTTPServer serves the REST API.
type HTTPServer struct {
	store  *store.Store
	logger hclog.Logger
	router chi.Router
	config Config
	addr   string
}

// NewHTTPServer creates a new HTTP server for the REST API.
func NewHTTPServer(st *store.Store, config Config, logger hclog.Logger) *HTTPServer {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	s := &HTTPServer{
		store:  st,
		logger: logger,
		config: config,
		addr:   config.Listen,
	}
	s.router = s.setupRouter()
	s.RefreshMetrics()
	return s
}

// setupRouter configures all routes.
func (s *HTTPServer) setupRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/colours/{colour}/info", s.handleColourInfo)
		r.Get("/cmyk", s.handleCMYK)
		r.Get("/harmony", s.handleHarmony)
		r.Get("/schemes", s.handleSchemes)

		r.Get("/saved-colours", s.handleListColours)
		r.Post("/saved-colours", s.handleSaveColour)
		r.Delete("/saved-colours/{id}", s.handleRemoveColour)

		r.Get("/palettes", s.handleListPalettes)
		r.Post("/palettes", s.handleSavePalette)
		r.Post("/palettes/random", s.handleRandomPalette)
		r.Get("/palettes/{id}", s.handleGetPalette)
		r.Put("/palettes/{id}", s.handleUpdatePalette)
		r.Delete("/palettes/{id}", s.handleRemovePalette)
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())

	return r
}

// Router returns the chi router.
func (s *HTTPServer) Router() chi.Router {
	return s.router
}

// Addr returns the server address. After ListenAndServe has bound a port
// this reflects the actual address.
func (s *HTTPServer) Addr() string {
	return s.addr
}

// RefreshMetrics updates the stored entry gauges from the store.
func (s *HTTPServer) RefreshMetrics() {
	colours, palettes := s.store.Counts()
	storedColours.Set(float64(colours))
	storedPalettes.Set(float64(palettes))
}

// ListenAndServe starts the HTTP server and blocks until ctx is cancelled or
// the server fails. ready, if non-nil, is called with the bound address.
func (s *HTTPServer) ListenAndServe(ctx context.Context, ready func(addr string)) error {
	srv := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ln, err := net.Listen("tcp", s.config.Listen)
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}
	s.addr = ln.Addr().String()

	shutdownErr := make(chan error, 1)
	go func() {
		<-ctx.Done()
		timeout := s.config.ShutdownTimeout
		if timeout <= 0 {
			timeout = DefaultConfig().ShutdownTimeout
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		shutdownErr <- srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info("HTTP server listening", "addr", s.addr)
	if ready != nil {
		ready(s.addr)
	}
	if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serve: %w", err)
	}
	if err := <-shutdownErr; err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	s.logger.Info("HTTP server stopped")
	return nil
}

// requestLogger logs each request through hclog and records request metrics.
func (s *HTTPServer) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		observeRequest(r.Method, route, status, time.Since(start))

		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", status,
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}

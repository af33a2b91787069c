// SPDX-License-Identifier: MIT
//
// Package api serves route searches over HTTP.
//
// Routes:
//
//	GET /healthz
//	GET /v1/cities
//	GET /v1/roads
//	GET /v1/algorithms
//	GET /v1/routes?from=&to=&algorithm=&limit=&heuristic=
//	GET /v1/routes/all?from=
//	GET /metrics
//
// Bad query parameters answer 400, unknown cities and unreachable
// destinations answer 404. Every error body is an ErrorResponse.
package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/rotas/core"
	"github.com/katalvlaran/rotas/search"
)

// DefaultAddr is used when no address is configured.
const DefaultAddr = ":8090"

// DefaultSearchTimeout bounds a single search request.
const DefaultSearchTimeout = 5 * time.Second

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the request and lifecycle logger (default slog.Default()).
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.log = l
		}
	}
}

// WithAddr sets the listen address.
func WithAddr(addr string) Option {
	return func(s *Server) {
		if addr != "" {
			s.addr = addr
		}
	}
}

// WithRegistry registers the search metrics on reg and serves /metrics
// from it instead of the default Prometheus registry.
func WithRegistry(reg *prometheus.Registry) Option {
	return func(s *Server) {
		if reg != nil {
			s.registerer, s.gatherer = reg, reg
		}
	}
}

// WithSearchTimeout bounds each search; d <= 0 keeps the default.
func WithSearchTimeout(d time.Duration) Option {
	return func(s *Server) {
		if d > 0 {
			s.timeout = d
		}
	}
}

// Server is the HTTP front end over one road map. The map must not be
// modified while the server runs.
type Server struct {
	graph      *core.Graph
	log        *slog.Logger
	addr       string
	timeout    time.Duration
	registerer prometheus.Registerer
	gatherer   prometheus.Gatherer

	router  *mux.Router
	handler http.Handler
	server  *http.Server
}

// NewServer builds a Server for g. It fails only if the search metrics
// cannot be registered.
func NewServer(g *core.Graph, opts ...Option) (*Server, error) {
	s := &Server{
		graph:      g,
		log:        slog.Default(),
		addr:       DefaultAddr,
		timeout:    DefaultSearchTimeout,
		registerer: prometheus.DefaultRegisterer,
		gatherer:   prometheus.DefaultGatherer,
	}
	for _, opt := range opts {
		opt(s)
	}
	if err := search.Register(s.registerer); err != nil {
		return nil, err
	}

	s.router = mux.NewRouter()
	s.RegisterRoutes(s.router)
	s.router.Handle("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{})).Methods(http.MethodGet)
	s.router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "not_found", "no such endpoint")
	})
	s.router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "")
	})

	s.handler = withLogging(s.log, withRecovery(s.log, withSecureHeaders(s.router)))
	s.server = &http.Server{
		Addr:         s.addr,
		Handler:      s.handler,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: s.timeout + 5*time.Second,
		IdleTimeout:  15 * time.Second,
	}

	return s, nil
}

// RegisterRoutes mounts the map and route endpoints on router.
func (s *Server) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/healthz", handleHealth).Methods(http.MethodGet)

	v1 := router.PathPrefix("/v1").Subrouter()
	v1.HandleFunc("/cities", s.handleCities).Methods(http.MethodGet)
	v1.HandleFunc("/roads", s.handleRoads).Methods(http.MethodGet)
	v1.HandleFunc("/algorithms", handleAlgorithms).Methods(http.MethodGet)
	v1.HandleFunc("/routes", s.handleRoute).Methods(http.MethodGet)
	v1.HandleFunc("/routes/all", s.handleTable).Methods(http.MethodGet)
}

// Handler returns the fully wrapped HTTP handler.
func (s *Server) Handler() http.Handler { return s.handler }

// Addr returns the configured listen address.
func (s *Server) Addr() string { return s.addr }

// Start runs the HTTP server and blocks until it stops. A graceful Stop
// makes Start return nil.
func (s *Server) Start() error {
	s.log.Info("server_starting", "addr", s.addr)
	if err := s.server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

// Stop gracefully shuts down the server.
func (s *Server) Stop(ctx context.Context) error {
	s.log.Info("server_stopping")
	return s.server.Shutdown(ctx)
}

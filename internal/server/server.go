// Package server provides the HTTP API over the search engine.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/islandhop/placesearch/internal/catalog"
	"github.com/islandhop/placesearch/internal/config"
	"github.com/islandhop/placesearch/internal/metrics"
	"github.com/islandhop/placesearch/internal/search"
)

// Server is the HTTP server for the placesearch API.
type Server struct {
	engine  *search.Engine
	catalog *catalog.Catalog
	config  *config.ServerConfig
	logger  *zap.Logger
	server  *http.Server
}

// NewServer creates a server with the given dependencies.
func NewServer(engine *search.Engine, cat *catalog.Catalog, cfg *config.ServerConfig, logger *zap.Logger) *Server {
	return &Server{
		engine:  engine,
		catalog: cat,
		config:  cfg,
		logger:  logger,
	}
}

// Router builds the API router. Exposed so tests can drive the full
// middleware and routing stack without a listener.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(middleware.Compress(5))
	r.Use(metrics.Middleware())

	r.Post("/api/v1/search", s.handleSearch)
	r.Post("/api/v1/related", s.handleRelated)
	r.Get("/api/v1/places/{id}", s.handleGetPlace)
	r.Get("/api/v1/status", s.handleStatus)
	r.Get("/health", s.handleHealth)
	r.Handle("/metrics", promhttp.Handler())
	return r
}

// Start starts the HTTP server and blocks until it stops.
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.Router(),
	}
	s.logger.Info("starting server", zap.String("addr", addr))
	return s.server.ListenAndServe()
}

// Stop gracefully shuts down the server.
func (s *Server) Stop(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}

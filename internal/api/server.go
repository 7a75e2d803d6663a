// Package api provides the HTTP API server and handlers for the catalog.
package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/princeofgodman/figma-jobeee/internal/config"
	"github.com/princeofgodman/figma-jobeee/internal/ratelimit"
	"github.com/princeofgodman/figma-jobeee/internal/service"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	catalog *service.CatalogService
	limiter *ratelimit.KeyedRateLimiter
	router  *chi.Mux
	prefix  string
	logger  *slog.Logger
}

// NewServer creates a new HTTP server with all routes configured.
func NewServer(catalog *service.CatalogService, cfg config.ServerConfig, logger *slog.Logger) *Server {
	s := &Server{
		catalog: catalog,
		limiter: ratelimit.New(cfg.RateLimitRPS, cfg.RateLimitBurst),
		router:  chi.NewRouter(),
		prefix:  cfg.PathPrefix,
		logger:  logger,
	}

	s.setupMiddleware(cfg)
	s.setupRoutes()

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// setupMiddleware configures the middleware stack.
func (s *Server) setupMiddleware(cfg config.ServerConfig) {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Compress(5))

	// The browser client is served from a different origin.
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
		ExposedHeaders: []string{"Content-Length"},
		MaxAge:         600,
	}))

	s.router.Use(middleware.Timeout(cfg.RequestTimeout))
	s.router.Use(RateLimitMiddleware(s.limiter, s.logger))
}

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() {
	s.router.Route(s.prefix, func(r chi.Router) {
		r.Get("/health", s.handleHealthCheck)
		r.Post("/seed", s.handleSeed)

		r.Get("/stories", s.handleListStories)
		r.Get("/feed", s.handleListFeed)
		r.Get("/aclonas", s.handleListAclonas)

		r.Route("/threads", func(r chi.Router) {
			r.Get("/{id}", s.handleGetThread)

			// Writes moved to the client-local overlay store. The routes
			// stay registered so stale clients get an explanation instead
			// of a bare 404.
			r.Post("/{id}/comments", s.handleCreateComment)
			r.Post("/{id}/like", s.handleLikeThread)
		})
	})
}

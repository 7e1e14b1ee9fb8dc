package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"slices"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"
	"github.com/invopop/jsonschema"
	"github.com/rs/cors"

	"github.com/umputun/captions/pkg/caption"
	"github.com/umputun/captions/pkg/config"
	"github.com/umputun/captions/pkg/domain"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/database.go -pkg mocks -skip-ensure -fmt goimports . Database
//go:generate moq -out mocks/generator.go -pkg mocks -skip-ensure -fmt goimports . Generator

// Server represents HTTP server instance
type Server struct {
	config    ConfigProvider
	db        Database
	generator Generator
	version   string
	debug     bool
	schema    *jsonschema.Schema

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// Database interface for stored generation records, nil if storage is disabled
type Database interface {
	ListGenerations(ctx context.Context, limit int) ([]domain.Generation, error)
	GetGeneration(ctx context.Context, id string) (*domain.Generation, error)
	MarkFavorite(ctx context.Context, id string, index int) error
	Ping(ctx context.Context) error
	Name() string
	Collections(ctx context.Context, limit int) ([]string, error)
}

// Generator interface for caption generation
type Generator interface {
	Generate(ctx context.Context, req domain.GenerationRequest) (caption.Result, error)
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
	GetGeneratorConfig() config.GeneratorConfig
	GetAllowedOrigins() []string
}

// New initializes a new server instance. db can be nil, list and favorite requests fail in this case.
func New(cfg ConfigProvider, db Database, generator Generator, version string, debug bool) *Server {
	s := &Server{
		config:    cfg,
		db:        db,
		generator: generator,
		version:   version,
		debug:     debug,
		schema:    jsonschema.Reflect(&captionRecord{}),
		router:    routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	log.Printf("[INFO] starting server on %s", listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:              listen,
		Handler:           s.router,
		ReadHeaderTimeout: timeout,
		ReadTimeout:       timeout,
		WriteTimeout:      timeout,
	}
	httpServer := s.httpServer
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		log.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("captions", "umputun", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(corsMiddleware(s.config.GetAllowedOrigins()))
	s.router.Use(rest.SizeLimit(64 * 1024)) // 64KB, requests are small json documents
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.HandleFunc("GET /{$}", s.rootHandler)
	s.router.HandleFunc("GET /test", s.diagnosticsHandler)

	s.router.Mount("/api").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /hello", s.helloHandler)
		r.HandleFunc("GET /options", s.optionsHandler)
		r.HandleFunc("GET /schema", s.schemaHandler)
		r.HandleFunc("POST /generate", s.generateHandler)
		r.HandleFunc("GET /captions", s.listCaptionsHandler)
		r.HandleFunc("GET /captions/{id}", s.getCaptionHandler)
		r.HandleFunc("POST /captions/{id}/favorite", s.favoriteHandler)
	})
}

// corsMiddleware allows browser clients from the listed origins, "*" allows any origin.
// Credentials are allowed only for an explicit origin list.
func corsMiddleware(origins []string) func(http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Requested-With"},
		AllowCredentials: !slices.Contains(origins, "*"),
		MaxAge:           600,
	})
	return c.Handler
}

// renderJSON sends JSON response
func renderJSON(w http.ResponseWriter, _ *http.Request, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// renderError sends error response as JSON
func renderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	renderJSON(w, r, code, map[string]string{"error": errMsg})
}

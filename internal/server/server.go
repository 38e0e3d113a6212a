// Package server exposes the diagram pipeline over HTTP.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/azmapper/azmap/pkg/cache"
	"github.com/azmapper/azmap/pkg/pipeline"
	"github.com/azmapper/azmap/pkg/store"
)

// Config holds server settings.
type Config struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string

	// RedisAddr enables the Redis cache backend when set.
	// When empty, a file cache under CacheDir is used instead.
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// CacheDir is the file cache directory. Empty disables caching
	// when RedisAddr is also empty.
	CacheDir string

	// MongoURI enables the MongoDB build archive when set.
	// When empty, builds are kept in memory.
	MongoURI string

	// IconDir points at a directory of service icons.
	IconDir string
}

// Server routes diagram requests to the pipeline runner.
type Server struct {
	cfg     Config
	runner  *pipeline.Runner
	archive store.Archive
	logger  *log.Logger
	http    *http.Server
}

// New assembles a server from the config, constructing the cache and
// archive backends it needs.
func New(ctx context.Context, cfg Config, logger *log.Logger) (*Server, error) {
	if cfg.Addr == "" {
		cfg.Addr = ":8080"
	}
	if logger == nil {
		logger = log.Default()
	}

	c, err := buildCache(ctx, cfg)
	if err != nil {
		return nil, err
	}

	archive, err := buildArchive(ctx, cfg)
	if err != nil {
		_ = c.Close()
		return nil, err
	}

	s := &Server{
		cfg:     cfg,
		runner:  pipeline.NewRunner(c, cache.NewDefaultKeyer(), logger),
		archive: archive,
		logger:  logger,
	}
	s.http = &http.Server{
		Addr:              cfg.Addr,
		Handler:           s.routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s, nil
}

func buildCache(ctx context.Context, cfg Config) (cache.Cache, error) {
	if cfg.RedisAddr != "" {
		return cache.NewRedisCache(ctx, cache.RedisConfig{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
	}
	if cfg.CacheDir != "" {
		return cache.NewFileCache(cfg.CacheDir)
	}
	return cache.NewNullCache(), nil
}

func buildArchive(ctx context.Context, cfg Config) (store.Archive, error) {
	if cfg.MongoURI != "" {
		return store.NewMongoArchive(ctx, store.MongoConfig{URI: cfg.MongoURI})
	}
	return store.NewMemoryArchive(), nil
}

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.requestHooks)

	r.Get("/healthz", s.handleHealth)
	r.Route("/api", func(r chi.Router) {
		r.Post("/diagrams", s.handleCreateDiagram)
		r.Get("/builds", s.handleListBuilds)
		r.Get("/builds/{id}", s.handleGetBuild)
		r.Delete("/builds/{id}", s.handleDeleteBuild)
	})
	return r
}

// ListenAndServe starts the server and blocks until ctx is cancelled or the
// listener fails.
func (s *Server) ListenAndServe(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", s.cfg.Addr)
		errCh <- s.http.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := s.http.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return s.Close(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// Handler exposes the route tree, primarily for tests.
func (s *Server) Handler() http.Handler {
	return s.http.Handler
}

// Close releases the cache and archive backends.
func (s *Server) Close(ctx context.Context) error {
	runnerErr := s.runner.Close()
	archiveErr := s.archive.Close(ctx)
	if runnerErr != nil {
		return runnerErr
	}
	return archiveErr
}

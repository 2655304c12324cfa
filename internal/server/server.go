// Package server assembles and runs the catalog HTTP API.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"mangacatalog/database"
	"mangacatalog/internal/config"
	"mangacatalog/internal/microservices/http-api/handler"
	"mangacatalog/internal/microservices/http-api/middleware"
	"mangacatalog/internal/microservices/http-api/repository"
	"mangacatalog/internal/microservices/http-api/service"
	"mangacatalog/internal/notify"
)

// Server owns the http.Server and everything it closes on shutdown.
type Server struct {
	cfg    *config.Config
	logger *slog.Logger
	http   *http.Server
	db     *gorm.DB
	pub    notify.Publisher
}

// New wires the store, services and router around an open database.
func New(cfg *config.Config, db *gorm.DB, pub notify.Publisher, logger *slog.Logger) *Server {
	if pub == nil {
		pub = notify.Noop{}
	}
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	store := repository.NewStore(db)
	router := handler.NewRouter(handler.RouterDeps{
		Mangas:         service.NewMangaService(store, pub, logger),
		Lookups:        service.NewLookupService(store),
		DB:             store,
		Logger:         logger,
		CORSOrigins:    cfg.CORSOrigins,
		RateLimiter:    middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst),
		RequestTimeout: cfg.RequestTimeout,
	})

	return &Server{
		cfg:    cfg,
		logger: logger,
		db:     db,
		pub:    pub,
		http: &http.Server{
			Addr:              cfg.HTTPAddr(),
			Handler:           router,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.http.Handler
}

// Run serves until ctx is cancelled, then drains in-flight requests within
// SHUTDOWN_TIMEOUT.
func (s *Server) Run(ctx context.Context) error {
	errChan := make(chan error, 1)
	go func() {
		s.logger.Info("http_server_listening", "addr", s.http.Addr)
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
		close(errChan)
	}()

	select {
	case err := <-errChan:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
		s.logger.Info("received_shutdown_signal")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	if err := s.http.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	s.logger.Info("server_stopped_gracefully")
	return nil
}

// Close releases the publisher and the database pool.
func (s *Server) Close() {
	if c, ok := s.pub.(interface{ Close() error }); ok {
		if err := c.Close(); err != nil {
			s.logger.Warn("publisher_close_failed", "error", err.Error())
		}
	}
	if err := database.Close(s.db); err != nil {
		s.logger.Warn("database_close_failed", "error", err.Error())
	}
}

// Start connects, migrates when AUTO_MIGRATE is set, and runs the API until
// ctx ends.
func Start(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	if cfg.AutoMigrate {
		if err := database.Migrate(cfg.DatabaseURL, "up", logger); err != nil {
			return err
		}
	}

	db, err := database.Connect(ctx, cfg, logger)
	if err != nil {
		return err
	}

	var pub notify.Publisher = notify.Noop{}
	if cfg.RedisURL != "" {
		redisPub, err := notify.NewRedisPublisher(cfg.RedisURL, cfg.EventsChannel)
		if err != nil {
			// events are best effort, the API still serves without them
			logger.Warn("events_disabled", "error", err.Error())
		} else {
			pub = redisPub
			logger.Info("events_enabled", "channel", cfg.EventsChannel)
		}
	}

	srv := New(cfg, db, pub, logger)
	defer srv.Close()
	return srv.Run(ctx)
}

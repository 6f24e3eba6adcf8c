package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	ginhandler "user-api-service/internal/adapter/gin/handler"
	ginrouter "user-api-service/internal/adapter/gin/router"
	"user-api-service/internal/config"

	"go.uber.org/zap"
)

// Server wraps the HTTP server and its dependencies.
type Server struct {
	Config *config.Config
	Logger *zap.Logger
	HTTP   *http.Server
}

// New creates a new server instance with the router fully wired.
func New(
	cfg *config.Config,
	l *zap.Logger,
	userHandler *ginhandler.UserHandler,
	systemHandler *ginhandler.SystemHandler,
) *Server {
	router := ginrouter.SetupRouter(userHandler, systemHandler, l)

	requestTimeout := time.Duration(cfg.App.RequestTimeoutSeconds) * time.Second

	return &Server{
		Config: cfg,
		Logger: l,
		HTTP: &http.Server{
			Addr:              cfg.App.Addr(),
			Handler:           router,
			ReadHeaderTimeout: 2 * time.Second,
			ReadTimeout:       requestTimeout,
			WriteTimeout:      requestTimeout,
			IdleTimeout:       120 * time.Second,
		},
	}
}

// Start starts the HTTP server and blocks until it stops.
func (s *Server) Start() error {
	s.Logger.Info("HTTP server running", zap.String("address", s.HTTP.Addr))

	if err := s.HTTP.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.Logger.Info("shutting down HTTP server...")
	return s.HTTP.Shutdown(ctx)
}

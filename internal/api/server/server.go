package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/feral-file/ff-revshare/internal/api/middleware"
	"github.com/feral-file/ff-revshare/internal/api/rest"
	"github.com/feral-file/ff-revshare/internal/api/shared/executor"
	"github.com/feral-file/ff-revshare/internal/logger"
	"github.com/feral-file/ff-revshare/internal/metrics"
	"github.com/feral-file/ff-revshare/internal/revshare"
)

// Config holds the server configuration
type Config struct {
	Debug          bool
	Host           string
	Port           int
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	AllowedOrigins []string
	Auth           middleware.AuthConfig
}

// Server wraps the HTTP server
type Server struct {
	config     Config
	service    revshare.Service
	httpServer *http.Server
}

// New creates a new API server
func New(cfg Config, service revshare.Service) *Server {
	return &Server{
		config:  cfg,
		service: service,
	}
}

// Router builds the gin engine with the middleware chain and all routes
func (s *Server) Router() *gin.Engine {
	// Set Gin mode based on debug flag
	if s.config.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Setup middleware
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(metrics.Middleware())
	router.Use(middleware.SetupCORS(s.config.AllowedOrigins))

	exec := executor.NewExecutor(s.service)
	restHandler := rest.NewHandler(s.config.Debug, exec)
	rest.SetupRoutes(router, restHandler, s.config.Auth)

	return router
}

// Start initializes and starts the HTTP server
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.Router(),
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
		IdleTimeout:  s.config.IdleTimeout,
	}

	logger.Info("Starting API server",
		zap.String("address", addr),
	)

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	logger.Info("Shutting down API server")

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			return fmt.Errorf("failed to shutdown server: %w", err)
		}
	}

	return nil
}

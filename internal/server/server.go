// Package server assembles the HTTP engine: middleware, health, metrics and
// the authenticated traffic routes.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	httperr "github.com/aevon-lab/traffic-dashboard/internal/core/errors"
)

// HealthChecker is an interface for components that can report their health status.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// RouteRegistrar is implemented by the API services.
type RouteRegistrar interface {
	RegisterRoutes(r gin.IRouter)
}

type Options struct {
	Addr            string
	Mode            string
	AllowOrigin     string
	ShutdownTimeout time.Duration
	Logger          *slog.Logger
}

type Server struct {
	Engine *gin.Engine
	Addr   string

	health          HealthChecker
	shutdownTimeout time.Duration
}

// New builds the engine. Routes of every registrar are mounted behind auth.
func New(opts Options, health HealthChecker, auth gin.HandlerFunc, registrars ...RouteRegistrar) *Server {
	// Set Gin mode based on configuration
	switch opts.Mode {
	case gin.DebugMode:
		gin.SetMode(gin.DebugMode)
	case gin.TestMode:
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	if opts.ShutdownTimeout <= 0 {
		opts.ShutdownTimeout = 10 * time.Second
	}

	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.Use(RequestID(), Recovery(logger), Logging(logger), CORS(opts.AllowOrigin), Metrics())

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, httperr.New(httperr.CodeNotFound, "Route not found"))
	})
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, httperr.New(httperr.CodeMethodNotAllowed, httperr.MsgMethodNotAllowed))
	})

	s := &Server{
		Engine:          r,
		Addr:            opts.Addr,
		health:          health,
		shutdownTimeout: opts.ShutdownTimeout,
	}

	r.GET("/health", s.healthHandler)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("")
	if auth != nil {
		api.Use(auth)
	}
	for _, reg := range registrars {
		reg.RegisterRoutes(api)
	}

	return s
}

func (s *Server) healthHandler(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if s.health != nil {
		if err := s.health.Ping(ctx); err != nil {
			slog.Error("[Server] Health check failed: store unreachable", "error", err)
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"success": false,
				"status":  "unhealthy",
				"error":   "store unreachable",
			})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"status":  "healthy",
		"store":   "connected",
	})
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.Addr,
		Handler:           s.Engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	slog.Info("[Server] Starting HTTP server", "address", s.Addr)

	go func() {
		<-ctx.Done()
		slog.Info("[Server] Stopping HTTP server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("[Server] HTTP server forced to shutdown", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

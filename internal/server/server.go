package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/antonioclim/taskpool/internal/config"
	"github.com/antonioclim/taskpool/internal/handlers"
)

// Server wraps the Gin engine serving the observability API.
type Server struct {
	httpSrv *http.Server
}

// New builds the router and wires the handler routes under /api/v1.
func New(cfg config.Server, h *handlers.Handler) *Server {
	if cfg.Mode == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	return &Server{
		httpSrv: &http.Server{
			Addr:    fmt.Sprintf(":%d", cfg.HTTPPort),
			Handler: Router(h),
		},
	}
}

// Router assembles the Gin engine with logging and recovery middleware.
func Router(h *handlers.Handler) *gin.Engine {
	logger := zap.L().Named("http")

	router := gin.New()
	router.Use(ginzap.Ginzap(logger, time.RFC3339, true))
	router.Use(ginzap.RecoveryWithZap(logger, true))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	api.GET("/stats", h.GetStats)
	api.GET("/runs", h.GetRuns)
	api.POST("/runs", h.CreateRun)
	return router
}

// Start blocks serving requests until Stop is called or the listener fails.
func (s *Server) Start() error {
	zap.S().Named("server").Infow("listening", "addr", s.httpSrv.Addr)
	if err := s.httpSrv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Stop shuts the server down gracefully, waiting for in-flight requests
// until ctx expires.
func (s *Server) Stop(ctx context.Context) error {
	return s.httpSrv.Shutdown(ctx)
}

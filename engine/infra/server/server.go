// Package server assembles the gin engine and owns the HTTP lifecycle.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	addressrouter "github.com/campusdir/campusdir/engine/address/router"
	houserouter "github.com/campusdir/campusdir/engine/house/router"
	"github.com/campusdir/campusdir/engine/infra/server/appstate"
	"github.com/campusdir/campusdir/engine/infra/server/routes"
	organizationrouter "github.com/campusdir/campusdir/engine/organization/router"
	personrouter "github.com/campusdir/campusdir/engine/person/router"
	"github.com/campusdir/campusdir/pkg/config"
	"github.com/campusdir/campusdir/pkg/logger"
	"github.com/gin-gonic/gin"
)

const (
	httpReadTimeout       = 15 * time.Second
	httpWriteTimeout      = 15 * time.Second
	httpIdleTimeout       = 60 * time.Second
	serverShutdownTimeout = 5 * time.Second
	hostLoopback          = "127.0.0.1"
)

const welcomeMessage = "Welcome to the Person/Address/Organization/House API. See /docs for OpenAPI UI."

// Server wraps the HTTP server and the entity stores it serves.
type Server struct {
	serverConfig *config.ServerConfig
	environment  string
	state        *appstate.State
	httpServer   *http.Server
}

// NewServer creates a server with fresh, empty stores.
func NewServer(ctx context.Context) (*Server, error) {
	cfg := config.FromContext(ctx)
	if cfg == nil {
		return nil, fmt.Errorf("configuration missing from context")
	}
	return &Server{
		serverConfig: &cfg.Server,
		environment:  cfg.Runtime.Environment,
		state:        appstate.NewState(),
	}, nil
}

// Handler builds the gin engine with every route mounted. Exposed separately
// from Run so tests can drive the full router in-process.
func (s *Server) Handler(ctx context.Context) http.Handler {
	if s.environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(LoggerMiddleware(logger.FromContext(ctx)))
	r.Use(appstate.StateMiddleware(s.state))

	r.GET(routes.Root(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": welcomeMessage})
	})
	registerHealthRoutes(r)
	addressrouter.Register(r)
	personrouter.Register(r)
	organizationrouter.Register(r)
	houserouter.Register(r)
	return r
}

// Run serves until the context is canceled or a termination signal arrives,
// then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	log := logger.FromContext(ctx)
	addr := fmt.Sprintf("%s:%d", s.serverConfig.Host, s.serverConfig.Port)
	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.Handler(ctx),
		ReadTimeout:  httpReadTimeout,
		WriteTimeout: httpWriteTimeout,
		IdleTimeout:  httpIdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("HTTP server listening", "addr", addr)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
		log.Info("context canceled, shutting down")
	case sig := <-quit:
		log.Info("shutdown signal received", "signal", sig.String())
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer cancel()
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	log.Info("server stopped")
	return nil
}

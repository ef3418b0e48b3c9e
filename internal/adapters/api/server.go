// Package api provides HTTP adapters for the hexagonal architecture
// These adapters handle incoming HTTP requests and translate them to use cases
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"weatherdash.app/internal/core/dashboard"
	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
)

// ServerConfig represents HTTP server configuration
type ServerConfig struct {
	Port int
}

// DashboardUseCase is the dashboard pipeline the HTTP adapter drives
type DashboardUseCase interface {
	State(ctx context.Context, profileID string) (*dashboard.View, error)
	Search(ctx context.Context, profileID, city string) (*dashboard.View, error)
	Locate(ctx context.Context, profileID string, pos dashboard.GeoPosition) (*dashboard.View, error)
	ReplayHistory(ctx context.Context, profileID string, index int) (*dashboard.View, error)
	ToggleTheme(ctx context.Context, profileID string) (*dashboard.View, error)
	ToggleNotifications(ctx context.Context, profileID string) (*dashboard.View, error)
}

// HTTPServerAdapter implements the HTTP surface using Gin
type HTTPServerAdapter struct {
	router         *gin.Engine
	config         ServerConfig
	dashboard      DashboardUseCase
	outbox         ports.NotificationOutbox
	healthChecker  ports.SystemHealthChecker
	metricsHandler http.Handler
	location       *time.Location
}

// ServerOptions represents options for creating the HTTP server
type ServerOptions struct {
	Config         ServerConfig
	Dashboard      DashboardUseCase
	Outbox         ports.NotificationOutbox
	HealthChecker  ports.SystemHealthChecker
	MetricsHandler http.Handler
	// Location is the zone used for rendered dates; nil means local time
	Location *time.Location
}

// NewHTTPServerAdapter creates a new HTTP server adapter
func NewHTTPServerAdapter(opts ServerOptions) (*HTTPServerAdapter, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if err := RegisterValidators(); err != nil {
		return nil, errors.NewConfigurationError("failed to register request validators", err)
	}

	server := &HTTPServerAdapter{
		router:         gin.Default(),
		config:         opts.Config,
		dashboard:      opts.Dashboard,
		outbox:         opts.Outbox,
		healthChecker:  opts.HealthChecker,
		metricsHandler: opts.MetricsHandler,
		location:       opts.Location,
	}

	server.setupRoutes()
	return server, nil
}

// Validate checks if all required dependencies are provided
func (opts *ServerOptions) Validate() error {
	if opts.Dashboard == nil {
		return errors.NewValidationError("dashboard use case is required")
	}
	if opts.Outbox == nil {
		return errors.NewValidationError("notification outbox is required")
	}
	if opts.HealthChecker == nil {
		return errors.NewValidationError("health checker is required")
	}
	if opts.MetricsHandler == nil {
		return errors.NewValidationError("metrics handler is required")
	}
	return nil
}

// setupRoutes configures all HTTP routes
func (s *HTTPServerAdapter) setupRoutes() {
	api := s.router.Group("/api")
	api.GET("/health", s.getHealth)

	profiled := api.Group("", ProfileMiddleware())
	{
		profiled.GET("/dashboard", s.getDashboard)
		profiled.POST("/search", s.search)
		profiled.POST("/locate", s.locate)
		profiled.POST("/history/:index/replay", s.replayHistory)
		profiled.POST("/preferences/theme/toggle", s.toggleTheme)
		profiled.POST("/preferences/notifications/toggle", s.toggleNotifications)
		profiled.PUT("/notifications/permission", s.setPermission)
		profiled.GET("/notifications", s.drainNotifications)
	}

	s.router.GET("/metrics", gin.WrapH(s.metricsHandler))
}

// GetRouter returns the router for testing purposes
func (s *HTTPServerAdapter) GetRouter() *gin.Engine {
	return s.router
}

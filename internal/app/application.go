package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"weatherdash.app/internal/adapters/api"
	"weatherdash.app/internal/adapters/infrastructure"
	"weatherdash.app/internal/config"
	"weatherdash.app/internal/core/dashboard"
	"weatherdash.app/internal/core/notification"
	"weatherdash.app/internal/core/weather"
	"weatherdash.app/internal/ports"
)

type Application struct {
	config *config.Config

	// Use Cases
	weatherUseCase      *weather.UseCase
	notificationUseCase *notification.UseCase
	dashboardUseCase    *dashboard.UseCase

	// Adapters
	httpServer *http.Server
	router     *gin.Engine

	// Infrastructure
	deps  *DependencyContainer
	ports *ports.ApplicationPorts
}

func NewApplication() (*Application, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	deps, err := NewDependencyContainer(cfg)
	if err != nil {
		return nil, fmt.Errorf("create dependency container: %w", err)
	}

	return NewApplicationWithDependencies(cfg, deps)
}

// NewApplicationWithDependencies creates an application from a prepared container
func NewApplicationWithDependencies(cfg *config.Config, deps *DependencyContainer) (*Application, error) {
	app := &Application{
		config: cfg,
		deps:   deps,
		ports:  deps.ApplicationPorts(),
	}

	if err := app.initializeUseCases(); err != nil {
		return nil, app.abort(fmt.Errorf("initialize use cases: %w", err))
	}

	if err := app.initializeAdapters(); err != nil {
		return nil, app.abort(fmt.Errorf("initialize adapters: %w", err))
	}

	return app, nil
}

func (a *Application) abort(err error) error {
	if cleanupErr := a.deps.Cleanup(); cleanupErr != nil {
		slog.Warn("Failed to release dependencies", "error", cleanupErr)
	}
	return err
}

func (a *Application) initializeUseCases() error {
	slog.Info("Initializing use cases...")

	weatherUseCase, err := weather.NewUseCase(weather.UseCaseDependencies{
		Client: a.ports.WeatherClient,
		Logger: a.ports.Logger,
	})
	if err != nil {
		return fmt.Errorf("create weather use case: %w", err)
	}
	a.weatherUseCase = weatherUseCase

	notificationUseCase, err := notification.NewUseCase(notification.UseCaseDependencies{
		Service: a.ports.NotificationService,
		Logger:  a.ports.Logger,
		Metrics: a.ports.MetricsCollector,
	})
	if err != nil {
		return fmt.Errorf("create notification use case: %w", err)
	}
	a.notificationUseCase = notificationUseCase

	dashboardUseCase, err := dashboard.NewUseCase(dashboard.UseCaseDependencies{
		WeatherUseCase:      a.weatherUseCase,
		NotificationUseCase: a.notificationUseCase,
		PreferenceStore:     a.ports.PreferenceStore,
		Config:              a.ports.ConfigProvider,
		Logger:              a.ports.Logger,
		Metrics:             a.ports.MetricsCollector,
	})
	if err != nil {
		return fmt.Errorf("create dashboard use case: %w", err)
	}
	a.dashboardUseCase = dashboardUseCase

	slog.Info("Use cases initialized successfully")
	return nil
}

func (a *Application) initializeAdapters() error {
	slog.Info("Initializing adapters...")

	systemHealthChecker := infrastructure.NewSystemHealthChecker(a.ports.HealthCheckers...)

	httpAdapter, err := api.NewHTTPServerAdapter(api.ServerOptions{
		Config: api.ServerConfig{
			Port: a.config.Server.Port,
		},
		Dashboard:      a.dashboardUseCase,
		Outbox:         a.ports.NotificationOutbox,
		HealthChecker:  systemHealthChecker,
		MetricsHandler: a.deps.Metrics().Handler(),
		Location:       a.ports.ConfigProvider.GetDashboardConfig().Location,
	})
	if err != nil {
		return fmt.Errorf("create HTTP adapter: %w", err)
	}

	a.router = httpAdapter.GetRouter()

	a.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", a.config.Server.Port),
		Handler:      a.router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	slog.Info("Adapters initialized successfully")
	return nil
}

func (a *Application) Start(ctx context.Context) error {
	slog.Info("Starting HTTP server", "port", a.config.Server.Port)
	if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("HTTP server error: %w", err)
	}
	return nil
}

func (a *Application) Shutdown(ctx context.Context) error {
	slog.Info("Shutting down application...")

	var shutdownErr error
	if err := a.httpServer.Shutdown(ctx); err != nil {
		slog.Error("Error shutting down HTTP server", "error", err)
		shutdownErr = fmt.Errorf("shutdown HTTP server: %w", err)
	}

	if err := a.deps.Cleanup(); err != nil {
		slog.Warn("Error releasing dependencies", "error", err)
	}

	slog.Info("Application shutdown complete")
	return shutdownErr
}

// Config returns the application configuration
func (a *Application) Config() *config.Config {
	return a.config
}

// GetRouter returns the Gin router for testing
func (a *Application) GetRouter() *gin.Engine {
	return a.router
}

// GetDashboardUseCase returns the dashboard use case for testing
func (a *Application) GetDashboardUseCase() *dashboard.UseCase {
	return a.dashboardUseCase
}

package app

import (
	"fmt"
	"log/slog"

	"weatherdash.app/internal/adapters/external"
	"weatherdash.app/internal/adapters/infrastructure"
	"weatherdash.app/internal/config"
	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/logger"
)

type DependencyContainer struct {
	config  *config.Config
	ports   *ports.ApplicationPorts
	metrics *infrastructure.PrometheusMetricsCollector
}

// DependencyOverrides replaces adapters that would otherwise be built from
// configuration. Nil fields are built normally.
type DependencyOverrides struct {
	WeatherClient   ports.WeatherClient
	PreferenceStore external.PingablePreferenceStore
	Logger          ports.Logger
}

func NewDependencyContainer(cfg *config.Config) (*DependencyContainer, error) {
	return NewDependencyContainerWithOverrides(cfg, DependencyOverrides{})
}

func NewDependencyContainerWithOverrides(cfg *config.Config, overrides DependencyOverrides) (*DependencyContainer, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration is required")
	}

	container := &DependencyContainer{config: cfg}
	if err := container.initializePorts(overrides); err != nil {
		if closeErr := container.Cleanup(); closeErr != nil {
			slog.Warn("Failed to release partially initialized dependencies", "error", closeErr)
		}
		return nil, fmt.Errorf("initialize ports: %w", err)
	}

	return container, nil
}

func (c *DependencyContainer) initializePorts(overrides DependencyOverrides) error {
	slog.Info("Initializing ports...")

	c.ports = &ports.ApplicationPorts{}

	log, err := c.buildLogger(overrides.Logger)
	if err != nil {
		return err
	}
	c.ports.Logger = log

	c.metrics = infrastructure.NewPrometheusMetricsCollector()
	c.ports.MetricsCollector = c.metrics
	c.ports.ConfigProvider = infrastructure.NewConfigProviderAdapter(c.config)

	c.ports.WeatherClient = c.buildWeatherClient(overrides.WeatherClient, log)

	store := overrides.PreferenceStore
	storeType := "override"
	if store == nil {
		handle, err := external.NewPreferenceStoreFactory().CreatePreferenceStore(&c.config.Store)
		if err != nil {
			return fmt.Errorf("create preference store: %w", err)
		}
		store = handle.Store
		storeType = c.config.Store.Type.String()
		c.ports.Closers = append(c.ports.Closers, handle.Close)
	}
	c.ports.PreferenceStore = store
	slog.Info("Preference store initialized", "type", storeType)

	outbox := external.NewOutboxNotificationService(store, log)
	c.ports.NotificationOutbox = outbox
	c.ports.NotificationService = outbox

	if c.config.Notification.EmailEnabled() {
		email := external.NewSMTPEmailProviderAdapter(external.SMTPEmailParams{
			Host:     c.config.Notification.SMTPHost,
			Port:     c.config.Notification.SMTPPort,
			Username: c.config.Notification.SMTPUsername,
			Password: c.config.Notification.SMTPPassword,
			FromName: c.config.Notification.FromName,
			FromAddr: c.config.Notification.FromAddress,
		})
		if err := email.ValidateConfiguration(); err != nil {
			return fmt.Errorf("configure email forwarding: %w", err)
		}
		c.ports.NotificationService = external.NewEmailNotificationForwarder(outbox, email, c.config.Notification.EmailTo, log)
		slog.Info("Email forwarding of notifications enabled", "to", c.config.Notification.EmailTo)
	}

	c.ports.HealthCheckers = []ports.HealthChecker{
		infrastructure.NewPreferenceStoreHealthChecker(store, storeType),
		infrastructure.NewWeatherAPIHealthChecker(c.ports.WeatherClient),
	}

	slog.Info("Ports initialized successfully")
	return nil
}

func (c *DependencyContainer) buildLogger(override ports.Logger) (ports.Logger, error) {
	if override != nil {
		return override, nil
	}

	level := logger.ParseLevel(c.config.Logging.Level)
	if c.config.Logging.FilePath == "" {
		return infrastructure.NewSlogLoggerAdapter(logger.NewWithLevel(level).Logger), nil
	}

	fileLogger, err := infrastructure.NewFileLoggerAdapter(c.config.Logging.FilePath, level)
	if err != nil {
		return nil, fmt.Errorf("create file logger: %w", err)
	}
	c.ports.Closers = append(c.ports.Closers, fileLogger.Close)
	slog.Info("File logging enabled", "path", c.config.Logging.FilePath)
	return fileLogger, nil
}

func (c *DependencyContainer) buildWeatherClient(override ports.WeatherClient, log ports.Logger) ports.WeatherClient {
	client := override
	if client == nil {
		client = external.NewOpenWeatherMapClientAdapter(external.OpenWeatherMapClientParams{
			APIKey:     c.config.Weather.APIKey,
			BaseURL:    c.config.Weather.BaseURL,
			GeoURL:     c.config.Weather.GeoURL,
			OneCallURL: c.config.Weather.OneCallURL,
			Timeout:    c.config.Weather.Timeout(),
			Logger:     log,
		})
	}

	if c.config.Weather.EnableLogging {
		client = external.NewWeatherClientLoggingDecorator(client, log)
		slog.Info("Weather client logging enabled")
	}
	return external.NewWeatherClientMetricsDecorator(client, c.metrics)
}

func (c *DependencyContainer) ApplicationPorts() *ports.ApplicationPorts {
	return c.ports
}

// Metrics returns the collector backing the /metrics endpoint
func (c *DependencyContainer) Metrics() *infrastructure.PrometheusMetricsCollector {
	return c.metrics
}

// Cleanup releases stores and log files in reverse creation order
func (c *DependencyContainer) Cleanup() error {
	if c.ports == nil {
		return nil
	}

	var firstErr error
	for i := len(c.ports.Closers) - 1; i >= 0; i-- {
		if err := c.ports.Closers[i](); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	c.ports.Closers = nil
	return firstErr
}

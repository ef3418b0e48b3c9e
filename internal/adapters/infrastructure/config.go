package infrastructure

import (
	"time"

	"weatherdash.app/internal/config"
	"weatherdash.app/internal/ports"
)

// ConfigProviderAdapter implements the ConfigProvider port
type ConfigProviderAdapter struct {
	dashboard ports.DashboardConfig
}

// NewConfigProviderAdapter resolves the dashboard time zone once; an
// unknown zone falls back to the process local zone
func NewConfigProviderAdapter(cfg *config.Config) *ConfigProviderAdapter {
	loc, err := cfg.Dashboard.Location()
	if err != nil {
		loc = time.Local
	}

	return &ConfigProviderAdapter{
		dashboard: ports.DashboardConfig{
			Location:          loc,
			EnrichmentTimeout: cfg.Dashboard.EnrichmentTimeout(),
		},
	}
}

// GetDashboardConfig returns dashboard presentation configuration
func (c *ConfigProviderAdapter) GetDashboardConfig() ports.DashboardConfig {
	return c.dashboard
}

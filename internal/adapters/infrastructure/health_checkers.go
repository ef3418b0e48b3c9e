package infrastructure

import (
	"context"

	"weatherdash.app/internal/ports"
)

const (
	statusHealthy   = "healthy"
	statusUnhealthy = "unhealthy"
)

// Pinger is implemented by backends that can verify their connection
type Pinger interface {
	Ping(ctx context.Context) error
}

// PreferenceStoreHealthChecker pings the configured preference store
type PreferenceStoreHealthChecker struct {
	store     Pinger
	storeType string
}

// NewPreferenceStoreHealthChecker creates a new preference store health checker
func NewPreferenceStoreHealthChecker(store Pinger, storeType string) *PreferenceStoreHealthChecker {
	return &PreferenceStoreHealthChecker{store: store, storeType: storeType}
}

// Check verifies store connectivity
func (p *PreferenceStoreHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "preferenceStore",
		Details: map[string]interface{}{
			"type": p.storeType,
		},
	}

	if p.store == nil {
		status.Status = statusUnhealthy
		status.Error = "preference store is not configured"
		return status
	}

	if err := p.store.Ping(ctx); err != nil {
		status.Status = statusUnhealthy
		status.Error = err.Error()
		return status
	}

	status.Status = statusHealthy
	return status
}

// WeatherAPIHealthChecker reports the configured weather client. It does not
// call the upstream API, which would spend quota.
type WeatherAPIHealthChecker struct {
	client ports.WeatherClient
}

// NewWeatherAPIHealthChecker creates a new weather API health checker
func NewWeatherAPIHealthChecker(client ports.WeatherClient) *WeatherAPIHealthChecker {
	return &WeatherAPIHealthChecker{client: client}
}

// Check verifies a weather client is wired
func (w *WeatherAPIHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "weatherAPI",
		Status:    statusHealthy,
		Details:   map[string]interface{}{},
	}

	if w.client == nil {
		status.Status = statusUnhealthy
		status.Error = "weather client is not available"
		return status
	}

	status.Details["client"] = w.client.GetClientName()
	return status
}

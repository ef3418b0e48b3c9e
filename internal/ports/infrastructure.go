package ports

import (
	"time"
)

// DashboardConfig represents dashboard presentation configuration
type DashboardConfig struct {
	// Location is the zone used to derive calendar days and display dates
	Location *time.Location
	// EnrichmentTimeout bounds the wait for air quality and alerts; zero means the default
	EnrichmentTimeout time.Duration
}

// ConfigProvider defines the contract for configuration management
type ConfigProvider interface {
	GetDashboardConfig() DashboardConfig
}

// Logger defines the contract for structured logging
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
}

// Field represents a log field
type Field struct {
	Key   string
	Value interface{}
}

// F creates a log field
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// MetricsCollector defines the contract for metrics collection
type MetricsCollector interface {
	RecordWeatherAPICall(endpoint string, success bool, duration time.Duration)
	RecordPipelineOutcome(outcome string)
	RecordNotification(kind string)
}

package ports

// ApplicationPorts aggregates all ports for dependency injection
type ApplicationPorts struct {
	// Weather
	WeatherClient WeatherClient

	// Persistence
	PreferenceStore PreferenceStore

	// Communication
	NotificationService NotificationService
	NotificationOutbox  NotificationOutbox

	// Infrastructure
	ConfigProvider   ConfigProvider
	Logger           Logger
	MetricsCollector MetricsCollector
	HealthCheckers   []HealthChecker
	Closers          []func() error
}

package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"weatherdash.app/pkg/errors"
	"weatherdash.app/pkg/validation"
)

const (
	maxRedisDB            = 15
	maxPortNumber         = 65535
	maxWeatherTimeoutSecs = 120
)

// Config represents the application configuration structure
type Config struct {
	Server       ServerConfig       `split_words:"true"`
	Weather      WeatherConfig      `split_words:"true"`
	Dashboard    DashboardConfig    `split_words:"true"`
	Store        StoreConfig        `split_words:"true"`
	Notification NotificationConfig `split_words:"true"`
	Logging      LoggingConfig      `split_words:"true"`
}

type ServerConfig struct {
	Port int `envconfig:"SERVER_PORT" default:"8080"`
}

type WeatherConfig struct {
	APIKey         string `envconfig:"OPENWEATHERMAP_API_KEY" required:"true"`
	BaseURL        string `envconfig:"OPENWEATHERMAP_API_BASE_URL" default:"https://api.openweathermap.org/data/2.5"`
	GeoURL         string `envconfig:"OPENWEATHERMAP_GEO_URL" default:"https://api.openweathermap.org/geo/1.0"`
	OneCallURL     string `envconfig:"OPENWEATHERMAP_ONECALL_URL" default:"https://api.openweathermap.org/data/3.0/onecall"`
	Units          string `envconfig:"WEATHER_UNITS" default:"metric"`
	TimeoutSeconds int    `envconfig:"WEATHER_TIMEOUT_SECONDS" default:"10"`
	EnableLogging  bool   `envconfig:"WEATHER_ENABLE_LOGGING" default:"true"`
}

// Timeout returns the upstream request timeout
func (w WeatherConfig) Timeout() time.Duration {
	return time.Duration(w.TimeoutSeconds) * time.Second
}

type DashboardConfig struct {
	TimeZone            string `envconfig:"DASHBOARD_TIMEZONE" default:"Local"`
	EnrichmentTimeoutMs int    `envconfig:"DASHBOARD_ENRICHMENT_TIMEOUT_MS" default:"3000"`
}

// EnrichmentTimeout returns how long a search waits for air quality and alerts
func (d DashboardConfig) EnrichmentTimeout() time.Duration {
	return time.Duration(d.EnrichmentTimeoutMs) * time.Millisecond
}

// Location resolves the configured time zone
func (d DashboardConfig) Location() (*time.Location, error) {
	return time.LoadLocation(d.TimeZone)
}

// StoreType represents the backend used for persisted preferences
type StoreType int

const (
	StoreTypeUnknown StoreType = iota
	StoreTypeMemory
	StoreTypeRedis
	StoreTypeSQLite
	StoreTypePostgres
)

// String returns the string representation of store type
func (s StoreType) String() string {
	switch s {
	case StoreTypeMemory:
		return "memory"
	case StoreTypeRedis:
		return "redis"
	case StoreTypeSQLite:
		return "sqlite"
	case StoreTypePostgres:
		return "postgres"
	default:
		return "unknown"
	}
}

// IsValid checks if the store type is valid
func (s StoreType) IsValid() bool {
	return s >= StoreTypeMemory && s <= StoreTypePostgres
}

// StoreTypeFromString converts string to StoreType enum
func StoreTypeFromString(s string) StoreType {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "memory":
		return StoreTypeMemory
	case "redis":
		return StoreTypeRedis
	case "sqlite":
		return StoreTypeSQLite
	case "postgres":
		return StoreTypePostgres
	default:
		return StoreTypeUnknown
	}
}

// UnmarshalText implements encoding.TextUnmarshaler for envconfig
func (s *StoreType) UnmarshalText(text []byte) error {
	*s = StoreTypeFromString(string(text))
	return nil
}

// MarshalText implements encoding.TextMarshaler for envconfig
func (s StoreType) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

type StoreConfig struct {
	Type       StoreType      `envconfig:"STORE_TYPE" default:"sqlite"`
	SQLitePath string         `envconfig:"STORE_SQLITE_PATH" default:"data/preferences.db"`
	Redis      RedisConfig    `split_words:"true"`
	Database   DatabaseConfig `split_words:"true"`
}

type RedisConfig struct {
	Addr         string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password     string `envconfig:"REDIS_PASSWORD" default:""`
	DB           int    `envconfig:"REDIS_DB" default:"0"`
	DialTimeout  int    `envconfig:"REDIS_DIAL_TIMEOUT" default:"5"`
	ReadTimeout  int    `envconfig:"REDIS_READ_TIMEOUT" default:"3"`
	WriteTimeout int    `envconfig:"REDIS_WRITE_TIMEOUT" default:"3"`
}

type DatabaseConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     int    `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" default:"postgres"`
	Password string `envconfig:"DB_PASSWORD" default:"postgres"`
	Name     string `envconfig:"DB_NAME" default:"weatherdash"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
}

func (c DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

type NotificationConfig struct {
	EmailTo      string `envconfig:"NOTIFY_EMAIL_TO"`
	SMTPHost     string `envconfig:"EMAIL_SMTP_HOST" default:"smtp.gmail.com"`
	SMTPPort     int    `envconfig:"EMAIL_SMTP_PORT" default:"587"`
	SMTPUsername string `envconfig:"EMAIL_SMTP_USERNAME"`
	SMTPPassword string `envconfig:"EMAIL_SMTP_PASSWORD"`
	FromName     string `envconfig:"EMAIL_FROM_NAME" default:"Weather Dashboard"`
	FromAddress  string `envconfig:"EMAIL_FROM_ADDRESS" default:"no-reply@weatherdash.app"`
}

// EmailEnabled reports whether notifications are forwarded by email
func (n NotificationConfig) EmailEnabled() bool {
	return strings.TrimSpace(n.EmailTo) != ""
}

type LoggingConfig struct {
	Level    string `envconfig:"LOG_LEVEL" default:"info"`
	FilePath string `envconfig:"LOG_FILE_PATH"`
}

func LoadConfig() (*Config, error) {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, errors.NewConfigurationError("error processing config", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return err
	}
	if err := c.Weather.Validate(); err != nil {
		return err
	}
	if err := c.Dashboard.Validate(); err != nil {
		return err
	}
	if err := c.Store.Validate(); err != nil {
		return err
	}
	if err := c.Notification.Validate(); err != nil {
		return err
	}
	if err := c.Logging.Validate(); err != nil {
		return err
	}
	return nil
}

func (s *ServerConfig) Validate() error {
	if s.Port < 1 || s.Port > maxPortNumber {
		return errors.NewConfigurationError("SERVER_PORT must be between 1 and 65535", nil)
	}
	return nil
}

func (w *WeatherConfig) Validate() error {
	if strings.TrimSpace(w.APIKey) == "" {
		return errors.NewConfigurationError("OPENWEATHERMAP_API_KEY cannot be empty", nil)
	}

	urls := map[string]string{
		"OPENWEATHERMAP_API_BASE_URL": w.BaseURL,
		"OPENWEATHERMAP_GEO_URL":      w.GeoURL,
		"OPENWEATHERMAP_ONECALL_URL":  w.OneCallURL,
	}
	for name, value := range urls {
		if !strings.HasPrefix(value, "http://") && !strings.HasPrefix(value, "https://") {
			return errors.NewConfigurationError(name+" must start with http:// or https://", nil)
		}
	}

	if w.Units != "metric" {
		return errors.NewConfigurationError("WEATHER_UNITS must be metric", nil)
	}
	if w.TimeoutSeconds < 1 || w.TimeoutSeconds > maxWeatherTimeoutSecs {
		return errors.NewConfigurationError("WEATHER_TIMEOUT_SECONDS must be between 1 and 120", nil)
	}
	return nil
}

func (d *DashboardConfig) Validate() error {
	if _, err := d.Location(); err != nil {
		return errors.NewConfigurationError("DASHBOARD_TIMEZONE is not a known time zone", err)
	}
	if d.EnrichmentTimeoutMs < 1 || d.EnrichmentTimeoutMs > maxWeatherTimeoutSecs*1000 {
		return errors.NewConfigurationError("DASHBOARD_ENRICHMENT_TIMEOUT_MS must be between 1 and 120000", nil)
	}
	return nil
}

func (s *StoreConfig) Validate() error {
	if !s.Type.IsValid() {
		return errors.NewConfigurationError("STORE_TYPE must be one of: memory, redis, sqlite, postgres", nil)
	}

	switch s.Type {
	case StoreTypeRedis:
		return s.Redis.Validate()
	case StoreTypePostgres:
		return s.Database.Validate()
	case StoreTypeSQLite:
		if strings.TrimSpace(s.SQLitePath) == "" {
			return errors.NewConfigurationError("STORE_SQLITE_PATH cannot be empty when using sqlite store", nil)
		}
	}
	return nil
}

func (r *RedisConfig) Validate() error {
	if r.Addr == "" {
		return errors.NewConfigurationError("REDIS_ADDR cannot be empty when using Redis store", nil)
	}
	if r.DB < 0 || r.DB > maxRedisDB {
		return errors.NewConfigurationError("REDIS_DB must be between 0 and 15", nil)
	}
	if r.DialTimeout < 1 || r.ReadTimeout < 1 || r.WriteTimeout < 1 {
		return errors.NewConfigurationError("Redis timeouts must be at least 1 second", nil)
	}
	return nil
}

func (d *DatabaseConfig) Validate() error {
	if d.Host == "" {
		return errors.NewConfigurationError("DB_HOST cannot be empty", nil)
	}
	if d.Port < 1 || d.Port > maxPortNumber {
		return errors.NewConfigurationError("DB_PORT must be between 1 and 65535", nil)
	}
	if d.User == "" {
		return errors.NewConfigurationError("DB_USER cannot be empty", nil)
	}
	if d.Name == "" {
		return errors.NewConfigurationError("DB_NAME cannot be empty", nil)
	}
	return d.ValidateSSLMode()
}

func (d *DatabaseConfig) ValidateSSLMode() error {
	validSSLModes := []string{"disable", "require", "verify-ca", "verify-full"}
	for _, mode := range validSSLModes {
		if d.SSLMode == mode {
			return nil
		}
	}
	return errors.NewConfigurationError(
		fmt.Sprintf("DB_SSL_MODE must be one of: %s", strings.Join(validSSLModes, ", ")), nil)
}

func (n *NotificationConfig) Validate() error {
	if !n.EmailEnabled() {
		return nil
	}
	if !validation.IsValidEmail(n.EmailTo) {
		return errors.NewConfigurationError("NOTIFY_EMAIL_TO must be a valid email address", nil)
	}
	if n.SMTPHost == "" {
		return errors.NewConfigurationError("EMAIL_SMTP_HOST cannot be empty when NOTIFY_EMAIL_TO is set", nil)
	}
	if n.SMTPPort < 1 || n.SMTPPort > maxPortNumber {
		return errors.NewConfigurationError("EMAIL_SMTP_PORT must be between 1 and 65535", nil)
	}
	if !strings.Contains(n.FromAddress, "@") {
		return errors.NewConfigurationError("EMAIL_FROM_ADDRESS must be a valid email address", nil)
	}
	return nil
}

func (l *LoggingConfig) Validate() error {
	switch strings.ToLower(l.Level) {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return errors.NewConfigurationError("LOG_LEVEL must be one of: debug, info, warn, error", nil)
	}
}

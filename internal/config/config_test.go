package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weatherdash.app/pkg/errors"
)

func TestLoadConfig(t *testing.T) {
	t.Run("RequiredFieldsMissing", func(t *testing.T) {
		os.Clearenv()

		config, err := LoadConfig()

		assert.Error(t, err)
		assert.Nil(t, config)
		assert.Contains(t, err.Error(), "OPENWEATHERMAP_API_KEY")
	})

	t.Run("DefaultValues", func(t *testing.T) {
		os.Clearenv()
		require.NoError(t, os.Setenv("OPENWEATHERMAP_API_KEY", "test-api-key"))

		config, err := LoadConfig()

		require.NoError(t, err)
		assert.Equal(t, 8080, config.Server.Port)
		assert.Equal(t, "https://api.openweathermap.org/data/2.5", config.Weather.BaseURL)
		assert.Equal(t, "https://api.openweathermap.org/geo/1.0", config.Weather.GeoURL)
		assert.Equal(t, "https://api.openweathermap.org/data/3.0/onecall", config.Weather.OneCallURL)
		assert.Equal(t, "metric", config.Weather.Units)
		assert.Equal(t, 10, config.Weather.TimeoutSeconds)
		assert.True(t, config.Weather.EnableLogging)
		assert.Equal(t, StoreTypeSQLite, config.Store.Type)
		assert.Equal(t, "data/preferences.db", config.Store.SQLitePath)
		assert.Equal(t, "localhost:6379", config.Store.Redis.Addr)
		assert.Equal(t, "weatherdash", config.Store.Database.Name)
		assert.False(t, config.Notification.EmailEnabled())
		assert.Equal(t, "info", config.Logging.Level)
		assert.Equal(t, "Local", config.Dashboard.TimeZone)
		assert.Equal(t, 3*time.Second, config.Dashboard.EnrichmentTimeout())
	})

	t.Run("CustomValues", func(t *testing.T) {
		os.Clearenv()
		require.NoError(t, os.Setenv("OPENWEATHERMAP_API_KEY", "custom-key"))
		require.NoError(t, os.Setenv("SERVER_PORT", "9090"))
		require.NoError(t, os.Setenv("STORE_TYPE", "redis"))
		require.NoError(t, os.Setenv("REDIS_ADDR", "redis:6380"))
		require.NoError(t, os.Setenv("REDIS_DB", "2"))
		require.NoError(t, os.Setenv("DASHBOARD_TIMEZONE", "Europe/Paris"))
		require.NoError(t, os.Setenv("NOTIFY_EMAIL_TO", "me@example.com"))
		require.NoError(t, os.Setenv("LOG_LEVEL", "debug"))

		config, err := LoadConfig()

		require.NoError(t, err)
		assert.Equal(t, 9090, config.Server.Port)
		assert.Equal(t, "custom-key", config.Weather.APIKey)
		assert.Equal(t, StoreTypeRedis, config.Store.Type)
		assert.Equal(t, "redis:6380", config.Store.Redis.Addr)
		assert.Equal(t, 2, config.Store.Redis.DB)
		assert.True(t, config.Notification.EmailEnabled())
		assert.Equal(t, "debug", config.Logging.Level)

		loc, err := config.Dashboard.Location()
		require.NoError(t, err)
		assert.Equal(t, "Europe/Paris", loc.String())
	})

	t.Run("InvalidStoreType", func(t *testing.T) {
		os.Clearenv()
		require.NoError(t, os.Setenv("OPENWEATHERMAP_API_KEY", "test-api-key"))
		require.NoError(t, os.Setenv("STORE_TYPE", "etcd"))

		config, err := LoadConfig()

		assert.Nil(t, config)
		assert.True(t, errors.IsConfigurationError(err))
		assert.Contains(t, err.Error(), "STORE_TYPE")
	})
}

func TestStoreTypeFromString(t *testing.T) {
	tests := []struct {
		input    string
		expected StoreType
	}{
		{"memory", StoreTypeMemory},
		{"REDIS", StoreTypeRedis},
		{" sqlite ", StoreTypeSQLite},
		{"postgres", StoreTypePostgres},
		{"mongo", StoreTypeUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, StoreTypeFromString(tt.input))
		})
	}
}

func TestConfigValidation(t *testing.T) {
	valid := func() Config {
		return Config{
			Server:    ServerConfig{Port: 8080},
			Weather:   WeatherConfig{APIKey: "k", BaseURL: "https://a", GeoURL: "https://b", OneCallURL: "https://c", Units: "metric", TimeoutSeconds: 10},
			Dashboard: DashboardConfig{TimeZone: "UTC", EnrichmentTimeoutMs: 3000},
			Store:     StoreConfig{Type: StoreTypeMemory},
			Logging:   LoggingConfig{Level: "info"},
		}
	}

	tests := []struct {
		name   string
		mutate func(c *Config)
		errMsg string
	}{
		{"Valid", func(c *Config) {}, ""},
		{"PortOutOfRange", func(c *Config) { c.Server.Port = 70000 }, "SERVER_PORT"},
		{"BadBaseURL", func(c *Config) { c.Weather.BaseURL = "ftp://x" }, "OPENWEATHERMAP_API_BASE_URL"},
		{"ImperialUnits", func(c *Config) { c.Weather.Units = "imperial" }, "WEATHER_UNITS"},
		{"ZeroTimeout", func(c *Config) { c.Weather.TimeoutSeconds = 0 }, "WEATHER_TIMEOUT_SECONDS"},
		{"UnknownZone", func(c *Config) { c.Dashboard.TimeZone = "Mars/Olympus" }, "DASHBOARD_TIMEZONE"},
		{"ZeroEnrichmentTimeout", func(c *Config) { c.Dashboard.EnrichmentTimeoutMs = 0 }, "DASHBOARD_ENRICHMENT_TIMEOUT_MS"},
		{"RedisDBOutOfRange", func(c *Config) {
			c.Store.Type = StoreTypeRedis
			c.Store.Redis = RedisConfig{Addr: "x:1", DB: 16, DialTimeout: 1, ReadTimeout: 1, WriteTimeout: 1}
		}, "REDIS_DB"},
		{"PostgresBadSSL", func(c *Config) {
			c.Store.Type = StoreTypePostgres
			c.Store.Database = DatabaseConfig{Host: "h", Port: 5432, User: "u", Name: "n", SSLMode: "sometimes"}
		}, "DB_SSL_MODE"},
		{"SQLiteEmptyPath", func(c *Config) { c.Store.Type = StoreTypeSQLite }, "STORE_SQLITE_PATH"},
		{"BadNotifyEmail", func(c *Config) { c.Notification.EmailTo = "nope" }, "NOTIFY_EMAIL_TO"},
		{"BadLogLevel", func(c *Config) { c.Logging.Level = "trace" }, "LOG_LEVEL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.errMsg == "" {
				assert.NoError(t, err)
				return
			}
			assert.Error(t, err)
			assert.True(t, errors.IsConfigurationError(err))
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

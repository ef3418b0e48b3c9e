package ports

import (
	"context"
	"time"
)

// LocationData represents a resolved place
type LocationData struct {
	Name        string
	Latitude    float64
	Longitude   float64
	CountryCode string
}

// CurrentWeatherData represents the current-conditions payload of the weather API
type CurrentWeatherData struct {
	Location      LocationData
	Timestamp     time.Time
	TemperatureC  float64
	FeelsLikeC    float64
	ConditionCode int
	Description   string
	WindSpeedMs   float64
	HumidityPct   int
	PressureHpa   int
	VisibilityM   int
}

// ForecastSampleData is one fixed-interval sample of the forecast list
type ForecastSampleData struct {
	Timestamp     time.Time
	ConditionCode int
	TemperatureC  float64
	Description   string
}

// AirQualityData carries the provider's 1..5 air quality index
type AirQualityData struct {
	AQI int
}

// AlertData is a raw weather alert as reported by the provider
type AlertData struct {
	Event       string
	Description string
	Severity    string
	Start       time.Time
	End         time.Time
	Sender      string
}

// WeatherClient defines the contract for the upstream weather API.
// Implementations return *errors.AppError values typed as NotFound, Network,
// Upstream or Unauthorized.
type WeatherClient interface {
	ResolveByName(ctx context.Context, city string) (*CurrentWeatherData, error)
	ResolveByCoordinates(ctx context.Context, lat, lon float64) (*LocationData, error)
	FetchForecast(ctx context.Context, lat, lon float64) ([]ForecastSampleData, error)
	FetchAirQuality(ctx context.Context, lat, lon float64) (*AirQualityData, error)
	FetchAlerts(ctx context.Context, lat, lon float64) ([]AlertData, error)
	GetClientName() string
}

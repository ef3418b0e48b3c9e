package external

import (
	"context"
	"time"

	"weatherdash.app/internal/ports"
)

// WeatherClientMetricsDecorator records call counts and latency for every upstream endpoint
type WeatherClientMetricsDecorator struct {
	client  ports.WeatherClient
	metrics ports.MetricsCollector
}

// NewWeatherClientMetricsDecorator creates a new metrics decorator for weather clients
func NewWeatherClientMetricsDecorator(client ports.WeatherClient, metrics ports.MetricsCollector) ports.WeatherClient {
	return &WeatherClientMetricsDecorator{
		client:  client,
		metrics: metrics,
	}
}

func (d *WeatherClientMetricsDecorator) record(endpoint string, start time.Time, err error) {
	d.metrics.RecordWeatherAPICall(endpoint, err == nil, time.Since(start))
}

func (d *WeatherClientMetricsDecorator) ResolveByName(ctx context.Context, city string) (*ports.CurrentWeatherData, error) {
	start := time.Now()
	data, err := d.client.ResolveByName(ctx, city)
	d.record("weather", start, err)
	return data, err
}

func (d *WeatherClientMetricsDecorator) ResolveByCoordinates(ctx context.Context, lat, lon float64) (*ports.LocationData, error) {
	start := time.Now()
	data, err := d.client.ResolveByCoordinates(ctx, lat, lon)
	d.record("reverse_geocode", start, err)
	return data, err
}

func (d *WeatherClientMetricsDecorator) FetchForecast(ctx context.Context, lat, lon float64) ([]ports.ForecastSampleData, error) {
	start := time.Now()
	samples, err := d.client.FetchForecast(ctx, lat, lon)
	d.record("forecast", start, err)
	return samples, err
}

func (d *WeatherClientMetricsDecorator) FetchAirQuality(ctx context.Context, lat, lon float64) (*ports.AirQualityData, error) {
	start := time.Now()
	data, err := d.client.FetchAirQuality(ctx, lat, lon)
	d.record("air_pollution", start, err)
	return data, err
}

func (d *WeatherClientMetricsDecorator) FetchAlerts(ctx context.Context, lat, lon float64) ([]ports.AlertData, error) {
	start := time.Now()
	alerts, err := d.client.FetchAlerts(ctx, lat, lon)
	d.record("onecall", start, err)
	return alerts, err
}

func (d *WeatherClientMetricsDecorator) GetClientName() string {
	return d.client.GetClientName()
}

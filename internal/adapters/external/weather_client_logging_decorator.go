package external

import (
	"context"
	"time"

	"weatherdash.app/internal/ports"
)

// WeatherClientLoggingDecorator decorates weather clients with structured logging
type WeatherClientLoggingDecorator struct {
	client ports.WeatherClient
	logger ports.Logger
}

// NewWeatherClientLoggingDecorator creates a new logging decorator for weather clients
func NewWeatherClientLoggingDecorator(client ports.WeatherClient, logger ports.Logger) ports.WeatherClient {
	return &WeatherClientLoggingDecorator{
		client: client,
		logger: logger,
	}
}

// call logs the request, runs fn and logs its outcome with the elapsed time
func (d *WeatherClientLoggingDecorator) call(operation string, fields []ports.Field, fn func() ([]ports.Field, error)) error {
	clientName := d.client.GetClientName()
	base := withFields([]ports.Field{
		ports.F("client", clientName),
		ports.F("operation", operation),
	}, fields...)

	d.logger.Info("Weather API request started", withFields(base, ports.F("event", "request"))...)

	startTime := time.Now()
	resultFields, err := fn()
	duration := time.Since(startTime)

	if err != nil {
		d.logger.Error("Weather API request failed", withFields(base,
			ports.F("event", "error"),
			ports.F("duration_ms", duration.Milliseconds()),
			ports.F("error", err.Error()))...)
		return err
	}

	d.logger.Info("Weather API request completed", withFields(withFields(base,
		ports.F("event", "response"),
		ports.F("duration_ms", duration.Milliseconds())), resultFields...)...)
	return nil
}

func withFields(base []ports.Field, extra ...ports.Field) []ports.Field {
	out := make([]ports.Field, 0, len(base)+len(extra))
	return append(append(out, base...), extra...)
}

func coordinateFields(lat, lon float64) []ports.Field {
	return []ports.Field{ports.F("lat", lat), ports.F("lon", lon)}
}

// ResolveByName wraps the client call with structured logging
func (d *WeatherClientLoggingDecorator) ResolveByName(ctx context.Context, city string) (*ports.CurrentWeatherData, error) {
	var data *ports.CurrentWeatherData
	err := d.call("resolve_by_name", []ports.Field{ports.F("city", city)}, func() ([]ports.Field, error) {
		var err error
		data, err = d.client.ResolveByName(ctx, city)
		if err != nil {
			return nil, err
		}
		return []ports.Field{
			ports.F("resolved", data.Location.Name),
			ports.F("temperature", data.TemperatureC),
			ports.F("condition", data.ConditionCode),
		}, nil
	})
	if err != nil {
		return nil, err
	}
	return data, nil
}

// ResolveByCoordinates wraps the client call with structured logging
func (d *WeatherClientLoggingDecorator) ResolveByCoordinates(ctx context.Context, lat, lon float64) (*ports.LocationData, error) {
	var data *ports.LocationData
	err := d.call("resolve_by_coordinates", coordinateFields(lat, lon), func() ([]ports.Field, error) {
		var err error
		data, err = d.client.ResolveByCoordinates(ctx, lat, lon)
		if err != nil {
			return nil, err
		}
		return []ports.Field{ports.F("resolved", data.Name)}, nil
	})
	if err != nil {
		return nil, err
	}
	return data, nil
}

// FetchForecast wraps the client call with structured logging
func (d *WeatherClientLoggingDecorator) FetchForecast(ctx context.Context, lat, lon float64) ([]ports.ForecastSampleData, error) {
	var samples []ports.ForecastSampleData
	err := d.call("forecast", coordinateFields(lat, lon), func() ([]ports.Field, error) {
		var err error
		samples, err = d.client.FetchForecast(ctx, lat, lon)
		if err != nil {
			return nil, err
		}
		return []ports.Field{ports.F("samples", len(samples))}, nil
	})
	if err != nil {
		return nil, err
	}
	return samples, nil
}

// FetchAirQuality wraps the client call with structured logging
func (d *WeatherClientLoggingDecorator) FetchAirQuality(ctx context.Context, lat, lon float64) (*ports.AirQualityData, error) {
	var data *ports.AirQualityData
	err := d.call("air_quality", coordinateFields(lat, lon), func() ([]ports.Field, error) {
		var err error
		data, err = d.client.FetchAirQuality(ctx, lat, lon)
		if err != nil {
			return nil, err
		}
		return []ports.Field{ports.F("aqi", data.AQI)}, nil
	})
	if err != nil {
		return nil, err
	}
	return data, nil
}

// FetchAlerts wraps the client call with structured logging
func (d *WeatherClientLoggingDecorator) FetchAlerts(ctx context.Context, lat, lon float64) ([]ports.AlertData, error) {
	var alerts []ports.AlertData
	err := d.call("alerts", coordinateFields(lat, lon), func() ([]ports.Field, error) {
		var err error
		alerts, err = d.client.FetchAlerts(ctx, lat, lon)
		if err != nil {
			return nil, err
		}
		return []ports.Field{ports.F("alerts", len(alerts))}, nil
	})
	if err != nil {
		return nil, err
	}
	return alerts, nil
}

// GetClientName returns the name of the wrapped client with logging indication
func (d *WeatherClientLoggingDecorator) GetClientName() string {
	return "logged(" + d.client.GetClientName() + ")"
}

package weather

import (
	"context"
	"fmt"
	"strings"

	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
	"weatherdash.app/pkg/validation"
)

type UseCase struct {
	client ports.WeatherClient
	logger ports.Logger
}

type UseCaseDependencies struct {
	Client ports.WeatherClient
	Logger ports.Logger
}

func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	if deps.Client == nil {
		return nil, errors.NewValidationError("weather client is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}

	return &UseCase{
		client: deps.Client,
		logger: deps.Logger,
	}, nil
}

// ResolveByName fetches current conditions for a city name
func (uc *UseCase) ResolveByName(ctx context.Context, city string) (*CurrentConditions, error) {
	city = strings.TrimSpace(city)
	if !validation.IsNotEmpty(city) {
		return nil, errors.NewValidationError("city is required")
	}

	data, err := uc.client.ResolveByName(ctx, city)
	if err != nil {
		return nil, uc.classify(fmt.Sprintf("resolve city %s", city), err)
	}

	current := convertCurrent(data)
	if err := current.IsValid(); err != nil {
		return nil, errors.NewUpstreamError("invalid weather data from provider: "+err.Error(), nil)
	}

	uc.logger.Debug("Current weather resolved",
		ports.F("city", current.Location.Name),
		ports.F("condition", current.ConditionCode))
	return current, nil
}

// ResolveByCoordinates reverse geocodes a position into a named location
func (uc *UseCase) ResolveByCoordinates(ctx context.Context, lat, lon float64) (*Location, error) {
	if !validation.IsValidCoordinates(lat, lon) {
		return nil, errors.NewValidationError("coordinates out of range")
	}

	data, err := uc.client.ResolveByCoordinates(ctx, lat, lon)
	if err != nil {
		return nil, uc.classify("reverse geocode", err)
	}

	loc := convertLocation(*data)
	return &loc, nil
}

// FetchForecast returns the raw sub-daily forecast samples
func (uc *UseCase) FetchForecast(ctx context.Context, lat, lon float64) ([]ForecastEntry, error) {
	samples, err := uc.client.FetchForecast(ctx, lat, lon)
	if err != nil {
		return nil, uc.classify("fetch forecast", err)
	}

	entries := make([]ForecastEntry, 0, len(samples))
	for _, s := range samples {
		entries = append(entries, ForecastEntry{
			Timestamp:     s.Timestamp.UTC(),
			ConditionCode: s.ConditionCode,
			TemperatureC:  s.TemperatureC,
			Description:   s.Description,
		})
	}
	return entries, nil
}

// FetchAirQuality returns nil when air quality cannot be obtained
func (uc *UseCase) FetchAirQuality(ctx context.Context, lat, lon float64) *AirQualitySample {
	data, err := uc.client.FetchAirQuality(ctx, lat, lon)
	if err != nil {
		uc.logger.Warn("Air quality unavailable",
			ports.F("lat", lat),
			ports.F("lon", lon),
			ports.F("error", err))
		return nil
	}
	if data == nil {
		return nil
	}
	return &AirQualitySample{AQI: data.AQI}
}

// FetchAlerts returns an absent AlertSet when alerts cannot be obtained
func (uc *UseCase) FetchAlerts(ctx context.Context, lat, lon float64) AlertSet {
	data, err := uc.client.FetchAlerts(ctx, lat, lon)
	if err != nil {
		reason := AlertsUnavailable
		if errors.IsUnauthorizedError(err) {
			reason = AlertsRestricted
		}
		uc.logger.Warn("Weather alerts unavailable",
			ports.F("reason", string(reason)),
			ports.F("error", err))
		return AbsentAlerts(reason)
	}

	alerts := make([]AlertEntry, 0, len(data))
	for _, a := range data {
		alerts = append(alerts, AlertEntry{
			Event:       a.Event,
			Description: a.Description,
			Severity:    SeverityFromString(a.Severity),
			Start:       a.Start.UTC(),
		})
	}
	return AlertSet{Alerts: alerts, Available: true}
}

// classify keeps typed client errors and wraps anything else as a network failure
func (uc *UseCase) classify(op string, err error) error {
	if errors.TypeOf(err) != errors.ErrorTypeUnknown {
		return err
	}
	return errors.NewNetworkError(op+" failed", err)
}

func convertLocation(l ports.LocationData) Location {
	return Location{
		Name:        l.Name,
		Latitude:    l.Latitude,
		Longitude:   l.Longitude,
		CountryCode: l.CountryCode,
	}
}

func convertCurrent(d *ports.CurrentWeatherData) *CurrentConditions {
	return &CurrentConditions{
		Location:      convertLocation(d.Location),
		Timestamp:     d.Timestamp.UTC(),
		TemperatureC:  d.TemperatureC,
		FeelsLikeC:    d.FeelsLikeC,
		ConditionCode: d.ConditionCode,
		Description:   d.Description,
		WindSpeedMs:   d.WindSpeedMs,
		HumidityPct:   d.HumidityPct,
		PressureHpa:   d.PressureHpa,
		VisibilityM:   d.VisibilityM,
	}
}

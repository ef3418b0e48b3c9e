// Package external provides adapters for external services
// These adapters implement ports for the weather API, preference stores, notifications, etc.
package external

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
)

const (
	defaultOWMBaseURL    = "https://api.openweathermap.org/data/2.5"
	defaultOWMGeoURL     = "https://api.openweathermap.org/geo/1.0"
	defaultOWMOneCallURL = "https://api.openweathermap.org/data/3.0/onecall"
	defaultOWMTimeout    = 10 * time.Second
)

// HTTPClient interface for HTTP requests (for testing)
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// OpenWeatherMapClientAdapter implements the WeatherClient port for OpenWeatherMap
type OpenWeatherMapClientAdapter struct {
	apiKey     string
	baseURL    string
	geoURL     string
	oneCallURL string
	client     HTTPClient
	logger     ports.Logger
}

// OpenWeatherMapClientParams holds parameters for creating the OpenWeatherMap client
type OpenWeatherMapClientParams struct {
	APIKey     string
	BaseURL    string
	GeoURL     string
	OneCallURL string
	Timeout    time.Duration
	HTTPClient HTTPClient
	Logger     ports.Logger
}

// owmCode accepts both the numeric and the string form of the "cod" field
type owmCode string

func (c *owmCode) UnmarshalJSON(data []byte) error {
	*c = owmCode(strings.Trim(string(data), `"`))
	return nil
}

type owmCondition struct {
	ID          int    `json:"id"`
	Description string `json:"description"`
}

type owmCurrentResponse struct {
	Cod     owmCode `json:"cod"`
	Message string  `json:"message"`
	Name    string  `json:"name"`
	Dt      int64   `json:"dt"`
	Coord   struct {
		Lat float64 `json:"lat"`
		Lon float64 `json:"lon"`
	} `json:"coord"`
	Weather []owmCondition `json:"weather"`
	Main    struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Pressure  int     `json:"pressure"`
		Humidity  int     `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Visibility int `json:"visibility"`
	Sys        struct {
		Country string `json:"country"`
	} `json:"sys"`
}

type owmGeoEntry struct {
	Name    string  `json:"name"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	Country string  `json:"country"`
}

type owmForecastResponse struct {
	List []struct {
		Dt   int64 `json:"dt"`
		Main struct {
			Temp float64 `json:"temp"`
		} `json:"main"`
		Weather []owmCondition `json:"weather"`
	} `json:"list"`
}

type owmAirPollutionResponse struct {
	List []struct {
		Main struct {
			AQI int `json:"aqi"`
		} `json:"main"`
	} `json:"list"`
}

type owmOneCallResponse struct {
	Alerts []struct {
		SenderName  string   `json:"sender_name"`
		Event       string   `json:"event"`
		Start       int64    `json:"start"`
		End         int64    `json:"end"`
		Description string   `json:"description"`
		Severity    string   `json:"severity"`
		Tags        []string `json:"tags"`
	} `json:"alerts"`
}

// NewOpenWeatherMapClientAdapter creates a new OpenWeatherMap client adapter
func NewOpenWeatherMapClientAdapter(params OpenWeatherMapClientParams) *OpenWeatherMapClientAdapter {
	timeout := params.Timeout
	if timeout <= 0 {
		timeout = defaultOWMTimeout
	}

	client := params.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: timeout}
	}

	return &OpenWeatherMapClientAdapter{
		apiKey:     params.APIKey,
		baseURL:    strings.TrimRight(withDefault(params.BaseURL, defaultOWMBaseURL), "/"),
		geoURL:     strings.TrimRight(withDefault(params.GeoURL, defaultOWMGeoURL), "/"),
		oneCallURL: withDefault(params.OneCallURL, defaultOWMOneCallURL),
		client:     client,
		logger:     params.Logger,
	}
}

func withDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}

// ResolveByName retrieves current conditions for a city name
func (c *OpenWeatherMapClientAdapter) ResolveByName(ctx context.Context, city string) (*ports.CurrentWeatherData, error) {
	if strings.TrimSpace(city) == "" {
		return nil, errors.NewValidationError("city cannot be empty")
	}

	var resp owmCurrentResponse
	status, err := c.getJSON(ctx, c.baseURL+"/weather", url.Values{"q": {city}}, &resp)
	if status == http.StatusNotFound || resp.Cod == "404" {
		return nil, errors.NewNotFoundError("City not found")
	}
	if err != nil {
		return nil, err
	}

	condition := firstCondition(resp.Weather)
	return &ports.CurrentWeatherData{
		Location: ports.LocationData{
			Name:        resp.Name,
			Latitude:    resp.Coord.Lat,
			Longitude:   resp.Coord.Lon,
			CountryCode: resp.Sys.Country,
		},
		Timestamp:     unixUTC(resp.Dt),
		TemperatureC:  resp.Main.Temp,
		FeelsLikeC:    resp.Main.FeelsLike,
		ConditionCode: condition.ID,
		Description:   condition.Description,
		WindSpeedMs:   resp.Wind.Speed,
		HumidityPct:   resp.Main.Humidity,
		PressureHpa:   resp.Main.Pressure,
		VisibilityM:   resp.Visibility,
	}, nil
}

// ResolveByCoordinates reverse geocodes a position to its nearest named place
func (c *OpenWeatherMapClientAdapter) ResolveByCoordinates(ctx context.Context, lat, lon float64) (*ports.LocationData, error) {
	var entries []owmGeoEntry
	query := coordinates(lat, lon)
	query.Set("limit", "1")
	if _, err := c.getJSON(ctx, c.geoURL+"/reverse", query, &entries); err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, errors.NewNotFoundError("Location not found")
	}

	return &ports.LocationData{
		Name:        entries[0].Name,
		Latitude:    entries[0].Lat,
		Longitude:   entries[0].Lon,
		CountryCode: entries[0].Country,
	}, nil
}

// FetchForecast retrieves the 5 day / 3 hour forecast
func (c *OpenWeatherMapClientAdapter) FetchForecast(ctx context.Context, lat, lon float64) ([]ports.ForecastSampleData, error) {
	var resp owmForecastResponse
	if _, err := c.getJSON(ctx, c.baseURL+"/forecast", coordinates(lat, lon), &resp); err != nil {
		return nil, err
	}

	samples := make([]ports.ForecastSampleData, 0, len(resp.List))
	for _, item := range resp.List {
		condition := firstCondition(item.Weather)
		samples = append(samples, ports.ForecastSampleData{
			Timestamp:     unixUTC(item.Dt),
			ConditionCode: condition.ID,
			TemperatureC:  item.Main.Temp,
			Description:   condition.Description,
		})
	}
	return samples, nil
}

// FetchAirQuality retrieves the current air quality index
func (c *OpenWeatherMapClientAdapter) FetchAirQuality(ctx context.Context, lat, lon float64) (*ports.AirQualityData, error) {
	var resp owmAirPollutionResponse
	if _, err := c.getJSON(ctx, c.baseURL+"/air_pollution", coordinates(lat, lon), &resp); err != nil {
		return nil, err
	}
	if len(resp.List) == 0 {
		return nil, errors.NewUpstreamError("air quality response contained no samples", nil)
	}
	return &ports.AirQualityData{AQI: resp.List[0].Main.AQI}, nil
}

// FetchAlerts retrieves active weather alerts from the One Call API
func (c *OpenWeatherMapClientAdapter) FetchAlerts(ctx context.Context, lat, lon float64) ([]ports.AlertData, error) {
	var resp owmOneCallResponse
	query := coordinates(lat, lon)
	query.Set("exclude", "current,minutely,hourly,daily")
	if _, err := c.getJSON(ctx, c.oneCallURL, query, &resp); err != nil {
		return nil, err
	}

	alerts := make([]ports.AlertData, 0, len(resp.Alerts))
	for _, a := range resp.Alerts {
		alerts = append(alerts, ports.AlertData{
			Event:       a.Event,
			Description: a.Description,
			Severity:    alertSeverity(a.Severity, a.Tags),
			Start:       unixUTC(a.Start),
			End:         unixUTC(a.End),
			Sender:      a.SenderName,
		})
	}
	return alerts, nil
}

// GetClientName returns the name of this weather client
func (c *OpenWeatherMapClientAdapter) GetClientName() string {
	return "openweathermap"
}

// getJSON performs a GET request and decodes a 2xx body into out. It returns
// the HTTP status, or 0 when no response was received.
func (c *OpenWeatherMapClientAdapter) getJSON(ctx context.Context, endpoint string, query url.Values, out interface{}) (int, error) {
	query.Set("appid", c.apiKey)
	query.Set("units", "metric")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+query.Encode(), nil)
	if err != nil {
		return 0, errors.NewUpstreamError("failed to build OpenWeatherMap request", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return 0, errors.NewNetworkError("failed to call OpenWeatherMap", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			c.logger.Warn("Failed to close OpenWeatherMap response body", ports.F("error", closeErr))
		}
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, errors.NewNetworkError("failed to read OpenWeatherMap response", err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return resp.StatusCode, errors.NewUnauthorizedError(fmt.Sprintf("OpenWeatherMap rejected the request with status %d", resp.StatusCode))
	case resp.StatusCode == http.StatusNotFound:
		return resp.StatusCode, errors.NewNotFoundError("OpenWeatherMap resource not found")
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return resp.StatusCode, errors.NewUpstreamError(fmt.Sprintf("OpenWeatherMap returned status %d", resp.StatusCode), nil)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return resp.StatusCode, errors.NewUpstreamError("failed to decode OpenWeatherMap response", err)
	}
	return resp.StatusCode, nil
}

func coordinates(lat, lon float64) url.Values {
	return url.Values{
		"lat": {strconv.FormatFloat(lat, 'f', -1, 64)},
		"lon": {strconv.FormatFloat(lon, 'f', -1, 64)},
	}
}

func firstCondition(conditions []owmCondition) owmCondition {
	if len(conditions) == 0 {
		return owmCondition{}
	}
	return conditions[0]
}

func unixUTC(seconds int64) time.Time {
	if seconds == 0 {
		return time.Time{}
	}
	return time.Unix(seconds, 0).UTC()
}

var severityNames = []string{"extreme", "severe", "moderate", "minor"}

// alertSeverity prefers an explicit severity and otherwise looks for a
// severity word among the alert tags
func alertSeverity(explicit string, tags []string) string {
	if s := strings.TrimSpace(explicit); s != "" {
		return s
	}
	for _, name := range severityNames {
		for _, tag := range tags {
			if strings.Contains(strings.ToLower(tag), name) {
				return name
			}
		}
	}
	return ""
}

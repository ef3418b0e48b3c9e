package api

import (
	"fmt"
	"strconv"
	"time"

	"weatherdash.app/internal/core/dashboard"
	"weatherdash.app/internal/core/weather"
)

// DashboardResponse is the rendered dashboard for one profile
type DashboardResponse struct {
	ProfileID          string              `json:"profile_id"`
	Status             string              `json:"status"`
	Error              string              `json:"error,omitempty"`
	Superseded         bool                `json:"superseded,omitempty"`
	History            []string            `json:"history"`
	Preferences        PreferencesResponse `json:"preferences"`
	NotificationPrompt bool                `json:"notification_prompt"`
	Weather            *WeatherResponse    `json:"weather,omitempty"`
}

// PreferencesResponse carries the persisted toggles
type PreferencesResponse struct {
	DarkMode             bool `json:"dark_mode"`
	NotificationsEnabled bool `json:"notifications_enabled"`
}

// WeatherResponse is the rendered result of a successful refresh
type WeatherResponse struct {
	Location    string          `json:"location"`
	Date        string          `json:"date"`
	Temperature int             `json:"temperature"`
	FeelsLike   int             `json:"feels_like"`
	Description string          `json:"description"`
	Icon        string          `json:"icon"`
	ThemeClass  string          `json:"theme_class"`
	Wind        string          `json:"wind"`
	Humidity    string          `json:"humidity"`
	Pressure    string          `json:"pressure"`
	Visibility  string          `json:"visibility"`
	Forecast    []ForecastCard  `json:"forecast"`
	AirQuality  weather.AQIInfo `json:"air_quality"`
	Alerts      AlertsResponse  `json:"alerts"`
}

// ForecastCard is one future day
type ForecastCard struct {
	Weekday     string `json:"weekday"`
	Date        string `json:"date"`
	Icon        string `json:"icon"`
	Temperature int    `json:"temperature"`
	Description string `json:"description"`
}

// AlertsResponse renders the alert set. Reason is set only when alerts could
// not be obtained.
type AlertsResponse struct {
	Available bool            `json:"available"`
	Reason    string          `json:"reason,omitempty"`
	Items     []AlertResponse `json:"items"`
}

type AlertResponse struct {
	Event       string `json:"event"`
	Description string `json:"description"`
	Severity    string `json:"severity"`
	Class       string `json:"class"`
}

// presentView renders a dashboard view; loc is the zone for dates
func presentView(view *dashboard.View, prompt bool, loc *time.Location) DashboardResponse {
	history := []string(view.History)
	if history == nil {
		history = []string{}
	}

	resp := DashboardResponse{
		ProfileID:  view.ProfileID,
		Status:     string(view.Status),
		Error:      view.Error,
		Superseded: view.Superseded,
		History:    history,
		Preferences: PreferencesResponse{
			DarkMode:             view.Preferences.DarkMode,
			NotificationsEnabled: view.Preferences.NotificationsEnabled,
		},
		NotificationPrompt: prompt,
	}

	if view.Status == dashboard.StatusSuccess && view.Result != nil {
		resp.Weather = presentResult(view.Result, loc)
	}
	return resp
}

func presentResult(result *dashboard.Result, loc *time.Location) *WeatherResponse {
	current := result.Current

	forecast := make([]ForecastCard, 0, len(result.Forecast))
	for _, entry := range result.Forecast {
		weekday, date := weather.FormatDay(entry.Timestamp, loc)
		forecast = append(forecast, ForecastCard{
			Weekday:     weekday,
			Date:        date,
			Icon:        string(weather.IconFor(entry.ConditionCode)),
			Temperature: entry.RoundedTemperature(),
			Description: entry.Description,
		})
	}

	return &WeatherResponse{
		Location:    current.Location.DisplayName(),
		Date:        weather.FormatDate(result.FetchedAt, loc),
		Temperature: current.RoundedTemperature(),
		FeelsLike:   current.RoundedFeelsLike(),
		Description: current.Description,
		Icon:        string(weather.IconFor(current.ConditionCode)),
		ThemeClass:  weather.ThemeFor(current.ConditionCode).Class(),
		Wind:        strconv.FormatFloat(current.WindSpeedMs, 'f', -1, 64) + " m/s",
		Humidity:    fmt.Sprintf("%d%%", current.HumidityPct),
		Pressure:    fmt.Sprintf("%d hPa", current.PressureHpa),
		Visibility:  fmt.Sprintf("%.1f km", current.VisibilityKm()),
		Forecast:    forecast,
		AirQuality:  weather.AQILabelFor(result.AirQuality),
		Alerts:      presentAlerts(result.Alerts),
	}
}

func presentAlerts(set weather.AlertSet) AlertsResponse {
	resp := AlertsResponse{
		Available: set.Available,
		Items:     make([]AlertResponse, 0, len(set.Alerts)),
	}
	if !set.Available {
		resp.Reason = string(set.Reason)
	}
	for _, alert := range set.Alerts {
		resp.Items = append(resp.Items, AlertResponse{
			Event:       alert.Event,
			Description: alert.Description,
			Severity:    string(alert.Severity),
			Class:       weather.AlertClass(alert.Severity),
		})
	}
	return resp
}

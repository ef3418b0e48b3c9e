package notification

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"weatherdash.app/internal/core/weather"
	"weatherdash.app/internal/ports"
)

// PoorAirQualityThreshold is the lowest AQI that raises a notification
const PoorAirQualityThreshold = 4

const (
	TitlePoorAirQuality = "Poor Air Quality"
	TitleSevereWeather  = "Severe Weather Alert"
)

// Kinds reported to metrics
const (
	KindAirQuality = "air_quality"
	KindAlert      = "alert"
)

// Notification is a message the notifier decided to raise
type Notification struct {
	ID        string
	Kind      string
	Title     string
	Body      string
	CreatedAt time.Time
}

// ToMessage converts the notification into its port representation
func (n Notification) ToMessage() ports.NotificationMessage {
	return ports.NotificationMessage{
		ID:        n.ID,
		Title:     n.Title,
		Body:      n.Body,
		CreatedAt: n.CreatedAt,
	}
}

// NewAirQualityNotification builds the poor air quality message for an index
func NewAirQualityNotification(aqi int, now time.Time) Notification {
	label := strings.ToLower(weather.AQILabel(aqi).Text)
	return Notification{
		ID:        uuid.New().String(),
		Kind:      KindAirQuality,
		Title:     TitlePoorAirQuality,
		Body:      fmt.Sprintf("Air quality is %s (AQI %d). Consider limiting time outdoors.", label, aqi),
		CreatedAt: now,
	}
}

// NewAlertNotification builds the severe weather message for one alert
func NewAlertNotification(alert weather.AlertEntry, now time.Time) Notification {
	body := alert.Event
	if desc := strings.TrimSpace(alert.Description); desc != "" {
		body = fmt.Sprintf("%s: %s", alert.Event, desc)
	}
	return Notification{
		ID:        uuid.New().String(),
		Kind:      KindAlert,
		Title:     TitleSevereWeather,
		Body:      body,
		CreatedAt: now,
	}
}

// Plan lists the notifications warranted by the given data, ignoring opt-in and permission
func Plan(aqi *weather.AirQualitySample, alerts weather.AlertSet, now time.Time) []Notification {
	var out []Notification
	if aqi != nil && aqi.AQI >= PoorAirQualityThreshold {
		out = append(out, NewAirQualityNotification(aqi.AQI, now))
	}
	for _, alert := range alerts.Extreme() {
		out = append(out, NewAlertNotification(alert, now))
	}
	return out
}

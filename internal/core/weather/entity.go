package weather

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// Location represents a resolved place
type Location struct {
	Name        string
	Latitude    float64
	Longitude   float64
	CountryCode string
}

// DisplayName returns the "City, CC" header label
func (l Location) DisplayName() string {
	if l.CountryCode == "" {
		return l.Name
	}
	return fmt.Sprintf("%s, %s", l.Name, l.CountryCode)
}

// CurrentConditions represents weather information for a resolved location
type CurrentConditions struct {
	Location      Location
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

// IsValid validates weather data
func (c *CurrentConditions) IsValid() error {
	if strings.TrimSpace(c.Location.Name) == "" {
		return fmt.Errorf("city cannot be empty")
	}
	if c.TemperatureC < -273.15 {
		return fmt.Errorf("temperature cannot be below absolute zero")
	}
	if c.HumidityPct < 0 || c.HumidityPct > 100 {
		return fmt.Errorf("humidity must be between 0 and 100")
	}
	return nil
}

// RoundedTemperature returns the temperature rounded to the nearest degree
func (c *CurrentConditions) RoundedTemperature() int {
	return int(math.Round(c.TemperatureC))
}

// RoundedFeelsLike returns the feels-like temperature rounded to the nearest degree
func (c *CurrentConditions) RoundedFeelsLike() int {
	return int(math.Round(c.FeelsLikeC))
}

// VisibilityKm returns visibility in kilometres
func (c *CurrentConditions) VisibilityKm() float64 {
	return float64(c.VisibilityM) / 1000
}

// ForecastEntry is one representative sample for a future calendar day
type ForecastEntry struct {
	Timestamp     time.Time
	ConditionCode int
	TemperatureC  float64
	Description   string
}

// RoundedTemperature returns the temperature rounded to the nearest degree
func (f ForecastEntry) RoundedTemperature() int {
	return int(math.Round(f.TemperatureC))
}

// ForecastSet holds at most one entry per future calendar day
type ForecastSet []ForecastEntry

// AirQualitySample carries the 1..5 air quality index
type AirQualitySample struct {
	AQI int
}

// Severity is the alert severity scale
type Severity string

const (
	SeverityMinor    Severity = "Minor"
	SeverityModerate Severity = "Moderate"
	SeveritySevere   Severity = "Severe"
	SeverityExtreme  Severity = "Extreme"
	SeverityUnknown  Severity = "Unknown"
)

// SeverityFromString parses a provider severity, case-insensitively
func SeverityFromString(s string) Severity {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "minor":
		return SeverityMinor
	case "moderate":
		return SeverityModerate
	case "severe":
		return SeveritySevere
	case "extreme":
		return SeverityExtreme
	default:
		return SeverityUnknown
	}
}

// AlertEntry represents one active weather alert
type AlertEntry struct {
	Event       string
	Description string
	Severity    Severity
	Start       time.Time
}

// AlertsAbsence explains why an AlertSet carries no data
type AlertsAbsence string

const (
	AlertsUnavailable AlertsAbsence = "unavailable"
	AlertsRestricted  AlertsAbsence = "restricted"
)

// AlertSet is the possibly-empty, possibly-absent list of alerts
type AlertSet struct {
	Alerts    []AlertEntry
	Available bool
	Reason    AlertsAbsence
}

// AbsentAlerts returns an AlertSet with no data for the given reason
func AbsentAlerts(reason AlertsAbsence) AlertSet {
	return AlertSet{Available: false, Reason: reason}
}

// Extreme returns the alerts whose severity is Extreme
func (s AlertSet) Extreme() []AlertEntry {
	var out []AlertEntry
	for _, a := range s.Alerts {
		if a.Severity == SeverityExtreme {
			out = append(out, a)
		}
	}
	return out
}

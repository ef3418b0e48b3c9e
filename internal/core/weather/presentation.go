package weather

import (
	"fmt"
	"time"
)

// Icon is the token used by the client to pick a condition glyph
type Icon string

const (
	IconStorm       Icon = "storm"
	IconDrizzle     Icon = "drizzle"
	IconRain        Icon = "rain"
	IconSnow        Icon = "snow"
	IconHaze        Icon = "haze"
	IconClear       Icon = "clear"
	IconPartlyClear Icon = "partly-clear"
	IconCloudy      Icon = "cloudy"
	IconCloud       Icon = "cloud"
)

// Theme is the page-level class applied for the current condition; empty means none
type Theme string

const (
	ThemeNone         Theme = ""
	ThemeThunderstorm Theme = "thunderstorm"
	ThemeRain         Theme = "rain"
	ThemeSnow         Theme = "snow"
	ThemeClear        Theme = "clear"
	ThemeClouds       Theme = "clouds"
)

// Class returns the CSS class for the theme, empty when there is none
func (t Theme) Class() string {
	if t == ThemeNone {
		return ""
	}
	return "weather-theme-" + string(t)
}

// AQIInfo is the rendered form of an air quality index
type AQIInfo struct {
	Text          string `json:"text"`
	SeverityClass string `json:"severity_class"`
}

// NotAvailable is rendered in place of missing air quality data
const NotAvailable = "N/A"

// IconFor maps a condition code to an icon token
func IconFor(code int) Icon {
	switch {
	case code >= 200 && code < 300:
		return IconStorm
	case code >= 300 && code < 400:
		return IconDrizzle
	case code >= 500 && code < 600:
		return IconRain
	case code >= 600 && code < 700:
		return IconSnow
	case code >= 700 && code < 800:
		return IconHaze
	case code == 800:
		return IconClear
	case code == 801:
		return IconPartlyClear
	case code >= 802 && code <= 804:
		return IconCloudy
	default:
		return IconCloud
	}
}

// ThemeFor maps a condition code to a theme class
func ThemeFor(code int) Theme {
	switch {
	case code >= 200 && code < 300:
		return ThemeThunderstorm
	case code >= 500 && code < 600:
		return ThemeRain
	case code >= 600 && code < 700:
		return ThemeSnow
	case code == 800 || code == 801:
		return ThemeClear
	case code >= 802 && code <= 804:
		return ThemeClouds
	default:
		return ThemeNone
	}
}

var aqiLabels = map[int]AQIInfo{
	1: {Text: "Good", SeverityClass: "good"},
	2: {Text: "Fair", SeverityClass: "moderate"},
	3: {Text: "Moderate", SeverityClass: "unhealthy-sensitive"},
	4: {Text: "Poor", SeverityClass: "unhealthy"},
	5: {Text: "Very Poor", SeverityClass: "very-unhealthy"},
}

// AQILabel maps an air quality index to its label and severity class
func AQILabel(index int) AQIInfo {
	if info, ok := aqiLabels[index]; ok {
		return info
	}
	return AQIInfo{Text: "Unknown"}
}

// AQILabelFor renders an optional sample, N/A when absent
func AQILabelFor(sample *AirQualitySample) AQIInfo {
	if sample == nil {
		return AQIInfo{Text: NotAvailable}
	}
	return AQILabel(sample.AQI)
}

// AlertClass maps an alert severity to its display class
func AlertClass(severity Severity) string {
	switch severity {
	case SeverityExtreme, SeveritySevere:
		return "severe"
	case SeverityModerate:
		return "moderate"
	default:
		return "info"
	}
}

// FormatDate renders the long header date, e.g. "Monday, January 2, 2006"
func FormatDate(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	return t.In(loc).Format("Monday, January 2, 2006")
}

// FormatDay renders a forecast card's weekday and day/month labels
func FormatDay(t time.Time, loc *time.Location) (weekday, dayMonth string) {
	if loc == nil {
		loc = time.Local
	}
	local := t.In(loc)
	return local.Format("Mon"), fmt.Sprintf("%d/%d", local.Day(), int(local.Month()))
}

package dashboard

import (
	"sync"
	"time"

	"weatherdash.app/internal/core/weather"
)

// Status is the pipeline state of a profile's dashboard
type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// Pipeline outcomes reported to metrics
const (
	OutcomeSuccess    = "success"
	OutcomeError      = "error"
	OutcomeSuperseded = "superseded"
)

// GeoFailure describes why the browser could not supply a position
type GeoFailure string

const (
	GeoFailureNone             GeoFailure = ""
	GeoFailurePermissionDenied GeoFailure = "permission_denied"
	GeoFailureUnsupported      GeoFailure = "unsupported"
)

// GeoPosition is the browser's geolocation answer
type GeoPosition struct {
	Latitude  float64
	Longitude float64
	Failure   GeoFailure
}

// Result is the aggregated data of a successful search
type Result struct {
	Current    weather.CurrentConditions
	Forecast   weather.ForecastSet
	AirQuality *weather.AirQualitySample
	Alerts     weather.AlertSet
	FetchedAt  time.Time
}

// View is a snapshot of a profile's dashboard
type View struct {
	ProfileID   string
	Status      Status
	Error       string
	Result      *Result
	History     SearchHistory
	Preferences Preferences
	// Superseded is set when the request that produced this view was overtaken
	// by a newer one and its outcome was discarded
	Superseded bool
}

// profileState is owned by the use case; mu serializes its mutation
type profileState struct {
	mu          sync.Mutex
	loaded      bool
	seq         uint64
	status      Status
	err         string
	result      *Result
	history     SearchHistory
	preferences Preferences
}

func (s *profileState) view(profileID string) View {
	return View{
		ProfileID:   profileID,
		Status:      s.status,
		Error:       s.err,
		Result:      s.result,
		History:     s.history.clone(),
		Preferences: s.preferences,
	}
}

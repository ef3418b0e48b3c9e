package dashboard

import (
	"context"
	stderrors "errors"
	"strings"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/errgroup"
	"weatherdash.app/internal/core/notification"
	"weatherdash.app/internal/core/weather"
	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
)

// User-facing pipeline failure messages
const (
	MsgFetchFailed       = "Failed to fetch weather data"
	MsgLocationNotFound  = "Location not found"
	MsgLocationFailed    = "Failed to get location"
	MsgGeoPermission     = "Geolocation permission denied. Please search manually."
	MsgGeoNotSupported   = "Geolocation not supported by this browser"
	MsgHistoryOutOfRange = "history entry does not exist"
)

// DefaultEnrichmentTimeout applies when the dashboard config sets none
const DefaultEnrichmentTimeout = 3 * time.Second

// MaxTrackedProfiles bounds the in-memory profile states. The least recently
// used profile is evicted first; its persisted preferences reload on next use.
const MaxTrackedProfiles = 10000

type UseCase struct {
	weather  *weather.UseCase
	notifier *notification.UseCase
	prefs    *preferenceRepository
	config   ports.ConfigProvider
	logger   ports.Logger
	metrics  ports.MetricsCollector
	now      func() time.Time

	mu       sync.Mutex
	profiles *lru.Cache[string, *profileState]
}

type UseCaseDependencies struct {
	WeatherUseCase      *weather.UseCase
	NotificationUseCase *notification.UseCase
	PreferenceStore     ports.PreferenceStore
	Config              ports.ConfigProvider
	Logger              ports.Logger
	Metrics             ports.MetricsCollector
}

func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	if deps.WeatherUseCase == nil {
		return nil, errors.NewValidationError("weather use case is required")
	}
	if deps.NotificationUseCase == nil {
		return nil, errors.NewValidationError("notification use case is required")
	}
	if deps.PreferenceStore == nil {
		return nil, errors.NewValidationError("preference store is required")
	}
	if deps.Config == nil {
		return nil, errors.NewValidationError("config is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}
	if deps.Metrics == nil {
		return nil, errors.NewValidationError("metrics is required")
	}

	profiles, err := lru.New[string, *profileState](MaxTrackedProfiles)
	if err != nil {
		return nil, errors.NewConfigurationError("failed to create profile cache", err)
	}

	return &UseCase{
		weather:  deps.WeatherUseCase,
		notifier: deps.NotificationUseCase,
		prefs:    &preferenceRepository{store: deps.PreferenceStore, logger: deps.Logger},
		config:   deps.Config,
		logger:   deps.Logger,
		metrics:  deps.Metrics,
		now:      time.Now,
		profiles: profiles,
	}, nil
}

// State returns the current dashboard of a profile
func (uc *UseCase) State(ctx context.Context, profileID string) (*View, error) {
	st, err := uc.lookup(ctx, profileID, false)
	if err != nil {
		return nil, err
	}

	st.mu.Lock()
	defer st.mu.Unlock()
	view := st.view(profileID)
	return &view, nil
}

// Search runs the pipeline for a city name
func (uc *UseCase) Search(ctx context.Context, profileID, city string) (*View, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return nil, errors.NewValidationError("city is required")
	}

	st, err := uc.profile(ctx, profileID)
	if err != nil {
		return nil, err
	}

	token := uc.begin(st)
	uc.logger.Info("Dashboard search started",
		ports.F("profile_id", profileID),
		ports.F("city", city),
		ports.F("token", token))

	result, err := uc.fetch(ctx, city)
	return uc.complete(ctx, profileID, st, token, result, err)
}

// Locate runs the pipeline for the browser's geolocation answer
func (uc *UseCase) Locate(ctx context.Context, profileID string, pos GeoPosition) (*View, error) {
	st, err := uc.profile(ctx, profileID)
	if err != nil {
		return nil, err
	}

	token := uc.begin(st)

	switch pos.Failure {
	case GeoFailureNone:
	case GeoFailurePermissionDenied:
		return uc.complete(ctx, profileID, st, token, nil, errors.NewPermissionDeniedError(MsgGeoPermission))
	case GeoFailureUnsupported:
		return uc.complete(ctx, profileID, st, token, nil, errors.NewUnsupportedError(MsgGeoNotSupported))
	default:
		return uc.complete(ctx, profileID, st, token, nil, errors.NewUnsupportedError(MsgLocationFailed))
	}

	loc, err := uc.weather.ResolveByCoordinates(ctx, pos.Latitude, pos.Longitude)
	if err != nil {
		message := MsgLocationFailed
		if errors.IsNotFoundError(err) {
			message = MsgLocationNotFound
		}
		return uc.complete(ctx, profileID, st, token, nil, &displayError{message: message, cause: err})
	}
	if strings.TrimSpace(loc.Name) == "" {
		return uc.complete(ctx, profileID, st, token, nil, errors.NewNotFoundError(MsgLocationNotFound))
	}

	uc.logger.Info("Location resolved",
		ports.F("profile_id", profileID),
		ports.F("city", loc.Name),
		ports.F("token", token))

	result, err := uc.fetch(ctx, loc.Name)
	return uc.complete(ctx, profileID, st, token, result, err)
}

// ReplayHistory searches the history entry at index
func (uc *UseCase) ReplayHistory(ctx context.Context, profileID string, index int) (*View, error) {
	st, err := uc.profile(ctx, profileID)
	if err != nil {
		return nil, err
	}

	st.mu.Lock()
	city, ok := st.history.At(index)
	st.mu.Unlock()
	if !ok {
		return nil, errors.NewNotFoundError(MsgHistoryOutOfRange)
	}

	return uc.Search(ctx, profileID, city)
}

// ToggleTheme flips and persists the dark mode preference
func (uc *UseCase) ToggleTheme(ctx context.Context, profileID string) (*View, error) {
	return uc.toggle(ctx, profileID, KeyDarkMode, func(p *Preferences) *bool { return &p.DarkMode })
}

// ToggleNotifications flips and persists the notification opt-in
func (uc *UseCase) ToggleNotifications(ctx context.Context, profileID string) (*View, error) {
	return uc.toggle(ctx, profileID, KeyNotifications, func(p *Preferences) *bool { return &p.NotificationsEnabled })
}

func (uc *UseCase) toggle(ctx context.Context, profileID, key string, field func(*Preferences) *bool) (*View, error) {
	st, err := uc.profile(ctx, profileID)
	if err != nil {
		return nil, err
	}

	st.mu.Lock()
	defer st.mu.Unlock()

	flag := field(&st.preferences)
	next := !*flag
	if err := uc.prefs.saveFlag(ctx, profileID, key, next); err != nil {
		uc.logger.Error("Failed to persist preference",
			ports.F("profile_id", profileID),
			ports.F("key", key),
			ports.F("error", err))
		return nil, err
	}
	*flag = next

	uc.logger.Debug("Preference toggled",
		ports.F("profile_id", profileID),
		ports.F("key", key),
		ports.F("value", next))

	view := st.view(profileID)
	return &view, nil
}

// profile returns the tracked state of a profile, loading persisted preferences on first use
func (uc *UseCase) profile(ctx context.Context, profileID string) (*profileState, error) {
	return uc.lookup(ctx, profileID, true)
}

// lookup returns the state of a profile. An untracked profile is only added
// to the cache when track is set, so read-only requests from unseen profiles
// do not grow it.
func (uc *UseCase) lookup(ctx context.Context, profileID string, track bool) (*profileState, error) {
	if strings.TrimSpace(profileID) == "" {
		return nil, errors.NewValidationError("profile id is required")
	}

	uc.mu.Lock()
	st, ok := uc.profiles.Get(profileID)
	if !ok {
		st = &profileState{status: StatusIdle}
		if track {
			uc.profiles.Add(profileID, st)
		}
	}
	uc.mu.Unlock()

	st.mu.Lock()
	defer st.mu.Unlock()
	if st.loaded {
		return st, nil
	}

	history, err := uc.prefs.loadHistory(ctx, profileID)
	if err != nil {
		return nil, err
	}
	preferences, err := uc.prefs.loadPreferences(ctx, profileID)
	if err != nil {
		return nil, err
	}

	st.history = history
	st.preferences = preferences
	st.loaded = true
	return st, nil
}

// begin enters Loading and issues the request's sequence token
func (uc *UseCase) begin(st *profileState) uint64 {
	st.mu.Lock()
	defer st.mu.Unlock()

	st.seq++
	st.status = StatusLoading
	st.err = ""
	st.result = nil
	return st.seq
}

// fetch resolves the city then loads the forecast, air quality and alerts
// concurrently. Air quality and alerts are bounded by the enrichment timeout
// and degrade to absent when it expires.
func (uc *UseCase) fetch(ctx context.Context, city string) (*Result, error) {
	current, err := uc.weather.ResolveByName(ctx, city)
	if err != nil {
		return nil, err
	}

	lat, lon := current.Location.Latitude, current.Location.Longitude
	cfg := uc.config.GetDashboardConfig()
	var (
		samples    []weather.ForecastEntry
		airQuality *weather.AirQualitySample
		alerts     weather.AlertSet
	)

	g, gctx := errgroup.WithContext(ctx)
	enrichCtx, cancel := context.WithTimeout(gctx, enrichmentTimeout(cfg))
	defer cancel()

	g.Go(func() error {
		var err error
		samples, err = uc.weather.FetchForecast(gctx, lat, lon)
		return err
	})
	g.Go(func() error {
		airQuality = awaitEnrichment(enrichCtx, uc.logger, "air_quality", nil,
			func(ctx context.Context) *weather.AirQualitySample {
				return uc.weather.FetchAirQuality(ctx, lat, lon)
			})
		return nil
	})
	g.Go(func() error {
		alerts = awaitEnrichment(enrichCtx, uc.logger, "alerts", weather.AbsentAlerts(weather.AlertsUnavailable),
			func(ctx context.Context) weather.AlertSet {
				return uc.weather.FetchAlerts(ctx, lat, lon)
			})
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	now := uc.now()
	return &Result{
		Current:    *current,
		Forecast:   weather.ReduceForecast(samples, now, cfg.Location),
		AirQuality: airQuality,
		Alerts:     alerts,
		FetchedAt:  now.UTC(),
	}, nil
}

func enrichmentTimeout(cfg ports.DashboardConfig) time.Duration {
	if cfg.EnrichmentTimeout <= 0 {
		return DefaultEnrichmentTimeout
	}
	return cfg.EnrichmentTimeout
}

// awaitEnrichment runs fetch and returns its value, or fallback once ctx is
// done. A fetch that ignores ctx keeps running in the background and its
// result is dropped.
func awaitEnrichment[T any](ctx context.Context, logger ports.Logger, name string, fallback T, fetch func(context.Context) T) T {
	result := make(chan T, 1)
	go func() {
		result <- fetch(ctx)
	}()

	select {
	case value := <-result:
		return value
	case <-ctx.Done():
		select {
		case value := <-result:
			return value
		default:
		}
		logger.Warn("Enrichment abandoned",
			ports.F("source", name),
			ports.F("error", ctx.Err()))
		return fallback
	}
}

// complete applies a pipeline outcome unless a newer request has started since token was issued
func (uc *UseCase) complete(ctx context.Context, profileID string, st *profileState, token uint64, result *Result, fetchErr error) (*View, error) {
	st.mu.Lock()

	if token != st.seq {
		latest := st.seq
		view := st.view(profileID)
		st.mu.Unlock()
		view.Superseded = true
		uc.metrics.RecordPipelineOutcome(OutcomeSuperseded)
		uc.logger.Debug("Discarding superseded dashboard response",
			ports.F("profile_id", profileID),
			ports.F("token", token),
			ports.F("latest", latest))
		return &view, nil
	}

	if fetchErr != nil {
		st.status = StatusError
		st.err = failureMessage(fetchErr)
		st.result = nil
		view := st.view(profileID)
		st.mu.Unlock()

		uc.metrics.RecordPipelineOutcome(OutcomeError)
		uc.logger.Warn("Dashboard request failed",
			ports.F("profile_id", profileID),
			ports.F("message", view.Error),
			ports.F("error", fetchErr))
		return &view, nil
	}

	st.status = StatusSuccess
	st.err = ""
	st.result = result
	st.history = st.history.Add(result.Current.Location.Name)
	if err := uc.prefs.saveHistory(ctx, profileID, st.history); err != nil {
		uc.logger.Error("Failed to persist search history",
			ports.F("profile_id", profileID),
			ports.F("error", err))
	}
	notificationsEnabled := st.preferences.NotificationsEnabled
	view := st.view(profileID)
	st.mu.Unlock()

	uc.metrics.RecordPipelineOutcome(OutcomeSuccess)

	if _, err := uc.notifier.MaybeNotify(ctx, profileID, result.AirQuality, result.Alerts, notificationsEnabled); err != nil {
		uc.logger.Warn("Notification delivery failed",
			ports.F("profile_id", profileID),
			ports.F("error", err))
	}

	return &view, nil
}

// displayError overrides the message shown for a pipeline failure
type displayError struct {
	message string
	cause   error
}

func (e *displayError) Error() string {
	return e.message + ": " + e.cause.Error()
}

func (e *displayError) Unwrap() error {
	return e.cause
}

// failureMessage is the single human-readable message shown in the Error state
func failureMessage(err error) string {
	var display *displayError
	if stderrors.As(err, &display) {
		return display.message
	}

	switch errors.TypeOf(err) {
	case errors.NotFoundError, errors.PermissionDeniedError, errors.UnsupportedError:
		if msg := errors.MessageOf(err); msg != "" {
			return msg
		}
	}
	return MsgFetchFailed
}

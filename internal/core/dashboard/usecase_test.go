package dashboard

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"weatherdash.app/internal/core/notification"
	"weatherdash.app/internal/core/weather"
	mocks "weatherdash.app/internal/mocks"
	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
)

func allowLogging(l *mocks.Logger) {
	for n := 0; n <= 5; n++ {
		fields := make([]interface{}, n)
		for i := range fields {
			fields[i] = mock.Anything
		}
		l.EXPECT().Debug(mock.Anything, fields...).Maybe()
		l.EXPECT().Info(mock.Anything, fields...).Maybe()
		l.EXPECT().Warn(mock.Anything, fields...).Maybe()
		l.EXPECT().Error(mock.Anything, fields...).Maybe()
	}
}

// mapStore is an in-memory PreferenceStore
type mapStore struct {
	mu     sync.Mutex
	values map[string]string
	setErr error
}

func newMapStore() *mapStore {
	return &mapStore{values: make(map[string]string)}
}

func (s *mapStore) Get(_ context.Context, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[key]
	if !ok {
		return "", errors.NewNotFoundError("preference not found")
	}
	return v, nil
}

func (s *mapStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.setErr != nil {
		return s.setErr
	}
	s.values[key] = value
	return nil
}

func (s *mapStore) history(t *testing.T, profileID string) SearchHistory {
	t.Helper()
	raw, err := s.Get(context.Background(), ports.ProfileKey(profileID, KeyHistory))
	require.NoError(t, err)
	var h SearchHistory
	require.NoError(t, json.Unmarshal([]byte(raw), &h))
	return h
}

type fixture struct {
	uc       *UseCase
	client   *mocks.WeatherClient
	notifier *mocks.NotificationService
	store    *mapStore
}

func newFixture(t *testing.T) *fixture {
	return newFixtureWithConfig(t, ports.DashboardConfig{Location: time.UTC})
}

func newFixtureWithConfig(t *testing.T, dashboardConfig ports.DashboardConfig) *fixture {
	client := mocks.NewWeatherClient(t)
	notifierService := mocks.NewNotificationService(t)
	logger := mocks.NewLogger(t)
	metrics := mocks.NewMetricsCollector(t)
	config := mocks.NewConfigProvider(t)
	store := newMapStore()

	allowLogging(logger)
	metrics.EXPECT().RecordPipelineOutcome(mock.Anything).Maybe()
	metrics.EXPECT().RecordNotification(mock.Anything).Maybe()
	config.EXPECT().GetDashboardConfig().Return(dashboardConfig).Maybe()

	weatherUC, err := weather.NewUseCase(weather.UseCaseDependencies{Client: client, Logger: logger})
	require.NoError(t, err)
	notificationUC, err := notification.NewUseCase(notification.UseCaseDependencies{
		Service: notifierService,
		Logger:  logger,
		Metrics: metrics,
	})
	require.NoError(t, err)

	uc, err := NewUseCase(UseCaseDependencies{
		WeatherUseCase:      weatherUC,
		NotificationUseCase: notificationUC,
		PreferenceStore:     store,
		Config:              config,
		Logger:              logger,
		Metrics:             metrics,
	})
	require.NoError(t, err)
	uc.now = func() time.Time { return time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC) }

	return &fixture{uc: uc, client: client, notifier: notifierService, store: store}
}

func currentFor(city string) *ports.CurrentWeatherData {
	return &ports.CurrentWeatherData{
		Location:      ports.LocationData{Name: city, Latitude: 10, Longitude: 20, CountryCode: "FR"},
		TemperatureC:  18.4,
		ConditionCode: 800,
		Description:   "clear sky",
		HumidityPct:   40,
		VisibilityM:   10000,
	}
}

func forecastSamples() []ports.ForecastSampleData {
	start := time.Date(2024, 3, 10, 15, 0, 0, 0, time.UTC)
	var samples []ports.ForecastSampleData
	for i := 0; i < 40; i++ {
		samples = append(samples, ports.ForecastSampleData{
			Timestamp:     start.Add(time.Duration(i*3) * time.Hour),
			ConditionCode: 500,
			TemperatureC:  10,
		})
	}
	return samples
}

// expectCity makes ResolveByName echo the searched name
func (f *fixture) expectAnyCity() {
	f.client.EXPECT().ResolveByName(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, city string) (*ports.CurrentWeatherData, error) {
			return currentFor(city), nil
		}).Maybe()
}

func (f *fixture) expectEnrichment(aqi int, alerts []ports.AlertData) {
	f.client.EXPECT().FetchForecast(mock.Anything, mock.Anything, mock.Anything).Return(forecastSamples(), nil).Maybe()
	f.client.EXPECT().FetchAirQuality(mock.Anything, mock.Anything, mock.Anything).Return(&ports.AirQualityData{AQI: aqi}, nil).Maybe()
	f.client.EXPECT().FetchAlerts(mock.Anything, mock.Anything, mock.Anything).Return(alerts, nil).Maybe()
}

func TestNewUseCase_Validation(t *testing.T) {
	_, err := NewUseCase(UseCaseDependencies{})
	assert.True(t, errors.IsValidationError(err))
}

func TestSearch_Success(t *testing.T) {
	f := newFixture(t)
	f.expectAnyCity()
	f.expectEnrichment(2, nil)

	view, err := f.uc.Search(context.Background(), "p1", "  Paris ")

	require.NoError(t, err)
	assert.Equal(t, StatusSuccess, view.Status)
	assert.Empty(t, view.Error)
	require.NotNil(t, view.Result)
	assert.Equal(t, "Paris", view.Result.Current.Location.Name)
	assert.Len(t, view.Result.Forecast, weather.MaxForecastDays)
	require.NotNil(t, view.Result.AirQuality)
	assert.Equal(t, 2, view.Result.AirQuality.AQI)
	assert.True(t, view.Result.Alerts.Available)
	assert.Equal(t, SearchHistory{"Paris"}, view.History)
	assert.Equal(t, SearchHistory{"Paris"}, f.store.history(t, "p1"))
}

func TestSearch_EmptyInputLeavesStateUntouched(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Search(context.Background(), "p1", "   ")
	assert.True(t, errors.IsValidationError(err))

	view, err := f.uc.State(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, StatusIdle, view.Status)
}

func TestSearch_CityNotFound(t *testing.T) {
	f := newFixture(t)
	f.client.EXPECT().ResolveByName(mock.Anything, "Atlantis").
		Return((*ports.CurrentWeatherData)(nil), errors.NewNotFoundError("City not found"))

	view, err := f.uc.Search(context.Background(), "p1", "Atlantis")

	require.NoError(t, err)
	assert.Equal(t, StatusError, view.Status)
	assert.Equal(t, "City not found", view.Error)
	assert.Nil(t, view.Result)
	assert.Empty(t, view.History)
}

func TestSearch_NetworkFailureUsesGenericMessage(t *testing.T) {
	f := newFixture(t)
	f.client.EXPECT().ResolveByName(mock.Anything, "Paris").
		Return((*ports.CurrentWeatherData)(nil), stderrors.New("dial tcp: i/o timeout"))

	view, err := f.uc.Search(context.Background(), "p1", "Paris")

	require.NoError(t, err)
	assert.Equal(t, StatusError, view.Status)
	assert.Equal(t, MsgFetchFailed, view.Error)
}

func TestSearch_ForecastFailureIsFatal(t *testing.T) {
	f := newFixture(t)
	f.expectAnyCity()
	f.client.EXPECT().FetchForecast(mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.NewUpstreamError("forecast request failed with status 502", nil))
	f.client.EXPECT().FetchAirQuality(mock.Anything, mock.Anything, mock.Anything).Return(&ports.AirQualityData{AQI: 1}, nil).Maybe()
	f.client.EXPECT().FetchAlerts(mock.Anything, mock.Anything, mock.Anything).Return(nil, nil).Maybe()

	view, err := f.uc.Search(context.Background(), "p1", "Paris")

	require.NoError(t, err)
	assert.Equal(t, StatusError, view.Status)
	assert.Equal(t, MsgFetchFailed, view.Error)
	assert.Empty(t, view.History)
}

func TestSearch_AirQualityFailureDegrades(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.store.Set(context.Background(), ports.ProfileKey("p1", KeyNotifications), "true"))
	f.expectAnyCity()
	f.client.EXPECT().FetchForecast(mock.Anything, mock.Anything, mock.Anything).Return(forecastSamples(), nil)
	f.client.EXPECT().FetchAirQuality(mock.Anything, mock.Anything, mock.Anything).
		Return((*ports.AirQualityData)(nil), errors.NewNetworkError("timeout", nil))
	f.client.EXPECT().FetchAlerts(mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.NewUnauthorizedError("alerts require a One Call subscription"))

	view, err := f.uc.Search(context.Background(), "p1", "Paris")

	require.NoError(t, err)
	assert.Equal(t, StatusSuccess, view.Status)
	require.NotNil(t, view.Result)
	assert.Nil(t, view.Result.AirQuality)
	assert.Equal(t, "N/A", weather.AQILabelFor(view.Result.AirQuality).Text)
	assert.False(t, view.Result.Alerts.Available)
	assert.Equal(t, weather.AlertsRestricted, view.Result.Alerts.Reason)
	// notifier mock has no expectations: nothing may be shown
}

func TestSearch_SlowEnrichmentDoesNotHoldSuccess(t *testing.T) {
	f := newFixtureWithConfig(t, ports.DashboardConfig{Location: time.UTC, EnrichmentTimeout: 50 * time.Millisecond})
	f.expectAnyCity()
	f.client.EXPECT().FetchForecast(mock.Anything, mock.Anything, mock.Anything).Return(forecastSamples(), nil)

	release := make(chan struct{})
	defer close(release)
	f.client.EXPECT().FetchAirQuality(mock.Anything, mock.Anything, mock.Anything).
		Return(&ports.AirQualityData{AQI: 2}, nil)
	f.client.EXPECT().FetchAlerts(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, _, _ float64) ([]ports.AlertData, error) {
			<-release
			return nil, nil
		})

	start := time.Now()
	view, err := f.uc.Search(context.Background(), "p1", "Paris")
	elapsed := time.Since(start)

	require.NoError(t, err)
	assert.Less(t, elapsed, 2*time.Second)
	assert.Equal(t, StatusSuccess, view.Status)
	require.NotNil(t, view.Result)
	assert.Len(t, view.Result.Forecast, weather.MaxForecastDays)
	require.NotNil(t, view.Result.AirQuality)
	assert.False(t, view.Result.Alerts.Available)
	assert.Equal(t, weather.AlertsUnavailable, view.Result.Alerts.Reason)
}

func TestSearch_NotifiesOnVeryPoorAirQuality(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.store.Set(context.Background(), ports.ProfileKey("p1", KeyNotifications), "true"))
	f.expectAnyCity()
	f.expectEnrichment(5, nil)

	f.notifier.EXPECT().Permission(mock.Anything, "p1").Return(ports.PermissionGranted, nil)
	f.notifier.EXPECT().Show(mock.Anything, "p1", mock.MatchedBy(func(msg ports.NotificationMessage) bool {
		return msg.Title == "Poor Air Quality" && strings.Contains(msg.Body, "very poor")
	})).Return(nil).Once()

	view, err := f.uc.Search(context.Background(), "p1", "Delhi")

	require.NoError(t, err)
	assert.Equal(t, StatusSuccess, view.Status)
}

func TestSearch_NotificationsDisabledStaySilent(t *testing.T) {
	f := newFixture(t)
	f.expectAnyCity()
	f.expectEnrichment(5, []ports.AlertData{{Event: "Tornado", Severity: "Extreme"}})

	view, err := f.uc.Search(context.Background(), "p1", "Delhi")

	require.NoError(t, err)
	assert.Equal(t, StatusSuccess, view.Status)
}

func TestSearch_HistoryDedupesCaseInsensitively(t *testing.T) {
	f := newFixture(t)
	f.expectAnyCity()
	f.expectEnrichment(1, nil)

	_, err := f.uc.Search(context.Background(), "p1", "Paris")
	require.NoError(t, err)
	view, err := f.uc.Search(context.Background(), "p1", "paris")
	require.NoError(t, err)

	assert.Equal(t, SearchHistory{"paris"}, view.History)
	assert.Equal(t, SearchHistory{"paris"}, f.store.history(t, "p1"))
}

func TestSearch_HistoryEvictsOldest(t *testing.T) {
	f := newFixture(t)
	f.expectAnyCity()
	f.expectEnrichment(1, nil)

	cities := []string{"A", "B", "C", "D", "E", "F"}
	var view *View
	for _, city := range cities {
		var err error
		view, err = f.uc.Search(context.Background(), "p1", city)
		require.NoError(t, err)
	}

	assert.Equal(t, SearchHistory{"F", "E", "D", "C", "B"}, view.History)
	assert.NotContains(t, f.store.history(t, "p1"), "A")
}

func TestSearch_SupersededResponseIsDiscarded(t *testing.T) {
	f := newFixture(t)
	f.expectEnrichment(1, nil)

	started := make(chan struct{})
	release := make(chan struct{})
	f.client.EXPECT().ResolveByName(mock.Anything, "Slow").
		RunAndReturn(func(_ context.Context, city string) (*ports.CurrentWeatherData, error) {
			close(started)
			<-release
			return currentFor(city), nil
		})
	f.client.EXPECT().ResolveByName(mock.Anything, "Fast").Return(currentFor("Fast"), nil)

	slowDone := make(chan *View)
	go func() {
		view, err := f.uc.Search(context.Background(), "p1", "Slow")
		assert.NoError(t, err)
		slowDone <- view
	}()

	<-started
	fast, err := f.uc.Search(context.Background(), "p1", "Fast")
	require.NoError(t, err)
	assert.False(t, fast.Superseded)
	close(release)

	slow := <-slowDone
	assert.True(t, slow.Superseded)

	state, err := f.uc.State(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, StatusSuccess, state.Status)
	assert.Equal(t, "Fast", state.Result.Current.Location.Name)
	assert.Equal(t, SearchHistory{"Fast"}, state.History)
}

func TestLocate_PermissionDeniedSkipsNetwork(t *testing.T) {
	f := newFixture(t)

	view, err := f.uc.Locate(context.Background(), "p1", GeoPosition{Failure: GeoFailurePermissionDenied})

	require.NoError(t, err)
	assert.Equal(t, StatusError, view.Status)
	assert.Equal(t, "Geolocation permission denied. Please search manually.", view.Error)
}

func TestLocate_Unsupported(t *testing.T) {
	f := newFixture(t)

	view, err := f.uc.Locate(context.Background(), "p1", GeoPosition{Failure: GeoFailureUnsupported})

	require.NoError(t, err)
	assert.Equal(t, "Geolocation not supported by this browser", view.Error)
}

func TestLocate_Success(t *testing.T) {
	f := newFixture(t)
	f.client.EXPECT().ResolveByCoordinates(mock.Anything, 48.85, 2.35).
		Return(&ports.LocationData{Name: "Paris", CountryCode: "FR", Latitude: 48.85, Longitude: 2.35}, nil)
	f.expectAnyCity()
	f.expectEnrichment(1, nil)

	view, err := f.uc.Locate(context.Background(), "p1", GeoPosition{Latitude: 48.85, Longitude: 2.35})

	require.NoError(t, err)
	assert.Equal(t, StatusSuccess, view.Status)
	assert.Equal(t, SearchHistory{"Paris"}, view.History)
}

func TestLocate_ReverseGeocodeFailures(t *testing.T) {
	t.Run("NotFound", func(t *testing.T) {
		f := newFixture(t)
		f.client.EXPECT().ResolveByCoordinates(mock.Anything, 0.0, 0.0).
			Return((*ports.LocationData)(nil), errors.NewNotFoundError("no location for coordinates"))

		view, err := f.uc.Locate(context.Background(), "p1", GeoPosition{})

		require.NoError(t, err)
		assert.Equal(t, "Location not found", view.Error)
	})

	t.Run("Network", func(t *testing.T) {
		f := newFixture(t)
		f.client.EXPECT().ResolveByCoordinates(mock.Anything, 0.0, 0.0).
			Return((*ports.LocationData)(nil), errors.NewNetworkError("reverse geocode request failed", nil))

		view, err := f.uc.Locate(context.Background(), "p1", GeoPosition{})

		require.NoError(t, err)
		assert.Equal(t, "Failed to get location", view.Error)
	})
}

func TestReplayHistory(t *testing.T) {
	f := newFixture(t)
	f.expectAnyCity()
	f.expectEnrichment(1, nil)

	_, err := f.uc.Search(context.Background(), "p1", "Rome")
	require.NoError(t, err)
	_, err = f.uc.Search(context.Background(), "p1", "Oslo")
	require.NoError(t, err)

	view, err := f.uc.ReplayHistory(context.Background(), "p1", 1)
	require.NoError(t, err)
	assert.Equal(t, "Rome", view.Result.Current.Location.Name)
	assert.Equal(t, SearchHistory{"Rome", "Oslo"}, view.History)

	_, err = f.uc.ReplayHistory(context.Background(), "p1", 7)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestToggles(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	view, err := f.uc.ToggleTheme(ctx, "p1")
	require.NoError(t, err)
	assert.True(t, view.Preferences.DarkMode)
	assert.False(t, view.Preferences.NotificationsEnabled)

	raw, err := f.store.Get(ctx, ports.ProfileKey("p1", KeyDarkMode))
	require.NoError(t, err)
	assert.Equal(t, "true", raw)

	view, err = f.uc.ToggleNotifications(ctx, "p1")
	require.NoError(t, err)
	assert.True(t, view.Preferences.NotificationsEnabled)

	view, err = f.uc.ToggleTheme(ctx, "p1")
	require.NoError(t, err)
	assert.False(t, view.Preferences.DarkMode)
}

func TestToggle_PersistFailureKeepsPreference(t *testing.T) {
	f := newFixture(t)
	f.store.setErr = stderrors.New("disk full")

	_, err := f.uc.ToggleTheme(context.Background(), "p1")
	assert.True(t, errors.IsStorageError(err))

	view, err := f.uc.State(context.Background(), "p1")
	require.NoError(t, err)
	assert.False(t, view.Preferences.DarkMode)
}

func TestState_LoadsPersistedPreferences(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	require.NoError(t, f.store.Set(ctx, ports.ProfileKey("p1", KeyHistory), `["Kyiv","kyiv","Lviv"]`))
	require.NoError(t, f.store.Set(ctx, ports.ProfileKey("p1", KeyDarkMode), "true"))

	view, err := f.uc.State(ctx, "p1")

	require.NoError(t, err)
	assert.Equal(t, StatusIdle, view.Status)
	assert.Equal(t, SearchHistory{"Kyiv", "Lviv"}, view.History)
	assert.True(t, view.Preferences.DarkMode)
}

func TestState_CorruptHistoryIsReset(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.store.Set(context.Background(), ports.ProfileKey("p1", KeyHistory), "{not json"))

	view, err := f.uc.State(context.Background(), "p1")

	require.NoError(t, err)
	assert.Empty(t, view.History)
}

func TestState_DoesNotTrackUnseenProfiles(t *testing.T) {
	f := newFixture(t)

	for i := 0; i < 3; i++ {
		_, err := f.uc.State(context.Background(), fmt.Sprintf("anon-%d", i))
		require.NoError(t, err)
	}

	assert.Equal(t, 0, f.uc.profiles.Len())
}

func TestProfiles_LeastRecentlyUsedIsEvicted(t *testing.T) {
	f := newFixture(t)
	profiles, err := lru.New[string, *profileState](2)
	require.NoError(t, err)
	f.uc.profiles = profiles
	ctx := context.Background()

	_, err = f.uc.ToggleTheme(ctx, "p1")
	require.NoError(t, err)
	_, err = f.uc.ToggleTheme(ctx, "p2")
	require.NoError(t, err)
	_, err = f.uc.ToggleTheme(ctx, "p3")
	require.NoError(t, err)

	assert.Equal(t, 2, f.uc.profiles.Len())
	assert.False(t, f.uc.profiles.Contains("p1"))

	view, err := f.uc.State(ctx, "p1")
	require.NoError(t, err)
	assert.True(t, view.Preferences.DarkMode)
}

func TestState_RequiresProfile(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.State(context.Background(), " ")
	assert.True(t, errors.IsValidationError(err))
}

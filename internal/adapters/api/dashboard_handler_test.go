package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"weatherdash.app/internal/core/dashboard"
	"weatherdash.app/internal/mocks"
	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
)

// fakeDashboard records the last call and returns the configured view or error
type fakeDashboard struct {
	view *dashboard.View
	err  error

	lastCall    string
	lastProfile string
	lastCity    string
	lastPos     dashboard.GeoPosition
	lastIndex   int
}

func (f *fakeDashboard) result(call, profileID string) (*dashboard.View, error) {
	f.lastCall = call
	f.lastProfile = profileID
	if f.err != nil {
		return nil, f.err
	}
	view := *f.view
	view.ProfileID = profileID
	return &view, nil
}

func (f *fakeDashboard) State(ctx context.Context, profileID string) (*dashboard.View, error) {
	return f.result("state", profileID)
}

func (f *fakeDashboard) Search(ctx context.Context, profileID, city string) (*dashboard.View, error) {
	f.lastCity = city
	return f.result("search", profileID)
}

func (f *fakeDashboard) Locate(ctx context.Context, profileID string, pos dashboard.GeoPosition) (*dashboard.View, error) {
	f.lastPos = pos
	return f.result("locate", profileID)
}

func (f *fakeDashboard) ReplayHistory(ctx context.Context, profileID string, index int) (*dashboard.View, error) {
	f.lastIndex = index
	return f.result("replay", profileID)
}

func (f *fakeDashboard) ToggleTheme(ctx context.Context, profileID string) (*dashboard.View, error) {
	return f.result("theme", profileID)
}

func (f *fakeDashboard) ToggleNotifications(ctx context.Context, profileID string) (*dashboard.View, error) {
	return f.result("notifications", profileID)
}

type testServer struct {
	router    *gin.Engine
	dashboard *fakeDashboard
	outbox    *mocks.NotificationOutbox
	health    *mocks.SystemHealthChecker
}

func setupTestServer(t *testing.T) *testServer {
	gin.SetMode(gin.TestMode)

	fake := &fakeDashboard{view: &dashboard.View{Status: dashboard.StatusIdle}}
	outbox := mocks.NewNotificationOutbox(t)
	health := mocks.NewSystemHealthChecker(t)

	server, err := NewHTTPServerAdapter(ServerOptions{
		Config:        ServerConfig{Port: 8080},
		Dashboard:     fake,
		Outbox:        outbox,
		HealthChecker: health,
		MetricsHandler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("weatherdash_pipeline_outcomes_total 1\n"))
		}),
		Location: time.UTC,
	})
	require.NoError(t, err)

	return &testServer{router: server.GetRouter(), dashboard: fake, outbox: outbox, health: health}
}

func (s *testServer) do(method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set(ProfileHeader, "p1")

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decodeDashboard(t *testing.T, w *httptest.ResponseRecorder) DashboardResponse {
	t.Helper()
	var resp DashboardResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestNewHTTPServerAdapter_RequiresDependencies(t *testing.T) {
	_, err := NewHTTPServerAdapter(ServerOptions{})
	assert.True(t, errors.IsValidationError(err))
}

func TestDashboardHandler_GetDashboard(t *testing.T) {
	s := setupTestServer(t)
	s.outbox.EXPECT().PromptPending(mock.Anything, "p1").Return(true)

	w := s.do(http.MethodGet, "/api/dashboard", "")

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeDashboard(t, w)
	assert.Equal(t, "p1", resp.ProfileID)
	assert.Equal(t, "idle", resp.Status)
	assert.True(t, resp.NotificationPrompt)
	assert.Equal(t, "state", s.dashboard.lastCall)
}

func TestDashboardHandler_Search(t *testing.T) {
	s := setupTestServer(t)
	s.dashboard.view = successView()
	s.outbox.EXPECT().PromptPending(mock.Anything, "p1").Return(false)

	w := s.do(http.MethodPost, "/api/search", `{"city":"London"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "London", s.dashboard.lastCity)
	resp := decodeDashboard(t, w)
	require.NotNil(t, resp.Weather)
	assert.Equal(t, "London, GB", resp.Weather.Location)
}

func TestDashboardHandler_SearchPipelineErrorIsOK(t *testing.T) {
	s := setupTestServer(t)
	s.dashboard.view = &dashboard.View{Status: dashboard.StatusError, Error: "City not found"}
	s.outbox.EXPECT().PromptPending(mock.Anything, "p1").Return(false)

	w := s.do(http.MethodPost, "/api/search", `{"city":"Atlantis"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeDashboard(t, w)
	assert.Equal(t, "error", resp.Status)
	assert.Equal(t, "City not found", resp.Error)
	assert.Nil(t, resp.Weather)
}

func TestDashboardHandler_SearchValidation(t *testing.T) {
	t.Run("MissingCity", func(t *testing.T) {
		s := setupTestServer(t)
		w := s.do(http.MethodPost, "/api/search", `{}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Empty(t, s.dashboard.lastCall)
	})

	t.Run("BlankCityRejectedByUseCase", func(t *testing.T) {
		s := setupTestServer(t)
		s.dashboard.err = errors.NewValidationError("city is required")
		w := s.do(http.MethodPost, "/api/search", `{"city":"   "}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestDashboardHandler_Locate(t *testing.T) {
	t.Run("Position", func(t *testing.T) {
		s := setupTestServer(t)
		s.outbox.EXPECT().PromptPending(mock.Anything, "p1").Return(false)

		w := s.do(http.MethodPost, "/api/locate", `{"lat":51.5074,"lon":-0.1278}`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, dashboard.GeoPosition{Latitude: 51.5074, Longitude: -0.1278}, s.dashboard.lastPos)
	})

	t.Run("ZeroCoordinatesAccepted", func(t *testing.T) {
		s := setupTestServer(t)
		s.outbox.EXPECT().PromptPending(mock.Anything, "p1").Return(false)

		w := s.do(http.MethodPost, "/api/locate", `{"lat":0,"lon":0}`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "locate", s.dashboard.lastCall)
	})

	t.Run("PermissionDenied", func(t *testing.T) {
		s := setupTestServer(t)
		s.dashboard.view = &dashboard.View{Status: dashboard.StatusError, Error: dashboard.MsgGeoPermission}
		s.outbox.EXPECT().PromptPending(mock.Anything, "p1").Return(false)

		w := s.do(http.MethodPost, "/api/locate", `{"error":"permission_denied"}`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, dashboard.GeoFailurePermissionDenied, s.dashboard.lastPos.Failure)
		assert.Equal(t, dashboard.MsgGeoPermission, decodeDashboard(t, w).Error)
	})

	tests := []struct {
		name string
		body string
	}{
		{"MissingCoordinates", `{}`},
		{"MissingLongitude", `{"lat":10}`},
		{"LatitudeOutOfRange", `{"lat":95,"lon":0}`},
		{"LongitudeOutOfRange", `{"lat":0,"lon":-181}`},
		{"UnknownFailure", `{"error":"timeout"}`},
		{"Malformed", `{"lat":`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := setupTestServer(t)
			w := s.do(http.MethodPost, "/api/locate", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Empty(t, s.dashboard.lastCall)
		})
	}
}

func TestDashboardHandler_ReplayHistory(t *testing.T) {
	t.Run("Replays", func(t *testing.T) {
		s := setupTestServer(t)
		s.outbox.EXPECT().PromptPending(mock.Anything, "p1").Return(false)

		w := s.do(http.MethodPost, "/api/history/2/replay", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 2, s.dashboard.lastIndex)
	})

	t.Run("NotANumber", func(t *testing.T) {
		s := setupTestServer(t)
		w := s.do(http.MethodPost, "/api/history/abc/replay", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("OutOfRange", func(t *testing.T) {
		s := setupTestServer(t)
		s.dashboard.err = errors.NewNotFoundError(dashboard.MsgHistoryOutOfRange)
		w := s.do(http.MethodPost, "/api/history/7/replay", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestDashboardHandler_Toggles(t *testing.T) {
	t.Run("Theme", func(t *testing.T) {
		s := setupTestServer(t)
		s.dashboard.view = &dashboard.View{Status: dashboard.StatusIdle, Preferences: dashboard.Preferences{DarkMode: true}}
		s.outbox.EXPECT().PromptPending(mock.Anything, "p1").Return(false)

		w := s.do(http.MethodPost, "/api/preferences/theme/toggle", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "theme", s.dashboard.lastCall)
		assert.True(t, decodeDashboard(t, w).Preferences.DarkMode)
	})

	t.Run("NotificationsPersistFailure", func(t *testing.T) {
		s := setupTestServer(t)
		s.dashboard.err = errors.NewStorageError("failed to save preference", nil)

		w := s.do(http.MethodPost, "/api/preferences/notifications/toggle", "")

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Equal(t, "notifications", s.dashboard.lastCall)
	})
}

func TestNotificationHandler_SetPermission(t *testing.T) {
	t.Run("Granted", func(t *testing.T) {
		s := setupTestServer(t)
		s.outbox.EXPECT().SetPermission(mock.Anything, "p1", ports.PermissionGranted).Return(nil)

		w := s.do(http.MethodPut, "/api/notifications/permission", `{"state":"granted"}`)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp PermissionResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "granted", resp.State)
	})

	t.Run("UnknownState", func(t *testing.T) {
		s := setupTestServer(t)
		w := s.do(http.MethodPut, "/api/notifications/permission", `{"state":"default"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("StoreFailure", func(t *testing.T) {
		s := setupTestServer(t)
		s.outbox.EXPECT().SetPermission(mock.Anything, "p1", ports.PermissionDenied).
			Return(errors.NewStorageError("failed to save notification permission", nil))

		w := s.do(http.MethodPut, "/api/notifications/permission", `{"state":"denied"}`)
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}

func TestNotificationHandler_Drain(t *testing.T) {
	s := setupTestServer(t)
	created := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	s.outbox.EXPECT().Drain(mock.Anything, "p1").Return([]ports.NotificationMessage{
		{ID: "n1", Title: "Poor Air Quality", Body: "Air quality is very poor (AQI 5).", CreatedAt: created},
	}, nil)
	s.outbox.EXPECT().PromptPending(mock.Anything, "p1").Return(false)

	w := s.do(http.MethodGet, "/api/notifications", "")

	assert.Equal(t, http.StatusOK, w.Code)
	var resp NotificationsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Notifications, 1)
	assert.Equal(t, NotificationResponse{
		ID:        "n1",
		Title:     "Poor Air Quality",
		Body:      "Air quality is very poor (AQI 5).",
		CreatedAt: "2024-03-10T12:00:00Z",
	}, resp.Notifications[0])
	assert.False(t, resp.Prompt)
}

func TestHealthHandler(t *testing.T) {
	t.Run("Healthy", func(t *testing.T) {
		s := setupTestServer(t)
		s.health.EXPECT().CheckAll(mock.Anything).Return(map[string]ports.HealthStatus{
			"preferenceStore": {Component: "preferenceStore", Status: "healthy"},
		})

		w := s.do(http.MethodGet, "/api/health", "")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Degraded", func(t *testing.T) {
		s := setupTestServer(t)
		s.health.EXPECT().CheckAll(mock.Anything).Return(map[string]ports.HealthStatus{
			"preferenceStore": {Component: "preferenceStore", Status: "unhealthy", Error: "Redis ping failed"},
		})

		w := s.do(http.MethodGet, "/api/health", "")
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)

		var resp HealthResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "degraded", resp.Status)
	})
}

func TestMetricsRoute(t *testing.T) {
	s := setupTestServer(t)

	w := s.do(http.MethodGet, "/metrics", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "weatherdash_pipeline_outcomes_total")
}

package api

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"weatherdash.app/internal/core/dashboard"
	"weatherdash.app/pkg/errors"
)

// SearchRequest is the body of POST /api/search
type SearchRequest struct {
	City string `json:"city" form:"city" binding:"required"`
}

// LocateRequest is the body of POST /api/locate. The browser sends either a
// position or the reason geolocation failed.
type LocateRequest struct {
	Latitude  *float64 `json:"lat" binding:"omitempty,latitude"`
	Longitude *float64 `json:"lon" binding:"omitempty,longitude"`
	Error     string   `json:"error" binding:"omitempty,oneof=permission_denied unsupported"`
}

// getDashboard handles GET /api/dashboard
func (s *HTTPServerAdapter) getDashboard(c *gin.Context) {
	view, err := s.dashboard.State(c.Request.Context(), profileIDFrom(c))
	s.respondView(c, view, err)
}

// search handles POST /api/search
func (s *HTTPServerAdapter) search(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBind(&req); err != nil {
		slog.Debug("Search binding error", "error", err)
		s.handleError(c, errors.NewValidationError("city is required"))
		return
	}

	slog.Debug("Search requested", "city", req.City)
	view, err := s.dashboard.Search(c.Request.Context(), profileIDFrom(c), req.City)
	s.respondView(c, view, err)
}

// locate handles POST /api/locate
func (s *HTTPServerAdapter) locate(c *gin.Context) {
	var req LocateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Debug("Locate binding error", "error", err)
		s.handleError(c, errors.NewValidationError("Invalid request format"))
		return
	}

	pos := dashboard.GeoPosition{Failure: dashboard.GeoFailure(req.Error)}
	if pos.Failure == dashboard.GeoFailureNone {
		if req.Latitude == nil || req.Longitude == nil {
			s.handleError(c, errors.NewValidationError("lat and lon are required"))
			return
		}
		pos.Latitude = *req.Latitude
		pos.Longitude = *req.Longitude
	}

	view, err := s.dashboard.Locate(c.Request.Context(), profileIDFrom(c), pos)
	s.respondView(c, view, err)
}

// replayHistory handles POST /api/history/:index/replay
func (s *HTTPServerAdapter) replayHistory(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		s.handleError(c, errors.NewValidationError("history index must be a number"))
		return
	}

	view, err := s.dashboard.ReplayHistory(c.Request.Context(), profileIDFrom(c), index)
	s.respondView(c, view, err)
}

// toggleTheme handles POST /api/preferences/theme/toggle
func (s *HTTPServerAdapter) toggleTheme(c *gin.Context) {
	view, err := s.dashboard.ToggleTheme(c.Request.Context(), profileIDFrom(c))
	s.respondView(c, view, err)
}

// toggleNotifications handles POST /api/preferences/notifications/toggle
func (s *HTTPServerAdapter) toggleNotifications(c *gin.Context) {
	view, err := s.dashboard.ToggleNotifications(c.Request.Context(), profileIDFrom(c))
	s.respondView(c, view, err)
}

func (s *HTTPServerAdapter) respondView(c *gin.Context, view *dashboard.View, err error) {
	if err != nil {
		s.handleError(c, err)
		return
	}

	prompt := s.outbox.PromptPending(c.Request.Context(), view.ProfileID)
	c.JSON(http.StatusOK, presentView(view, prompt, s.location))
}

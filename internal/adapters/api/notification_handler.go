package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
)

// PermissionRequest reports the browser's notification permission
type PermissionRequest struct {
	State string `json:"state" binding:"required,notification_permission"`
}

// PermissionResponse echoes the stored permission
type PermissionResponse struct {
	State string `json:"state"`
}

// NotificationResponse is one queued notification
type NotificationResponse struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	CreatedAt string `json:"created_at"`
}

// NotificationsResponse is the drained outbox
type NotificationsResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	Prompt        bool                   `json:"prompt"`
}

// setPermission handles PUT /api/notifications/permission
func (s *HTTPServerAdapter) setPermission(c *gin.Context) {
	var req PermissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Debug("Permission binding error", "error", err)
		s.handleError(c, errors.NewValidationError("state must be one of: granted, denied, undetermined"))
		return
	}

	permission := ports.Permission(req.State)
	if err := s.outbox.SetPermission(c.Request.Context(), profileIDFrom(c), permission); err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, PermissionResponse{State: string(permission)})
}

// drainNotifications handles GET /api/notifications
func (s *HTTPServerAdapter) drainNotifications(c *gin.Context) {
	ctx := c.Request.Context()
	profileID := profileIDFrom(c)

	messages, err := s.outbox.Drain(ctx, profileID)
	if err != nil {
		s.handleError(c, err)
		return
	}

	resp := NotificationsResponse{
		Notifications: make([]NotificationResponse, 0, len(messages)),
		Prompt:        s.outbox.PromptPending(ctx, profileID),
	}
	for _, msg := range messages {
		resp.Notifications = append(resp.Notifications, NotificationResponse{
			ID:        msg.ID,
			Title:     msg.Title,
			Body:      msg.Body,
			CreatedAt: msg.CreatedAt.UTC().Format(time.RFC3339),
		})
	}

	c.JSON(http.StatusOK, resp)
}

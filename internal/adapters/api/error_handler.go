package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	errorspkg "weatherdash.app/pkg/errors"
)

// ErrorResponse represents an error message structure for API responses
type ErrorResponse struct {
	Error string `json:"error"`
}

// handleError maps application errors to HTTP responses. Pipeline failures
// never reach here; they are part of the dashboard view.
func (s *HTTPServerAdapter) handleError(c *gin.Context, err error) {
	var appErr *errorspkg.AppError
	if !errors.As(err, &appErr) {
		slog.Error("Unhandled error", "error", err, "path", c.FullPath())
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
		return
	}

	statusCode := http.StatusInternalServerError
	message := "Internal server error"

	switch appErr.Type {
	case errorspkg.ValidationError:
		statusCode = http.StatusBadRequest
		message = appErr.Message
	case errorspkg.NotFoundError:
		statusCode = http.StatusNotFound
		message = appErr.Message
	case errorspkg.UnauthorizedError:
		statusCode = http.StatusBadGateway
		message = "Weather service rejected the request"
	case errorspkg.PermissionDeniedError:
		statusCode = http.StatusForbidden
		message = appErr.Message
	case errorspkg.UnsupportedError:
		statusCode = http.StatusNotImplemented
		message = appErr.Message
	case errorspkg.NetworkError, errorspkg.UpstreamError:
		statusCode = http.StatusBadGateway
		message = "External service unavailable"
	case errorspkg.StorageError:
		statusCode = http.StatusServiceUnavailable
		message = "Unable to save preferences"
	case errorspkg.NotificationError:
		statusCode = http.StatusServiceUnavailable
		message = "Unable to deliver notification"
	}

	if statusCode >= http.StatusInternalServerError {
		slog.Error("Request failed", "error", err, "path", c.FullPath(), "status", statusCode)
	}
	c.JSON(statusCode, ErrorResponse{Error: message})
}

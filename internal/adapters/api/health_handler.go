package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"weatherdash.app/internal/ports"
)

// HealthResponse aggregates component health
type HealthResponse struct {
	Status     string                        `json:"status"`
	Components map[string]ports.HealthStatus `json:"components"`
}

// getHealth handles GET /api/health
func (s *HTTPServerAdapter) getHealth(c *gin.Context) {
	components := s.healthChecker.CheckAll(c.Request.Context())

	status := "healthy"
	code := http.StatusOK
	for _, component := range components {
		if component.Status != "healthy" {
			status = "degraded"
			code = http.StatusServiceUnavailable
			break
		}
	}

	c.JSON(code, HealthResponse{Status: status, Components: components})
}

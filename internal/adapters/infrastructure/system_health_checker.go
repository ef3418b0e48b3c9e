package infrastructure

import (
	"context"

	"weatherdash.app/internal/ports"
)

// SystemHealthChecker aggregates component health checks keyed by component
type SystemHealthChecker struct {
	checkers []ports.HealthChecker
}

// NewSystemHealthChecker creates a new system health checker
func NewSystemHealthChecker(checkers ...ports.HealthChecker) *SystemHealthChecker {
	return &SystemHealthChecker{checkers: checkers}
}

// CheckAll performs health checks on all components
func (s *SystemHealthChecker) CheckAll(ctx context.Context) map[string]ports.HealthStatus {
	results := make(map[string]ports.HealthStatus, len(s.checkers))
	for _, checker := range s.checkers {
		if checker == nil {
			continue
		}
		status := checker.Check(ctx)
		results[status.Component] = status
	}
	return results
}

// IsHealthy reports whether every component in results is healthy
func IsHealthy(results map[string]ports.HealthStatus) bool {
	for _, status := range results {
		if status.Status != statusHealthy {
			return false
		}
	}
	return true
}

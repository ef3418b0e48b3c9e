package notification

import (
	"context"
	"time"

	"weatherdash.app/internal/core/weather"
	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
)

type UseCase struct {
	service ports.NotificationService
	logger  ports.Logger
	metrics ports.MetricsCollector
	now     func() time.Time
}

type UseCaseDependencies struct {
	Service ports.NotificationService
	Logger  ports.Logger
	Metrics ports.MetricsCollector
}

func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	if deps.Service == nil {
		return nil, errors.NewValidationError("notification service is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}
	if deps.Metrics == nil {
		return nil, errors.NewValidationError("metrics is required")
	}

	return &UseCase{
		service: deps.Service,
		logger:  deps.Logger,
		metrics: deps.Metrics,
		now:     time.Now,
	}, nil
}

// MaybeNotify raises air quality and severe alert notifications when warranted.
// A denied or undecided permission suppresses them silently. It returns the
// notifications that were shown.
func (uc *UseCase) MaybeNotify(ctx context.Context, profileID string, aqi *weather.AirQualitySample, alerts weather.AlertSet, enabled bool) ([]Notification, error) {
	if !enabled {
		return nil, nil
	}

	planned := Plan(aqi, alerts, uc.now().UTC())
	if len(planned) == 0 {
		return nil, nil
	}

	granted, err := uc.ensurePermission(ctx, profileID)
	if err != nil {
		return nil, err
	}
	if !granted {
		uc.logger.Debug("Notifications suppressed by permission",
			ports.F("profile_id", profileID),
			ports.F("pending", len(planned)))
		return nil, nil
	}

	shown := make([]Notification, 0, len(planned))
	for _, n := range planned {
		if err := uc.service.Show(ctx, profileID, n.ToMessage()); err != nil {
			uc.logger.Error("Failed to show notification",
				ports.F("profile_id", profileID),
				ports.F("title", n.Title),
				ports.F("error", err))
			return shown, errors.NewNotificationError("failed to show notification", err)
		}
		uc.metrics.RecordNotification(n.Kind)
		shown = append(shown, n)
	}

	uc.logger.Info("Notifications shown",
		ports.F("profile_id", profileID),
		ports.F("count", len(shown)))
	return shown, nil
}

func (uc *UseCase) ensurePermission(ctx context.Context, profileID string) (bool, error) {
	permission, err := uc.service.Permission(ctx, profileID)
	if err != nil {
		return false, errors.NewNotificationError("failed to read notification permission", err)
	}

	if permission == ports.PermissionUndetermined {
		permission, err = uc.service.RequestPermission(ctx, profileID)
		if err != nil {
			return false, errors.NewNotificationError("failed to request notification permission", err)
		}
	}

	return permission == ports.PermissionGranted, nil
}

package external

import (
	"context"

	"weatherdash.app/internal/ports"
)

// EmailNotificationForwarder decorates a NotificationService and also emails
// every shown notification. Email failures are logged and never fail Show.
type EmailNotificationForwarder struct {
	next   ports.NotificationService
	email  ports.EmailProvider
	to     string
	logger ports.Logger
}

// NewEmailNotificationForwarder creates a forwarding decorator
func NewEmailNotificationForwarder(next ports.NotificationService, email ports.EmailProvider, to string, logger ports.Logger) *EmailNotificationForwarder {
	return &EmailNotificationForwarder{
		next:   next,
		email:  email,
		to:     to,
		logger: logger,
	}
}

func (f *EmailNotificationForwarder) Permission(ctx context.Context, profileID string) (ports.Permission, error) {
	return f.next.Permission(ctx, profileID)
}

func (f *EmailNotificationForwarder) RequestPermission(ctx context.Context, profileID string) (ports.Permission, error) {
	return f.next.RequestPermission(ctx, profileID)
}

// Show delivers to the wrapped service first, then emails a copy
func (f *EmailNotificationForwarder) Show(ctx context.Context, profileID string, msg ports.NotificationMessage) error {
	if err := f.next.Show(ctx, profileID, msg); err != nil {
		return err
	}

	err := f.email.SendEmail(ctx, ports.EmailParams{
		To:      f.to,
		Subject: msg.Title,
		Body:    msg.Body,
	})
	if err != nil {
		f.logger.Warn("Failed to forward notification by email",
			ports.F("profile_id", profileID),
			ports.F("notification_id", msg.ID),
			ports.F("error", err))
		return nil
	}

	f.logger.Info("Notification forwarded by email",
		ports.F("profile_id", profileID),
		ports.F("notification_id", msg.ID))
	return nil
}

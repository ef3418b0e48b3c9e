package ports

import (
	"context"
	"time"
)

// Permission is the tri-state platform notification grant
type Permission string

const (
	PermissionGranted      Permission = "granted"
	PermissionDenied       Permission = "denied"
	PermissionUndetermined Permission = "undetermined"
)

// IsValid reports whether p is one of the known permission states
func (p Permission) IsValid() bool {
	return p == PermissionGranted || p == PermissionDenied || p == PermissionUndetermined
}

// NotificationMessage is a user-facing notification ready for display
type NotificationMessage struct {
	ID        string
	Title     string
	Body      string
	CreatedAt time.Time
}

// NotificationService defines the contract for the platform notification surface
type NotificationService interface {
	Permission(ctx context.Context, profileID string) (Permission, error)
	RequestPermission(ctx context.Context, profileID string) (Permission, error)
	Show(ctx context.Context, profileID string, msg NotificationMessage) error
}

// NotificationOutbox is implemented by notification services that queue
// messages for the browser to pick up
type NotificationOutbox interface {
	Drain(ctx context.Context, profileID string) ([]NotificationMessage, error)
	SetPermission(ctx context.Context, profileID string, permission Permission) error
	PromptPending(ctx context.Context, profileID string) bool
}

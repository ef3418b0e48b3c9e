package external

import (
	"context"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
)

// PermissionPreference is the preference name holding a profile's notification grant
const PermissionPreference = "notificationPermission"

// maxOutboxSize bounds undelivered notifications per profile; the oldest are dropped
const maxOutboxSize = 50

// maxOutboxProfiles bounds the profiles holding queued notifications or a
// pending prompt; the least recently used profile is dropped first
const maxOutboxProfiles = 10000

// OutboxNotificationService queues notifications for the browser to pick up.
// The grant itself is decided by the browser and reported back through
// SetPermission, so it lives in the preference store.
type OutboxNotificationService struct {
	store  ports.PreferenceStore
	logger ports.Logger

	mutex   sync.Mutex
	outbox  *lru.Cache[string, []ports.NotificationMessage]
	pending *lru.Cache[string, struct{}]
}

// NewOutboxNotificationService creates a new outbox notification service
func NewOutboxNotificationService(store ports.PreferenceStore, logger ports.Logger) *OutboxNotificationService {
	return newOutboxNotificationService(store, logger, maxOutboxProfiles)
}

func newOutboxNotificationService(store ports.PreferenceStore, logger ports.Logger, profiles int) *OutboxNotificationService {
	// lru.New only fails for a non-positive size
	outbox, _ := lru.New[string, []ports.NotificationMessage](profiles)
	pending, _ := lru.New[string, struct{}](profiles)

	return &OutboxNotificationService{
		store:   store,
		logger:  logger,
		outbox:  outbox,
		pending: pending,
	}
}

// Permission returns the stored grant, undetermined when none was recorded
func (s *OutboxNotificationService) Permission(ctx context.Context, profileID string) (ports.Permission, error) {
	value, err := s.store.Get(ctx, ports.ProfileKey(profileID, PermissionPreference))
	if err != nil {
		if errors.IsNotFoundError(err) {
			return ports.PermissionUndetermined, nil
		}
		return ports.PermissionUndetermined, errors.NewStorageError("failed to read notification permission", err)
	}

	permission := ports.Permission(value)
	if !permission.IsValid() {
		s.logger.Warn("Ignoring unknown notification permission",
			ports.F("profile_id", profileID),
			ports.F("value", value))
		return ports.PermissionUndetermined, nil
	}
	return permission, nil
}

// RequestPermission flags a pending prompt when the profile has not decided
// yet. The answer arrives later through SetPermission.
func (s *OutboxNotificationService) RequestPermission(ctx context.Context, profileID string) (ports.Permission, error) {
	permission, err := s.Permission(ctx, profileID)
	if err != nil {
		return permission, err
	}

	if permission == ports.PermissionUndetermined {
		s.mutex.Lock()
		s.pending.Add(profileID, struct{}{})
		s.mutex.Unlock()
		s.logger.Debug("Notification permission prompt queued", ports.F("profile_id", profileID))
	}
	return permission, nil
}

// Show appends a notification to the profile's outbox
func (s *OutboxNotificationService) Show(ctx context.Context, profileID string, msg ports.NotificationMessage) error {
	if profileID == "" {
		return errors.NewValidationError("profile id is required")
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	queue, _ := s.outbox.Get(profileID)
	queue = append(queue, msg)
	if len(queue) > maxOutboxSize {
		queue = queue[len(queue)-maxOutboxSize:]
	}
	if evicted := s.outbox.Add(profileID, queue); evicted {
		s.logger.Warn("Dropped undelivered notifications of least recently used profile",
			ports.F("capacity", s.outbox.Len()))
	}
	return nil
}

// Drain returns and clears the profile's queued notifications
func (s *OutboxNotificationService) Drain(ctx context.Context, profileID string) ([]ports.NotificationMessage, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	queue, _ := s.outbox.Peek(profileID)
	s.outbox.Remove(profileID)
	if queue == nil {
		return []ports.NotificationMessage{}, nil
	}
	return queue, nil
}

// SetPermission records the browser's answer and clears any pending prompt
func (s *OutboxNotificationService) SetPermission(ctx context.Context, profileID string, permission ports.Permission) error {
	if !permission.IsValid() {
		return errors.NewValidationError("unknown notification permission: " + string(permission))
	}

	if err := s.store.Set(ctx, ports.ProfileKey(profileID, PermissionPreference), string(permission)); err != nil {
		return errors.NewStorageError("failed to save notification permission", err)
	}

	s.mutex.Lock()
	s.pending.Remove(profileID)
	s.mutex.Unlock()
	return nil
}

// PromptPending reports whether the browser should ask the user for permission
func (s *OutboxNotificationService) PromptPending(ctx context.Context, profileID string) bool {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.pending.Contains(profileID)
}

package dashboard

import (
	"context"
	"encoding/json"
	"strconv"

	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
)

// Preference names stored under each profile
const (
	KeyHistory       = "weatherHistory"
	KeyDarkMode      = "weatherDarkMode"
	KeyNotifications = "weatherNotifications"
)

// Preferences holds the user's display and notification choices
type Preferences struct {
	DarkMode             bool
	NotificationsEnabled bool
}

// preferenceRepository maps profile state onto the string key-value store
type preferenceRepository struct {
	store  ports.PreferenceStore
	logger ports.Logger
}

func (r *preferenceRepository) loadHistory(ctx context.Context, profileID string) (SearchHistory, error) {
	raw, err := r.store.Get(ctx, ports.ProfileKey(profileID, KeyHistory))
	if err != nil {
		if errors.IsNotFoundError(err) {
			return SearchHistory{}, nil
		}
		return nil, errors.NewStorageError("failed to load search history", err)
	}

	var history SearchHistory
	if err := json.Unmarshal([]byte(raw), &history); err != nil {
		r.logger.Warn("Discarding unreadable search history",
			ports.F("profile_id", profileID),
			ports.F("error", err))
		return SearchHistory{}, nil
	}
	return history.Normalize(), nil
}

func (r *preferenceRepository) saveHistory(ctx context.Context, profileID string, history SearchHistory) error {
	raw, err := json.Marshal(history)
	if err != nil {
		return errors.NewStorageError("failed to encode search history", err)
	}
	if err := r.store.Set(ctx, ports.ProfileKey(profileID, KeyHistory), string(raw)); err != nil {
		return errors.NewStorageError("failed to save search history", err)
	}
	return nil
}

func (r *preferenceRepository) loadPreferences(ctx context.Context, profileID string) (Preferences, error) {
	darkMode, err := r.loadFlag(ctx, profileID, KeyDarkMode)
	if err != nil {
		return Preferences{}, err
	}
	notifications, err := r.loadFlag(ctx, profileID, KeyNotifications)
	if err != nil {
		return Preferences{}, err
	}
	return Preferences{DarkMode: darkMode, NotificationsEnabled: notifications}, nil
}

// loadFlag treats anything other than "true" as false
func (r *preferenceRepository) loadFlag(ctx context.Context, profileID, name string) (bool, error) {
	raw, err := r.store.Get(ctx, ports.ProfileKey(profileID, name))
	if err != nil {
		if errors.IsNotFoundError(err) {
			return false, nil
		}
		return false, errors.NewStorageError("failed to load preference "+name, err)
	}
	return raw == "true", nil
}

func (r *preferenceRepository) saveFlag(ctx context.Context, profileID, name string, value bool) error {
	if err := r.store.Set(ctx, ports.ProfileKey(profileID, name), strconv.FormatBool(value)); err != nil {
		return errors.NewStorageError("failed to save preference "+name, err)
	}
	return nil
}

package ports

import "context"

// PreferenceStore defines the contract for durable string key-value persistence.
// Get returns a NotFound AppError when the key has never been set.
type PreferenceStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

// ProfileKey namespaces a preference name under a profile
func ProfileKey(profileID, name string) string {
	return "profile:" + profileID + ":" + name
}

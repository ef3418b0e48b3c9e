package external

import (
	"context"
	"fmt"

	"weatherdash.app/internal/adapters/database"
	"weatherdash.app/internal/config"
	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
)

// PingablePreferenceStore is a preference store that can report its health
type PingablePreferenceStore interface {
	ports.PreferenceStore
	Ping(ctx context.Context) error
}

// PreferenceStoreHandle bundles a store with the function that releases it
type PreferenceStoreHandle struct {
	Store PingablePreferenceStore
	Close func() error
}

type PreferenceStoreFactory struct{}

func NewPreferenceStoreFactory() *PreferenceStoreFactory {
	return &PreferenceStoreFactory{}
}

func (f *PreferenceStoreFactory) CreatePreferenceStore(cfg *config.StoreConfig) (*PreferenceStoreHandle, error) {
	if cfg == nil {
		return nil, errors.NewConfigurationError("store config cannot be nil", nil)
	}

	switch cfg.Type {
	case config.StoreTypeMemory:
		return &PreferenceStoreHandle{
			Store: NewMemoryPreferenceStore(),
			Close: func() error { return nil },
		}, nil
	case config.StoreTypeRedis:
		store, err := NewRedisPreferenceStoreAdapter(&cfg.Redis)
		if err != nil {
			return nil, err
		}
		return &PreferenceStoreHandle{Store: store, Close: store.Close}, nil
	case config.StoreTypeSQLite, config.StoreTypePostgres:
		db, err := database.Open(cfg)
		if err != nil {
			return nil, err
		}
		return &PreferenceStoreHandle{
			Store: database.NewPreferenceRepositoryAdapter(db),
			Close: func() error { return database.Close(db) },
		}, nil
	default:
		return nil, errors.NewConfigurationError(
			fmt.Sprintf("unsupported store type: %s", cfg.Type.String()), nil)
	}
}

package repository

import (
	"context"

	"github.com/wishmas/core/internal/domain/entities"
	"github.com/wishmas/core/internal/infrastructure/filestore"
	"github.com/wishmas/core/internal/ports"
)

// ConfigRepository stores the singleton password config in the file store.
type ConfigRepository struct {
	store *filestore.Store
}

// NewConfigRepository creates a new config repository
func NewConfigRepository(store *filestore.Store) *ConfigRepository {
	return &ConfigRepository{store: store}
}

func (r *ConfigRepository) Get(ctx context.Context) (*entities.Config, error) {
	var out *entities.Config
	err := r.store.ViewConfig(func(cfg *entities.Config) error {
		clone := *cfg
		out = &clone
		return nil
	})
	return out, err
}

func (r *ConfigRepository) Update(ctx context.Context, update ports.ConfigUpdate) (*entities.Config, error) {
	var out *entities.Config
	err := r.store.UpdateConfig(func(cfg *entities.Config) (*entities.Config, error) {
		next := *cfg
		if update.UserPassword != nil {
			next.UserPassword = *update.UserPassword
		}
		if update.ParentPassword != nil {
			next.ParentPassword = *update.ParentPassword
		}
		if update.DevPassword != nil {
			next.DevPassword = *update.DevPassword
		}
		clone := next
		out = &clone
		return &next, nil
	})
	return out, err
}

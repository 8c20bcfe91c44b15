package repository

import (
	"context"

	"github.com/wishmas/core/internal/domain/entities"
	"github.com/wishmas/core/internal/infrastructure/filestore"
	"github.com/wishmas/core/internal/ports"
)

// UserRepository stores the legacy user records in the file store.
type UserRepository struct {
	store *filestore.Store
}

// NewUserRepository creates a new user repository
func NewUserRepository(store *filestore.Store) *UserRepository {
	return &UserRepository{store: store}
}

func (r *UserRepository) List(ctx context.Context) ([]*entities.User, error) {
	var out []*entities.User
	err := r.store.ViewUsers(func(users []*entities.User) error {
		out = append(out, users...)
		return nil
	})
	return out, err
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*entities.User, error) {
	var found *entities.User
	err := r.store.ViewUsers(func(users []*entities.User) error {
		for _, u := range users {
			if u.ID == id {
				clone := *u
				found = &clone
				return nil
			}
		}
		return entities.ErrUserNotFound
	})
	return found, err
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*entities.User, error) {
	key := entities.NormalizeUsername(username)

	var found *entities.User
	err := r.store.ViewUsers(func(users []*entities.User) error {
		for _, u := range users {
			if entities.NormalizeUsername(u.Username) == key {
				clone := *u
				found = &clone
				return nil
			}
		}
		return entities.ErrUserNotFound
	})
	return found, err
}

func (r *UserRepository) Create(ctx context.Context, user *entities.User) error {
	return r.store.UpdateUsers(func(users []*entities.User) ([]*entities.User, error) {
		return append(users, user), nil
	})
}

func (r *UserRepository) Update(ctx context.Context, id string, update ports.UserUpdate) (*entities.User, error) {
	var updated *entities.User
	err := r.store.UpdateUsers(func(users []*entities.User) ([]*entities.User, error) {
		for _, u := range users {
			if u.ID != id {
				continue
			}
			if update.Username != nil {
				u.Username = *update.Username
			}
			if update.Email != nil {
				u.Email = *update.Email
			}
			clone := *u
			updated = &clone
			return users, nil
		}
		return nil, entities.ErrUserNotFound
	})
	return updated, err
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	return r.store.UpdateUsers(func(users []*entities.User) ([]*entities.User, error) {
		for i, u := range users {
			if u.ID == id {
				return append(users[:i], users[i+1:]...), nil
			}
		}
		return nil, entities.ErrUserNotFound
	})
}

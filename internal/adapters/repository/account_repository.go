package repository

import (
	"context"

	"github.com/wishmas/core/internal/domain/entities"
	"github.com/wishmas/core/internal/infrastructure/filestore"
	"github.com/wishmas/core/internal/ports"
)

// AccountRepository stores login accounts in the file store.
type AccountRepository struct {
	store *filestore.Store
}

// NewAccountRepository creates a new account repository
func NewAccountRepository(store *filestore.Store) *AccountRepository {
	return &AccountRepository{store: store}
}

func (r *AccountRepository) List(ctx context.Context) ([]*entities.Account, error) {
	var out []*entities.Account
	err := r.store.ViewAccounts(func(accounts []*entities.Account) error {
		out = append(out, accounts...)
		return nil
	})
	return out, err
}

func (r *AccountRepository) GetByID(ctx context.Context, id string) (*entities.Account, error) {
	var found *entities.Account
	err := r.store.ViewAccounts(func(accounts []*entities.Account) error {
		for _, a := range accounts {
			if a.ID == id {
				clone := *a
				found = &clone
				return nil
			}
		}
		return entities.ErrAccountNotFound
	})
	return found, err
}

func (r *AccountRepository) GetByUsername(ctx context.Context, username string) (*entities.Account, error) {
	key := entities.NormalizeUsername(username)

	var found *entities.Account
	err := r.store.ViewAccounts(func(accounts []*entities.Account) error {
		for _, a := range accounts {
			if entities.NormalizeUsername(a.Username) == key {
				clone := *a
				found = &clone
				return nil
			}
		}
		return entities.ErrAccountNotFound
	})
	return found, err
}

// Create appends the account, rejecting a username already present in the
// collection. The check and the insert happen under the same store lock.
func (r *AccountRepository) Create(ctx context.Context, account *entities.Account) error {
	key := entities.NormalizeUsername(account.Username)

	return r.store.UpdateAccounts(func(accounts []*entities.Account) ([]*entities.Account, error) {
		for _, a := range accounts {
			if entities.NormalizeUsername(a.Username) == key {
				return nil, entities.ErrUsernameTaken
			}
		}
		return append(accounts, account), nil
	})
}

func (r *AccountRepository) Update(ctx context.Context, id string, update ports.AccountUpdate) (*entities.Account, error) {
	var updated *entities.Account
	err := r.store.UpdateAccounts(func(accounts []*entities.Account) ([]*entities.Account, error) {
		for _, a := range accounts {
			if a.ID != id {
				continue
			}
			if update.Username != nil {
				key := entities.NormalizeUsername(*update.Username)
				for _, other := range accounts {
					if other.ID != id && entities.NormalizeUsername(other.Username) == key {
						return nil, entities.ErrUsernameTaken
					}
				}
				a.Username = *update.Username
			}
			if update.Password != nil {
				a.Password = *update.Password
			}
			if update.DisplayName != nil {
				a.DisplayName = *update.DisplayName
			}
			if update.Role != nil {
				a.Role = *update.Role
			}
			clone := *a
			updated = &clone
			return accounts, nil
		}
		return nil, entities.ErrAccountNotFound
	})
	return updated, err
}

func (r *AccountRepository) Delete(ctx context.Context, id string) error {
	return r.store.UpdateAccounts(func(accounts []*entities.Account) ([]*entities.Account, error) {
		for i, a := range accounts {
			if a.ID == id {
				return append(accounts[:i], accounts[i+1:]...), nil
			}
		}
		return nil, entities.ErrAccountNotFound
	})
}

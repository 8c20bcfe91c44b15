package repository

import (
	"context"

	"github.com/wishmas/core/internal/domain/entities"
	"github.com/wishmas/core/internal/infrastructure/filestore"
)

// ListRepository stores sent wish lists in the file store.
type ListRepository struct {
	store *filestore.Store
}

// NewListRepository creates a new wish list repository
func NewListRepository(store *filestore.Store) *ListRepository {
	return &ListRepository{store: store}
}

func (r *ListRepository) List(ctx context.Context) ([]*entities.WishList, error) {
	var out []*entities.WishList
	err := r.store.ViewLists(func(lists []*entities.WishList) error {
		out = append(out, lists...)
		return nil
	})
	return out, err
}

func (r *ListRepository) GetByID(ctx context.Context, id string) (*entities.WishList, error) {
	var found *entities.WishList
	err := r.store.ViewLists(func(lists []*entities.WishList) error {
		for _, l := range lists {
			if l.ID == id {
				found = cloneList(l)
				return nil
			}
		}
		return entities.ErrListNotFound
	})
	return found, err
}

func (r *ListRepository) GetByUsername(ctx context.Context, username string) (*entities.WishList, error) {
	key := entities.NormalizeUsername(username)

	var found *entities.WishList
	err := r.store.ViewLists(func(lists []*entities.WishList) error {
		for _, l := range lists {
			if entities.NormalizeUsername(l.Username) == key {
				found = cloneList(l)
				return nil
			}
		}
		return entities.ErrListNotFound
	})
	return found, err
}

// Replace drops any persisted list for the new list's username and appends
// the new one, as a single persisted step. Each send fully supersedes the
// sender's previous list.
func (r *ListRepository) Replace(ctx context.Context, list *entities.WishList) error {
	key := entities.NormalizeUsername(list.Username)

	return r.store.UpdateLists(func(lists []*entities.WishList) ([]*entities.WishList, error) {
		kept := lists[:0]
		for _, l := range lists {
			if entities.NormalizeUsername(l.Username) != key {
				kept = append(kept, l)
			}
		}
		return append(kept, list), nil
	})
}

func (r *ListRepository) Delete(ctx context.Context, id string) error {
	return r.store.UpdateLists(func(lists []*entities.WishList) ([]*entities.WishList, error) {
		for i, l := range lists {
			if l.ID == id {
				return append(lists[:i], lists[i+1:]...), nil
			}
		}
		return nil, entities.ErrListNotFound
	})
}

func (r *ListRepository) DeleteAll(ctx context.Context) error {
	return r.store.UpdateLists(func([]*entities.WishList) ([]*entities.WishList, error) {
		return []*entities.WishList{}, nil
	})
}

func cloneList(l *entities.WishList) *entities.WishList {
	clone := *l
	clone.Items = append([]entities.WishListItem(nil), l.Items...)
	return &clone
}

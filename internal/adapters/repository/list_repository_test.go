package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wishmas/core/internal/domain/entities"
)

func newList(username string, titles ...string) *entities.WishList {
	list := &entities.WishList{
		ID:        entities.NewID(),
		Username:  username,
		CreatedAt: entities.Timestamp(),
	}
	for _, title := range titles {
		list.Items = append(list.Items, entities.WishListItem{
			ID:       entities.NewID(),
			Title:    title,
			Quantity: 1,
		})
	}
	return list
}

func TestListRepositoryReplaceSupersedesByUsername(t *testing.T) {
	repo := NewListRepository(newTestStore(t))
	ctx := context.Background()

	first := newList("Alice", "Velo")
	require.NoError(t, repo.Replace(ctx, first))

	// Same sender with different casing replaces the first list.
	second := newList("alice", "Livre", "Puzzle")
	require.NoError(t, repo.Replace(ctx, second))

	lists, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, lists, 1)
	assert.Equal(t, second.ID, lists[0].ID)
	assert.Len(t, lists[0].Items, 2)

	_, err = repo.GetByID(ctx, first.ID)
	assert.ErrorIs(t, err, entities.ErrListNotFound)
}

func TestListRepositoryReplaceKeepsOtherSenders(t *testing.T) {
	repo := NewListRepository(newTestStore(t))
	ctx := context.Background()

	require.NoError(t, repo.Replace(ctx, newList("alice", "Velo")))
	require.NoError(t, repo.Replace(ctx, newList("bob", "Train")))
	require.NoError(t, repo.Replace(ctx, newList("alice", "Livre")))

	lists, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, lists, 2)

	bobs, err := repo.GetByUsername(ctx, "Bob")
	require.NoError(t, err)
	assert.Equal(t, "Train", bobs.Items[0].Title)
}

func TestListRepositoryGetByUsernameNotFound(t *testing.T) {
	repo := NewListRepository(newTestStore(t))

	_, err := repo.GetByUsername(context.Background(), "nobody")
	assert.ErrorIs(t, err, entities.ErrListNotFound)
}

func TestListRepositoryDelete(t *testing.T) {
	repo := NewListRepository(newTestStore(t))
	ctx := context.Background()

	list := newList("alice", "Velo")
	require.NoError(t, repo.Replace(ctx, list))

	require.NoError(t, repo.Delete(ctx, list.ID))

	lists, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, lists)

	assert.ErrorIs(t, repo.Delete(ctx, list.ID), entities.ErrListNotFound)
}

func TestListRepositoryDeleteAll(t *testing.T) {
	repo := NewListRepository(newTestStore(t))
	ctx := context.Background()

	require.NoError(t, repo.Replace(ctx, newList("alice", "Velo")))
	require.NoError(t, repo.Replace(ctx, newList("bob", "Train")))

	require.NoError(t, repo.DeleteAll(ctx))

	lists, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, lists)
}

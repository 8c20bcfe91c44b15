package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wishmas/core/internal/adapters/repository"
	"github.com/wishmas/core/internal/domain/entities"
	"github.com/wishmas/core/internal/infrastructure/filestore"
	"github.com/wishmas/core/internal/infrastructure/logger"
	"github.com/wishmas/core/internal/ports"
)

func newListService(store *filestore.Store) *ListService {
	return NewListService(repository.NewListRepository(store), repository.NewDraftCache(), logger.NewNop())
}

func TestAddItemGoesToDraftNotToSentLists(t *testing.T) {
	store := newTestStore(t)
	svc := newListService(store)
	ctx := context.Background()

	item, err := svc.AddItem(ctx, "alice", ports.CreateItemRequest{Title: "Velo"})
	require.NoError(t, err)
	assert.NotEmpty(t, item.ID)
	assert.Equal(t, 1, item.Quantity)

	current := svc.CurrentList(ctx, "alice")
	require.Len(t, current.Items, 1)
	assert.Equal(t, "Velo", current.Items[0].Title)

	// Nothing is persisted until the user sends.
	lists, err := svc.ListLists(ctx)
	require.NoError(t, err)
	assert.Empty(t, lists)
}

func TestSendFreezesDraftAndClearsIt(t *testing.T) {
	store := newTestStore(t)
	svc := newListService(store)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "Alice", ports.CreateItemRequest{Title: "Velo"})
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, "Alice", ports.CreateItemRequest{Title: "Livre", Quantity: 2})
	require.NoError(t, err)

	sent, err := svc.Send(ctx, "Alice")
	require.NoError(t, err)
	assert.Equal(t, "Alice", sent.Username)
	assert.Len(t, sent.Items, 2)

	lists, err := svc.ListLists(ctx)
	require.NoError(t, err)
	require.Len(t, lists, 1)
	assert.Equal(t, sent.ID, lists[0].ID)

	// The draft is gone; a second send has nothing to freeze.
	assert.Empty(t, svc.CurrentList(ctx, "alice").Items)
	_, err = svc.Send(ctx, "Alice")
	assert.ErrorIs(t, err, entities.ErrEmptyDraft)
}

func TestSendEmptyDraftHasNoSideEffects(t *testing.T) {
	store := newTestStore(t)
	svc := newListService(store)
	ctx := context.Background()

	_, err := svc.Send(ctx, "alice")
	assert.ErrorIs(t, err, entities.ErrEmptyDraft)

	lists, err := svc.ListLists(ctx)
	require.NoError(t, err)
	assert.Empty(t, lists)
}

func TestResendReplacesPreviousList(t *testing.T) {
	store := newTestStore(t)
	svc := newListService(store)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "alice", ports.CreateItemRequest{Title: "Velo"})
	require.NoError(t, err)
	first, err := svc.Send(ctx, "alice")
	require.NoError(t, err)

	_, err = svc.AddItem(ctx, "Alice", ports.CreateItemRequest{Title: "Livre"})
	require.NoError(t, err)
	second, err := svc.Send(ctx, "Alice")
	require.NoError(t, err)

	lists, err := svc.ListLists(ctx)
	require.NoError(t, err)
	require.Len(t, lists, 1)
	assert.Equal(t, second.ID, lists[0].ID)
	assert.NotEqual(t, first.ID, lists[0].ID)
	assert.Equal(t, "Livre", lists[0].Items[0].Title)
}

func TestUpdateAndDeleteDraftItem(t *testing.T) {
	store := newTestStore(t)
	svc := newListService(store)
	ctx := context.Background()

	item, err := svc.AddItem(ctx, "alice", ports.CreateItemRequest{Title: "Velo"})
	require.NoError(t, err)

	// An update with no fields set changes nothing.
	same, err := svc.UpdateItem(ctx, "alice", item.ID, ports.ItemUpdate{})
	require.NoError(t, err)
	assert.Equal(t, *item, *same)

	quantity := 3
	updated, err := svc.UpdateItem(ctx, "alice", item.ID, ports.ItemUpdate{Quantity: &quantity})
	require.NoError(t, err)
	assert.Equal(t, 3, updated.Quantity)
	assert.Equal(t, "Velo", updated.Title)

	require.NoError(t, svc.DeleteItem(ctx, "alice", item.ID))
	assert.ErrorIs(t, svc.DeleteItem(ctx, "alice", item.ID), entities.ErrItemNotFound)
}

func TestResetDeletesEverySentList(t *testing.T) {
	store := newTestStore(t)
	svc := newListService(store)
	ctx := context.Background()

	for _, username := range []string{"alice", "bob"} {
		_, err := svc.AddItem(ctx, username, ports.CreateItemRequest{Title: "Velo"})
		require.NoError(t, err)
		_, err = svc.Send(ctx, username)
		require.NoError(t, err)
	}

	require.NoError(t, svc.Reset(ctx))

	lists, err := svc.ListLists(ctx)
	require.NoError(t, err)
	assert.Empty(t, lists)
}

func TestStatsCountPersistedItemsOnly(t *testing.T) {
	store := newTestStore(t)
	svc := newListService(store)
	stats := NewStatsService(
		repository.NewListRepository(store),
		repository.NewUserRepository(store),
		repository.NewAnnouncementRepository(store),
		repository.NewAccountRepository(store),
		logger.NewNop(),
	)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "alice", ports.CreateItemRequest{Title: "Velo"})
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, "bob", ports.CreateItemRequest{Title: "Train"})
	require.NoError(t, err)

	snapshot, err := stats.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, snapshot.TotalLists)
	assert.Equal(t, 0, snapshot.TotalItems)

	_, err = svc.Send(ctx, "alice")
	require.NoError(t, err)

	snapshot, err = stats.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, snapshot.TotalLists)
	assert.Equal(t, 1, snapshot.TotalItems)

	require.NoError(t, svc.Reset(ctx))

	snapshot, err = stats.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, snapshot.TotalLists)
	assert.Equal(t, 0, snapshot.TotalItems)
}

package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wishmas/core/internal/adapters/repository"
	"github.com/wishmas/core/internal/domain/entities"
	"github.com/wishmas/core/internal/infrastructure/logger"
	"github.com/wishmas/core/internal/ports"
)

func TestCreateAnnouncementDefaultsToActive(t *testing.T) {
	store := newTestStore(t)
	svc := NewAnnouncementService(repository.NewAnnouncementRepository(store), logger.NewNop())
	ctx := context.Background()

	created, err := svc.CreateAnnouncement(ctx, ports.CreateAnnouncementRequest{
		Title:   "Bienvenue",
		Content: "Le site est ouvert",
	})
	require.NoError(t, err)
	assert.True(t, created.IsActive)
	assert.NotEmpty(t, created.ID)
	assert.NotEmpty(t, created.CreatedAt)
}

func TestActiveAnnouncementsFiltersInactive(t *testing.T) {
	store := newTestStore(t)
	svc := NewAnnouncementService(repository.NewAnnouncementRepository(store), logger.NewNop())
	ctx := context.Background()

	inactive := false
	_, err := svc.CreateAnnouncement(ctx, ports.CreateAnnouncementRequest{
		Title: "Brouillon", Content: "pas encore", IsActive: &inactive,
	})
	require.NoError(t, err)

	visible, err := svc.CreateAnnouncement(ctx, ports.CreateAnnouncementRequest{
		Title: "Noel approche", Content: "envoyez vos listes",
	})
	require.NoError(t, err)

	all, err := svc.ListAnnouncements(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	active, err := svc.ActiveAnnouncements(ctx)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, visible.ID, active[0].ID)
}

func TestUpdateAnnouncementTogglesActive(t *testing.T) {
	store := newTestStore(t)
	svc := NewAnnouncementService(repository.NewAnnouncementRepository(store), logger.NewNop())
	ctx := context.Background()

	created, err := svc.CreateAnnouncement(ctx, ports.CreateAnnouncementRequest{
		Title: "Noel approche", Content: "envoyez vos listes",
	})
	require.NoError(t, err)

	off := false
	updated, err := svc.UpdateAnnouncement(ctx, created.ID, ports.AnnouncementUpdate{IsActive: &off})
	require.NoError(t, err)
	assert.False(t, updated.IsActive)
	assert.Equal(t, "Noel approche", updated.Title)

	active, err := svc.ActiveAnnouncements(ctx)
	require.NoError(t, err)
	assert.Empty(t, active)

	_, err = svc.UpdateAnnouncement(ctx, "missing", ports.AnnouncementUpdate{IsActive: &off})
	assert.ErrorIs(t, err, entities.ErrAnnouncementNotFound)
}

func TestDeleteAnnouncement(t *testing.T) {
	store := newTestStore(t)
	svc := NewAnnouncementService(repository.NewAnnouncementRepository(store), logger.NewNop())
	ctx := context.Background()

	created, err := svc.CreateAnnouncement(ctx, ports.CreateAnnouncementRequest{
		Title: "Noel approche", Content: "envoyez vos listes",
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteAnnouncement(ctx, created.ID))
	assert.ErrorIs(t, svc.DeleteAnnouncement(ctx, created.ID), entities.ErrAnnouncementNotFound)
}

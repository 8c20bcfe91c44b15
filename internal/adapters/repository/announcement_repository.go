package repository

import (
	"context"

	"github.com/wishmas/core/internal/domain/entities"
	"github.com/wishmas/core/internal/infrastructure/filestore"
	"github.com/wishmas/core/internal/ports"
)

// AnnouncementRepository stores announcements in the file store.
type AnnouncementRepository struct {
	store *filestore.Store
}

// NewAnnouncementRepository creates a new announcement repository
func NewAnnouncementRepository(store *filestore.Store) *AnnouncementRepository {
	return &AnnouncementRepository{store: store}
}

func (r *AnnouncementRepository) List(ctx context.Context) ([]*entities.Announcement, error) {
	var out []*entities.Announcement
	err := r.store.ViewAnnouncements(func(announcements []*entities.Announcement) error {
		out = append(out, announcements...)
		return nil
	})
	return out, err
}

func (r *AnnouncementRepository) GetByID(ctx context.Context, id string) (*entities.Announcement, error) {
	var found *entities.Announcement
	err := r.store.ViewAnnouncements(func(announcements []*entities.Announcement) error {
		for _, a := range announcements {
			if a.ID == id {
				clone := *a
				found = &clone
				return nil
			}
		}
		return entities.ErrAnnouncementNotFound
	})
	return found, err
}

func (r *AnnouncementRepository) Create(ctx context.Context, announcement *entities.Announcement) error {
	return r.store.UpdateAnnouncements(func(announcements []*entities.Announcement) ([]*entities.Announcement, error) {
		return append(announcements, announcement), nil
	})
}

func (r *AnnouncementRepository) Update(ctx context.Context, id string, update ports.AnnouncementUpdate) (*entities.Announcement, error) {
	var updated *entities.Announcement
	err := r.store.UpdateAnnouncements(func(announcements []*entities.Announcement) ([]*entities.Announcement, error) {
		for _, a := range announcements {
			if a.ID != id {
				continue
			}
			if update.Title != nil {
				a.Title = *update.Title
			}
			if update.Content != nil {
				a.Content = *update.Content
			}
			if update.IsActive != nil {
				a.IsActive = *update.IsActive
			}
			clone := *a
			updated = &clone
			return announcements, nil
		}
		return nil, entities.ErrAnnouncementNotFound
	})
	return updated, err
}

func (r *AnnouncementRepository) Delete(ctx context.Context, id string) error {
	return r.store.UpdateAnnouncements(func(announcements []*entities.Announcement) ([]*entities.Announcement, error) {
		for i, a := range announcements {
			if a.ID == id {
				return append(announcements[:i], announcements[i+1:]...), nil
			}
		}
		return nil, entities.ErrAnnouncementNotFound
	})
}

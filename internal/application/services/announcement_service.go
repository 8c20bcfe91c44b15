package services

import (
	"context"
	"fmt"

	"github.com/wishmas/core/internal/domain/entities"
	"github.com/wishmas/core/internal/infrastructure/logger"
	"github.com/wishmas/core/internal/ports"
)

// AnnouncementService manages developer announcements.
type AnnouncementService struct {
	announcementRepo ports.AnnouncementRepository
	logger           *logger.Logger
}

// NewAnnouncementService creates a new announcement service
func NewAnnouncementService(announcementRepo ports.AnnouncementRepository, appLogger *logger.Logger) *AnnouncementService {
	return &AnnouncementService{
		announcementRepo: announcementRepo,
		logger:           appLogger,
	}
}

// ListAnnouncements returns every announcement, active or not.
func (s *AnnouncementService) ListAnnouncements(ctx context.Context) ([]*entities.Announcement, error) {
	announcements, err := s.announcementRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list announcements: %w", err)
	}
	return announcements, nil
}

// ActiveAnnouncements returns only the announcements end users should see.
func (s *AnnouncementService) ActiveAnnouncements(ctx context.Context) ([]*entities.Announcement, error) {
	announcements, err := s.announcementRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list announcements: %w", err)
	}

	active := make([]*entities.Announcement, 0, len(announcements))
	for _, a := range announcements {
		if a.IsActive {
			active = append(active, a)
		}
	}
	return active, nil
}

// CreateAnnouncement creates a new announcement, active unless stated
// otherwise.
func (s *AnnouncementService) CreateAnnouncement(ctx context.Context, req ports.CreateAnnouncementRequest) (*entities.Announcement, error) {
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	announcement := &entities.Announcement{
		ID:        entities.NewID(),
		Title:     req.Title,
		Content:   req.Content,
		CreatedAt: entities.Timestamp(),
		IsActive:  isActive,
	}

	if err := s.announcementRepo.Create(ctx, announcement); err != nil {
		return nil, fmt.Errorf("failed to create announcement: %w", err)
	}

	s.logger.Info("Announcement created", "announcement_id", announcement.ID, "title", announcement.Title)
	return announcement, nil
}

// UpdateAnnouncement merges the provided fields into an existing announcement.
func (s *AnnouncementService) UpdateAnnouncement(ctx context.Context, id string, update ports.AnnouncementUpdate) (*entities.Announcement, error) {
	announcement, err := s.announcementRepo.Update(ctx, id, update)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Announcement updated", "announcement_id", announcement.ID)
	return announcement, nil
}

// DeleteAnnouncement removes an announcement.
func (s *AnnouncementService) DeleteAnnouncement(ctx context.Context, id string) error {
	if err := s.announcementRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("Announcement deleted", "announcement_id", id)
	return nil
}

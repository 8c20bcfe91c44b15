package services

import (
	"context"
	"fmt"

	"github.com/wishmas/core/internal/domain/entities"
	"github.com/wishmas/core/internal/infrastructure/logger"
	"github.com/wishmas/core/internal/ports"
)

// StatsService derives counters from the current collection sizes. Nothing
// is cached; the collections are small and memory-resident. Draft items
// that were never sent are not counted.
type StatsService struct {
	listRepo         ports.ListRepository
	userRepo         ports.UserRepository
	announcementRepo ports.AnnouncementRepository
	accountRepo      ports.AccountRepository
	logger           *logger.Logger
}

// NewStatsService creates a new stats service
func NewStatsService(
	listRepo ports.ListRepository,
	userRepo ports.UserRepository,
	announcementRepo ports.AnnouncementRepository,
	accountRepo ports.AccountRepository,
	appLogger *logger.Logger,
) *StatsService {
	return &StatsService{
		listRepo:         listRepo,
		userRepo:         userRepo,
		announcementRepo: announcementRepo,
		accountRepo:      accountRepo,
		logger:           appLogger,
	}
}

// Snapshot recomputes the stats from scratch.
func (s *StatsService) Snapshot(ctx context.Context) (*entities.Stats, error) {
	lists, err := s.listRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count lists: %w", err)
	}

	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}

	announcements, err := s.announcementRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count announcements: %w", err)
	}

	accounts, err := s.accountRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count accounts: %w", err)
	}

	totalItems := 0
	for _, l := range lists {
		totalItems += len(l.Items)
	}

	return &entities.Stats{
		TotalLists:         len(lists),
		TotalUsers:         len(users),
		TotalItems:         totalItems,
		TotalAnnouncements: len(announcements),
		TotalAccounts:      len(accounts),
	}, nil
}

package services

import (
	"context"
	"fmt"

	"github.com/wishmas/core/internal/domain/entities"
	"github.com/wishmas/core/internal/infrastructure/logger"
	"github.com/wishmas/core/internal/ports"
)

// ConfigService manages the shared per-role passwords.
type ConfigService struct {
	configRepo ports.ConfigRepository
	logger     *logger.Logger
}

// NewConfigService creates a new config service
func NewConfigService(configRepo ports.ConfigRepository, appLogger *logger.Logger) *ConfigService {
	return &ConfigService{
		configRepo: configRepo,
		logger:     appLogger,
	}
}

// Get returns the current config.
func (s *ConfigService) Get(ctx context.Context) (*entities.Config, error) {
	return s.configRepo.Get(ctx)
}

// UpdatePasswords merges the provided fields into the config and persists it.
func (s *ConfigService) UpdatePasswords(ctx context.Context, update ports.ConfigUpdate) (*entities.Config, error) {
	cfg, err := s.configRepo.Update(ctx, update)
	if err != nil {
		return nil, fmt.Errorf("failed to update passwords: %w", err)
	}

	s.logger.Info("Role passwords updated")
	return cfg, nil
}

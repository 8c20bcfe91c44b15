package services

import (
	"context"
	"fmt"

	"github.com/wishmas/core/internal/domain/entities"
	"github.com/wishmas/core/internal/infrastructure/logger"
	"github.com/wishmas/core/internal/ports"
)

// UserService manages the legacy user records. These are bookkeeping
// entries in the developer space; they play no part in login.
type UserService struct {
	userRepo ports.UserRepository
	logger   *logger.Logger
}

// NewUserService creates a new user service
func NewUserService(userRepo ports.UserRepository, appLogger *logger.Logger) *UserService {
	return &UserService{
		userRepo: userRepo,
		logger:   appLogger,
	}
}

// ListUsers returns every user record in insertion order.
func (s *UserService) ListUsers(ctx context.Context) ([]*entities.User, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// CreateUser creates a new user record.
func (s *UserService) CreateUser(ctx context.Context, req ports.CreateUserRequest) (*entities.User, error) {
	user := &entities.User{
		ID:        entities.NewID(),
		Username:  req.Username,
		Email:     req.Email,
		CreatedAt: entities.Timestamp(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info("User created", "user_id", user.ID, "username", user.Username)
	return user, nil
}

// UpdateUser merges the provided fields into an existing user record.
func (s *UserService) UpdateUser(ctx context.Context, id string, update ports.UserUpdate) (*entities.User, error) {
	user, err := s.userRepo.Update(ctx, id, update)
	if err != nil {
		return nil, err
	}

	s.logger.Info("User updated", "user_id", user.ID, "username", user.Username)
	return user, nil
}

// DeleteUser removes a user record.
func (s *UserService) DeleteUser(ctx context.Context, id string) error {
	if err := s.userRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("User deleted", "user_id", id)
	return nil
}

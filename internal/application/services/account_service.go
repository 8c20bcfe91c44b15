package services

import (
	"context"
	"fmt"

	"github.com/wishmas/core/internal/domain/entities"
	"github.com/wishmas/core/internal/infrastructure/logger"
	"github.com/wishmas/core/internal/ports"
)

// AccountService manages login accounts from the developer space.
type AccountService struct {
	accountRepo ports.AccountRepository
	logger      *logger.Logger
}

// NewAccountService creates a new account service
func NewAccountService(accountRepo ports.AccountRepository, appLogger *logger.Logger) *AccountService {
	return &AccountService{
		accountRepo: accountRepo,
		logger:      appLogger,
	}
}

// ListAccounts returns every account, passwords stripped.
func (s *AccountService) ListAccounts(ctx context.Context) ([]*entities.Account, error) {
	accounts, err := s.accountRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	out := make([]*entities.Account, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, a.WithoutPassword())
	}
	return out, nil
}

// CreateAccount creates a new account. The username must not collide with
// an existing one, case-insensitively.
func (s *AccountService) CreateAccount(ctx context.Context, req ports.CreateAccountRequest) (*entities.Account, error) {
	account := &entities.Account{
		ID:          entities.NewID(),
		Username:    req.Username,
		Password:    req.Password,
		DisplayName: req.DisplayName,
		Role:        req.Role,
		CreatedAt:   entities.Timestamp(),
	}

	if err := s.accountRepo.Create(ctx, account); err != nil {
		return nil, err
	}

	s.logger.Info("Account created", "account_id", account.ID, "username", account.Username, "role", account.Role)
	return account.WithoutPassword(), nil
}

// UpdateAccount merges the provided fields into an existing account.
func (s *AccountService) UpdateAccount(ctx context.Context, id string, update ports.AccountUpdate) (*entities.Account, error) {
	account, err := s.accountRepo.Update(ctx, id, update)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Account updated", "account_id", account.ID, "username", account.Username)
	return account.WithoutPassword(), nil
}

// DeleteAccount removes an account.
func (s *AccountService) DeleteAccount(ctx context.Context, id string) error {
	if err := s.accountRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("Account deleted", "account_id", id)
	return nil
}

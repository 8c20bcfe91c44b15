package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/wishmas/core/internal/domain/entities"
	"github.com/wishmas/core/internal/infrastructure/logger"
	"github.com/wishmas/core/internal/ports"
)

// AuthService validates logins. Two paths exist: a shared per-role password
// from the config singleton, and individual accounts created from the
// developer space. Passwords are stored and compared in plain text; this is
// a single-family deployment, not a hardened service.
type AuthService struct {
	configRepo  ports.ConfigRepository
	accountRepo ports.AccountRepository
	logger      *logger.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(configRepo ports.ConfigRepository, accountRepo ports.AccountRepository, appLogger *logger.Logger) *AuthService {
	return &AuthService{
		configRepo:  configRepo,
		accountRepo: accountRepo,
		logger:      appLogger,
	}
}

// LoginRequest carries either a role (shared password login) or a username
// (account login) plus the password.
type LoginRequest struct {
	Role     entities.Role `json:"role"`
	Username string        `json:"username"`
	Password string        `json:"password" validate:"required"`
}

// LoginResponse is returned on successful login.
type LoginResponse struct {
	Success  bool              `json:"success"`
	Role     entities.Role     `json:"role,omitempty"`
	Username string            `json:"username,omitempty"`
	Account  *entities.Account `json:"account,omitempty"`
}

// Login resolves the request against an account when the username matches
// one, falling back to the shared role password otherwise.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	if req.Username != "" {
		account, err := s.accountRepo.GetByUsername(ctx, req.Username)
		if err == nil {
			if account.Password != req.Password {
				return nil, entities.ErrInvalidCredentials
			}

			s.logger.LogUserAction(account.Username, "login", map[string]interface{}{"role": account.Role})
			return &LoginResponse{Success: true, Account: account.WithoutPassword()}, nil
		}
		if !errors.Is(err, entities.ErrAccountNotFound) {
			return nil, fmt.Errorf("failed to look up account: %w", err)
		}
	}

	if !req.Role.IsValid() {
		return nil, entities.ErrInvalidRole
	}

	cfg, err := s.configRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	expected, _ := cfg.PasswordForRole(req.Role)
	if req.Password != expected {
		return nil, entities.ErrInvalidCredentials
	}

	s.logger.LogUserAction(req.Username, "login", map[string]interface{}{"role": req.Role})
	return &LoginResponse{Success: true, Role: req.Role, Username: req.Username}, nil
}

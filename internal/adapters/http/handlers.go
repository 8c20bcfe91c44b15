package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/wishmas/core/internal/application/services"
	"github.com/wishmas/core/internal/domain/entities"
	"github.com/wishmas/core/internal/infrastructure/logger"
	"github.com/wishmas/core/internal/ports"
)

// AuthHandler handles login requests
type AuthHandler struct {
	authService *services.AuthService
	logger      *logger.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *services.AuthService, logger *logger.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
	}
}

// Login handles role and account logins
func (h *AuthHandler) Login(c echo.Context) error {
	var req services.LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	response, err := h.authService.Login(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, entities.ErrInvalidRole) {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid role")
		}
		if errors.Is(err, entities.ErrInvalidCredentials) {
			h.logger.Warn("Login rejected", "role", req.Role, "username", req.Username, "ip", c.RealIP())
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid credentials")
		}
		h.logger.Error("Login failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Login failed")
	}

	return c.JSON(http.StatusOK, response)
}

// ConfigHandler handles password config requests
type ConfigHandler struct {
	configService *services.ConfigService
	logger        *logger.Logger
}

// NewConfigHandler creates a new config handler
func NewConfigHandler(configService *services.ConfigService, logger *logger.Logger) *ConfigHandler {
	return &ConfigHandler{
		configService: configService,
		logger:        logger,
	}
}

// GetConfig returns the current role passwords
func (h *ConfigHandler) GetConfig(c echo.Context) error {
	cfg, err := h.configService.Get(c.Request().Context())
	if err != nil {
		h.logger.Error("Get config failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load config")
	}

	return c.JSON(http.StatusOK, cfg)
}

// UpdateConfig merges the provided passwords into the config
func (h *ConfigHandler) UpdateConfig(c echo.Context) error {
	var update ports.ConfigUpdate
	if err := c.Bind(&update); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	cfg, err := h.configService.UpdatePasswords(c.Request().Context(), update)
	if err != nil {
		h.logger.Error("Update config failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to update config")
	}

	return c.JSON(http.StatusOK, cfg)
}

// StatsHandler handles stats requests
type StatsHandler struct {
	statsService *services.StatsService
	logger       *logger.Logger
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(statsService *services.StatsService, logger *logger.Logger) *StatsHandler {
	return &StatsHandler{
		statsService: statsService,
		logger:       logger,
	}
}

// GetStats returns the derived collection counters
func (h *StatsHandler) GetStats(c echo.Context) error {
	stats, err := h.statsService.Snapshot(c.Request().Context())
	if err != nil {
		h.logger.Error("Get stats failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to compute stats")
	}

	return c.JSON(http.StatusOK, stats)
}

// Shared response types

type SuccessResponse struct {
	Success bool `json:"success"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

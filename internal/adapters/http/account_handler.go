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

// AccountHandler handles login account requests
type AccountHandler struct {
	accountService *services.AccountService
	logger         *logger.Logger
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(accountService *services.AccountService, logger *logger.Logger) *AccountHandler {
	return &AccountHandler{
		accountService: accountService,
		logger:         logger,
	}
}

// ListAccounts returns every account, passwords stripped
func (h *AccountHandler) ListAccounts(c echo.Context) error {
	accounts, err := h.accountService.ListAccounts(c.Request().Context())
	if err != nil {
		h.logger.Error("List accounts failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to retrieve accounts")
	}

	return c.JSON(http.StatusOK, accounts)
}

// CreateAccount creates a login account
func (h *AccountHandler) CreateAccount(c echo.Context) error {
	var req ports.CreateAccountRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	account, err := h.accountService.CreateAccount(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, entities.ErrUsernameTaken) {
			return echo.NewHTTPError(http.StatusConflict, "Username already taken")
		}
		h.logger.Error("Create account failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create account")
	}

	return c.JSON(http.StatusCreated, account)
}

// UpdateAccount merges the provided fields into an account
func (h *AccountHandler) UpdateAccount(c echo.Context) error {
	id := c.Param("id")

	var update ports.AccountUpdate
	if err := c.Bind(&update); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if err := c.Validate(&update); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	account, err := h.accountService.UpdateAccount(c.Request().Context(), id, update)
	if err != nil {
		if errors.Is(err, entities.ErrAccountNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Account not found")
		}
		if errors.Is(err, entities.ErrUsernameTaken) {
			return echo.NewHTTPError(http.StatusConflict, "Username already taken")
		}
		h.logger.Error("Update account failed", "error", err, "account_id", id)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to update account")
	}

	return c.JSON(http.StatusOK, account)
}

// DeleteAccount removes an account
func (h *AccountHandler) DeleteAccount(c echo.Context) error {
	id := c.Param("id")

	if err := h.accountService.DeleteAccount(c.Request().Context(), id); err != nil {
		if errors.Is(err, entities.ErrAccountNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Account not found")
		}
		h.logger.Error("Delete account failed", "error", err, "account_id", id)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to delete account")
	}

	return c.JSON(http.StatusOK, SuccessResponse{Success: true})
}

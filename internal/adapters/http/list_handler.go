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

// ListHandler handles wish list and draft item requests
type ListHandler struct {
	listService *services.ListService
	logger      *logger.Logger
}

// NewListHandler creates a new list handler
func NewListHandler(listService *services.ListService, logger *logger.Logger) *ListHandler {
	return &ListHandler{
		listService: listService,
		logger:      logger,
	}
}

// Request bodies. The draft endpoints carry the acting username in the
// body, the way the client has always sent it.

type addItemRequest struct {
	Username    string `json:"username" validate:"required"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Quantity    int    `json:"quantity" validate:"omitempty,min=1"`
	Image       string `json:"image"`
	ImageURL    string `json:"imageUrl"`
}

type updateItemRequest struct {
	Username    string  `json:"username" validate:"required"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Quantity    *int    `json:"quantity" validate:"omitempty,min=1"`
	Image       *string `json:"image"`
	ImageURL    *string `json:"imageUrl"`
}

type usernameRequest struct {
	Username string `json:"username" validate:"required"`
}

// ListLists returns every sent wish list
func (h *ListHandler) ListLists(c echo.Context) error {
	lists, err := h.listService.ListLists(c.Request().Context())
	if err != nil {
		h.logger.Error("List wish lists failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to retrieve lists")
	}

	if lists == nil {
		lists = []*entities.WishList{}
	}
	return c.JSON(http.StatusOK, lists)
}

// GetList returns a single sent wish list by id
func (h *ListHandler) GetList(c echo.Context) error {
	id := c.Param("id")

	list, err := h.listService.GetList(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, entities.ErrListNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "List not found")
		}
		h.logger.Error("Get list failed", "error", err, "list_id", id)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to retrieve list")
	}

	return c.JSON(http.StatusOK, list)
}

// CurrentList returns the caller's draft as a pseudo wish list
func (h *ListHandler) CurrentList(c echo.Context) error {
	username := c.QueryParam("username")
	if username == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Username required")
	}

	return c.JSON(http.StatusOK, h.listService.CurrentList(c.Request().Context(), username))
}

// AddItem appends an item to the caller's draft
func (h *ListHandler) AddItem(c echo.Context) error {
	var req addItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	item, err := h.listService.AddItem(c.Request().Context(), req.Username, ports.CreateItemRequest{
		Title:       req.Title,
		Description: req.Description,
		Quantity:    req.Quantity,
		Image:       req.Image,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		h.logger.Error("Add item failed", "error", err, "username", req.Username)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to add item")
	}

	return c.JSON(http.StatusCreated, item)
}

// UpdateItem merges the provided fields into a draft item
func (h *ListHandler) UpdateItem(c echo.Context) error {
	itemID := c.Param("id")

	var req updateItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	item, err := h.listService.UpdateItem(c.Request().Context(), req.Username, itemID, ports.ItemUpdate{
		Title:       req.Title,
		Description: req.Description,
		Quantity:    req.Quantity,
		Image:       req.Image,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		if errors.Is(err, entities.ErrItemNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Item not found")
		}
		h.logger.Error("Update item failed", "error", err, "item_id", itemID)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to update item")
	}

	return c.JSON(http.StatusOK, item)
}

// DeleteItem removes an item from the caller's draft
func (h *ListHandler) DeleteItem(c echo.Context) error {
	itemID := c.Param("id")

	var req usernameRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.listService.DeleteItem(c.Request().Context(), req.Username, itemID); err != nil {
		if errors.Is(err, entities.ErrItemNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Item not found")
		}
		h.logger.Error("Delete item failed", "error", err, "item_id", itemID)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to delete item")
	}

	return c.JSON(http.StatusOK, SuccessResponse{Success: true})
}

// SendList freezes the caller's draft into a persisted wish list
func (h *ListHandler) SendList(c echo.Context) error {
	var req usernameRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	list, err := h.listService.Send(c.Request().Context(), req.Username)
	if err != nil {
		if errors.Is(err, entities.ErrEmptyDraft) {
			return echo.NewHTTPError(http.StatusBadRequest, "Draft list is empty")
		}
		h.logger.Error("Send list failed", "error", err, "username", req.Username)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to send list")
	}

	return c.JSON(http.StatusCreated, list)
}

// DeleteList removes a single sent list
func (h *ListHandler) DeleteList(c echo.Context) error {
	id := c.Param("id")

	if err := h.listService.DeleteList(c.Request().Context(), id); err != nil {
		if errors.Is(err, entities.ErrListNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "List not found")
		}
		h.logger.Error("Delete list failed", "error", err, "list_id", id)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to delete list")
	}

	return c.JSON(http.StatusOK, SuccessResponse{Success: true})
}

// ResetLists wipes every sent list
func (h *ListHandler) ResetLists(c echo.Context) error {
	if err := h.listService.Reset(c.Request().Context()); err != nil {
		h.logger.Error("Reset lists failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to reset lists")
	}

	return c.JSON(http.StatusOK, SuccessResponse{Success: true})
}

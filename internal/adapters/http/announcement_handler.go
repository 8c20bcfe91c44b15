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

// AnnouncementHandler handles announcement requests
type AnnouncementHandler struct {
	announcementService *services.AnnouncementService
	logger              *logger.Logger
}

// NewAnnouncementHandler creates a new announcement handler
func NewAnnouncementHandler(announcementService *services.AnnouncementService, logger *logger.Logger) *AnnouncementHandler {
	return &AnnouncementHandler{
		announcementService: announcementService,
		logger:              logger,
	}
}

// ListAnnouncements returns every announcement
func (h *AnnouncementHandler) ListAnnouncements(c echo.Context) error {
	announcements, err := h.announcementService.ListAnnouncements(c.Request().Context())
	if err != nil {
		h.logger.Error("List announcements failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to retrieve announcements")
	}

	if announcements == nil {
		announcements = []*entities.Announcement{}
	}
	return c.JSON(http.StatusOK, announcements)
}

// ListActiveAnnouncements returns only the announcements end users see
func (h *AnnouncementHandler) ListActiveAnnouncements(c echo.Context) error {
	announcements, err := h.announcementService.ActiveAnnouncements(c.Request().Context())
	if err != nil {
		h.logger.Error("List active announcements failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to retrieve announcements")
	}

	return c.JSON(http.StatusOK, announcements)
}

// CreateAnnouncement creates an announcement
func (h *AnnouncementHandler) CreateAnnouncement(c echo.Context) error {
	var req ports.CreateAnnouncementRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	announcement, err := h.announcementService.CreateAnnouncement(c.Request().Context(), req)
	if err != nil {
		h.logger.Error("Create announcement failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create announcement")
	}

	return c.JSON(http.StatusCreated, announcement)
}

// UpdateAnnouncement merges the provided fields into an announcement
func (h *AnnouncementHandler) UpdateAnnouncement(c echo.Context) error {
	id := c.Param("id")

	var update ports.AnnouncementUpdate
	if err := c.Bind(&update); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	announcement, err := h.announcementService.UpdateAnnouncement(c.Request().Context(), id, update)
	if err != nil {
		if errors.Is(err, entities.ErrAnnouncementNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Announcement not found")
		}
		h.logger.Error("Update announcement failed", "error", err, "announcement_id", id)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to update announcement")
	}

	return c.JSON(http.StatusOK, announcement)
}

// DeleteAnnouncement removes an announcement
func (h *AnnouncementHandler) DeleteAnnouncement(c echo.Context) error {
	id := c.Param("id")

	if err := h.announcementService.DeleteAnnouncement(c.Request().Context(), id); err != nil {
		if errors.Is(err, entities.ErrAnnouncementNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Announcement not found")
		}
		h.logger.Error("Delete announcement failed", "error", err, "announcement_id", id)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to delete announcement")
	}

	return c.JSON(http.StatusOK, SuccessResponse{Success: true})
}

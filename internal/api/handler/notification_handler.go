package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/skyline-bms/apartment-portal/internal/core/service"
)

type NotificationHandler struct {
	notifications *service.NotificationService
}

func NewNotificationHandler(notifications *service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notifications: notifications}
}

// List returns the caller's notifications, newest first.
//
// @Summary      List notifications
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Notification
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/notifications [get]
func (h *NotificationHandler) List(c echo.Context) error {
	user, err := ctxProfile(c)
	if err != nil {
		return err
	}
	out, err := h.notifications.ListForApartment(c.Request().Context(), user.ApartmentNumber)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, out)
}

// MarkRead flags one notification as read.
//
// @Summary      Mark a notification read
// @Tags         notifications
// @Security     BearerAuth
// @Success      204  "marked"
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/notifications/{id}/read [put]
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	if err := h.notifications.MarkRead(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

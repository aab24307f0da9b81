package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/skyline-bms/apartment-portal/internal/core/domain"
	"github.com/skyline-bms/apartment-portal/internal/core/ports"
)

type UserHandler struct {
	users ports.UserRepository
}

func NewUserHandler(users ports.UserRepository) *UserHandler {
	return &UserHandler{users: users}
}

// List returns every account. Restricted to management roles by the router.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.UserProfile
// @Failure      403  {object}  map[string]string
// @Router       /api/v1/users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.users.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// Staff returns the building staff directory, the read-only view the
// reception desk uses.
//
// @Summary      Staff directory
// @Tags         users
// @Produce     json
// @Security     BearerAuth
// @Success      200  {array}   domain.UserProfile
// @Failure      403  {object}  map[string]string
// @Router       /api/v1/users/staff [get]
func (h *UserHandler) Staff(c echo.Context) error {
	staff, err := h.users.ListByRoles(c.Request().Context(),
		domain.RoleManager, domain.RoleAccountant, domain.RoleReceptionist)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, staff)
}

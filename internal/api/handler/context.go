package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/skyline-bms/apartment-portal/internal/core/domain"
)

// ctxProfile extracts the profile injected by the Auth middleware. Its
// presence proves the middleware ran; a handler reached without it is a
// routing mistake, answered with 401 rather than a panic.
func ctxProfile(c echo.Context) (*domain.UserProfile, error) {
	user, _ := c.Get("user").(*domain.UserProfile)
	if user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return user, nil
}

package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/skyline-bms/apartment-portal/internal/api/metrics"
	"github.com/skyline-bms/apartment-portal/internal/core/domain"
	"github.com/skyline-bms/apartment-portal/internal/core/ports"
	"github.com/skyline-bms/apartment-portal/internal/core/session"
)

// HeaderSessionID carries the opaque session id the shell received at login.
const HeaderSessionID = "X-Session-ID"

// Auth validates the bearer token against the authenticator and injects the
// resolved profile into the request context. A rejected token is a
// session-invalidation event: the presenting session is force-logged-out
// before the 401 goes back, so the shell lands on the login view with no
// stale credentials left behind.
func Auth(auth ports.Authenticator, sessions *session.Manager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			user, err := auth.CurrentUser(c.Request().Context(), parts[1])
			if err != nil {
				if err == domain.ErrAuthorizationDenied {
					forceLogout(c, sessions)
				}
				return err
			}

			c.Set("user", user)
			c.Set("username", user.Username)
			c.Set("role", user.Role)

			return next(c)
		}
	}
}

// forceLogout invalidates the session presented with the rejected request.
func forceLogout(c echo.Context, sessions *session.Manager) {
	sid := c.Request().Header.Get(HeaderSessionID)
	if sid == "" || sessions == nil {
		return
	}
	store, err := sessions.Session(c.Request().Context(), sid)
	if err != nil {
		return
	}
	store.Invalidate(c.Request().Context())
	metrics.ForcedLogoutsTotal.Inc()
}

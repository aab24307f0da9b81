package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/skyline-bms/apartment-portal/internal/api/metrics"
	"github.com/skyline-bms/apartment-portal/internal/api/middleware"
	"github.com/skyline-bms/apartment-portal/internal/core/domain"
	"github.com/skyline-bms/apartment-portal/internal/core/routing"
	"github.com/skyline-bms/apartment-portal/internal/core/session"
)

// NavigationHandler exposes the decision layer to the shell: the navigation
// list for the session's role and the per-navigation guard verdict.
type NavigationHandler struct {
	sessions *session.Manager
}

func NewNavigationHandler(sessions *session.Manager) *NavigationHandler {
	return &NavigationHandler{sessions: sessions}
}

type navigateRequest struct {
	Path string `json:"path" validate:"required,startswith=/"`
}

// snapshot resolves the session snapshot for the presenting shell. A request
// without a session id is an anonymous shell, not an error: it gets an empty,
// settled session so the guard can issue its login redirect.
func (h *NavigationHandler) snapshot(c echo.Context) (domain.Session, error) {
	sid := c.Request().Header.Get(middleware.HeaderSessionID)
	if sid == "" {
		return domain.Session{}, nil
	}
	store, err := h.sessions.Session(c.Request().Context(), sid)
	if err != nil {
		return domain.Session{}, err
	}
	return store.Snapshot(), nil
}

// Navigation returns the view-set for the session's role.
//
// @Summary      Navigation entries for the current role
// @Tags         navigation
// @Produce      json
// @Success      200  {object}  routing.RoleView
// @Failure      401  {object}  map[string]string
// @Router       /navigation [get]
func (h *NavigationHandler) Navigation(c echo.Context) error {
	snap, err := h.snapshot(c)
	if err != nil {
		return err
	}
	if !snap.IsAuthenticated() {
		return echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
	}
	return c.JSON(http.StatusOK, routing.ResolveSession(snap))
}

// Navigate runs one navigation attempt through the route guard and, when
// granted, the view dispatcher.
//
// @Summary      Decide a navigation attempt
// @Tags         navigation
// @Accept       json
// @Produce      json
// @Param        body  body      navigateRequest  true  "Requested path"
// @Success      200   {object}  routing.Decision
// @Failure      400   {object}  map[string]string
// @Router       /navigate [post]
func (h *NavigationHandler) Navigate(c echo.Context) error {
	var req navigateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	snap, err := h.snapshot(c)
	if err != nil {
		return err
	}

	var decision routing.Decision
	if routing.IsPublicPath(req.Path) {
		decision = routing.DecidePublic(snap, req.Path)
	} else {
		decision = routing.Decide(snap, req.Path)
	}

	roleLabel := ""
	if snap.IsAuthenticated() {
		roleLabel = string(snap.Role())
	}
	metrics.GuardDecisionsTotal.WithLabelValues(string(decision.Outcome), roleLabel).Inc()

	return c.JSON(http.StatusOK, decision)
}

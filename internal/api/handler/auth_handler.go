package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/skyline-bms/apartment-portal/internal/api/metrics"
	"github.com/skyline-bms/apartment-portal/internal/api/middleware"
	"github.com/skyline-bms/apartment-portal/internal/core/domain"
	"github.com/skyline-bms/apartment-portal/internal/core/ports"
	"github.com/skyline-bms/apartment-portal/internal/core/session"
)

type AuthHandler struct {
	sessions *session.Manager
	auth     ports.Authenticator
}

func NewAuthHandler(sessions *session.Manager, auth ports.Authenticator) *AuthHandler {
	return &AuthHandler{sessions: sessions, auth: auth}
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type registerRequest struct {
	Username        string `json:"username" validate:"required,min=3"`
	Password        string `json:"password" validate:"required,min=8"`
	Email           string `json:"email" validate:"required,email"`
	FullName        string `json:"full_name" validate:"required"`
	Phone           string `json:"phone,omitempty"`
	ApartmentNumber string `json:"apartment_number,omitempty"`
	Building        string `json:"building,omitempty"`
}

type loginResponse struct {
	SessionID string              `json:"session_id"`
	Token     string              `json:"token"`
	User      *domain.UserProfile `json:"user"`
}

// Login authenticates a user and opens a session.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	sid := uuid.NewString()
	store, err := h.sessions.Session(c.Request().Context(), sid)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		return err
	}

	user, token, err := store.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		h.sessions.Drop(sid)
		switch err {
		case domain.ErrInvalidCredentials:
			metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "incorrect username or password"})
		case domain.ErrUserInactive:
			metrics.LoginsTotal.WithLabelValues("inactive").Inc()
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "inactive user"})
		default:
			metrics.LoginsTotal.WithLabelValues("error").Inc()
			return err
		}
	}

	metrics.LoginsTotal.WithLabelValues("ok").Inc()
	return c.JSON(http.StatusOK, loginResponse{SessionID: sid, Token: token, User: user})
}

// Register creates a resident account.
//
// @Summary      Register a new resident
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      201   {object}  domain.UserProfile
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	user, err := h.auth.Register(c.Request().Context(), ports.RegisterInput{
		Username:        req.Username,
		Password:        req.Password,
		Email:           req.Email,
		FullName:        req.FullName,
		Phone:           req.Phone,
		ApartmentNumber: req.ApartmentNumber,
		Building:        req.Building,
	})
	if err != nil {
		if err == domain.ErrUserExists {
			return c.JSON(http.StatusConflict, map[string]string{"error": "username already registered"})
		}
		return err
	}

	return c.JSON(http.StatusCreated, user)
}

// Logout closes the presenting session. Safe to call on an already closed
// session.
//
// @Summary      Logout
// @Tags         auth
// @Success      204  "session closed"
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	sid := c.Request().Header.Get(middleware.HeaderSessionID)
	if sid != "" {
		store, err := h.sessions.Session(c.Request().Context(), sid)
		if err != nil {
			return err
		}
		store.Logout(c.Request().Context())
		h.sessions.Drop(sid)
	}
	return c.NoContent(http.StatusNoContent)
}

// Me returns the authenticated profile.
//
// @Summary      Current user
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.UserProfile
// @Failure      401  {object}  map[string]string
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	user, err := ctxProfile(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

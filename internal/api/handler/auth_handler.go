package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taking/backoffice/internal/api/metrics"
	"github.com/taking/backoffice/internal/core/domain"
	"github.com/taking/backoffice/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register creates a new account and returns its first access token.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "User registration details"
// @Success      200   {object}  tokenResponse
// @Failure      400   {object}  map[string]any
// @Failure      409   {object}  map[string]any
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	accessToken, err := h.authService.Register(c.Request().Context(), ports.RegisterInput{
		UserID:   req.UserID,
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	metrics.RegistrationsTotal.Inc()
	return c.JSON(http.StatusOK, tokenResponse{AccessToken: accessToken})
}

// Login authenticates a credential pair and returns a token plus subject
// details.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  ports.LoginResult
// @Failure      400   {object}  map[string]any
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		// A malformed body is indistinguishable from bad credentials.
		return domain.ErrInvalidCredentials
	}

	result, err := h.authService.Login(c.Request().Context(), req.UserID, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, result)
}

// CheckUserID reports whether a userid is still available.
//
// @Summary      Check userid availability
// @Tags         auth
// @Produce      json
// @Param        userid  path      string  true  "userid to check"
// @Success      200     {object}  resultResponse
// @Failure      409     {object}  map[string]any
// @Router       /api/auth/check/{userid} [get]
func (h *AuthHandler) CheckUserID(c echo.Context) error {
	if err := h.authService.CheckUserID(c.Request().Context(), c.Param("userid")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resultOK())
}

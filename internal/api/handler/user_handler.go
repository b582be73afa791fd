package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taking/backoffice/internal/core/ports"
)

type UserHandler struct {
	userService ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// List returns a page of users.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Param        page  query     int  false  "page number (1-based)"
// @Param        size  query     int  false  "page size"
// @Success      200   {object}  pagedResponse
// @Router       /api/v1/users [get]
func (h *UserHandler) List(c echo.Context) error {
	q := pagination(c)
	users, total, err := h.userService.List(c.Request().Context(), q.Page, q.Size)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, pagedResponse{Items: users, Total: total, Page: q.Page})
}

// Get returns a single user by sequence id.
//
// @Summary      Get user
// @Tags         users
// @Produce      json
// @Param        id   path      string  true  "user sequence id"
// @Success      200  {object}  domain.User
// @Failure      404  {object}  map[string]any
// @Router       /api/v1/users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	user, err := h.userService.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Update patches mutable profile fields.
//
// @Summary      Update user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id    path      string             true  "user sequence id"
// @Param        body  body      userUpdateRequest  true  "fields to update"
// @Success      200   {object}  domain.User
// @Router       /api/v1/users/{id} [patch]
func (h *UserHandler) Update(c echo.Context) error {
	var req userUpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.userService.Update(c.Request().Context(), c.Param("id"), ports.UserUpdateInput{
		Username: req.Username,
		Email:    req.Email,
		Enabled:  req.Enabled,
		Orgs:     req.Orgs,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Delete removes a user record.
//
// @Summary      Delete user
// @Tags         users
// @Produce      json
// @Param        id  path  string  true  "user sequence id"
// @Success      200 {object}  resultResponse
// @Router       /api/v1/users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	if err := h.userService.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resultOK())
}

package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taking/backoffice/internal/core/ports"
)

type RoleHandler struct {
	roleService ports.RoleService
}

func NewRoleHandler(roleService ports.RoleService) *RoleHandler {
	return &RoleHandler{roleService: roleService}
}

// @Summary      Create role
// @Tags         roles
// @Accept       json
// @Produce      json
// @Param        body  body      roleRequest  true  "role name (ROLE_ prefixed)"
// @Success      201   {object}  domain.RoleRecord
// @Failure      409   {object}  map[string]any
// @Router       /api/v1/roles [post]
func (h *RoleHandler) Create(c echo.Context) error {
	var req roleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	role, err := h.roleService.Create(c.Request().Context(), req.Name)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, role)
}

// @Summary      List roles
// @Tags         roles
// @Produce      json
// @Success      200  {array}  domain.RoleRecord
// @Router       /api/v1/roles [get]
func (h *RoleHandler) List(c echo.Context) error {
	roles, err := h.roleService.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, roles)
}

// @Summary      Get role
// @Tags         roles
// @Produce      json
// @Param        id   path      string  true  "role sequence id"
// @Success      200  {object}  domain.RoleRecord
// @Router       /api/v1/roles/{id} [get]
func (h *RoleHandler) Get(c echo.Context) error {
	role, err := h.roleService.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, role)
}

// @Summary      Delete role
// @Tags         roles
// @Produce      json
// @Param        id  path  string  true  "role sequence id"
// @Success      200 {object}  resultResponse
// @Router       /api/v1/roles/{id} [delete]
func (h *RoleHandler) Delete(c echo.Context) error {
	if err := h.roleService.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resultOK())
}

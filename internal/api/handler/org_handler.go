package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taking/backoffice/internal/core/ports"
)

type OrgHandler struct {
	orgService ports.OrgService
}

func NewOrgHandler(orgService ports.OrgService) *OrgHandler {
	return &OrgHandler{orgService: orgService}
}

// @Summary      Create organization
// @Tags         orgs
// @Accept       json
// @Produce      json
// @Param        body  body      orgRequest  true  "organization details"
// @Success      201   {object}  domain.Org
// @Failure      409   {object}  map[string]any
// @Router       /api/v1/orgs [post]
func (h *OrgHandler) Create(c echo.Context) error {
	var req orgRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	org, err := h.orgService.Create(c.Request().Context(), ports.OrgInput{
		Name:    req.Name,
		BizNum:  req.BizNum,
		Contact: req.Contact,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, org)
}

// @Summary      List organizations
// @Tags         orgs
// @Produce      json
// @Success      200  {object}  pagedResponse
// @Router       /api/v1/orgs [get]
func (h *OrgHandler) List(c echo.Context) error {
	q := pagination(c)
	orgs, total, err := h.orgService.List(c.Request().Context(), q.Page, q.Size)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, pagedResponse{Items: orgs, Total: total, Page: q.Page})
}

// @Summary      Get organization
// @Tags         orgs
// @Produce      json
// @Param        id   path      string  true  "org sequence id"
// @Success      200  {object}  domain.Org
// @Router       /api/v1/orgs/{id} [get]
func (h *OrgHandler) Get(c echo.Context) error {
	org, err := h.orgService.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, org)
}

// @Summary      Update organization
// @Tags         orgs
// @Accept       json
// @Produce      json
// @Param        id    path      string            true  "org sequence id"
// @Param        body  body      orgUpdateRequest  true  "fields to update"
// @Success      200   {object}  domain.Org
// @Router       /api/v1/orgs/{id} [patch]
func (h *OrgHandler) Update(c echo.Context) error {
	var req orgUpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	org, err := h.orgService.Update(c.Request().Context(), c.Param("id"), ports.OrgInput{
		Name:    req.Name,
		BizNum:  req.BizNum,
		Contact: req.Contact,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, org)
}

// @Summary      Delete organization
// @Tags         orgs
// @Produce      json
// @Param        id  path  string  true  "org sequence id"
// @Success      200 {object}  resultResponse
// @Router       /api/v1/orgs/{id} [delete]
func (h *OrgHandler) Delete(c echo.Context) error {
	if err := h.orgService.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resultOK())
}

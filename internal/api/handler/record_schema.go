package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

type pageQuery struct {
	Page int
	Size int
}

// pagination reads ?page= and ?size=; services clamp the values.
func pagination(c echo.Context) pageQuery {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	size, _ := strconv.Atoi(c.QueryParam("size"))
	return pageQuery{Page: page, Size: size}
}

// pagedResponse wraps list results with the total record count.
type pagedResponse struct {
	Items any   `json:"items"`
	Total int64 `json:"total"`
	Page  int   `json:"page"`
}

type userUpdateRequest struct {
	Username *string  `json:"username" validate:"omitempty,min=2,max=10"`
	Email    *string  `json:"email"    validate:"omitempty,email"`
	Enabled  *bool    `json:"enabled"`
	Orgs     []string `json:"orgs"`
}

type orgRequest struct {
	Name    string `json:"name" validate:"required"`
	BizNum  string `json:"biznum"`
	Contact string `json:"contact"`
}

type orgUpdateRequest struct {
	Name    string `json:"name"`
	BizNum  string `json:"biznum"`
	Contact string `json:"contact"`
}

type roleRequest struct {
	Name string `json:"name" validate:"required"`
}

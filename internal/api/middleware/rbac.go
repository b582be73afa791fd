package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/taking/backoffice/internal/core/domain"
)

// RequireAuth rejects requests that reach it without an established
// identity. Used for protected routes with no particular role demand.
func RequireAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, ok := IdentityFrom(c); !ok {
				return domain.ErrUnauthorized
			}
			return next(c)
		}
	}
}

// RequireRoles enforces the route's role set. Role names are given without
// the ROLE_ prefix ("ADMIN", "USER"). A missing identity is an
// authentication problem (401); an identity outside the set is an
// authorization problem (403). The two outcomes stay distinct.
func RequireRoles(names ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(names))
	for _, n := range names {
		allowed[n] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id, ok := IdentityFrom(c)
			if !ok {
				return domain.ErrUnauthorized
			}
			if _, ok := allowed[id.Role.Short()]; !ok {
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}

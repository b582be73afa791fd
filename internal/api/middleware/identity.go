package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/taking/backoffice/internal/core/domain"
)

// identityKey is the echo context key the gatekeeper stores the verified
// identity under. echo contexts are per-request, so an identity set here
// cannot leak into another in-flight request.
const identityKey = "auth.identity"

// Identity is the request-scoped record of the verified subject. It exists
// only between the gatekeeper establishing it and the request completing.
type Identity struct {
	UserID string
	Name   string
	Role   domain.Role
}

// SetIdentity installs the verified identity for the current request.
func SetIdentity(c echo.Context, id *Identity) {
	c.Set(identityKey, id)
}

// ClearIdentity removes any identity from the current request.
func ClearIdentity(c echo.Context) {
	c.Set(identityKey, (*Identity)(nil))
}

// IdentityFrom returns the identity established by the gatekeeper, or
// (nil, false) for an anonymous request.
func IdentityFrom(c echo.Context) (*Identity, bool) {
	id, ok := c.Get(identityKey).(*Identity)
	if !ok || id == nil {
		return nil, false
	}
	return id, true
}

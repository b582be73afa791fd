package domain

import "errors"

// Sentinel errors shared across services, repositories and the HTTP boundary.
// The error handler maps each to a response status; messages returned to
// clients are fixed there, not taken from these errors.
var (
	// ErrInvalidCredentials covers a missing login payload, an unknown
	// userid and a wrong password alike, so responses cannot be used to
	// enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrDuplicateSubject means the requested userid or username is taken.
	ErrDuplicateSubject = errors.New("userid already exists")

	// ErrConfiguration means a bootstrap-provided record (such as the
	// default role) is missing and the system cannot serve the request.
	ErrConfiguration = errors.New("required bootstrap data missing")

	// ErrAuthenticationFailed means a bearer token was presented but could
	// not be validated or its subject no longer resolves.
	ErrAuthenticationFailed = errors.New("authentication failed")

	// ErrUnauthorized means a protected route was requested without any
	// established identity.
	ErrUnauthorized = errors.New("authentication required")

	// ErrForbidden means the established identity lacks a required role.
	ErrForbidden = errors.New("access forbidden")

	ErrUserNotFound = errors.New("user not found")
	ErrRoleNotFound = errors.New("role not found")
	ErrOrgNotFound  = errors.New("organization not found")

	ErrDuplicateRole = errors.New("role already exists")
	ErrDuplicateOrg  = errors.New("organization already exists")

	// ErrInvalidRoleName rejects role names outside the ROLE_<NAME>
	// convention.
	ErrInvalidRoleName = errors.New("role name must use the ROLE_ prefix")
)

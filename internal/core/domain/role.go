package domain

import "strings"

// Role is an authority label carried in tokens and consulted by the access
// policy. Names follow the ROLE_<NAME> convention.
type Role string

const (
	RoleAdmin Role = "ROLE_ADMIN"
	RoleUser  Role = "ROLE_USER"
)

const rolePrefix = "ROLE_"

// Known reports whether r is one of the built-in roles that must exist
// before any login can succeed.
func (r Role) Known() bool {
	return r == RoleAdmin || r == RoleUser
}

// Short returns the role name without the ROLE_ prefix, the form used by
// the access policy ("ADMIN", "USER").
func (r Role) Short() string {
	return strings.TrimPrefix(string(r), rolePrefix)
}

// ValidName reports whether s is an acceptable role name for a new role
// record: non-empty and carrying the ROLE_ prefix.
func ValidName(s string) bool {
	return strings.HasPrefix(s, rolePrefix) && len(s) > len(rolePrefix)
}

// RoleRecord is a stored role definition. The built-in roles are seeded at
// bootstrap; additional roles may be created through the API.
type RoleRecord struct {
	ID   string `json:"roleSeq"`
	Name string `json:"roleName"`
}

package domain

import "time"

// User models a back-office account. The password hash never leaves the
// server; JSON field names follow the public API contract.
type User struct {
	ID           string    `json:"userSeq"`
	UserID       string    `json:"userId"`
	Username     string    `json:"userName"`
	Email        string    `json:"userEmail,omitempty"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"userRole"`
	Enabled      bool      `json:"userEnabled"`
	Orgs         []string  `json:"userOrgs,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
}

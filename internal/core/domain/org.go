package domain

import "time"

// Org is an organization users can belong to. A DEFAULT org is seeded at
// bootstrap.
type Org struct {
	ID        string    `json:"orgSeq"`
	Name      string    `json:"orgName"`
	BizNum    string    `json:"orgBiznum,omitempty"`
	Contact   string    `json:"orgContact,omitempty"`
	Enabled   bool      `json:"orgEnabled"`
	CreatedAt time.Time `json:"created_at"`
}

package domain

import "time"

type User struct {
	ID            uint      `json:"id"`
	Email         string    `json:"email"`
	Password      string    `json:"-"`
	Name          string    `json:"name"`
	Active        bool      `json:"active"`
	EmailVerified bool      `json:"email_verified"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// RoleAssignment is one role held by a user, optionally scoped to a single
// event. EventID == nil means the role applies globally.
type RoleAssignment struct {
	RoleKey     string   `json:"role_key"`
	RoleName    string   `json:"role_name"`
	EventID     *uint    `json:"event_id,omitempty"`
	Permissions []string `json:"permissions"`
}

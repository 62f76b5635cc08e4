package domain

import "time"

// Invitation is a one-time token binding an email to a role, optionally
// scoped to an event. Consuming it creates or updates a user and grants the
// bound role assignment.
type Invitation struct {
	ID        uint       `json:"id"`
	Email     string     `json:"email"`
	RoleKey   string     `json:"role_key"`
	EventID   *uint      `json:"event_id,omitempty"`
	Token     string     `json:"-"`
	CreatedBy uint       `json:"created_by"`
	ExpiresAt time.Time  `json:"expires_at"`
	UsedAt    *time.Time `json:"used_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

func (i Invitation) Used() bool {
	return i.UsedAt != nil
}

func (i Invitation) Expired(now time.Time) bool {
	return i.ExpiresAt.Before(now)
}

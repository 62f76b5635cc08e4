package domain

import "time"

// Judge is an event's scoring panel member. The linked user account receives
// the judge role through an invitation; the panel entry itself carries the
// public profile shown on score sheets.
type Judge struct {
	ID      uint `json:"id"`
	EventID uint `json:"event_id"`
	UserID  uint `json:"user_id"`

	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Country     string `json:"country,omitempty"`
	City        string `json:"city,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// JudgeUpdate carries the optional fields of a judge PATCH. A non-nil
// EventID moves the judge to another event's panel.
type JudgeUpdate struct {
	Name        *string
	Description *string
	Country     *string
	City        *string
	EventID     *uint
}

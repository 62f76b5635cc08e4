package domain

import "time"

type Dancer struct {
	ID        uint      `json:"id"`
	StudioID  uint      `json:"studio_id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	BirthDate time.Time `json:"birth_date"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DancerUpdate carries the optional fields of a dancer PATCH.
type DancerUpdate struct {
	FirstName *string
	LastName  *string
	BirthDate *time.Time
}

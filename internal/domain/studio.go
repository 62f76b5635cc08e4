package domain

import "time"

type RegistrationStatus string

const (
	RegistrationPending  RegistrationStatus = "PENDING"
	RegistrationApproved RegistrationStatus = "APPROVED"
	RegistrationRejected RegistrationStatus = "REJECTED"
)

func (s RegistrationStatus) Valid() bool {
	switch s {
	case RegistrationPending, RegistrationApproved, RegistrationRejected:
		return true
	}
	return false
}

type Studio struct {
	ID              uint                     `json:"id"`
	EventID         uint                     `json:"event_id"`
	Name            string                   `json:"name"`
	Country         string                   `json:"country,omitempty"`
	City            string                   `json:"city,omitempty"`
	DirectorName    string                   `json:"director_name,omitempty"`
	DirectorPhone   string                   `json:"director_phone,omitempty"`
	InvoiceDetails  string                   `json:"invoice_details,omitempty"`
	LogoPath        string                   `json:"logo_path,omitempty"`
	Representatives []StudioRepresentative   `json:"representatives,omitempty"`
	Registrations   []StudioEventRegistration `json:"registrations,omitempty"`
	CreatedAt       time.Time                `json:"created_at"`
	UpdatedAt       time.Time                `json:"updated_at"`
}

// StudioUpdate carries the optional fields of a studio PATCH.
type StudioUpdate struct {
	Name           *string
	Country        *string
	City           *string
	DirectorName   *string
	DirectorPhone  *string
	InvoiceDetails *string
}

// StudioRepresentative is a user acting on behalf of a studio. Only active
// representatives count for access checks and role grants.
type StudioRepresentative struct {
	ID       uint   `json:"id"`
	StudioID uint   `json:"studio_id"`
	UserID   uint   `json:"user_id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Active   bool   `json:"active"`
}

type StudioEventRegistration struct {
	ID                  uint               `json:"id"`
	StudioID            uint               `json:"studio_id"`
	EventID             uint               `json:"event_id"`
	Status              RegistrationStatus `json:"status"`
	CanEditDuringReview bool               `json:"can_edit_during_review"`
	CreatedAt           time.Time          `json:"created_at"`
	UpdatedAt           time.Time          `json:"updated_at"`
}

// StudioAccess is the result of resolving a caller against a studio: whether
// the studio exists (live), whether the caller is one of its active
// representatives, and the state of its registration for its event.
type StudioAccess struct {
	Studio              Studio
	EventStage          EventStage
	IsRepresentative    bool
	Status              RegistrationStatus
	CanEditDuringReview bool
}

func (a StudioAccess) Approved() bool {
	return a.Status == RegistrationApproved
}

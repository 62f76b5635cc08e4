package domain

import "time"

// EventStage is an event's lifecycle phase. It is the single source of truth
// for which studio/dancer/performance mutations are currently legal. Stage
// changes are admin-driven edits of the event; there are no automatic or
// timed transitions.
type EventStage string

const (
	StagePreRegistration  EventStage = "PRE_REGISTRATION"
	StageRegistrationOpen EventStage = "REGISTRATION_OPEN"
	StageDataReview       EventStage = "DATA_REVIEW"
	StageFinalized        EventStage = "FINALIZED"
	StageEnded            EventStage = "ENDED"
)

func (s EventStage) Valid() bool {
	switch s {
	case StagePreRegistration, StageRegistrationOpen, StageDataReview, StageFinalized, StageEnded:
		return true
	}
	return false
}

type Event struct {
	ID        uint       `json:"id"`
	Name      string     `json:"name"`
	Stage     EventStage `json:"stage"`
	StartsAt  time.Time  `json:"starts_at"`
	EndsAt    time.Time  `json:"ends_at"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// EventUpdate carries the optional fields of an event PATCH. Nil means
// "leave unchanged".
type EventUpdate struct {
	Name     *string
	Stage    *EventStage
	StartsAt *time.Time
	EndsAt   *time.Time
}

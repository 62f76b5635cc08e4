package request

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/dancefest/api/internal/domain"
)

var eventStages = []interface{}{
	string(domain.StagePreRegistration),
	string(domain.StageRegistrationOpen),
	string(domain.StageDataReview),
	string(domain.StageFinalized),
	string(domain.StageEnded),
}

type CreateEventRequest struct {
	Name     string    `json:"name"`
	Stage    string    `json:"stage"`
	StartsAt time.Time `json:"starts_at"`
	EndsAt   time.Time `json:"ends_at"`
}

func (req *CreateEventRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.Stage, validation.In(eventStages...)),
		validation.Field(&req.StartsAt, validation.Required),
		validation.Field(&req.EndsAt, validation.Required, validation.Min(req.StartsAt)),
	)
}

type UpdateEventRequest struct {
	Name     *string    `json:"name"`
	Stage    *string    `json:"stage"`
	StartsAt *time.Time `json:"starts_at"`
	EndsAt   *time.Time `json:"ends_at"`
}

func (req *UpdateEventRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.NilOrNotEmpty, validation.Length(2, 100)),
		validation.Field(&req.Stage, validation.NilOrNotEmpty, validation.In(eventStages...)),
	)
}

func (req *UpdateEventRequest) ToUpdate() domain.EventUpdate {
	update := domain.EventUpdate{
		Name:     req.Name,
		StartsAt: req.StartsAt,
		EndsAt:   req.EndsAt,
	}
	if req.Stage != nil {
		stage := domain.EventStage(*req.Stage)
		update.Stage = &stage
	}

	return update
}

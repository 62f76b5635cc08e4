package request

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/dancefest/api/internal/domain"
)

type CreateDancerRequest struct {
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	BirthDate time.Time `json:"birth_date"`
}

func (req *CreateDancerRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.FirstName, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.LastName, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.BirthDate, validation.Required, validation.Max(time.Now())),
	)
}

type UpdateDancerRequest struct {
	FirstName *string    `json:"first_name"`
	LastName  *string    `json:"last_name"`
	BirthDate *time.Time `json:"birth_date"`
}

func (req *UpdateDancerRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.FirstName, validation.NilOrNotEmpty, validation.Length(1, 100)),
		validation.Field(&req.LastName, validation.NilOrNotEmpty, validation.Length(1, 100)),
	)
}

func (req *UpdateDancerRequest) ToUpdate() domain.DancerUpdate {
	return domain.DancerUpdate{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		BirthDate: req.BirthDate,
	}
}

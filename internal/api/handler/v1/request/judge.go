package request

import (
	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/dancefest/api/internal/domain"
)

type CreateJudgeRequest struct {
	UserID      uint   `json:"user_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Country     string `json:"country"`
	City        string `json:"city"`
}

func (req *CreateJudgeRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.UserID, validation.Required),
		validation.Field(&req.Name, validation.Required, validation.Length(1, 200)),
	)
}

type UpdateJudgeRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Country     *string `json:"country"`
	City        *string `json:"city"`
	EventID     *uint   `json:"event_id"`
}

func (req *UpdateJudgeRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.NilOrNotEmpty, validation.Length(1, 200)),
	)
}

func (req *UpdateJudgeRequest) ToUpdate() domain.JudgeUpdate {
	return domain.JudgeUpdate{
		Name:        req.Name,
		Description: req.Description,
		Country:     req.Country,
		City:        req.City,
		EventID:     req.EventID,
	}
}

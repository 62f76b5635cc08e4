package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/dancefest/api/internal/domain"
)

type CreateInvitationRequest struct {
	Email   string `json:"email"`
	RoleKey string `json:"role_key"`
	EventID *uint  `json:"event_id"`
}

func (req *CreateInvitationRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Email, validation.Required, is.Email),
		validation.Field(&req.RoleKey, validation.Required, validation.In(
			domain.RoleAdmin,
			domain.RoleRepresentative,
			domain.RoleJudge,
			domain.RoleModerator,
		)),
	)
}

type AcceptInvitationRequest struct {
	Token           string `json:"token"`
	Name            string `json:"name"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

func (req *AcceptInvitationRequest) Validate() error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.Token, validation.Required, is.UUID),
		validation.Field(&req.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.Password, validation.Required),
		validation.Field(&req.ConfirmPassword, validation.Required),
	)
	if err != nil {
		return err
	}

	if ok, _ := passwordExp.MatchString(req.Password); !ok {
		return errInvalidPassword
	}

	if req.Password != req.ConfirmPassword {
		return errConfirmPasswordMismatch
	}

	return nil
}

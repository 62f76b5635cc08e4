package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/dancefest/api/internal/domain"
)

type RegisterStudioRequest struct {
	Name           string `json:"name"`
	Country        string `json:"country"`
	City           string `json:"city"`
	DirectorName   string `json:"director_name"`
	DirectorPhone  string `json:"director_phone"`
	InvoiceDetails string `json:"invoice_details"`

	// Contact details of the representative the studio is registered under.
	// Defaults to the caller's own name and email when omitted.
	RepresentativeName  string `json:"representative_name"`
	RepresentativeEmail string `json:"representative_email"`
}

func (req *RegisterStudioRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.Country, validation.Length(0, 100)),
		validation.Field(&req.City, validation.Length(0, 100)),
		validation.Field(&req.DirectorName, validation.Length(0, 100)),
		// is.Email skips empty values, so an omitted email still defaults to
		// the caller's own.
		validation.Field(&req.RepresentativeEmail, is.Email),
	)
}

type UpdateStudioRequest struct {
	Name           *string `json:"name"`
	Country        *string `json:"country"`
	City           *string `json:"city"`
	DirectorName   *string `json:"director_name"`
	DirectorPhone  *string `json:"director_phone"`
	InvoiceDetails *string `json:"invoice_details"`
}

func (req *UpdateStudioRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.NilOrNotEmpty, validation.Length(2, 100)),
	)
}

func (req *UpdateStudioRequest) ToUpdate() domain.StudioUpdate {
	return domain.StudioUpdate{
		Name:           req.Name,
		Country:        req.Country,
		City:           req.City,
		DirectorName:   req.DirectorName,
		DirectorPhone:  req.DirectorPhone,
		InvoiceDetails: req.InvoiceDetails,
	}
}

type SetRegistrationStatusRequest struct {
	Status              string `json:"status"`
	CanEditDuringReview *bool  `json:"can_edit_during_review"`
}

func (req *SetRegistrationStatusRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Status, validation.Required, validation.In(
			string(domain.RegistrationPending),
			string(domain.RegistrationApproved),
			string(domain.RegistrationRejected),
		)),
	)
}

type UpdateRepresentativeRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

func (req *UpdateRepresentativeRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.NilOrNotEmpty, validation.Length(1, 100)),
		validation.Field(&req.Email, validation.NilOrNotEmpty, is.Email),
	)
}

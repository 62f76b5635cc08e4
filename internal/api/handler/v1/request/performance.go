package request

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/dancefest/api/internal/domain"
)

var errNoParticipants = errors.New("a performance needs at least one dancer")

type CreatePerformanceRequest struct {
	Title        string `json:"title"`
	DurationSec  int    `json:"duration_sec"`
	OrderOnStage int    `json:"order_on_stage"`
	CategoryID   uint   `json:"category_id"`
	AgeGroupID   uint   `json:"age_group_id"`
	FormatID     uint   `json:"format_id"`
	DancerIDs    []uint `json:"dancer_ids"`
}

func (req *CreatePerformanceRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Title, validation.Required, validation.Length(1, 200)),
		validation.Field(&req.DurationSec, validation.Required, validation.Min(1), validation.Max(3600)),
		validation.Field(&req.OrderOnStage, validation.Min(0)),
		validation.Field(&req.CategoryID, validation.Required),
		validation.Field(&req.AgeGroupID, validation.Required),
		validation.Field(&req.FormatID, validation.Required),
		validation.Field(&req.DancerIDs, validation.Required, validation.Length(1, 0)),
	)
}

type UpdatePerformanceRequest struct {
	Title        *string `json:"title"`
	DurationSec  *int    `json:"duration_sec"`
	OrderOnStage *int    `json:"order_on_stage"`
	CategoryID   *uint   `json:"category_id"`
	AgeGroupID   *uint   `json:"age_group_id"`
	FormatID     *uint   `json:"format_id"`

	// nil leaves the participant list unchanged; an empty list is rejected.
	DancerIDs []uint `json:"dancer_ids"`
}

func (req *UpdatePerformanceRequest) Validate() error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.Title, validation.NilOrNotEmpty, validation.Length(1, 200)),
		validation.Field(&req.DurationSec, validation.NilOrNotEmpty, validation.Min(1), validation.Max(3600)),
	)
	if err != nil {
		return err
	}

	if req.DancerIDs != nil && len(req.DancerIDs) == 0 {
		return errNoParticipants
	}

	return nil
}

func (req *UpdatePerformanceRequest) ToUpdate() domain.PerformanceUpdate {
	return domain.PerformanceUpdate{
		Title:        req.Title,
		DurationSec:  req.DurationSec,
		OrderOnStage: req.OrderOnStage,
		CategoryID:   req.CategoryID,
		AgeGroupID:   req.AgeGroupID,
		FormatID:     req.FormatID,
		DancerIDs:    req.DancerIDs,
	}
}

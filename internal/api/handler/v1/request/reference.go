package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type CreateCategoryRequest struct {
	Name string `json:"name"`
}

func (req *CreateCategoryRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 100)),
	)
}

type UpdateCategoryRequest struct {
	Name string `json:"name"`
}

func (req *UpdateCategoryRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 100)),
	)
}

type CreateAgeGroupRequest struct {
	Name   string `json:"name"`
	MinAge int    `json:"min_age"`
	MaxAge int    `json:"max_age"`
}

func (req *CreateAgeGroupRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.MinAge, validation.Min(0), validation.Max(120)),
		validation.Field(&req.MaxAge, validation.Required, validation.Min(req.MinAge), validation.Max(120)),
	)
}

type UpdateAgeGroupRequest struct {
	Name   *string `json:"name"`
	MinAge *int    `json:"min_age"`
	MaxAge *int    `json:"max_age"`
}

func (req *UpdateAgeGroupRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.NilOrNotEmpty, validation.Length(1, 100)),
		validation.Field(&req.MinAge, validation.Min(0), validation.Max(120)),
		validation.Field(&req.MaxAge, validation.Min(0), validation.Max(120)),
	)
}

type CreateFormatRequest struct {
	Name string `json:"name"`
}

func (req *CreateFormatRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 100)),
	)
}

type UpdateFormatRequest struct {
	Name string `json:"name"`
}

func (req *UpdateFormatRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 100)),
	)
}

package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dancefest/api/internal/api/handler/v1/request"
	"github.com/dancefest/api/internal/api/handler/v1/response"
	"github.com/dancefest/api/internal/domain"
	"github.com/dancefest/api/internal/service"
)

type ReferenceService interface {
	CreateCategory(ctx context.Context, category domain.DanceCategory) (domain.DanceCategory, error)
	ListCategories(ctx context.Context, eventID uint) ([]domain.DanceCategory, error)
	GetCategory(ctx context.Context, eventID, id uint) (domain.DanceCategory, error)
	UpdateCategory(ctx context.Context, eventID, id uint, name string) (domain.DanceCategory, error)
	DeleteCategory(ctx context.Context, eventID, id uint) error
	CreateAgeGroup(ctx context.Context, group domain.AgeGroup) (domain.AgeGroup, error)
	ListAgeGroups(ctx context.Context, eventID uint) ([]domain.AgeGroup, error)
	GetAgeGroup(ctx context.Context, eventID, id uint) (domain.AgeGroup, error)
	UpdateAgeGroup(ctx context.Context, eventID, id uint, name *string, minAge, maxAge *int) (domain.AgeGroup, error)
	DeleteAgeGroup(ctx context.Context, eventID, id uint) error
	CreateFormat(ctx context.Context, format domain.DanceFormat) (domain.DanceFormat, error)
	ListFormats(ctx context.Context, eventID uint) ([]domain.DanceFormat, error)
	GetFormat(ctx context.Context, eventID, id uint) (domain.DanceFormat, error)
	UpdateFormat(ctx context.Context, eventID, id uint, name string) (domain.DanceFormat, error)
	DeleteFormat(ctx context.Context, eventID, id uint) error
}

type ReferenceHandler struct {
	svc ReferenceService
}

func NewReferenceHandler(svc ReferenceService) *ReferenceHandler {
	return &ReferenceHandler{
		svc: svc,
	}
}

// renderReferenceErr translates the errors shared by all reference-data
// operations. It reports whether the error was handled.
func renderReferenceErr(ctx *gin.Context, err error, entity string, id uint) bool {
	switch {
	case errors.Is(err, service.ErrEventNotFound):
		response.RenderErr(ctx, response.ErrNotFound("event", "id", ctx.Param("eventID")))
	case errors.Is(err, service.ErrReferenceNotFound):
		response.RenderErr(ctx, response.ErrNotFound(entity, "id", id))
	case errors.Is(err, service.ErrReferenceNameExists):
		response.RenderErr(ctx, response.ErrConflict(service.ErrReferenceNameExists))
	case errors.Is(err, service.ErrReferenceInUse):
		response.RenderErr(ctx, response.ErrConflict(service.ErrReferenceInUse))
	default:
		return false
	}

	return true
}

// HandleCreateCategory godoc
// @Summary      Create a dance category for an event
// @Tags         reference-data
// @Accept       json
// @Produce      json
// @Param        eventID  path      int true "event ID"
// @Param        request  body      request.CreateCategoryRequest true "request body"
// @Success      201      {object}  domain.DanceCategory
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      409      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /events/{eventID}/categories [post]
// @Security     BearerAuth
func (h *ReferenceHandler) HandleCreateCategory(ctx *gin.Context) {
	eventID, err := parseUintParam(ctx, "eventID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	var req request.CreateCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	category, err := h.svc.CreateCategory(ctx.Request.Context(), domain.DanceCategory{
		EventID: eventID,
		Name:    req.Name,
	})
	if err != nil {
		if renderReferenceErr(ctx, err, "category", 0) {
			return
		}

		err = fmt.Errorf("v1.HandleCreateCategory -> h.svc.CreateCategory -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(ctx, err))
		return
	}

	ctx.JSON(http.StatusCreated, category)
}

// HandleListCategories godoc
// @Summary      List an event's dance categories
// @Tags         reference-data
// @Produce      json
// @Param        eventID  path      int true "event ID"
// @Success      200      {array}   domain.DanceCategory
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /events/{eventID}/categories [get]
// @Security     BearerAuth
func (h *ReferenceHandler) HandleListCategories(ctx *gin.Context) {
	eventID, err := parseUintParam(ctx, "eventID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	categories, err := h.svc.ListCategories(ctx.Request.Context(), eventID)
	if err != nil {
		if renderReferenceErr(ctx, err, "category", 0) {
			return
		}

		err = fmt.Errorf("v1.HandleListCategories -> h.svc.ListCategories -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, categories)
}

// HandleGetCategory godoc
// @Summary      Get a dance category
// @Tags         reference-data
// @Produce      json
// @Param        eventID     path      int true "event ID"
// @Param        categoryID  path      int true "category ID"
// @Success      200         {object}  domain.DanceCategory
// @Failure      400         {object}  response.Err
// @Failure      401         {object}  response.Err
// @Failure      404         {object}  response.Err
// @Failure      500         {object}  response.Err
// @Router       /events/{eventID}/categories/{categoryID} [get]
// @Security     BearerAuth
func (h *ReferenceHandler) HandleGetCategory(ctx *gin.Context) {
	eventID, err := parseUintParam(ctx, "eventID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	categoryID, err := parseUintParam(ctx, "categoryID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	category, err := h.svc.GetCategory(ctx.Request.Context(), eventID, categoryID)
	if err != nil {
		if renderReferenceErr(ctx, err, "category", categoryID) {
			return
		}

		err = fmt.Errorf("v1.HandleGetCategory -> h.svc.GetCategory -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, category)
}

// HandleUpdateCategory godoc
// @Summary      Rename a dance category
// @Tags         reference-data
// @Accept       json
// @Produce      json
// @Param        eventID     path      int true "event ID"
// @Param        categoryID  path      int true "category ID"
// @Param        request     body      request.UpdateCategoryRequest true "request body"
// @Success      200         {object}  domain.DanceCategory
// @Failure      400         {object}  response.Err
// @Failure      401         {object}  response.Err
// @Failure      403         {object}  response.Err
// @Failure      404         {object}  response.Err
// @Failure      409         {object}  response.Err
// @Failure      500         {object}  response.Err
// @Router       /events/{eventID}/categories/{categoryID} [patch]
// @Security     BearerAuth
func (h *ReferenceHandler) HandleUpdateCategory(ctx *gin.Context) {
	eventID, err := parseUintParam(ctx, "eventID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	categoryID, err := parseUintParam(ctx, "categoryID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	var req request.UpdateCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	category, err := h.svc.UpdateCategory(ctx.Request.Context(), eventID, categoryID, req.Name)
	if err != nil {
		if renderReferenceErr(ctx, err, "category", categoryID) {
			return
		}

		err = fmt.Errorf("v1.HandleUpdateCategory -> h.svc.UpdateCategory -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, category)
}

// HandleDeleteCategory godoc
// @Summary      Delete a dance category
// @Description  Fails with 409 while any performance references the category.
// @Tags         reference-data
// @Produce      json
// @Param        eventID     path  int true "event ID"
// @Param        categoryID  path  int true "category ID"
// @Success      204
// @Failure      400         {object}  response.Err
// @Failure      401         {object}  response.Err
// @Failure      403         {object}  response.Err
// @Failure      404         {object}  response.Err
// @Failure      409         {object}  response.Err
// @Failure      500         {object}  response.Err
// @Router       /events/{eventID}/categories/{categoryID} [delete]
// @Security     BearerAuth
func (h *ReferenceHandler) HandleDeleteCategory(ctx *gin.Context) {
	eventID, err := parseUintParam(ctx, "eventID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	categoryID, err := parseUintParam(ctx, "categoryID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := h.svc.DeleteCategory(ctx.Request.Context(), eventID, categoryID); err != nil {
		if renderReferenceErr(ctx, err, "category", categoryID) {
			return
		}

		err = fmt.Errorf("v1.HandleDeleteCategory -> h.svc.DeleteCategory -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(ctx, err))
		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleCreateAgeGroup godoc
// @Summary      Create an age group for an event
// @Tags         reference-data
// @Accept       json
// @Produce      json
// @Param        eventID  path      int true "event ID"
// @Param        request  body      request.CreateAgeGroupRequest true "request body"
// @Success      201      {object}  domain.AgeGroup
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      409      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /events/{eventID}/age-groups [post]
// @Security     BearerAuth
func (h *ReferenceHandler) HandleCreateAgeGroup(ctx *gin.Context) {
	eventID, err := parseUintParam(ctx, "eventID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	var req request.CreateAgeGroupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	group, err := h.svc.CreateAgeGroup(ctx.Request.Context(), domain.AgeGroup{
		EventID: eventID,
		Name:    req.Name,
		MinAge:  req.MinAge,
		MaxAge:  req.MaxAge,
	})
	if err != nil {
		if renderReferenceErr(ctx, err, "age group", 0) {
			return
		}

		err = fmt.Errorf("v1.HandleCreateAgeGroup -> h.svc.CreateAgeGroup -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(ctx, err))
		return
	}

	ctx.JSON(http.StatusCreated, group)
}

// HandleListAgeGroups godoc
// @Summary      List an event's age groups
// @Tags         reference-data
// @Produce      json
// @Param        eventID  path      int true "event ID"
// @Success      200      {array}   domain.AgeGroup
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /events/{eventID}/age-groups [get]
// @Security     BearerAuth
func (h *ReferenceHandler) HandleListAgeGroups(ctx *gin.Context) {
	eventID, err := parseUintParam(ctx, "eventID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	groups, err := h.svc.ListAgeGroups(ctx.Request.Context(), eventID)
	if err != nil {
		if renderReferenceErr(ctx, err, "age group", 0) {
			return
		}

		err = fmt.Errorf("v1.HandleListAgeGroups -> h.svc.ListAgeGroups -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, groups)
}

// HandleGetAgeGroup godoc
// @Summary      Get an age group
// @Tags         reference-data
// @Produce      json
// @Param        eventID     path      int true "event ID"
// @Param        ageGroupID  path      int true "age group ID"
// @Success      200         {object}  domain.AgeGroup
// @Failure      400         {object}  response.Err
// @Failure      401         {object}  response.Err
// @Failure      404         {object}  response.Err
// @Failure      500         {object}  response.Err
// @Router       /events/{eventID}/age-groups/{ageGroupID} [get]
// @Security     BearerAuth
func (h *ReferenceHandler) HandleGetAgeGroup(ctx *gin.Context) {
	eventID, err := parseUintParam(ctx, "eventID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	ageGroupID, err := parseUintParam(ctx, "ageGroupID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	group, err := h.svc.GetAgeGroup(ctx.Request.Context(), eventID, ageGroupID)
	if err != nil {
		if renderReferenceErr(ctx, err, "age group", ageGroupID) {
			return
		}

		err = fmt.Errorf("v1.HandleGetAgeGroup -> h.svc.GetAgeGroup -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, group)
}

// HandleUpdateAgeGroup godoc
// @Summary      Update an age group
// @Tags         reference-data
// @Accept       json
// @Produce      json
// @Param        eventID     path      int true "event ID"
// @Param        ageGroupID  path      int true "age group ID"
// @Param        request     body      request.UpdateAgeGroupRequest true "request body"
// @Success      200         {object}  domain.AgeGroup
// @Failure      400         {object}  response.Err
// @Failure      401         {object}  response.Err
// @Failure      403         {object}  response.Err
// @Failure      404         {object}  response.Err
// @Failure      409         {object}  response.Err
// @Failure      500         {object}  response.Err
// @Router       /events/{eventID}/age-groups/{ageGroupID} [patch]
// @Security     BearerAuth
func (h *ReferenceHandler) HandleUpdateAgeGroup(ctx *gin.Context) {
	eventID, err := parseUintParam(ctx, "eventID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	ageGroupID, err := parseUintParam(ctx, "ageGroupID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	var req request.UpdateAgeGroupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	group, err := h.svc.UpdateAgeGroup(ctx.Request.Context(), eventID, ageGroupID, req.Name, req.MinAge, req.MaxAge)
	if err != nil {
		if renderReferenceErr(ctx, err, "age group", ageGroupID) {
			return
		}

		err = fmt.Errorf("v1.HandleUpdateAgeGroup -> h.svc.UpdateAgeGroup -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, group)
}

// HandleDeleteAgeGroup godoc
// @Summary      Delete an age group
// @Description  Fails with 409 while any performance references the age group.
// @Tags         reference-data
// @Produce      json
// @Param        eventID     path  int true "event ID"
// @Param        ageGroupID  path  int true "age group ID"
// @Success      204
// @Failure      400         {object}  response.Err
// @Failure      401         {object}  response.Err
// @Failure      403         {object}  response.Err
// @Failure      404         {object}  response.Err
// @Failure      409         {object}  response.Err
// @Failure      500         {object}  response.Err
// @Router       /events/{eventID}/age-groups/{ageGroupID} [delete]
// @Security     BearerAuth
func (h *ReferenceHandler) HandleDeleteAgeGroup(ctx *gin.Context) {
	eventID, err := parseUintParam(ctx, "eventID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	ageGroupID, err := parseUintParam(ctx, "ageGroupID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := h.svc.DeleteAgeGroup(ctx.Request.Context(), eventID, ageGroupID); err != nil {
		if renderReferenceErr(ctx, err, "age group", ageGroupID) {
			return
		}

		err = fmt.Errorf("v1.HandleDeleteAgeGroup -> h.svc.DeleteAgeGroup -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(ctx, err))
		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleCreateFormat godoc
// @Summary      Create a dance format for an event
// @Tags         reference-data
// @Accept       json
// @Produce      json
// @Param        eventID  path      int true "event ID"
// @Param        request  body      request.CreateFormatRequest true "request body"
// @Success      201      {object}  domain.DanceFormat
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      409      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /events/{eventID}/formats [post]
// @Security     BearerAuth
func (h *ReferenceHandler) HandleCreateFormat(ctx *gin.Context) {
	eventID, err := parseUintParam(ctx, "eventID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	var req request.CreateFormatRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	format, err := h.svc.CreateFormat(ctx.Request.Context(), domain.DanceFormat{
		EventID: eventID,
		Name:    req.Name,
	})
	if err != nil {
		if renderReferenceErr(ctx, err, "format", 0) {
			return
		}

		err = fmt.Errorf("v1.HandleCreateFormat -> h.svc.CreateFormat -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(ctx, err))
		return
	}

	ctx.JSON(http.StatusCreated, format)
}

// HandleListFormats godoc
// @Summary      List an event's dance formats
// @Tags         reference-data
// @Produce      json
// @Param        eventID  path      int true "event ID"
// @Success      200      {array}   domain.DanceFormat
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /events/{eventID}/formats [get]
// @Security     BearerAuth
func (h *ReferenceHandler) HandleListFormats(ctx *gin.Context) {
	eventID, err := parseUintParam(ctx, "eventID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	formats, err := h.svc.ListFormats(ctx.Request.Context(), eventID)
	if err != nil {
		if renderReferenceErr(ctx, err, "format", 0) {
			return
		}

		err = fmt.Errorf("v1.HandleListFormats -> h.svc.ListFormats -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, formats)
}

// HandleGetFormat godoc
// @Summary      Get a dance format
// @Tags         reference-data
// @Produce      json
// @Param        eventID   path      int true "event ID"
// @Param        formatID  path      int true "format ID"
// @Success      200       {object}  domain.DanceFormat
// @Failure      400       {object}  response.Err
// @Failure      401       {object}  response.Err
// @Failure      404       {object}  response.Err
// @Failure      500       {object}  response.Err
// @Router       /events/{eventID}/formats/{formatID} [get]
// @Security     BearerAuth
func (h *ReferenceHandler) HandleGetFormat(ctx *gin.Context) {
	eventID, err := parseUintParam(ctx, "eventID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	formatID, err := parseUintParam(ctx, "formatID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	format, err := h.svc.GetFormat(ctx.Request.Context(), eventID, formatID)
	if err != nil {
		if renderReferenceErr(ctx, err, "format", formatID) {
			return
		}

		err = fmt.Errorf("v1.HandleGetFormat -> h.svc.GetFormat -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, format)
}

// HandleUpdateFormat godoc
// @Summary      Rename a dance format
// @Tags         reference-data
// @Accept       json
// @Produce      json
// @Param        eventID   path      int true "event ID"
// @Param        formatID  path      int true "format ID"
// @Param        request   body      request.UpdateFormatRequest true "request body"
// @Success      200       {object}  domain.DanceFormat
// @Failure      400       {object}  response.Err
// @Failure      401       {object}  response.Err
// @Failure      403       {object}  response.Err
// @Failure      404       {object}  response.Err
// @Failure      409       {object}  response.Err
// @Failure      500       {object}  response.Err
// @Router       /events/{eventID}/formats/{formatID} [patch]
// @Security     BearerAuth
func (h *ReferenceHandler) HandleUpdateFormat(ctx *gin.Context) {
	eventID, err := parseUintParam(ctx, "eventID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	formatID, err := parseUintParam(ctx, "formatID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	var req request.UpdateFormatRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	format, err := h.svc.UpdateFormat(ctx.Request.Context(), eventID, formatID, req.Name)
	if err != nil {
		if renderReferenceErr(ctx, err, "format", formatID) {
			return
		}

		err = fmt.Errorf("v1.HandleUpdateFormat -> h.svc.UpdateFormat -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, format)
}

// HandleDeleteFormat godoc
// @Summary      Delete a dance format
// @Description  Fails with 409 while any performance references the format.
// @Tags         reference-data
// @Produce      json
// @Param        eventID   path  int true "event ID"
// @Param        formatID  path  int true "format ID"
// @Success      204
// @Failure      400       {object}  response.Err
// @Failure      401       {object}  response.Err
// @Failure      403       {object}  response.Err
// @Failure      404       {object}  response.Err
// @Failure      409       {object}  response.Err
// @Failure      500       {object}  response.Err
// @Router       /events/{eventID}/formats/{formatID} [delete]
// @Security     BearerAuth
func (h *ReferenceHandler) HandleDeleteFormat(ctx *gin.Context) {
	eventID, err := parseUintParam(ctx, "eventID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	formatID, err := parseUintParam(ctx, "formatID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := h.svc.DeleteFormat(ctx.Request.Context(), eventID, formatID); err != nil {
		if renderReferenceErr(ctx, err, "format", formatID) {
			return
		}

		err = fmt.Errorf("v1.HandleDeleteFormat -> h.svc.DeleteFormat -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(ctx, err))
		return
	}

	ctx.Status(http.StatusNoContent)
}

package v1

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dancefest/api/internal/api/handler/v1/request"
	"github.com/dancefest/api/internal/api/handler/v1/response"
	"github.com/dancefest/api/internal/authz"
	"github.com/dancefest/api/internal/domain"
	"github.com/dancefest/api/internal/service"
)

type StudioService interface {
	RegisterStudio(ctx context.Context, actor authz.Context, studio domain.Studio, rep *domain.StudioRepresentative) (domain.Studio, error)
	ListStudios(ctx context.Context, actor authz.Context, eventID uint) ([]domain.Studio, error)
	GetStudio(ctx context.Context, actor authz.Context, studioID uint) (domain.Studio, error)
	UpdateStudio(ctx context.Context, actor authz.Context, studioID uint, update domain.StudioUpdate) (domain.Studio, error)
	DeleteStudio(ctx context.Context, studioID uint) error
	SetRegistrationStatus(ctx context.Context, eventID, studioID uint, status domain.RegistrationStatus, canEditDuringReview *bool) (domain.StudioEventRegistration, error)
	CancelRegistration(ctx context.Context, actor authz.Context, eventID, studioID uint) error
	UpdateRepresentative(ctx context.Context, actor authz.Context, studioID, repID uint, name, email *string) (domain.StudioRepresentative, error)
	UploadLogo(ctx context.Context, actor authz.Context, studioID uint, filename string, file io.Reader) (string, error)
}

type StudioUserService interface {
	GetUser(ctx context.Context, id uint) (domain.User, error)
}

type StudioHandler struct {
	svc  StudioService
	uSvc StudioUserService
}

func NewStudioHandler(svc StudioService, uSvc StudioUserService) *StudioHandler {
	return &StudioHandler{
		svc:  svc,
		uSvc: uSvc,
	}
}

// renderStudioScopedErr translates the errors shared by every studio-scoped
// operation. It reports whether the error was handled.
func renderStudioScopedErr(ctx *gin.Context, err error, studioID uint) bool {
	var stageErr *service.StageError

	switch {
	case errors.Is(err, service.ErrStudioNotFound):
		response.RenderErr(ctx, response.ErrNotFound("studio", "id", studioID))
	case errors.Is(err, service.ErrEventNotFound):
		response.RenderErr(ctx, response.ErrNotFound("event", "id", ctx.Param("eventID")))
	case errors.Is(err, service.ErrAccessDenied):
		response.RenderErr(ctx, response.ErrPermissionDenied())
	case errors.As(err, &stageErr):
		response.RenderErr(ctx, response.ErrStageLocked(stageErr))
	default:
		return false
	}

	return true
}

// HandleRegisterStudio godoc
// @Summary      Register a studio for an event
// @Description  Non-admin callers go through the registration stage gate, become the studio's representative and start PENDING. Admin-created studios start APPROVED.
// @Tags         studios
// @Accept       json
// @Produce      json
// @Param        eventID  path      int true "event ID"
// @Param        request  body      request.RegisterStudioRequest true "request body"
// @Success      201      {object}  domain.Studio
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /events/{eventID}/studios [post]
// @Security     BearerAuth
func (h *StudioHandler) HandleRegisterStudio(ctx *gin.Context) {
	actor, respErr := getActor(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	eventID, err := parseUintParam(ctx, "eventID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	var req request.RegisterStudioRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	rep := &domain.StudioRepresentative{
		UserID: actor.UserID,
		Name:   req.RepresentativeName,
		Email:  req.RepresentativeEmail,
	}
	if rep.Name == "" || rep.Email == "" {
		user, err := h.uSvc.GetUser(ctx.Request.Context(), actor.UserID)
		if err != nil {
			err = fmt.Errorf("v1.HandleRegisterStudio -> h.uSvc.GetUser -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(ctx, err))
			return
		}
		if rep.Name == "" {
			rep.Name = user.Name
		}
		if rep.Email == "" {
			rep.Email = user.Email
		}
	}

	studio, err := h.svc.RegisterStudio(ctx.Request.Context(), actor, domain.Studio{
		EventID:        eventID,
		Name:           req.Name,
		Country:        req.Country,
		City:           req.City,
		DirectorName:   req.DirectorName,
		DirectorPhone:  req.DirectorPhone,
		InvoiceDetails: req.InvoiceDetails,
	}, rep)
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("event", "id", eventID))
			return
		}

		var stageErr *service.StageError
		if errors.As(err, &stageErr) {
			response.RenderErr(ctx, response.ErrStageLocked(stageErr))
			return
		}

		err = fmt.Errorf("v1.HandleRegisterStudio -> h.svc.RegisterStudio -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(ctx, err))
		return
	}

	ctx.JSON(http.StatusCreated, studio)
}

// HandleListStudios godoc
// @Summary      List an event's studios
// @Description  Admins see every studio; representatives only the studios they actively represent.
// @Tags         studios
// @Produce      json
// @Param        eventID  path      int true "event ID"
// @Success      200      {array}   domain.Studio
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /events/{eventID}/studios [get]
// @Security     BearerAuth
func (h *StudioHandler) HandleListStudios(ctx *gin.Context) {
	actor, respErr := getActor(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	eventID, err := parseUintParam(ctx, "eventID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	studios, err := h.svc.ListStudios(ctx.Request.Context(), actor, eventID)
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("event", "id", eventID))
			return
		}

		err = fmt.Errorf("v1.HandleListStudios -> h.svc.ListStudios -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, studios)
}

// HandleGetStudio godoc
// @Summary      Get a studio
// @Tags         studios
// @Produce      json
// @Param        studioID  path      int true "studio ID"
// @Success      200       {object}  domain.Studio
// @Failure      400       {object}  response.Err
// @Failure      401       {object}  response.Err
// @Failure      403       {object}  response.Err
// @Failure      404       {object}  response.Err
// @Failure      500       {object}  response.Err
// @Router       /studios/{studioID} [get]
// @Security     BearerAuth
func (h *StudioHandler) HandleGetStudio(ctx *gin.Context) {
	actor, respErr := getActor(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	studioID, err := parseUintParam(ctx, "studioID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	studio, err := h.svc.GetStudio(ctx.Request.Context(), actor, studioID)
	if err != nil {
		if renderStudioScopedErr(ctx, err, studioID) {
			return
		}

		err = fmt.Errorf("v1.HandleGetStudio -> h.svc.GetStudio -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, studio)
}

// HandleUpdateStudio godoc
// @Summary      Update a studio
// @Description  Representatives can edit while the stage gate allows studio edits; rejected registrations are locked.
// @Tags         studios
// @Accept       json
// @Produce      json
// @Param        studioID  path      int true "studio ID"
// @Param        request   body      request.UpdateStudioRequest true "request body"
// @Success      200       {object}  domain.Studio
// @Failure      400       {object}  response.Err
// @Failure      401       {object}  response.Err
// @Failure      403       {object}  response.Err
// @Failure      404       {object}  response.Err
// @Failure      500       {object}  response.Err
// @Router       /studios/{studioID} [patch]
// @Security     BearerAuth
func (h *StudioHandler) HandleUpdateStudio(ctx *gin.Context) {
	actor, respErr := getActor(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	studioID, err := parseUintParam(ctx, "studioID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	var req request.UpdateStudioRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	studio, err := h.svc.UpdateStudio(ctx.Request.Context(), actor, studioID, req.ToUpdate())
	if err != nil {
		if errors.Is(err, service.ErrRegistrationRejected) {
			response.RenderErr(ctx, response.ErrStageLocked(service.ErrRegistrationRejected))
			return
		}
		if renderStudioScopedErr(ctx, err, studioID) {
			return
		}

		err = fmt.Errorf("v1.HandleUpdateStudio -> h.svc.UpdateStudio -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, studio)
}

// HandleDeleteStudio godoc
// @Summary      Soft delete a studio
// @Tags         studios
// @Produce      json
// @Param        studioID  path  int true "studio ID"
// @Success      204
// @Failure      400       {object}  response.Err
// @Failure      401       {object}  response.Err
// @Failure      403       {object}  response.Err
// @Failure      404       {object}  response.Err
// @Failure      500       {object}  response.Err
// @Router       /studios/{studioID} [delete]
// @Security     BearerAuth
func (h *StudioHandler) HandleDeleteStudio(ctx *gin.Context) {
	studioID, err := parseUintParam(ctx, "studioID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := h.svc.DeleteStudio(ctx.Request.Context(), studioID); err != nil {
		if errors.Is(err, service.ErrStudioNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("studio", "id", studioID))
			return
		}

		err = fmt.Errorf("v1.HandleDeleteStudio -> h.svc.DeleteStudio -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(ctx, err))
		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleSetRegistrationStatus godoc
// @Summary      Review a studio's registration
// @Description  Approving grants the representative role to the studio's active representatives; the grant is idempotent across repeated approvals.
// @Tags         studios
// @Accept       json
// @Produce      json
// @Param        eventID   path      int true "event ID"
// @Param        studioID  path      int true "studio ID"
// @Param        request   body      request.SetRegistrationStatusRequest true "request body"
// @Success      200       {object}  domain.StudioEventRegistration
// @Failure      400       {object}  response.Err
// @Failure      401       {object}  response.Err
// @Failure      403       {object}  response.Err
// @Failure      404       {object}  response.Err
// @Failure      500       {object}  response.Err
// @Router       /events/{eventID}/studios/{studioID}/registration [patch]
// @Security     BearerAuth
func (h *StudioHandler) HandleSetRegistrationStatus(ctx *gin.Context) {
	eventID, err := parseUintParam(ctx, "eventID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	studioID, err := parseUintParam(ctx, "studioID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	var req request.SetRegistrationStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	registration, err := h.svc.SetRegistrationStatus(ctx.Request.Context(), eventID, studioID, domain.RegistrationStatus(req.Status), req.CanEditDuringReview)
	if err != nil {
		if errors.Is(err, service.ErrStudioNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("studio", "id", studioID))
			return
		}

		err = fmt.Errorf("v1.HandleSetRegistrationStatus -> h.svc.SetRegistrationStatus -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, registration)
}

// HandleCancelRegistration godoc
// @Summary      Withdraw a pending registration
// @Tags         studios
// @Produce      json
// @Param        eventID   path  int true "event ID"
// @Param        studioID  path  int true "studio ID"
// @Success      204
// @Failure      400       {object}  response.Err
// @Failure      401       {object}  response.Err
// @Failure      403       {object}  response.Err
// @Failure      404       {object}  response.Err
// @Failure      409       {object}  response.Err
// @Failure      500       {object}  response.Err
// @Router       /events/{eventID}/studios/{studioID}/registration [delete]
// @Security     BearerAuth
func (h *StudioHandler) HandleCancelRegistration(ctx *gin.Context) {
	actor, respErr := getActor(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	eventID, err := parseUintParam(ctx, "eventID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	studioID, err := parseUintParam(ctx, "studioID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := h.svc.CancelRegistration(ctx.Request.Context(), actor, eventID, studioID); err != nil {
		if errors.Is(err, service.ErrRegistrationNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("registration", "studioID", studioID))
			return
		}
		if errors.Is(err, service.ErrRegistrationNotPending) {
			response.RenderErr(ctx, response.ErrConflict(service.ErrRegistrationNotPending))
			return
		}
		if renderStudioScopedErr(ctx, err, studioID) {
			return
		}

		err = fmt.Errorf("v1.HandleCancelRegistration -> h.svc.CancelRegistration -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(ctx, err))
		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleUpdateRepresentative godoc
// @Summary      Update a studio representative's contact details
// @Description  Representatives may edit their own entry; admins may edit anyone's.
// @Tags         studios
// @Accept       json
// @Produce      json
// @Param        studioID  path      int true "studio ID"
// @Param        repID     path      int true "representative ID"
// @Param        request   body      request.UpdateRepresentativeRequest true "request body"
// @Success      200       {object}  domain.StudioRepresentative
// @Failure      400       {object}  response.Err
// @Failure      401       {object}  response.Err
// @Failure      403       {object}  response.Err
// @Failure      404       {object}  response.Err
// @Failure      500       {object}  response.Err
// @Router       /studios/{studioID}/representatives/{repID} [patch]
// @Security     BearerAuth
func (h *StudioHandler) HandleUpdateRepresentative(ctx *gin.Context) {
	actor, respErr := getActor(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	studioID, err := parseUintParam(ctx, "studioID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	repID, err := parseUintParam(ctx, "repID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	var req request.UpdateRepresentativeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	rep, err := h.svc.UpdateRepresentative(ctx.Request.Context(), actor, studioID, repID, req.Name, req.Email)
	if err != nil {
		if errors.Is(err, service.ErrRepresentativeNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("representative", "id", repID))
			return
		}
		if errors.Is(err, service.ErrAccessDenied) {
			response.RenderErr(ctx, response.ErrPermissionDenied())
			return
		}

		err = fmt.Errorf("v1.HandleUpdateRepresentative -> h.svc.UpdateRepresentative -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, rep)
}

// HandleUploadLogo godoc
// @Summary      Upload a studio logo
// @Tags         studios
// @Accept       multipart/form-data
// @Produce      json
// @Param        studioID  path      int  true "studio ID"
// @Param        file      formData  file true "logo file"
// @Success      200       {object}  response.UploadResponse
// @Failure      400       {object}  response.Err
// @Failure      401       {object}  response.Err
// @Failure      403       {object}  response.Err
// @Failure      404       {object}  response.Err
// @Failure      500       {object}  response.Err
// @Router       /studios/{studioID}/logo [post]
// @Security     BearerAuth
func (h *StudioHandler) HandleUploadLogo(ctx *gin.Context) {
	actor, respErr := getActor(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	studioID, err := parseUintParam(ctx, "studioID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}
	defer file.Close()

	path, err := h.svc.UploadLogo(ctx.Request.Context(), actor, studioID, fileHeader.Filename, file)
	if err != nil {
		if renderStudioScopedErr(ctx, err, studioID) {
			return
		}

		err = fmt.Errorf("v1.HandleUploadLogo -> h.svc.UploadLogo -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, response.UploadResponse{Path: path})
}

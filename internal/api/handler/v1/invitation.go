package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dancefest/api/internal/api/handler/v1/request"
	"github.com/dancefest/api/internal/api/handler/v1/response"
	"github.com/dancefest/api/internal/api/middleware"
	"github.com/dancefest/api/internal/domain"
	"github.com/dancefest/api/internal/service"
)

type InvitationService interface {
	CreateInvitation(ctx context.Context, createdBy uint, email, roleKey string, eventID *uint) (domain.Invitation, error)
	ListInvitations(ctx context.Context) ([]domain.Invitation, error)
	GetInvitation(ctx context.Context, token string) (domain.Invitation, error)
	AcceptInvitation(ctx context.Context, token, name, password string) (domain.User, error)
}

type InvitationHandler struct {
	svc InvitationService
}

func NewInvitationHandler(svc InvitationService) *InvitationHandler {
	return &InvitationHandler{
		svc: svc,
	}
}

// HandleCreateInvitation godoc
// @Summary      Invite an email address to take on a role
// @Description  At most one active invitation may exist per email, role and event combination.
// @Tags         invitations
// @Accept       json
// @Produce      json
// @Param        request  body      request.CreateInvitationRequest true "request body"
// @Success      201      {object}  domain.Invitation
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      409      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /invitations [post]
// @Security     BearerAuth
func (h *InvitationHandler) HandleCreateInvitation(ctx *gin.Context) {
	userID, ok := middleware.UserID(ctx)
	if !ok {
		response.RenderErr(ctx, response.ErrNotLoggedIn())
		return
	}

	var req request.CreateInvitationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	invitation, err := h.svc.CreateInvitation(ctx.Request.Context(), userID, req.Email, req.RoleKey, req.EventID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEventNotFound):
			response.RenderErr(ctx, response.ErrNotFound("event", "id", req.EventID))
		case errors.Is(err, service.ErrInvitationExists):
			response.RenderErr(ctx, response.ErrConflict(service.ErrInvitationExists))
		default:
			err = fmt.Errorf("v1.HandleCreateInvitation -> h.svc.CreateInvitation -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(ctx, err))
		}
		return
	}

	ctx.JSON(http.StatusCreated, invitation)
}

// HandleListInvitations godoc
// @Summary      List all invitations
// @Tags         invitations
// @Produce      json
// @Success      200  {array}   domain.Invitation
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /invitations [get]
// @Security     BearerAuth
func (h *InvitationHandler) HandleListInvitations(ctx *gin.Context) {
	invitations, err := h.svc.ListInvitations(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListInvitations -> h.svc.ListInvitations -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, invitations)
}

// HandleGetInvitation godoc
// @Summary      Look up an invitation by token
// @Description  Public endpoint used by the signup page to prefill the invited email and role.
// @Tags         invitations
// @Produce      json
// @Param        token  path      string true "invitation token"
// @Success      200    {object}  domain.Invitation
// @Failure      404    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /invitations/{token} [get]
func (h *InvitationHandler) HandleGetInvitation(ctx *gin.Context) {
	token := ctx.Param("token")

	invitation, err := h.svc.GetInvitation(ctx.Request.Context(), token)
	if err != nil {
		if errors.Is(err, service.ErrInvitationNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("invitation", "token", token))
			return
		}

		err = fmt.Errorf("v1.HandleGetInvitation -> h.svc.GetInvitation -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, invitation)
}

// HandleAcceptInvitation godoc
// @Summary      Accept an invitation and activate the invited account
// @Description  Consumes the one-time token. The account and its role assignment are created in a single transaction.
// @Tags         invitations
// @Accept       json
// @Produce      json
// @Param        request  body      request.AcceptInvitationRequest true "request body"
// @Success      201      {object}  domain.User
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      409      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /invitations/accept [post]
func (h *InvitationHandler) HandleAcceptInvitation(ctx *gin.Context) {
	var req request.AcceptInvitationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	user, err := h.svc.AcceptInvitation(ctx.Request.Context(), req.Token, req.Name, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvitationNotFound):
			response.RenderErr(ctx, response.ErrNotFound("invitation", "token", req.Token))
		case errors.Is(err, service.ErrInvitationUsed):
			response.RenderErr(ctx, response.ErrConflict(service.ErrInvitationUsed))
		case errors.Is(err, service.ErrInvitationExpired):
			response.RenderErr(ctx, response.ErrConflict(service.ErrInvitationExpired))
		default:
			err = fmt.Errorf("v1.HandleAcceptInvitation -> h.svc.AcceptInvitation -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(ctx, err))
		}
		return
	}

	ctx.JSON(http.StatusCreated, user)
}

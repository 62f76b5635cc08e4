package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dancefest/api/internal/api/handler/v1/request"
	"github.com/dancefest/api/internal/api/handler/v1/response"
	"github.com/dancefest/api/internal/authz"
	"github.com/dancefest/api/internal/domain"
	"github.com/dancefest/api/internal/service"
)

type DancerService interface {
	CreateDancer(ctx context.Context, actor authz.Context, dancer domain.Dancer) (domain.Dancer, error)
	ListDancers(ctx context.Context, actor authz.Context, studioID uint) ([]domain.Dancer, error)
	UpdateDancer(ctx context.Context, actor authz.Context, dancerID uint, update domain.DancerUpdate) (domain.Dancer, error)
	DeleteDancer(ctx context.Context, actor authz.Context, dancerID uint) error
}

type DancerHandler struct {
	svc DancerService
}

func NewDancerHandler(svc DancerService) *DancerHandler {
	return &DancerHandler{
		svc: svc,
	}
}

// HandleCreateDancer godoc
// @Summary      Add a dancer to a studio's roster
// @Tags         dancers
// @Accept       json
// @Produce      json
// @Param        studioID  path      int true "studio ID"
// @Param        request   body      request.CreateDancerRequest true "request body"
// @Success      201       {object}  domain.Dancer
// @Failure      400       {object}  response.Err
// @Failure      401       {object}  response.Err
// @Failure      403       {object}  response.Err
// @Failure      404       {object}  response.Err
// @Failure      500       {object}  response.Err
// @Router       /studios/{studioID}/dancers [post]
// @Security     BearerAuth
func (h *DancerHandler) HandleCreateDancer(ctx *gin.Context) {
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

	var req request.CreateDancerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	dancer, err := h.svc.CreateDancer(ctx.Request.Context(), actor, domain.Dancer{
		StudioID:  studioID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		BirthDate: req.BirthDate,
	})
	if err != nil {
		if renderStudioScopedErr(ctx, err, studioID) {
			return
		}

		err = fmt.Errorf("v1.HandleCreateDancer -> h.svc.CreateDancer -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(ctx, err))
		return
	}

	ctx.JSON(http.StatusCreated, dancer)
}

// HandleListDancers godoc
// @Summary      List a studio's dancers
// @Tags         dancers
// @Produce      json
// @Param        studioID  path      int true "studio ID"
// @Success      200       {array}   domain.Dancer
// @Failure      400       {object}  response.Err
// @Failure      401       {object}  response.Err
// @Failure      403       {object}  response.Err
// @Failure      404       {object}  response.Err
// @Failure      500       {object}  response.Err
// @Router       /studios/{studioID}/dancers [get]
// @Security     BearerAuth
func (h *DancerHandler) HandleListDancers(ctx *gin.Context) {
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

	dancers, err := h.svc.ListDancers(ctx.Request.Context(), actor, studioID)
	if err != nil {
		if renderStudioScopedErr(ctx, err, studioID) {
			return
		}

		err = fmt.Errorf("v1.HandleListDancers -> h.svc.ListDancers -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, dancers)
}

// HandleUpdateDancer godoc
// @Summary      Update a dancer
// @Tags         dancers
// @Accept       json
// @Produce      json
// @Param        dancerID  path      int true "dancer ID"
// @Param        request   body      request.UpdateDancerRequest true "request body"
// @Success      200       {object}  domain.Dancer
// @Failure      400       {object}  response.Err
// @Failure      401       {object}  response.Err
// @Failure      403       {object}  response.Err
// @Failure      404       {object}  response.Err
// @Failure      500       {object}  response.Err
// @Router       /dancers/{dancerID} [patch]
// @Security     BearerAuth
func (h *DancerHandler) HandleUpdateDancer(ctx *gin.Context) {
	actor, respErr := getActor(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	dancerID, err := parseUintParam(ctx, "dancerID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	var req request.UpdateDancerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	dancer, err := h.svc.UpdateDancer(ctx.Request.Context(), actor, dancerID, req.ToUpdate())
	if err != nil {
		if errors.Is(err, service.ErrDancerNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("dancer", "id", dancerID))
			return
		}
		if renderStudioScopedErr(ctx, err, dancerID) {
			return
		}

		err = fmt.Errorf("v1.HandleUpdateDancer -> h.svc.UpdateDancer -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, dancer)
}

// HandleDeleteDancer godoc
// @Summary      Remove a dancer from the roster
// @Tags         dancers
// @Produce      json
// @Param        dancerID  path  int true "dancer ID"
// @Success      204
// @Failure      400       {object}  response.Err
// @Failure      401       {object}  response.Err
// @Failure      403       {object}  response.Err
// @Failure      404       {object}  response.Err
// @Failure      500       {object}  response.Err
// @Router       /dancers/{dancerID} [delete]
// @Security     BearerAuth
func (h *DancerHandler) HandleDeleteDancer(ctx *gin.Context) {
	actor, respErr := getActor(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	dancerID, err := parseUintParam(ctx, "dancerID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := h.svc.DeleteDancer(ctx.Request.Context(), actor, dancerID); err != nil {
		if errors.Is(err, service.ErrDancerNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("dancer", "id", dancerID))
			return
		}
		if renderStudioScopedErr(ctx, err, dancerID) {
			return
		}

		err = fmt.Errorf("v1.HandleDeleteDancer -> h.svc.DeleteDancer -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(ctx, err))
		return
	}

	ctx.Status(http.StatusNoContent)
}

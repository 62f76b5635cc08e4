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

type PerformanceService interface {
	CreatePerformance(ctx context.Context, actor authz.Context, performance domain.Performance, dancerIDs []uint) (domain.Performance, error)
	ListPerformances(ctx context.Context, actor authz.Context, studioID uint) ([]domain.Performance, error)
	GetPerformance(ctx context.Context, actor authz.Context, studioID, performanceID uint) (domain.Performance, error)
	UpdatePerformance(ctx context.Context, actor authz.Context, studioID, performanceID uint, update domain.PerformanceUpdate) (domain.Performance, error)
	DeletePerformance(ctx context.Context, actor authz.Context, studioID, performanceID uint) error
}

type PerformanceHandler struct {
	svc PerformanceService
}

func NewPerformanceHandler(svc PerformanceService) *PerformanceHandler {
	return &PerformanceHandler{
		svc: svc,
	}
}

func renderPerformanceErr(ctx *gin.Context, err error, performanceID uint) bool {
	switch {
	case errors.Is(err, service.ErrPerformanceNotFound):
		response.RenderErr(ctx, response.ErrNotFound("performance", "id", performanceID))
	case errors.Is(err, service.ErrReferenceNotFound):
		response.RenderErr(ctx, response.ErrBadRequest(service.ErrReferenceNotFound))
	case errors.Is(err, service.ErrDancerNotInStudio):
		response.RenderErr(ctx, response.ErrBadRequest(service.ErrDancerNotInStudio))
	default:
		return false
	}

	return true
}

// HandleCreatePerformance godoc
// @Summary      Create a performance for a studio
// @Description  Participants must be live dancers of the studio; category, age group and format must belong to the studio's event.
// @Tags         performances
// @Accept       json
// @Produce      json
// @Param        studioID  path      int true "studio ID"
// @Param        request   body      request.CreatePerformanceRequest true "request body"
// @Success      201       {object}  domain.Performance
// @Failure      400       {object}  response.Err
// @Failure      401       {object}  response.Err
// @Failure      403       {object}  response.Err
// @Failure      404       {object}  response.Err
// @Failure      500       {object}  response.Err
// @Router       /studios/{studioID}/performances [post]
// @Security     BearerAuth
func (h *PerformanceHandler) HandleCreatePerformance(ctx *gin.Context) {
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

	var req request.CreatePerformanceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	performance, err := h.svc.CreatePerformance(ctx.Request.Context(), actor, domain.Performance{
		StudioID:     studioID,
		Title:        req.Title,
		DurationSec:  req.DurationSec,
		OrderOnStage: req.OrderOnStage,
		CategoryID:   req.CategoryID,
		AgeGroupID:   req.AgeGroupID,
		FormatID:     req.FormatID,
	}, req.DancerIDs)
	if err != nil {
		if renderPerformanceErr(ctx, err, 0) {
			return
		}
		if renderStudioScopedErr(ctx, err, studioID) {
			return
		}

		err = fmt.Errorf("v1.HandleCreatePerformance -> h.svc.CreatePerformance -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(ctx, err))
		return
	}

	ctx.JSON(http.StatusCreated, performance)
}

// HandleListPerformances godoc
// @Summary      List a studio's performances
// @Tags         performances
// @Produce      json
// @Param        studioID  path      int true "studio ID"
// @Success      200       {array}   domain.Performance
// @Failure      400       {object}  response.Err
// @Failure      401       {object}  response.Err
// @Failure      403       {object}  response.Err
// @Failure      404       {object}  response.Err
// @Failure      500       {object}  response.Err
// @Router       /studios/{studioID}/performances [get]
// @Security     BearerAuth
func (h *PerformanceHandler) HandleListPerformances(ctx *gin.Context) {
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

	performances, err := h.svc.ListPerformances(ctx.Request.Context(), actor, studioID)
	if err != nil {
		if renderStudioScopedErr(ctx, err, studioID) {
			return
		}

		err = fmt.Errorf("v1.HandleListPerformances -> h.svc.ListPerformances -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, performances)
}

// HandleGetPerformance godoc
// @Summary      Get a performance
// @Tags         performances
// @Produce      json
// @Param        studioID       path      int true "studio ID"
// @Param        performanceID  path      int true "performance ID"
// @Success      200            {object}  domain.Performance
// @Failure      400            {object}  response.Err
// @Failure      401            {object}  response.Err
// @Failure      403            {object}  response.Err
// @Failure      404            {object}  response.Err
// @Failure      500            {object}  response.Err
// @Router       /studios/{studioID}/performances/{performanceID} [get]
// @Security     BearerAuth
func (h *PerformanceHandler) HandleGetPerformance(ctx *gin.Context) {
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

	performanceID, err := parseUintParam(ctx, "performanceID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	performance, err := h.svc.GetPerformance(ctx.Request.Context(), actor, studioID, performanceID)
	if err != nil {
		if renderPerformanceErr(ctx, err, performanceID) {
			return
		}
		if renderStudioScopedErr(ctx, err, studioID) {
			return
		}

		err = fmt.Errorf("v1.HandleGetPerformance -> h.svc.GetPerformance -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, performance)
}

// HandleUpdatePerformance godoc
// @Summary      Update a performance
// @Tags         performances
// @Accept       json
// @Produce      json
// @Param        studioID       path      int true "studio ID"
// @Param        performanceID  path      int true "performance ID"
// @Param        request        body      request.UpdatePerformanceRequest true "request body"
// @Success      200            {object}  domain.Performance
// @Failure      400            {object}  response.Err
// @Failure      401            {object}  response.Err
// @Failure      403            {object}  response.Err
// @Failure      404            {object}  response.Err
// @Failure      500            {object}  response.Err
// @Router       /studios/{studioID}/performances/{performanceID} [patch]
// @Security     BearerAuth
func (h *PerformanceHandler) HandleUpdatePerformance(ctx *gin.Context) {
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

	performanceID, err := parseUintParam(ctx, "performanceID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	var req request.UpdatePerformanceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	performance, err := h.svc.UpdatePerformance(ctx.Request.Context(), actor, studioID, performanceID, req.ToUpdate())
	if err != nil {
		if renderPerformanceErr(ctx, err, performanceID) {
			return
		}
		if renderStudioScopedErr(ctx, err, studioID) {
			return
		}

		err = fmt.Errorf("v1.HandleUpdatePerformance -> h.svc.UpdatePerformance -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, performance)
}

// HandleDeletePerformance godoc
// @Summary      Delete a performance
// @Tags         performances
// @Produce      json
// @Param        studioID       path  int true "studio ID"
// @Param        performanceID  path  int true "performance ID"
// @Success      204
// @Failure      400            {object}  response.Err
// @Failure      401            {object}  response.Err
// @Failure      403            {object}  response.Err
// @Failure      404            {object}  response.Err
// @Failure      500            {object}  response.Err
// @Router       /studios/{studioID}/performances/{performanceID} [delete]
// @Security     BearerAuth
func (h *PerformanceHandler) HandleDeletePerformance(ctx *gin.Context) {
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

	performanceID, err := parseUintParam(ctx, "performanceID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := h.svc.DeletePerformance(ctx.Request.Context(), actor, studioID, performanceID); err != nil {
		if renderPerformanceErr(ctx, err, performanceID) {
			return
		}
		if renderStudioScopedErr(ctx, err, studioID) {
			return
		}

		err = fmt.Errorf("v1.HandleDeletePerformance -> h.svc.DeletePerformance -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(ctx, err))
		return
	}

	ctx.Status(http.StatusNoContent)
}

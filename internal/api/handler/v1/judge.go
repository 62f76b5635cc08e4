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

type JudgeService interface {
	CreateJudge(ctx context.Context, judge domain.Judge) (domain.Judge, error)
	ListJudges(ctx context.Context, eventID uint) ([]domain.Judge, error)
	GetJudge(ctx context.Context, eventID, id uint) (domain.Judge, error)
	UpdateJudge(ctx context.Context, eventID, id uint, update domain.JudgeUpdate) (domain.Judge, error)
	DeleteJudge(ctx context.Context, eventID, id uint) error
}

type JudgeHandler struct {
	svc JudgeService
}

func NewJudgeHandler(svc JudgeService) *JudgeHandler {
	return &JudgeHandler{
		svc: svc,
	}
}

// requireAdmin renders a bare 403 unless the caller is an admin. Panel
// composition is an admin decision; event-scoped event.manage only grants
// read access to the panel.
func requireAdmin(ctx *gin.Context) bool {
	actor, respErr := getActor(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return false
	}

	if !actor.IsAdmin {
		response.RenderErr(ctx, response.ErrPermissionDenied())
		return false
	}

	return true
}

// renderJudgeErr translates the errors shared by the judge operations. It
// reports whether the error was handled.
func renderJudgeErr(ctx *gin.Context, err error, judgeID uint) bool {
	switch {
	case errors.Is(err, service.ErrEventNotFound):
		response.RenderErr(ctx, response.ErrNotFound("event", "id", ctx.Param("eventID")))
	case errors.Is(err, service.ErrJudgeNotFound):
		response.RenderErr(ctx, response.ErrNotFound("judge", "id", judgeID))
	default:
		return false
	}

	return true
}

// HandleCreateJudge godoc
// @Summary      Add a judge to an event's panel
// @Tags         judges
// @Accept       json
// @Produce      json
// @Param        eventID  path      int true "event ID"
// @Param        request  body      request.CreateJudgeRequest true "request body"
// @Success      201      {object}  domain.Judge
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /events/{eventID}/judges [post]
// @Security     BearerAuth
func (h *JudgeHandler) HandleCreateJudge(ctx *gin.Context) {
	if !requireAdmin(ctx) {
		return
	}

	eventID, err := parseUintParam(ctx, "eventID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	var req request.CreateJudgeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	judge, err := h.svc.CreateJudge(ctx.Request.Context(), domain.Judge{
		EventID:     eventID,
		UserID:      req.UserID,
		Name:        req.Name,
		Description: req.Description,
		Country:     req.Country,
		City:        req.City,
	})
	if err != nil {
		if renderJudgeErr(ctx, err, 0) {
			return
		}

		err = fmt.Errorf("v1.HandleCreateJudge -> h.svc.CreateJudge -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(ctx, err))
		return
	}

	ctx.JSON(http.StatusCreated, judge)
}

// HandleListJudges godoc
// @Summary      List an event's judges
// @Tags         judges
// @Produce      json
// @Param        eventID  path      int true "event ID"
// @Success      200      {array}   domain.Judge
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /events/{eventID}/judges [get]
// @Security     BearerAuth
func (h *JudgeHandler) HandleListJudges(ctx *gin.Context) {
	eventID, err := parseUintParam(ctx, "eventID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	judges, err := h.svc.ListJudges(ctx.Request.Context(), eventID)
	if err != nil {
		if renderJudgeErr(ctx, err, 0) {
			return
		}

		err = fmt.Errorf("v1.HandleListJudges -> h.svc.ListJudges -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, judges)
}

// HandleGetJudge godoc
// @Summary      Get a judge
// @Tags         judges
// @Produce      json
// @Param        eventID  path      int true "event ID"
// @Param        judgeID  path      int true "judge ID"
// @Success      200      {object}  domain.Judge
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /events/{eventID}/judges/{judgeID} [get]
// @Security     BearerAuth
func (h *JudgeHandler) HandleGetJudge(ctx *gin.Context) {
	eventID, err := parseUintParam(ctx, "eventID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	judgeID, err := parseUintParam(ctx, "judgeID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	judge, err := h.svc.GetJudge(ctx.Request.Context(), eventID, judgeID)
	if err != nil {
		if renderJudgeErr(ctx, err, judgeID) {
			return
		}

		err = fmt.Errorf("v1.HandleGetJudge -> h.svc.GetJudge -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, judge)
}

// HandleUpdateJudge godoc
// @Summary      Update a judge's profile or move them to another event
// @Tags         judges
// @Accept       json
// @Produce      json
// @Param        eventID  path      int true "event ID"
// @Param        judgeID  path      int true "judge ID"
// @Param        request  body      request.UpdateJudgeRequest true "request body"
// @Success      200      {object}  domain.Judge
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /events/{eventID}/judges/{judgeID} [patch]
// @Security     BearerAuth
func (h *JudgeHandler) HandleUpdateJudge(ctx *gin.Context) {
	if !requireAdmin(ctx) {
		return
	}

	eventID, err := parseUintParam(ctx, "eventID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	judgeID, err := parseUintParam(ctx, "judgeID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	var req request.UpdateJudgeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	judge, err := h.svc.UpdateJudge(ctx.Request.Context(), eventID, judgeID, req.ToUpdate())
	if err != nil {
		if renderJudgeErr(ctx, err, judgeID) {
			return
		}

		err = fmt.Errorf("v1.HandleUpdateJudge -> h.svc.UpdateJudge -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, judge)
}

// HandleDeleteJudge godoc
// @Summary      Remove a judge from an event's panel
// @Tags         judges
// @Produce      json
// @Param        eventID  path  int true "event ID"
// @Param        judgeID  path  int true "judge ID"
// @Success      204
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /events/{eventID}/judges/{judgeID} [delete]
// @Security     BearerAuth
func (h *JudgeHandler) HandleDeleteJudge(ctx *gin.Context) {
	if !requireAdmin(ctx) {
		return
	}

	eventID, err := parseUintParam(ctx, "eventID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	judgeID, err := parseUintParam(ctx, "judgeID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := h.svc.DeleteJudge(ctx.Request.Context(), eventID, judgeID); err != nil {
		if renderJudgeErr(ctx, err, judgeID) {
			return
		}

		err = fmt.Errorf("v1.HandleDeleteJudge -> h.svc.DeleteJudge -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(ctx, err))
		return
	}

	ctx.Status(http.StatusNoContent)
}

package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dancefest/api/internal/api/handler/v1/request"
	"github.com/dancefest/api/internal/api/handler/v1/response"
	"github.com/dancefest/api/internal/config"
	"github.com/dancefest/api/internal/domain"
	"github.com/dancefest/api/internal/pkg/jwthelper"
	"github.com/dancefest/api/internal/service"
)

type AuthService interface {
	Register(ctx context.Context, user domain.User) (domain.User, error)
	Login(ctx context.Context, email, password string) (domain.User, error)
}

type AuthUserService interface {
	GetUser(ctx context.Context, id uint) (domain.User, error)
	GetRoleAssignments(ctx context.Context, userID uint) ([]domain.RoleAssignment, error)
}

type AuthHandler struct {
	conf *config.APIConfig
	svc  AuthService
	uSvc AuthUserService
}

func NewAuthHandler(conf *config.APIConfig, svc AuthService, uSvc AuthUserService) *AuthHandler {
	return &AuthHandler{
		conf: conf,
		svc:  svc,
		uSvc: uSvc,
	}
}

// HandleRegister godoc
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      request.RegisterRequest true "request body"
// @Success      201      {object}  domain.User
// @Failure      400      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /auth/register [post]
func (h *AuthHandler) HandleRegister(ctx *gin.Context) {
	var req request.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	user, err := h.svc.Register(ctx.Request.Context(), domain.User{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
	})
	if err != nil {
		if errors.Is(err, service.ErrUserEmailExists) {
			response.RenderErr(ctx, response.ErrConflict(service.ErrUserEmailExists))
			return
		}

		err = fmt.Errorf("v1.HandleRegister -> h.svc.Register -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(ctx, err))
		return
	}

	ctx.JSON(http.StatusCreated, user)
}

// HandleLogin godoc
// @Summary      Login a user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      request.LoginRequest true "request body"
// @Success      200      {object}  response.LoginResponse
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /auth/login [post]
func (h *AuthHandler) HandleLogin(ctx *gin.Context) {
	var req request.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	user, err := h.svc.Login(ctx.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) ||
			errors.Is(err, service.ErrWrongPassword) ||
			errors.Is(err, service.ErrUserInactive) {
			response.RenderErr(ctx, response.ErrWrongCredentials(errors.New("wrong credentials")))
			return
		}

		err = fmt.Errorf("v1.HandleLogin -> h.svc.Login -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(ctx, err))
		return
	}

	token, err := jwthelper.GenerateToken([]byte(h.conf.JWTSigningKey), user.ID, ctx.Request.UserAgent())
	if err != nil {
		err = fmt.Errorf("v1.HandleLogin -> jwthelper.GenerateToken -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, response.LoginResponse{
		Token: token,
		User:  user,
	})
}

// HandleGetMe godoc
// @Summary      Get the authenticated user's profile and role assignments
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.MeResponse
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /auth/me [get]
// @Security     BearerAuth
func (h *AuthHandler) HandleGetMe(ctx *gin.Context) {
	actor, respErr := getActor(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	user, err := h.uSvc.GetUser(ctx.Request.Context(), actor.UserID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("user", "id", actor.UserID))
			return
		}

		err = fmt.Errorf("v1.HandleGetMe -> h.uSvc.GetUser -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(ctx, err))
		return
	}

	assignments, err := h.uSvc.GetRoleAssignments(ctx.Request.Context(), actor.UserID)
	if err != nil {
		err = fmt.Errorf("v1.HandleGetMe -> h.uSvc.GetRoleAssignments -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, response.MeResponse{
		User:        user,
		Assignments: assignments,
		IsAdmin:     actor.IsAdmin,
	})
}

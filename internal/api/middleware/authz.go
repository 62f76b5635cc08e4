package middleware

import (
	"context"
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/dancefest/api/internal/api/handler/v1/response"
	"github.com/dancefest/api/internal/authz"
)

const CtxKeyAuthz = "authzContext"

// ContextResolver loads a user's role assignments and folds them into an
// authorization context.
type ContextResolver interface {
	ResolveContext(ctx context.Context, userID uint) (authz.Context, error)
}

// AuthzContext resolves the caller's permissions once per request, after
// VerifyJWT, so downstream permission checks never touch the database.
func AuthzContext(resolver ContextResolver) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		userID, ok := UserID(ctx)
		if !ok {
			response.RenderErr(ctx, response.ErrNotLoggedIn())
			return
		}

		actor, err := resolver.ResolveContext(ctx.Request.Context(), userID)
		if err != nil {
			err = fmt.Errorf("middleware.AuthzContext -> resolver.ResolveContext -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(ctx, err))
			return
		}

		ctx.Set(CtxKeyAuthz, actor)
		ctx.Next()
	}
}

// Actor returns the authorization context set by AuthzContext.
func Actor(ctx *gin.Context) (authz.Context, bool) {
	v, ok := ctx.Get(CtxKeyAuthz)
	if !ok {
		return authz.Context{}, false
	}

	actor, ok := v.(authz.Context)
	return actor, ok
}

// RequirePermission gates a route on a permission key. When eventParam names
// a path parameter, its value scopes the check to that event; an absent or
// malformed value falls back to evaluating the global scope only, it never
// errors. Admins always pass.
func RequirePermission(permission, eventParam string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		actor, ok := Actor(ctx)
		if !ok {
			response.RenderErr(ctx, response.ErrNotLoggedIn())
			return
		}

		scope := authz.Global()
		if eventParam != "" {
			if id, err := strconv.ParseUint(ctx.Param(eventParam), 10, 32); err == nil && id > 0 {
				scope = authz.ForEvent(uint(id))
			}
		}

		if decision := actor.Authorize(permission, scope); !decision.Allowed {
			response.RenderErr(ctx, response.ErrPermissionDenied())
			return
		}

		ctx.Next()
	}
}

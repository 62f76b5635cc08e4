package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/dancefest/api/internal/api/handler/v1/response"
	"github.com/dancefest/api/internal/pkg/jwthelper"
)

const CtxKeyUserID = "userID"

type Authenticator struct {
	signingKey string
}

func NewAuthenticator(signingKey string) *Authenticator {
	return &Authenticator{
		signingKey: signingKey,
	}
}

// VerifyJWT validates the bearer token and stores the caller's user id on
// the request context. Tokens are bound to the issuing user agent.
func (a *Authenticator) VerifyJWT() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		segments := strings.SplitN(header, " ", 2)
		if len(segments) != 2 || segments[0] != "Bearer" || segments[1] == "" {
			response.RenderErr(ctx, response.ErrNotLoggedIn())
			return
		}

		claims, err := jwthelper.ParseToken([]byte(a.signingKey), segments[1])
		if err != nil {
			response.RenderErr(ctx, response.ErrNotLoggedIn())
			return
		}

		if claims.UserAgent != ctx.Request.UserAgent() {
			response.RenderErr(ctx, response.ErrNotLoggedIn())
			return
		}

		ctx.Set(CtxKeyUserID, claims.UserID)
		ctx.Next()
	}
}

// UserID returns the authenticated caller's id set by VerifyJWT.
func UserID(ctx *gin.Context) (uint, bool) {
	v, ok := ctx.Get(CtxKeyUserID)
	if !ok {
		return 0, false
	}

	id, ok := v.(uint)
	return id, ok
}

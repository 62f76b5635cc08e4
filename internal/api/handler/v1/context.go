package v1

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/dancefest/api/internal/api/handler/v1/response"
	"github.com/dancefest/api/internal/api/middleware"
	"github.com/dancefest/api/internal/authz"
)

func getActor(ctx *gin.Context) (authz.Context, *response.Err) {
	actor, ok := middleware.Actor(ctx)
	if !ok {
		return authz.Context{}, response.ErrNotLoggedIn()
	}

	return actor, nil
}

func parseUintParam(ctx *gin.Context, name string) (uint, error) {
	raw := ctx.Param(name)

	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || v == 0 {
		return 0, fmt.Errorf("invalid %v %q", name, raw)
	}

	return uint(v), nil
}

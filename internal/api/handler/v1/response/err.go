package response

import (
	"fmt"
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Err struct {
	statusCode int

	Msg string `json:"error"`
}

func (e *Err) Error() string {
	return e.Msg
}

func RenderErr(ctx *gin.Context, err *Err) {
	ctx.AbortWithStatusJSON(err.statusCode, err)
}

func ErrBadRequest(err error) *Err {
	return &Err{
		statusCode: http.StatusBadRequest,
		Msg:        err.Error(),
	}
}

func ErrNotLoggedIn() *Err {
	return &Err{
		statusCode: http.StatusUnauthorized,
		Msg:        "authentication required",
	}
}

func ErrWrongCredentials(err error) *Err {
	return &Err{
		statusCode: http.StatusUnauthorized,
		Msg:        err.Error(),
	}
}

// ErrPermissionDenied renders a bare 403; the caller learns nothing about
// which permission or scope was missing.
func ErrPermissionDenied() *Err {
	return &Err{
		statusCode: http.StatusForbidden,
		Msg:        "permission denied",
	}
}

// ErrStageLocked is a 403 distinct from a permission denial: the caller is
// allowed to act on the entity, just not while its event is in the current
// stage. The message names the stage so clients can explain the lock.
func ErrStageLocked(err error) *Err {
	return &Err{
		statusCode: http.StatusForbidden,
		Msg:        err.Error(),
	}
}

func ErrNotFound(entity, key string, value any) *Err {
	return &Err{
		statusCode: http.StatusNotFound,
		Msg:        fmt.Sprintf("%v with %v %v not found", entity, key, value),
	}
}

func ErrConflict(err error) *Err {
	return &Err{
		statusCode: http.StatusConflict,
		Msg:        err.Error(),
	}
}

// ErrInternalServerError logs the wrapped cause with the request id and
// renders a generic message; internals never leak to the client.
func ErrInternalServerError(ctx *gin.Context, err error) *Err {
	zap.L().Error("internal server error",
		zap.String("request_id", requestid.Get(ctx)),
		zap.Error(err),
	)

	return &Err{
		statusCode: http.StatusInternalServerError,
		Msg:        "internal server error",
	}
}

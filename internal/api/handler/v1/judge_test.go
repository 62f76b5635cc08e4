package v1

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/dancefest/api/internal/api/middleware"
	"github.com/dancefest/api/internal/authz"
	"github.com/dancefest/api/internal/domain"
	"github.com/dancefest/api/internal/service"
)

type fakeJudgeService struct {
	created []domain.Judge
	err     error
}

func (f *fakeJudgeService) CreateJudge(_ context.Context, judge domain.Judge) (domain.Judge, error) {
	if f.err != nil {
		return domain.Judge{}, f.err
	}
	judge.ID = uint(len(f.created) + 1)
	f.created = append(f.created, judge)
	return judge, nil
}

func (f *fakeJudgeService) ListJudges(context.Context, uint) ([]domain.Judge, error) {
	return nil, f.err
}

func (f *fakeJudgeService) GetJudge(context.Context, uint, uint) (domain.Judge, error) {
	return domain.Judge{}, f.err
}

func (f *fakeJudgeService) UpdateJudge(context.Context, uint, uint, domain.JudgeUpdate) (domain.Judge, error) {
	return domain.Judge{}, f.err
}

func (f *fakeJudgeService) DeleteJudge(context.Context, uint, uint) error {
	return f.err
}

func newJudgeRouter(svc JudgeService, actor authz.Context) *gin.Engine {
	gin.SetMode(gin.TestMode)

	h := NewJudgeHandler(svc)
	router := gin.New()
	router.Use(func(ctx *gin.Context) {
		ctx.Set(middleware.CtxKeyAuthz, actor)
	})
	router.POST("/events/:eventID/judges", h.HandleCreateJudge)
	router.DELETE("/events/:eventID/judges/:judgeID", h.HandleDeleteJudge)

	return router
}

func adminContext() authz.Context {
	return authz.Resolve(1, []authz.Assignment{{RoleKey: domain.RoleAdmin}})
}

func managerContext(eventID uint) authz.Context {
	return authz.Resolve(2, []authz.Assignment{{
		RoleKey:     domain.RoleModerator,
		Scope:       authz.ForEvent(eventID),
		Permissions: []string{domain.PermEventManage},
	}})
}

func TestHandleCreateJudge(t *testing.T) {
	body := `{"user_id": 10, "name": "Nadia Petrova"}`

	t.Run("admin creates the panel entry", func(t *testing.T) {
		svc := &fakeJudgeService{}
		router := newJudgeRouter(svc, adminContext())

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/events/1/judges", strings.NewReader(body))
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Len(t, svc.created, 1)
	})

	t.Run("event manager without admin is refused", func(t *testing.T) {
		svc := &fakeJudgeService{}
		router := newJudgeRouter(svc, managerContext(1))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/events/1/judges", strings.NewReader(body))
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Empty(t, svc.created)
	})

	t.Run("unknown event reports the event", func(t *testing.T) {
		svc := &fakeJudgeService{err: service.ErrEventNotFound}
		router := newJudgeRouter(svc, adminContext())

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/events/99/judges", strings.NewReader(body))
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "event")
	})
}

func TestHandleDeleteJudge(t *testing.T) {
	t.Run("admin removes the panel entry", func(t *testing.T) {
		router := newJudgeRouter(&fakeJudgeService{}, adminContext())

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/events/1/judges/3", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("event manager without admin is refused", func(t *testing.T) {
		router := newJudgeRouter(&fakeJudgeService{}, managerContext(1))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/events/1/judges/3", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

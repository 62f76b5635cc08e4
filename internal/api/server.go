package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/dancefest/api/docs"
	v1 "github.com/dancefest/api/internal/api/handler/v1"
	"github.com/dancefest/api/internal/api/middleware"
	"github.com/dancefest/api/internal/config"
	"github.com/dancefest/api/internal/domain"
	"github.com/dancefest/api/internal/pkg/mailer"
	"github.com/dancefest/api/internal/pkg/storage"
	"github.com/dancefest/api/internal/repository"
	"github.com/dancefest/api/internal/repository/dao"
	"github.com/dancefest/api/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

type handlers struct {
	auth        *v1.AuthHandler
	event       *v1.EventHandler
	studio      *v1.StudioHandler
	dancer      *v1.DancerHandler
	performance *v1.PerformanceHandler
	reference   *v1.ReferenceHandler
	judge       *v1.JudgeHandler
	invitation  *v1.InvitationHandler
}

func NewServer(conf *config.AppConfig, db *gorm.DB, store storage.Storage, mail mailer.Mailer) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	userRepo := repository.NewUserRepository(dao.NewUserDAO(db), dao.NewRoleDAO(db))
	eventRepo := repository.NewEventRepository(dao.NewEventDAO(db))
	studioRepo := repository.NewStudioRepository(dao.NewStudioDAO(db))
	dancerRepo := repository.NewDancerRepository(dao.NewDancerDAO(db))
	performanceRepo := repository.NewPerformanceRepository(dao.NewPerformanceDAO(db), dao.NewReferenceDAO(db))
	judgeRepo := repository.NewJudgeRepository(dao.NewJudgeDAO(db))
	invitationRepo := repository.NewInvitationRepository(dao.NewInvitationDAO(db))

	userSvc := service.NewUserService(userRepo)
	studioSvc := service.NewStudioService(studioRepo, eventRepo, store)

	h := handlers{
		auth:        v1.NewAuthHandler(conf.API, service.NewAuthService(userRepo), userSvc),
		event:       v1.NewEventHandler(service.NewEventService(eventRepo)),
		studio:      v1.NewStudioHandler(studioSvc, userSvc),
		dancer:      v1.NewDancerHandler(service.NewDancerService(dancerRepo, studioSvc)),
		performance: v1.NewPerformanceHandler(service.NewPerformanceService(performanceRepo, dancerRepo, studioSvc)),
		reference:   v1.NewReferenceHandler(service.NewReferenceService(performanceRepo, eventRepo)),
		judge:       v1.NewJudgeHandler(service.NewJudgeService(judgeRepo, eventRepo)),
		invitation:  v1.NewInvitationHandler(service.NewInvitationService(invitationRepo, eventRepo, mail)),
	}

	s.MountHandlers(h, userSvc)

	return s
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(h handlers, resolver middleware.ContextResolver) {
	const basePath = "/api/v1"

	public := s.Router.Group(basePath)
	{
		public.POST("/auth/register", h.auth.HandleRegister)
		public.POST("/auth/login", h.auth.HandleLogin)
		public.POST("/invitations/accept", h.invitation.HandleAcceptInvitation)
		public.GET("/invitations/:token", h.invitation.HandleGetInvitation)
	}

	authed := s.Router.Group(basePath,
		middleware.NewAuthenticator(s.Config.API.JWTSigningKey).VerifyJWT(),
		middleware.AuthzContext(resolver),
	)
	{
		authed.GET("/auth/me", h.auth.HandleGetMe)

		authed.GET("/events", h.event.HandleListEvents)
		authed.GET("/events/:eventID", h.event.HandleGetEvent)
		authed.POST("/events",
			middleware.RequirePermission(domain.PermEventManage, ""), h.event.HandleCreateEvent)
		authed.PATCH("/events/:eventID",
			middleware.RequirePermission(domain.PermEventManage, "eventID"), h.event.HandleUpdateEvent)

		references := authed.Group("/events/:eventID",
			middleware.RequirePermission(domain.PermEventManage, "eventID"))
		{
			references.POST("/categories", h.reference.HandleCreateCategory)
			references.GET("/categories", h.reference.HandleListCategories)
			references.GET("/categories/:categoryID", h.reference.HandleGetCategory)
			references.PATCH("/categories/:categoryID", h.reference.HandleUpdateCategory)
			references.DELETE("/categories/:categoryID", h.reference.HandleDeleteCategory)

			references.POST("/age-groups", h.reference.HandleCreateAgeGroup)
			references.GET("/age-groups", h.reference.HandleListAgeGroups)
			references.GET("/age-groups/:ageGroupID", h.reference.HandleGetAgeGroup)
			references.PATCH("/age-groups/:ageGroupID", h.reference.HandleUpdateAgeGroup)
			references.DELETE("/age-groups/:ageGroupID", h.reference.HandleDeleteAgeGroup)

			references.POST("/formats", h.reference.HandleCreateFormat)
			references.GET("/formats", h.reference.HandleListFormats)
			references.GET("/formats/:formatID", h.reference.HandleGetFormat)
			references.PATCH("/formats/:formatID", h.reference.HandleUpdateFormat)
			references.DELETE("/formats/:formatID", h.reference.HandleDeleteFormat)

			// Judge mutations additionally require an admin; the handlers
			// enforce that on top of the group's event.manage gate.
			references.POST("/judges", h.judge.HandleCreateJudge)
			references.GET("/judges", h.judge.HandleListJudges)
			references.GET("/judges/:judgeID", h.judge.HandleGetJudge)
			references.PATCH("/judges/:judgeID", h.judge.HandleUpdateJudge)
			references.DELETE("/judges/:judgeID", h.judge.HandleDeleteJudge)
		}

		// Studio registration is open to any authenticated user; the service
		// applies the stage gate and starts non-admin registrations PENDING.
		authed.POST("/events/:eventID/studios", h.studio.HandleRegisterStudio)
		authed.GET("/events/:eventID/studios", h.studio.HandleListStudios)
		authed.PATCH("/events/:eventID/studios/:studioID/registration",
			middleware.RequirePermission(domain.PermEventRegister, "eventID"), h.studio.HandleSetRegistrationStatus)
		authed.DELETE("/events/:eventID/studios/:studioID/registration", h.studio.HandleCancelRegistration)

		// Studio-scoped routes carry no event id in the path, so per-studio
		// access is resolved in the service layer instead of the route gate.
		authed.GET("/studios/:studioID", h.studio.HandleGetStudio)
		authed.PATCH("/studios/:studioID", h.studio.HandleUpdateStudio)
		authed.DELETE("/studios/:studioID",
			middleware.RequirePermission(domain.PermStudioManage, ""), h.studio.HandleDeleteStudio)
		authed.PATCH("/studios/:studioID/representatives/:repID", h.studio.HandleUpdateRepresentative)
		authed.POST("/studios/:studioID/logo", h.studio.HandleUploadLogo)

		authed.POST("/studios/:studioID/dancers", h.dancer.HandleCreateDancer)
		authed.GET("/studios/:studioID/dancers", h.dancer.HandleListDancers)
		authed.PATCH("/dancers/:dancerID", h.dancer.HandleUpdateDancer)
		authed.DELETE("/dancers/:dancerID", h.dancer.HandleDeleteDancer)

		authed.POST("/studios/:studioID/performances", h.performance.HandleCreatePerformance)
		authed.GET("/studios/:studioID/performances", h.performance.HandleListPerformances)
		authed.GET("/studios/:studioID/performances/:performanceID", h.performance.HandleGetPerformance)
		authed.PATCH("/studios/:studioID/performances/:performanceID", h.performance.HandleUpdatePerformance)
		authed.DELETE("/studios/:studioID/performances/:performanceID", h.performance.HandleDeletePerformance)

		invitations := authed.Group("/invitations",
			middleware.RequirePermission(domain.PermEventManage, ""))
		{
			invitations.POST("", h.invitation.HandleCreateInvitation)
			invitations.GET("", h.invitation.HandleListInvitations)
		}
	}

	s.Router.GET("/", v1.HandleHealthcheck)
	s.Router.Static("/images", s.Config.Storage.UploadDir)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Dancefest API"
	docs.SwaggerInfo.Description = "Dance competition management API."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}

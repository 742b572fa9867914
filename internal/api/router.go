package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/freelancehub/time-tracking-api/docs"
	"github.com/freelancehub/time-tracking-api/internal/api/handler"
	"github.com/freelancehub/time-tracking-api/internal/api/middleware"
	"github.com/freelancehub/time-tracking-api/internal/core/domain"
	"github.com/freelancehub/time-tracking-api/internal/core/rbac"
	"github.com/freelancehub/time-tracking-api/internal/core/service"
	"github.com/freelancehub/time-tracking-api/internal/core/token"
	mongorepo "github.com/freelancehub/time-tracking-api/internal/infrastructure/db/mongo"
	redisinfra "github.com/freelancehub/time-tracking-api/internal/infrastructure/db/redis"
	"github.com/freelancehub/time-tracking-api/internal/pkg/config"
	"github.com/freelancehub/time-tracking-api/pkg/logger"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *goredis.Client, tokens *token.Service) *echo.Echo {
	log := logger.With("router")

	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("timetracker"))

	// Health probes and the metrics scrape stay outside the rate limit so
	// monitoring keeps working when a client burns the budget.
	limiter := redisinfra.NewRateLimiter(rdb, cfg.RateLimitMax, cfg.RateLimitWindow)

	// --- Dependencies ---
	registry := rbac.NewRegistry()

	userRepo := mongorepo.NewUserRepository(db)
	roleRepo := mongorepo.NewRoleRepository(db)
	projectRepo := mongorepo.NewProjectRepository(db)
	hoursRepo := mongorepo.NewWorkingHoursRepository(db)
	commRepo := mongorepo.NewCommunicationRepository(db)

	emailer := service.NewLogEmailer(cfg.BaseURL, log)

	userService := service.NewUserService(userRepo, roleRepo, registry, tokens, emailer, log)
	roleService := service.NewRoleService(roleRepo, registry, log)
	projectService := service.NewProjectService(projectRepo, userRepo, log)
	hoursService := service.NewWorkingHoursService(hoursRepo, projectRepo, userRepo, log)
	commService := service.NewCommunicationService(commRepo, hoursRepo, log)

	userHandler := handler.NewUserHandler(userService)
	roleHandler := handler.NewRoleHandler(roleService)
	projectHandler := handler.NewProjectHandler(projectService)
	hoursHandler := handler.NewWorkingHoursHandler(hoursService)
	commHandler := handler.NewCommunicationHandler(commService)

	authn := middleware.Auth(tokens)

	// --- Public routes ---
	api := e.Group("/api", middleware.RateLimit(limiter, log))
	api.POST("/users/register", userHandler.Register)
	api.GET("/users/verify-email", userHandler.VerifyEmail)
	api.POST("/users/login", userHandler.Login)

	// --- User management ---
	manage := middleware.RequireRole(domain.RoleAdmin, domain.RoleProjectManager)

	users := api.Group("/users", authn)
	users.GET("", userHandler.List, manage)
	users.GET("/decode-token", userHandler.Decode)
	users.GET("/:id", userHandler.Get)
	users.PATCH("/:id/update", userHandler.Update, middleware.RequirePermission(registry, "users:update", "users:update_own"))
	users.PATCH("/:id/assign-role", userHandler.AssignRole, manage)
	users.DELETE("/:id", userHandler.Delete, manage)

	// --- Role management (reads need a login, mutations an admin) ---
	roles := api.Group("/roles", authn)
	roles.POST("", roleHandler.Create, middleware.RequireRole(domain.RoleAdmin))
	roles.GET("", roleHandler.List)
	roles.GET("/:name", roleHandler.Get)
	roles.PUT("/:name", roleHandler.UpdateGrants, middleware.RequireRole(domain.RoleAdmin))
	roles.DELETE("/:name", roleHandler.Delete, middleware.RequireRole(domain.RoleAdmin))

	// --- Projects ---
	projects := api.Group("/projects", authn)
	projects.POST("", projectHandler.Create, manage)
	projects.GET("", projectHandler.List, middleware.RequirePermission(registry, "projects:view"))
	projects.PUT("/:id/freelancers", projectHandler.AssignFreelancers, middleware.RequirePermission(registry, "projects:assign"))

	// --- Working hours ---
	hours := api.Group("/working-hours", authn)
	hours.POST("", hoursHandler.Log, middleware.RequirePermission(registry, "hours:create"))
	hours.GET("", hoursHandler.ListOwn, middleware.RequirePermission(registry, "hours:view_own"))
	hours.GET("/approval-requests", hoursHandler.ApprovalRequests, middleware.RequireRole(domain.RoleProjectManager))
	hours.PUT("/:id/approval", hoursHandler.Approve, middleware.RequireRole(domain.RoleProjectManager))

	// --- Communication thread ---
	comms := api.Group("", authn)
	comms.POST("/comments", commHandler.CreateComment, middleware.RequirePermission(registry, "comments:create"))
	comms.POST("/replies", commHandler.CreateReply, middleware.RequirePermission(registry, "replys:create"))
	comms.POST("/reply-comments", commHandler.CreateReplyComment, middleware.RequirePermission(registry, "replycomments:create"))

	// --- Observability and docs (no auth required) ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)
	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	return e
}

package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/legalsheba/legalsheba-api/internal/api/handler"
	"github.com/legalsheba/legalsheba-api/internal/api/middleware"
	"github.com/legalsheba/legalsheba-api/internal/core/domain"
	"github.com/legalsheba/legalsheba-api/internal/core/service"
	mongodb "github.com/legalsheba/legalsheba-api/internal/infrastructure/db/mongo"
	redisdb "github.com/legalsheba/legalsheba-api/internal/infrastructure/db/redis"
	"github.com/legalsheba/legalsheba-api/internal/infrastructure/hash"
	"github.com/legalsheba/legalsheba-api/internal/infrastructure/http/handlers"
)

// NewRouter builds and returns the Echo instance with all routes registered.
//
// Route classes: public routes take no principal, authenticated routes
// sit behind RequireAuth, and info-hub mutations additionally require
// the ADMIN role. Ownership rules live inside the appointment service.
func NewRouter(db *mongo.Database, rdb *redis.Client, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("legalsheba"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	lawyerRepo := mongodb.NewLawyerRepository(db)
	appointmentRepo := mongodb.NewAppointmentRepository(db)
	articleRepo := mongodb.NewArticleRepository(db)
	directoryCache := redisdb.NewDirectoryCache(rdb, log)

	tokenService := service.NewTokenService(jwtSecret, tokenTTL)
	resolver := service.NewPrincipalResolver(userRepo)
	hasher := hash.NewBcryptHasher()

	authService := service.NewAuthService(userRepo, lawyerRepo, directoryCache, hasher, tokenService)
	lawyerService := service.NewLawyerService(lawyerRepo, directoryCache, log)
	appointmentService := service.NewAppointmentService(appointmentRepo, lawyerRepo, userRepo, log)
	articleService := service.NewArticleService(articleRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	lawyerHandler := handler.NewLawyerHandler(lawyerService)
	appointmentHandler := handler.NewAppointmentHandler(appointmentService)
	articleHandler := handler.NewArticleHandler(articleService)

	e.Use(middleware.Authenticate(tokenService, resolver))
	requireAuth := middleware.RequireAuth()
	adminOnly := middleware.RequireRole(domain.RoleAdmin)

	// --- Auth routes (public) ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/register-lawyer", authHandler.RegisterLawyer)
	e.POST("/auth/login", authHandler.Login)

	// --- Lawyer directory ---
	e.GET("/lawyers", lawyerHandler.List)
	e.GET("/lawyers/me/profile-id", lawyerHandler.MyProfileID, requireAuth)
	e.GET("/lawyers/by-user/:userId/profile-id", lawyerHandler.ProfileIDByUser)
	e.GET("/lawyers/:id", lawyerHandler.Get)

	// --- Appointments (authenticated) ---
	e.POST("/appointments", appointmentHandler.Create, requireAuth)
	e.GET("/appointments/my", appointmentHandler.ListMine, requireAuth)
	e.GET("/appointments/by-lawyer/:id", appointmentHandler.ListByLawyer, requireAuth)
	e.PATCH("/appointments/:id/status", appointmentHandler.UpdateStatus, requireAuth)

	// --- Info hub (public reads, admin mutations) ---
	e.GET("/infohub", articleHandler.List)
	e.GET("/infohub/:id", articleHandler.Get)
	e.POST("/infohub", articleHandler.Create, requireAuth, adminOnly)
	e.PUT("/infohub/:id", articleHandler.Update, requireAuth, adminOnly)
	e.DELETE("/infohub/:id", articleHandler.Delete, requireAuth, adminOnly)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}

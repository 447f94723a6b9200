package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/notable/notes-api/docs"
	"github.com/notable/notes-api/internal/api/handler"
	"github.com/notable/notes-api/internal/api/middleware"
	"github.com/notable/notes-api/internal/core/service"
	"github.com/notable/notes-api/internal/infrastructure/config"
	mongodb "github.com/notable/notes-api/internal/infrastructure/db/mongo"
	redisdb "github.com/notable/notes-api/internal/infrastructure/db/redis"
	healthhandlers "github.com/notable/notes-api/internal/infrastructure/http/handlers"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("notes"))

	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Dependencies ---
	noteRepo := mongodb.NewNoteRepository(db)
	userRepo := mongodb.NewUserRepository(db)
	limiter := redisdb.NewLoginLimiter(rdb)

	noteService := service.NewNoteService(noteRepo, log)
	authService := service.NewAuthService(userRepo, limiter, cfg.JWTSecret, cfg.JWTTTL, log)
	userService := service.NewUserService(userRepo, log)

	noteHandler := handler.NewNoteHandler(noteService)
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)

	// --- Auth routes (no token required) ---
	e.POST("/auth/signup", authHandler.Signup)
	e.POST("/auth/login", authHandler.Login)

	// --- Authenticated API ---
	v1 := e.Group("/v1", middleware.Auth(cfg.JWTSecret))

	v1.POST("/notes", noteHandler.Create)
	v1.GET("/notes", noteHandler.List)
	v1.GET("/notes/stats", noteHandler.Stats)
	v1.GET("/notes/tags", noteHandler.Tags)
	v1.GET("/notes/:id", noteHandler.Get)
	v1.PATCH("/notes/:id", noteHandler.Update)
	v1.DELETE("/notes/:id", noteHandler.Remove)
	v1.DELETE("/notes/:id/hard", noteHandler.HardDelete)
	v1.POST("/notes/:id/restore", noteHandler.Restore)

	v1.GET("/users/:id", userHandler.GetByID)
	v1.GET("/users/email/:email", userHandler.GetByEmail)
	v1.PUT("/users/:id", userHandler.UpdateProfile)
	v1.PUT("/users/:id/password", userHandler.UpdatePassword)

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	// --- Health probes (no auth required) ---
	healthHandler := healthhandlers.NewHealthHandler()
	healthDepsHandler := healthhandlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	return e
}

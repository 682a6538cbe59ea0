package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"

	"github.com/admindesk/user-service/internal/api/handler"
	"github.com/admindesk/user-service/internal/api/middleware"
	"github.com/admindesk/user-service/internal/core/domain"
	"github.com/admindesk/user-service/internal/core/ports"
)

// Dependencies carries everything the router needs, constructed by the
// caller. Nothing here reads ambient state.
type Dependencies struct {
	Auth   ports.AuthService
	Users  ports.UserService
	Tokens ports.TokenService
	Store  handler.Pinger
	Logger zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("userservice"))

	authHandler := handler.NewAuthHandler(deps.Auth)
	userHandler := handler.NewUserHandler(deps.Users)
	healthHandler := handler.NewHealthHandler(deps.Store)

	authenticated := middleware.Auth(deps.Tokens)
	adminOnly := middleware.RequireAccess(domain.RoleAdmin)

	// --- Auth ---
	e.POST("/api/login", authHandler.Login)
	e.GET("/api/me", authHandler.Me, authenticated)

	// --- User administration (both gates) ---
	users := e.Group("/api/users", authenticated, adminOnly)
	users.GET("", userHandler.List)
	users.POST("", userHandler.Create)
	users.GET("/:id", userHandler.Get)
	users.PUT("/:id", userHandler.Update)
	users.DELETE("/:id", userHandler.Delete)

	// --- Probes, metrics, docs (no auth required) ---
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/api-docs/*", echoswagger.WrapHandler)

	return e
}

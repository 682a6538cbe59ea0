package main

import (
	"context"
	"errors"
	"net/http"

	_ "github.com/admindesk/user-service/docs" // swagger document

	"github.com/admindesk/user-service/internal/api"
	"github.com/admindesk/user-service/internal/api/handler"
	"github.com/admindesk/user-service/internal/core/ports"
	"github.com/admindesk/user-service/internal/core/service"
	"github.com/admindesk/user-service/internal/infrastructure/db/file"
	mongodb "github.com/admindesk/user-service/internal/infrastructure/db/mongo"
	"github.com/admindesk/user-service/internal/pkg/config"
	"github.com/admindesk/user-service/pkg/logger"
)

// @title        User Management API
// @version      1.0
// @description  Password login issuing bearer tokens, and admin-gated CRUD over user records.
// @BasePath     /
// @securityDefinitions.apikey BearerAuth
// @in           header
// @name         Authorization
// @description  Type "Bearer" followed by a space and the token.
func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	ctx := context.Background()

	var (
		repo  ports.UserRepository
		store handler.Pinger
	)
	switch cfg.Store.Driver {
	case "mongo":
		client, db, err := mongodb.Connect(ctx, mongodb.Config{
			URI:      cfg.Store.Mongo.URI,
			Database: cfg.Store.Mongo.Database,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("mongo connection failed")
		}
		defer func() { _ = client.Disconnect(ctx) }()

		users := mongodb.NewUserRepository(db)
		if err := users.EnsureIndexes(ctx); err != nil {
			log.Fatal().Err(err).Msg("mongo index setup failed")
		}
		repo, store = users, users
	default:
		users := file.NewUserRepository(cfg.Store.Path)
		repo, store = users, users
	}

	hasher := service.NewBcryptHasher(0)
	tokens := service.NewJWTTokenService(cfg.JWTSecret, cfg.TokenTTL)
	userService := service.NewUserService(repo, hasher, log)
	authService := service.NewAuthService(repo, hasher, tokens, log)

	if err := userService.SeedAdmin(ctx, ports.SeedAdminInput{
		Name:     cfg.Admin.Name,
		Email:    cfg.Admin.Email,
		Password: cfg.Admin.Password,
	}); err != nil {
		log.Fatal().Err(err).Msg("admin seeding failed")
	}

	e := api.NewRouter(api.Dependencies{
		Auth:   authService,
		Users:  userService,
		Tokens: tokens,
		Store:  store,
		Logger: log,
	})

	log.Info().Str("port", cfg.Port).Str("store", cfg.Store.Driver).Msg("starting server")
	if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

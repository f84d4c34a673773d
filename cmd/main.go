package main

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/lokamarket/auth-service/config"
	"github.com/lokamarket/auth-service/db"
	"github.com/lokamarket/auth-service/internal/auth/handler"
	repo "github.com/lokamarket/auth-service/internal/auth/repository/postgres"
	"github.com/lokamarket/auth-service/internal/auth/service"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync()

	if err := db.RunMigrations(cfg.DBURL, "db/migrations"); err != nil {
		logger.Fatal("migrations failed", zap.Error(err))
	}

	pool, err := db.NewPostgresPool(context.Background(), cfg.DBURL)
	if err != nil {
		logger.Fatal("database connection failed", zap.Error(err))
	}
	defer pool.Close()

	repository := repo.NewPostgresRepository(pool)
	passwords := service.NewBcryptVerifier()
	tokenService := service.NewTokenService(cfg.AccessTokenSecret, cfg.AccessTokenExpiry())
	authenticator := service.NewCredentialAuthenticator(repository, passwords, logger)
	lifecycle := service.NewRefreshTokenLifecycleManager(repository, cfg.RefreshTokenExpiry(), cfg.RefreshSecretBytes, logger)
	authService := service.NewAuthService(authenticator, lifecycle, repository, repository, repository, passwords, tokenService, cfg, logger)
	authHandler := handler.NewAuthHandler(authService, tokenService)

	app := fiber.New()
	handler.RegisterRoutes(app, authHandler)

	logger.Info("starting auth service", zap.String("port", cfg.Port), zap.String("env", cfg.Env))
	if err := app.Listen(":" + cfg.Port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

package main

import (
	"context"
	"log"
	"net/http"

	_ "vault/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"vault/internal/auth"
	"vault/internal/cache"
	"vault/internal/config"
	"vault/internal/db"
	"vault/internal/handler"
	"vault/internal/model"
	"vault/internal/repository"
	"vault/internal/router"
	"vault/internal/service"
)

// @title Vault Secure Content Platform API
// @version 1.0
// @description Secure content platform with cookie sessions, a document library, and an activity log.
// @host localhost:8080
// @BasePath /
// @schemes http
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Document{},
		&model.Activity{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	documentRepo := repository.NewDocumentRepository(gormDB)
	activityRepo := repository.NewActivityRepository(gormDB)

	// Seed demo accounts before serving traffic; idempotent across restarts.
	if created, err := service.SeedDemoUsers(context.Background(), userRepo); err != nil {
		log.Fatalf("seed demo users: %v", err)
	} else if created > 0 {
		log.Printf("created %d demo accounts", created)
	}

	// Initialize auth components
	tokens := auth.NewTokenService(cfg.SessionSecret)
	cookies := auth.NewCookieStore(cfg.IsProduction())

	// Initialize services
	authService := service.NewAuthService(userRepo, activityRepo, tokens)
	documentService := service.NewDocumentService(documentRepo, activityRepo, cacheClient, cfg.UploadDir)
	activityService := service.NewActivityService(activityRepo, cacheClient)
	userService := service.NewUserService(userRepo)

	// Initialize handlers
	pageHandler := handler.NewPageHandler()
	authHandler := handler.NewAuthHandler(authService, cookies)
	documentHandler := handler.NewDocumentHandler(documentService)
	userHandler := handler.NewUserHandler(userService, activityService)

	// Register routes
	router.Register(
		e,
		cfg,
		tokens,
		cookies,
		pageHandler,
		authHandler,
		documentHandler,
		userHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}

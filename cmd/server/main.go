package main

import (
	"log"
	"net/http"

	_ "storeapi/docs" // swagger docs

	"github.com/labstack/echo/v4"

	"storeapi/internal/auth"
	"storeapi/internal/config"
	"storeapi/internal/db"
	"storeapi/internal/handler"
	"storeapi/internal/model"
	"storeapi/internal/repository"
	"storeapi/internal/router"
	"storeapi/internal/service"
)

// @title Store API
// @version 1.0
// @description Product catalog CRUD API with JWT authentication and persistent error logging.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	if err := gormDB.AutoMigrate(
		&model.Product{},
		&model.User{},
		&model.ErrorLog{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	// Initialize repositories
	productRepo := repository.NewProductRepository(gormDB)
	userRepo := repository.NewUserRepository(gormDB)
	errorLogRepo := repository.NewErrorLogRepository(gormDB)

	// Initialize services
	jwtService := auth.NewJWTService(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTAudience)
	errorLogService := service.NewErrorLogService(errorLogRepo)
	productService := service.NewProductService(productRepo)
	authService := service.NewAuthService(userRepo, jwtService)

	// Initialize handlers
	productHandler := handler.NewProductHandler(productService, errorLogService)
	authHandler := handler.NewAuthHandler(authService, errorLogService)

	// Register routes
	router.Register(e, jwtService, errorLogService, productHandler, authHandler)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}

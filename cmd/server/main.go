package main

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/aftab6363/Spare-Parts-Depot/internal/auth"
	"github.com/aftab6363/Spare-Parts-Depot/internal/cache"
	"github.com/aftab6363/Spare-Parts-Depot/internal/config"
	"github.com/aftab6363/Spare-Parts-Depot/internal/db"
	"github.com/aftab6363/Spare-Parts-Depot/internal/handler"
	"github.com/aftab6363/Spare-Parts-Depot/internal/model"
	"github.com/aftab6363/Spare-Parts-Depot/internal/repository"
	"github.com/aftab6363/Spare-Parts-Depot/internal/router"
	"github.com/aftab6363/Spare-Parts-Depot/internal/service"
)

// @title Spare Parts Depot API
// @version 1.0
// @description Storefront API: catalog browsing, order workflow and JWT authentication.
// @host localhost:5000
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		logger.Fatal("database init", zap.Error(err))
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Part{},
		&model.Order{},
		&model.OrderItem{},
	); err != nil {
		logger.Fatal("auto-migrate", zap.Error(err))
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	partRepo := repository.NewPartRepository(gormDB)
	orderRepo := repository.NewOrderRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService, tokenStore)
	partService := service.NewPartService(partRepo, cacheClient)
	orderService := service.NewOrderService(orderRepo, cacheClient, logger)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	partHandler := handler.NewPartHandler(partService)
	orderHandler := handler.NewOrderHandler(orderService)

	// Register routes
	router.Register(
		e,
		cfg,
		authHandler,
		partHandler,
		orderHandler,
	)

	addr := ":" + cfg.ServerPort
	logger.Info("starting server", zap.String("addr", addr))
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server start", zap.Error(err))
	}
}

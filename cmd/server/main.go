package main

import (
	"log"
	"net/http"
	"time"

	"tastetrack/docs"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"tastetrack/internal/auth"
	"tastetrack/internal/cache"
	"tastetrack/internal/config"
	"tastetrack/internal/db"
	"tastetrack/internal/handler"
	"tastetrack/internal/model"
	"tastetrack/internal/repository"
	"tastetrack/internal/router"
	"tastetrack/internal/service"
)

// @title TasteTrack POS API
// @version 1.0
// @description Restaurant point-of-sale API with JWT authentication.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()
	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = cfg.SwaggerHost
	}

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.MenuItem{},
		&model.DailyItem{},
		&model.StagedLine{},
		&model.Sale{},
		&model.SaleLine{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Repositories
	userRepo := repository.NewUserRepository(gormDB)
	itemRepo := repository.NewItemRepository(gormDB)
	saleRepo := repository.NewSaleRepository(gormDB)
	reportRepo := repository.NewReportRepository(gormDB)

	// Auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret, time.Duration(cfg.JWTExpiryMinutes)*time.Minute)

	// Services
	authService := service.NewAuthService(userRepo, jwtService)
	userService := service.NewUserService(userRepo)
	itemService := service.NewItemService(itemRepo, cacheClient)
	saleService := service.NewSaleService(saleRepo, itemRepo)
	reportService := service.NewReportService(reportRepo)

	// Handlers
	authHandler := handler.NewAuthHandler(authService, userService)
	userHandler := handler.NewUserHandler(userService)
	itemHandler := handler.NewItemHandler(itemService)
	salesHandler := handler.NewSalesHandler(saleService)
	reportHandler := handler.NewReportHandler(reportService)

	router.Register(
		e,
		jwtService,
		authHandler,
		userHandler,
		itemHandler,
		salesHandler,
		reportHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}

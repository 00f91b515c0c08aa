package main

import (
	"os"
	"os/signal"
	"syscall"

	configs "github.com/autoservis/orders-api/config"
	"github.com/autoservis/orders-api/internal/handler"
	"github.com/autoservis/orders-api/internal/repository"
	"github.com/autoservis/orders-api/internal/router"
	"github.com/autoservis/orders-api/internal/service"
	"github.com/autoservis/orders-api/pkg/database"
	"github.com/autoservis/orders-api/pkg/logger"
	"go.uber.org/zap"
)

func main() {
	config, err := configs.LoadConfig()
	if err != nil {
		panic("Failed to load config: " + err.Error())
	}

	// Initialize Zap logger
	if err := logger.InitLogger(config); err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer logger.Sync()

	logger.GetLogger().Info("Application starting",
		zap.String("app_name", config.App.Name),
		zap.String("environment", config.App.Environment),
	)

	db, err := database.NewPostgresDB(database.Config{
		Host:            config.Database.Host,
		Port:            config.Database.Port,
		User:            config.Database.User,
		Password:        config.Database.Password,
		Database:        config.Database.Name,
		SSLMode:         config.Database.SSLMode,
		MaxIdleConns:    config.Database.MaxIdleConns,
		MaxOpenConns:    config.Database.MaxOpenConns,
		ConnMaxLifetime: config.Database.ConnMaxLifetime,
		ConnMaxIdleTime: config.Database.ConnMaxIdleTime,
		ConnectTimeout:  config.Database.ConnectTimeout,
	})
	if err != nil {
		logger.GetLogger().Fatal("Failed to connect to database", zap.Error(err))
	}
	defer database.CloseDB(db)

	// Run auto migrations
	if err := database.AutoMigrate(db); err != nil {
		logger.GetLogger().Fatal("Failed to run database migrations", zap.Error(err))
	}
	logger.GetLogger().Info("Database migrated successfully")

	// Seed default statuses and categories on an empty store
	if err := database.Seed(db); err != nil {
		logger.GetLogger().Fatal("Failed to seed database", zap.Error(err))
	}
	logger.GetLogger().Info("Database seeded successfully")

	// Repositories
	orderRepo := repository.NewOrderRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	statusRepo := repository.NewStatusRepository(db)

	// Services
	orderService := service.NewOrderService(orderRepo, categoryRepo, statusRepo)
	categoryService := service.NewCategoryService(categoryRepo, orderRepo)
	statusService := service.NewStatusService(statusRepo, orderRepo)

	// Handlers
	orderHandler := handler.NewOrderHandler(orderService)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	statusHandler := handler.NewStatusHandler(statusService)
	healthHandler := handler.NewHealthHandler(db)

	r := router.NewRouter(
		orderHandler,
		categoryHandler,
		statusHandler,
		healthHandler,
	).SetupRoutes()

	go func() {
		logger.GetLogger().Info("Server starting",
			zap.String("port", config.App.Port),
			zap.String("host", "0.0.0.0"),
		)
		if err := r.Run(":" + config.App.Port); err != nil {
			logger.GetLogger().Fatal("Failed to start server",
				zap.Error(err),
				zap.String("port", config.App.Port),
			)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.GetLogger().Info("Shutting down server...")
}

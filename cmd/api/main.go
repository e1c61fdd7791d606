package main

import (
	"context"
	"fmt"
	"os"

	"github.com/GCF14/JJ-Apartments-Property-Management-System/internal/config"
	"github.com/GCF14/JJ-Apartments-Property-Management-System/internal/database"
	"github.com/GCF14/JJ-Apartments-Property-Management-System/internal/handlers"
	"github.com/GCF14/JJ-Apartments-Property-Management-System/internal/logger"
	"github.com/GCF14/JJ-Apartments-Property-Management-System/internal/services"
	"github.com/GCF14/JJ-Apartments-Property-Management-System/internal/store"
	"github.com/GCF14/JJ-Apartments-Property-Management-System/internal/validator"

	_ "github.com/GCF14/JJ-Apartments-Property-Management-System/internal/docs" // Import swagger docs
)

// @title           JJ Apartments Expenses API
// @version         1.0
// @description     Records, lists and removes property expenses.

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	dbManager, err := database.NewManager(context.Background(), appConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}
	defer dbManager.Close()

	if appConfig.AutoMigrate {
		if err := dbManager.RunMigrations(); err != nil {
			return fmt.Errorf("failed to run database migrations: %w", err)
		}
	}

	var expenseStore store.ExpenseStore
	switch appConfig.DBDriver {
	case config.DriverPgx:
		expenseStore = store.NewPgxStore(dbManager.Pool())
	default:
		expenseStore = store.NewGormStore(dbManager.DB())
	}
	log.Infow("expense store selected", "driver", appConfig.DBDriver)

	validator.Register()

	expenseService := services.NewExpenseService(expenseStore)
	auditService := services.NewAuditService(dbManager.DB())
	expenseHandler := handlers.NewExpenseHandler(expenseService, auditService)

	router := newRouter(appConfig, expenseHandler)

	if appConfig.AuthDisabled {
		log.Warn("Authentication is disabled; expense routes are public")
	}
	log.Infof("Starting expenses API on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}

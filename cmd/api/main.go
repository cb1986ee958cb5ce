package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"kharcha/internal/config"
	"kharcha/internal/database"
	"kharcha/internal/handlers"
	"kharcha/internal/logger"
	"kharcha/internal/middleware"
	"kharcha/internal/services"
	"kharcha/internal/validator"
)

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize database configuration
	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	// Create database manager
	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	// Run migrations
	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Custom binding validators
	validator.Register()

	// Initialize services
	db := dbManager.DB()
	userService := services.NewUserService(db)
	expenseService := services.NewExpenseService(db)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService, expenseService)
	expenseHandler := handlers.NewExpenseHandler(expenseService)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Public user routes, rate limited to slow credential stuffing
	rateLimit := middleware.RateLimit(appConfig.AuthRateLimit, appConfig.AuthRateBurst)
	router.POST("/user/register", rateLimit, authHandler.Register)
	router.POST("/user/login", rateLimit, authHandler.Login)

	// Protected routes: the gate resolves the caller before the handler runs
	authGate := middleware.Auth(userService)
	router.GET("/user/profile", authGate, authHandler.GetProfile)
	router.POST("/expense/add", authGate, expenseHandler.AddExpense)

	log.Infof("Starting Kharcha backend server on port %s", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}

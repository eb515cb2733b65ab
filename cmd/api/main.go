package main

import (
	"fmt"
	"os"

	"ecoshop/internal/config"
	"ecoshop/internal/database"
	"ecoshop/internal/handlers"
	"ecoshop/internal/logger"
	"ecoshop/internal/middleware"
	"ecoshop/internal/ratelimit"
	"ecoshop/internal/services"
	"ecoshop/internal/session"
	"ecoshop/internal/validator"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "ecoshop/internal/docs" // Import swagger docs
)

// @title           EcoShop API
// @version         1.0
// @description     EcoShop is an e-commerce storefront API: product catalog, session carts, orders and an admin panel.

// @host      localhost:8080
// @BasePath  /api

// @securityDefinitions.apikey SessionCookie
// @in cookie
// @name ecoshop_session

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
	if err := dbManager.Migrate(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Register custom binding validators
	validator.Register()

	// Session store: Redis in production, in-memory fallback
	var store session.Store
	if appConfig.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     appConfig.RedisAddr,
			Password: appConfig.RedisPassword,
			DB:       appConfig.RedisDB,
		})
		store = session.NewRedisStore(client)
		log.Infof("Using Redis session store at %s", appConfig.RedisAddr)
	} else {
		store = session.NewMemoryStore()
		log.Warn("REDIS_ADDR not set, using in-memory session store")
	}

	// Initialize services
	db := dbManager.DB()
	limiter := ratelimit.NewLimiter(db)
	auditService := services.NewAuditService(db)
	userService := services.NewUserService(db)
	productService := services.NewProductService(db)
	cartService := services.NewCartService(db)
	orderService := services.NewOrderService(db)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService, auditService, limiter, store)
	productHandler := handlers.NewProductHandler(productService)
	cartHandler := handlers.NewCartHandler(cartService, store)
	orderHandler := handlers.NewOrderHandler(orderService, auditService, store)
	userHandler := handlers.NewUserHandler(userService)
	healthHandler := handlers.NewHealthHandler(db)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.CORS(appConfig.AllowedOrigins))
	router.Use(middleware.SessionLoad(store))
	router.Use(middleware.CSRF())

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")

	// Health check
	api.GET("/health", healthHandler.Check)

	// Auth: POST dispatches on action, GET is the current user, DELETE logs out
	api.POST("/auth", authHandler.Handle)
	api.GET("/auth", middleware.RequireUser(store, auditService), authHandler.CurrentUser)
	api.DELETE("/auth", authHandler.Logout)
	api.POST("/session/restore", authHandler.Restore)

	// Catalog: public listing, admin mutations
	api.GET("/products", productHandler.List)

	// Cart: session-scoped, anonymous allowed
	api.GET("/cart", cartHandler.Get)
	api.POST("/cart", cartHandler.Add)
	api.PUT("/cart", cartHandler.Update)
	api.DELETE("/cart", cartHandler.Remove)

	// Authenticated routes
	auth := api.Group("", middleware.RequireUser(store, auditService))
	auth.GET("/orders", orderHandler.List)
	auth.POST("/orders", orderHandler.Create)

	// Admin routes
	admin := auth.Group("", middleware.RequireAdmin())
	admin.POST("/products", productHandler.Create)
	admin.PUT("/products", productHandler.Update)
	admin.DELETE("/products", productHandler.Delete)
	admin.PUT("/orders", orderHandler.UpdateStatus)
	admin.DELETE("/orders", orderHandler.Delete)
	admin.GET("/users", userHandler.List)
	admin.PUT("/users", userHandler.Update)

	log.Infof("Starting EcoShop backend server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}

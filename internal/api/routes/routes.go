package routes

import (
	"net/http"
	"time"

	"rally-backend/internal/api/handlers"
	"rally-backend/internal/api/middleware"
	"rally-backend/internal/auth"
	"rally-backend/internal/config"
	"rally-backend/internal/repository"
	"rally-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	router := gin.New()

	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validate := validator.New()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	playerRepo := repository.NewPlayerRepository(db)
	associationRepo := repository.NewAssociationRepository(db)
	leagueRepo := repository.NewLeagueRepository(db)

	// Initialize services
	discoveryService := service.NewDiscoveryService(userRepo, playerRepo, associationRepo, leagueRepo)
	discoveryService.SetMinConfidence(cfg.DiscoveryMinConfidence)
	authService := auth.NewAuthService(userRepo, validate, cfg.JWTSecret, time.Duration(cfg.JWTExpiryHours)*time.Hour)

	// Initialize handlers and middleware
	authHandler := auth.NewAuthHandler(authService, discoveryService,
		cfg.DiscoveryRetryAttempts, time.Duration(cfg.DiscoveryRetryDelayMS)*time.Millisecond)
	authMiddleware := auth.NewAuthMiddleware(authService)
	healthHandler := handlers.NewHealthHandler(db)
	associationHandler := handlers.NewAssociationHandler(discoveryService, associationRepo)
	playerHandler := handlers.NewPlayerHandler(playerRepo)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Auth routes
	authGroup := router.Group("/api/auth")
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)
	}

	// API v1 routes, all behind authentication
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())
	{
		associations := v1.Group("/associations")
		{
			associations.GET("/me", associationHandler.GetMyAssociations)
			associations.POST("/discover", associationHandler.DiscoverMine)
			associations.POST("/discover-all", authMiddleware.RequireAdmin(), associationHandler.DiscoverAll)
		}

		players := v1.Group("/players")
		{
			players.GET("/search", playerHandler.SearchPlayers)
		}
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "route not found"})
	})

	return router
}

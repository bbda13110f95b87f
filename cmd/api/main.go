package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/jobtrackr/jobtrackr/internal/auth"
	"github.com/jobtrackr/jobtrackr/internal/config"
	"github.com/jobtrackr/jobtrackr/internal/database"
	"github.com/jobtrackr/jobtrackr/internal/handlers"
	"github.com/jobtrackr/jobtrackr/internal/middleware"
	"github.com/jobtrackr/jobtrackr/internal/repository"
	"github.com/jobtrackr/jobtrackr/internal/services"
)

func main() {
	// 1. Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on the environment")
	}
	cfg := config.Load()

	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	// 2. Database Connection
	db := database.Connect(cfg.PostgresDSN)

	// 3. Initialize Core Services (Dependencies)
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.SessionTTL)
	google := auth.NewGoogleClient(cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.GoogleRedirectURL)

	appRepo := repository.NewApplicationRepository(db)
	userRepo := repository.NewUserRepository(db)

	appService := services.NewApplicationService(appRepo, logger)
	authService := services.NewAuthService(userRepo, tokens, google, logger)

	// 4. Initialize Handlers
	appHandler := handlers.NewApplicationHandler(appService, authService)
	authHandler := handlers.NewAuthHandler(authService)

	// 5. Setup Router & CORS
	r := gin.Default()
	corsConfig := cors.DefaultConfig()
	if cfg.CORSAllowOrigin != "" {
		corsConfig.AllowOrigins = []string{cfg.CORSAllowOrigin}
	} else {
		corsConfig.AllowAllOrigins = true // For development only
	}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	// 6. Define Routes
	api := r.Group("/api/v1")
	{
		api.GET("/health", handlers.HealthCheck)

		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)
		api.POST("/auth/google", authHandler.Google)
		api.GET("/auth/me", middleware.Auth(tokens), authHandler.Me)

		apps := api.Group("/applications", middleware.Auth(tokens))
		{
			apps.GET("", appHandler.List)
			apps.POST("", appHandler.Create)
			apps.PUT("/:id", appHandler.Update)
			apps.DELETE("/:id", appHandler.Delete)
			apps.GET("/stats", appHandler.Stats)
			apps.GET("/export", appHandler.Export)
		}
	}

	logger.WithField("port", cfg.HTTPPort).Info("server starting")
	if err := r.Run(":" + cfg.HTTPPort); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}

package main

import (
	"log"

	"github.com/gin-contrib/sessions"
	redisStore "github.com/gin-contrib/sessions/redis"
	"github.com/gin-gonic/gin"
	"github.com/yukikurage/life-track-api/internal/config"
	"github.com/yukikurage/life-track-api/internal/constants"
	"github.com/yukikurage/life-track-api/internal/database"
	"github.com/yukikurage/life-track-api/internal/handlers"
	"github.com/yukikurage/life-track-api/internal/middleware"
	"github.com/yukikurage/life-track-api/internal/repository"
	"github.com/yukikurage/life-track-api/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed the track catalog before accepting requests
	if err := database.SeedCatalog(); err != nil {
		log.Fatalf("Failed to seed catalog: %v", err)
	}

	// Initialize Gin router
	r := gin.Default()

	// Setup session middleware with Redis
	redisAddr := cfg.RedisHost + ":" + cfg.RedisPort
	store, err := redisStore.NewStore(
		10,        // Redis pool size
		"tcp",     // network type
		redisAddr, // Redis address from config
		"",        // username (empty for default user)
		"",        // password (empty = no password)
		[]byte(cfg.SessionSecret), // authentication key
	)
	if err != nil {
		log.Fatalf("Failed to create Redis store: %v", err)
	}
	// Configure session options based on environment
	isProduction := cfg.GinMode == "release"
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   isProduction, // true in production (HTTPS), false in development
		SameSite: 2,            // SameSite=Lax (1=Strict, 2=Lax, 3=None)
	})
	r.Use(sessions.Sessions(constants.SessionCookieName, store))

	// Initialize repositories
	db := database.GetDB()
	userRepo := repository.NewUserRepository(db)
	catalogRepo := repository.NewCatalogRepository(db)
	progressRepo := repository.NewProgressRepository(db)
	assessmentRepo := repository.NewAssessmentRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo)
	trackService := services.NewTrackService(catalogRepo, userRepo)
	progressService := services.NewProgressService(progressRepo, catalogRepo, userRepo)
	assessmentService := services.NewAssessmentService(assessmentRepo, trackService)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	trackHandler := handlers.NewTrackHandler(trackService)
	progressHandler := handlers.NewProgressHandler(progressService)
	assessmentHandler := handlers.NewAssessmentHandler(assessmentService)
	billingHandler := handlers.NewBillingHandler(authService)

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Life Track API is running",
		})
	})

	// API routes
	api := r.Group("/api")
	{
		// Auth routes (public)
		auth := api.Group("/auth")
		{
			auth.POST("/signup", authHandler.Signup)
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", middleware.RequireAuth(), authHandler.GetCurrentUser)
		}

		// Track catalog routes (protected)
		tracks := api.Group("/tracks")
		tracks.Use(middleware.RequireAuth())
		{
			tracks.GET("", trackHandler.ListTracks)
			tracks.GET("/current", trackHandler.GetCurrentTrack)
			tracks.PUT("/level", trackHandler.AssignLevel)
		}

		// Progress routes (protected)
		progress := api.Group("/progress")
		progress.Use(middleware.RequireAuth())
		{
			progress.GET("/today", progressHandler.GetToday)
			progress.GET("/summary", progressHandler.GetSummary)
			progress.POST("/toggle", progressHandler.Toggle)
		}

		// Assessment and billing (protected)
		api.POST("/assessment", middleware.RequireAuth(), assessmentHandler.Submit)
		api.GET("/assessment/history", middleware.RequireAuth(), assessmentHandler.History)
		api.POST("/billing/upgrade", middleware.RequireAuth(), billingHandler.Upgrade)
	}

	// Start server
	log.Println("Server starting on :8080")
	if err := r.Run(":8080"); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

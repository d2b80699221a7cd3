package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/plateformprojob/backend/auth"
	"github.com/plateformprojob/backend/config"
	_ "github.com/plateformprojob/backend/docs"
	"github.com/plateformprojob/backend/gemini"
	"github.com/plateformprojob/backend/handlers"
	"github.com/plateformprojob/backend/models"
	"github.com/plateformprojob/backend/payments"
	"github.com/plateformprojob/backend/storage"
	"github.com/plateformprojob/backend/workflow"
)

// @title PlateformProJob API
// @version 1.0
// @description Job board backend with AI-assisted CV scoring, interview question generation, and paid job-post credits.
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@plateformprojob.com

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load .env file if present (for local development)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := config.Load()

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	// Set Gin mode based on debug setting
	if cfg.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create context for initialization
	ctx := context.Background()

	// Initialize Firestore client
	log.Println("Initializing Firestore client...")
	firestoreClient, err := storage.NewFirestoreClient(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize Firestore client: %v", err)
	}
	defer firestoreClient.Close()
	log.Println("Firestore client initialized successfully")

	// Initialize media storage client
	log.Println("Initializing media storage client...")
	mediaClient, err := storage.NewMediaClient(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize media storage client: %v", err)
	}
	defer mediaClient.Close()
	log.Println("Media storage client initialized successfully")

	// Initialize Gemini client
	log.Println("Initializing Gemini client...")
	geminiClient, err := gemini.NewClient(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize Gemini client: %v", err)
	}
	defer geminiClient.Close()
	log.Println("Gemini client initialized successfully")

	// Initialize auth services
	jwtService := auth.NewJWTService(cfg)
	googleAuthService := auth.NewGoogleAuthService(cfg)

	// Wire the application pipeline
	ingestor := storage.NewIngestor(mediaClient)
	applicationWorkflow := workflow.NewApplicationWorkflow(firestoreClient, mediaClient, ingestor, geminiClient)

	// Stripe checkout
	checkoutClient := payments.NewCheckoutClient(cfg)

	// Create handlers
	authHandler := handlers.NewAuthHandler(firestoreClient, jwtService, googleAuthService, cfg.FreePostsOnSignup)
	jobHandler := handlers.NewJobHandler(firestoreClient)
	applicationHandler := handlers.NewApplicationHandler(applicationWorkflow, firestoreClient)
	uploadHandler := handlers.NewUploadHandler(ingestor, firestoreClient)
	stripeHandler := handlers.NewStripeHandler(checkoutClient, firestoreClient)
	aiHandler := handlers.NewAIHandler(geminiClient)

	// Create Gin router
	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery())
	router.Use(gin.Logger())

	// Configure CORS for the frontend
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173", "*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Register routes
	router.GET("/health", handlers.HealthCheck)

	api := router.Group("/api")
	{
		// Auth endpoints (public)
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
			authGroup.POST("/google", authHandler.GoogleLogin)
		}

		// Protected auth endpoints (require authentication)
		authProtected := api.Group("/auth")
		authProtected.Use(auth.AuthMiddleware(jwtService))
		{
			authProtected.GET("/profile", authHandler.GetProfile)
			authProtected.PUT("/profile", authHandler.UpdateProfile)
			authProtected.POST("/saved-jobs/:id", authHandler.SaveJob)
		}

		// Job endpoints (listing and detail are public)
		jobs := api.Group("/jobs")
		{
			jobs.GET("", jobHandler.List)
			jobs.GET("/:id", jobHandler.Get)
		}

		// Posting and editing jobs requires a recruiter account
		jobsProtected := api.Group("/jobs")
		jobsProtected.Use(auth.AuthMiddleware(jwtService), auth.RequireRole(models.RoleRecruiter))
		{
			jobsProtected.POST("", jobHandler.Create)
			jobsProtected.PUT("/:id", jobHandler.Update)
		}

		// Application endpoints
		applications := api.Group("/applications")
		{
			applications.POST("/apply", applicationHandler.Apply)
			applications.POST("/apply-one-click", applicationHandler.ApplyOneClick)
			applications.POST("/update-status", applicationHandler.UpdateStatus)
			applications.POST("/withdraw", applicationHandler.Withdraw)
			applications.GET("", applicationHandler.List)
		}

		// Media upload endpoints
		api.POST("/upload-cv", uploadHandler.UploadCV)
		api.POST("/upload-logo", uploadHandler.UploadLogo)

		// Payment endpoints
		stripeGroup := api.Group("/stripe")
		{
			stripeGroup.POST("/create-checkout-session", stripeHandler.CreateCheckoutSession)
			stripeGroup.POST("/fulfill-order", stripeHandler.FulfillOrder)
		}

		// AI content endpoints
		ai := api.Group("/ai")
		{
			ai.POST("/generate-description", aiHandler.GenerateDescription)
			ai.POST("/interview-questions", aiHandler.InterviewQuestions)
		}
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Starting server on port %s...", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Give outstanding requests 30 seconds to complete
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited gracefully")
}

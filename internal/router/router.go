package router

import (
	"log"

	"github.com/jobscout/backend/internal/handlers"
	"github.com/jobscout/backend/internal/middleware"
	"github.com/jobscout/backend/internal/models"
	"github.com/jobscout/backend/internal/repositories"
	"github.com/jobscout/backend/pkg/config"
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"gorm.io/gorm"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	log.Println("Global middleware configured.")
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, pgdb *gorm.DB, cfg *config.Config) {
	// AutoMigrate PostgreSQL models
	err := pgdb.AutoMigrate(
		&models.User{},
		&models.Job{},
		&models.JobSave{},
		&models.EmailNotification{},
	)
	if err != nil {
		log.Fatalf("Failed to auto migrate models: %v", err)
	}
	log.Println("PostgreSQL auto-migrations completed for all models.")

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)
	e.GET("/", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "backend running"})
	})

	// --- Initialize Repositories ---
	userRepo := repositories.NewPostgresUserRepository(pgdb)
	jobRepo := repositories.NewPostgresJobRepository(pgdb)
	jobSaveRepo := repositories.NewPostgresJobSaveRepository(pgdb)

	// --- Unprotected routes for authentication ---
	authGroup := e.Group("/auth")
	authHandler := handlers.NewAuthHandler(userRepo, cfg.JWTSecret)
	authHandler.RegisterAuthRoutes(authGroup)
	log.Println("Auth routes configured.")

	// --- Public job listing and ingestion ---
	jobsGroup := e.Group("/jobs")
	jobHandler := handlers.NewJobHandler(jobRepo)
	jobHandler.RegisterJobRoutes(jobsGroup)
	log.Println("Job routes configured.")

	// --- Protected saved-job routes (require JWT authentication) ---
	savedGroup := e.Group("/jobs")
	savedGroup.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret))
	savedJobHandler := handlers.NewSavedJobHandler(jobSaveRepo, jobRepo)
	savedJobHandler.RegisterSavedJobRoutes(savedGroup)
	log.Println("Saved job routes configured.")

	log.Println("All routes configured.")
}

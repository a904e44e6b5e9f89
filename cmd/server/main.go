package main

import (
	"fmt"
	"log"

	"github.com/architect/geometry-tutor/internal/common/database"
	commonHandlers "github.com/architect/geometry-tutor/internal/common/handlers"
	"github.com/architect/geometry-tutor/internal/common/health"
	"github.com/architect/geometry-tutor/internal/common/middleware"
	tutorHandlers "github.com/architect/geometry-tutor/internal/tutor/handlers"
	"github.com/architect/geometry-tutor/internal/tutor/repository"
	"github.com/architect/geometry-tutor/pkg/config"
	"github.com/architect/geometry-tutor/pkg/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Init(cfg.Server.Env); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Load the concept catalog. A catalog that cannot be loaded or is
	// missing required entity kinds aborts startup.
	var catalogDB *gorm.DB
	var catalog *repository.Catalog

	switch cfg.Catalog.Source {
	case "db":
		if err := database.InitWithType(cfg.Database.Type, cfg.Database.DSN); err != nil {
			log.Fatalf("Failed to initialize database: %v", err)
		}
		defer database.Close()
		catalogDB = database.GetDB()
		catalog, err = repository.LoadCatalogFromDB(catalogDB)
	default:
		catalog, err = repository.LoadCatalogFromYAML(cfg.Catalog.Path)
	}
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}
	repository.SetCatalog(catalog)
	logger.Info("catalog loaded",
		zap.String("source", cfg.Catalog.Source),
		zap.Int("concepts", len(catalog.All())),
		zap.Int("problems", len(catalog.Problems())),
	)

	// Create Gin engine
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())

	// Apply middleware
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.ErrorHandler())

	// Health check endpoints
	healthChecker := health.NewHealthChecker(catalogDB, "1.0.0")
	healthHandler := commonHandlers.NewHealthHandler(healthChecker)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/readiness", healthHandler.Readiness)
	router.GET("/health/liveness", healthHandler.Liveness)
	router.GET("/health/metrics", healthHandler.Metrics)
	router.GET("/health/detailed", healthHandler.Detailed)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		tutorGroup := v1.Group("/tutor")
		{
			tutorGroup.GET("/concepts", tutorHandlers.ListConcepts)
			tutorGroup.GET("/concepts/:code", tutorHandlers.GetConcept)
			tutorGroup.GET("/problems", tutorHandlers.ListProblems)
			tutorGroup.POST("/students/update", tutorHandlers.UpdateStudentKnowledge)
			tutorGroup.GET("/recommendations/:student_id", tutorHandlers.GetRecommendations)
			tutorGroup.GET("/teacher/recommendations", tutorHandlers.GetTeacherRecommendations)
			tutorGroup.POST("/problems/check", tutorHandlers.CheckAnswer)
		}
	}

	// Start server
	address := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Starting geometry tutor server", zap.String("address", address))

	if err := router.Run(address); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

package http

import (
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/narrmaps/narr-maps/internal/usecase"
)

// SetupRouter creates and configures the Gin router.
func SetupRouter(plotUC *usecase.PlotUseCase, dataDir string) *gin.Engine {

	router := gin.Default()

	// Setup CORS middleware.
	corsConfig := cors.DefaultConfig()

	// Get allowed origins from environment variable.
	// Default to allow all origins if not specified.
	allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
	if allowedOrigins != "" {
		corsConfig.AllowOrigins = strings.Split(allowedOrigins, ",")
	} else {
		corsConfig.AllowAllOrigins = true
	}

	router.Use(cors.New(corsConfig))

	// Create handler.
	handler := NewHandler(plotUC, dataDir)

	// API v1 routes.
	v1 := router.Group("/v1")
	maps := v1.Group("/maps")
	maps.GET("/pressure", handler.GetPressureMap)
	maps.GET("/surface", handler.GetSurfaceMap)

	// Health check.
	router.GET("/health", handler.HealthCheck)

	return router
}

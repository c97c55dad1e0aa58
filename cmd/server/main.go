// Package main provides the NARR maps HTTP server.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/narrmaps/narr-maps/internal/adapter/basemap"
	httpHandler "github.com/narrmaps/narr-maps/internal/http"
	"github.com/narrmaps/narr-maps/internal/usecase"
)

const version = "0.1.0"

func main() {
	// Parse command-line flags.
	showHelp := flag.Bool("help", false, "Show usage information")
	showVersion := flag.Bool("version", false, "Show version information")
	flag.Parse()

	if *showHelp {
		printUsage()
		return
	}

	if *showVersion {
		fmt.Printf("narr-maps version %s\n", version)
		return
	}

	// Load configuration from environment.
	port := getEnv("PORT", "8080")
	dataDir := getEnv("DATA_DIR", "./data")
	basemapDir := getEnv("BASEMAP_DIR", "")
	sizeStr := getEnv("MAP_SIZE", "800")

	size, err := strconv.Atoi(sizeStr)
	if err != nil || size <= 0 {
		log.Fatalf("Invalid MAP_SIZE %q: expected a positive pixel count", sizeStr)
	}

	log.Printf("Starting NARR maps server...")
	log.Printf("Port: %s", port)
	log.Printf("Data directory: %s", dataDir)

	// Load basemap layers (optional).
	var bm *basemap.Basemap
	if basemapDir != "" {
		log.Printf("Loading basemap layers from %s", basemapDir)
		bm, err = basemap.Load(basemapDir)
		if err != nil {
			log.Fatalf("Failed to load basemap: %v", err)
		}
		log.Printf("Loaded %d basemap layers", len(bm.Layers))
	} else {
		log.Printf("Basemap disabled (BASEMAP_DIR not set)")
		bm = &basemap.Basemap{}
	}

	// Initialize use case.
	plotUC := usecase.NewPlotUseCase(bm, size)

	// Setup router.
	router := httpHandler.SetupRouter(plotUC, dataDir)

	// Start server.
	addr := fmt.Sprintf(":%s", port)
	log.Printf("Server listening on %s", addr)
	log.Printf("Health check: http://localhost:%s/health", port)
	log.Printf("API endpoints:")
	log.Printf("  - GET /v1/maps/pressure")
	log.Printf("  - GET /v1/maps/surface")

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// printUsage prints usage information.
func printUsage() {
	fmt.Printf("NARR Maps Server v%s\n\n", version)
	fmt.Println("USAGE:")
	fmt.Println("  narr-maps [flags]")
	fmt.Println()
	fmt.Println("FLAGS:")
	fmt.Println("  -help          Show this help message")
	fmt.Println("  -version       Show version information")
	fmt.Println()
	fmt.Println("ENVIRONMENT VARIABLES:")
	fmt.Println("  PORT                    Server port (default: 8080)")
	fmt.Println("  DATA_DIR                NetCDF data directory (default: ./data)")
	fmt.Println("  BASEMAP_DIR             GeoJSON basemap directory (optional)")
	fmt.Println("  MAP_SIZE                Map canvas size in pixels (default: 800)")
	fmt.Println("  CORS_ALLOWED_ORIGINS    Comma-separated list of allowed origins (default: all origins)")
	fmt.Println()
	fmt.Println("EXAMPLES:")
	fmt.Println("  # Start server with default settings")
	fmt.Println("  narr-maps")
	fmt.Println()
	fmt.Println("  # Start server on custom port")
	fmt.Println("  PORT=3000 narr-maps")
	fmt.Println()
	fmt.Println("API ENDPOINTS:")
	fmt.Println("  GET /health                Health check")
	fmt.Println("  GET /v1/maps/pressure      Pressure-level height and wind map (PNG)")
	fmt.Println("  GET /v1/maps/surface       Surface dewpoint and wind map (PNG)")
	fmt.Println()
}

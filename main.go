package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	v1 "github.com/portfolio-backend/api/v1"
	"github.com/portfolio-backend/config"
	"github.com/portfolio-backend/database"
	"github.com/portfolio-backend/lib/uploads"
)

func main() {
	// Load .env and connect to the database
	config.LoadEnv()
	database.Initialize()

	// Set Gin mode
	gin.SetMode(config.GetEnv("GIN_MODE", gin.ReleaseMode))

	// Initialize router
	router := gin.Default()

	// CORS configuration
	router.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	}))

	// Public upload storage
	storageRoot := config.GetEnv("STORAGE_ROOT", "./storage")
	manager := uploads.NewManager(storageRoot, "/storage")
	router.Static("/storage", storageRoot)

	// API routes
	v1.RegisterRoutes(router.Group("/api/v1"), manager)

	// Start server
	port := config.GetEnv("PORT", "8080")
	log.Printf("🚀 Portfolio backend starting on port %s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

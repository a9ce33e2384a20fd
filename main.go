package main

import (
	"log"

	"github.com/arandersen/filing-extractor/config"
	"github.com/arandersen/filing-extractor/handler"
	"github.com/arandersen/filing-extractor/service"

	"github.com/gin-gonic/gin"
)

func main() {
	// Initialize configuration
	cfg := config.LoadConfig()

	// Initialize PDF processor
	pdfProcessor := service.NewPDFProcessor()

	// Initialize service layer
	extractionService := service.NewExtractionService(pdfProcessor)

	// Initialize handler layer
	extractHandler := handler.NewExtractHandler(extractionService, cfg.MaxFileSize)

	// Setup Gin router
	router := gin.Default()

	// Configure max multipart memory (32 MB)
	router.MaxMultipartMemory = 32 << 20

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"service": "Filing Value Extraction",
		})
	})

	// API routes
	api := router.Group("/api/v1")
	{
		filings := api.Group("/filings")
		{
			filings.POST("/extract", extractHandler.ExtractFiling)
		}
	}

	// Start server
	log.Printf("Starting Filing Value Extraction Service on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

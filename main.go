package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"cropsense/adapters/model"
	"cropsense/app"
	"cropsense/domain/knowledge"
	"cropsense/internal"
	"cropsense/internal/config"
	"cropsense/ui"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	logger := internal.NewDefaultLogger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	gin.SetMode(cfg.Server.GinMode)

	registry, err := knowledge.NewRegistry()
	if err != nil {
		log.Fatalf("Failed to build crop knowledge base: %v", err)
	}
	logger.Info("Crop knowledge base loaded (%d crops)", registry.Len())

	modelClient := model.NewClient(model.ClientConfig{
		URL:       cfg.Model.URL,
		Timeout:   cfg.Model.Timeout,
		LabelPath: cfg.Model.LabelPath,
	})

	service := app.NewRecommendationService(modelClient, registry, cfg.Suitability, cfg.Batch.Concurrency)
	server := ui.NewServer(service, registry, cfg.Batch.MaxRows)

	logger.Info("Crop recommendation API listening on :%s", cfg.Server.Port)
	if err := server.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/docuinsight/document-insight-api/internal/config"
	"github.com/docuinsight/document-insight-api/internal/models"
	"github.com/docuinsight/document-insight-api/internal/router"
	"github.com/docuinsight/document-insight-api/internal/services"
	"github.com/docuinsight/document-insight-api/internal/utils"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger := utils.NewLogger(cfg.LogLevel)

	// Initialize analysis service (S3 storage, OCR client, generation client)
	svc, err := services.NewService(context.Background(), cfg, logger)
	if err != nil {
		logger.Fatal("Failed to initialize analysis service", "error", err)
	}

	defaults := models.InferenceParams{
		MaxNewTokens: cfg.MaxNewTokens,
		Temperature:  cfg.Temperature,
		TopP:         cfg.TopP,
		TopK:         cfg.TopK,
	}

	// Setup HTTP router
	handler := router.NewRouter(svc, defaults, logger)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  120 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server
	go func() {
		logger.Info("Starting server",
			"port", cfg.Port,
			"bucket", cfg.S3Bucket,
			"region", cfg.AWSRegion,
			"provider", cfg.GenerationProvider)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed to start", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", "error", err)
	}

	logger.Info("Server exited")
}

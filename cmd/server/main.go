package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"unicode/utf8"

	"github.com/productadvisor/backend/config"
	httpDelivery "github.com/productadvisor/backend/internal/delivery/http"
	"github.com/productadvisor/backend/internal/infrastructure/anthropic"
	"github.com/productadvisor/backend/internal/infrastructure/cache"
	"github.com/productadvisor/backend/internal/infrastructure/feed"
	"github.com/productadvisor/backend/internal/infrastructure/transcript"
	"github.com/productadvisor/backend/internal/usecase"
)

func main() {
	// Load configuration; a missing API key fails here, before any dispatch
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting Product Advisor Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)

	// Initialize infrastructure dependencies
	feedClient := feed.NewClient()
	catalogCache := cache.NewMemoryCache()
	transcriptStore := transcript.NewMemoryStore()

	chatClient := anthropic.NewClient(cfg.Anthropic.APIKey, cfg.Anthropic.BaseURL)

	// Enable debug mode in development environment
	if cfg.Server.Environment == "development" {
		chatClient.SetDebug(true)
		log.Printf("Anthropic client debug mode enabled")
	}

	log.Printf("Anthropic API configured: %s (key: %s...)", cfg.Anthropic.BaseURL, cfg.Anthropic.APIKey[:min(8, len(cfg.Anthropic.APIKey))])
	log.Printf("Catalog: max_records=%d, delimiter=%q, cache_ttl=%s",
		cfg.Catalog.MaxRecords, cfg.Catalog.DefaultDelimiter, cfg.Catalog.CacheTTL)

	// Initialize usecase layer
	defaultDelimiter, _ := utf8.DecodeRuneInString(cfg.Catalog.DefaultDelimiter)
	catalogService := usecase.NewCatalogService(feedClient, catalogCache, usecase.CatalogServiceConfig{
		CacheTTL:         cfg.Catalog.CacheTTL,
		MaxRecords:       cfg.Catalog.MaxRecords,
		DefaultDelimiter: defaultDelimiter,
	})

	advisorService := usecase.NewAdvisorService(chatClient, catalogService, transcriptStore, usecase.AdvisorServiceConfig{
		Brand: cfg.Anthropic.Brand,
	})
	advisorService.Greet(context.Background())

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(catalogService, advisorService)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}

package main

import (
	"context"
	"log"
	"path/filepath"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dreamhaven/order-invoice-service/internal/config"
	"github.com/dreamhaven/order-invoice-service/internal/generator"
	"github.com/dreamhaven/order-invoice-service/internal/handler"
	"github.com/dreamhaven/order-invoice-service/internal/repository"
	"github.com/dreamhaven/order-invoice-service/internal/server"
	"github.com/dreamhaven/order-invoice-service/internal/service"
	"github.com/dreamhaven/order-invoice-service/internal/web"
)

func main() {
	// Load configuration
	log.Println("Loading configuration...")
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize the invoice repository: Postgres when a DATABASE_URL is
	// configured, local files otherwise
	log.Println("Initializing repository...")
	repo, err := newRepository(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize repository: %v", err)
	}
	defer repo.Close()

	// Initialize the LLM-backed invoice generator
	generatorClient := generator.NewClient(&generator.Config{
		APIKey:  cfg.OpenAIAPIKey,
		Model:   cfg.OpenAIModel,
		Timeout: cfg.OpenAITimeout,
	})

	// Create the invoice generation pipeline
	log.Println("Creating invoice generation service...")
	pdfDir := filepath.Join(cfg.DataDir, "invoices")
	invoiceService, err := service.NewGeneratorService(generatorClient, repo, pdfDir, cfg.MaxWorkers)
	if err != nil {
		log.Fatalf("Failed to create invoice service: %v", err)
	}

	// Create handlers
	pageHandler := handler.NewPageHandler(invoiceService, web.NewRenderer(), pdfDir)
	apiHandler := handler.NewInvoiceAPIHandler(invoiceService)

	// Create and configure server
	log.Println("Configuring server...")
	appServer := server.NewServer(cfg, pageHandler, apiHandler)
	appServer.SetInvoiceService(invoiceService)

	// Start server (blocking call)
	log.Printf("Starting server on port %d...", cfg.Port)
	if err := appServer.Start(); err != nil {
		log.Fatalf("Server error: %v", err)
	}

	log.Println("Server shutdown complete")
}

// newRepository picks the invoice repository implementation from configuration
func newRepository(cfg *config.Config) (repository.InvoiceRepository, error) {
	if cfg.DatabaseURL == "" {
		return repository.NewFileRepository(cfg.DataDir)
	}

	pool, err := pgxpool.New(context.Background(), cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}
	return repository.NewPostgresRepository(pool), nil
}

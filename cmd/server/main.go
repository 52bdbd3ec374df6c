package main

import (
	"fmt"
	"log"

	"ascforge/internal/config"
	"ascforge/internal/handler"
	"ascforge/internal/router"
	"ascforge/internal/service"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize services
	invoiceSvc := service.NewInvoiceService()

	// Initialize handlers
	invoiceH := handler.NewInvoiceHandler(invoiceSvc, cfg.Upload.MaxFileSizeBytes())
	healthH := handler.NewHealthHandler()

	// Setup router
	r := router.Setup(invoiceH, healthH, cfg.CORS.AllowedOrigins)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}

package router

import (
	"github.com/gin-gonic/gin"

	"ascforge/internal/handler"
	"ascforge/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	invoiceH *handler.InvoiceHandler,
	healthH *handler.HealthHandler,
	corsOrigins []string,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(corsOrigins))

	// Health check
	r.GET("/healthz", healthH.Liveness)

	v1 := r.Group("/api/v1")
	v1.GET("/brands", invoiceH.Brands)

	invoices := v1.Group("/invoices")
	invoices.POST("/generate", invoiceH.Generate)
	invoices.POST("/preview", invoiceH.Preview)

	return r
}

package handler

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"ascforge/internal/archive"
	"ascforge/internal/dataset"
	"ascforge/internal/domain"
	"ascforge/internal/invoice"
	"ascforge/internal/service"
)

// InvoiceHandler handles invoice generation endpoints.
type InvoiceHandler struct {
	invoiceService service.InvoiceService
	maxUploadBytes int64
}

// NewInvoiceHandler creates a new InvoiceHandler.
func NewInvoiceHandler(invoiceService service.InvoiceService, maxUploadBytes int64) *InvoiceHandler {
	return &InvoiceHandler{invoiceService: invoiceService, maxUploadBytes: maxUploadBytes}
}

// Brands handles GET /api/v1/brands and lists the supported brand names.
func (h *InvoiceHandler) Brands(c *gin.Context) {
	RespondOK(c, h.invoiceService.Brands())
}

// Generate handles POST /api/v1/invoices/generate. It takes a multipart
// billing export plus a brand name and streams back a ZIP holding one
// invoice workbook and one raw-data workbook per service centre.
func (h *InvoiceHandler) Generate(c *gin.Context) {
	batch, ok := h.process(c)
	if !ok {
		return
	}

	now := time.Now()
	data, err := archive.BuildZip(batch, now)
	if err != nil {
		HandleError(c, err)
		return
	}

	name := archive.Filename(batch.Brand, now)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	c.Data(http.StatusOK, "application/zip", data)
}

// previewRow is one line of the generation summary.
type previewRow struct {
	Entity        string `json:"entity"`
	InvoiceNumber string `json:"invoice_number"`
	Records       int    `json:"records"`
	TotalAmount   string `json:"total_amount"`
}

// previewSummary is the response body for Preview.
type previewSummary struct {
	Brand        string       `json:"brand"`
	Entities     int          `json:"entities"`
	TotalRecords int          `json:"total_records"`
	TotalAmount  string       `json:"total_amount"`
	Rows         []previewRow `json:"rows"`
}

// Preview handles POST /api/v1/invoices/preview. It runs the same batch
// transform but returns only the per-entity summary figures, matching the
// summary table the host shows before download.
func (h *InvoiceHandler) Preview(c *gin.Context) {
	batch, ok := h.process(c)
	if !ok {
		return
	}

	rows := make([]previewRow, 0, len(batch.Results))
	for i := range batch.Results {
		res := &batch.Results[i]
		rows = append(rows, previewRow{
			Entity:        res.Entity,
			InvoiceNumber: res.InvoiceNumber,
			Records:       res.Records,
			TotalAmount:   res.TotalAmount.StringFixed(2),
		})
	}
	RespondOK(c, previewSummary{
		Brand:        batch.Brand,
		Entities:     len(batch.Results),
		TotalRecords: batch.TotalRecords(),
		TotalAmount:  batch.TotalAmount().Round(2).StringFixed(2),
		Rows:         rows,
	})
}

// process reads the multipart upload and runs the batch transform,
// responding with the mapped error itself when anything fails.
func (h *InvoiceHandler) process(c *gin.Context) (*invoice.Batch, bool) {
	brandName := c.PostForm("brand")
	if brandName == "" {
		RespondError(c, http.StatusBadRequest, "MISSING_BRAND", "brand field is required")
		return nil, false
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "MISSING_FILE", "file field is required")
		return nil, false
	}
	defer func() { _ = file.Close() }()

	if ext := strings.ToLower(filepath.Ext(header.Filename)); ext != ".xlsx" {
		HandleError(c, domain.ErrUnsupportedFileType)
		return nil, false
	}
	if h.maxUploadBytes > 0 && header.Size > h.maxUploadBytes {
		HandleError(c, domain.ErrFileTooLarge)
		return nil, false
	}

	ds, err := dataset.FromXLSX(file)
	if err != nil {
		HandleError(c, err)
		return nil, false
	}

	batch, err := h.invoiceService.Generate(ds, brandName)
	if err != nil {
		HandleError(c, err)
		return nil, false
	}
	return batch, true
}

package handler

import (
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/dreamhaven/order-invoice-service/internal/domain"
	"github.com/dreamhaven/order-invoice-service/internal/service"
	"github.com/dreamhaven/order-invoice-service/internal/web"
)

// PageHandler serves the order form page and the stored invoice PDFs
type PageHandler struct {
	invoices service.InvoiceServicer
	renderer *web.Renderer
	pdfDir   string
}

// NewPageHandler creates a new page handler
func NewPageHandler(invoices service.InvoiceServicer, renderer *web.Renderer, pdfDir string) *PageHandler {
	return &PageHandler{
		invoices: invoices,
		renderer: renderer,
		pdfDir:   pdfDir,
	}
}

// RegisterRoutes registers the handler's routes with the given router
func (h *PageHandler) RegisterRoutes(router *gin.Engine) {
	router.GET("/", h.Index)
	router.POST("/", h.Submit)
	router.GET("/invoices/:filename", h.DownloadInvoice)
}

// Index renders the empty order form
func (h *PageHandler) Index(c *gin.Context) {
	h.renderPage(c, nil)
}

// Submit runs the generation pipeline for the pasted order text and
// re-renders the page with one result block per generated invoice
func (h *PageHandler) Submit(c *gin.Context) {
	orderDetails := c.PostForm("order_details")

	results, err := h.invoices.GenerateFromOrders(c.Request.Context(), orderDetails)
	if err != nil {
		log.Printf("Invoice generation failed: %v", err)
		c.String(http.StatusInternalServerError, "Invoice generation failed. Please try again.")
		return
	}

	h.renderPage(c, results)
}

// renderPage writes the page for the given results
func (h *PageHandler) renderPage(c *gin.Context, results []domain.InvoiceResult) {
	viewResults := make([]web.Result, len(results))
	for i, res := range results {
		viewResults[i] = web.Result{
			InvoiceNumber:   strconv.Itoa(res.InvoiceNumber),
			PDFURL:          res.PDFURL,
			DeliverySummary: res.DeliverySummary,
		}
	}

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := h.renderer.RenderPage(c.Writer, viewResults); err != nil {
		log.Printf("Failed to render page: %v", err)
	}
}

// DownloadInvoice serves a stored invoice PDF by file name
func (h *PageHandler) DownloadInvoice(c *gin.Context) {
	filename := c.Param("filename")

	// Only plain PDF file names, no path segments.
	if filename != filepath.Base(filename) || !strings.HasSuffix(filename, ".pdf") {
		respondNotFound(c, "Invoice not found")
		return
	}

	fullPath := filepath.Join(h.pdfDir, filename)
	if _, err := os.Stat(fullPath); err != nil {
		respondNotFound(c, "Invoice not found")
		return
	}

	c.File(fullPath)
}

package handler

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/dreamhaven/order-invoice-service/internal/model"
	"github.com/dreamhaven/order-invoice-service/internal/service"
)

// InvoiceAPIHandler exposes the generation pipeline as a JSON API
type InvoiceAPIHandler struct {
	invoices service.InvoiceServicer
}

// NewInvoiceAPIHandler creates a new invoice API handler
func NewInvoiceAPIHandler(invoices service.InvoiceServicer) *InvoiceAPIHandler {
	return &InvoiceAPIHandler{
		invoices: invoices,
	}
}

// RegisterRoutes registers the handler's routes with the given router
func (h *InvoiceAPIHandler) RegisterRoutes(router *gin.Engine) {
	router.POST("/v1/invoices/generate", h.GenerateInvoices)
}

// GenerateInvoices handles a request to generate invoices from pasted order text
// @Summary Generate invoices
// @Description Split pasted order text into orders and generate one invoice per order
// @Tags invoices
// @Accept json
// @Produce json
// @Param request body model.GenerateRequest true "Pasted order text"
// @Success 200 {object} model.GenerateSuccessResponse "Generated invoice results"
// @Failure 400 {object} model.ErrorResponse "Bad request"
// @Failure 500 {object} model.ErrorResponse "Internal server error"
// @Router /v1/invoices/generate [post]
func (h *InvoiceAPIHandler) GenerateInvoices(c *gin.Context) {
	var request model.GenerateRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		respondBadRequest(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	log.Printf("Generating invoices from API request (%d bytes of order text)", len(request.OrderDetails))
	results, err := h.invoices.GenerateFromOrders(c.Request.Context(), request.OrderDetails)
	if err != nil {
		respondInternalServerError(c, fmt.Sprintf("Generation failed: %v", err))
		return
	}

	respondOK(c, model.GenerateSuccessResponse{
		Success: true,
		Results: model.ResultsFromDomain(results),
	})
}

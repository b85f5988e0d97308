package model

import (
	"strconv"

	"github.com/dreamhaven/order-invoice-service/internal/domain"
)

// GenerateRequest is the JSON body for the invoice generation endpoint
type GenerateRequest struct {
	OrderDetails string `json:"order_details" binding:"required"`
}

// InvoiceResultDTO is one generated invoice in an API response. The invoice
// number travels as a string so callers can treat it as opaque.
type InvoiceResultDTO struct {
	InvoiceNumber   string `json:"invoice_number"`
	PDFURL          string `json:"pdf_url"`
	DeliverySummary string `json:"delivery_summary"`
}

// FromDomain converts a domain InvoiceResult to an InvoiceResultDTO
func (dto *InvoiceResultDTO) FromDomain(result *domain.InvoiceResult) {
	dto.InvoiceNumber = strconv.Itoa(result.InvoiceNumber)
	dto.PDFURL = result.PDFURL
	dto.DeliverySummary = result.DeliverySummary
}

// ResultsFromDomain converts a slice of domain results to DTOs
func ResultsFromDomain(results []domain.InvoiceResult) []InvoiceResultDTO {
	dtos := make([]InvoiceResultDTO, len(results))
	for i := range results {
		dtos[i].FromDomain(&results[i])
	}
	return dtos
}

// GenerateSuccessResponse represents a successful generation response
type GenerateSuccessResponse struct {
	Success bool               `json:"success"`
	Results []InvoiceResultDTO `json:"results"`
}

// ErrorDetail provides field-level error information
type ErrorDetail struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

// ErrorResponse represents a standardized error response
type ErrorResponse struct {
	Status  string        `json:"status"`
	Message string        `json:"message"`
	Details []ErrorDetail `json:"details,omitempty"`
}

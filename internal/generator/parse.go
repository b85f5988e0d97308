package generator

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/dreamhaven/order-invoice-service/internal/domain"
)

var jsonObjectPattern = regexp.MustCompile(`\{[\s\S]*\}`)

// invoiceDTO mirrors the JSON structure the model is asked to produce
type invoiceDTO struct {
	BillTo string `json:"bill_to"`
	Items  []struct {
		Description string  `json:"description"`
		UnitPrice   float64 `json:"unit_price"`
		Amount      float64 `json:"amount"`
	} `json:"items"`
	Summary struct {
		Subtotal float64 `json:"subtotal"`
		Tax      float64 `json:"tax"`
		Shipping float64 `json:"shipping"`
		Total    float64 `json:"total"`
	} `json:"summary"`
}

// parseInvoiceContent parses the model's reply into a domain invoice.
// It first tries the content verbatim, then retries after stripping
// markdown code fences the model sometimes wraps the JSON in.
func parseInvoiceContent(content string, invoiceNumber int) (*domain.Invoice, error) {
	content = strings.TrimSpace(content)

	var dto invoiceDTO
	if err := json.Unmarshal([]byte(content), &dto); err == nil {
		return dto.toDomain(invoiceNumber), nil
	}

	cleaned := stripCodeFences(content)
	if err := json.Unmarshal([]byte(cleaned), &dto); err == nil {
		return dto.toDomain(invoiceNumber), nil
	}

	// Last resort: pull the outermost JSON object out of surrounding prose.
	if match := jsonObjectPattern.FindString(cleaned); match != "" {
		if err := json.Unmarshal([]byte(match), &dto); err == nil {
			return dto.toDomain(invoiceNumber), nil
		}
	}

	return nil, &GeneratorError{
		Op:  "parse_invoice_content",
		Err: fmt.Errorf("model response is not valid invoice JSON"),
	}
}

// stripCodeFences removes ```json ... ``` wrappers from the content
func stripCodeFences(content string) string {
	if idx := strings.Index(content, "```json"); idx >= 0 {
		content = content[idx+len("```json"):]
	}
	if idx := strings.Index(content, "```"); idx >= 0 {
		content = content[:idx]
	}
	return strings.TrimSpace(content)
}

// toDomain converts the parsed DTO into a domain invoice
func (dto *invoiceDTO) toDomain(invoiceNumber int) *domain.Invoice {
	invoice := domain.NewInvoice(invoiceNumber)
	invoice.BillTo = dto.BillTo
	invoice.Summary = domain.ChargeSummary{
		Subtotal: dto.Summary.Subtotal,
		Tax:      dto.Summary.Tax,
		Shipping: dto.Summary.Shipping,
		Total:    dto.Summary.Total,
	}

	for _, item := range dto.Items {
		invoice.AddLineItem(domain.LineItem{
			Description: item.Description,
			UnitPrice:   item.UnitPrice,
			Amount:      item.Amount,
		})
	}

	return invoice
}

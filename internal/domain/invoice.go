package domain

import (
	"fmt"
	"strings"
)

// DefaultTerms is printed on every invoice PDF.
const DefaultTerms = "All sales are final; no refunds. Special orders are not subject to cancellation. " +
	"A 30% restocking fee applies for seller-approved exchanges, cancellations, or returns. " +
	"Buyer assumes responsibility for transportation of merchandise picked up. " +
	"Seller is not liable for items that do not fit due to size constraints. " +
	"Delivery schedule changes require a 24-hour notice to avoid extra fees. " +
	"Report damages within three days for replacement of the damaged part."

// LineItem represents a single item on an invoice
type LineItem struct {
	Description string  `json:"description"`
	UnitPrice   float64 `json:"unit_price"`
	Amount      float64 `json:"amount"`
}

// ChargeSummary holds the invoice totals block
type ChargeSummary struct {
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Shipping float64 `json:"shipping"`
	Total    float64 `json:"total"`
}

// Invoice represents the core domain entity for a generated invoice
type Invoice struct {
	InvoiceNumber int           `json:"invoice_number"`
	BillTo        string        `json:"bill_to"`
	Items         []LineItem    `json:"items"`
	Summary       ChargeSummary `json:"summary"`
	Terms         string        `json:"terms"`
}

// NewInvoice creates a new invoice with default values
func NewInvoice(number int) *Invoice {
	return &Invoice{
		InvoiceNumber: number,
		Items:         make([]LineItem, 0),
		Terms:         DefaultTerms,
	}
}

// AddLineItem adds a new line item to the invoice
func (i *Invoice) AddLineItem(item LineItem) {
	i.Items = append(i.Items, item)
}

// ItemDescriptions joins all line item descriptions into one comma-separated string
func (i *Invoice) ItemDescriptions() string {
	descriptions := make([]string, 0, len(i.Items))
	for _, item := range i.Items {
		descriptions = append(descriptions, item.Description)
	}
	return strings.Join(descriptions, ", ")
}

// ContactNumber returns the trailing whitespace-separated token of the
// bill-to block, which the order format puts last.
func (i *Invoice) ContactNumber() string {
	fields := strings.Fields(i.BillTo)
	if len(fields) == 0 {
		return ""
	}
	return fields[len(fields)-1]
}

// DeliverySummary builds the multi-line text the delivery driver receives.
func (i *Invoice) DeliverySummary() string {
	return fmt.Sprintf(
		"Delivery 🚚 %d\n\n%s\n\nAddress: %s\n\nContact: %s\n\nTotal: $%.2f",
		i.InvoiceNumber,
		i.ItemDescriptions(),
		i.BillTo,
		i.ContactNumber(),
		i.Summary.Total,
	)
}

// InvoiceResult is the per-invoice display data returned to the caller:
// the number, where to download the PDF, and the copyable delivery summary.
type InvoiceResult struct {
	InvoiceNumber   int    `json:"invoice_number"`
	PDFURL          string `json:"pdf_url"`
	DeliverySummary string `json:"delivery_summary"`
}

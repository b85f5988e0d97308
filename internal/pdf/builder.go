package pdf

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/dreamhaven/order-invoice-service/internal/domain"
)

// Company letterhead printed on every invoice.
const (
	companyName     = "DREAMHAVEN BEDDING & FURNITURE"
	companyWebsite  = "www.dreamhavenbedding.com"
	companyContacts = "Contacts: 682-424-2071 | 940-224-1232 | 469-825-2323"
)

// Filename returns the canonical PDF file name for an invoice number
func Filename(invoiceNumber int) string {
	return fmt.Sprintf("Invoice_%d.pdf", invoiceNumber)
}

// Build renders the invoice as a PDF document and returns its bytes.
// The issue date and due date are both set to now.
func Build(invoice *domain.Invoice, now time.Time) ([]byte, error) {
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetAutoPageBreak(true, 15)
	doc.AddPage()

	// Letterhead
	doc.SetFont("Arial", "B", 12)
	doc.CellFormat(190, 8, companyName, "", 1, "C", false, 0, "")
	doc.SetFont("Arial", "", 9)
	doc.CellFormat(190, 6, companyWebsite, "", 1, "C", false, 0, "")
	doc.CellFormat(190, 6, companyContacts, "", 1, "C", false, 0, "")

	doc.Ln(10)

	// Invoice number and dates
	dateStr := now.Format("Jan 02, 2006")
	doc.SetFont("Arial", "B", 10)
	doc.CellFormat(95, 6, fmt.Sprintf("Invoice #: %d", invoice.InvoiceNumber), "", 0, "L", false, 0, "")
	doc.CellFormat(95, 6, "Date: "+dateStr, "", 1, "R", false, 0, "")
	doc.CellFormat(95, 6, "", "", 0, "L", false, 0, "")
	doc.CellFormat(95, 6, "Due Date: "+dateStr, "", 1, "R", false, 0, "")

	doc.Ln(8)

	// Bill to
	doc.SetFont("Arial", "B", 9)
	doc.CellFormat(190, 6, "Bill To:", "", 1, "L", false, 0, "")
	doc.SetFont("Arial", "", 9)
	doc.MultiCell(190, 6, invoice.BillTo, "", "L", false)

	doc.Ln(5)

	// Items table header
	doc.SetFont("Arial", "B", 9)
	doc.CellFormat(120, 6, "Item Description", "1", 0, "L", false, 0, "")
	doc.CellFormat(35, 6, "Unit Price", "1", 0, "R", false, 0, "")
	doc.CellFormat(35, 6, "Amount", "1", 1, "R", false, 0, "")

	// All descriptions share one cell; the subtotal spans the price columns.
	doc.SetFont("Arial", "", 9)
	startY := doc.GetY()
	descriptions := ""
	for i, item := range invoice.Items {
		if i > 0 {
			descriptions += "\n"
		}
		descriptions += item.Description
	}
	doc.MultiCell(120, 6, descriptions, "1", "L", false)
	cellHeight := doc.GetY() - startY
	doc.SetXY(130, startY)
	doc.CellFormat(35, cellHeight, fmt.Sprintf("$%.2f", invoice.Summary.Subtotal), "1", 0, "R", false, 0, "")
	doc.CellFormat(35, cellHeight, fmt.Sprintf("$%.2f", invoice.Summary.Subtotal), "1", 1, "R", false, 0, "")

	doc.Ln(5)

	// Summary rows
	summaryRows := []struct {
		label string
		value float64
	}{
		{"Subtotal", invoice.Summary.Subtotal},
		{"Tax (8.25%)", invoice.Summary.Tax},
		{"Shipping", invoice.Summary.Shipping},
		{"Total", invoice.Summary.Total},
	}
	for _, row := range summaryRows {
		doc.CellFormat(120, 6, "", "", 0, "L", false, 0, "")
		doc.CellFormat(35, 6, row.label, "1", 0, "R", false, 0, "")
		doc.CellFormat(35, 6, fmt.Sprintf("$%.2f", row.value), "1", 1, "R", false, 0, "")
	}

	doc.Ln(8)

	// Terms
	doc.SetFont("Arial", "B", 9)
	doc.CellFormat(0, 6, "Terms and Conditions:", "", 1, "L", false, 0, "")
	doc.SetFont("Arial", "", 8)
	doc.MultiCell(0, 5, invoice.Terms, "", "L", false)

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render invoice pdf: %w", err)
	}
	return buf.Bytes(), nil
}

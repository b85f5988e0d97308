package repository

import (
	"context"
	"fmt"

	"github.com/dreamhaven/order-invoice-service/internal/domain"
)

// RepositoryError represents an error that occurred within a repository
type RepositoryError struct {
	// Op is the operation that failed
	Op string

	// Err is the underlying error
	Err error
}

// Error returns a string representation of the error
func (e *RepositoryError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return e.Op
}

// Unwrap returns the underlying error
func (e *RepositoryError) Unwrap() error {
	return e.Err
}

// FirstInvoiceNumber seeds the invoice counter. The store opened its books
// at invoice 2500; every generated invoice continues that sequence.
const FirstInvoiceNumber = 2500

// InvoiceRepository defines the storage operations the invoice pipeline needs:
// a monotonic invoice number sequence and a register of generated invoices.
type InvoiceRepository interface {
	// NextInvoiceNumber advances the counter and returns the new value
	NextInvoiceNumber(ctx context.Context) (int, error)

	// StoreInvoice records a generated invoice
	StoreInvoice(ctx context.Context, invoice *domain.Invoice) error

	// Close releases any resources held by the repository
	Close()
}

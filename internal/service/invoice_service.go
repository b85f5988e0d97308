package service

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/dreamhaven/order-invoice-service/internal/domain"
	"github.com/dreamhaven/order-invoice-service/internal/pdf"
	"github.com/dreamhaven/order-invoice-service/internal/repository"
)

// InvoiceServicer defines the interface for the invoice generation pipeline
type InvoiceServicer interface {
	// GenerateFromOrders turns pasted order text into one result per order
	GenerateFromOrders(ctx context.Context, orderDetails string) ([]domain.InvoiceResult, error)

	// Shutdown gracefully shuts down the service
	Shutdown()
}

// InvoiceGenerator produces a structured invoice for one order
type InvoiceGenerator interface {
	GenerateInvoice(ctx context.Context, orderDetails string, invoiceNumber int) (*domain.Invoice, error)
}

// InvoiceGenerationError represents an error that occurred in the pipeline
type InvoiceGenerationError struct {
	// Op is the operation that failed
	Op string

	// Err is the underlying error
	Err error
}

// Error returns a string representation of the error
func (e *InvoiceGenerationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return e.Op
}

// Unwrap returns the underlying error
func (e *InvoiceGenerationError) Unwrap() error {
	return e.Err
}

// GeneratorService implements InvoiceServicer: it splits the paste into
// orders and, per order, assigns the next invoice number, generates the
// invoice, writes the PDF, and records the invoice in the repository.
type GeneratorService struct {
	generator   InvoiceGenerator
	repo        repository.InvoiceRepository
	pdfDir      string
	maxWorkers  int
	workerQueue chan struct{}
	now         func() time.Time
}

// NewGeneratorService creates a new invoice generation service.
// PDFs are written under pdfDir.
func NewGeneratorService(generator InvoiceGenerator, repo repository.InvoiceRepository, pdfDir string, maxWorkers int) (*GeneratorService, error) {
	if maxWorkers <= 0 {
		maxWorkers = 5 // Default to 5 workers
	}

	if err := os.MkdirAll(pdfDir, 0755); err != nil {
		return nil, &InvoiceGenerationError{
			Op:  "create_pdf_dir",
			Err: err,
		}
	}

	return &GeneratorService{
		generator:   generator,
		repo:        repo,
		pdfDir:      pdfDir,
		maxWorkers:  maxWorkers,
		workerQueue: make(chan struct{}, maxWorkers),
		now:         time.Now,
	}, nil
}

// GenerateFromOrders processes every order found in the pasted text.
// Orders run sequentially so invoice numbers follow paste order; a failed
// order is logged and skipped rather than aborting the batch.
func (s *GeneratorService) GenerateFromOrders(ctx context.Context, orderDetails string) ([]domain.InvoiceResult, error) {
	orders := SplitOrders(orderDetails)

	results := make([]domain.InvoiceResult, 0, len(orders))
	for _, order := range orders {
		result, err := s.generateOne(ctx, order)
		if err != nil {
			if ctx.Err() != nil {
				return results, &InvoiceGenerationError{
					Op:  "generate_from_orders",
					Err: ctx.Err(),
				}
			}
			log.Printf("Skipping order, generation failed: %v", err)
			continue
		}
		results = append(results, *result)
	}

	return results, nil
}

// generateOne runs the pipeline for a single order
func (s *GeneratorService) generateOne(ctx context.Context, order string) (*domain.InvoiceResult, error) {
	// Acquire a worker from the pool
	select {
	case s.workerQueue <- struct{}{}:
		defer func() {
			// Release the worker back to the pool
			<-s.workerQueue
		}()
	case <-ctx.Done():
		return nil, &InvoiceGenerationError{
			Op:  "acquire_worker",
			Err: ctx.Err(),
		}
	}

	invoiceNumber, err := s.repo.NextInvoiceNumber(ctx)
	if err != nil {
		return nil, &InvoiceGenerationError{
			Op:  "next_invoice_number",
			Err: err,
		}
	}

	invoice, err := s.generator.GenerateInvoice(ctx, order, invoiceNumber)
	if err != nil {
		return nil, &InvoiceGenerationError{
			Op:  "generate_invoice",
			Err: err,
		}
	}

	pdfBytes, err := pdf.Build(invoice, s.now())
	if err != nil {
		return nil, &InvoiceGenerationError{
			Op:  "build_pdf",
			Err: err,
		}
	}

	filename := pdf.Filename(invoiceNumber)
	if err := os.WriteFile(filepath.Join(s.pdfDir, filename), pdfBytes, 0644); err != nil {
		return nil, &InvoiceGenerationError{
			Op:  "write_pdf",
			Err: err,
		}
	}

	// The register is best effort; the invoice is already on disk.
	if err := s.repo.StoreInvoice(ctx, invoice); err != nil {
		log.Printf("Error storing invoice %d: %v", invoiceNumber, err)
	}

	return &domain.InvoiceResult{
		InvoiceNumber:   invoiceNumber,
		PDFURL:          "/invoices/" + filename,
		DeliverySummary: invoice.DeliverySummary(),
	}, nil
}

// Shutdown implements the shutdown method from the InvoiceServicer interface
func (s *GeneratorService) Shutdown() {
	close(s.workerQueue)
}

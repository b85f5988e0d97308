package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/dreamhaven/order-invoice-service/internal/domain"
)

const counterFileName = "invoice_number.txt"

// FileRepository implements InvoiceRepository using the local filesystem:
// a plain-text counter file plus one JSON record per invoice.
type FileRepository struct {
	baseDir string
	mutex   sync.Mutex
}

// NewFileRepository creates a new file-based invoice repository rooted at baseDir
func NewFileRepository(baseDir string) (*FileRepository, error) {
	if err := os.MkdirAll(filepath.Join(baseDir, "records"), 0755); err != nil {
		return nil, &RepositoryError{
			Op:  "create_repository",
			Err: fmt.Errorf("failed to create records directory: %w", err),
		}
	}

	return &FileRepository{
		baseDir: baseDir,
	}, nil
}

// NextInvoiceNumber advances the persisted counter and returns the new value.
// The counter file is seeded with FirstInvoiceNumber when it does not exist.
func (r *FileRepository) NextInvoiceNumber(ctx context.Context) (int, error) {
	select {
	case <-ctx.Done():
		return 0, &RepositoryError{
			Op:  "next_invoice_number",
			Err: ctx.Err(),
		}
	default:
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	counterPath := filepath.Join(r.baseDir, counterFileName)

	current := FirstInvoiceNumber
	data, err := os.ReadFile(counterPath)
	switch {
	case err == nil:
		current, err = strconv.Atoi(strings.TrimSpace(string(data)))
		if err != nil {
			return 0, &RepositoryError{
				Op:  "next_invoice_number",
				Err: fmt.Errorf("counter file is corrupt: %w", err),
			}
		}
	case os.IsNotExist(err):
		// First run, counter starts at the seed value.
	default:
		return 0, &RepositoryError{
			Op:  "next_invoice_number",
			Err: fmt.Errorf("failed to read counter file: %w", err),
		}
	}

	next := current + 1
	if err := os.WriteFile(counterPath, []byte(strconv.Itoa(next)), 0644); err != nil {
		return 0, &RepositoryError{
			Op:  "next_invoice_number",
			Err: fmt.Errorf("failed to write counter file: %w", err),
		}
	}

	return next, nil
}

// StoreInvoice writes the invoice as a JSON record
func (r *FileRepository) StoreInvoice(ctx context.Context, invoice *domain.Invoice) error {
	select {
	case <-ctx.Done():
		return &RepositoryError{
			Op:  "store_invoice",
			Err: ctx.Err(),
		}
	default:
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	if invoice.InvoiceNumber == 0 {
		return &RepositoryError{
			Op:  "store_invoice",
			Err: fmt.Errorf("invoice number is required"),
		}
	}

	data, err := json.MarshalIndent(invoice, "", "  ")
	if err != nil {
		return &RepositoryError{
			Op:  "store_invoice",
			Err: fmt.Errorf("failed to serialize invoice: %w", err),
		}
	}

	filePath := filepath.Join(r.baseDir, "records", fmt.Sprintf("Invoice_%d.json", invoice.InvoiceNumber))
	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return &RepositoryError{
			Op:  "store_invoice",
			Err: fmt.Errorf("failed to write invoice record: %w", err),
		}
	}

	return nil
}

// GetInvoiceByNumber retrieves a stored invoice record
func (r *FileRepository) GetInvoiceByNumber(ctx context.Context, number int) (*domain.Invoice, error) {
	select {
	case <-ctx.Done():
		return nil, &RepositoryError{
			Op:  "get_invoice",
			Err: ctx.Err(),
		}
	default:
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	filePath := filepath.Join(r.baseDir, "records", fmt.Sprintf("Invoice_%d.json", number))

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, &RepositoryError{
			Op:  "get_invoice",
			Err: fmt.Errorf("failed to read invoice record: %w", err),
		}
	}

	var invoice domain.Invoice
	if err := json.Unmarshal(data, &invoice); err != nil {
		return nil, &RepositoryError{
			Op:  "get_invoice",
			Err: fmt.Errorf("failed to deserialize invoice: %w", err),
		}
	}

	return &invoice, nil
}

// Close implements InvoiceRepository. File handles are not held open.
func (r *FileRepository) Close() {}

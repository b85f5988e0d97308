package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dreamhaven/order-invoice-service/internal/domain"
)

// PostgresRepository implements InvoiceRepository using PostgreSQL.
// The invoice_sequence table holds a single counter row; generated
// invoices land in the invoices register table.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository creates a new PostgreSQL invoice repository
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{
		db: db,
	}
}

// NextInvoiceNumber atomically advances the counter row and returns the new value
func (r *PostgresRepository) NextInvoiceNumber(ctx context.Context) (int, error) {
	var next int
	err := r.db.QueryRow(ctx, `
		UPDATE invoice_sequence
		SET value = value + 1
		RETURNING value
	`).Scan(&next)
	if err != nil {
		return 0, &RepositoryError{
			Op:  "next_invoice_number",
			Err: fmt.Errorf("failed to advance invoice sequence: %w", err),
		}
	}

	return next, nil
}

// StoreInvoice records the invoice and its line items in the register
func (r *PostgresRepository) StoreInvoice(ctx context.Context, invoice *domain.Invoice) error {
	if invoice.InvoiceNumber == 0 {
		return &RepositoryError{
			Op:  "store_invoice",
			Err: fmt.Errorf("invoice number is required"),
		}
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return &RepositoryError{
			Op:  "store_invoice",
			Err: fmt.Errorf("failed to begin transaction: %w", err),
		}
	}
	defer tx.Rollback(ctx) // Rollback if not committed

	_, err = tx.Exec(ctx, `
		INSERT INTO invoices (number, bill_to, subtotal, tax, shipping, total, terms)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, invoice.InvoiceNumber, invoice.BillTo,
		invoice.Summary.Subtotal, invoice.Summary.Tax, invoice.Summary.Shipping, invoice.Summary.Total,
		invoice.Terms)
	if err != nil {
		return &RepositoryError{
			Op:  "store_invoice",
			Err: fmt.Errorf("failed to insert invoice: %w", err),
		}
	}

	for _, item := range invoice.Items {
		_, err = tx.Exec(ctx, `
			INSERT INTO invoice_items (invoice_number, description, unit_price, amount)
			VALUES ($1, $2, $3, $4)
		`, invoice.InvoiceNumber, item.Description, item.UnitPrice, item.Amount)
		if err != nil {
			return &RepositoryError{
				Op:  "store_invoice",
				Err: fmt.Errorf("failed to insert invoice item: %w", err),
			}
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return &RepositoryError{
			Op:  "store_invoice",
			Err: fmt.Errorf("failed to commit transaction: %w", err),
		}
	}

	return nil
}

// Close releases the connection pool
func (r *PostgresRepository) Close() {
	r.db.Close()
}

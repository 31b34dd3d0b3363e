package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/nexus-inventory/internal/domain"
	"github.com/jhoicas/nexus-inventory/internal/domain/entity"
	"github.com/jhoicas/nexus-inventory/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo facturas en invoices + invoice_items. Cabecera y líneas se escriben en una transacción.
type InvoiceRepo struct {
	db DB
}

// NewInvoiceRepository construye el adaptador. Pasar pool o tx.
func NewInvoiceRepository(db DB) *InvoiceRepo {
	return &InvoiceRepo{db: db}
}

var invoiceColumns = `id, customer_id, customer_name, ` + dateText("date") + `, subtotal, tax, discount, total, status, payment_method`

func scanInvoice(row pgx.Row) (*entity.Invoice, error) {
	var inv entity.Invoice
	var status string
	err := row.Scan(&inv.ID, &inv.CustomerID, &inv.CustomerName, &inv.Date,
		&inv.Subtotal, &inv.Tax, &inv.Discount, &inv.Total, &status, &inv.PaymentMethod)
	if err != nil {
		return nil, err
	}
	inv.Status = entity.InvoiceStatus(status)
	inv.Items = []entity.InvoiceLine{}
	return &inv, nil
}

// NextSequence avanza invoice_code_seq.
func (r *InvoiceRepo) NextSequence(ctx context.Context) (int, error) {
	var n int64
	if err := r.db.QueryRow(ctx, `SELECT nextval('invoice_code_seq')`).Scan(&n); err != nil {
		return 0, fmt.Errorf("next invoice seq: %w", err)
	}
	return int(n), nil
}

// Create persiste cabecera y líneas.
func (r *InvoiceRepo) Create(ctx context.Context, inv *entity.Invoice) error {
	return runInTx(ctx, r.db, func(q Querier) error {
		query := `
			INSERT INTO invoices (id, customer_id, customer_name, date, subtotal, tax, discount, total, status, payment_method)
			VALUES ($1, $2, $3, $4::date, $5, $6, $7, $8, $9, $10)`
		_, err := q.Exec(ctx, query,
			inv.ID, inv.CustomerID, inv.CustomerName, nullIfEmpty(inv.Date),
			inv.Subtotal, inv.Tax, inv.Discount, inv.Total, string(inv.Status), inv.PaymentMethod,
		)
		if err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("invoice %s ya existe: %w", inv.ID, err)
			}
			return fmt.Errorf("insert invoice: %w", err)
		}
		return insertLines(ctx, q, inv)
	})
}

func insertLines(ctx context.Context, q Querier, inv *entity.Invoice) error {
	for i, l := range inv.Items {
		_, err := q.Exec(ctx,
			`INSERT INTO invoice_items (invoice_id, line_no, item_id, name, quantity, price) VALUES ($1, $2, $3, $4, $5, $6)`,
			inv.ID, i+1, l.ID, l.Name, l.Quantity, l.Price,
		)
		if err != nil {
			return fmt.Errorf("insert invoice item: %w", err)
		}
	}
	return nil
}

// GetByID obtiene la factura con sus líneas; (nil, nil) si no existe.
func (r *InvoiceRepo) GetByID(ctx context.Context, id string) (*entity.Invoice, error) {
	inv, err := scanInvoice(r.db.QueryRow(ctx, `SELECT `+invoiceColumns+` FROM invoices WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	lines, err := r.linesByInvoice(ctx, []string{id})
	if err != nil {
		return nil, err
	}
	if l, ok := lines[id]; ok {
		inv.Items = l
	}
	return inv, nil
}

// List facturas en orden de inserción, con líneas (dos consultas).
func (r *InvoiceRepo) List(ctx context.Context) ([]entity.Invoice, error) {
	rows, err := r.db.Query(ctx, `SELECT `+invoiceColumns+` FROM invoices ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	list := []entity.Invoice{}
	ids := []string{}
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		list = append(list, *inv)
		ids = append(ids, inv.ID)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	lines, err := r.linesByInvoice(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range list {
		if l, ok := lines[list[i].ID]; ok {
			list[i].Items = l
		}
	}
	return list, nil
}

func (r *InvoiceRepo) linesByInvoice(ctx context.Context, ids []string) (map[string][]entity.InvoiceLine, error) {
	out := make(map[string][]entity.InvoiceLine, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	rows, err := r.db.Query(ctx, `
		SELECT invoice_id, item_id, name, quantity, price
		FROM invoice_items WHERE invoice_id = ANY($1) ORDER BY invoice_id, line_no`, ids)
	if err != nil {
		return nil, fmt.Errorf("list invoice items: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var invoiceID string
		var l entity.InvoiceLine
		if err := rows.Scan(&invoiceID, &l.ID, &l.Name, &l.Quantity, &l.Price); err != nil {
			return nil, fmt.Errorf("scan invoice item: %w", err)
		}
		out[invoiceID] = append(out[invoiceID], l)
	}
	return out, rows.Err()
}

// Update reemplaza cabecera y líneas. domain.ErrNotFound si no existe.
func (r *InvoiceRepo) Update(ctx context.Context, inv *entity.Invoice) error {
	return runInTx(ctx, r.db, func(q Querier) error {
		query := `
			UPDATE invoices
			SET customer_id = $2, customer_name = $3, date = $4::date, subtotal = $5, tax = $6,
			    discount = $7, total = $8, status = $9, payment_method = $10, updated_at = now()
			WHERE id = $1`
		tag, err := q.Exec(ctx, query,
			inv.ID, inv.CustomerID, inv.CustomerName, nullIfEmpty(inv.Date),
			inv.Subtotal, inv.Tax, inv.Discount, inv.Total, string(inv.Status), inv.PaymentMethod,
		)
		if err != nil {
			return fmt.Errorf("update invoice: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return domain.ErrNotFound
		}
		if _, err := q.Exec(ctx, `DELETE FROM invoice_items WHERE invoice_id = $1`, inv.ID); err != nil {
			return fmt.Errorf("delete invoice items: %w", err)
		}
		return insertLines(ctx, q, inv)
	})
}

// Delete elimina la factura (las líneas caen por ON DELETE CASCADE). domain.ErrNotFound si no existe.
func (r *InvoiceRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM invoices WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete invoice: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

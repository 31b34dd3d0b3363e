package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/nexus-inventory/internal/domain/entity"
)

// SeedIfEmpty carga datos demo solo si products está vacía, y ajusta las secuencias
// al mayor consecutivo sembrado para que los IDs nuevos no choquen.
func SeedIfEmpty(ctx context.Context, db DB, items []entity.InventoryItem, customers []entity.Customer, invoices []entity.Invoice) (bool, error) {
	var count int
	if err := db.QueryRow(ctx, `SELECT count(*) FROM products`).Scan(&count); err != nil {
		return false, fmt.Errorf("seed: contar products: %w", err)
	}
	if count > 0 {
		return false, nil
	}

	err := runInTx(ctx, db, func(q Querier) error {
		products := NewProductRepository(q)
		maxItem := 0
		for i := range items {
			if err := products.Create(ctx, &items[i]); err != nil {
				return err
			}
			if n, ok := entity.ParseSequence(items[i].ID, entity.InventoryIDPrefix, 0); ok && n > maxItem {
				maxItem = n
			}
		}
		custRepo := NewCustomerRepository(q)
		for i := range customers {
			if err := custRepo.Create(ctx, &customers[i]); err != nil {
				return err
			}
		}
		maxInvoice := 0
		for i := range invoices {
			inv := &invoices[i]
			_, err := q.Exec(ctx, `
				INSERT INTO invoices (id, customer_id, customer_name, date, subtotal, tax, discount, total, status, payment_method)
				VALUES ($1, $2, $3, $4::date, $5, $6, $7, $8, $9, $10)`,
				inv.ID, inv.CustomerID, inv.CustomerName, nullIfEmpty(inv.Date),
				inv.Subtotal, inv.Tax, inv.Discount, inv.Total, string(inv.Status), inv.PaymentMethod)
			if err != nil {
				return fmt.Errorf("seed invoice %s: %w", inv.ID, err)
			}
			if err := insertLines(ctx, q, inv); err != nil {
				return err
			}
			if n, ok := entity.ParseSequence(inv.ID, entity.InvoiceIDPrefix, 4); ok && n > maxInvoice {
				maxInvoice = n
			}
		}
		if err := setSequence(ctx, q, "product_code_seq", maxItem); err != nil {
			return err
		}
		return setSequence(ctx, q, "invoice_code_seq", maxInvoice)
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

func setSequence(ctx context.Context, q Querier, name string, n int) error {
	if n <= 0 {
		return nil
	}
	if _, err := q.Exec(ctx, `SELECT setval($1::regclass, $2)`, name, n); err != nil {
		return fmt.Errorf("seed: setval %s: %w", name, err)
	}
	return nil
}

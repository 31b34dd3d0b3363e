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

var _ repository.InventoryRepository = (*ProductRepo)(nil)

// ProductRepo artículos de inventario sobre la tabla products (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

var productColumns = `id, name, category, sku, cost_price, selling_price, stock, reorder_level, barcode, ` + dateText("last_updated")

func scanProduct(row pgx.Row) (*entity.InventoryItem, error) {
	var p entity.InventoryItem
	err := row.Scan(&p.ID, &p.Name, &p.Category, &p.SKU, &p.CostPrice, &p.SellingPrice,
		&p.Stock, &p.ReorderLevel, &p.Barcode, &p.LastUpdated)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// NextSequence avanza product_code_seq (nunca reutiliza valores).
func (r *ProductRepo) NextSequence(ctx context.Context) (int, error) {
	var n int64
	if err := r.q.QueryRow(ctx, `SELECT nextval('product_code_seq')`).Scan(&n); err != nil {
		return 0, fmt.Errorf("next product seq: %w", err)
	}
	return int(n), nil
}

// Create inserta el artículo.
func (r *ProductRepo) Create(ctx context.Context, p *entity.InventoryItem) error {
	query := `
		INSERT INTO products (id, name, category, sku, cost_price, selling_price, stock, reorder_level, barcode, last_updated)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10::date)`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.Name, p.Category, p.SKU, p.CostPrice, p.SellingPrice,
		p.Stock, p.ReorderLevel, p.Barcode, nullIfEmpty(p.LastUpdated),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("product %s ya existe: %w", p.ID, err)
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID devuelve (nil, nil) si no existe.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.InventoryItem, error) {
	p, err := scanProduct(r.q.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// List en orden de inserción.
func (r *ProductRepo) List(ctx context.Context) ([]entity.InventoryItem, error) {
	rows, err := r.q.Query(ctx, `SELECT `+productColumns+` FROM products ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	list := []entity.InventoryItem{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, *p)
	}
	return list, rows.Err()
}

// Update reemplaza todos los campos. domain.ErrNotFound si no existe.
func (r *ProductRepo) Update(ctx context.Context, p *entity.InventoryItem) error {
	query := `
		UPDATE products
		SET name = $2, category = $3, sku = $4, cost_price = $5, selling_price = $6,
		    stock = $7, reorder_level = $8, barcode = $9, last_updated = $10::date, updated_at = now()
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		p.ID, p.Name, p.Category, p.SKU, p.CostPrice, p.SellingPrice,
		p.Stock, p.ReorderLevel, p.Barcode, nullIfEmpty(p.LastUpdated),
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina el artículo. domain.ErrNotFound si no existe.
func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

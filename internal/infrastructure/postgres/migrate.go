package postgres

import (
	"context"
	"fmt"
)

// schema tablas en snake_case equivalentes al backend alojado. seq conserva el orden de inserción.
var schema = []string{
	`CREATE SEQUENCE IF NOT EXISTS product_code_seq`,
	`CREATE SEQUENCE IF NOT EXISTS invoice_code_seq`,
	`CREATE TABLE IF NOT EXISTS products (
		id             TEXT PRIMARY KEY,
		seq            BIGSERIAL,
		name           TEXT NOT NULL DEFAULT '',
		category       TEXT NOT NULL DEFAULT '',
		sku            TEXT NOT NULL DEFAULT '',
		cost_price     NUMERIC(14,2) NOT NULL DEFAULT 0 CHECK (cost_price >= 0),
		selling_price  NUMERIC(14,2) NOT NULL DEFAULT 0 CHECK (selling_price >= 0),
		stock          INTEGER NOT NULL DEFAULT 0 CHECK (stock >= 0),
		reorder_level  INTEGER NOT NULL DEFAULT 0 CHECK (reorder_level >= 0),
		barcode        TEXT NOT NULL DEFAULT '',
		last_updated   DATE,
		created_at     TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at     TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS customers (
		id               TEXT PRIMARY KEY,
		seq              BIGSERIAL,
		name             TEXT NOT NULL,
		email            TEXT NOT NULL DEFAULT '',
		phone            TEXT NOT NULL DEFAULT '',
		address          TEXT NOT NULL DEFAULT '',
		total_purchases  NUMERIC(14,2) NOT NULL DEFAULT 0,
		last_purchase    DATE,
		created_at       TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at       TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS invoices (
		id              TEXT PRIMARY KEY,
		seq             BIGSERIAL,
		customer_id     TEXT NOT NULL DEFAULT '',
		customer_name   TEXT NOT NULL DEFAULT '',
		date            DATE,
		subtotal        NUMERIC(14,2) NOT NULL DEFAULT 0,
		tax             NUMERIC(14,2) NOT NULL DEFAULT 0,
		discount        NUMERIC(14,2) NOT NULL DEFAULT 0,
		total           NUMERIC(14,2) NOT NULL DEFAULT 0,
		status          TEXT NOT NULL DEFAULT 'Pending',
		payment_method  TEXT NOT NULL DEFAULT '',
		created_at      TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at      TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS invoice_items (
		invoice_id  TEXT NOT NULL REFERENCES invoices(id) ON DELETE CASCADE,
		line_no     INTEGER NOT NULL,
		item_id     TEXT NOT NULL DEFAULT '',
		name        TEXT NOT NULL,
		quantity    INTEGER NOT NULL CHECK (quantity > 0),
		price       NUMERIC(14,2) NOT NULL DEFAULT 0,
		PRIMARY KEY (invoice_id, line_no)
	)`,
}

// Migrate crea tablas y secuencias si no existen.
func Migrate(ctx context.Context, q Querier) error {
	for _, stmt := range schema {
		if _, err := q.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}

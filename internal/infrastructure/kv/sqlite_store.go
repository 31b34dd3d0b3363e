// Package kv implementa repository.KVStore sobre un archivo SQLite (sqlx + modernc.org/sqlite, sin cgo).
// Lo usa el CLI para conservar la sesión entre ejecuciones.
package kv

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/jhoicas/nexus-inventory/internal/domain/repository"
)

const schema = `CREATE TABLE IF NOT EXISTS kv_store (
    key TEXT PRIMARY KEY,
    value BLOB NOT NULL,
    updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);`

var _ repository.KVStore = (*SQLiteStore)(nil)

// SQLiteStore almacén clave-valor persistente.
type SQLiteStore struct {
	db *sqlx.DB
}

// Open abre (o crea) la base en path y asegura el esquema.
func Open(ctx context.Context, path string) (*SQLiteStore, error) {
	db, err := sqlx.ConnectContext(ctx, "sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("kv: abrir %s: %w", path, err)
	}
	db.SetMaxOpenConns(1)
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("kv: crear esquema: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// Get devuelve (nil, false, nil) si la clave no existe.
func (s *SQLiteStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var value []byte
	err := s.db.GetContext(ctx, &value, `SELECT value FROM kv_store WHERE key = ?`, key)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("kv: leer %s: %w", key, err)
	}
	return value, true, nil
}

// Set inserta o reemplaza el valor.
func (s *SQLiteStore) Set(ctx context.Context, key string, value []byte) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO kv_store (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
         ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		key, value)
	if err != nil {
		return fmt.Errorf("kv: escribir %s: %w", key, err)
	}
	return nil
}

// Remove borra la clave; no falla si no existe.
func (s *SQLiteStore) Remove(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM kv_store WHERE key = ?`, key); err != nil {
		return fmt.Errorf("kv: eliminar %s: %w", key, err)
	}
	return nil
}

// Close cierra la base.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

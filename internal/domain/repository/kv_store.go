package repository

import "context"

// KVStore almacenamiento clave-valor síncrono. Solo guarda la identidad serializada de la sesión.
type KVStore interface {
	// Get devuelve (nil, false, nil) si la clave no existe.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	// Remove no falla si la clave no existe.
	Remove(ctx context.Context, key string) error
}

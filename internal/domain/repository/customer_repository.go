package repository

import (
	"context"

	"github.com/jhoicas/nexus-inventory/internal/domain/entity"
)

// CustomerRepository puerto de lectura para clientes (facturación).
type CustomerRepository interface {
	// GetByID devuelve (nil, nil) si no existe.
	GetByID(ctx context.Context, id string) (*entity.Customer, error)
	List(ctx context.Context) ([]entity.Customer, error)
}

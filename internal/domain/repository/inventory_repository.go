package repository

import (
	"context"

	"github.com/jhoicas/nexus-inventory/internal/domain/entity"
)

// InventoryRepository puerto de persistencia para artículos (DIP).
// Update y Delete devuelven domain.ErrNotFound si el ID no existe, sin tocar la colección.
type InventoryRepository interface {
	// NextSequence avanza el contador monótono de IDs. Nunca reutiliza un valor, aunque se borren artículos.
	NextSequence(ctx context.Context) (int, error)
	Create(ctx context.Context, item *entity.InventoryItem) error
	// GetByID devuelve (nil, nil) si no existe.
	GetByID(ctx context.Context, id string) (*entity.InventoryItem, error)
	List(ctx context.Context) ([]entity.InventoryItem, error)
	Update(ctx context.Context, item *entity.InventoryItem) error
	Delete(ctx context.Context, id string) error
}

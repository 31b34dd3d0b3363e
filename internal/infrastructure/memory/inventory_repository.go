// Package memory implementa los puertos de repositorio sobre colecciones en memoria.
// Cada repositorio es dueño exclusivo de su colección; un RWMutex protege el estado porque
// el servidor HTTP atiende peticiones en paralelo (last-writer-wins).
package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/nexus-inventory/internal/domain"
	"github.com/jhoicas/nexus-inventory/internal/domain/entity"
	"github.com/jhoicas/nexus-inventory/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo colección de artículos en orden de inserción.
type InventoryRepo struct {
	mu    sync.RWMutex
	items []entity.InventoryItem
	seq   int
}

// NewInventoryRepository crea el repositorio con los artículos iniciales.
// El contador arranca en el mayor consecutivo sembrado, no en len(seed).
func NewInventoryRepository(seed []entity.InventoryItem) *InventoryRepo {
	r := &InventoryRepo{items: make([]entity.InventoryItem, 0, len(seed))}
	for _, it := range seed {
		r.items = append(r.items, it)
		if n, ok := entity.ParseSequence(it.ID, entity.InventoryIDPrefix, 0); ok && n > r.seq {
			r.seq = n
		}
	}
	return r
}

// NextSequence avanza el contador.
func (r *InventoryRepo) NextSequence(_ context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	return r.seq, nil
}

// Create agrega al final.
func (r *InventoryRepo) Create(_ context.Context, item *entity.InventoryItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, *item)
	return nil
}

// GetByID devuelve una copia o nil.
func (r *InventoryRepo) GetByID(_ context.Context, id string) (*entity.InventoryItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if i := r.indexOf(id); i >= 0 {
		it := r.items[i]
		return &it, nil
	}
	return nil, nil
}

// List copia de la colección en orden de inserción.
func (r *InventoryRepo) List(_ context.Context) ([]entity.InventoryItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entity.InventoryItem, len(r.items))
	copy(out, r.items)
	return out, nil
}

// Update reemplaza el artículo en su misma posición.
func (r *InventoryRepo) Update(_ context.Context, item *entity.InventoryItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOf(item.ID)
	if i < 0 {
		return domain.ErrNotFound
	}
	r.items[i] = *item
	return nil
}

// Delete elimina conservando el orden del resto.
func (r *InventoryRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOf(id)
	if i < 0 {
		return domain.ErrNotFound
	}
	r.items = append(r.items[:i], r.items[i+1:]...)
	return nil
}

func (r *InventoryRepo) indexOf(id string) int {
	for i := range r.items {
		if r.items[i].ID == id {
			return i
		}
	}
	return -1
}

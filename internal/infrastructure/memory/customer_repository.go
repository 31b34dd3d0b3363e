package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/nexus-inventory/internal/domain/entity"
	"github.com/jhoicas/nexus-inventory/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo clientes en memoria (solo lectura).
type CustomerRepo struct {
	mu        sync.RWMutex
	customers []entity.Customer
}

// NewCustomerRepository crea el repositorio con los clientes dados.
func NewCustomerRepository(seed []entity.Customer) *CustomerRepo {
	return &CustomerRepo{customers: append([]entity.Customer(nil), seed...)}
}

// GetByID devuelve una copia o nil.
func (r *CustomerRepo) GetByID(_ context.Context, id string) (*entity.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.customers {
		if c.ID == id {
			c := c
			return &c, nil
		}
	}
	return nil, nil
}

// List copia de los clientes.
func (r *CustomerRepo) List(_ context.Context) ([]entity.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]entity.Customer(nil), r.customers...), nil
}

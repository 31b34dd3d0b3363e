package billing

import (
	"context"
	"fmt"

	"github.com/jhoicas/nexus-inventory/internal/domain"
	"github.com/jhoicas/nexus-inventory/internal/domain/entity"
	"github.com/jhoicas/nexus-inventory/internal/domain/filter"
	"github.com/jhoicas/nexus-inventory/internal/domain/repository"
)

// CustomerUseCase consultas de clientes (solo lectura).
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

// List lista todos los clientes.
func (uc *CustomerUseCase) List(ctx context.Context) ([]entity.Customer, error) {
	return uc.Search(ctx, "")
}

// Search filtra por nombre, email o teléfono. Texto vacío devuelve todos.
func (uc *CustomerUseCase) Search(ctx context.Context, text string) ([]entity.Customer, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("clientes: listar: %w", err)
	}
	return filter.Customers(list, text), nil
}

// Get cliente por ID o domain.ErrNotFound.
func (uc *CustomerUseCase) Get(ctx context.Context, id string) (*entity.Customer, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("clientes: obtener %s: %w", id, err)
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return c, nil
}

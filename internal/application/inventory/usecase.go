package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/nexus-inventory/internal/application/dto"
	"github.com/jhoicas/nexus-inventory/internal/application/validation"
	"github.com/jhoicas/nexus-inventory/internal/domain"
	"github.com/jhoicas/nexus-inventory/internal/domain/entity"
	"github.com/jhoicas/nexus-inventory/internal/domain/filter"
	"github.com/jhoicas/nexus-inventory/internal/domain/repository"
)

// UseCase CRUD y consultas sobre la colección de artículos.
type UseCase struct {
	repo     repository.InventoryRepository
	validate *validation.Validator
	now      Clock
	log      zerolog.Logger
}

// Option configura el UseCase.
type Option func(*UseCase)

// WithClock reemplaza time.Now.
func WithClock(c Clock) Option {
	return func(uc *UseCase) { uc.now = c }
}

// NewUseCase construye el caso de uso de inventario.
func NewUseCase(repo repository.InventoryRepository, v *validation.Validator, log zerolog.Logger, opts ...Option) *UseCase {
	uc := &UseCase{repo: repo, validate: v, now: time.Now, log: log}
	for _, o := range opts {
		o(uc)
	}
	return uc
}

// List devuelve la colección filtrada en orden de inserción.
func (uc *UseCase) List(ctx context.Context, q filter.InventoryQuery) ([]entity.InventoryItem, error) {
	items, err := uc.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("inventario: listar: %w", err)
	}
	return filter.Inventory(items, q), nil
}

// Get devuelve el artículo o domain.ErrNotFound.
func (uc *UseCase) Get(ctx context.Context, id string) (*entity.InventoryItem, error) {
	item, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("inventario: obtener %s: %w", id, err)
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	return item, nil
}

// Create asigna el siguiente ID del contador, aplica valores por defecto (""/0) a los campos
// ausentes y estampa lastUpdated con la fecha actual.
func (uc *UseCase) Create(ctx context.Context, in dto.InventoryItemInput) (*entity.InventoryItem, error) {
	if err := uc.validate.Validate(in); err != nil {
		return nil, err
	}
	seq, err := uc.repo.NextSequence(ctx)
	if err != nil {
		return nil, fmt.Errorf("inventario: consecutivo: %w", err)
	}
	item := &entity.InventoryItem{
		ID:           entity.InventoryID(seq),
		CostPrice:    decimal.Zero,
		SellingPrice: decimal.Zero,
	}
	apply(item, in)
	item.Touch(uc.now())

	if err := uc.repo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("inventario: crear: %w", err)
	}
	uc.log.Info().Str("item_id", item.ID).Str("name", item.Name).Msg("artículo creado")
	return item, nil
}

// Update fusiona los campos presentes sobre el artículo y reestampa lastUpdated.
// Si el ID no existe la colección queda igual y devuelve domain.ErrNotFound.
func (uc *UseCase) Update(ctx context.Context, id string, in dto.InventoryItemInput) (*entity.InventoryItem, error) {
	if err := uc.validate.Validate(in); err != nil {
		return nil, err
	}
	item, err := uc.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	apply(item, in)
	item.Touch(uc.now())

	if err := uc.repo.Update(ctx, item); err != nil {
		return nil, err
	}
	uc.log.Info().Str("item_id", item.ID).Msg("artículo actualizado")
	return item, nil
}

// Delete elimina el artículo. domain.ErrNotFound si no existe.
func (uc *UseCase) Delete(ctx context.Context, id string) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.log.Info().Str("item_id", id).Msg("artículo eliminado")
	return nil
}

// Categories catálogo fijo.
func (uc *UseCase) Categories() []string {
	return append([]string(nil), entity.Categories...)
}

func apply(item *entity.InventoryItem, in dto.InventoryItemInput) {
	if in.Name != nil {
		item.Name = *in.Name
	}
	if in.Category != nil {
		item.Category = *in.Category
	}
	if in.SKU != nil {
		item.SKU = *in.SKU
	}
	if in.CostPrice != nil {
		item.CostPrice = *in.CostPrice
	}
	if in.SellingPrice != nil {
		item.SellingPrice = *in.SellingPrice
	}
	if in.Stock != nil {
		item.Stock = *in.Stock
	}
	if in.ReorderLevel != nil {
		item.ReorderLevel = *in.ReorderLevel
	}
	if in.Barcode != nil {
		item.Barcode = *in.Barcode
	}
}

package inventory

import (
	"context"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/nexus-inventory/internal/application/dto"
	"github.com/jhoicas/nexus-inventory/internal/domain/filter"
)

// reorderFactor stock ideal = 1.5 × nivel de reorden.
var reorderFactor = decimal.NewFromFloat(1.5)

// ReorderSuggestions lista los artículos en stock bajo con la cantidad sugerida de pedido
// (ceil(1.5 × reorderLevel) − stock, mínimo 0) y su costo estimado.
// Orden: mayor déficit primero; a igual déficit conserva el orden de la colección.
func (uc *UseCase) ReorderSuggestions(ctx context.Context) ([]dto.ReorderSuggestionDTO, error) {
	items, err := uc.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("inventario: reposición: %w", err)
	}
	low := filter.LowStock(items)

	out := make([]dto.ReorderSuggestionDTO, 0, len(low))
	for _, it := range low {
		ideal := decimal.NewFromInt(int64(it.ReorderLevel)).Mul(reorderFactor).Ceil().IntPart()
		qty := int(ideal) - it.Stock
		if qty < 0 {
			qty = 0
		}
		out = append(out, dto.ReorderSuggestionDTO{
			ItemID:            it.ID,
			Name:              it.Name,
			SKU:               it.SKU,
			Category:          it.Category,
			Stock:             it.Stock,
			ReorderLevel:      it.ReorderLevel,
			Shortfall:         it.ReorderLevel - it.Stock,
			SuggestedQuantity: qty,
			EstimatedCost:     it.CostPrice.Mul(decimal.NewFromInt(int64(qty))),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Shortfall > out[j].Shortfall
	})
	return out, nil
}

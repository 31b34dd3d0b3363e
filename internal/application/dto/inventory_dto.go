package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/nexus-inventory/internal/domain/entity"
)

// InventoryItemInput campos de create/update. nil = ausente: en create toma el valor por defecto,
// en update conserva el valor actual.
type InventoryItemInput struct {
	Name         *string          `json:"name" validate:"omitempty,max=200"`
	Category     *string          `json:"category" validate:"omitempty,category"`
	SKU          *string          `json:"sku" validate:"omitempty,max=64"`
	CostPrice    *decimal.Decimal `json:"costPrice" validate:"omitempty,min=0"`
	SellingPrice *decimal.Decimal `json:"sellingPrice" validate:"omitempty,min=0"`
	Stock        *int             `json:"stock" validate:"omitempty,min=0"`
	ReorderLevel *int             `json:"reorderLevel" validate:"omitempty,min=0"`
	Barcode      *string          `json:"barcode" validate:"omitempty,max=64"`
}

// InventoryListResponse listado filtrado.
type InventoryListResponse struct {
	Items []entity.InventoryItem `json:"items"`
	Total int                    `json:"total"`
}

// ReorderSuggestionDTO sugerencia de reposición para un ítem en stock bajo.
type ReorderSuggestionDTO struct {
	ItemID            string          `json:"itemId"`
	Name              string          `json:"name"`
	SKU               string          `json:"sku"`
	Category          string          `json:"category"`
	Stock             int             `json:"stock"`
	ReorderLevel      int             `json:"reorderLevel"`
	Shortfall         int             `json:"shortfall"`         // reorderLevel - stock
	SuggestedQuantity int             `json:"suggestedQuantity"` // ceil(1.5 * reorderLevel) - stock
	EstimatedCost     decimal.Decimal `json:"estimatedCost"`     // suggestedQuantity * costPrice
}

// CategoriesResponse catálogo fijo de categorías.
type CategoriesResponse struct {
	Categories []string `json:"categories"`
}

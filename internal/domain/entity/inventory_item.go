package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryIDPrefix prefijo de los IDs de artículos (INV001, INV002, ...).
const InventoryIDPrefix = "INV"

// DateLayout formato de las fechas de negocio (lastUpdated, fecha de factura).
const DateLayout = "2006-01-02"

// Categories conjunto fijo de categorías de producto.
var Categories = []string{
	"Electronics",
	"Clothing",
	"Food & Beverages",
	"Stationery",
	"Furniture",
	"Kitchen Appliances",
	"Toys",
	"Beauty Products",
	"Health & Fitness",
	"Books",
}

// IsCategory indica si c es una de las categorías fijas.
func IsCategory(c string) bool {
	for _, known := range Categories {
		if known == c {
			return true
		}
	}
	return false
}

// InventoryItem artículo del inventario.
// Stock y ReorderLevel son enteros; los precios usan decimal para no arrastrar errores de float.
type InventoryItem struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	SKU          string          `json:"sku"`
	CostPrice    decimal.Decimal `json:"costPrice"`
	SellingPrice decimal.Decimal `json:"sellingPrice"`
	Stock        int             `json:"stock"`
	ReorderLevel int             `json:"reorderLevel"`
	Barcode      string          `json:"barcode"`
	LastUpdated  string          `json:"lastUpdated"` // YYYY-MM-DD
}

// IsLowStock stock en o por debajo del nivel de reorden.
func (i InventoryItem) IsLowStock() bool { return i.Stock <= i.ReorderLevel }

// IsOutOfStock sin existencias.
func (i InventoryItem) IsOutOfStock() bool { return i.Stock == 0 }

// Touch reescribe LastUpdated con la fecha de now.
func (i *InventoryItem) Touch(now time.Time) {
	i.LastUpdated = now.Format(DateLayout)
}

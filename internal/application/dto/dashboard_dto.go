package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
type DashboardSummaryDTO struct {
	Revenue        decimal.Decimal    `json:"revenue"`       // suma de facturas Paid
	PendingAmount  decimal.Decimal    `json:"pendingAmount"` // Pending + Overdue
	InvoiceCount   int                `json:"invoiceCount"`
	CustomerCount  int                `json:"customerCount"`
	Inventory      InventoryStatusDTO `json:"inventory"`
	LowStockItems  []LowStockItemDTO  `json:"lowStockItems"`
	TopProducts    []TopProductDTO    `json:"topProducts"`    // top 5 por ingreso
	RecentInvoices []RecentInvoiceDTO `json:"recentInvoices"` // 5 más recientes
	MonthLabel     string             `json:"monthLabel"`     // ej: "October 2026"
}

// InventoryStatusDTO contadores de inventario.
type InventoryStatusDTO struct {
	TotalItems int             `json:"totalItems"`
	LowStock   int             `json:"lowStock"`
	OutOfStock int             `json:"outOfStock"`
	StockValue decimal.Decimal `json:"stockValue"` // stock * costPrice
}

// LowStockItemDTO ítem con stock <= reorderLevel.
type LowStockItemDTO struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	SKU          string `json:"sku"`
	Stock        int    `json:"stock"`
	ReorderLevel int    `json:"reorderLevel"`
}

// TopProductDTO producto agregado desde las líneas de factura.
type TopProductDTO struct {
	Name      string          `json:"name"`
	UnitsSold int             `json:"unitsSold"`
	Revenue   decimal.Decimal `json:"revenue"`
}

// RecentInvoiceDTO fila ligera del widget de facturas recientes.
type RecentInvoiceDTO struct {
	ID           string          `json:"id"`
	CustomerName string          `json:"customerName"`
	Date         string          `json:"date"`
	Total        decimal.Decimal `json:"total"`
	Status       string          `json:"status"`
}

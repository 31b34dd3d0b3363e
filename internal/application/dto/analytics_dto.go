package dto

import "github.com/shopspring/decimal"

// SalesAnalyticsRequest parámetros de GET /api/sales/analytics.
type SalesAnalyticsRequest struct {
	Year int `query:"year"` // 0 = año actual
}

// SalesAnalyticsDTO respuesta de GET /api/sales/analytics.
type SalesAnalyticsDTO struct {
	Year           int                 `json:"year"`
	TotalRevenue   decimal.Decimal     `json:"totalRevenue"`
	MonthlyRevenue []MonthlyRevenueDTO `json:"monthlyRevenue"` // siempre 12 meses
	CategoryShare  []CategoryShareDTO  `json:"categoryShare"`
	TopProducts    []TopProductDTO     `json:"topProducts"` // por unidades
}

// MonthlyRevenueDTO ingreso de un mes (facturas no canceladas).
type MonthlyRevenueDTO struct {
	Month   string          `json:"month"` // "Jan", "Feb", ...
	Revenue decimal.Decimal `json:"revenue"`
}

// CategoryShareDTO participación de una categoría en el ingreso por líneas.
type CategoryShareDTO struct {
	Category   string          `json:"category"`
	Revenue    decimal.Decimal `json:"revenue"`
	Percentage decimal.Decimal `json:"percentage"` // 0-100, 2 decimales
}

package entity

import "github.com/shopspring/decimal"

// Customer cliente de facturación. Solo lectura en el núcleo (listado, búsqueda, lookup).
type Customer struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Email          string          `json:"email"`
	Phone          string          `json:"phone"`
	Address        string          `json:"address"`
	TotalPurchases decimal.Decimal `json:"totalPurchases"`
	LastPurchase   string          `json:"lastPurchase"` // YYYY-MM-DD
}

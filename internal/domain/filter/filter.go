// Package filter calcula vistas filtradas de las colecciones.
// Todas las funciones son puras: devuelven un slice nuevo, conservan el orden original
// (filtro estable, no ordenamiento) y nunca modifican la entrada.
package filter

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/jhoicas/nexus-inventory/internal/domain"
	"github.com/jhoicas/nexus-inventory/internal/domain/entity"
)

// All valor centinela "sin filtro" para categoría, stock y estado.
const All = "all"

// StockLevel predicado de nivel de stock.
type StockLevel string

// Niveles de stock.
const (
	StockAll StockLevel = All
	StockLow StockLevel = "low"
	StockOut StockLevel = "out"
)

// ParseStockLevel vacío equivale a "all".
func ParseStockLevel(s string) (StockLevel, error) {
	switch StockLevel(strings.ToLower(strings.TrimSpace(s))) {
	case "", StockAll:
		return StockAll, nil
	case StockLow:
		return StockLow, nil
	case StockOut:
		return StockOut, nil
	}
	return "", domain.NewFieldError("stock", "debe ser all, low u out")
}

// InventoryQuery conjunción de predicados para artículos.
type InventoryQuery struct {
	Text     string
	Category string // "" o "all" = sin filtro
	Stock    StockLevel
}

// InvoiceQuery conjunción de predicados para facturas.
type InvoiceQuery struct {
	Text   string
	Status string // "" o "all" = sin filtro; comparación sin mayúsculas
}

// ParseStatus valida un filtro de estado de factura. Vacío equivale a "all".
func ParseStatus(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, All) {
		return All, nil
	}
	st, ok := entity.ParseInvoiceStatus(s)
	if !ok {
		return "", domain.NewFieldError("status", "estado desconocido")
	}
	return string(st), nil
}

// matcher búsqueda de subcadena sin distinguir mayúsculas (case folding Unicode).
type matcher struct {
	caser cases.Caser
	term  string
}

func newMatcher(term string) *matcher {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil
	}
	c := cases.Fold()
	return &matcher{caser: c, term: c.String(term)}
}

// any true si alguno de los campos contiene el término. Un matcher nil acepta todo.
func (m *matcher) any(fields ...string) bool {
	if m == nil {
		return true
	}
	for _, f := range fields {
		if strings.Contains(m.caser.String(f), m.term) {
			return true
		}
	}
	return false
}

func noFilter(s string) bool {
	return s == "" || strings.EqualFold(s, All)
}

// Inventory filtra artículos por texto (nombre, SKU, código de barras), categoría exacta y nivel de stock.
func Inventory(items []entity.InventoryItem, q InventoryQuery) []entity.InventoryItem {
	m := newMatcher(q.Text)
	out := make([]entity.InventoryItem, 0, len(items))
	for _, it := range items {
		if !m.any(it.Name, it.SKU, it.Barcode) {
			continue
		}
		if !noFilter(q.Category) && it.Category != q.Category {
			continue
		}
		if !matchesStock(it, q.Stock) {
			continue
		}
		out = append(out, it)
	}
	return out
}

func matchesStock(it entity.InventoryItem, level StockLevel) bool {
	switch level {
	case StockLow:
		return it.IsLowStock()
	case StockOut:
		return it.IsOutOfStock()
	}
	return true
}

// Invoices filtra facturas por texto (ID, nombre de cliente) y estado.
func Invoices(invoices []entity.Invoice, q InvoiceQuery) []entity.Invoice {
	m := newMatcher(q.Text)
	out := make([]entity.Invoice, 0, len(invoices))
	for _, inv := range invoices {
		if !m.any(inv.ID, inv.CustomerName) {
			continue
		}
		if !noFilter(q.Status) && !strings.EqualFold(string(inv.Status), q.Status) {
			continue
		}
		out = append(out, inv.Clone())
	}
	return out
}

// Customers filtra clientes por nombre, email o teléfono.
func Customers(customers []entity.Customer, text string) []entity.Customer {
	m := newMatcher(text)
	out := make([]entity.Customer, 0, len(customers))
	for _, c := range customers {
		if m.any(c.Name, c.Email, c.Phone) {
			out = append(out, c)
		}
	}
	return out
}

// LowStock atajo usado por el dashboard.
func LowStock(items []entity.InventoryItem) []entity.InventoryItem {
	return Inventory(items, InventoryQuery{Stock: StockLow})
}

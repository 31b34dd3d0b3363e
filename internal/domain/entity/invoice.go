package entity

import (
	"strings"

	"github.com/shopspring/decimal"
)

// InvoiceIDPrefix prefijo de los IDs de factura (INV + año + consecutivo, ej. INV2023001).
const InvoiceIDPrefix = "INV"

// InvoiceStatus estado de cobro de la factura.
type InvoiceStatus string

// Estados válidos.
const (
	InvoicePaid      InvoiceStatus = "Paid"
	InvoicePending   InvoiceStatus = "Pending"
	InvoiceOverdue   InvoiceStatus = "Overdue"
	InvoiceCancelled InvoiceStatus = "Cancelled"
)

// InvoiceStatuses en el orden en que se muestran.
var InvoiceStatuses = []InvoiceStatus{InvoicePaid, InvoicePending, InvoiceOverdue, InvoiceCancelled}

// ParseInvoiceStatus acepta el estado sin distinguir mayúsculas ("paid" → Paid).
func ParseInvoiceStatus(s string) (InvoiceStatus, bool) {
	for _, st := range InvoiceStatuses {
		if strings.EqualFold(string(st), strings.TrimSpace(s)) {
			return st, true
		}
	}
	return "", false
}

// InvoiceLine línea de factura. ID referencia al artículo de inventario (sin FK).
type InvoiceLine struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

// Amount cantidad × precio.
func (l InvoiceLine) Amount() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Invoice cabecera + líneas. CustomerName es una copia desnormalizada al momento de facturar.
// Los totales se almacenan tal como llegan; Total = Subtotal + Tax - Discount no se impone.
type Invoice struct {
	ID            string          `json:"id"`
	CustomerID    string          `json:"customerId"`
	CustomerName  string          `json:"customerName"`
	Date          string          `json:"date"` // YYYY-MM-DD
	Items         []InvoiceLine   `json:"items"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	Tax           decimal.Decimal `json:"tax"`
	Discount      decimal.Decimal `json:"discount"`
	Total         decimal.Decimal `json:"total"`
	Status        InvoiceStatus   `json:"status"`
	PaymentMethod string          `json:"paymentMethod"`
}

// TotalsConsistent verifica Total == Subtotal + Tax - Discount.
func (inv Invoice) TotalsConsistent() bool {
	return inv.Subtotal.Add(inv.Tax).Sub(inv.Discount).Equal(inv.Total)
}

// Clone copia profunda (las líneas no se comparten entre copias).
func (inv Invoice) Clone() Invoice {
	out := inv
	out.Items = append([]InvoiceLine(nil), inv.Items...)
	return out
}

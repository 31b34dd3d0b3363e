package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/nexus-inventory/internal/domain/entity"
)

// InvoiceInput campos de create/update de factura. nil = ausente.
// Los totales se guardan tal como llegan.
type InvoiceInput struct {
	CustomerID    *string            `json:"customerId" validate:"omitempty,max=64"`
	CustomerName  *string            `json:"customerName" validate:"omitempty,max=200"`
	Date          *string            `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Items         []InvoiceLineInput `json:"items" validate:"omitempty,dive"`
	Subtotal      *decimal.Decimal   `json:"subtotal" validate:"omitempty,min=0"`
	Tax           *decimal.Decimal   `json:"tax" validate:"omitempty,min=0"`
	Discount      *decimal.Decimal   `json:"discount" validate:"omitempty,min=0"`
	Total         *decimal.Decimal   `json:"total" validate:"omitempty,min=0"`
	Status        *string            `json:"status" validate:"omitempty,invoice_status"`
	PaymentMethod *string            `json:"paymentMethod" validate:"omitempty,max=64"`
}

// InvoiceLineInput línea de factura.
type InvoiceLineInput struct {
	ID       string          `json:"id" validate:"max=64"`
	Name     string          `json:"name" validate:"required,max=200"`
	Quantity int             `json:"quantity" validate:"gt=0"`
	Price    decimal.Decimal `json:"price" validate:"min=0"`
}

// UpdateStatusRequest body de PATCH /api/invoices/:id/status.
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,invoice_status"`
}

// InvoiceListResponse listado filtrado de facturas.
type InvoiceListResponse struct {
	Items []entity.Invoice `json:"items"`
	Total int              `json:"total"`
}

// CustomerListResponse listado de clientes.
type CustomerListResponse struct {
	Items []entity.Customer `json:"items"`
	Total int               `json:"total"`
}

package billing

import (
	"context"
	"time"

	"github.com/jhoicas/nexus-inventory/internal/domain/entity"
)

// Clock fuente de la fecha actual (fecha por defecto de la factura).
type Clock func() time.Time

// Issuer datos del emisor impresos en las exportaciones.
type Issuer struct {
	Name     string
	Currency string // ISO 4217
}

// InvoicePDFGenerator genera la representación imprimible de una factura.
// customer puede ser nil: la factura solo guarda una copia del nombre.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(ctx context.Context, invoice *entity.Invoice, customer *entity.Customer, issuer Issuer) ([]byte, error)
}

// InvoiceXMLExporter serializa la factura a XML para intercambio.
type InvoiceXMLExporter interface {
	ExportInvoiceXML(ctx context.Context, invoice *entity.Invoice, customer *entity.Customer, issuer Issuer) ([]byte, error)
}

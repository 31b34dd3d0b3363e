package billing

import (
	"context"
	"fmt"

	"github.com/jhoicas/nexus-inventory/internal/domain"
	"github.com/jhoicas/nexus-inventory/internal/domain/entity"
	"github.com/jhoicas/nexus-inventory/internal/domain/repository"
)

// ExportUseCase genera las exportaciones (PDF y XML) de una factura.
type ExportUseCase struct {
	invoiceRepo  repository.InvoiceRepository
	customerRepo repository.CustomerRepository
	pdf          InvoicePDFGenerator
	xml          InvoiceXMLExporter
	issuer       Issuer
}

// NewExportUseCase construye el caso de uso inyectando todas sus dependencias.
func NewExportUseCase(
	invoiceRepo repository.InvoiceRepository,
	customerRepo repository.CustomerRepository,
	pdf InvoicePDFGenerator,
	xml InvoiceXMLExporter,
	issuer Issuer,
) *ExportUseCase {
	return &ExportUseCase{
		invoiceRepo:  invoiceRepo,
		customerRepo: customerRepo,
		pdf:          pdf,
		xml:          xml,
		issuer:       issuer,
	}
}

// DownloadInvoicePDF devuelve los bytes del PDF y el nombre de archivo sugerido.
// domain.ErrNotFound si la factura no existe.
func (uc *ExportUseCase) DownloadInvoicePDF(ctx context.Context, invoiceID string) ([]byte, string, error) {
	inv, customer, err := uc.load(ctx, invoiceID)
	if err != nil {
		return nil, "", err
	}
	b, err := uc.pdf.GenerateInvoicePDF(ctx, inv, customer, uc.issuer)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}
	return b, fmt.Sprintf("invoice_%s.pdf", inv.ID), nil
}

// DownloadInvoiceXML devuelve el XML de la factura y el nombre de archivo sugerido.
func (uc *ExportUseCase) DownloadInvoiceXML(ctx context.Context, invoiceID string) ([]byte, string, error) {
	inv, customer, err := uc.load(ctx, invoiceID)
	if err != nil {
		return nil, "", err
	}
	b, err := uc.xml.ExportInvoiceXML(ctx, inv, customer, uc.issuer)
	if err != nil {
		return nil, "", fmt.Errorf("xml: generación fallida: %w", err)
	}
	return b, fmt.Sprintf("invoice_%s.xml", inv.ID), nil
}

// load carga la factura y, si existe, el cliente referenciado (sin FK: puede no estar).
func (uc *ExportUseCase) load(ctx context.Context, invoiceID string) (*entity.Invoice, *entity.Customer, error) {
	inv, err := uc.invoiceRepo.GetByID(ctx, invoiceID)
	if err != nil {
		return nil, nil, fmt.Errorf("export: obtener factura: %w", err)
	}
	if inv == nil {
		return nil, nil, domain.ErrNotFound
	}
	var customer *entity.Customer
	if inv.CustomerID != "" {
		customer, err = uc.customerRepo.GetByID(ctx, inv.CustomerID)
		if err != nil {
			return nil, nil, fmt.Errorf("export: obtener cliente: %w", err)
		}
	}
	return inv, customer, nil
}

// Package xmlexport serializa facturas a un documento UBL 2.1 simplificado (sin firma)
// para intercambio con sistemas contables.
package xmlexport

import (
	"context"
	"fmt"
	"strconv"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/nexus-inventory/internal/application/billing"
	"github.com/jhoicas/nexus-inventory/internal/domain/entity"
)

// Namespaces UBL 2.1.
const (
	NsInvoice = "urn:oasis:names:specification:ubl:schema:xsd:Invoice-2"
	NsCac     = "urn:oasis:names:specification:ubl:schema:xsd:CommonAggregateComponents-2"
	NsCbc     = "urn:oasis:names:specification:ubl:schema:xsd:CommonBasicComponents-2"
)

// UBLExporter implementa billing.InvoiceXMLExporter con beevik/etree.
type UBLExporter struct{}

// NewUBLExporter crea el exportador.
func NewUBLExporter() *UBLExporter { return &UBLExporter{} }

var _ billing.InvoiceXMLExporter = (*UBLExporter)(nil)

// ExportInvoiceXML construye el documento. Los totales se copian tal cual están almacenados.
func (e *UBLExporter) ExportInvoiceXML(
	_ context.Context,
	invoice *entity.Invoice,
	customer *entity.Customer,
	issuer billing.Issuer,
) ([]byte, error) {
	if invoice == nil {
		return nil, fmt.Errorf("xmlexport: factura nil")
	}
	cur := issuer.Currency

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	root := doc.CreateElement("Invoice")
	root.CreateAttr("xmlns", NsInvoice)
	root.CreateAttr("xmlns:cac", NsCac)
	root.CreateAttr("xmlns:cbc", NsCbc)

	cbc(root, "UBLVersionID", "2.1")
	cbc(root, "ID", invoice.ID)
	cbc(root, "IssueDate", invoice.Date)
	cbc(root, "Note", "Status: "+string(invoice.Status))
	cbc(root, "DocumentCurrencyCode", cur)
	cbc(root, "LineCountNumeric", strconv.Itoa(len(invoice.Items)))

	supplier := root.CreateElement("cac:AccountingSupplierParty").CreateElement("cac:Party")
	cbc(supplier.CreateElement("cac:PartyName"), "Name", issuer.Name)

	writeCustomerParty(root, invoice, customer)

	if invoice.PaymentMethod != "" {
		cbc(root.CreateElement("cac:PaymentMeans"), "InstructionNote", invoice.PaymentMethod)
	}

	if invoice.Discount.IsPositive() {
		ac := root.CreateElement("cac:AllowanceCharge")
		cbc(ac, "ChargeIndicator", "false")
		amount(ac, "Amount", invoice.Discount, cur)
	}

	amount(root.CreateElement("cac:TaxTotal"), "TaxAmount", invoice.Tax, cur)

	lmt := root.CreateElement("cac:LegalMonetaryTotal")
	amount(lmt, "LineExtensionAmount", invoice.Subtotal, cur)
	amount(lmt, "AllowanceTotalAmount", invoice.Discount, cur)
	amount(lmt, "PayableAmount", invoice.Total, cur)

	for i, l := range invoice.Items {
		writeInvoiceLine(root, i+1, l, cur)
	}

	doc.Indent(2)
	b, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("xmlexport: serializar: %w", err)
	}
	return b, nil
}

func writeCustomerParty(root *etree.Element, invoice *entity.Invoice, customer *entity.Customer) {
	party := root.CreateElement("cac:AccountingCustomerParty").CreateElement("cac:Party")
	if invoice.CustomerID != "" {
		cbc(party.CreateElement("cac:PartyIdentification"), "ID", invoice.CustomerID)
	}
	cbc(party.CreateElement("cac:PartyName"), "Name", invoice.CustomerName)
	if customer == nil {
		return
	}
	if customer.Address != "" {
		cbc(party.CreateElement("cac:PostalAddress"), "StreetName", customer.Address)
	}
	contact := party.CreateElement("cac:Contact")
	if customer.Phone != "" {
		cbc(contact, "Telephone", customer.Phone)
	}
	if customer.Email != "" {
		cbc(contact, "ElectronicMail", customer.Email)
	}
}

func writeInvoiceLine(root *etree.Element, n int, l entity.InvoiceLine, cur string) {
	il := root.CreateElement("cac:InvoiceLine")
	cbc(il, "ID", strconv.Itoa(n))
	q := cbc(il, "InvoicedQuantity", strconv.Itoa(l.Quantity))
	q.CreateAttr("unitCode", "EA")
	amount(il, "LineExtensionAmount", l.Amount(), cur)
	item := il.CreateElement("cac:Item")
	cbc(item, "Description", l.Name)
	if l.ID != "" {
		cbc(item.CreateElement("cac:SellersItemIdentification"), "ID", l.ID)
	}
	amount(il.CreateElement("cac:Price"), "PriceAmount", l.Price, cur)
}

func cbc(parent *etree.Element, local, value string) *etree.Element {
	el := parent.CreateElement("cbc:" + local)
	el.SetText(value)
	return el
}

func amount(parent *etree.Element, local string, value decimal.Decimal, cur string) *etree.Element {
	el := cbc(parent, local, value.StringFixed(2))
	if cur != "" {
		el.CreateAttr("currencyID", cur)
	}
	return el
}

package xmlexport_test

import (
	"context"
	"testing"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/nexus-inventory/internal/application/billing"
	"github.com/jhoicas/nexus-inventory/internal/domain/entity"
	"github.com/jhoicas/nexus-inventory/internal/infrastructure/xmlexport"
)

func sampleInvoice() *entity.Invoice {
	return &entity.Invoice{
		ID:           "INV2026001",
		CustomerID:   "CUST001",
		CustomerName: "Acme & Co",
		Date:         "2026-10-16",
		Items: []entity.InvoiceLine{
			{ID: "INV001", Name: "Laptop", Quantity: 2, Price: decimal.RequireFromString("100.5")},
			{Name: "Servicio", Quantity: 1, Price: decimal.RequireFromString("20")},
		},
		Subtotal:      decimal.RequireFromString("221"),
		Tax:           decimal.RequireFromString("39.78"),
		Discount:      decimal.RequireFromString("10"),
		Total:         decimal.RequireFromString("250.78"),
		Status:        entity.InvoicePending,
		PaymentMethod: "Credit Card",
	}
}

func parse(t *testing.T, b []byte) *etree.Element {
	t.Helper()
	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(b))
	require.NotNil(t, doc.Root())
	return doc.Root()
}

func TestExportInvoiceXML(t *testing.T) {
	customer := &entity.Customer{ID: "CUST001", Name: "Acme & Co", Email: "a@acme.test", Phone: "555", Address: "Main St"}
	b, err := xmlexport.NewUBLExporter().ExportInvoiceXML(context.Background(), sampleInvoice(), customer, billing.Issuer{Name: "Nexus", Currency: "INR"})
	require.NoError(t, err)

	root := parse(t, b)
	assert.Equal(t, "Invoice", root.Tag)
	assert.Equal(t, xmlexport.NsInvoice, root.SelectAttrValue("xmlns", ""))
	assert.Equal(t, "INV2026001", root.SelectElement("cbc:ID").Text())
	assert.Equal(t, "2026-10-16", root.SelectElement("cbc:IssueDate").Text())
	assert.Equal(t, "INR", root.SelectElement("cbc:DocumentCurrencyCode").Text())

	lines := root.SelectElements("cac:InvoiceLine")
	require.Len(t, lines, 2)
	assert.Equal(t, "201.00", lines[0].SelectElement("cbc:LineExtensionAmount").Text())
	assert.Equal(t, "INV001", lines[0].FindElement("./cac:Item/cac:SellersItemIdentification/cbc:ID").Text())
	assert.Nil(t, lines[1].FindElement("./cac:Item/cac:SellersItemIdentification"))

	payable := root.FindElement("./cac:LegalMonetaryTotal/cbc:PayableAmount")
	require.NotNil(t, payable)
	assert.Equal(t, "250.78", payable.Text())
	assert.Equal(t, "INR", payable.SelectAttrValue("currencyID", ""))

	assert.Equal(t, "Acme & Co", root.FindElement("./cac:AccountingCustomerParty/cac:Party/cac:PartyName/cbc:Name").Text())
	assert.Equal(t, "a@acme.test", root.FindElement(".//cac:Contact/cbc:ElectronicMail").Text())
	assert.Contains(t, string(b), "Acme &amp; Co")
}

func TestExportInvoiceXML_SinClienteNiDescuento(t *testing.T) {
	inv := sampleInvoice()
	inv.Discount = decimal.Zero
	b, err := xmlexport.NewUBLExporter().ExportInvoiceXML(context.Background(), inv, nil, billing.Issuer{Currency: "USD"})
	require.NoError(t, err)

	root := parse(t, b)
	assert.Nil(t, root.SelectElement("cac:AllowanceCharge"))
	assert.Nil(t, root.FindElement(".//cac:Contact"))
}

func TestExportInvoiceXML_Nil(t *testing.T) {
	_, err := xmlexport.NewUBLExporter().ExportInvoiceXML(context.Background(), nil, nil, billing.Issuer{})
	assert.Error(t, err)
}

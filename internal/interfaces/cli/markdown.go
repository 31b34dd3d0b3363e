package cli

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	md "github.com/nao1215/markdown"

	"github.com/jhoicas/nexus-inventory/internal/application/dto"
	"github.com/jhoicas/nexus-inventory/internal/application/session"
	"github.com/jhoicas/nexus-inventory/internal/domain/entity"
	"github.com/jhoicas/nexus-inventory/internal/domain/policy"
	"github.com/jhoicas/nexus-inventory/pkg/currency"
)

// cell escapa el separador de columnas de las tablas markdown.
func cell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

func itoa(n int) string { return strconv.Itoa(n) }

// SessionMarkdown identidad y banderas de la sesión actual.
func SessionMarkdown(s session.Session) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	if !s.IsAuthenticated {
		doc.H1("Sin sesión").LF().PlainText("Ejecute `nexusctl login -email <email>` para iniciar sesión.")
		return doc.String()
	}
	doc.H1(s.User.Name).LF()
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft},
		Header:    []string{md.Bold("Campo"), md.Bold("Valor")},
		Rows: [][]string{
			{"ID", cell(s.User.ID)},
			{"Email", cell(s.User.Email)},
			{"Rol", string(s.Role())},
			{"Admin", yesNo(s.IsAdmin)},
			{"Manager", yesNo(s.IsManager)},
			{"Employee", yesNo(s.IsEmployee)},
		},
	})
	doc.H2("Secciones de configuración").LF()
	doc.BulletList(policy.SettingsSections(s.Role())...)
	return doc.String()
}

func yesNo(b bool) string {
	if b {
		return "sí"
	}
	return "no"
}

// ItemsMarkdown tabla de artículos.
func ItemsMarkdown(items []entity.InventoryItem, cur string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1f("Inventario (%d)", len(items)).LF()
	if len(items) == 0 {
		doc.PlainText("No hay artículos que coincidan con el filtro.")
		return doc.String()
	}
	rows := make([][]string, 0, len(items))
	for _, it := range items {
		stock := itoa(it.Stock)
		switch {
		case it.IsOutOfStock():
			stock += " (agotado)"
		case it.IsLowStock():
			stock += " (bajo)"
		}
		rows = append(rows, []string{
			it.ID, cell(it.Name), cell(it.Category), cell(it.SKU),
			stock, itoa(it.ReorderLevel),
			currency.Format(it.CostPrice, cur), currency.Format(it.SellingPrice, cur),
			it.LastUpdated,
		})
	}
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft, md.AlignLeft, md.AlignLeft, md.AlignLeft,
			md.AlignRight, md.AlignRight, md.AlignRight, md.AlignRight, md.AlignLeft,
		},
		Header: []string{"ID", "Nombre", "Categoría", "SKU", "Stock", "Reorden", "Costo", "Precio", "Actualizado"},
		Rows:   rows,
	})
	return doc.String()
}

// ItemMarkdown ficha de un artículo.
func ItemMarkdown(it *entity.InventoryItem, cur string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1f("%s %s", it.ID, it.Name).LF()
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{md.Bold("Campo"), md.Bold("Valor")},
		Rows: [][]string{
			{"Categoría", cell(it.Category)},
			{"SKU", cell(it.SKU)},
			{"Código de barras", cell(it.Barcode)},
			{"Stock", itoa(it.Stock)},
			{"Nivel de reorden", itoa(it.ReorderLevel)},
			{"Costo", currency.Format(it.CostPrice, cur)},
			{"Precio de venta", currency.Format(it.SellingPrice, cur)},
			{"Actualizado", it.LastUpdated},
		},
	})
	return doc.String()
}

// ReorderMarkdown sugerencias de reposición.
func ReorderMarkdown(sugg []dto.ReorderSuggestionDTO, cur string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Sugerencias de reposición").LF()
	if len(sugg) == 0 {
		doc.PlainText("Ningún artículo está en o por debajo de su nivel de reorden.")
		return doc.String()
	}
	rows := make([][]string, 0, len(sugg))
	for _, s := range sugg {
		rows = append(rows, []string{
			s.ItemID, cell(s.Name), itoa(s.Stock), itoa(s.ReorderLevel),
			itoa(s.Shortfall), itoa(s.SuggestedQuantity), currency.Format(s.EstimatedCost, cur),
		})
	}
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft, md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight, md.AlignRight, md.AlignRight,
		},
		Header: []string{"ID", "Nombre", "Stock", "Reorden", "Faltante", "Pedir", "Costo estimado"},
		Rows:   rows,
	})
	return doc.String()
}

// InvoicesMarkdown tabla de facturas.
func InvoicesMarkdown(invoices []entity.Invoice, cur string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1f("Facturas (%d)", len(invoices)).LF()
	if len(invoices) == 0 {
		doc.PlainText("No hay facturas que coincidan con el filtro.")
		return doc.String()
	}
	rows := make([][]string, 0, len(invoices))
	for _, inv := range invoices {
		rows = append(rows, []string{
			inv.ID, cell(inv.CustomerName), inv.Date, itoa(len(inv.Items)),
			currency.Format(inv.Total, cur), string(inv.Status),
		})
	}
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft, md.AlignLeft, md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignLeft,
		},
		Header: []string{"ID", "Cliente", "Fecha", "Líneas", "Total", "Estado"},
		Rows:   rows,
	})
	return doc.String()
}

// InvoiceMarkdown detalle de una factura con sus líneas y totales.
func InvoiceMarkdown(inv *entity.Invoice, cur string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1f("Factura %s", inv.ID).LF()
	doc.BulletList(
		fmt.Sprintf("%s %s (%s)", md.Bold("Cliente:"), cell(inv.CustomerName), inv.CustomerID),
		fmt.Sprintf("%s %s", md.Bold("Fecha:"), inv.Date),
		fmt.Sprintf("%s %s", md.Bold("Estado:"), inv.Status),
		fmt.Sprintf("%s %s", md.Bold("Pago:"), cell(inv.PaymentMethod)),
	).LF()

	doc.H2("Líneas").LF()
	rows := make([][]string, 0, len(inv.Items))
	for _, l := range inv.Items {
		rows = append(rows, []string{
			l.ID, cell(l.Name), itoa(l.Quantity),
			currency.Format(l.Price, cur), currency.Format(l.Amount(), cur),
		})
	}
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight},
		Header:    []string{"Artículo", "Descripción", "Cant.", "Precio", "Importe"},
		Rows:      rows,
	})

	doc.H2("Totales").LF()
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{md.Bold("Concepto"), md.Bold("Importe")},
		Rows: [][]string{
			{"Subtotal", currency.Format(inv.Subtotal, cur)},
			{"Impuesto", currency.Format(inv.Tax, cur)},
			{"Descuento", currency.Format(inv.Discount, cur)},
			{md.Bold("Total"), md.Bold(currency.Format(inv.Total, cur))},
		},
	})
	if !inv.TotalsConsistent() {
		doc.LF().Warning("El total no coincide con subtotal + impuesto - descuento.")
	}
	return doc.String()
}

// CustomersMarkdown tabla de clientes.
func CustomersMarkdown(customers []entity.Customer, cur string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1f("Clientes (%d)", len(customers)).LF()
	if len(customers) == 0 {
		doc.PlainText("No hay clientes que coincidan con la búsqueda.")
		return doc.String()
	}
	rows := make([][]string, 0, len(customers))
	for _, c := range customers {
		rows = append(rows, []string{
			c.ID, cell(c.Name), cell(c.Email), cell(c.Phone),
			currency.Format(c.TotalPurchases, cur), c.LastPurchase,
		})
	}
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft, md.AlignLeft, md.AlignLeft, md.AlignLeft, md.AlignRight, md.AlignLeft,
		},
		Header: []string{"ID", "Nombre", "Email", "Teléfono", "Compras", "Última compra"},
		Rows:   rows,
	})
	return doc.String()
}

// DashboardMarkdown resumen del dashboard.
func DashboardMarkdown(s *dto.DashboardSummaryDTO, cur string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1f("Resumen de %s", s.MonthLabel).LF()
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{md.Bold("Indicador"), md.Bold("Valor")},
		Rows: [][]string{
			{"Ingresos (pagadas)", currency.Format(s.Revenue, cur)},
			{"Por cobrar", currency.Format(s.PendingAmount, cur)},
			{"Facturas", itoa(s.InvoiceCount)},
			{"Clientes", itoa(s.CustomerCount)},
			{"Artículos", itoa(s.Inventory.TotalItems)},
			{"Stock bajo", itoa(s.Inventory.LowStock)},
			{"Agotados", itoa(s.Inventory.OutOfStock)},
			{"Valor del stock", currency.Format(s.Inventory.StockValue, cur)},
		},
	})

	if len(s.LowStockItems) > 0 {
		doc.H2("Stock bajo").LF()
		rows := make([][]string, 0, len(s.LowStockItems))
		for _, it := range s.LowStockItems {
			rows = append(rows, []string{it.ID, cell(it.Name), itoa(it.Stock), itoa(it.ReorderLevel)})
		}
		doc.Table(md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignRight, md.AlignRight},
			Header:    []string{"ID", "Nombre", "Stock", "Reorden"},
			Rows:      rows,
		})
	}

	if len(s.TopProducts) > 0 {
		doc.H2("Productos más vendidos").LF()
		rows := make([][]string, 0, len(s.TopProducts))
		for _, p := range s.TopProducts {
			rows = append(rows, []string{cell(p.Name), itoa(p.UnitsSold), currency.Format(p.Revenue, cur)})
		}
		doc.Table(md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight},
			Header:    []string{"Producto", "Unidades", "Ingreso"},
			Rows:      rows,
		})
	}

	if len(s.RecentInvoices) > 0 {
		doc.H2("Facturas recientes").LF()
		rows := make([][]string, 0, len(s.RecentInvoices))
		for _, r := range s.RecentInvoices {
			rows = append(rows, []string{r.ID, cell(r.CustomerName), r.Date, currency.Format(r.Total, cur), r.Status})
		}
		doc.Table(md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignLeft, md.AlignRight, md.AlignLeft},
			Header:    []string{"ID", "Cliente", "Fecha", "Total", "Estado"},
			Rows:      rows,
		})
	}
	return doc.String()
}

// Package analytics contiene los casos de uso de reportes: resumen del dashboard y analítica de ventas.
// Todo se calcula en memoria a partir de los repositorios; no hay consultas agregadas en BD.
package analytics

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/nexus-inventory/internal/application/dto"
	"github.com/jhoicas/nexus-inventory/internal/domain/entity"
	"github.com/jhoicas/nexus-inventory/internal/domain/filter"
	"github.com/jhoicas/nexus-inventory/internal/domain/repository"
)

const (
	dashboardTopProducts    = 5 // productos en el widget del dashboard
	dashboardRecentInvoices = 5
)

// DashboardUseCase genera el resumen del dashboard.
type DashboardUseCase struct {
	inventoryRepo repository.InventoryRepository
	invoiceRepo   repository.InvoiceRepository
	customerRepo  repository.CustomerRepository
	now           func() time.Time
}

// NewDashboardUseCase construye el caso de uso. now nil usa time.Now.
func NewDashboardUseCase(
	inventoryRepo repository.InventoryRepository,
	invoiceRepo repository.InvoiceRepository,
	customerRepo repository.CustomerRepository,
	now func() time.Time,
) *DashboardUseCase {
	if now == nil {
		now = time.Now
	}
	return &DashboardUseCase{inventoryRepo: inventoryRepo, invoiceRepo: invoiceRepo, customerRepo: customerRepo, now: now}
}

// snapshot las tres colecciones leídas en paralelo.
type snapshot struct {
	items     []entity.InventoryItem
	invoices  []entity.Invoice
	customers []entity.Customer
}

func loadSnapshot(ctx context.Context, inv repository.InventoryRepository, bills repository.InvoiceRepository, cust repository.CustomerRepository) (*snapshot, error) {
	type itemsResult struct {
		v   []entity.InventoryItem
		err error
	}
	type invoicesResult struct {
		v   []entity.Invoice
		err error
	}
	type customersResult struct {
		v   []entity.Customer
		err error
	}
	itemsCh := make(chan itemsResult, 1)
	invoicesCh := make(chan invoicesResult, 1)
	customersCh := make(chan customersResult, 1)

	go func() {
		v, err := inv.List(ctx)
		itemsCh <- itemsResult{v, err}
	}()
	go func() {
		v, err := bills.List(ctx)
		invoicesCh <- invoicesResult{v, err}
	}()
	go func() {
		if cust == nil {
			customersCh <- customersResult{}
			return
		}
		v, err := cust.List(ctx)
		customersCh <- customersResult{v, err}
	}()

	ir, vr, cr := <-itemsCh, <-invoicesCh, <-customersCh
	if ir.err != nil {
		return nil, fmt.Errorf("analytics: inventario: %w", ir.err)
	}
	if vr.err != nil {
		return nil, fmt.Errorf("analytics: facturas: %w", vr.err)
	}
	if cr.err != nil {
		return nil, fmt.Errorf("analytics: clientes: %w", cr.err)
	}
	return &snapshot{items: ir.v, invoices: vr.v, customers: cr.v}, nil
}

// GetSummary construye el DashboardSummaryDTO.
//   - Revenue: suma de facturas Paid; PendingAmount: Pending + Overdue.
//   - Top productos por ingreso de líneas (sin facturas canceladas).
//   - Facturas recientes por fecha descendente.
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	snap, err := loadSnapshot(ctx, uc.inventoryRepo, uc.invoiceRepo, uc.customerRepo)
	if err != nil {
		return nil, err
	}

	out := &dto.DashboardSummaryDTO{
		Revenue:        decimal.Zero,
		PendingAmount:  decimal.Zero,
		InvoiceCount:   len(snap.invoices),
		CustomerCount:  len(snap.customers),
		LowStockItems:  []dto.LowStockItemDTO{},
		RecentInvoices: []dto.RecentInvoiceDTO{},
		MonthLabel:     uc.now().Format("January 2006"),
	}

	for _, inv := range snap.invoices {
		switch inv.Status {
		case entity.InvoicePaid:
			out.Revenue = out.Revenue.Add(inv.Total)
		case entity.InvoicePending, entity.InvoiceOverdue:
			out.PendingAmount = out.PendingAmount.Add(inv.Total)
		}
	}

	out.Inventory = inventoryStatus(snap.items)
	for _, it := range filter.LowStock(snap.items) {
		out.LowStockItems = append(out.LowStockItems, dto.LowStockItemDTO{
			ID: it.ID, Name: it.Name, SKU: it.SKU, Stock: it.Stock, ReorderLevel: it.ReorderLevel,
		})
	}

	top := aggregateProducts(snap.invoices)
	sort.SliceStable(top, func(i, j int) bool { return top[i].Revenue.GreaterThan(top[j].Revenue) })
	out.TopProducts = limit(top, dashboardTopProducts)

	recent := append([]entity.Invoice(nil), snap.invoices...)
	sort.SliceStable(recent, func(i, j int) bool { return recent[i].Date > recent[j].Date })
	for _, inv := range recent {
		if len(out.RecentInvoices) == dashboardRecentInvoices {
			break
		}
		out.RecentInvoices = append(out.RecentInvoices, dto.RecentInvoiceDTO{
			ID: inv.ID, CustomerName: inv.CustomerName, Date: inv.Date, Total: inv.Total, Status: string(inv.Status),
		})
	}
	return out, nil
}

func inventoryStatus(items []entity.InventoryItem) dto.InventoryStatusDTO {
	st := dto.InventoryStatusDTO{TotalItems: len(items), StockValue: decimal.Zero}
	for _, it := range items {
		if it.IsLowStock() {
			st.LowStock++
		}
		if it.IsOutOfStock() {
			st.OutOfStock++
		}
		st.StockValue = st.StockValue.Add(it.CostPrice.Mul(decimal.NewFromInt(int64(it.Stock))))
	}
	return st
}

// aggregateProducts suma unidades e ingreso por producto (ID de línea, o nombre si no hay ID),
// en orden de primera aparición. Ignora facturas canceladas.
func aggregateProducts(invoices []entity.Invoice) []dto.TopProductDTO {
	idx := map[string]int{}
	var out []dto.TopProductDTO
	for _, inv := range invoices {
		if inv.Status == entity.InvoiceCancelled {
			continue
		}
		for _, l := range inv.Items {
			key := l.ID
			if key == "" {
				key = l.Name
			}
			i, ok := idx[key]
			if !ok {
				i = len(out)
				idx[key] = i
				out = append(out, dto.TopProductDTO{Name: l.Name, Revenue: decimal.Zero})
			}
			out[i].UnitsSold += l.Quantity
			out[i].Revenue = out[i].Revenue.Add(l.Amount())
		}
	}
	return out
}

func limit(p []dto.TopProductDTO, n int) []dto.TopProductDTO {
	if len(p) > n {
		p = p[:n]
	}
	if p == nil {
		return []dto.TopProductDTO{}
	}
	return p
}

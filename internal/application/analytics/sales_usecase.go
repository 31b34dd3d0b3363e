package analytics

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/nexus-inventory/internal/application/dto"
	"github.com/jhoicas/nexus-inventory/internal/domain/entity"
	"github.com/jhoicas/nexus-inventory/internal/domain/repository"
)

const (
	salesTopProducts = 5
	// OthersCategory agrupa líneas cuyo artículo ya no está en el inventario.
	OthersCategory = "Others"
)

var hundred = decimal.NewFromInt(100)

// SalesUseCase analítica de ventas por año.
type SalesUseCase struct {
	inventoryRepo repository.InventoryRepository
	invoiceRepo   repository.InvoiceRepository
	now           func() time.Time
}

// NewSalesUseCase construye el caso de uso. now nil usa time.Now.
func NewSalesUseCase(inventoryRepo repository.InventoryRepository, invoiceRepo repository.InvoiceRepository, now func() time.Time) *SalesUseCase {
	if now == nil {
		now = time.Now
	}
	return &SalesUseCase{inventoryRepo: inventoryRepo, invoiceRepo: invoiceRepo, now: now}
}

// GetSalesAnalytics ingreso mensual (12 meses), participación por categoría y top productos
// por unidades del año indicado (0 = año actual). Solo cuentan facturas Paid y Pending.
func (uc *SalesUseCase) GetSalesAnalytics(ctx context.Context, year int) (*dto.SalesAnalyticsDTO, error) {
	if year <= 0 {
		year = uc.now().Year()
	}
	snap, err := loadSnapshot(ctx, uc.inventoryRepo, uc.invoiceRepo, nil)
	if err != nil {
		return nil, err
	}

	categoryOf := make(map[string]string, len(snap.items))
	for _, it := range snap.items {
		categoryOf[it.ID] = it.Category
	}

	out := &dto.SalesAnalyticsDTO{Year: year, TotalRevenue: decimal.Zero}
	monthly := make([]decimal.Decimal, 12)
	for i := range monthly {
		monthly[i] = decimal.Zero
	}

	var inYear []entity.Invoice
	for _, inv := range snap.invoices {
		if !countsAsSale(inv.Status) {
			continue
		}
		d, err := time.Parse(entity.DateLayout, inv.Date)
		if err != nil || d.Year() != year {
			continue
		}
		inYear = append(inYear, inv)
		monthly[d.Month()-1] = monthly[d.Month()-1].Add(inv.Total)
		out.TotalRevenue = out.TotalRevenue.Add(inv.Total)
	}
	for m, rev := range monthly {
		out.MonthlyRevenue = append(out.MonthlyRevenue, dto.MonthlyRevenueDTO{
			Month:   time.Month(m + 1).String()[:3],
			Revenue: rev,
		})
	}

	out.CategoryShare = categoryShare(inYear, categoryOf)

	top := aggregateProducts(inYear)
	sort.SliceStable(top, func(i, j int) bool { return top[i].UnitsSold > top[j].UnitsSold })
	out.TopProducts = limit(top, salesTopProducts)
	return out, nil
}

// countsAsSale Overdue y Cancelled quedan fuera de la analítica de ventas.
func countsAsSale(s entity.InvoiceStatus) bool {
	return s == entity.InvoicePaid || s == entity.InvoicePending
}

func categoryShare(invoices []entity.Invoice, categoryOf map[string]string) []dto.CategoryShareDTO {
	idx := map[string]int{}
	out := []dto.CategoryShareDTO{}
	total := decimal.Zero
	for _, inv := range invoices {
		for _, l := range inv.Items {
			cat, ok := categoryOf[l.ID]
			if !ok || cat == "" {
				cat = OthersCategory
			}
			i, seen := idx[cat]
			if !seen {
				i = len(out)
				idx[cat] = i
				out = append(out, dto.CategoryShareDTO{Category: cat, Revenue: decimal.Zero})
			}
			amt := l.Amount()
			out[i].Revenue = out[i].Revenue.Add(amt)
			total = total.Add(amt)
		}
	}
	for i := range out {
		out[i].Percentage = decimal.Zero
		if total.IsPositive() {
			out[i].Percentage = out[i].Revenue.Div(total).Mul(hundred).Round(2)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Revenue.GreaterThan(out[j].Revenue) })
	return out
}

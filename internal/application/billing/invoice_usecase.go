package billing

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/nexus-inventory/internal/application/dto"
	"github.com/jhoicas/nexus-inventory/internal/application/validation"
	"github.com/jhoicas/nexus-inventory/internal/domain"
	"github.com/jhoicas/nexus-inventory/internal/domain/entity"
	"github.com/jhoicas/nexus-inventory/internal/domain/filter"
	"github.com/jhoicas/nexus-inventory/internal/domain/repository"
)

// InvoiceUseCase CRUD y consultas sobre facturas.
// Los totales se guardan tal como llegan; si Total != Subtotal + Tax - Discount solo se registra un warning.
type InvoiceUseCase struct {
	repo         repository.InvoiceRepository
	customerRepo repository.CustomerRepository
	validate     *validation.Validator
	now          Clock
	log          zerolog.Logger
}

// NewInvoiceUseCase construye el caso de uso. now nil usa time.Now.
func NewInvoiceUseCase(
	repo repository.InvoiceRepository,
	customerRepo repository.CustomerRepository,
	v *validation.Validator,
	now Clock,
	log zerolog.Logger,
) *InvoiceUseCase {
	if now == nil {
		now = time.Now
	}
	return &InvoiceUseCase{repo: repo, customerRepo: customerRepo, validate: v, now: now, log: log}
}

// List facturas filtradas, en orden de inserción.
func (uc *InvoiceUseCase) List(ctx context.Context, q filter.InvoiceQuery) ([]entity.Invoice, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("facturas: listar: %w", err)
	}
	return filter.Invoices(list, q), nil
}

// Get factura por ID o domain.ErrNotFound.
func (uc *InvoiceUseCase) Get(ctx context.Context, id string) (*entity.Invoice, error) {
	inv, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("facturas: obtener %s: %w", id, err)
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	return inv, nil
}

// Create asigna INV + año + consecutivo. Fecha ausente = hoy; estado ausente = Pending.
// Si llega customerId sin customerName, copia el nombre del cliente.
func (uc *InvoiceUseCase) Create(ctx context.Context, in dto.InvoiceInput) (*entity.Invoice, error) {
	if err := uc.validate.Validate(in); err != nil {
		return nil, err
	}
	inv := &entity.Invoice{
		Date:     uc.now().Format(entity.DateLayout),
		Items:    []entity.InvoiceLine{},
		Subtotal: decimal.Zero,
		Tax:      decimal.Zero,
		Discount: decimal.Zero,
		Total:    decimal.Zero,
		Status:   entity.InvoicePending,
	}
	if err := uc.apply(ctx, inv, in); err != nil {
		return nil, err
	}

	date, err := time.Parse(entity.DateLayout, inv.Date)
	if err != nil {
		return nil, domain.NewFieldError("date", "fecha inválida")
	}
	seq, err := uc.repo.NextSequence(ctx)
	if err != nil {
		return nil, fmt.Errorf("facturas: consecutivo: %w", err)
	}
	inv.ID = entity.InvoiceID(date.Year(), seq)

	uc.warnTotals(inv)
	if err := uc.repo.Create(ctx, inv); err != nil {
		return nil, fmt.Errorf("facturas: crear: %w", err)
	}
	uc.log.Info().Str("invoice_id", inv.ID).Str("customer", inv.CustomerName).Msg("factura creada")
	return inv, nil
}

// Update fusiona los campos presentes. Items, si viene, reemplaza todas las líneas.
// domain.ErrNotFound si no existe; en ese caso nada cambia.
func (uc *InvoiceUseCase) Update(ctx context.Context, id string, in dto.InvoiceInput) (*entity.Invoice, error) {
	if err := uc.validate.Validate(in); err != nil {
		return nil, err
	}
	inv, err := uc.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := uc.apply(ctx, inv, in); err != nil {
		return nil, err
	}
	uc.warnTotals(inv)
	if err := uc.repo.Update(ctx, inv); err != nil {
		return nil, err
	}
	uc.log.Info().Str("invoice_id", inv.ID).Msg("factura actualizada")
	return inv, nil
}

// UpdateStatus cambia solo el estado (sin distinguir mayúsculas en la entrada).
func (uc *InvoiceUseCase) UpdateStatus(ctx context.Context, id string, in dto.UpdateStatusRequest) (*entity.Invoice, error) {
	if err := uc.validate.Validate(in); err != nil {
		return nil, err
	}
	return uc.Update(ctx, id, dto.InvoiceInput{Status: &in.Status})
}

// Delete elimina la factura. domain.ErrNotFound si no existe.
func (uc *InvoiceUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.log.Info().Str("invoice_id", id).Msg("factura eliminada")
	return nil
}

func (uc *InvoiceUseCase) apply(ctx context.Context, inv *entity.Invoice, in dto.InvoiceInput) error {
	if in.CustomerID != nil {
		inv.CustomerID = *in.CustomerID
		if in.CustomerName == nil && inv.CustomerID != "" {
			c, err := uc.customerRepo.GetByID(ctx, inv.CustomerID)
			if err != nil {
				return fmt.Errorf("facturas: cliente %s: %w", inv.CustomerID, err)
			}
			if c != nil {
				inv.CustomerName = c.Name
			}
		}
	}
	if in.CustomerName != nil {
		inv.CustomerName = *in.CustomerName
	}
	if in.Date != nil {
		inv.Date = *in.Date
	}
	if in.Items != nil {
		lines := make([]entity.InvoiceLine, 0, len(in.Items))
		for _, l := range in.Items {
			lines = append(lines, entity.InvoiceLine{ID: l.ID, Name: l.Name, Quantity: l.Quantity, Price: l.Price})
		}
		inv.Items = lines
	}
	if in.Subtotal != nil {
		inv.Subtotal = *in.Subtotal
	}
	if in.Tax != nil {
		inv.Tax = *in.Tax
	}
	if in.Discount != nil {
		inv.Discount = *in.Discount
	}
	if in.Total != nil {
		inv.Total = *in.Total
	}
	if in.Status != nil {
		st, ok := entity.ParseInvoiceStatus(*in.Status)
		if !ok {
			return domain.NewFieldError("status", "estado desconocido")
		}
		inv.Status = st
	}
	if in.PaymentMethod != nil {
		inv.PaymentMethod = *in.PaymentMethod
	}
	return nil
}

func (uc *InvoiceUseCase) warnTotals(inv *entity.Invoice) {
	if inv.TotalsConsistent() {
		return
	}
	uc.log.Warn().
		Str("invoice_id", inv.ID).
		Str("subtotal", inv.Subtotal.String()).
		Str("tax", inv.Tax.String()).
		Str("discount", inv.Discount.String()).
		Str("total", inv.Total.String()).
		Msg("factura con totales inconsistentes: se guarda tal como llegó")
}

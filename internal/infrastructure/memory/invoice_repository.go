package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/nexus-inventory/internal/domain"
	"github.com/jhoicas/nexus-inventory/internal/domain/entity"
	"github.com/jhoicas/nexus-inventory/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo colección de facturas. Las líneas se copian al entrar y al salir.
type InvoiceRepo struct {
	mu       sync.RWMutex
	invoices []entity.Invoice
	seq      int
}

// NewInvoiceRepository crea el repositorio; el contador parte del mayor consecutivo sembrado.
func NewInvoiceRepository(seed []entity.Invoice) *InvoiceRepo {
	r := &InvoiceRepo{invoices: make([]entity.Invoice, 0, len(seed))}
	for _, inv := range seed {
		r.invoices = append(r.invoices, inv.Clone())
		if n, ok := entity.ParseSequence(inv.ID, entity.InvoiceIDPrefix, 4); ok && n > r.seq {
			r.seq = n
		}
	}
	return r
}

// NextSequence avanza el contador.
func (r *InvoiceRepo) NextSequence(_ context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	return r.seq, nil
}

// Create agrega al final.
func (r *InvoiceRepo) Create(_ context.Context, invoice *entity.Invoice) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.invoices = append(r.invoices, invoice.Clone())
	return nil
}

// GetByID devuelve una copia o nil.
func (r *InvoiceRepo) GetByID(_ context.Context, id string) (*entity.Invoice, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if i := r.indexOf(id); i >= 0 {
		inv := r.invoices[i].Clone()
		return &inv, nil
	}
	return nil, nil
}

// List copia de la colección en orden de inserción.
func (r *InvoiceRepo) List(_ context.Context) ([]entity.Invoice, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entity.Invoice, 0, len(r.invoices))
	for _, inv := range r.invoices {
		out = append(out, inv.Clone())
	}
	return out, nil
}

// Update reemplaza la factura en su misma posición.
func (r *InvoiceRepo) Update(_ context.Context, invoice *entity.Invoice) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOf(invoice.ID)
	if i < 0 {
		return domain.ErrNotFound
	}
	r.invoices[i] = invoice.Clone()
	return nil
}

// Delete elimina la factura. No hay cascada hacia clientes ni inventario.
func (r *InvoiceRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOf(id)
	if i < 0 {
		return domain.ErrNotFound
	}
	r.invoices = append(r.invoices[:i], r.invoices[i+1:]...)
	return nil
}

func (r *InvoiceRepo) indexOf(id string) int {
	for i := range r.invoices {
		if r.invoices[i].ID == id {
			return i
		}
	}
	return -1
}

// Package storage abre el backend de colecciones elegido por STORAGE_DRIVER.
package storage

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/jhoicas/nexus-inventory/internal/domain/entity"
	"github.com/jhoicas/nexus-inventory/internal/domain/repository"
	"github.com/jhoicas/nexus-inventory/internal/infrastructure/memory"
	"github.com/jhoicas/nexus-inventory/internal/infrastructure/postgres"
	"github.com/jhoicas/nexus-inventory/internal/infrastructure/seed"
	"github.com/jhoicas/nexus-inventory/pkg/config"
)

// Repositories los tres repositorios de colecciones sobre un mismo backend.
type Repositories struct {
	Driver    string
	Inventory repository.InventoryRepository
	Invoices  repository.InvoiceRepository
	Customers repository.CustomerRepository
	close     func()
}

// Close libera el backend (pool de PostgreSQL). Idempotente.
func (r *Repositories) Close() {
	if r.close != nil {
		r.close()
		r.close = nil
	}
}

// Open abre memory o postgres. Con SeedDemo, memory arranca con los datos de demostración
// y postgres los inserta solo si la base está vacía.
func Open(ctx context.Context, cfg config.Config, log zerolog.Logger) (*Repositories, error) {
	switch cfg.Storage.Driver {
	case config.StorageMemory, "":
		return openMemory(cfg.Storage.SeedDemo), nil
	case config.StoragePostgres:
		return openPostgres(ctx, cfg, log)
	}
	return nil, fmt.Errorf("storage: driver desconocido %q", cfg.Storage.Driver)
}

func openMemory(withSeed bool) *Repositories {
	var (
		items     []entity.InventoryItem
		invoices  []entity.Invoice
		customers []entity.Customer
	)
	if withSeed {
		items, invoices, customers = seed.InventoryItems(), seed.Invoices(), seed.Customers()
	}
	return &Repositories{
		Driver:    config.StorageMemory,
		Inventory: memory.NewInventoryRepository(items),
		Invoices:  memory.NewInvoiceRepository(invoices),
		Customers: memory.NewCustomerRepository(customers),
	}
}

func openPostgres(ctx context.Context, cfg config.Config, log zerolog.Logger) (*Repositories, error) {
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("storage: conexión a PostgreSQL: %w", err)
	}
	if err := postgres.Migrate(ctx, pool); err != nil {
		pool.Close()
		return nil, fmt.Errorf("storage: migrar: %w", err)
	}
	if cfg.Storage.SeedDemo {
		seeded, err := postgres.SeedIfEmpty(ctx, pool, seed.InventoryItems(), seed.Customers(), seed.Invoices())
		if err != nil {
			pool.Close()
			return nil, fmt.Errorf("storage: datos demo: %w", err)
		}
		if seeded {
			log.Info().Msg("datos de demostración cargados en PostgreSQL")
		}
	}
	return &Repositories{
		Driver:    config.StoragePostgres,
		Inventory: postgres.NewProductRepository(pool),
		Invoices:  postgres.NewInvoiceRepository(pool),
		Customers: postgres.NewCustomerRepository(pool),
		close:     pool.Close,
	}, nil
}

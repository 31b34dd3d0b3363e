package cli_test

import (
	"bytes"
	"context"
	"flag"
	"strings"
	"testing"
	"time"

	"github.com/google/subcommands"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/nexus-inventory/internal/application/analytics"
	"github.com/jhoicas/nexus-inventory/internal/application/billing"
	"github.com/jhoicas/nexus-inventory/internal/application/inventory"
	"github.com/jhoicas/nexus-inventory/internal/application/session"
	"github.com/jhoicas/nexus-inventory/internal/application/validation"
	"github.com/jhoicas/nexus-inventory/internal/domain/entity"
	"github.com/jhoicas/nexus-inventory/internal/domain/filter"
	"github.com/jhoicas/nexus-inventory/internal/infrastructure/memory"
	"github.com/jhoicas/nexus-inventory/internal/infrastructure/seed"
	"github.com/jhoicas/nexus-inventory/internal/interfaces/cli"
)

var hoy = time.Date(2026, 10, 16, 9, 30, 0, 0, time.UTC)

type harness struct {
	env *cli.Env
	kv  *memory.KVStore
	out bytes.Buffer
	err bytes.Buffer
	in  bytes.Buffer
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	directory, err := seed.Directory(bcrypt.MinCost)
	require.NoError(t, err)

	ctx := context.Background()
	clock := func() time.Time { return hoy }
	validate := validation.New()
	items := memory.NewInventoryRepository(seed.InventoryItems())
	invoices := memory.NewInvoiceRepository(seed.Invoices())
	customers := memory.NewCustomerRepository(seed.Customers())

	h := &harness{kv: memory.NewKVStore()}
	h.env = &cli.Env{
		Session:   session.NewStore(ctx, h.kv, directory, zerolog.Nop()),
		Inventory: inventory.NewUseCase(items, validate, zerolog.Nop(), inventory.WithClock(clock)),
		Invoices:  billing.NewInvoiceUseCase(invoices, customers, validate, clock, zerolog.Nop()),
		Customers: billing.NewCustomerUseCase(customers),
		Dashboard: analytics.NewDashboardUseCase(items, invoices, customers, clock),
		Currency:  "INR",
		Out:       cli.PlainPrinter(&h.out),
		Err:       &h.err,
		In:        &h.in,
		Log:       zerolog.Nop(),
	}
	return h
}

// run ejecuta una línea de comandos como lo haría main.
func (h *harness) run(t *testing.T, args ...string) subcommands.ExitStatus {
	t.Helper()
	h.out.Reset()
	h.err.Reset()
	fs := flag.NewFlagSet("nexusctl", flag.ContinueOnError)
	cdr := subcommands.NewCommander(fs, "nexusctl")
	cli.Register(cdr, h.env)
	require.NoError(t, fs.Parse(args))
	return cdr.Execute(context.Background())
}

func (h *harness) login(t *testing.T, email, password string) {
	t.Helper()
	require.Equal(t, subcommands.ExitSuccess, h.run(t, "login", "-email", email, "-password", password), h.err.String())
}

func TestLogin_PersisteSesionEntreEjecuciones(t *testing.T) {
	h := newHarness(t)
	h.login(t, "admin@example.com", "admin123")
	assert.Contains(t, h.out.String(), "# Admin User")
	assert.Contains(t, h.out.String(), "| Rol | admin |")

	blob, ok, err := h.kv.Get(context.Background(), session.StorageKey)
	require.NoError(t, err)
	require.True(t, ok)
	assert.NotContains(t, string(blob), "admin123")

	// Otra ejecución: un store nuevo sobre el mismo KV rehidrata la sesión.
	directory, err := seed.Directory(bcrypt.MinCost)
	require.NoError(t, err)
	h.env.Session = session.NewStore(context.Background(), h.kv, directory, zerolog.Nop())
	require.Equal(t, subcommands.ExitSuccess, h.run(t, "whoami"))
	assert.Contains(t, h.out.String(), "admin@example.com")
	assert.Contains(t, h.out.String(), "- admin")
}

func TestLogin_PasswordDesdeEntradaEstandar(t *testing.T) {
	h := newHarness(t)
	h.in.WriteString("employee123\n")
	require.Equal(t, subcommands.ExitSuccess, h.run(t, "login", "-email", "employee@example.com"))
	assert.Equal(t, entity.RoleEmployee, h.env.Session.Current().Role())
}

func TestLogin_Rechazos(t *testing.T) {
	h := newHarness(t)
	h.login(t, "manager@example.com", "manager123")

	assert.Equal(t, subcommands.ExitFailure, h.run(t, "login", "-email", "admin@example.com", "-password", "nope"))
	assert.Contains(t, h.err.String(), "credenciales inválidas")
	// La sesión previa se conserva.
	assert.Equal(t, entity.RoleManager, h.env.Session.Current().Role())

	assert.Equal(t, subcommands.ExitUsageError, h.run(t, "login"))
}

func TestLogout_Idempotente(t *testing.T) {
	h := newHarness(t)
	h.login(t, "admin@example.com", "admin123")

	require.Equal(t, subcommands.ExitSuccess, h.run(t, "logout"))
	require.Equal(t, subcommands.ExitSuccess, h.run(t, "logout"))
	assert.Contains(t, h.out.String(), "Sin sesión")
	_, ok, err := h.kv.Get(context.Background(), session.StorageKey)
	require.NoError(t, err)
	assert.False(t, ok)

	assert.Equal(t, subcommands.ExitFailure, h.run(t, "items"))
	assert.Contains(t, h.err.String(), "no hay sesión activa")
}

func TestItems_Filtros(t *testing.T) {
	h := newHarness(t)
	h.login(t, "employee@example.com", "employee123")

	require.Equal(t, subcommands.ExitSuccess, h.run(t, "items"))
	assert.Contains(t, h.out.String(), "# Inventario (6)")
	assert.Contains(t, h.out.String(), "| INV001 | Laptop | Electronics |")
	assert.Contains(t, h.out.String(), "₹55,000.00")

	require.Equal(t, subcommands.ExitSuccess, h.run(t, "items", "-q", "CHAIR"))
	assert.Contains(t, h.out.String(), "# Inventario (1)")
	assert.Contains(t, h.out.String(), "Office Chair")

	require.Equal(t, subcommands.ExitSuccess, h.run(t, "items", "-category", "Food & Beverages"))
	assert.Contains(t, h.out.String(), "Coffee Beans")
	assert.NotContains(t, h.out.String(), "Laptop")

	require.Equal(t, subcommands.ExitSuccess, h.run(t, "items", "-stock", "out"))
	assert.Contains(t, h.out.String(), "No hay artículos")

	assert.Equal(t, subcommands.ExitUsageError, h.run(t, "items", "-stock", "bogus"))
	assert.Contains(t, h.err.String(), "campo inválido stock")
}

func TestItemAdd_PermisosYConsecutivo(t *testing.T) {
	h := newHarness(t)
	h.login(t, "employee@example.com", "employee123")
	assert.Equal(t, subcommands.ExitFailure, h.run(t, "item-add", "-name", "Desk"))
	assert.Contains(t, h.err.String(), "permiso denegado")

	h.login(t, "manager@example.com", "manager123")
	require.Equal(t, subcommands.ExitSuccess, h.run(t, "item-add", "-name", "Desk", "-category", "Furniture", "-price", "1500.5"))
	out := h.out.String()
	assert.Contains(t, out, "# INV007 Desk")
	assert.Contains(t, out, "| Stock | 0 |")
	assert.Contains(t, out, "₹1,500.50")
	assert.Contains(t, out, "2026-10-16")

	item, err := h.env.Inventory.Get(context.Background(), "INV007")
	require.NoError(t, err)
	assert.True(t, item.SellingPrice.Equal(decimal.RequireFromString("1500.5")))
}

func TestItemAdd_CamposInvalidos(t *testing.T) {
	h := newHarness(t)
	h.login(t, "admin@example.com", "admin123")

	cases := []struct {
		args  []string
		field string
	}{
		{[]string{"-stock", "2.5"}, "stock"},
		{[]string{"-stock", "-1"}, "stock"},
		{[]string{"-cost", "abc"}, "costPrice"},
		{[]string{"-category", "Gadgets"}, "category"},
	}
	for _, tc := range cases {
		args := append([]string{"item-add", "-name", "X"}, tc.args...)
		assert.Equal(t, subcommands.ExitUsageError, h.run(t, args...), tc.args)
		assert.Contains(t, h.err.String(), "campo inválido "+tc.field, tc.args)
	}

	all, err := h.env.Inventory.List(context.Background(), filter.InventoryQuery{})
	require.NoError(t, err)
	assert.Len(t, all, 6)
}

func TestItemEditYReorder(t *testing.T) {
	h := newHarness(t)
	h.login(t, "manager@example.com", "manager123")

	require.Equal(t, subcommands.ExitSuccess, h.run(t, "reorder"))
	assert.Contains(t, h.out.String(), "Ningún artículo")

	require.Equal(t, subcommands.ExitSuccess, h.run(t, "item-edit", "-stock", "2", "INV005"))
	assert.Contains(t, h.out.String(), "| Stock | 2 |")
	assert.Contains(t, h.out.String(), "| Nivel de reorden | 3 |")

	require.Equal(t, subcommands.ExitSuccess, h.run(t, "reorder"))
	// ceil(1.5*3) - 2 = 3 unidades a 3500.
	assert.Contains(t, h.out.String(), "| INV005 | Office Chair | 2 | 3 | 1 | 3 | ₹10,500.00 |")

	assert.Equal(t, subcommands.ExitFailure, h.run(t, "item-edit", "-stock", "1", "INV999"))
	assert.Contains(t, h.err.String(), "no encontrado")
	assert.Equal(t, subcommands.ExitUsageError, h.run(t, "item-edit", "-stock", "1"))
}

func TestItemRm_SoloAdmin(t *testing.T) {
	h := newHarness(t)
	h.login(t, "manager@example.com", "manager123")
	assert.Equal(t, subcommands.ExitFailure, h.run(t, "item-rm", "INV001"))

	h.login(t, "admin@example.com", "admin123")
	require.Equal(t, subcommands.ExitSuccess, h.run(t, "item-rm", "INV001"))
	assert.Contains(t, h.out.String(), "INV001 eliminado")
	assert.Equal(t, subcommands.ExitFailure, h.run(t, "item-rm", "INV001"))
}

func TestInvoices(t *testing.T) {
	h := newHarness(t)
	h.login(t, "employee@example.com", "employee123")

	require.Equal(t, subcommands.ExitSuccess, h.run(t, "invoices", "-status", "paid"))
	assert.Contains(t, h.out.String(), "# Facturas (2)")
	assert.NotContains(t, h.out.String(), "INV2023003")

	require.Equal(t, subcommands.ExitSuccess, h.run(t, "invoices", "-q", "bob"))
	assert.Contains(t, h.out.String(), "| INV2023003 | Bob Johnson | 2023-04-08 | 2 | ₹16,697.64 | Pending |")

	require.Equal(t, subcommands.ExitSuccess, h.run(t, "invoice", "INV2023001"))
	out := h.out.String()
	assert.Contains(t, out, "# Factura INV2023001")
	assert.Contains(t, out, "| INV004 | Notebook | 2 | ₹120.00 | ₹240.00 |")
	assert.Contains(t, out, "₹64,683.20")
	assert.NotContains(t, out, "WARNING")

	assert.Equal(t, subcommands.ExitFailure, h.run(t, "invoice", "-set-status", "paid", "INV2023003"))
	assert.Contains(t, h.err.String(), "permiso denegado")
}

func TestInvoice_CambioDeEstado(t *testing.T) {
	h := newHarness(t)
	h.login(t, "manager@example.com", "manager123")

	require.Equal(t, subcommands.ExitSuccess, h.run(t, "invoice", "-set-status", "paid", "INV2023003"))
	assert.Contains(t, h.out.String(), "Paid")

	inv, err := h.env.Invoices.Get(context.Background(), "INV2023003")
	require.NoError(t, err)
	assert.Equal(t, entity.InvoicePaid, inv.Status)

	assert.Equal(t, subcommands.ExitUsageError, h.run(t, "invoice", "-set-status", "lost", "INV2023003"))
	assert.Equal(t, subcommands.ExitFailure, h.run(t, "invoice", "INV1999001"))
}

func TestCustomersYDashboard(t *testing.T) {
	h := newHarness(t)
	h.login(t, "employee@example.com", "employee123")

	require.Equal(t, subcommands.ExitSuccess, h.run(t, "customers", "-q", "jane"))
	assert.Contains(t, h.out.String(), "# Clientes (1)")
	assert.Contains(t, h.out.String(), "Jane Smith")

	require.Equal(t, subcommands.ExitSuccess, h.run(t, "dashboard"))
	out := h.out.String()
	assert.Contains(t, out, "# Resumen de October 2026")
	// Pagadas: 64683.2 + 3200.46.
	assert.Contains(t, out, "| Ingresos (pagadas) | ₹67,883.66 |")
	assert.Contains(t, out, "| Por cobrar | ₹16,697.64 |")
	assert.Contains(t, out, "## Facturas recientes")
}

func TestInvoiceMarkdown_AvisaTotalesInconsistentes(t *testing.T) {
	inv := seed.Invoices()[0]
	inv.Total = decimal.NewFromInt(1)
	md := cli.InvoiceMarkdown(&inv, "USD")
	assert.Contains(t, md, "[!WARNING]")
	assert.Contains(t, md, "$1.00")
}

func TestItemsMarkdown_EscapaSeparador(t *testing.T) {
	md := cli.ItemsMarkdown([]entity.InventoryItem{{ID: "INV001", Name: "A|B"}}, "INR")
	assert.Contains(t, md, `A\|B`)
	assert.Equal(t, 1, strings.Count(md, "# Inventario"))
}

package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"github.com/jhoicas/nexus-inventory/internal/application/dto"
	"github.com/jhoicas/nexus-inventory/internal/domain/entity"
	"github.com/jhoicas/nexus-inventory/internal/domain/filter"
	"github.com/jhoicas/nexus-inventory/internal/domain/policy"
)

type invoicesCmd struct {
	env    *Env
	text   string
	status string
}

func (*invoicesCmd) Name() string     { return "invoices" }
func (*invoicesCmd) Synopsis() string { return "listar facturas" }
func (*invoicesCmd) Usage() string {
	return `nexusctl invoices [-q <texto>] [-status all|paid|pending|overdue|cancelled]

  El texto busca en el ID de la factura y en el nombre del cliente.
`
}

func (p *invoicesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.text, "q", "", "Texto a buscar en ID o cliente.")
	f.StringVar(&p.status, "status", filter.All, "Estado de la factura o 'all'.")
}

func (p *invoicesCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !p.env.authorize(policy.ViewInvoices) {
		return subcommands.ExitFailure
	}
	status, err := filter.ParseStatus(p.status)
	if err != nil {
		return p.env.fail(err)
	}
	list, err := p.env.Invoices.List(ctx, filter.InvoiceQuery{Text: p.text, Status: status})
	if err != nil {
		return p.env.fail(err)
	}
	return p.env.print(InvoicesMarkdown(list, p.env.Currency))
}

type invoiceCmd struct {
	env       *Env
	setStatus string
}

func (*invoiceCmd) Name() string     { return "invoice" }
func (*invoiceCmd) Synopsis() string { return "ver una factura y, opcionalmente, cambiar su estado" }
func (*invoiceCmd) Usage() string {
	return `nexusctl invoice [-set-status <estado>] <id>

  Muestra cabecera, líneas y totales. Con -set-status cambia el estado antes
  de mostrarla (requiere rol manager).
`
}

func (p *invoiceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.setStatus, "set-status", "", "Nuevo estado: Paid, Pending, Overdue o Cancelled.")
}

func (p *invoiceCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprint(p.env.Err, p.Usage())
		return subcommands.ExitUsageError
	}
	id := f.Arg(0)

	var (
		inv *entity.Invoice
		err error
	)
	if p.setStatus != "" {
		if !p.env.authorize(policy.EditInvoice) {
			return subcommands.ExitFailure
		}
		inv, err = p.env.Invoices.UpdateStatus(ctx, id, dto.UpdateStatusRequest{Status: p.setStatus})
	} else {
		if !p.env.authorize(policy.ViewInvoices) {
			return subcommands.ExitFailure
		}
		inv, err = p.env.Invoices.Get(ctx, id)
	}
	if err != nil {
		return p.env.fail(err)
	}
	return p.env.print(InvoiceMarkdown(inv, p.env.Currency))
}

type customersCmd struct {
	env  *Env
	text string
}

func (*customersCmd) Name() string     { return "customers" }
func (*customersCmd) Synopsis() string { return "listar o buscar clientes" }
func (*customersCmd) Usage() string {
	return "nexusctl customers [-q <texto>]\n\n  El texto busca en nombre, email y teléfono.\n"
}

func (p *customersCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.text, "q", "", "Texto a buscar.")
}

func (p *customersCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !p.env.authorize(policy.ViewCustomers) {
		return subcommands.ExitFailure
	}
	list, err := p.env.Customers.Search(ctx, p.text)
	if err != nil {
		return p.env.fail(err)
	}
	return p.env.print(CustomersMarkdown(list, p.env.Currency))
}

type dashboardCmd struct{ env *Env }

func (*dashboardCmd) Name() string             { return "dashboard" }
func (*dashboardCmd) Synopsis() string         { return "resumen de ingresos, inventario y facturas" }
func (*dashboardCmd) Usage() string            { return "nexusctl dashboard\n" }
func (*dashboardCmd) SetFlags(_ *flag.FlagSet) {}

func (p *dashboardCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !p.env.authorize(policy.ViewDashboard) {
		return subcommands.ExitFailure
	}
	summary, err := p.env.Dashboard.GetSummary(ctx)
	if err != nil {
		return p.env.fail(err)
	}
	return p.env.print(DashboardMarkdown(summary, p.env.Currency))
}

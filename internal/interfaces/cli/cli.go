// Package cli implementa los subcomandos de nexusctl sobre los mismos casos de uso que la API HTTP.
// La sesión se rehidrata del KV local en cada ejecución y los permisos se resuelven con policy.
package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/rs/zerolog"

	"github.com/jhoicas/nexus-inventory/internal/application/analytics"
	"github.com/jhoicas/nexus-inventory/internal/application/billing"
	"github.com/jhoicas/nexus-inventory/internal/application/inventory"
	"github.com/jhoicas/nexus-inventory/internal/application/session"
	"github.com/jhoicas/nexus-inventory/internal/domain"
	"github.com/jhoicas/nexus-inventory/internal/domain/policy"
)

// Env dependencias compartidas por todos los comandos.
type Env struct {
	Session   *session.Store
	Inventory *inventory.UseCase
	Invoices  *billing.InvoiceUseCase
	Customers *billing.CustomerUseCase
	Dashboard *analytics.DashboardUseCase
	Currency  string

	Out Printer   // salida de los reportes
	Err io.Writer // mensajes de error para el usuario
	In  io.Reader // lectura del password cuando no viene por flag
	Log zerolog.Logger
}

// Printer muestra un documento markdown.
type Printer interface {
	Print(markdown string) error
}

type plainPrinter struct{ w io.Writer }

// PlainPrinter escribe el markdown sin renderizar (salida redirigida, tests).
func PlainPrinter(w io.Writer) Printer { return plainPrinter{w: w} }

func (p plainPrinter) Print(markdown string) error {
	_, err := fmt.Fprintln(p.w, markdown)
	return err
}

type glamourPrinter struct {
	w io.Writer
	r *glamour.TermRenderer
}

// NewGlamourPrinter renderiza el markdown para la terminal.
func NewGlamourPrinter(w io.Writer) (Printer, error) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		return nil, fmt.Errorf("cli: renderer markdown: %w", err)
	}
	return glamourPrinter{w: w, r: r}, nil
}

func (p glamourPrinter) Print(markdown string) error {
	out, err := p.r.Render(markdown)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(p.w, out)
	return err
}

// Groups nombres de grupo para la ayuda de nexusctl.
const (
	GroupSession   = "sesión"
	GroupInventory = "inventario"
	GroupBilling   = "facturación"
)

// Register agrega todos los comandos al commander.
func Register(c *subcommands.Commander, env *Env) {
	c.Register(&loginCmd{env: env}, GroupSession)
	c.Register(&logoutCmd{env: env}, GroupSession)
	c.Register(&whoamiCmd{env: env}, GroupSession)

	c.Register(&itemsCmd{env: env}, GroupInventory)
	c.Register(&itemAddCmd{env: env}, GroupInventory)
	c.Register(&itemEditCmd{env: env}, GroupInventory)
	c.Register(&itemRmCmd{env: env}, GroupInventory)
	c.Register(&reorderCmd{env: env}, GroupInventory)

	c.Register(&invoicesCmd{env: env}, GroupBilling)
	c.Register(&invoiceCmd{env: env}, GroupBilling)
	c.Register(&customersCmd{env: env}, GroupBilling)
	c.Register(&dashboardCmd{env: env}, GroupBilling)
}

// authorize verifica sesión y permiso antes de ejecutar la acción.
func (e *Env) authorize(a policy.Action) bool {
	s := e.Session.Current()
	if !s.IsAuthenticated {
		fmt.Fprintln(e.Err, "no hay sesión activa: ejecute 'nexusctl login'")
		return false
	}
	if !s.Allows(a) {
		fmt.Fprintf(e.Err, "permiso denegado: el rol %s no puede ejecutar %s\n", s.Role(), a)
		return false
	}
	return true
}

// fail reporta el error al usuario y devuelve el código de salida correspondiente.
func (e *Env) fail(err error) subcommands.ExitStatus {
	var fe *domain.FieldError
	switch {
	case errors.As(err, &fe):
		fmt.Fprintf(e.Err, "campo inválido %s: %s\n", fe.Field, fe.Reason)
		return subcommands.ExitUsageError
	case errors.Is(err, domain.ErrNotFound):
		fmt.Fprintln(e.Err, "no encontrado")
	default:
		e.Log.Error().Err(err).Msg("comando fallido")
		fmt.Fprintln(e.Err, err)
	}
	return subcommands.ExitFailure
}

// print muestra el documento; un fallo de escritura es un fallo del comando.
func (e *Env) print(markdown string) subcommands.ExitStatus {
	if err := e.Out.Print(markdown); err != nil {
		return e.fail(err)
	}
	return subcommands.ExitSuccess
}

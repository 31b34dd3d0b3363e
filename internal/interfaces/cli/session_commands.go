package cli

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/google/subcommands"

	"github.com/jhoicas/nexus-inventory/internal/application/session"
)

type loginCmd struct {
	env      *Env
	email    string
	password string
}

func (*loginCmd) Name() string     { return "login" }
func (*loginCmd) Synopsis() string { return "iniciar sesión y guardarla entre ejecuciones" }
func (*loginCmd) Usage() string {
	return `nexusctl login -email <email> [-password <password>]

  Verifica las credenciales contra el directorio de usuarios. Si -password no se
  indica, se lee una línea de la entrada estándar. La sesión se guarda sin la
  credencial y reemplaza a la anterior.
`
}

func (p *loginCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.email, "email", "", "Email del usuario.")
	f.StringVar(&p.password, "password", "", "Password; vacío = leer de la entrada estándar.")
}

func (p *loginCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.email == "" {
		fmt.Fprintln(p.env.Err, "falta -email")
		return subcommands.ExitUsageError
	}
	secret := p.password
	if secret == "" {
		line, err := bufio.NewReader(p.env.In).ReadString('\n')
		if err != nil && line == "" {
			fmt.Fprintln(p.env.Err, "no se pudo leer el password de la entrada estándar")
			return subcommands.ExitUsageError
		}
		secret = strings.TrimRight(line, "\r\n")
	}

	ok, err := p.env.Session.Authenticate(ctx, p.email, secret)
	if err != nil {
		return p.env.fail(err)
	}
	if !ok {
		fmt.Fprintln(p.env.Err, "credenciales inválidas")
		return subcommands.ExitFailure
	}
	return p.env.print(SessionMarkdown(p.env.Session.Current()))
}

type logoutCmd struct{ env *Env }

func (*logoutCmd) Name() string             { return "logout" }
func (*logoutCmd) Synopsis() string         { return "cerrar la sesión guardada" }
func (*logoutCmd) Usage() string            { return "nexusctl logout\n" }
func (*logoutCmd) SetFlags(_ *flag.FlagSet) {}

func (p *logoutCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := p.env.Session.Logout(ctx); err != nil {
		return p.env.fail(err)
	}
	return p.env.print(SessionMarkdown(session.Session{}))
}

type whoamiCmd struct{ env *Env }

func (*whoamiCmd) Name() string             { return "whoami" }
func (*whoamiCmd) Synopsis() string         { return "mostrar la sesión actual y sus permisos" }
func (*whoamiCmd) Usage() string            { return "nexusctl whoami\n" }
func (*whoamiCmd) SetFlags(_ *flag.FlagSet) {}

func (p *whoamiCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return p.env.print(SessionMarkdown(p.env.Session.Current()))
}

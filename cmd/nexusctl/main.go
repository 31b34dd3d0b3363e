package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path"
	"time"

	"github.com/google/subcommands"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/nexus-inventory/internal/application/analytics"
	"github.com/jhoicas/nexus-inventory/internal/application/billing"
	"github.com/jhoicas/nexus-inventory/internal/application/inventory"
	"github.com/jhoicas/nexus-inventory/internal/application/session"
	"github.com/jhoicas/nexus-inventory/internal/application/validation"
	"github.com/jhoicas/nexus-inventory/internal/infrastructure/kv"
	"github.com/jhoicas/nexus-inventory/internal/infrastructure/seed"
	"github.com/jhoicas/nexus-inventory/internal/infrastructure/storage"
	"github.com/jhoicas/nexus-inventory/internal/interfaces/cli"
	"github.com/jhoicas/nexus-inventory/pkg/config"
	"github.com/jhoicas/nexus-inventory/pkg/logger"
)

func main() {
	plain := flag.Bool("plain", false, "Imprimir markdown sin renderizar.")

	env := &cli.Env{Err: os.Stderr, In: os.Stdin}
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cli.Register(commander, env)

	flag.Parse()
	os.Exit(run(commander, env, *plain))
}

func run(commander *subcommands.Commander, env *cli.Env, plain bool) int {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "cargar configuración:", err)
		return int(subcommands.ExitFailure)
	}
	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: "nexusctl",
		Output:  os.Stderr,
	}).Zerolog()
	if cfg.Storage.Driver == config.StorageMemory {
		log.Debug().Msg("STORAGE_DRIVER=memory: los cambios en colecciones no persisten entre ejecuciones")
	}

	store, err := kv.Open(ctx, cfg.Session.DBPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "abrir almacenamiento de sesión:", err)
		return int(subcommands.ExitFailure)
	}
	defer store.Close()

	repos, err := storage.Open(ctx, *cfg, log)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return int(subcommands.ExitFailure)
	}
	defer repos.Close()

	directory, err := seed.Directory(bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return int(subcommands.ExitFailure)
	}

	env.Out = cli.PlainPrinter(os.Stdout)
	if !plain {
		if env.Out, err = cli.NewGlamourPrinter(os.Stdout); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return int(subcommands.ExitFailure)
		}
	}

	validate := validation.New()
	env.Log = log
	env.Currency = cfg.App.Currency
	env.Session = session.NewStore(ctx, store, directory, log)
	env.Inventory = inventory.NewUseCase(repos.Inventory, validate, log)
	env.Invoices = billing.NewInvoiceUseCase(repos.Invoices, repos.Customers, validate, time.Now, log)
	env.Customers = billing.NewCustomerUseCase(repos.Customers)
	env.Dashboard = analytics.NewDashboardUseCase(repos.Inventory, repos.Invoices, repos.Customers, time.Now)

	return int(commander.Execute(ctx))
}

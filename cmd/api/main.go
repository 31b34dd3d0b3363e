// @title        Nexus Inventory API
// @version      1.0
// @description  API de inventario, facturación y analítica con sesión por roles.
// @BasePath     /
// @securityDefinitions.apikey  Bearer
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/nexus-inventory/docs"
	appanalytics "github.com/jhoicas/nexus-inventory/internal/application/analytics"
	"github.com/jhoicas/nexus-inventory/internal/application/auth"
	"github.com/jhoicas/nexus-inventory/internal/application/billing"
	"github.com/jhoicas/nexus-inventory/internal/application/inventory"
	"github.com/jhoicas/nexus-inventory/internal/application/validation"
	infrapdf "github.com/jhoicas/nexus-inventory/internal/infrastructure/pdf"
	"github.com/jhoicas/nexus-inventory/internal/infrastructure/seed"
	"github.com/jhoicas/nexus-inventory/internal/infrastructure/storage"
	"github.com/jhoicas/nexus-inventory/internal/infrastructure/xmlexport"
	httpRouter "github.com/jhoicas/nexus-inventory/internal/interfaces/http"
	"github.com/jhoicas/nexus-inventory/pkg/config"
	"github.com/jhoicas/nexus-inventory/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("storage", cfg.Storage.Driver).
		Msg("iniciando aplicación")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err = run(ctx, cfg, log.Zerolog())
	stop()
	if err != nil {
		log.Error().Err(err).Msg("aplicación finalizada con error")
		os.Exit(1)
	}
	log.Info().Msg("aplicación detenida")
}

// run arma dependencias y sirve HTTP hasta que ctx se cancela. Los defers se ejecutan
// también cuando falla el arranque.
func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	if cfg.JWT.Secret == "" {
		cfg.JWT.Secret = uuid.NewString()
		log.Warn().Msg("JWT_SECRET vacío: se usa un secreto efímero, los tokens no sobreviven a un reinicio")
	}

	repos, err := storage.Open(ctx, *cfg, log)
	if err != nil {
		return fmt.Errorf("abrir almacenamiento: %w", err)
	}
	defer repos.Close()

	directory, err := seed.Directory(bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("directorio de usuarios: %w", err)
	}

	validate := validation.New()
	authUC := auth.NewAuthUseCase(directory, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, validate, log)
	inventoryUC := inventory.NewUseCase(repos.Inventory, validate, log)
	invoiceUC := billing.NewInvoiceUseCase(repos.Invoices, repos.Customers, validate, time.Now, log)
	customerUC := billing.NewCustomerUseCase(repos.Customers)
	exportUC := billing.NewExportUseCase(
		repos.Invoices, repos.Customers,
		infrapdf.NewMarotoPDFGenerator(), xmlexport.NewUBLExporter(),
		billing.Issuer{Name: cfg.App.Name, Currency: cfg.App.Currency},
	)
	dashboardUC := appanalytics.NewDashboardUseCase(repos.Inventory, repos.Invoices, repos.Customers, time.Now)
	salesUC := appanalytics.NewSalesUseCase(repos.Inventory, repos.Invoices, time.Now)

	app := httpRouter.NewApp(cfg.App.Name, log)
	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		InventoryUC: inventoryUC,
		InvoiceUC:   invoiceUC,
		ExportUC:    exportUC,
		CustomerUC:  customerUC,
		DashboardUC: dashboardUC,
		SalesUC:     salesUC,
		AppName:     cfg.App.Name,
		Currency:    cfg.App.Currency,
		Storage:     repos.Driver,
		Docs:        []byte(docs.SwaggerInfo.ReadDoc()),
	})

	listenErr := make(chan error, 1)
	go func() {
		log.Info().Str("addr", cfg.HTTP.Addr()).Msg("servidor HTTP escuchando")
		listenErr <- app.Listen(cfg.HTTP.Addr())
	}()

	select {
	case err := <-listenErr:
		return fmt.Errorf("servidor HTTP: %w", err)
	case <-ctx.Done():
	}

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		return fmt.Errorf("apagado del servidor: %w", err)
	}
	return nil
}

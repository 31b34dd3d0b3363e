package http

import (
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog"

	appanalytics "github.com/jhoicas/nexus-inventory/internal/application/analytics"
	"github.com/jhoicas/nexus-inventory/internal/application/auth"
	"github.com/jhoicas/nexus-inventory/internal/application/billing"
	"github.com/jhoicas/nexus-inventory/internal/application/dto"
	"github.com/jhoicas/nexus-inventory/internal/application/inventory"
	"github.com/jhoicas/nexus-inventory/internal/domain/policy"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	InventoryUC *inventory.UseCase
	InvoiceUC   *billing.InvoiceUseCase
	ExportUC    *billing.ExportUseCase
	CustomerUC  *billing.CustomerUseCase
	DashboardUC *appanalytics.DashboardUseCase
	SalesUC     *appanalytics.SalesUseCase
	AppName     string
	Currency    string
	Storage     string
	Docs        []byte // OpenAPI JSON; vacío = sin /docs
}

// NewApp crea la aplicación Fiber con recover, log de peticiones y el ErrorHandler JSON.
func NewApp(appName string, log zerolog.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               appName,
		ReadTimeout:           time.Second * 10,
		WriteTimeout:          time.Second * 10,
		IdleTimeout:           time.Second * 60,
		ErrorHandler:          ErrorHandler(log),
		DisableStartupMessage: true,
	})
	app.Use(recover.New())
	app.Use(RequestLogger(log))
	return app
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	// Swagger UI: http://localhost:<port>/docs
	if len(deps.Docs) > 0 {
		app.Use(swagger.New(swagger.Config{
			BasePath:    "/",
			FileContent: deps.Docs,
			Path:        "docs",
			Title:       deps.AppName + " API",
		}))
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(dto.HealthResponse{Status: "ok", Storage: deps.Storage})
	})

	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.AuthUC))
	protected.Get("/auth/me", authHandler.Me)
	protected.Post("/auth/logout", authHandler.Logout)
	protected.Get("/roles", authHandler.Roles)

	// Inventory
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	inv := protected.Group("/inventory")
	inv.Get("/reorder", RequireAction(policy.ViewInventory), inventoryHandler.Reorder)
	inv.Get("/categories", RequireAction(policy.ViewInventory), inventoryHandler.Categories)
	inv.Get("/", RequireAction(policy.ViewInventory), inventoryHandler.List)
	inv.Post("/", RequireAction(policy.EditInventory), inventoryHandler.Create)
	inv.Get("/:id", RequireAction(policy.ViewInventory), inventoryHandler.GetByID)
	inv.Put("/:id", RequireAction(policy.EditInventory), inventoryHandler.Update)
	inv.Delete("/:id", RequireAction(policy.DeleteInventory), inventoryHandler.Delete)

	// Invoices
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC, deps.ExportUC)
	invoices := protected.Group("/invoices")
	invoices.Get("/", RequireAction(policy.ViewInvoices), invoiceHandler.List)
	invoices.Post("/", RequireAction(policy.CreateInvoice), invoiceHandler.Create)
	invoices.Get("/:id/pdf", RequireAction(policy.ViewInvoices), invoiceHandler.DownloadPDF)
	invoices.Get("/:id/xml", RequireAction(policy.ViewInvoices), invoiceHandler.DownloadXML)
	invoices.Patch("/:id/status", RequireAction(policy.EditInvoice), invoiceHandler.UpdateStatus)
	invoices.Get("/:id", RequireAction(policy.ViewInvoices), invoiceHandler.GetByID)
	invoices.Put("/:id", RequireAction(policy.EditInvoice), invoiceHandler.Update)
	invoices.Delete("/:id", RequireAction(policy.DeleteInvoice), invoiceHandler.Delete)

	// Customers (solo lectura)
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers := protected.Group("/customers", RequireAction(policy.ViewCustomers))
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)

	// Analytics
	protected.Get("/dashboard/summary", RequireAction(policy.ViewDashboard), NewDashboardHandler(deps.DashboardUC).GetSummary)
	protected.Get("/sales/analytics", RequireAction(policy.ViewSales), NewAnalyticsHandler(deps.SalesUC).GetSalesAnalytics)

	// Settings
	protected.Get("/settings", RequireAction(policy.ViewSettings), NewSettingsHandler(deps.AppName, deps.Currency).Get)
}

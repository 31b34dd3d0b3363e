package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/nexus-inventory/docs"
	"github.com/jhoicas/nexus-inventory/internal/application/analytics"
	"github.com/jhoicas/nexus-inventory/internal/application/auth"
	"github.com/jhoicas/nexus-inventory/internal/application/billing"
	"github.com/jhoicas/nexus-inventory/internal/application/dto"
	"github.com/jhoicas/nexus-inventory/internal/application/inventory"
	"github.com/jhoicas/nexus-inventory/internal/application/validation"
	"github.com/jhoicas/nexus-inventory/internal/domain/entity"
	"github.com/jhoicas/nexus-inventory/internal/infrastructure/memory"
	"github.com/jhoicas/nexus-inventory/internal/infrastructure/pdf"
	"github.com/jhoicas/nexus-inventory/internal/infrastructure/seed"
	"github.com/jhoicas/nexus-inventory/internal/infrastructure/xmlexport"
	apphttp "github.com/jhoicas/nexus-inventory/internal/interfaces/http"
)

var hoy = func() time.Time { return time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC) }

// newAPI arma la API completa sobre repositorios en memoria con los datos de demostración.
func newAPI(t *testing.T) *fiber.App {
	t.Helper()
	log := zerolog.Nop()
	v := validation.New()

	dir, err := seed.Directory(bcrypt.MinCost)
	require.NoError(t, err)

	items := memory.NewInventoryRepository(seed.InventoryItems())
	invoices := memory.NewInvoiceRepository(seed.Invoices())
	customers := memory.NewCustomerRepository(seed.Customers())

	app := apphttp.NewApp("nexus-test", log)
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC: auth.NewAuthUseCase(dir, auth.JWTConfig{
			Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer,
		}, v, log),
		InventoryUC: inventory.NewUseCase(items, v, log, inventory.WithClock(hoy)),
		InvoiceUC:   billing.NewInvoiceUseCase(invoices, customers, v, hoy, log),
		ExportUC: billing.NewExportUseCase(invoices, customers,
			pdf.NewMarotoPDFGenerator(), xmlexport.NewUBLExporter(),
			billing.Issuer{Name: "Nexus", Currency: "INR"}),
		CustomerUC:  billing.NewCustomerUseCase(customers),
		DashboardUC: analytics.NewDashboardUseCase(items, invoices, customers, hoy),
		SalesUC:     analytics.NewSalesUseCase(items, invoices, hoy),
		AppName:     "nexus-test",
		Currency:    "INR",
		Storage:     "memory",
		Docs:        []byte(docs.SwaggerInfo.ReadDoc()),
	})
	return app
}

func call(t *testing.T, app *fiber.App, method, path, token string, body interface{}) *http.Response {
	t.Helper()
	var r io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		r = strings.NewReader(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		r = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, r)
	if r != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func login(t *testing.T, app *fiber.App, email, password string) string {
	t.Helper()
	resp := call(t, app, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Email: email, Password: password})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out dto.LoginResponse
	decode(t, resp, &out)
	require.NotEmpty(t, out.Token)
	return out.Token
}

func errorOf(t *testing.T, resp *http.Response) dto.ErrorResponse {
	t.Helper()
	var e dto.ErrorResponse
	decode(t, resp, &e)
	return e
}

func TestHealth(t *testing.T) {
	app := newAPI(t)
	resp := call(t, app, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(apphttp.HeaderRequestID))
	var out dto.HealthResponse
	decode(t, resp, &out)
	assert.Equal(t, "ok", out.Status)
	assert.Equal(t, "memory", out.Storage)
}

func TestLogin_AdminSinSecretoEnRespuesta(t *testing.T) {
	app := newAPI(t)
	resp := call(t, app, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Email: "admin@example.com", Password: "admin123"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()
	assert.NotContains(t, string(raw), "admin123")

	var out dto.LoginResponse
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, "USR001", out.User.ID)
	assert.Equal(t, entity.RoleAdmin, out.User.Role)
	assert.True(t, out.Capabilities.IsAdmin)
	assert.True(t, out.Capabilities.IsManager)
	assert.True(t, out.Capabilities.IsEmployee)
}

func TestLogin_Rechazos(t *testing.T) {
	app := newAPI(t)

	resp := call(t, app, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Email: "admin@example.com", Password: "manager123"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "UNAUTHORIZED", errorOf(t, resp).Code)

	resp = call(t, app, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Email: "no-es-email", Password: "x"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	e := errorOf(t, resp)
	assert.Equal(t, "INVALID_FIELD", e.Code)
	assert.Equal(t, "email", e.Field)

	resp = call(t, app, http.MethodPost, "/api/auth/login", "", "{no json")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_BODY", errorOf(t, resp).Code)
}

func TestMeYLogout(t *testing.T) {
	app := newAPI(t)
	tok := login(t, app, "manager@example.com", "manager123")

	resp := call(t, app, http.MethodGet, "/api/auth/me", tok, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var me dto.MeResponse
	decode(t, resp, &me)
	assert.True(t, me.IsAuthenticated)
	assert.Equal(t, "manager@example.com", me.User.Email)
	assert.False(t, me.Capabilities.IsAdmin)
	assert.True(t, me.Capabilities.IsManager)

	resp = call(t, app, http.MethodPost, "/api/auth/logout", tok, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = call(t, app, http.MethodGet, "/api/auth/me", tok, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "INVALID_TOKEN", errorOf(t, resp).Code)

	resp = call(t, app, http.MethodGet, "/api/auth/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "MISSING_TOKEN", errorOf(t, resp).Code)
}

func TestRoles(t *testing.T) {
	app := newAPI(t)
	tok := login(t, app, "employee@example.com", "employee123")
	resp := call(t, app, http.MethodGet, "/api/roles", tok, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var roles []map[string]string
	decode(t, resp, &roles)
	require.Len(t, roles, 3)
	assert.Equal(t, "admin", roles[0]["id"])
}

func TestInventory_PermisosPorRol(t *testing.T) {
	app := newAPI(t)
	emp := login(t, app, "employee@example.com", "employee123")

	resp := call(t, app, http.MethodGet, "/api/inventory", emp, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list dto.InventoryListResponse
	decode(t, resp, &list)
	assert.Equal(t, 6, list.Total)

	resp = call(t, app, http.MethodPost, "/api/inventory", emp, map[string]interface{}{"name": "Desk"})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "FORBIDDEN", errorOf(t, resp).Code)

	resp = call(t, app, http.MethodGet, "/api/sales/analytics", emp, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestInventory_CRUD(t *testing.T) {
	app := newAPI(t)
	mgr := login(t, app, "manager@example.com", "manager123")
	admin := login(t, app, "admin@example.com", "admin123")

	resp := call(t, app, http.MethodPost, "/api/inventory", mgr, map[string]interface{}{"name": "Desk"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created entity.InventoryItem
	decode(t, resp, &created)
	assert.Equal(t, "INV007", created.ID)
	assert.Equal(t, "Desk", created.Name)
	assert.Equal(t, 0, created.Stock)
	assert.Equal(t, "2026-10-16", created.LastUpdated)

	resp = call(t, app, http.MethodPut, "/api/inventory/INV007", mgr, map[string]interface{}{"stock": 4, "reorderLevel": 5})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var updated entity.InventoryItem
	decode(t, resp, &updated)
	assert.Equal(t, "Desk", updated.Name)
	assert.Equal(t, 4, updated.Stock)

	resp = call(t, app, http.MethodGet, "/api/inventory?stock=low", mgr, nil)
	var low dto.InventoryListResponse
	decode(t, resp, &low)
	require.Equal(t, 1, low.Total)
	assert.Equal(t, "INV007", low.Items[0].ID)

	resp = call(t, app, http.MethodGet, "/api/inventory/reorder", mgr, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var reorder []dto.ReorderSuggestionDTO
	decode(t, resp, &reorder)
	require.Len(t, reorder, 1)
	assert.Equal(t, "INV007", reorder[0].ItemID)

	resp = call(t, app, http.MethodDelete, "/api/inventory/INV007", mgr, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = call(t, app, http.MethodDelete, "/api/inventory/INV007", admin, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = call(t, app, http.MethodGet, "/api/inventory/INV007", admin, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", errorOf(t, resp).Code)
}

func TestInventory_CamposInvalidos(t *testing.T) {
	app := newAPI(t)
	mgr := login(t, app, "manager@example.com", "manager123")

	cases := []struct {
		name  string
		body  string
		field string
	}{
		{"stock no entero", `{"name":"X","stock":2.5}`, "stock"},
		{"stock negativo", `{"name":"X","stock":-1}`, "stock"},
		{"categoría desconocida", `{"name":"X","category":"Gadgets"}`, "category"},
		{"precio negativo", `{"name":"X","costPrice":-3}`, "costPrice"},
		{"costo no numérico", `{"name":"X","costPrice":"abc"}`, "costPrice"},
		{"precio con coma", `{"name":"X","sellingPrice":"1,5"}`, "sellingPrice"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := call(t, app, http.MethodPost, "/api/inventory", mgr, tc.body)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			e := errorOf(t, resp)
			assert.Equal(t, "INVALID_FIELD", e.Code)
			assert.Equal(t, tc.field, e.Field)
		})
	}

	resp := call(t, app, http.MethodGet, "/api/inventory?stock=bogus", mgr, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "stock", errorOf(t, resp).Field)

	// Nada se creó.
	resp = call(t, app, http.MethodGet, "/api/inventory", mgr, nil)
	var list dto.InventoryListResponse
	decode(t, resp, &list)
	assert.Equal(t, 6, list.Total)
}

func TestInventory_Categorias(t *testing.T) {
	app := newAPI(t)
	tok := login(t, app, "employee@example.com", "employee123")
	resp := call(t, app, http.MethodGet, "/api/inventory/categories", tok, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out dto.CategoriesResponse
	decode(t, resp, &out)
	assert.Equal(t, entity.Categories, out.Categories)
}

func TestInvoices_FiltrosYCicloDeVida(t *testing.T) {
	app := newAPI(t)
	mgr := login(t, app, "manager@example.com", "manager123")
	admin := login(t, app, "admin@example.com", "admin123")

	resp := call(t, app, http.MethodGet, "/api/invoices?status=paid", mgr, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var paid dto.InvoiceListResponse
	decode(t, resp, &paid)
	assert.Equal(t, 2, paid.Total)

	resp = call(t, app, http.MethodGet, "/api/invoices?q=bob", mgr, nil)
	var bob dto.InvoiceListResponse
	decode(t, resp, &bob)
	require.Equal(t, 1, bob.Total)
	assert.Equal(t, "INV2023003", bob.Items[0].ID)

	resp = call(t, app, http.MethodGet, "/api/invoices?status=lost", mgr, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	resp = call(t, app, http.MethodPost, "/api/invoices", mgr, map[string]interface{}{
		"customerId": "CUST002",
		"items":      []map[string]interface{}{{"id": "INV004", "name": "Notebook", "quantity": 3, "price": 120}},
		"subtotal":   360, "tax": 64.8, "discount": 0, "total": 424.8,
		"paymentMethod": "Cash",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var inv entity.Invoice
	decode(t, resp, &inv)
	assert.Equal(t, "INV2026004", inv.ID)
	assert.Equal(t, "Jane Smith", inv.CustomerName)
	assert.Equal(t, "2026-10-16", inv.Date)
	assert.Equal(t, entity.InvoicePending, inv.Status)

	resp = call(t, app, http.MethodPatch, "/api/invoices/INV2026004/status", mgr, map[string]string{"status": "paid"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &inv)
	assert.Equal(t, entity.InvoicePaid, inv.Status)

	resp = call(t, app, http.MethodPatch, "/api/invoices/INV2026004/status", mgr, map[string]string{"status": "lost"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "status", errorOf(t, resp).Field)

	resp = call(t, app, http.MethodDelete, "/api/invoices/INV2026004", mgr, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = call(t, app, http.MethodDelete, "/api/invoices/INV2026004", admin, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = call(t, app, http.MethodPut, "/api/invoices/INV2026004", admin, map[string]string{"paymentMethod": "Cash"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestInvoices_LineaInvalida(t *testing.T) {
	app := newAPI(t)
	mgr := login(t, app, "manager@example.com", "manager123")
	resp := call(t, app, http.MethodPost, "/api/invoices", mgr, map[string]interface{}{
		"customerName": "Walk-in",
		"items":        []map[string]interface{}{{"name": "Notebook", "quantity": 0, "price": 120}},
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	e := errorOf(t, resp)
	assert.Equal(t, "INVALID_FIELD", e.Code)
	assert.Equal(t, "items[0].quantity", e.Field)
}

func TestInvoices_ImportesNoNumericos(t *testing.T) {
	app := newAPI(t)
	mgr := login(t, app, "manager@example.com", "manager123")

	cases := []struct {
		name  string
		body  string
		field string
	}{
		{"precio de línea", `{"customerName":"Walk-in","items":[{"name":"Notebook","quantity":1,"price":"abc"}]}`, "items[0].price"},
		{"cantidad de línea no entera", `{"customerName":"Walk-in","items":[{"name":"Notebook","quantity":1.5,"price":120}]}`, "items[0].quantity"},
		{"total NaN", `{"customerName":"Walk-in","total":"NaN"}`, "total"},
		{"impuesto texto", `{"customerName":"Walk-in","tax":"diez"}`, "tax"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := call(t, app, http.MethodPost, "/api/invoices", mgr, tc.body)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			e := errorOf(t, resp)
			assert.Equal(t, "INVALID_FIELD", e.Code)
			assert.Equal(t, tc.field, e.Field)
		})
	}

	resp := call(t, app, http.MethodPut, "/api/invoices/INV2023003", mgr, `{"subtotal":"x"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "subtotal", errorOf(t, resp).Field)
}

func TestInvoices_Exportaciones(t *testing.T) {
	app := newAPI(t)
	tok := login(t, app, "employee@example.com", "employee123")

	resp := call(t, app, http.MethodGet, "/api/invoices/INV2023001/pdf", tok, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "invoice_INV2023001.pdf")
	b, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.True(t, bytes.HasPrefix(b, []byte("%PDF")))

	resp = call(t, app, http.MethodGet, "/api/invoices/INV2023001/xml", tok, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	b, _ = io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Contains(t, string(b), "<cbc:ID>INV2023001</cbc:ID>")

	resp = call(t, app, http.MethodGet, "/api/invoices/INV1999999/pdf", tok, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestCustomers(t *testing.T) {
	app := newAPI(t)
	tok := login(t, app, "employee@example.com", "employee123")

	resp := call(t, app, http.MethodGet, "/api/customers?q=jane", tok, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out dto.CustomerListResponse
	decode(t, resp, &out)
	require.Equal(t, 1, out.Total)
	assert.Equal(t, "CUST002", out.Items[0].ID)

	resp = call(t, app, http.MethodGet, "/api/customers/CUST404", tok, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestDashboardYVentas(t *testing.T) {
	app := newAPI(t)
	emp := login(t, app, "employee@example.com", "employee123")
	mgr := login(t, app, "manager@example.com", "manager123")

	resp := call(t, app, http.MethodGet, "/api/dashboard/summary", emp, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var sum dto.DashboardSummaryDTO
	decode(t, resp, &sum)
	assert.Equal(t, 3, sum.InvoiceCount)
	assert.Equal(t, "67883.66", sum.Revenue.String())

	resp = call(t, app, http.MethodGet, "/api/sales/analytics?year=2023", mgr, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var sales dto.SalesAnalyticsDTO
	decode(t, resp, &sales)
	assert.Equal(t, 2023, sales.Year)
	assert.Len(t, sales.MonthlyRevenue, 12)

	resp = call(t, app, http.MethodGet, "/api/sales/analytics?year=abc", mgr, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestSettings_SeccionAdminSoloParaAdmin(t *testing.T) {
	app := newAPI(t)

	resp := call(t, app, http.MethodGet, "/api/settings", login(t, app, "admin@example.com", "admin123"), nil)
	var admin dto.SettingsResponse
	decode(t, resp, &admin)
	assert.Contains(t, admin.Sections, "admin")
	assert.Equal(t, "INR", admin.Currency)

	resp = call(t, app, http.MethodGet, "/api/settings", login(t, app, "employee@example.com", "employee123"), nil)
	var emp dto.SettingsResponse
	decode(t, resp, &emp)
	assert.NotContains(t, emp.Sections, "admin")
	assert.Equal(t, []string{"general", "notifications", "security"}, emp.Sections)
}

func TestRutaDesconocida(t *testing.T) {
	app := newAPI(t)
	resp := call(t, app, http.MethodGet, "/nope", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", errorOf(t, resp).Code)
}

func TestDocs(t *testing.T) {
	app := newAPI(t)
	resp := call(t, app, http.MethodGet, "/swagger.json", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var spec map[string]interface{}
	decode(t, resp, &spec)
	paths, ok := spec["paths"].(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, paths, "/api/invoices/{id}/pdf")
}

package policy

import "github.com/jhoicas/nexus-inventory/internal/domain/entity"

// Action operación protegida del dashboard.
type Action string

// Acciones conocidas.
const (
	ViewDashboard     Action = "dashboard:view"
	ViewInventory     Action = "inventory:view"
	EditInventory     Action = "inventory:edit"
	DeleteInventory   Action = "inventory:delete"
	ViewInvoices      Action = "invoices:view"
	CreateInvoice     Action = "invoices:create"
	EditInvoice       Action = "invoices:edit"
	DeleteInvoice     Action = "invoices:delete"
	ViewCustomers     Action = "customers:view"
	ViewSales         Action = "sales:view"
	ViewSettings      Action = "settings:view"
	ViewAdminSettings Action = "settings:admin"
)

// minimumRole rol mínimo por acción.
var minimumRole = map[Action]entity.Role{
	ViewDashboard:     entity.RoleEmployee,
	ViewInventory:     entity.RoleEmployee,
	ViewInvoices:      entity.RoleEmployee,
	ViewCustomers:     entity.RoleEmployee,
	ViewSettings:      entity.RoleEmployee,
	EditInventory:     entity.RoleManager,
	CreateInvoice:     entity.RoleManager,
	EditInvoice:       entity.RoleManager,
	ViewSales:         entity.RoleManager,
	DeleteInventory:   entity.RoleAdmin,
	DeleteInvoice:     entity.RoleAdmin,
	ViewAdminSettings: entity.RoleAdmin,
}

// Allows indica si el rol puede ejecutar la acción. Acciones desconocidas se niegan.
func Allows(role entity.Role, a Action) bool {
	min, ok := minimumRole[a]
	if !ok {
		return false
	}
	return AtLeast(role, min)
}

// Settings sections.
const (
	SectionGeneral       = "general"
	SectionNotifications = "notifications"
	SectionSecurity      = "security"
	SectionAdmin         = "admin"
)

// SettingsSections secciones de configuración visibles para el rol.
func SettingsSections(role entity.Role) []string {
	if !Allows(role, ViewSettings) {
		return []string{}
	}
	sections := []string{SectionGeneral, SectionNotifications, SectionSecurity}
	if Allows(role, ViewAdminSettings) {
		sections = append(sections, SectionAdmin)
	}
	return sections
}

// RoleInfo descripción de un rol para el catálogo.
type RoleInfo struct {
	ID          entity.Role `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
}

// Roles catálogo de roles.
func Roles() []RoleInfo {
	return []RoleInfo{
		{ID: entity.RoleAdmin, Name: "Admin", Description: "Full access to all features"},
		{ID: entity.RoleManager, Name: "Manager", Description: "Access to most features except settings and user management"},
		{ID: entity.RoleEmployee, Name: "Employee", Description: "Limited access to billing and inventory"},
	}
}

// Package policy traduce un rol en capacidades. Funciones puras, sin efectos ni errores.
package policy

import "github.com/jhoicas/nexus-inventory/internal/domain/entity"

// Capabilities banderas derivadas del rol por contención: admin ⇒ manager ⇒ employee.
type Capabilities struct {
	IsAdmin    bool `json:"isAdmin"`
	IsManager  bool `json:"isManager"`
	IsEmployee bool `json:"isEmployee"`
}

// For devuelve las capacidades del rol. Un rol desconocido no tiene ninguna.
func For(role entity.Role) Capabilities {
	isAdmin := role == entity.RoleAdmin
	isManager := role == entity.RoleManager || isAdmin
	isEmployee := role == entity.RoleEmployee || isManager
	return Capabilities{IsAdmin: isAdmin, IsManager: isManager, IsEmployee: isEmployee}
}

// level nivel numérico del rol: 0 sin rol, 3 admin.
func level(role entity.Role) int {
	c := For(role)
	switch {
	case c.IsAdmin:
		return 3
	case c.IsManager:
		return 2
	case c.IsEmployee:
		return 1
	}
	return 0
}

// AtLeast indica si role contiene a min.
func AtLeast(role, min entity.Role) bool {
	return level(min) > 0 && level(role) >= level(min)
}

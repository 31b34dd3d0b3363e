package entity

// Role rol de un usuario del dashboard. admin ⊇ manager ⊇ employee.
type Role string

// Roles válidos.
const (
	RoleAdmin    Role = "admin"
	RoleManager  Role = "manager"
	RoleEmployee Role = "employee"
)

// Valid indica si el rol pertenece al conjunto conocido.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleEmployee:
		return true
	}
	return false
}

// Identity usuario autenticado. Nunca contiene la credencial; es lo único que se persiste de la sesión.
type Identity struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// DirectoryEntry entrada del directorio de identidades: la identidad más el hash bcrypt del secreto.
type DirectoryEntry struct {
	Identity
	SecretHash []byte
}

package seed

import (
	"fmt"

	"github.com/jhoicas/nexus-inventory/internal/application/auth"
	"github.com/jhoicas/nexus-inventory/internal/domain/entity"
)

// Directory construye el directorio de credenciales con los usuarios de demostración.
// Los secretos se hashean con bcrypt al construirlo; cost <= 0 usa el costo por defecto.
func Directory(cost int) (*auth.Directory, error) {
	users := Users()
	entries := make([]entity.DirectoryEntry, 0, len(users))
	for _, u := range users {
		e, err := auth.HashEntry(u.Identity, u.Secret, cost)
		if err != nil {
			return nil, fmt.Errorf("seed: directorio %s: %w", u.Identity.Email, err)
		}
		entries = append(entries, e)
	}
	return auth.NewDirectory(entries...), nil
}

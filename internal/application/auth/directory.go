package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/nexus-inventory/internal/domain/entity"
)

// Directory directorio estático de identidades. Solo guarda hashes bcrypt, nunca el secreto en claro.
type Directory struct {
	entries []entity.DirectoryEntry
	// dummy se compara cuando ningún email coincide, así un email desconocido tarda lo mismo.
	dummy []byte
}

// compareHash reemplazable en tests.
var compareHash = bcrypt.CompareHashAndPassword

// NewDirectory construye el directorio con entradas ya hasheadas.
func NewDirectory(entries ...entity.DirectoryEntry) *Directory {
	cost := bcrypt.MinCost
	if len(entries) > 0 {
		if c, err := bcrypt.Cost(entries[0].SecretHash); err == nil {
			cost = c
		}
	}
	dummy, err := bcrypt.GenerateFromPassword([]byte("nexus-inventory"), cost)
	if err != nil {
		dummy = nil
	}
	return &Directory{entries: append([]entity.DirectoryEntry(nil), entries...), dummy: dummy}
}

// HashEntry hashea el secreto con bcrypt y arma la entrada. cost <= 0 usa bcrypt.DefaultCost.
func HashEntry(identity entity.Identity, secret string, cost int) (entity.DirectoryEntry, error) {
	if !identity.Role.Valid() {
		return entity.DirectoryEntry{}, fmt.Errorf("directorio: rol inválido %q para %s", identity.Role, identity.Email)
	}
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), cost)
	if err != nil {
		return entity.DirectoryEntry{}, fmt.Errorf("directorio: hash de %s: %w", identity.Email, err)
	}
	return entity.DirectoryEntry{Identity: identity, SecretHash: hash}, nil
}

// Verify busca una entrada con exactamente ese email cuyo hash coincida con secret.
// Devuelve una copia de la identidad, sin credencial.
func (d *Directory) Verify(email, secret string) (*entity.Identity, bool) {
	matched := false
	for _, e := range d.entries {
		if e.Email != email {
			continue
		}
		matched = true
		if compareHash(e.SecretHash, []byte(secret)) == nil {
			id := e.Identity
			return &id, true
		}
	}
	if !matched && d.dummy != nil {
		_ = compareHash(d.dummy, []byte(secret))
	}
	return nil, false
}

// Len número de entradas.
func (d *Directory) Len() int { return len(d.entries) }

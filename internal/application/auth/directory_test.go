package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/nexus-inventory/internal/domain/entity"
)

func TestVerify_EmailDesconocidoTambienComparaHash(t *testing.T) {
	e, err := HashEntry(entity.Identity{ID: "USR001", Email: "admin@example.com", Role: entity.RoleAdmin}, "admin123", bcrypt.MinCost)
	require.NoError(t, err)
	d := NewDirectory(e)
	require.NotEmpty(t, d.dummy)
	cost, err := bcrypt.Cost(d.dummy)
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost, "el hash de relleno usa el costo de las entradas")

	var calls int
	orig := compareHash
	compareHash = func(hash, secret []byte) error {
		calls++
		return orig(hash, secret)
	}
	t.Cleanup(func() { compareHash = orig })

	_, ok := d.Verify("nadie@example.com", "admin123")
	assert.False(t, ok)
	assert.Equal(t, 1, calls, "un email desconocido ejecuta bcrypt igual que uno conocido")

	calls = 0
	_, ok = d.Verify("admin@example.com", "mal")
	assert.False(t, ok)
	assert.Equal(t, 1, calls)

	calls = 0
	id, ok := d.Verify("admin@example.com", "admin123")
	require.True(t, ok)
	assert.Equal(t, "USR001", id.ID)
	assert.Equal(t, 1, calls)
}

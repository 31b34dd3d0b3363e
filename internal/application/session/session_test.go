package session_test

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/nexus-inventory/internal/application/session"
	"github.com/jhoicas/nexus-inventory/internal/domain/entity"
	"github.com/jhoicas/nexus-inventory/internal/domain/policy"
	"github.com/jhoicas/nexus-inventory/internal/infrastructure/memory"
)

// fakeDirectory directorio en claro, solo para tests del store.
type fakeDirectory map[string]struct {
	secret string
	id     entity.Identity
}

func (f fakeDirectory) Verify(email, secret string) (*entity.Identity, bool) {
	e, ok := f[email]
	if !ok || e.secret != secret {
		return nil, false
	}
	id := e.id
	return &id, true
}

func demoDirectory() fakeDirectory {
	return fakeDirectory{
		"admin@example.com":    {"admin123", entity.Identity{ID: "USR001", Name: "Admin User", Email: "admin@example.com", Role: entity.RoleAdmin}},
		"manager@example.com":  {"manager123", entity.Identity{ID: "USR002", Name: "Manager User", Email: "manager@example.com", Role: entity.RoleManager}},
		"employee@example.com": {"employee123", entity.Identity{ID: "USR003", Name: "Employee User", Email: "employee@example.com", Role: entity.RoleEmployee}},
	}
}

func TestAuthenticate_EscenarioAdmin(t *testing.T) {
	ctx := context.Background()
	kv := memory.NewKVStore()
	s := session.NewStore(ctx, kv, demoDirectory(), zerolog.Nop())

	ok, err := s.Authenticate(ctx, "admin@example.com", "admin123")
	require.NoError(t, err)
	require.True(t, ok)

	cur := s.Current()
	assert.True(t, cur.IsAuthenticated)
	assert.True(t, cur.IsAdmin)
	assert.True(t, cur.IsManager)
	assert.True(t, cur.IsEmployee)
	assert.Equal(t, "USR001", cur.User.ID)

	blob, found, err := kv.Get(ctx, session.StorageKey)
	require.NoError(t, err)
	require.True(t, found)
	assert.NotContains(t, string(blob), "admin123")
	assert.JSONEq(t, `{"id":"USR001","name":"Admin User","email":"admin@example.com","role":"admin"}`, string(blob))
}

func TestAuthenticate_FalloNoCambiaSesion(t *testing.T) {
	ctx := context.Background()
	kv := memory.NewKVStore()
	s := session.NewStore(ctx, kv, demoDirectory(), zerolog.Nop())

	ok, err := s.Authenticate(ctx, "employee@example.com", "employee123")
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = s.Authenticate(ctx, "admin@example.com", "mal")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, "USR003", s.Current().User.ID)
	assert.False(t, s.Current().IsManager)
}

func TestAuthenticate_ReautenticacionReemplaza(t *testing.T) {
	ctx := context.Background()
	s := session.NewStore(ctx, memory.NewKVStore(), demoDirectory(), zerolog.Nop())

	_, _ = s.Authenticate(ctx, "employee@example.com", "employee123")
	ok, err := s.Authenticate(ctx, "manager@example.com", "manager123")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, entity.RoleManager, s.Current().Role())
}

func TestLogout_Idempotente(t *testing.T) {
	ctx := context.Background()
	kv := memory.NewKVStore()
	s := session.NewStore(ctx, kv, demoDirectory(), zerolog.Nop())
	_, _ = s.Authenticate(ctx, "manager@example.com", "manager123")

	require.NoError(t, s.Logout(ctx))
	first := s.Current()
	require.NoError(t, s.Logout(ctx))
	assert.Equal(t, first, s.Current())

	assert.False(t, first.IsAuthenticated)
	assert.False(t, first.IsAdmin)
	assert.False(t, first.IsManager)
	assert.False(t, first.IsEmployee)
	assert.Nil(t, first.User)

	_, found, err := kv.Get(ctx, session.StorageKey)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestNewStore_RehidrataSesion(t *testing.T) {
	ctx := context.Background()
	kv := memory.NewKVStore()
	first := session.NewStore(ctx, kv, demoDirectory(), zerolog.Nop())
	_, _ = first.Authenticate(ctx, "manager@example.com", "manager123")

	second := session.NewStore(ctx, kv, demoDirectory(), zerolog.Nop())
	cur := second.Current()
	assert.True(t, cur.IsAuthenticated)
	assert.Equal(t, "USR002", cur.User.ID)
	assert.True(t, cur.IsManager)
	assert.False(t, cur.IsAdmin)
}

func TestNewStore_DescartaBlobInvalido(t *testing.T) {
	blobs := map[string]string{
		"json roto":    `{"id":`,
		"rol":          `{"id":"USR009","email":"x@y.com","role":"superuser"}`,
		"sin id":       `{"email":"x@y.com","role":"admin"}`,
		"sin email":    `{"id":"USR001","role":"admin"}`,
		"no es objeto": `"admin"`,
	}
	for name, blob := range blobs {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			kv := memory.NewKVStore()
			require.NoError(t, kv.Set(ctx, session.StorageKey, []byte(blob)))

			s := session.NewStore(ctx, kv, demoDirectory(), zerolog.Nop())
			assert.False(t, s.Current().IsAuthenticated)

			_, found, err := kv.Get(ctx, session.StorageKey)
			require.NoError(t, err)
			assert.False(t, found, "el blob inválido se elimina")
		})
	}
}

func TestSession_Allows(t *testing.T) {
	var none session.Session
	assert.False(t, none.Allows(policy.ViewDashboard))
	assert.Equal(t, entity.Role(""), none.Role())
}

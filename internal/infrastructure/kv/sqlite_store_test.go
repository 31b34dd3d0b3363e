package kv_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/nexus-inventory/internal/application/session"
	"github.com/jhoicas/nexus-inventory/internal/domain/entity"
	"github.com/jhoicas/nexus-inventory/internal/infrastructure/kv"
)

func TestSQLiteStore_SetGetRemove(t *testing.T) {
	ctx := context.Background()
	s, err := kv.Open(ctx, filepath.Join(t.TempDir(), "kv.db"))
	require.NoError(t, err)
	defer s.Close()

	_, found, err := s.Get(ctx, "user")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, s.Set(ctx, "user", []byte(`{"a":1}`)))
	require.NoError(t, s.Set(ctx, "user", []byte(`{"a":2}`)))
	v, found, err := s.Get(ctx, "user")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `{"a":2}`, string(v))

	require.NoError(t, s.Remove(ctx, "user"))
	require.NoError(t, s.Remove(ctx, "user"))
	_, found, err = s.Get(ctx, "user")
	require.NoError(t, err)
	assert.False(t, found)
}

type oneUser struct{}

func (oneUser) Verify(email, secret string) (*entity.Identity, bool) {
	if email == "employee@example.com" && secret == "employee123" {
		return &entity.Identity{ID: "USR003", Name: "Employee User", Email: email, Role: entity.RoleEmployee}, true
	}
	return nil, false
}

func TestSQLiteStore_SesionSobreviveReapertura(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "session.db")

	s1, err := kv.Open(ctx, path)
	require.NoError(t, err)
	store := session.NewStore(ctx, s1, oneUser{}, zerolog.Nop())
	ok, err := store.Authenticate(ctx, "employee@example.com", "employee123")
	require.NoError(t, err)
	require.True(t, ok)
	require.NoError(t, s1.Close())

	s2, err := kv.Open(ctx, path)
	require.NoError(t, err)
	defer s2.Close()
	again := session.NewStore(ctx, s2, oneUser{}, zerolog.Nop())
	cur := again.Current()
	assert.True(t, cur.IsAuthenticated)
	assert.Equal(t, "USR003", cur.User.ID)
	assert.True(t, cur.IsEmployee)
	assert.False(t, cur.IsManager)
}

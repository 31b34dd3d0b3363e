package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper_Defaults(t *testing.T) {
	cfg, err := fromViper(viper.New())
	require.NoError(t, err)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "INR", cfg.App.Currency)
	assert.Equal(t, StorageMemory, cfg.Storage.Driver)
	assert.True(t, cfg.Storage.SeedDemo)
	assert.Equal(t, 60, cfg.JWT.Expiration)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
}

func TestFromViper_Overrides(t *testing.T) {
	v := viper.New()
	v.Set("STORAGE_DRIVER", "Postgres")
	v.Set("SEED_DEMO_DATA", "false")
	v.Set("HTTP_PORT", "9090")
	v.Set("CURRENCY", "usd")
	cfg, err := fromViper(v)
	require.NoError(t, err)
	assert.Equal(t, StoragePostgres, cfg.Storage.Driver)
	assert.False(t, cfg.Storage.SeedDemo)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, "USD", cfg.App.Currency)
}

func TestFromViper_DriverDesconocido(t *testing.T) {
	v := viper.New()
	v.Set("STORAGE_DRIVER", "mongo")
	_, err := fromViper(v)
	assert.Error(t, err)
}

func TestFromViper_MonedaDesconocida(t *testing.T) {
	v := viper.New()
	v.Set("CURRENCY", "zzz")
	_, err := fromViper(v)
	assert.ErrorContains(t, err, "CURRENCY")
}

func TestDBConfig_ConnectionString(t *testing.T) {
	c := DBConfig{Host: "db", Port: 5432, User: "u", Password: "p@ss", DBName: "nexus", SSLMode: "disable"}
	assert.Equal(t, "postgres://u:p%40ss@db:5432/nexus?sslmode=disable", c.ConnectionString())
	c.DatabaseURL = "postgres://x"
	assert.Equal(t, "postgres://x", c.ConnectionString())
}

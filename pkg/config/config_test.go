package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-manager/pkg/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "stock-manager", cfg.App.Name)
	assert.Equal(t, 8000, cfg.HTTP.Port)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.HTTP.AllowedOrigins)
	assert.Equal(t, config.StoreMemory, cfg.Store.Driver)
	assert.False(t, cfg.Store.SeedDemo)
	assert.True(t, cfg.DB.AutoMigrate)
	assert.Equal(t, 480, cfg.JWT.Expiration)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("CORS_ORIGINS", "http://a.test, http://b.test")
	t.Setenv("STORE_DRIVER", "Postgres")
	t.Setenv("STORE_SEED_DEMO", "true")
	t.Setenv("JWT_SECRET", "s3cret")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, "0.0.0.0:9090", cfg.HTTP.Addr())
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.HTTP.AllowedOrigins)
	assert.Equal(t, config.StorePostgres, cfg.Store.Driver)
	assert.True(t, cfg.Store.SeedDemo)
	assert.True(t, cfg.JWT.Enabled())
}

func TestLoad_RejectsUnknownDriver(t *testing.T) {
	t.Setenv("STORE_DRIVER", "sqlite")

	_, err := config.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "STORE_DRIVER")
}

func TestLoad_RejectsInvalidPort(t *testing.T) {
	t.Setenv("HTTP_PORT", "abc")

	_, err := config.Load()
	require.Error(t, err)
}

func TestDBConfig_ConnectionString(t *testing.T) {
	db := config.DBConfig{Host: "db", Port: 5432, User: "app", Password: "p@ss:w", DBName: "stock", SSLMode: "disable"}
	assert.Equal(t, "postgres://app:p%40ss%3Aw@db:5432/stock?sslmode=disable", db.ConnectionString())

	db.DatabaseURL = "postgres://x"
	assert.Equal(t, "postgres://x", db.ConnectionString())
}

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Port)
	assert.Equal(t, "development", cfg.AppEnv)
	assert.Equal(t, 5000.0, cfg.DefaultFuelPrice)
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("DISPATCH_SERVICE_PORT", "9090")
	t.Setenv("DISPATCH_APP_ENV", "production")
	t.Setenv("DISPATCH_DEFAULT_FUEL_PRICE", "5500")
	t.Setenv("DISPATCH_ALLOWED_ORIGINS", "https://a.example.com,https://b.example.com")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Port)
	assert.Equal(t, "production", cfg.AppEnv)
	assert.Equal(t, 5500.0, cfg.DefaultFuelPrice)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.AllowedOrigins)
}

func TestLoad_RejectsNegativeFuelPrice(t *testing.T) {
	t.Setenv("DISPATCH_DEFAULT_FUEL_PRICE", "-1")

	_, err := Load()
	assert.Error(t, err)
}

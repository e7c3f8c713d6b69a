package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// ServiceConfig holds all configuration for the dispatch service.
type ServiceConfig struct {
	Port             string
	AppEnv           string
	DefaultFuelPrice float64
	AllowedOrigins   []string
}

// Load reads configuration from DISPATCH_-prefixed environment variables,
// falling back to development defaults.
func Load() (*ServiceConfig, error) {
	v := viper.New()
	v.SetEnvPrefix("DISPATCH")
	v.AutomaticEnv()

	v.SetDefault("SERVICE_PORT", ":8080")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("DEFAULT_FUEL_PRICE", 5000.0)
	v.SetDefault("ALLOWED_ORIGINS", "*")

	cfg := &ServiceConfig{
		Port:             servicePort(v.GetString("SERVICE_PORT")),
		AppEnv:           v.GetString("APP_ENV"),
		DefaultFuelPrice: v.GetFloat64("DEFAULT_FUEL_PRICE"),
		AllowedOrigins:   strings.Split(v.GetString("ALLOWED_ORIGINS"), ","),
	}

	if cfg.DefaultFuelPrice < 0 {
		return nil, fmt.Errorf("DISPATCH_DEFAULT_FUEL_PRICE must be >= 0, got %f", cfg.DefaultFuelPrice)
	}
	return cfg, nil
}

// servicePort normalizes a port value to the ":8080" form http.Server expects.
func servicePort(port string) string {
	if port == "" || strings.HasPrefix(port, ":") {
		return port
	}
	return ":" + port
}

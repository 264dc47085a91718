package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config is the full service configuration, parsed from the environment.
// Nothing else in the codebase reads environment variables; the config is
// passed down explicitly.
type Config struct {
	// DatabaseURL empty means demo mode: an in-memory store seeded with
	// sample data.
	DatabaseURL    string `env:"DATABASE_URL"`
	ServerPort     string `env:"SERVER_PORT" envDefault:"8080"`
	AdminPIN       string `env:"ADMIN_PIN" envDefault:"1313"`
	JWTSecret      string `env:"JWT_SECRET" envDefault:"dev-secret-change-me"`
	AllowedOrigins string `env:"ALLOWED_ORIGINS"`
	NominatimURL   string `env:"NOMINATIM_URL" envDefault:"https://nominatim.openstreetmap.org"`
}

func Load() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse environment: %w", err)
	}
	return cfg, nil
}

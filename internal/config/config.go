package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/rousage/coffeeshop/internal/environment"
)

type Config struct {
	App      App
	Server   Server
	Database Database `envPrefix:"DB_"`
	Cache    Cache    `envPrefix:"VALKEY_"`
	Auth     Auth     `envPrefix:"AUTH0_"`
	Otel     Otel     `envPrefix:"OTEL_"`
}

// Load reads the configuration from the environment, optionally seeded from a
// .env file in the working directory.
func Load() (*Config, error) {
	// A missing .env file is fine, the variables may come from the process
	_ = godotenv.Load()

	return Parse()
}

// Parse reads the configuration from the process environment only.
// Auth0 settings default to the tenant of the compiled client environment.
func Parse() (*Config, error) {
	idp := environment.Current().IdentityProvider()

	cfg := &Config{
		Auth: Auth{
			Auth0Domain:   idp.Domain(),
			Auth0Audience: idp.Audience(),
		},
	}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	return cfg, nil
}

// ParseAuth reads only the AUTH0_ settings, for tools that never touch the
// database or the cache.
func ParseAuth() (Auth, error) {
	idp := environment.Current().IdentityProvider()

	cfg := Auth{
		Auth0Domain:   idp.Domain(),
		Auth0Audience: idp.Audience(),
	}
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: "AUTH0_"}); err != nil {
		return Auth{}, fmt.Errorf("failed to parse auth configuration: %w", err)
	}

	return cfg, nil
}

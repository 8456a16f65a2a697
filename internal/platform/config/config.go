// Copyright (c) 2026 Daylist. All rights reserved.
// Author: park.suhyeon.dev@gmail.com

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values. A local .env file is
loaded first (when present) so development machines do not need to export two
dozen variables by hand.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Architecture:

  - Immutability: Once loaded, configuration is read-only.
  - DI-Friendly: Passed to core components (DB, Redis, adapters) via constructors.
  - Zero Hidden State: No global variables are used to store config.

This ensures the application is Twelve-Factor compliant by storing config in the env.
*/
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// # Configuration Schema

// Provider holds the OAuth2 endpoints and credentials for one external
// identity provider. The same shape serves Google, Kakao, and Naver; only
// the values differ.
type Provider struct {
	LoginURL        string `env:"LOGIN_URL,required"`
	ClientID        string `env:"CLIENT_ID,required"`
	ClientSecret    string `env:"CLIENT_SECRET,required"`
	RedirectURI     string `env:"REDIRECT_URI,required"`
	TokenRequestURI string `env:"TOKEN_REQUEST_URI,required"`
	UserInfoURI     string `env:"USER_INFO_REQUEST_URI,required"`
}

// Config holds all runtime configuration for the Daylist API server.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8080"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// Relational Database (PostgreSQL)
	DatabaseURL string `env:"DATABASE_URL,required"`

	// MigrationPath is the filesystem path to the SQL migrations directory.
	MigrationPath string `env:"MIGRATION_PATH" envDefault:"./migrations"`

	// Key-Value Cache (Redis). Optional: when empty, the OAuth state store
	// falls back to an in-process cache (single-instance deployments only).
	RedisURL string `env:"REDIS_URL"`

	// Session token signing
	JWTSecret string        `env:"JWT_SECRET,required"`
	JWTTTL    time.Duration `env:"JWT_TTL" envDefault:"24h"`

	// PostMessageOrigin is the browser origin the popup callback page posts
	// login outcomes to.
	PostMessageOrigin string `env:"POST_MESSAGE_ORIGIN" envDefault:"http://localhost:5173"`

	// External identity providers
	Google Provider `envPrefix:"GOOGLE_"`
	Kakao  Provider `envPrefix:"KAKAO_"`
	Naver  Provider `envPrefix:"NAVER_"`
}

// # Configuration Loading

// Load parses environment variables into a [Config] struct.
//
// A .env file in the working directory is merged in first when present;
// real environment variables always win over file values.
func Load() (*Config, error) {

	// Best effort: absence of a .env file is the normal production case.
	_ = godotenv.Load()

	// Initialize an empty config struct
	cfg := &Config{}

	// Use the 'env' package to map environment variables to struct fields.
	// This will fail if any field marked with 'required' is missing.
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	return cfg, nil
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction reports whether the server is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// AllowedOrigin returns the browser origin trusted for CORS and postMessage.
func (c *Config) AllowedOrigin() string {
	return c.PostMessageOrigin
}

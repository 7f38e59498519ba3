// Package config handles configuration for the server component: defaults,
// an optional JSON file, environment variables and command-line flags.
package config

import (
	"errors"
	"time"
)

// Config holds runtime settings for the server.
//
// Fields:
//   - EndpointAddrHTTP: bind address for the HTTP API.
//   - DatabaseDSN: SQLite file path, or a postgres:// URL for PostgreSQL (pgx).
//   - SecretKey: HMAC secret for signing JWTs (HS256). Has no default.
//   - AccessTokenValidityDuration: lifetime of issued access tokens.
//   - PasswordHashCost: bcrypt cost factor.
//   - LogLevel: debug, info, warn or error.
//   - CORSAllowedOrigins: origins allowed by the CORS middleware.
type Config struct {
	EndpointAddrHTTP            string        `env:"HTTP_ADDR"`
	DatabaseDSN                 string        `env:"DATABASE_DSN"`
	SecretKey                   string        `env:"SECRET_KEY"`
	AccessTokenValidityDuration time.Duration `env:"ACCESS_TOKEN_TTL"`
	PasswordHashCost            int           `env:"PASSWORD_HASH_COST"`
	LogLevel                    string        `env:"LOG_LEVEL"`
	CORSAllowedOrigins          []string      `env:"CORS_ALLOWED_ORIGINS" env-separator:","`
}

var (
	ErrMissingSecretKey = errors.New("secret key is not configured")
	ErrInvalidTokenTTL  = errors.New("access token validity must be positive")
)

// LoadDefaults populates Config with development defaults. The secret key is
// deliberately left empty.
func (c *Config) LoadDefaults() {
	c.EndpointAddrHTTP = ":8080"
	c.DatabaseDSN = "social.db"
	c.AccessTokenValidityDuration = 30 * time.Minute
	c.PasswordHashCost = 10
	c.LogLevel = "info"
	c.CORSAllowedOrigins = []string{"*"}
}

// Validate reports settings the server cannot start with.
func (c *Config) Validate() error {
	if c.SecretKey == "" {
		return ErrMissingSecretKey
	}
	if c.AccessTokenValidityDuration <= 0 {
		return ErrInvalidTokenTTL
	}
	return nil
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file, the environment and finally command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}

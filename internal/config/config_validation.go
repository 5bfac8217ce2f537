package config

import (
	"strings"
	"time"
)

// Defaults applied after all sources are merged. The listen address and rate
// limit mirror the original deployment (port 3000, 1000 requests/minute).
const (
	DefaultHTTPAddress   = ":3000"
	DefaultTokenDuration = 24 * time.Hour
	DefaultTokenIssuer   = "estoque-server"
	DefaultRateLimit     = 1000
	DefaultDSN           = "estoque.db"
)

// applyDefaults fills zero-valued fields with their documented defaults.
// It runs after merging and before validation, so explicit values from any
// source always win.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = DefaultHTTPAddress
	}

	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = DefaultTokenDuration
	}

	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = DefaultTokenIssuer
	}

	if cfg.Server.RateLimit == 0 {
		cfg.Server.RateLimit = DefaultRateLimit
	}

	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = DefaultDSN
	}

	if cfg.Storage.DB.Driver == "" {
		cfg.Storage.DB.Driver = inferDriver(cfg.Storage.DB.DSN)
	}
}

// inferDriver derives the SQL driver name from the DSN shape: postgres URIs
// select pgx, anything else is treated as a SQLite file path.
func inferDriver(dsn string) string {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		return "pgx"
	}

	return "sqlite3"
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.AdminUsername == "" || cfg.App.AdminPassword == "" {
		return ErrMissingAdminCredentials
	}

	if cfg.App.TokenSignKey == "" {
		return ErrMissingTokenSignKey
	}

	if cfg.Storage.DB.Driver != "pgx" && cfg.Storage.DB.Driver != "sqlite3" {
		return ErrUnsupportedDriver
	}

	return nil
}

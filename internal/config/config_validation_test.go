package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			AdminUsername: "admin",
			AdminPassword: "pass",
			TokenSignKey:  "key",
		},
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := validConfig()
	cfg.applyDefaults()

	assert.Equal(t, DefaultHTTPAddress, cfg.Server.HTTPAddress)
	assert.Equal(t, DefaultTokenDuration, cfg.App.TokenDuration)
	assert.Equal(t, DefaultTokenIssuer, cfg.App.TokenIssuer)
	assert.Equal(t, DefaultRateLimit, cfg.Server.RateLimit)
	assert.Equal(t, DefaultDSN, cfg.Storage.DB.DSN)
	assert.Equal(t, "sqlite3", cfg.Storage.DB.Driver)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := validConfig()
	cfg.Server.HTTPAddress = ":9999"
	cfg.App.TokenDuration = time.Hour
	cfg.Storage.DB.DSN = "postgres://localhost/estoque"

	cfg.applyDefaults()

	assert.Equal(t, ":9999", cfg.Server.HTTPAddress)
	assert.Equal(t, time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, "pgx", cfg.Storage.DB.Driver)
}

func TestInferDriver(t *testing.T) {
	tests := []struct {
		name string
		dsn  string
		want string
	}{
		{name: "postgres URI", dsn: "postgres://localhost/estoque", want: "pgx"},
		{name: "postgresql URI", dsn: "postgresql://localhost/estoque", want: "pgx"},
		{name: "sqlite file", dsn: "estoque.db", want: "sqlite3"},
		{name: "sqlite path", dsn: "/var/lib/estoque/estoque.db", want: "sqlite3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, inferDriver(tt.dsn))
		})
	}
}

func TestValidate_TableTest(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{
			name:   "valid config passes",
			mutate: func(cfg *StructuredConfig) {},
		},
		{
			name:    "missing admin username",
			mutate:  func(cfg *StructuredConfig) { cfg.App.AdminUsername = "" },
			wantErr: ErrMissingAdminCredentials,
		},
		{
			name:    "missing admin password",
			mutate:  func(cfg *StructuredConfig) { cfg.App.AdminPassword = "" },
			wantErr: ErrMissingAdminCredentials,
		},
		{
			name:    "missing sign key",
			mutate:  func(cfg *StructuredConfig) { cfg.App.TokenSignKey = "" },
			wantErr: ErrMissingTokenSignKey,
		},
		{
			name:    "unknown driver",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.DB.Driver = "oracle" },
			wantErr: ErrUnsupportedDriver,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			cfg.applyDefaults()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

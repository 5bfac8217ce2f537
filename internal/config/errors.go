package config

import "errors"

var (
	// ErrMissingAdminCredentials is returned when the admin username or
	// password is absent from every configuration source. The server cannot
	// issue sessions without them.
	ErrMissingAdminCredentials = errors.New("admin username and password must be configured")

	// ErrMissingTokenSignKey is returned when no JWT signing key is
	// configured.
	ErrMissingTokenSignKey = errors.New("token sign key must be configured")

	// ErrUnsupportedDriver is returned when the configured database driver is
	// neither pgx nor sqlite3.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)

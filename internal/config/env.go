package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from process environment variables, honoring the `env`
// and `envPrefix` tags declared on [StructuredConfig] and its sections.
// Unset variables leave their fields zero; a value that cannot be converted
// to the field's type is an error.
func parseEnv(cfg any) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}

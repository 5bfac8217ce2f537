// Package config loads and merges the application configuration from
// environment variables, command-line flags and an optional JSON file.
//
// Sources are merged in priority order (environment first, then flags, then
// the JSON file); zero-valued fields fall back to documented defaults and the
// final result is validated before use.
package config

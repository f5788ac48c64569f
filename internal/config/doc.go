// Package config loads, normalizes, and validates the TOML configuration
// shared by the reviewd daemon and the reviewctl CLI.
//
// Precedence: explicit --config path, then ~/.config/reviewd/config.toml,
// then ./reviewd.toml, then built-in defaults. The reviewer API key is the
// one setting without a default; startup fails fast when it is absent.
package config

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Consolekit Authors

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the brandcfg
// service. It aggregates all sub-configurations and is populated by merging
// values from environment variables, command-line flags, an optional JSON
// file, and built-in defaults.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Branding holds the override-source settings for the branding document.
	Branding Branding `envPrefix:"BRANDING_"`

	// Log holds logging settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged behind the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Server holds network and timeout settings for the inbound HTTP transport.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Branding names the optional override sources of the branding document.
type Branding struct {
	// FilePath is the path to the static JSON override file. Empty disables
	// the file layer.
	// Env: BRANDING_FILE
	FilePath string `env:"FILE"`

	// RemoteURL is the endpoint from which a remote override layer is
	// fetched once at startup. Empty disables the remote layer.
	// Env: BRANDING_REMOTE_URL
	RemoteURL string `env:"REMOTE_URL"`

	// RemoteTimeout bounds the one-shot remote layer fetch.
	// Env: BRANDING_REMOTE_TIMEOUT
	RemoteTimeout time.Duration `env:"REMOTE_TIMEOUT"`

	// RuntimeJSON is the raw runtime-injected branding layer supplied by the
	// hosting environment. It is read exactly once at startup; later
	// mutation of the environment is never observed.
	// Env: BRANDING_RUNTIME
	RuntimeJSON string `env:"RUNTIME"`
}

// Log holds logging settings.
type Log struct {
	// Level is the minimum emitted zerolog level ("debug", "info", "warn",
	// "error").
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`
}

// GetStructuredConfig loads, merges, and validates the service configuration
// from all available sources. Earlier sources win for fields they set:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}

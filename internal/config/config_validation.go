// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Consolekit Authors

package config

import "github.com/rs/zerolog"

// validate checks that the final merged [StructuredConfig] satisfies all
// service invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a sentinel error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Branding.RemoteURL != "" && cfg.Branding.RemoteTimeout <= 0 {
		return ErrInvalidBrandingConfigs
	}

	if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil {
		return ErrInvalidLogConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.BaseURL == "" {
		return ErrInvalidClientConfigs
	}

	if cfg.RequestTimeout <= 0 {
		return ErrInvalidClientConfigs
	}

	return nil
}

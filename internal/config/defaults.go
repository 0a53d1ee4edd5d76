// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Consolekit Authors

package config

import "time"

// defaultConfig returns the built-in service defaults. Every other source is
// merged in front of these, so a default only survives when no env var,
// flag, or file value sets the field.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Server: Server{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 30 * time.Second,
		},
		Branding: Branding{
			RemoteTimeout: 10 * time.Second,
		},
		Log: Log{
			Level: "info",
		},
	}
}

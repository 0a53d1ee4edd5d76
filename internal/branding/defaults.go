// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Consolekit Authors

package branding

import "github.com/consolekit/brandcfg/internal/layers"

// Defaults returns the built-in branding layer. It defines the full
// recognized key space; override layers may replace these values or add keys
// of their own.
//
// Each call returns a fresh layer so callers cannot corrupt the baseline.
func Defaults() layers.Layer {
	return layers.Layer{
		"theme":        "dark",
		"title":        "Admin Console",
		"logoUrl":      "/static/logo.svg",
		"faviconUrl":   "/static/favicon.ico",
		"showDocs":     true,
		"showSettings": true,
		"hideNav":      false,
		"socialLinks": map[string]any{
			"github": "https://github.com/consolekit",
		},
	}
}

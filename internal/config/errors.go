package config

import "errors"

// Validation errors returned when the merged configuration is incomplete or
// inconsistent.
var (
	// ErrInvalidServerConfigs indicates invalid server settings
	// (for example, a missing listen address or zero request timeout).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidBrandingConfigs indicates invalid branding source settings
	// (for example, a remote URL with a zero fetch timeout).
	ErrInvalidBrandingConfigs = errors.New("invalid branding configuration")
	// ErrInvalidLogConfigs indicates an unrecognized log level.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
	// ErrInvalidClientConfigs indicates invalid client settings
	// (for example, a missing server base URL).
	ErrInvalidClientConfigs = errors.New("invalid client configuration")
)

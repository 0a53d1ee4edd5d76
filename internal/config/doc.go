// Package config provides configuration loading, merging, and validation
// facilities for the brandcfg service.
//
// Service configuration is assembled from multiple sources; earlier sources
// win for every field they set, later sources fill what is still empty:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults
//
// This is the service's own runtime configuration (addresses, paths,
// timeouts). The branding document served to frontends is resolved
// separately by the branding package.
//
// The main entry points are [GetStructuredConfig] for the server and
// [GetClientConfig] for the client binary.
package config

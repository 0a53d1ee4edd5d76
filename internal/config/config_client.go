package config

import (
	"flag"
	"fmt"
	"time"
)

// ClientConfig is the configuration for the brandcfg client binary, which
// fetches the resolved branding document from a running server — or, in
// local mode, resolves it in-process from the same override sources the
// server uses.
type ClientConfig struct {
	// BaseURL is the server base URL (e.g. "http://localhost:8080").
	BaseURL string `env:"CLIENT_BASE_URL"`
	// RequestTimeout is the timeout for outbound client requests.
	RequestTimeout time.Duration `env:"CLIENT_REQUEST_TIMEOUT"`
	// Key limits output to a single top-level branding key when non-empty.
	Key string
	// Local resolves the branding document in-process instead of contacting
	// a server.
	Local bool
	// BrandingFile is the static override file used in local mode.
	// Env: BRANDING_FILE
	BrandingFile string `env:"BRANDING_FILE"`
	// RuntimeJSON is the runtime-injected layer used in local mode, read
	// once from the environment.
	// Env: BRANDING_RUNTIME
	RuntimeJSON string `env:"BRANDING_RUNTIME"`
}

// GetClientConfig assembles the client configuration from environment
// variables and the given command-line arguments, then validates it.
//
// A dedicated flag set is used so the client binary does not collide with
// the server flag definitions in [ParseFlags].
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg := &ClientConfig{}
	if err := parseEnv(cfg); err != nil {
		return nil, fmt.Errorf("error get client env configs: %w", err)
	}

	fs := flag.NewFlagSet("brandcfg-client", flag.ContinueOnError)
	baseURL := fs.String("a", "", "Server base URL")
	timeout := fs.Duration("request-timeout", 0, "Request timeout (e.g., 15s)")
	key := fs.String("key", "", "Fetch a single top-level branding key")
	local := fs.Bool("local", false, "Resolve branding locally without a server")
	brandingFile := fs.String("branding-file", "", "Branding override file path (local mode)")
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing client flags: %w", err)
	}

	if cfg.BaseURL == "" {
		cfg.BaseURL = *baseURL
	}
	if cfg.RequestTimeout == 0 {
		cfg.RequestTimeout = *timeout
	}
	if cfg.BrandingFile == "" {
		cfg.BrandingFile = *brandingFile
	}
	cfg.Key = *key
	cfg.Local = *local

	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.RequestTimeout == 0 {
		cfg.RequestTimeout = 15 * time.Second
	}

	return cfg, cfg.validate()
}

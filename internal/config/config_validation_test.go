package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validConfig() *StructuredConfig {
	return &StructuredConfig{
		Server: Server{HTTPAddress: "localhost:8080", RequestTimeout: 30 * time.Second},
		Log:    Log{Level: "info"},
	}
}

func TestValidate_ValidConfig(t *testing.T) {
	assert.NoError(t, validConfig().validate())
}

func TestValidate_MissingServerAddress(t *testing.T) {
	cfg := validConfig()
	cfg.Server.HTTPAddress = ""

	assert.ErrorIs(t, cfg.validate(), ErrInvalidServerConfigs)
}

func TestValidate_ZeroRequestTimeout(t *testing.T) {
	cfg := validConfig()
	cfg.Server.RequestTimeout = 0

	assert.ErrorIs(t, cfg.validate(), ErrInvalidServerConfigs)
}

func TestValidate_RemoteURLWithoutTimeout(t *testing.T) {
	cfg := validConfig()
	cfg.Branding.RemoteURL = "https://config.acme.io/branding"
	cfg.Branding.RemoteTimeout = 0

	assert.ErrorIs(t, cfg.validate(), ErrInvalidBrandingConfigs)
}

func TestValidate_RemoteURLWithTimeout(t *testing.T) {
	cfg := validConfig()
	cfg.Branding.RemoteURL = "https://config.acme.io/branding"
	cfg.Branding.RemoteTimeout = 5 * time.Second

	assert.NoError(t, cfg.validate())
}

func TestValidate_UnknownLogLevel(t *testing.T) {
	cfg := validConfig()
	cfg.Log.Level = "loud"

	assert.ErrorIs(t, cfg.validate(), ErrInvalidLogConfigs)
}

// ── ClientConfig ──────────────────────────────────────────────────────────────

func TestGetClientConfig_Defaults(t *testing.T) {
	cfg, err := GetClientConfig(nil)
	assert.NoError(t, err)
	assert.Equal(t, "http://localhost:8080", cfg.BaseURL)
	assert.Equal(t, 15*time.Second, cfg.RequestTimeout)
	assert.Empty(t, cfg.Key)
}

func TestGetClientConfig_Flags(t *testing.T) {
	cfg, err := GetClientConfig([]string{
		"-a", "http://branding.acme.io",
		"-request-timeout", "5s",
		"-key", "theme",
	})
	assert.NoError(t, err)
	assert.Equal(t, "http://branding.acme.io", cfg.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "theme", cfg.Key)
}

func TestGetClientConfig_EnvWinsOverFlags(t *testing.T) {
	t.Setenv("CLIENT_BASE_URL", "http://from-env")

	cfg, err := GetClientConfig([]string{"-a", "http://from-flag"})
	assert.NoError(t, err)
	assert.Equal(t, "http://from-env", cfg.BaseURL)
}

func TestGetClientConfig_LocalMode(t *testing.T) {
	t.Setenv("BRANDING_RUNTIME", `{"theme": "light"}`)

	cfg, err := GetClientConfig([]string{
		"-local",
		"-branding-file", "/etc/brandcfg/branding.json",
	})
	assert.NoError(t, err)
	assert.True(t, cfg.Local)
	assert.Equal(t, "/etc/brandcfg/branding.json", cfg.BrandingFile)
	assert.Equal(t, `{"theme": "light"}`, cfg.RuntimeJSON)
}

func TestGetClientConfig_LocalModeOffByDefault(t *testing.T) {
	cfg, err := GetClientConfig(nil)
	assert.NoError(t, err)
	assert.False(t, cfg.Local)
	assert.Empty(t, cfg.BrandingFile)
}

func TestGetClientConfig_BadFlag(t *testing.T) {
	cfg, err := GetClientConfig([]string{"-request-timeout", "soon"})
	assert.Nil(t, cfg)
	assert.Error(t, err)
}

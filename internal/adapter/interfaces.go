package adapter

import (
	"context"
	"encoding/json"

	"github.com/consolekit/brandcfg/models"
)

// BrandingClient fetches resolved branding data from a running brandcfg
// server.
type BrandingClient interface {
	// FetchBranding retrieves the full resolved branding document.
	FetchBranding(ctx context.Context) (models.Branding, error)

	// FetchKey retrieves the resolved value of one top-level key.
	// Returns ErrKeyNotFound when the server does not know the key.
	FetchKey(ctx context.Context, key string) (json.RawMessage, error)
}

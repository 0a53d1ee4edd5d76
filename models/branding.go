// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Consolekit Authors

package models

import (
	"encoding/json"
	"fmt"

	"github.com/consolekit/brandcfg/internal/layers"
)

// Branding is the typed view of a resolved branding document, shared between
// the server and the client adapter.
//
// Keys not covered by a named field are preserved in Extra so that override
// layers may introduce values the defaults never defined. The typed view is
// best-effort: a known key carrying a value of the wrong type leaves its
// field at the zero value, while the raw resolved document keeps the value
// as delivered.
type Branding struct {
	// Theme is the UI color scheme identifier (e.g. "dark", "light").
	Theme string `json:"theme"`

	// Title is the product name shown in the console header and page title.
	Title string `json:"title"`

	// LogoURL points at the logo image displayed by the console.
	LogoURL string `json:"logoUrl"`

	// FaviconURL points at the favicon used by the hosting page.
	FaviconURL string `json:"faviconUrl"`

	// ShowDocs toggles the documentation link in the navigation menu.
	ShowDocs bool `json:"showDocs"`

	// ShowSettings toggles the settings entry in the navigation menu.
	ShowSettings bool `json:"showSettings"`

	// HideNav hides the navigation menu entirely when true.
	HideNav bool `json:"hideNav"`

	// SocialLinks maps a network name to its profile URL. Layers replace the
	// whole map, they never merge individual links.
	SocialLinks map[string]string `json:"socialLinks,omitempty"`

	// Extra carries pass-through keys unknown to this struct.
	Extra map[string]any `json:"-"`
}

// brandingAlias breaks the MarshalJSON recursion.
type brandingAlias Branding

// knownBrandingKeys are the top-level JSON keys owned by named fields.
var knownBrandingKeys = map[string]struct{}{
	"theme":        {},
	"title":        {},
	"logoUrl":      {},
	"faviconUrl":   {},
	"showDocs":     {},
	"showSettings": {},
	"hideNav":      {},
	"socialLinks":  {},
}

// BrandingFromLayer decodes a resolved layer into its typed view.
// Unknown top-level keys are carried over into Extra unchanged; known keys
// with mistyped values are skipped, never a failure.
func BrandingFromLayer(l layers.Layer) (Branding, error) {
	data, err := json.Marshal(l)
	if err != nil {
		return Branding{}, fmt.Errorf("encode resolved layer: %w", err)
	}

	var b Branding
	if err := json.Unmarshal(data, &b); err != nil {
		return Branding{}, fmt.Errorf("decode resolved layer: %w", err)
	}

	return b, nil
}

// UnmarshalJSON decodes the named fields one key at a time and collects
// every remaining top-level key into Extra.
//
// Value shapes are not validated: a known key whose value does not fit its
// field (e.g. a string where a bool belongs) leaves the field at its zero
// value instead of failing the decode. The raw document stays the source of
// truth for such values.
func (b *Branding) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	var out brandingAlias
	for key, value := range raw {
		if _, owned := knownBrandingKeys[key]; !owned {
			var passthrough any
			if err := json.Unmarshal(value, &passthrough); err != nil {
				return err
			}
			if out.Extra == nil {
				out.Extra = make(map[string]any)
			}
			out.Extra[key] = passthrough
			continue
		}

		// Mistyped values are skipped, the field keeps its zero value.
		switch key {
		case "theme":
			_ = json.Unmarshal(value, &out.Theme)
		case "title":
			_ = json.Unmarshal(value, &out.Title)
		case "logoUrl":
			_ = json.Unmarshal(value, &out.LogoURL)
		case "faviconUrl":
			_ = json.Unmarshal(value, &out.FaviconURL)
		case "showDocs":
			_ = json.Unmarshal(value, &out.ShowDocs)
		case "showSettings":
			_ = json.Unmarshal(value, &out.ShowSettings)
		case "hideNav":
			_ = json.Unmarshal(value, &out.HideNav)
		case "socialLinks":
			_ = json.Unmarshal(value, &out.SocialLinks)
		}
	}

	*b = Branding(out)
	return nil
}

// MarshalJSON emits the named fields and the pass-through Extra keys as one
// flat object. Named fields win over a colliding Extra key.
func (b Branding) MarshalJSON() ([]byte, error) {
	data, err := json.Marshal(brandingAlias(b))
	if err != nil {
		return nil, err
	}

	if len(b.Extra) == 0 {
		return data, nil
	}

	var flat map[string]any
	if err := json.Unmarshal(data, &flat); err != nil {
		return nil, err
	}

	for key, value := range b.Extra {
		if _, owned := knownBrandingKeys[key]; owned {
			continue
		}
		flat[key] = value
	}

	return json.Marshal(flat)
}

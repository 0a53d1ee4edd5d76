// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Consolekit Authors

package branding

import (
	"encoding/json"
	"fmt"

	"github.com/consolekit/brandcfg/internal/layers"
	"github.com/consolekit/brandcfg/models"
)

// Sources names the optional override inputs for one resolution.
// The built-in defaults are always the base layer and need no entry here.
type Sources struct {
	// FilePath is the path to the static JSON override file. Empty means no
	// file layer.
	FilePath string

	// Remote is the override layer fetched from a remote endpoint by the
	// caller before resolution. Nil means no remote layer.
	Remote layers.Layer

	// Runtime is the raw JSON blob injected by the hosting environment,
	// read once by the caller. Empty means no runtime layer.
	Runtime []byte
}

// Snapshot is the resolved branding document. It is immutable for the
// process lifetime: there is no re-resolution or reload path, and every
// accessor returns data the caller cannot use to mutate the snapshot.
type Snapshot struct {
	layer layers.Layer
	doc   models.Branding
	raw   []byte
}

// Load resolves the branding document from the built-in defaults plus the
// given override sources, in ascending precedence:
// defaults, file, remote, runtime (last wins per top-level key).
//
// Absent optional sources are treated as empty layers. A configured but
// unreadable or malformed source is an error.
func Load(src Sources) (*Snapshot, error) {
	resolved, err := newLayerSet().
		withDefaults().
		withFile(src.FilePath).
		withOverride(src.Remote).
		withRuntime(src.Runtime).
		resolve()
	if err != nil {
		return nil, err
	}

	doc, err := models.BrandingFromLayer(resolved)
	if err != nil {
		return nil, fmt.Errorf("error building typed branding view: %w", err)
	}

	raw, err := json.Marshal(resolved)
	if err != nil {
		return nil, fmt.Errorf("error encoding resolved branding: %w", err)
	}

	return &Snapshot{layer: resolved, doc: doc, raw: raw}, nil
}

// Doc returns the typed view of the resolved document.
func (s *Snapshot) Doc() models.Branding {
	return s.doc
}

// Layer returns a copy of the resolved key/value mapping.
func (s *Snapshot) Layer() layers.Layer {
	return s.layer.Clone()
}

// JSON returns the resolved document encoded once at load time.
// Callers must not modify the returned slice.
func (s *Snapshot) JSON() []byte {
	return s.raw
}

// Value returns the resolved value for one top-level key and whether the key
// exists.
func (s *Snapshot) Value(key string) (any, bool) {
	value, ok := s.layer[key]
	return value, ok
}

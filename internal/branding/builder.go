// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Consolekit Authors

package branding

import (
	"errors"
	"fmt"

	"github.com/consolekit/brandcfg/internal/layers"
)

// layerSet accumulates ordered branding layers before resolution.
// Source errors are collected rather than aborting, so one broken source
// reports alongside the others.
type layerSet struct {
	layers []layers.Layer
	err    error
}

func newLayerSet() *layerSet {
	return &layerSet{
		layers: make([]layers.Layer, 0, 4),
	}
}

func (s *layerSet) withDefaults() *layerSet {
	s.layers = append(s.layers, Defaults())
	return s
}

// withFile appends the override file layer. An empty path means no file is
// configured and is skipped silently; a configured but unreadable or
// malformed file is an error.
func (s *layerSet) withFile(path string) *layerSet {
	if path == "" {
		return s
	}

	fileLayer, err := parseFile(path)
	if err != nil {
		s.err = errors.Join(s.err, err)
		return s
	}

	s.layers = append(s.layers, fileLayer)
	return s
}

// withOverride appends an already-fetched layer (e.g. a remote override).
// A nil layer is skipped.
func (s *layerSet) withOverride(l layers.Layer) *layerSet {
	if l == nil {
		return s
	}

	s.layers = append(s.layers, l)
	return s
}

// withRuntime appends the runtime-injected layer from its raw JSON form.
// Empty input means the hosting environment injected nothing and is skipped.
func (s *layerSet) withRuntime(raw []byte) *layerSet {
	runtimeLayer, err := parseRuntime(raw)
	if err != nil {
		s.err = errors.Join(s.err, err)
		return s
	}

	return s.withOverride(runtimeLayer)
}

func (s *layerSet) resolve() (layers.Layer, error) {
	if s.err != nil {
		return nil, fmt.Errorf("error assembling branding layers: %w", s.err)
	}

	if len(s.layers) == 0 {
		return layers.Layer{}, nil
	}

	return layers.Resolve(s.layers[0], s.layers[1:]...), nil
}

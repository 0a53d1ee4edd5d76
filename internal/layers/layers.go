// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Consolekit Authors

// Package layers implements the layered configuration merge used to assemble
// the final branding document.
//
// A [Layer] is one source of configuration truth (built-in defaults, an
// override file, a runtime-injected blob). [Resolve] folds an ordered
// sequence of layers into a single snapshot with later layers taking
// precedence on a per-top-level-key basis.
//
// The merge is deliberately shallow: nested objects are replaced wholesale,
// never merged field by field.
package layers

// Layer is a single source of configuration key/value pairs.
// A nil Layer is valid and behaves as an empty one.
type Layer map[string]any

// Resolve merges defaults and overrides into a new Layer.
//
// Starting from defaults, each override is applied in order with a shallow
// overwrite: every key present in the override replaces the accumulated
// value for that key, inserting it if absent. Keys the override does not
// mention are left untouched. The last override wins.
//
// The result always contains at least every key of defaults; keys unknown to
// defaults pass through unchanged. Nil layers count as empty. The returned
// map is freshly allocated, so mutating any input afterwards does not affect
// the result.
func Resolve(defaults Layer, overrides ...Layer) Layer {
	resolved := make(Layer, len(defaults))
	for key, value := range defaults {
		resolved[key] = value
	}

	for _, override := range overrides {
		for key, value := range override {
			resolved[key] = value
		}
	}

	return resolved
}

// Clone returns a shallow copy of l. Nested values are shared with the
// original, matching the top-level-only granularity of [Resolve].
func (l Layer) Clone() Layer {
	if l == nil {
		return Layer{}
	}

	return Resolve(l)
}

// Has reports whether l defines the given top-level key.
func (l Layer) Has(key string) bool {
	_, ok := l[key]
	return ok
}

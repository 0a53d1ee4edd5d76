package branding

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/consolekit/brandcfg/internal/layers"
)

// parseRuntime decodes the runtime-injected layer from its raw JSON form.
//
// The caller reads the ambient value (the BRANDING_RUNTIME variable) exactly
// once and passes it in, so resolution stays a snapshot even if the
// environment mutates afterwards. Empty or all-whitespace input yields a nil
// layer; anything else must be a JSON object.
func parseRuntime(raw []byte) (layers.Layer, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil, nil
	}

	var runtimeLayer layers.Layer
	if err := json.Unmarshal(raw, &runtimeLayer); err != nil {
		return nil, fmt.Errorf("error decoding runtime branding layer: %w", err)
	}

	return runtimeLayer, nil
}

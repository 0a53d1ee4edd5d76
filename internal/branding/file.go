package branding

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/consolekit/brandcfg/internal/layers"
)

// parseFile reads one static override layer from a JSON file. The file must
// contain a single JSON object; value shapes are not validated further.
func parseFile(path string) (layers.Layer, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error reading branding override file: %w", err)
	}
	defer file.Close()

	var fileLayer layers.Layer
	if err := json.NewDecoder(file).Decode(&fileLayer); err != nil {
		return nil, fmt.Errorf("error decoding branding override file %s: %w", path, err)
	}

	return fileLayer, nil
}

package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// RequirementsFilename is the name a requirements record is saved under.
// ext is "yaml" or "json".
func RequirementsFilename(systemName, ext string) string {
	return Stem(systemName) + "_Requirements." + ext
}

// WriteJSON writes v as indented JSON, creating parent directories.
func WriteJSON(path string, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return WriteFile(path, append(b, '\n'))
}

// WriteYAML writes v as YAML, creating parent directories.
func WriteYAML(path string, v any) error {
	b, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return WriteFile(path, b)
}

func WriteFile(path string, b []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create %s: %w", filepath.Dir(path), err)
	}
	return os.WriteFile(path, b, 0o644)
}

package parser

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/GoSim-25-26J-441/archgen-backend/internal/architecture_generation/domain"
	"gopkg.in/yaml.v3"
)

// FromYAML decodes a requirements record and drops blank list entries.
func FromYAML(b []byte) (domain.Requirements, error) {
	var r domain.Requirements
	if err := yaml.Unmarshal(b, &r); err != nil {
		return domain.Requirements{}, fmt.Errorf("parse yaml: %w", err)
	}
	return r.Clean(), nil
}

func FromJSON(b []byte) (domain.Requirements, error) {
	var r domain.Requirements
	if err := json.Unmarshal(b, &r); err != nil {
		return domain.Requirements{}, fmt.Errorf("parse json: %w", err)
	}
	return r.Clean(), nil
}

// ParseFile picks the decoder from the file extension; anything that is not
// .json is read as YAML.
func ParseFile(path string) (domain.Requirements, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return domain.Requirements{}, err
	}
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FromJSON(b)
	}
	return FromYAML(b)
}

package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/GoSim-25-26J-441/archgen-backend/internal/architecture_generation/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestFilenames(t *testing.T) {
	cases := map[string]string{
		"Shop":                 "Shop",
		"E-commerce Platform":  "E-commerce_Platform",
		"  padded   name  ":    "_padded_name_",
		"tabs\tand\nnewlines":  "tabs_and_newlines",
		"non\u00a0breaking":    "non_breaking",
		"":                     "",
	}
	for in, stem := range cases {
		assert.Equal(t, stem, Stem(in), "stem of %q", in)
		assert.Equal(t, stem+"_Architecture.md", DocumentFilename(in))
		assert.Equal(t, stem+"_Architecture_Diagram.svg", DiagramFilename(in))
	}
	assert.Equal(t, "My_App_Architecture_Diagram.mmd", DefinitionFilename("My App"))
}

func TestWriteYAMLAndJSON(t *testing.T) {
	dir := t.TempDir()
	r := domain.Requirements{SystemName: "Shop", MainFeatures: []string{"Catalog"}}

	yamlPath := filepath.Join(dir, "req.yaml")
	require.NoError(t, WriteYAML(yamlPath, r))
	b, err := os.ReadFile(yamlPath)
	require.NoError(t, err)

	var back domain.Requirements
	require.NoError(t, yaml.Unmarshal(b, &back))
	assert.Equal(t, "Shop", back.SystemName)
	assert.Equal(t, []string{"Catalog"}, back.MainFeatures)

	jsonPath := filepath.Join(dir, "req.json")
	require.NoError(t, WriteJSON(jsonPath, r))
	b, err = os.ReadFile(jsonPath)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"systemName": "Shop"`)
}

func TestWriteFile_CreatesDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "out", RequirementsFilename("My App", "yaml"))
	require.NoError(t, WriteFile(path, []byte("x")))

	assert.Equal(t, "My_App_Requirements.yaml", filepath.Base(path))
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "x", string(b))
}

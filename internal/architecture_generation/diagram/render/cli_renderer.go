package render

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/GoSim-25-26J-441/archgen-backend/internal/architecture_generation/diagram"
)

// CLIRenderer runs mermaid-cli (mmdc) on temporary files.
type CLIRenderer struct {
	Bin    string
	TmpDir string
}

func NewCLIRenderer(bin string) *CLIRenderer {
	if bin == "" {
		bin = "mmdc"
	}
	return &CLIRenderer{Bin: bin}
}

func (r *CLIRenderer) Render(ctx context.Context, definition string) ([]byte, error) {
	if _, err := exec.LookPath(r.Bin); err != nil {
		return nil, fmt.Errorf("mermaid: mmdc binary not found (%q): %w", r.Bin, err)
	}

	dir, err := os.MkdirTemp(r.TmpDir, "archgen-render-")
	if err != nil {
		return nil, fmt.Errorf("mermaid: temp dir: %w", err)
	}
	defer os.RemoveAll(dir)

	in := filepath.Join(dir, "diagram.mmd")
	out := filepath.Join(dir, "diagram.svg")
	cfg := filepath.Join(dir, "config.json")

	if err := os.WriteFile(in, []byte(definition), 0o644); err != nil {
		return nil, err
	}
	theme, err := json.Marshal(diagram.ThemeConfig())
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(cfg, theme, 0o644); err != nil {
		return nil, err
	}

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, r.Bin, "-i", in, "-o", out, "-c", cfg, "-q")
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return nil, fmt.Errorf("mermaid: mmdc: %w: %s", err, msg)
		}
		return nil, fmt.Errorf("mermaid: mmdc: %w", err)
	}

	svg, err := os.ReadFile(out)
	if err != nil {
		return nil, fmt.Errorf("mermaid: read output: %w", err)
	}
	if len(svg) == 0 {
		return nil, ErrEmptyOutput
	}
	return svg, nil
}

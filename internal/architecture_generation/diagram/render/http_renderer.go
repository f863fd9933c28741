package render

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/GoSim-25-26J-441/archgen-backend/internal/architecture_generation/diagram"
)

const maxSVGBytes = 8 << 20

// HTTPRenderer posts definitions to a Kroki compatible service.
type HTTPRenderer struct {
	baseURL string
	client  *http.Client
}

// NewHTTPRenderer creates a renderer for baseURL, e.g. https://kroki.io
func NewHTTPRenderer(baseURL string, timeout time.Duration) *HTTPRenderer {
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	return &HTTPRenderer{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

func (r *HTTPRenderer) Render(ctx context.Context, definition string) ([]byte, error) {
	reqURL := r.baseURL + "/mermaid/svg"
	body, err := withInitDirective(definition)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, strings.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "text/plain")
	req.Header.Set("Accept", "image/svg+xml")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("renderer request failed: %w", err)
	}
	defer resp.Body.Close()

	svg, err := io.ReadAll(io.LimitReader(resp.Body, maxSVGBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read renderer response: %w", err)
	}
	if len(svg) > maxSVGBytes {
		return nil, ErrOutputTooLarge
	}
	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("renderer returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(svg)))
	}
	if len(svg) == 0 {
		return nil, ErrEmptyOutput
	}
	return svg, nil
}

// withInitDirective prefixes the definition with the theme as a mermaid
// %%{init}%% directive; there is no config file on the HTTP path.
func withInitDirective(definition string) (string, error) {
	theme, err := json.Marshal(diagram.ThemeConfig())
	if err != nil {
		return "", err
	}
	return "%%{init: " + string(theme) + "}%%\n" + definition, nil
}

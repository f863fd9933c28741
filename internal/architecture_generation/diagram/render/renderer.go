// Package render turns Mermaid definitions into SVG through an external
// renderer.
package render

import (
	"context"
	"errors"
)

// ErrorPlaceholder replaces the diagram in display surfaces when rendering fails.
const ErrorPlaceholder = `<div class="text-red-500">Error rendering diagram</div>`

var (
	ErrEmptyOutput    = errors.New("renderer returned no svg")
	ErrOutputTooLarge = errors.New("renderer output exceeds size limit")
)

// Renderer converts a diagram definition into SVG bytes.
type Renderer interface {
	Render(ctx context.Context, definition string) ([]byte, error)
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(ctx context.Context, definition string) ([]byte, error)

func (f RendererFunc) Render(ctx context.Context, definition string) ([]byte, error) {
	return f(ctx, definition)
}

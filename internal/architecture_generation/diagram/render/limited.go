package render

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"
)

// Limited bounds how often the wrapped renderer is invoked process-wide.
type Limited struct {
	next    Renderer
	limiter *rate.Limiter
}

func NewLimited(next Renderer, rps float64, burst int) *Limited {
	if rps <= 0 {
		rps = 2
	}
	if burst <= 0 {
		burst = 1
	}
	return &Limited{next: next, limiter: rate.NewLimiter(rate.Limit(rps), burst)}
}

func (l *Limited) Render(ctx context.Context, definition string) ([]byte, error) {
	if err := l.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("render limiter: %w", err)
	}
	return l.next.Render(ctx, definition)
}

package render

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	KindCLI  = "cli"
	KindHTTP = "http"
)

type Options struct {
	Kind       string
	MermaidBin string
	URL        string
	Timeout    time.Duration
	RPS        float64
	Burst      int
	// Cache is optional; nil disables the render cache.
	Cache    *redis.Client
	CacheTTL time.Duration
}

// New assembles the renderer chain: cache -> limiter -> timeout -> backend.
func New(opt Options) (Renderer, error) {
	var backend Renderer
	switch opt.Kind {
	case "", KindCLI:
		backend = NewCLIRenderer(opt.MermaidBin)
	case KindHTTP:
		if opt.URL == "" {
			return nil, fmt.Errorf("RENDERER_URL is required for the http renderer")
		}
		backend = NewHTTPRenderer(opt.URL, opt.Timeout)
	default:
		return nil, fmt.Errorf("unknown renderer %q", opt.Kind)
	}

	var r Renderer = withTimeout(backend, opt.Timeout)
	r = NewLimited(r, opt.RPS, opt.Burst)
	if opt.Cache != nil {
		r = NewCached(r, opt.Cache, opt.CacheTTL)
	}
	return r, nil
}

func withTimeout(next Renderer, d time.Duration) Renderer {
	if d <= 0 {
		return next
	}
	return RendererFunc(func(ctx context.Context, definition string) ([]byte, error) {
		ctx, cancel := context.WithTimeout(ctx, d)
		defer cancel()
		return next.Render(ctx, definition)
	})
}

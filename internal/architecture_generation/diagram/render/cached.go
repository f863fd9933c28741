package render

import (
	"context"
	"encoding/hex"
	"errors"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/zeebo/blake3"
)

const cacheKeyPrefix = "archgen:render:"

// Cached stores rendered SVG in redis keyed by the definition hash.
// Cache failures fall through to the wrapped renderer.
type Cached struct {
	next   Renderer
	client *redis.Client
	ttl    time.Duration
}

func NewCached(next Renderer, client *redis.Client, ttl time.Duration) *Cached {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &Cached{next: next, client: client, ttl: ttl}
}

func (c *Cached) Render(ctx context.Context, definition string) ([]byte, error) {
	key := CacheKey(definition)

	svg, err := c.client.Get(ctx, key).Bytes()
	if err == nil && len(svg) > 0 {
		return svg, nil
	}
	if err != nil && !errors.Is(err, redis.Nil) {
		log.Printf("[warn] operation=render_cache_get key=%s error=%v", key, err)
	}

	svg, err = c.next.Render(ctx, definition)
	if err != nil {
		return nil, err
	}

	if err := c.client.Set(ctx, key, svg, c.ttl).Err(); err != nil {
		log.Printf("[warn] operation=render_cache_set key=%s error=%v", key, err)
	}
	return svg, nil
}

// CacheKey is the redis key for a definition's rendered output.
func CacheKey(definition string) string {
	sum := blake3.Sum256([]byte(definition))
	return cacheKeyPrefix + hex.EncodeToString(sum[:])
}

package render

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPRenderer_Render(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/mermaid/svg" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if r.Method != http.MethodPost {
			t.Errorf("unexpected method: %s", r.Method)
		}
		body, _ := io.ReadAll(r.Body)
		if !strings.HasPrefix(string(body), "%%{init: {") || !strings.HasSuffix(string(body), "}%%\ngraph TB\n") {
			t.Errorf("unexpected body: %q", body)
		}
		if !strings.Contains(string(body), `"primaryColor":"#3b82f6"`) {
			t.Errorf("theme missing from body: %q", body)
		}
		w.Header().Set("Content-Type", "image/svg+xml")
		w.Write([]byte(`<svg xmlns="http://www.w3.org/2000/svg"></svg>`))
	}))
	defer server.Close()

	r := NewHTTPRenderer(server.URL+"/", time.Second)
	svg, err := r.Render(context.Background(), "graph TB\n")
	require.NoError(t, err)
	assert.Equal(t, `<svg xmlns="http://www.w3.org/2000/svg"></svg>`, string(svg))
}

func TestHTTPRenderer_ErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("Syntax error in graph"))
	}))
	defer server.Close()

	_, err := NewHTTPRenderer(server.URL, time.Second).Render(context.Background(), "graph ???")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 400")
	assert.Contains(t, err.Error(), "Syntax error in graph")
}

func TestHTTPRenderer_OversizedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/svg+xml")
		w.Write([]byte("<svg>" + strings.Repeat("x", maxSVGBytes) + "</svg>"))
	}))
	defer server.Close()

	svg, err := NewHTTPRenderer(server.URL, 5*time.Second).Render(context.Background(), "graph TB")
	assert.ErrorIs(t, err, ErrOutputTooLarge)
	assert.Nil(t, svg)
}

func TestWithInitDirective(t *testing.T) {
	out, err := withInitDirective("graph TB\n")
	require.NoError(t, err)

	first, rest, ok := strings.Cut(out, "\n")
	require.True(t, ok)
	assert.Equal(t, "graph TB\n", rest)
	assert.True(t, strings.HasPrefix(first, "%%{init: "))
	assert.True(t, strings.HasSuffix(first, "}%%"))
	assert.Contains(t, first, `"theme":"default"`)
	assert.Contains(t, first, `"securityLevel":"strict"`)
}

func TestHTTPRenderer_EmptyBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	_, err := NewHTTPRenderer(server.URL, time.Second).Render(context.Background(), "graph TB")
	assert.ErrorIs(t, err, ErrEmptyOutput)
}

func TestCLIRenderer_MissingBinary(t *testing.T) {
	r := NewCLIRenderer("definitely-not-mmdc-binary")
	_, err := r.Render(context.Background(), "graph TB")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mmdc binary not found")
}

func TestCached_HitSkipsRenderer(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	var calls int32
	inner := RendererFunc(func(ctx context.Context, definition string) ([]byte, error) {
		atomic.AddInt32(&calls, 1)
		return []byte("<svg>" + definition + "</svg>"), nil
	})
	c := NewCached(inner, client, time.Minute)

	first, err := c.Render(context.Background(), "graph TB")
	require.NoError(t, err)
	second, err := c.Render(context.Background(), "graph TB")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	assert.True(t, mr.Exists(CacheKey("graph TB")))

	_, err = c.Render(context.Background(), "graph LR")
	require.NoError(t, err)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestCached_ErrorsAreNotCached(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	boom := errors.New("boom")
	c := NewCached(RendererFunc(func(ctx context.Context, definition string) ([]byte, error) {
		return nil, boom
	}), client, time.Minute)

	_, err := c.Render(context.Background(), "graph TB")
	assert.ErrorIs(t, err, boom)
	assert.False(t, mr.Exists(CacheKey("graph TB")))
}

func TestCacheKey_Stable(t *testing.T) {
	assert.Equal(t, CacheKey("graph TB"), CacheKey("graph TB"))
	assert.NotEqual(t, CacheKey("graph TB"), CacheKey("graph LR"))
	assert.Len(t, CacheKey("x"), len(cacheKeyPrefix)+64)
}

func TestLimited_RespectsContext(t *testing.T) {
	inner := RendererFunc(func(ctx context.Context, definition string) ([]byte, error) {
		return []byte("<svg/>"), nil
	})
	l := NewLimited(inner, 0.001, 1)

	_, err := l.Render(context.Background(), "graph TB")
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err = l.Render(ctx, "graph TB")
	assert.Error(t, err)
}

func TestNew_UnknownKind(t *testing.T) {
	_, err := New(Options{Kind: "graphviz"})
	assert.Error(t, err)

	_, err = New(Options{Kind: KindHTTP})
	assert.Error(t, err)

	r, err := New(Options{Kind: KindCLI, Timeout: time.Second})
	require.NoError(t, err)
	assert.NotNil(t, r)
}

func TestCLIRenderer_RunsBinary(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell script stand-in for mmdc")
	}
	dir := t.TempDir()
	bin := filepath.Join(dir, "mmdc")
	script := `#!/bin/sh
while [ $# -gt 0 ]; do
  case "$1" in
    -i) src="$2"; shift ;;
    -o) out="$2"; shift ;;
    -c) cfg="$2"; shift ;;
  esac
  shift
done
grep -q primaryColor "$cfg" || exit 3
printf '<svg>%s</svg>' "$(head -n 1 "$src")" > "$out"
`
	require.NoError(t, os.WriteFile(bin, []byte(script), 0o755))

	svg, err := NewCLIRenderer(bin).Render(context.Background(), "graph TB\n    A --> B\n")
	require.NoError(t, err)
	assert.Equal(t, "<svg>graph TB</svg>", string(svg))
}

func TestCLIRenderer_ReportsStderr(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell script stand-in for mmdc")
	}
	bin := filepath.Join(t.TempDir(), "mmdc")
	require.NoError(t, os.WriteFile(bin, []byte("#!/bin/sh\necho 'Parse error on line 2' >&2\nexit 1\n"), 0o755))

	_, err := NewCLIRenderer(bin).Render(context.Background(), "graph ???")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Parse error on line 2")
}

package server

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ideamans/fontawesome/pkg/config"
	"github.com/ideamans/fontawesome/pkg/fontawesome"
)

// stubFetcher answers every CDN URL with a file carrying the URL's version.
type stubFetcher struct {
	mu   sync.Mutex
	urls []string
	err  error
}

func (f *stubFetcher) Fetch(_ context.Context, url string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.urls = append(f.urls, url)
	if f.err != nil {
		return nil, f.err
	}
	rest := strings.TrimPrefix(url, fontawesome.DefaultCDNBase+"/")
	version, _, _ := strings.Cut(rest, "/")
	return []byte(fmt.Sprintf("/*! Font Awesome Free %s by @fontawesome */\n", version)), nil
}

func (f *stubFetcher) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.urls)
}

// testConfig returns a valid configuration caching below a temp dir.
func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.FontAwesome.StaticRoot = t.TempDir()
	return cfg
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

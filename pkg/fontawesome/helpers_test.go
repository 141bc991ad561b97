package fontawesome

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

const testCDN = "https://cdn.test/font-awesome"

// fakeFetcher serves made-up package files and counts requests.
// Stylesheets and scripts carry a version banner matching the URL.
type fakeFetcher struct {
	mu    sync.Mutex
	urls  []string
	fail  map[string]error
	block chan struct{}
	// waiting counts fetches that reached block
	waiting atomic.Int32
}

func newFakeFetcher() *fakeFetcher {
	return &fakeFetcher{fail: map[string]error{}}
}

func (f *fakeFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	if f.block != nil {
		f.waiting.Add(1)
		select {
		case <-f.block:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	f.mu.Lock()
	f.urls = append(f.urls, url)
	err := f.fail[url]
	f.mu.Unlock()
	if err != nil {
		return nil, err
	}
	return fakeContent(url), nil
}

func (f *fakeFetcher) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.urls)
}

func (f *fakeFetcher) fetched() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.urls...)
}

func (f *fakeFetcher) reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.urls = nil
}

// fakeContent returns deterministic bytes for a CDN URL.
func fakeContent(url string) []byte {
	rest := strings.TrimPrefix(url, testCDN+"/")
	version, name, _ := strings.Cut(rest, "/")
	if strings.HasPrefix(name, "webfonts/") {
		return []byte("\x00\x01binary-font:" + name)
	}
	return []byte(fmt.Sprintf("/*!\n * Font Awesome Free %s by @fontawesome\n */\n.fa{content:%q}\n", version, name))
}

func testResolver(t *testing.T) Resolver {
	t.Helper()
	return Resolver{StaticRoot: t.TempDir(), CDNBase: testCDN}
}

// writeCached places content at the local path of a.
func writeCached(t *testing.T, r Resolver, a Asset, content string) {
	t.Helper()
	p := r.Path(a)
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
}

// cachedFiles lists every file below root, relative and slash separated.
func cachedFiles(t *testing.T, root string) []string {
	t.Helper()
	var files []string
	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		rel, _ := filepath.Rel(root, p)
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	require.NoError(t, err)
	return files
}

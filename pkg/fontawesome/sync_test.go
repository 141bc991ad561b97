package fontawesome

import (
	"context"
	"errors"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ideamans/fontawesome/pkg/ledger"
	"github.com/ideamans/fontawesome/pkg/shared/kvs"
	"github.com/ideamans/fontawesome/pkg/shared/logging"
)

func newTestSynchronizer(t *testing.T, opts SyncOptions) (*Synchronizer, *fakeFetcher) {
	t.Helper()
	fetcher := newFakeFetcher()
	if opts.Logger == nil {
		opts.Logger = logging.NewTestLoggerVerbose(t)
	}
	return NewSynchronizer(testResolver(t), fetcher, opts), fetcher
}

func TestEnsureFresh_FanOutCounts(t *testing.T) {
	tests := []struct {
		name  string
		asset Asset
		want  int
	}{
		{"css all pulls every webfont", Asset{Version: "6.2.0", Style: StyleAll, Minified: true, Ext: ExtCSS}, 1 + 6},
		{"css solid pulls its webfonts", Asset{Version: "6.2.0", Style: StyleSolid, Minified: true, Ext: ExtCSS}, 1 + 2},
		{"css brands pulls its webfonts", Asset{Version: "6.2.0", Style: StyleBrands, Ext: ExtCSS}, 1 + 2},
		{"css core has no webfonts", Asset{Version: "6.2.0", Style: styleCore, Minified: true, Ext: ExtCSS}, 1},
		{"js never fans out", Asset{Version: "6.2.0", Style: StyleAll, Minified: true, Ext: ExtJS}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, fetcher := newTestSynchronizer(t, SyncOptions{})
			require.NoError(t, s.EnsureFresh(context.Background(), tt.asset))
			assert.Equal(t, tt.want, fetcher.count())
			assert.Equal(t, testCDN+"/6.2.0/"+tt.asset.Name(), fetcher.fetched()[0])
		})
	}
}

func TestEnsureFresh_Idempotent(t *testing.T) {
	s, fetcher := newTestSynchronizer(t, SyncOptions{})
	a := Asset{Version: "6.2.0", Style: StyleAll, Minified: true, Ext: ExtCSS}

	require.NoError(t, s.EnsureFresh(context.Background(), a))
	require.Equal(t, 7, fetcher.count())
	fetcher.reset()

	require.NoError(t, s.EnsureFresh(context.Background(), a))
	assert.Zero(t, fetcher.count())
}

func TestEnsureFresh_VersionMismatch(t *testing.T) {
	s, fetcher := newTestSynchronizer(t, SyncOptions{})
	a := Asset{Version: "6.2.0", Style: StyleRegular, Minified: true, Ext: ExtCSS}
	writeCached(t, s.Resolver(), a, "/*! Font Awesome Free 6.1.1 by @fontawesome */")

	require.NoError(t, s.EnsureFresh(context.Background(), a))
	assert.Equal(t, 1+2, fetcher.count())

	data, err := os.ReadFile(s.Resolver().Path(a))
	require.NoError(t, err)
	v, ok := ExtractVersion(data)
	assert.True(t, ok)
	assert.Equal(t, "6.2.0", v)
}

func TestEnsureFresh_MissingMarkerIsStale(t *testing.T) {
	s, fetcher := newTestSynchronizer(t, SyncOptions{})
	a := Asset{Version: "6.2.0", Style: StyleAll, Minified: true, Ext: ExtJS}
	writeCached(t, s.Resolver(), a, "console.log('no banner')")

	require.NoError(t, s.EnsureFresh(context.Background(), a))
	assert.Equal(t, 1, fetcher.count())
}

func TestEnsureFresh_FreshFileSkipsWebfonts(t *testing.T) {
	s, fetcher := newTestSynchronizer(t, SyncOptions{})
	a := Asset{Version: "6.2.0", Style: StyleAll, Minified: true, Ext: ExtCSS}
	writeCached(t, s.Resolver(), a, "/*! Font Awesome Free 6.2.0 by @fontawesome */")

	require.NoError(t, s.EnsureFresh(context.Background(), a))
	assert.Zero(t, fetcher.count())
	assert.Equal(t, []string{"css/all.min.css"}, cachedFiles(t, s.Resolver().StaticRoot))
}

func TestEnsureFresh_LedgerKeepsWebfontsFresh(t *testing.T) {
	store := kvs.NewMemoryStore("")
	t.Cleanup(func() { _ = store.Close() })
	l := ledger.New(store)

	s, fetcher := newTestSynchronizer(t, SyncOptions{Ledger: l})
	ctx := context.Background()
	a := Asset{Version: "6.2.0", Style: StyleAll, Minified: true, Ext: ExtCSS}

	require.NoError(t, s.EnsureFresh(ctx, a))
	require.Equal(t, 7, fetcher.count())

	entry, err := l.Lookup(ctx, "webfonts/fa-solid-900.woff2")
	require.NoError(t, err)
	content := fakeContent(testCDN + "/6.2.0/webfonts/fa-solid-900.woff2")
	assert.Equal(t, "6.2.0", entry.Version)
	assert.Equal(t, ComputeIntegrity(content), entry.Integrity)
	assert.Equal(t, int64(len(content)), entry.Size)
	assert.Equal(t, testCDN+"/6.2.0/webfonts/fa-solid-900.woff2", entry.URL)
	assert.False(t, entry.SyncedAt.IsZero())

	// a stale stylesheet refetches, while the recorded webfonts stay
	require.NoError(t, os.Remove(s.Resolver().Path(a)))
	fetcher.reset()
	require.NoError(t, s.EnsureFresh(ctx, a))
	assert.Equal(t, []string{testCDN + "/6.2.0/css/all.min.css"}, fetcher.fetched())

	// a version bump refetches everything
	fetcher.reset()
	b := a
	b.Version = "6.4.2"
	require.NoError(t, s.EnsureFresh(ctx, b))
	assert.Equal(t, 7, fetcher.count())
}

func TestEnsureFresh_WithoutLedgerWebfontsRefetch(t *testing.T) {
	s, fetcher := newTestSynchronizer(t, SyncOptions{})
	a := Asset{Version: "6.2.0", Style: StyleSolid, Minified: true, Ext: ExtCSS}

	require.NoError(t, s.EnsureFresh(context.Background(), a))
	require.NoError(t, os.Remove(s.Resolver().Path(a)))
	fetcher.reset()

	require.NoError(t, s.EnsureFresh(context.Background(), a))
	assert.Equal(t, 1+2, fetcher.count())
}

func TestEnsureFresh_PrimaryFailure(t *testing.T) {
	s, fetcher := newTestSynchronizer(t, SyncOptions{})
	a := Asset{Version: "6.2.0", Style: StyleSolid, Minified: true, Ext: ExtCSS}
	fetcher.fail[testCDN+"/6.2.0/css/solid.min.css"] = ErrFetch

	err := s.EnsureFresh(context.Background(), a)
	assert.ErrorIs(t, err, ErrFetch)
	assert.Equal(t, 1, fetcher.count(), "no retries and no webfonts after a failed primary")
	assert.Empty(t, cachedFiles(t, s.Resolver().StaticRoot))
}

func TestEnsureFresh_WebfontFailureKeepsPrimary(t *testing.T) {
	s, fetcher := newTestSynchronizer(t, SyncOptions{})
	a := Asset{Version: "6.2.0", Style: StyleSolid, Minified: true, Ext: ExtCSS}
	boom := errors.New("connection reset")
	fetcher.fail[testCDN+"/6.2.0/webfonts/fa-solid-900.ttf"] = boom

	err := s.EnsureFresh(context.Background(), a)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"css/solid.min.css"}, cachedFiles(t, s.Resolver().StaticRoot))
}

func TestEnsureFresh_VerifyIntegrity(t *testing.T) {
	s, fetcher := newTestSynchronizer(t, SyncOptions{VerifyIntegrity: true})

	known := Asset{Version: DefaultVersion, Style: StyleSolid, Minified: true, Ext: ExtJS}
	err := s.EnsureFresh(context.Background(), known)
	assert.ErrorIs(t, err, ErrIntegrityMismatch)
	assert.Equal(t, 1, fetcher.count())
	assert.Empty(t, cachedFiles(t, s.Resolver().StaticRoot))

	// no digest is known for other versions, so nothing is checked
	unknown := known
	unknown.Version = "6.4.2"
	require.NoError(t, s.EnsureFresh(context.Background(), unknown))
}

func TestEnsureFresh_ConcurrentCallsShareOneFetch(t *testing.T) {
	s, fetcher := newTestSynchronizer(t, SyncOptions{})
	fetcher.block = make(chan struct{})
	a := Asset{Version: "6.2.0", Style: StyleBrands, Minified: true, Ext: ExtJS}

	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- s.EnsureFresh(context.Background(), a)
		}()
	}
	close(fetcher.block)
	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}
	assert.Equal(t, 1, fetcher.count())
}

func TestEnsureFresh_NoTemporaryFilesLeft(t *testing.T) {
	s, fetcher := newTestSynchronizer(t, SyncOptions{})
	fetcher.fail[testCDN+"/6.2.0/webfonts/fa-brands-400.woff2"] = ErrFetch

	_ = s.EnsureFresh(context.Background(), Asset{Version: "6.2.0", Style: StyleAll, Minified: true, Ext: ExtCSS})
	require.NoError(t, s.EnsureFresh(context.Background(), Asset{Version: "6.2.0", Style: StyleAll, Ext: ExtJS}))

	for _, f := range cachedFiles(t, s.Resolver().StaticRoot) {
		assert.False(t, strings.Contains(f, ".tmp-"), f)
	}
}

func TestEnsureFresh_CancelledContext(t *testing.T) {
	s, fetcher := newTestSynchronizer(t, SyncOptions{})
	fetcher.block = make(chan struct{})
	defer close(fetcher.block)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := s.EnsureFresh(ctx, Asset{Version: "6.2.0", Style: StyleAll, Ext: ExtJS})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, fetcher.waiting.Load())
}

func TestEnsureFresh_CancelledCallerDoesNotAbortSharedDownload(t *testing.T) {
	s, fetcher := newTestSynchronizer(t, SyncOptions{})
	fetcher.block = make(chan struct{})
	a := Asset{Version: "6.2.0", Style: StyleSolid, Minified: true, Ext: ExtJS}

	ctx, cancel := context.WithCancel(context.Background())
	first := make(chan error, 1)
	go func() { first <- s.EnsureFresh(ctx, a) }()
	require.Eventually(t, func() bool { return fetcher.waiting.Load() == 1 }, 2*time.Second, 5*time.Millisecond)

	second := make(chan error, 1)
	go func() { second <- s.EnsureFresh(context.Background(), a) }()

	cancel()
	assert.ErrorIs(t, <-first, context.Canceled)

	close(fetcher.block)
	require.NoError(t, <-second)
	assert.Equal(t, 1, fetcher.count())
	assert.FileExists(t, s.Resolver().Path(a))
}

func TestEnsureFresh_MarkerBeyondFileHead(t *testing.T) {
	s, fetcher := newTestSynchronizer(t, SyncOptions{})
	a := Asset{Version: "6.2.0", Style: StyleSolid, Minified: true, Ext: ExtCSS}
	padding := strings.Repeat(" ", 64<<10)
	writeCached(t, s.Resolver(), a, padding+"/*! Font Awesome Free 6.2.0 by @fontawesome */")

	require.NoError(t, s.EnsureFresh(context.Background(), a))
	assert.Zero(t, fetcher.count())
}

func TestEnsureFresh_VerifyIntegrityCoreStylesheet(t *testing.T) {
	s, fetcher := newTestSynchronizer(t, SyncOptions{VerifyIntegrity: true})

	core := Asset{Version: DefaultVersion, Style: styleCore, Minified: true, Ext: ExtCSS}
	require.NoError(t, s.EnsureFresh(context.Background(), core))
	assert.Equal(t, 1, fetcher.count())
	assert.FileExists(t, s.Resolver().Path(core))
}

package fontawesome

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/ideamans/fontawesome/pkg/ledger"
	"github.com/ideamans/fontawesome/pkg/shared/logging"
)

// SyncOptions configures a Synchronizer.
type SyncOptions struct {
	// Ledger records every write and answers freshness for files without a
	// version banner. Without one such files are always refetched.
	Ledger *ledger.Ledger
	// VerifyIntegrity checks downloads against KnownIntegrity before they
	// are written.
	VerifyIntegrity bool
	Logger          logging.Logger
}

// Synchronizer keeps the local cache in step with the requested versions.
type Synchronizer struct {
	resolver Resolver
	fetcher  Fetcher
	ledger   *ledger.Ledger
	verify   bool
	logger   logging.Logger
	now      func() time.Time
	flights  singleflight.Group
}

// NewSynchronizer creates a Synchronizer writing below resolver.StaticRoot
// and downloading with fetcher.
func NewSynchronizer(resolver Resolver, fetcher Fetcher, opts SyncOptions) *Synchronizer {
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewDiscardLogger()
	}
	return &Synchronizer{
		resolver: resolver,
		fetcher:  fetcher,
		ledger:   opts.Ledger,
		verify:   opts.VerifyIntegrity,
		logger:   logger.WithModule("sync"),
		now:      time.Now,
	}
}

// Resolver returns the resolver the synchronizer writes with.
func (s *Synchronizer) Resolver() Resolver { return s.resolver }

// EnsureFresh makes sure the local copy of a exists at a.Version. A stale or
// missing stylesheet also pulls the webfonts it references. Concurrent calls
// for the same file share one download.
func (s *Synchronizer) EnsureFresh(ctx context.Context, a Asset) error {
	_, err := s.ensure(ctx, a)
	return err
}

// ensure synchronizes a and reports whether it had to be downloaded. The
// shared download runs detached from any one caller's cancellation; a
// cancelled caller stops waiting while the others still get the result.
func (s *Synchronizer) ensure(ctx context.Context, a Asset) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	path := s.resolver.Path(a)
	flightCtx := context.WithoutCancel(ctx)
	ch := s.flights.DoChan(path, func() (interface{}, error) {
		fresh, err := s.fresh(flightCtx, a, path)
		if err != nil {
			return false, err
		}
		if fresh {
			s.logger.Debug("Asset is up to date", "path", path, "version", a.Version)
			return false, nil
		}
		if err := s.download(flightCtx, a, path); err != nil {
			return false, err
		}
		if a.Ext == ExtCSS && a.Kind != KindWebfonts {
			if err := s.syncWebfonts(flightCtx, a); err != nil {
				return true, err
			}
		}
		return true, nil
	})

	select {
	case <-ctx.Done():
		return false, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return false, res.Err
		}
		return res.Val.(bool), nil
	}
}

// syncWebfonts fetches the font files the stylesheet a refers to.
func (s *Synchronizer) syncWebfonts(ctx context.Context, a Asset) error {
	for _, style := range a.Style.webfontStyles() {
		for _, ext := range webfontExtensions {
			if _, err := s.ensure(ctx, webfontAsset(a.Version, style, ext)); err != nil {
				return err
			}
		}
	}
	return nil
}

// fresh reports whether the file at path already holds a.Version. The banner
// comment decides when present; otherwise the ledger does.
func (s *Synchronizer) fresh(ctx context.Context, a Asset, path string) (bool, error) {
	content, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("fontawesome: failed to read %s: %w", path, err)
	}
	if version, ok := ExtractVersion(content); ok {
		return version == a.Version, nil
	}

	if s.ledger == nil {
		return false, nil
	}
	entry, err := s.ledger.Lookup(ctx, a.Name())
	if err != nil {
		if !errors.Is(err, ledger.ErrNotFound) {
			s.logger.Warn("Ledger lookup failed, treating asset as stale", "path", path, "error", err)
		}
		return false, nil
	}
	return entry.Version == a.Version && entry.Size == int64(len(content)), nil
}

// download fetches a from the CDN and replaces the file at path.
func (s *Synchronizer) download(ctx context.Context, a Asset, path string) error {
	url := s.resolver.URL(a, false)
	s.logger.Info("Fetching asset", "url", url)

	data, err := s.fetcher.Fetch(ctx, url)
	if err != nil {
		return err
	}

	if s.verify {
		if want, ok := KnownIntegrity(a); ok && !matchesIntegrity(data, want) {
			return fmt.Errorf("%w: %s: want %s, got %s", ErrIntegrityMismatch, url, want, ComputeIntegrity(data))
		}
	}

	if err := writeFileAtomic(path, data); err != nil {
		return fmt.Errorf("fontawesome: failed to write %s: %w", path, err)
	}

	if s.ledger != nil {
		entry := ledger.Entry{
			Path:      a.Name(),
			URL:       url,
			Version:   a.Version,
			Integrity: ComputeIntegrity(data),
			Size:      int64(len(data)),
			SyncedAt:  s.now().UTC(),
		}
		if err := s.ledger.Record(ctx, entry); err != nil {
			s.logger.Warn("Failed to record synced asset", "path", path, "error", err)
		}
	}
	return nil
}

// writeFileAtomic writes data next to path and renames it into place, so
// readers never observe a partial file.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, ".tmp-"+filepath.Base(path)+"-")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())
	defer tmp.Close()

	if _, err := tmp.Write(data); err != nil {
		return err
	}
	if err := tmp.Chmod(0o644); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

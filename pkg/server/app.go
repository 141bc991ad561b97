package server

import (
	"fmt"

	"github.com/ideamans/fontawesome/pkg/config"
	"github.com/ideamans/fontawesome/pkg/fontawesome"
	"github.com/ideamans/fontawesome/pkg/ledger"
	"github.com/ideamans/fontawesome/pkg/shared/kvs"
	"github.com/ideamans/fontawesome/pkg/shared/logging"
)

// App holds the components built from one configuration.
type App struct {
	Config       *config.Config
	Store        kvs.Store
	Ledger       *ledger.Ledger
	Synchronizer *fontawesome.Synchronizer
	FontAwesome  *fontawesome.FontAwesome
}

// NewApp wires the ledger store, synchronizer and markup renderer for cfg.
// A nil fetcher downloads over HTTP with the configured timeout.
func NewApp(cfg *config.Config, fetcher fontawesome.Fetcher, logger logging.Logger) (*App, error) {
	defaults, err := cfg.FontAwesome.LoadOptions()
	if err != nil {
		return nil, err
	}
	if fetcher == nil {
		timeout, err := cfg.FontAwesome.GetFetchTimeout()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", config.ErrInvalidFetchTimeout, err)
		}
		fetcher = fontawesome.NewHTTPFetcher(nil, timeout)
	}

	store, err := kvs.New(cfg.KVS)
	if err != nil {
		return nil, fmt.Errorf("failed to open ledger store: %w", err)
	}
	l := ledger.New(store)

	resolver := cfg.FontAwesome.Resolver()
	syncer := fontawesome.NewSynchronizer(resolver, fetcher, fontawesome.SyncOptions{
		Ledger:          l,
		VerifyIntegrity: cfg.FontAwesome.VerifyIntegrity,
		Logger:          logger,
	})
	fa := fontawesome.New(fontawesome.Config{
		ServeLocal: cfg.FontAwesome.ServeLocal,
		Resolver:   resolver,
		Defaults:   defaults,
	}, syncer)

	logger.Info("Font Awesome initialized",
		"version", defaults.Version,
		"style", defaults.Style,
		"serve_local", cfg.FontAwesome.ServeLocal,
		"static_root", resolver.StaticRoot,
		"kvs", cfg.KVS.Type)

	return &App{
		Config:       cfg,
		Store:        store,
		Ledger:       l,
		Synchronizer: syncer,
		FontAwesome:  fa,
	}, nil
}

// Close releases the ledger store.
func (a *App) Close() error {
	return a.Store.Close()
}

// Package server runs a demo web host for the fontawesome package: an index
// page rendered with the template functions, the local asset cache and
// configuration hot reload.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ideamans/fontawesome/pkg/config"
	"github.com/ideamans/fontawesome/pkg/fontawesome"
	"github.com/ideamans/fontawesome/pkg/shared/filewatcher"
	"github.com/ideamans/fontawesome/pkg/shared/logging"
)

// Config represents the configuration for running the server
type Config struct {
	ConfigPath string
	Host       string // From command-line flag
	Port       int    // From command-line flag
	HostSet    bool   // Whether host was explicitly set via flag
	PortSet    bool   // Whether port was explicitly set via flag
	Logger     logging.Logger
	Version    string
	// Fetcher overrides the HTTP downloader, mainly for tests.
	Fetcher fontawesome.Fetcher
}

// shutdownTimeout bounds graceful shutdown.
const shutdownTimeout = 10 * time.Second

// LoadConfig loads path, falling back to defaults when path is empty or
// does not exist.
func LoadConfig(path string, logger logging.Logger) (*config.Config, bool, error) {
	if path == "" {
		logger.Warn("No config file specified, using default configuration")
		return config.Default(), false, nil
	}
	cfg, err := config.NewFileLoader(path).Load()
	if errors.Is(err, config.ErrConfigFileNotFound) {
		logger.Warn("Config file not found, using default configuration", "path", path)
		return config.Default(), false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return cfg, true, nil
}

// Run starts the server and blocks until ctx is cancelled, SIGINT/SIGTERM
// arrives or the listener fails.
func Run(ctx context.Context, cfg Config) error {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.NewSimpleLogger("main", logging.LevelInfo, true)
	}

	logger.Info("Starting fontawesome server", "version", cfg.Version)

	appConfig, fromFile, err := LoadConfig(cfg.ConfigPath, logger)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	resolveServerConfig(&appConfig.Server, cfg, logger)

	app, err := NewApp(appConfig, cfg.Fetcher, logger)
	if err != nil {
		return err
	}
	defer func() { _ = app.Close() }()

	handler, err := NewHandler(app.FontAwesome, logger)
	if err != nil {
		return fmt.Errorf("failed to build handler: %w", err)
	}

	sigCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Hot reload only makes sense with a file to watch
	if fromFile {
		reloader, err := NewReloader(config.NewFileLoader(cfg.ConfigPath), app.FontAwesome, appConfig, logger)
		if err != nil {
			return err
		}
		watcher, err := filewatcher.NewWatcher(cfg.ConfigPath, 100*time.Millisecond)
		if err != nil {
			return fmt.Errorf("failed to create file watcher: %w", err)
		}
		defer func() { _ = watcher.Close() }()
		watcher.AddListener(reloader)

		go func() {
			if err := watcher.Start(sigCtx); err != nil && !errors.Is(err, context.Canceled) {
				logger.Error("File watcher error", "error", err)
			}
		}()
		logger.Info("File watcher initialized for hot reload", "config_file", cfg.ConfigPath)
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(stop)

	addr := appConfig.Server.Addr()
	server := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Info("Starting server", "addr", addr)

	errChan := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("server error: %w", err)
			return
		}
		errChan <- nil
	}()

	select {
	case <-stop:
		logger.Info("Shutdown signal received, stopping server...")
	case <-ctx.Done():
		logger.Info("Context cancelled, stopping server...")
	case err := <-errChan:
		if err != nil {
			logger.Error("Server stopped with error", "error", err)
		}
		return err
	}

	cancel()
	handler.SetDraining()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}
	if err := <-errChan; err != nil {
		logger.Error("Server stopped with error", "error", err)
		return err
	}

	logger.Info("Server stopped successfully")
	return nil
}

// resolveServerConfig applies the command-line host and port.
// Priority: Command-line flags > Config file > Default values
func resolveServerConfig(server *config.ServerConfig, cfg Config, logger logging.Logger) {
	if cfg.HostSet {
		server.Host = cfg.Host
		logger.Info("Using host from command-line flag", "host", server.Host)
	}
	if cfg.PortSet {
		server.Port = cfg.Port
		logger.Info("Using port from command-line flag", "port", server.Port)
	}
}

package server

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/ideamans/fontawesome/pkg/config"
	"github.com/ideamans/fontawesome/pkg/fontawesome"
	"github.com/ideamans/fontawesome/pkg/shared/filewatcher"
	"github.com/ideamans/fontawesome/pkg/shared/logging"
)

// Reloader applies configuration file changes to a running FontAwesome.
// Only the serving mode and the template defaults change in place; other
// settings are reported and take effect after a restart.
type Reloader struct {
	loader config.Loader
	fa     *fontawesome.FontAwesome
	logger logging.Logger

	mu       sync.Mutex
	current  *config.Config
	lastHash string
}

// NewReloader creates a Reloader starting from current.
func NewReloader(loader config.Loader, fa *fontawesome.FontAwesome, current *config.Config, logger logging.Logger) (*Reloader, error) {
	hash, err := calculateConfigHash(current)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate initial config hash: %w", err)
	}
	return &Reloader{
		loader:   loader,
		fa:       fa,
		logger:   logger.WithModule("reload"),
		current:  current,
		lastHash: hash,
	}, nil
}

// OnFileChange implements filewatcher.ChangeListener.
func (r *Reloader) OnFileChange(event filewatcher.ChangeEvent) {
	if event.Error != nil {
		r.logger.Error("File watcher error", "error", event.Error)
		return
	}
	r.logger.Debug("Config file changed", "path", event.Path)
	r.Reload()
}

// Reload reads the configuration again and applies what changed.
// Invalid configurations are logged and ignored.
func (r *Reloader) Reload() {
	r.mu.Lock()
	defer r.mu.Unlock()

	newConfig, err := r.loader.Load()
	if err != nil {
		r.logger.Error("Failed to load configuration, keeping the previous one", "error", err)
		return
	}

	newHash, err := calculateConfigHash(newConfig)
	if err != nil {
		r.logger.Error("Failed to calculate config hash", "error", err)
		return
	}
	if newHash == r.lastHash {
		r.logger.Debug("Configuration unchanged")
		return
	}

	defaults, err := newConfig.FontAwesome.LoadOptions()
	if err != nil {
		r.logger.Error("Invalid Font Awesome settings, keeping the previous ones", "error", err)
		return
	}

	for _, key := range restartRequired(r.current, newConfig) {
		r.logger.Warn("Setting changed but requires a restart", "key", key)
	}

	r.fa.Reconfigure(newConfig.FontAwesome.ServeLocal, defaults)
	r.current = newConfig
	r.lastHash = newHash
	r.logger.Info("Configuration reloaded",
		"serve_local", newConfig.FontAwesome.ServeLocal,
		"version", defaults.Version,
		"style", defaults.Style)
}

// restartRequired lists the settings that differ between prev and next but
// are fixed for the lifetime of the process.
func restartRequired(prev, next *config.Config) []string {
	var keys []string
	of, nf := prev.FontAwesome, next.FontAwesome
	if of.StaticRoot != nf.StaticRoot {
		keys = append(keys, "fontawesome.static_root")
	}
	if of.URLPrefix != nf.URLPrefix {
		keys = append(keys, "fontawesome.url_prefix")
	}
	if of.CDNBase != nf.CDNBase {
		keys = append(keys, "fontawesome.cdn_base")
	}
	if of.FetchTimeout != nf.FetchTimeout {
		keys = append(keys, "fontawesome.fetch_timeout")
	}
	if of.VerifyIntegrity != nf.VerifyIntegrity {
		keys = append(keys, "fontawesome.verify_integrity")
	}
	if prev.Server != next.Server {
		keys = append(keys, "server")
	}
	if prev.KVS != next.KVS {
		keys = append(keys, "kvs")
	}
	return keys
}

// calculateConfigHash calculates a hash of the configuration for change detection.
func calculateConfigHash(cfg *config.Config) (string, error) {
	data, err := json.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("failed to marshal config: %w", err)
	}
	hash := sha256.Sum256(data)
	return fmt.Sprintf("%x", hash), nil
}

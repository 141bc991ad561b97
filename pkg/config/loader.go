package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ideamans/fontawesome/pkg/fontawesome"
	envconfig "github.com/ideamans/fontawesome/pkg/shared/config"
)

// Loader is an interface for loading configuration
type Loader interface {
	Load() (*Config, error)
}

// FileLoader loads configuration from a YAML or JSON file
type FileLoader struct {
	path string
}

// NewFileLoader creates a new FileLoader
func NewFileLoader(path string) *FileLoader {
	return &FileLoader{path: path}
}

// Path returns the file the loader reads
func (l *FileLoader) Path() string { return l.path }

// Load reads and parses the configuration file.
// Format is detected from the extension (.yaml, .yml or .json) and
// ${VAR} / ${VAR:-default} references are expanded before parsing.
func (l *FileLoader) Load() (*Config, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigFileNotFound, l.path)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	data = envconfig.ExpandEnvBytes(data)

	var cfg Config
	ext := strings.ToLower(filepath.Ext(l.path))

	switch ext {
	case ".json":
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse JSON config file: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse YAML config file: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config file format: %s (supported: .yaml, .yml, .json)", ext)
	}

	ApplyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// Default returns the configuration used when no file is given
func Default() *Config {
	var cfg Config
	ApplyDefaults(&cfg)
	return &cfg
}

// ApplyDefaults sets default values for optional fields
func ApplyDefaults(cfg *Config) {
	fa := &cfg.FontAwesome
	if fa.Version == "" {
		fa.Version = fontawesome.DefaultVersion
	}
	if fa.Style == "" {
		fa.Style = fontawesome.StyleAll.String()
	}
	if fa.URLPrefix == "" {
		fa.URLPrefix = fontawesome.DefaultURLPrefix
	}
	if fa.CDNBase == "" {
		fa.CDNBase = fontawesome.DefaultCDNBase
	}
	if fa.FetchTimeout == "" {
		fa.FetchTimeout = fontawesome.DefaultFetchTimeout.String()
	}
	if fa.StaticRoot == "" {
		fa.StaticRoot = defaultStaticRoot()
	}

	if cfg.Server.Host == "" {
		cfg.Server.Host = "0.0.0.0"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 4180
	}

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}

	if cfg.KVS.Type == "" {
		cfg.KVS.Type = "memory"
	}
}

// defaultStaticRoot places the cache under the user cache directory
func defaultStaticRoot() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "fontawesome")
}

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ideamans/fontawesome/pkg/fontawesome"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	return path
}

func TestFileLoader_Load(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		content  string
		wantErr  error
		validate func(*testing.T, *Config)
	}{
		{
			name: "valid yaml config",
			file: "config.yaml",
			content: `
fontawesome:
  version: "6.4.2"
  style: solid
  minified: false
  use_css: true
  serve_local: true
  static_root: /srv/fa
  url_prefix: /assets/fa
  fetch_timeout: 5s
  verify_integrity: true

server:
  host: 127.0.0.1
  port: 8080

logging:
  level: debug
  color: true

kvs:
  type: leveldb
  leveldb:
    path: /var/lib/fa-ledger
`,
			validate: func(t *testing.T, cfg *Config) {
				fa := cfg.FontAwesome
				if fa.Version != "6.4.2" {
					t.Errorf("FontAwesome.Version = %s, want 6.4.2", fa.Version)
				}
				if fa.IsMinified() {
					t.Error("FontAwesome.IsMinified() = true, want false")
				}
				if !fa.ServeLocal || !fa.UseCSS || !fa.VerifyIntegrity {
					t.Errorf("flags not parsed: %+v", fa)
				}
				if d, _ := fa.GetFetchTimeout(); d != 5*time.Second {
					t.Errorf("GetFetchTimeout() = %v, want 5s", d)
				}
				if fa.CDNBase != fontawesome.DefaultCDNBase {
					t.Errorf("CDNBase = %s, want default", fa.CDNBase)
				}
				if cfg.Server.Addr() != "127.0.0.1:8080" {
					t.Errorf("Server.Addr() = %s, want 127.0.0.1:8080", cfg.Server.Addr())
				}
				if cfg.KVS.LevelDB.Path != "/var/lib/fa-ledger" {
					t.Errorf("KVS.LevelDB.Path = %s", cfg.KVS.LevelDB.Path)
				}
			},
		},
		{
			name:    "valid json config",
			file:    "config.json",
			content: `{"fontawesome": {"style": "brands"}, "server": {"port": 9000}}`,
			validate: func(t *testing.T, cfg *Config) {
				if cfg.FontAwesome.Style != "brands" {
					t.Errorf("Style = %s, want brands", cfg.FontAwesome.Style)
				}
				if cfg.Server.Port != 9000 {
					t.Errorf("Server.Port = %d, want 9000", cfg.Server.Port)
				}
			},
		},
		{
			name:    "empty file uses defaults",
			file:    "config.yml",
			content: ``,
			validate: func(t *testing.T, cfg *Config) {
				if cfg.FontAwesome.Version != fontawesome.DefaultVersion {
					t.Errorf("Version = %s, want %s", cfg.FontAwesome.Version, fontawesome.DefaultVersion)
				}
				if cfg.FontAwesome.Style != "all" {
					t.Errorf("Style = %s, want all", cfg.FontAwesome.Style)
				}
				if !cfg.FontAwesome.IsMinified() {
					t.Error("IsMinified() = false, want true")
				}
				if cfg.FontAwesome.ServeLocal {
					t.Error("ServeLocal = true, want false")
				}
				if cfg.FontAwesome.URLPrefix != "/font_awesome/static" {
					t.Errorf("URLPrefix = %s", cfg.FontAwesome.URLPrefix)
				}
				if cfg.FontAwesome.StaticRoot == "" {
					t.Error("StaticRoot should default to a cache directory")
				}
				if cfg.Server.Addr() != "0.0.0.0:4180" {
					t.Errorf("Server.Addr() = %s", cfg.Server.Addr())
				}
				if cfg.Logging.Level != "info" {
					t.Errorf("Logging.Level = %s, want info", cfg.Logging.Level)
				}
				if cfg.KVS.Type != "memory" {
					t.Errorf("KVS.Type = %s, want memory", cfg.KVS.Type)
				}
			},
		},
		{
			name:    "invalid style",
			file:    "config.yaml",
			content: "fontawesome:\n  style: duotone\n",
			wantErr: fontawesome.ErrInvalidStyle,
		},
		{
			name:    "invalid version",
			file:    "config.yaml",
			content: "fontawesome:\n  version: latest\n",
			wantErr: fontawesome.ErrInvalidVersion,
		},
		{
			name:    "invalid fetch timeout",
			file:    "config.yaml",
			content: "fontawesome:\n  fetch_timeout: soon\n",
			wantErr: ErrInvalidFetchTimeout,
		},
		{
			name:    "redis without address",
			file:    "config.yaml",
			content: "kvs:\n  type: redis\n",
			wantErr: ErrRedisAddrRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := NewFileLoader(writeConfig(t, tt.file, tt.content)).Load()
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Load() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Load() unexpected error: %v", err)
			}
			tt.validate(t, cfg)
		})
	}
}

func TestFileLoader_ExpandsEnv(t *testing.T) {
	t.Setenv("FA_TEST_STYLE", "regular")
	t.Setenv("FA_TEST_ROOT", "/tmp/fa-env")

	path := writeConfig(t, "config.yaml", `
fontawesome:
  style: ${FA_TEST_STYLE}
  static_root: ${FA_TEST_ROOT}
  version: ${FA_TEST_VERSION:-6.1.2}
`)
	cfg, err := NewFileLoader(path).Load()
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if cfg.FontAwesome.Style != "regular" {
		t.Errorf("Style = %s, want regular", cfg.FontAwesome.Style)
	}
	if cfg.FontAwesome.StaticRoot != "/tmp/fa-env" {
		t.Errorf("StaticRoot = %s, want /tmp/fa-env", cfg.FontAwesome.StaticRoot)
	}
	if cfg.FontAwesome.Version != "6.1.2" {
		t.Errorf("Version = %s, want 6.1.2", cfg.FontAwesome.Version)
	}
}

func TestFileLoader_FileNotFound(t *testing.T) {
	_, err := NewFileLoader(filepath.Join(t.TempDir(), "missing.yaml")).Load()
	if !errors.Is(err, ErrConfigFileNotFound) {
		t.Errorf("Load() error = %v, want ErrConfigFileNotFound", err)
	}
}

func TestFileLoader_UnsupportedFormat(t *testing.T) {
	_, err := NewFileLoader(writeConfig(t, "config.toml", "x = 1")).Load()
	if err == nil {
		t.Error("Load() expected error for .toml file")
	}
}

func TestFileLoader_MalformedYAML(t *testing.T) {
	_, err := NewFileLoader(writeConfig(t, "config.yaml", "fontawesome: [unterminated")).Load()
	if err == nil {
		t.Error("Load() expected error for malformed YAML")
	}
}

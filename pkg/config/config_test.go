package config

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/ideamans/fontawesome/pkg/fontawesome"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{name: "defaults are valid", mutate: func(*Config) {}},
		{
			name:    "bad style",
			mutate:  func(c *Config) { c.FontAwesome.Style = "fontawesome" },
			wantErr: fontawesome.ErrInvalidStyle,
		},
		{
			name:    "pre-release version",
			mutate:  func(c *Config) { c.FontAwesome.Version = "6.2.0-beta1" },
			wantErr: fontawesome.ErrInvalidVersion,
		},
		{
			name:    "negative fetch timeout",
			mutate:  func(c *Config) { c.FontAwesome.FetchTimeout = "-1s" },
			wantErr: ErrInvalidFetchTimeout,
		},
		{
			name:    "relative url prefix",
			mutate:  func(c *Config) { c.FontAwesome.URLPrefix = "static/fa" },
			wantErr: ErrInvalidURLPrefix,
		},
		{
			name:    "empty static root",
			mutate:  func(c *Config) { c.FontAwesome.StaticRoot = "" },
			wantErr: ErrStaticRootRequired,
		},
		{
			name:    "port out of range",
			mutate:  func(c *Config) { c.Server.Port = 70000 },
			wantErr: ErrInvalidPort,
		},
		{
			name:    "unknown kvs type",
			mutate:  func(c *Config) { c.KVS.Type = "etcd" },
			wantErr: ErrInvalidKVSType,
		},
		{
			name: "redis with address",
			mutate: func(c *Config) {
				c.KVS.Type = "redis"
				c.KVS.Redis.Addr = "localhost:6379"
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestFontAwesomeConfig_LoadOptions(t *testing.T) {
	minified := false
	fa := FontAwesomeConfig{Version: "6.4.2", Style: "Brands", Minified: &minified, UseCSS: true}

	opts, err := fa.LoadOptions()
	if err != nil {
		t.Fatalf("LoadOptions() unexpected error: %v", err)
	}
	want := fontawesome.LoadOptions{Version: "6.4.2", Style: fontawesome.StyleBrands, UseCSS: true}
	if opts != want {
		t.Errorf("LoadOptions() = %+v, want %+v", opts, want)
	}

	fa.Style = "thin"
	if _, err := fa.LoadOptions(); !errors.Is(err, fontawesome.ErrInvalidStyle) {
		t.Errorf("LoadOptions() error = %v, want ErrInvalidStyle", err)
	}
}

func TestFontAwesomeConfig_Resolver(t *testing.T) {
	fa := Default().FontAwesome
	fa.StaticRoot = filepath.Join("srv", "fa")

	r := fa.Resolver()
	a := fontawesome.Bundle("6.2.0", fontawesome.StyleSolid, true, fontawesome.ExtCSS)[0]
	if got := r.Path(a); got != filepath.Join("srv", "fa", "css", "solid.min.css") {
		t.Errorf("Path() = %s", got)
	}
	if got := r.URL(a, true); got != "/font_awesome/static/css/solid.min.css" {
		t.Errorf("URL(local) = %s", got)
	}
}

func TestLoggingConfig_NewLogger(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "fa.log")
	l := LoggingConfig{Level: "warn", File: &FileLoggingConfig{Path: logPath}}

	logger, err := l.NewLogger("fontawesome")
	if err != nil {
		t.Fatalf("NewLogger() unexpected error: %v", err)
	}
	defer logger.Close()
	logger.Warn("cache directory missing", "path", "/nowhere")
}

// Package config loads the application configuration from YAML or JSON.
package config

import (
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/ideamans/fontawesome/pkg/fontawesome"
	"github.com/ideamans/fontawesome/pkg/shared/kvs"
	"github.com/ideamans/fontawesome/pkg/shared/logging"
)

// Config represents the application configuration
type Config struct {
	FontAwesome FontAwesomeConfig `yaml:"fontawesome" json:"fontawesome"`
	Server      ServerConfig      `yaml:"server" json:"server"`
	Logging     LoggingConfig     `yaml:"logging" json:"logging"`
	KVS         kvs.Config        `yaml:"kvs" json:"kvs"`
}

// FontAwesomeConfig contains the markup defaults and the local cache settings
type FontAwesomeConfig struct {
	Version         string `yaml:"version" json:"version"`
	Style           string `yaml:"style" json:"style"`             // all, regular, solid or brands
	Minified        *bool  `yaml:"minified" json:"minified"`       // default: true
	UseCSS          bool   `yaml:"use_css" json:"use_css"`         // webfonts + CSS instead of SVG + JS
	ServeLocal      bool   `yaml:"serve_local" json:"serve_local"` // serve from StaticRoot instead of the CDN
	StaticRoot      string `yaml:"static_root" json:"static_root"`
	URLPrefix       string `yaml:"url_prefix" json:"url_prefix"`
	CDNBase         string `yaml:"cdn_base" json:"cdn_base"`
	FetchTimeout    string `yaml:"fetch_timeout" json:"fetch_timeout"` // e.g. "30s"
	VerifyIntegrity bool   `yaml:"verify_integrity" json:"verify_integrity"`
}

// IsMinified returns whether minified files are loaded
func (f FontAwesomeConfig) IsMinified() bool {
	return f.Minified == nil || *f.Minified
}

// GetFetchTimeout returns the download timeout as a time.Duration
func (f FontAwesomeConfig) GetFetchTimeout() (time.Duration, error) {
	if f.FetchTimeout == "" {
		return fontawesome.DefaultFetchTimeout, nil
	}
	return time.ParseDuration(f.FetchTimeout)
}

// Resolver returns the asset resolver for these settings
func (f FontAwesomeConfig) Resolver() fontawesome.Resolver {
	return fontawesome.Resolver{
		StaticRoot: f.StaticRoot,
		URLPrefix:  f.URLPrefix,
		CDNBase:    f.CDNBase,
	}
}

// LoadOptions returns the template defaults for these settings
func (f FontAwesomeConfig) LoadOptions() (fontawesome.LoadOptions, error) {
	style, err := fontawesome.ParseStyle(f.Style)
	if err != nil {
		return fontawesome.LoadOptions{}, err
	}
	return fontawesome.LoadOptions{
		Version:  f.Version,
		Style:    style,
		Minified: f.IsMinified(),
		UseCSS:   f.UseCSS,
	}, nil
}

// ServerConfig contains HTTP listener settings
type ServerConfig struct {
	Host string `yaml:"host" json:"host"`
	Port int    `yaml:"port" json:"port"`
}

// Addr returns the host:port the server listens on
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level string             `yaml:"level" json:"level"`
	Color bool               `yaml:"color" json:"color"`
	File  *FileLoggingConfig `yaml:"file" json:"file"` // Optional rotated log file
}

// FileLoggingConfig contains log file rotation settings
type FileLoggingConfig struct {
	Path       string `yaml:"path" json:"path"`
	MaxSizeMB  int    `yaml:"max_size_mb" json:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups" json:"max_backups"`
	MaxAge     int    `yaml:"max_age" json:"max_age"` // days
	Compress   bool   `yaml:"compress" json:"compress"`
}

// NewLogger builds the root logger described by these settings
func (l LoggingConfig) NewLogger(module string) (*logging.SimpleLogger, error) {
	var file *logging.FileRotationConfig
	if l.File != nil {
		file = &logging.FileRotationConfig{
			Path:       l.File.Path,
			MaxSizeMB:  l.File.MaxSizeMB,
			MaxBackups: l.File.MaxBackups,
			MaxAge:     l.File.MaxAge,
			Compress:   l.File.Compress,
		}
	}
	return logging.NewLoggerWithFile(module, logging.ParseLevel(l.Level), l.Color, file)
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	fa := c.FontAwesome
	if err := fontawesome.ValidateVersion(fa.Version); err != nil {
		return err
	}
	if _, err := fontawesome.ParseStyle(fa.Style); err != nil {
		return err
	}
	if d, err := fa.GetFetchTimeout(); err != nil || d <= 0 {
		return fmt.Errorf("%w: %q", ErrInvalidFetchTimeout, fa.FetchTimeout)
	}
	if fa.URLPrefix != "" && !strings.HasPrefix(fa.URLPrefix, "/") {
		return fmt.Errorf("%w: %q", ErrInvalidURLPrefix, fa.URLPrefix)
	}
	if fa.StaticRoot == "" {
		return ErrStaticRootRequired
	}

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("%w: %d", ErrInvalidPort, c.Server.Port)
	}

	switch c.KVS.Type {
	case "memory", "leveldb":
	case "redis":
		if c.KVS.Redis.Addr == "" {
			return ErrRedisAddrRequired
		}
	default:
		return fmt.Errorf("%w: %q", ErrInvalidKVSType, c.KVS.Type)
	}

	return nil
}

package fontawesome

import (
	"context"
	"fmt"
	"html"
	"html/template"
	"strings"
	"sync"
)

// LoadOptions selects the package files a page loads.
type LoadOptions struct {
	Version  string
	Style    Style
	Minified bool
	// UseCSS selects the webfont stylesheets instead of the SVG scripts.
	UseCSS bool

	// Integrity overrides for CDN markup. Empty values fall back to the
	// built-in digests, which only exist for DefaultVersion.
	CSSIntegrity     string
	CoreCSSIntegrity string
	JSIntegrity      string
	CoreJSIntegrity  string
}

// DefaultLoadOptions returns the options used when a template names none.
func DefaultLoadOptions() LoadOptions {
	return LoadOptions{
		Version:  DefaultVersion,
		Style:    StyleAll,
		Minified: true,
	}
}

// Validate checks the style and version before anything touches the network.
func (o LoadOptions) Validate() error {
	if !o.Style.Valid() {
		return fmt.Errorf("%w: got %q", ErrInvalidStyle, o.Style.String())
	}
	return ValidateVersion(o.Version)
}

// integrity returns the caller-supplied digest for the style file or, when
// core is set, for the core file.
func (o LoadOptions) integrity(ext Extension, core bool) string {
	switch {
	case ext == ExtCSS && core:
		return o.CoreCSSIntegrity
	case ext == ExtCSS:
		return o.CSSIntegrity
	case core:
		return o.CoreJSIntegrity
	default:
		return o.JSIntegrity
	}
}

// Config configures a FontAwesome.
type Config struct {
	// ServeLocal makes markup point at the local cache, synchronizing it on
	// every load. Otherwise markup points at the CDN.
	ServeLocal bool
	Resolver   Resolver
	// Defaults seed the options of the template functions.
	Defaults LoadOptions
}

// FontAwesome renders the markup pages embed.
type FontAwesome struct {
	resolver Resolver
	syncer   *Synchronizer

	mu         sync.RWMutex
	serveLocal bool
	defaults   LoadOptions
}

// New creates a FontAwesome. syncer may be nil when assets are only ever
// served from the CDN; it should write with the same Resolver as cfg.
func New(cfg Config, syncer *Synchronizer) *FontAwesome {
	defaults := cfg.Defaults
	if defaults == (LoadOptions{}) {
		defaults = DefaultLoadOptions()
	}
	return &FontAwesome{
		resolver:   cfg.Resolver,
		syncer:     syncer,
		serveLocal: cfg.ServeLocal,
		defaults:   defaults,
	}
}

// ServeLocal reports whether markup currently points at the local cache.
func (fa *FontAwesome) ServeLocal() bool {
	fa.mu.RLock()
	defer fa.mu.RUnlock()
	return fa.serveLocal
}

// Reconfigure swaps the serving mode and template defaults in place.
func (fa *FontAwesome) Reconfigure(serveLocal bool, defaults LoadOptions) {
	fa.mu.Lock()
	defer fa.mu.Unlock()
	fa.serveLocal = serveLocal
	fa.defaults = defaults
}

// Defaults returns the options template functions start from.
func (fa *FontAwesome) Defaults() LoadOptions {
	fa.mu.RLock()
	defer fa.mu.RUnlock()
	return fa.defaults
}

// Load emits the stylesheet markup when opts.UseCSS is set and the script
// markup otherwise.
func (fa *FontAwesome) Load(ctx context.Context, opts LoadOptions) (template.HTML, error) {
	if opts.UseCSS {
		return fa.LoadCSS(ctx, opts)
	}
	return fa.LoadJS(ctx, opts)
}

// LoadCSS emits <link> tags for the style and, unless the style is "all",
// the core stylesheet after it.
func (fa *FontAwesome) LoadCSS(ctx context.Context, opts LoadOptions) (template.HTML, error) {
	return fa.load(ctx, opts, ExtCSS)
}

// LoadJS emits <script> tags for the style and, unless the style is "all",
// the core script after it.
func (fa *FontAwesome) LoadJS(ctx context.Context, opts LoadOptions) (template.HTML, error) {
	return fa.load(ctx, opts, ExtJS)
}

func (fa *FontAwesome) load(ctx context.Context, opts LoadOptions, ext Extension) (template.HTML, error) {
	if err := opts.Validate(); err != nil {
		return "", err
	}
	serveLocal := fa.ServeLocal()
	if serveLocal && fa.syncer == nil {
		return "", ErrNotLocal
	}

	assets := Bundle(opts.Version, opts.Style, opts.Minified, ext)
	tags := make([]string, 0, len(assets))
	for i, a := range assets {
		if serveLocal {
			if err := fa.syncer.EnsureFresh(ctx, a); err != nil {
				return "", err
			}
			tags = append(tags, assetTag(ext, fa.resolver.URL(a, true), ""))
			continue
		}
		sri := opts.integrity(ext, i > 0)
		if sri == "" {
			sri, _ = KnownIntegrity(a)
		}
		tags = append(tags, assetTag(ext, fa.resolver.URL(a, false), sri))
	}
	return template.HTML(strings.Join(tags, "\n")), nil
}

// assetTag renders one <link> or <script> element. A non-empty sri adds the
// integrity and crossorigin attributes.
func assetTag(ext Extension, url, sri string) string {
	attrs := ""
	if sri != "" {
		attrs = fmt.Sprintf(` integrity="%s" crossorigin="anonymous"`, html.EscapeString(sri))
	}
	if ext == ExtCSS {
		return fmt.Sprintf(`<link rel="stylesheet" href="%s"%s />`, html.EscapeString(url), attrs)
	}
	return fmt.Sprintf(`<script defer src="%s"%s></script>`, html.EscapeString(url), attrs)
}

// Resolver returns the resolver markup URLs are built with.
func (fa *FontAwesome) Resolver() Resolver { return fa.resolver }

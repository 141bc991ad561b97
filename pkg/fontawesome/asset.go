package fontawesome

import (
	"path"
	"path/filepath"
	"strings"
)

// DefaultCDNBase is the public CDN the assets are mirrored from.
const DefaultCDNBase = "https://cdnjs.cloudflare.com/ajax/libs/font-awesome"

// DefaultURLPrefix is where the host serves the local cache.
const DefaultURLPrefix = "/font_awesome/static"

// Extension is the file extension of an asset.
type Extension string

const (
	ExtCSS   Extension = "css"
	ExtJS    Extension = "js"
	ExtTTF   Extension = "ttf"
	ExtWOFF2 Extension = "woff2"
)

// webfontExtensions are fetched for every style a stylesheet references.
var webfontExtensions = []Extension{ExtTTF, ExtWOFF2}

// Kind is the directory an asset lives in, both on the CDN and locally.
type Kind string

const (
	KindCSS      Kind = "css"
	KindJS       Kind = "js"
	KindWebfonts Kind = "webfonts"
)

// Asset describes one file of the icon package. It is a plain value: two
// assets with the same fields resolve to the same path and URL.
type Asset struct {
	Version  string
	Style    Style
	Minified bool
	Ext      Extension
	// Kind overrides the directory; empty means the extension name.
	Kind Kind
}

// webfontAsset returns the font file a stylesheet for style needs.
func webfontAsset(version string, style Style, ext Extension) Asset {
	return Asset{Version: version, Style: style, Ext: ext, Kind: KindWebfonts}
}

// kind returns the directory name of the asset.
func (a Asset) kind() string {
	if a.Kind != "" {
		return string(a.Kind)
	}
	return string(a.Ext)
}

// stem returns the file name without extension. Webfonts are named after the
// style's font family and never minified.
func (a Asset) stem() string {
	if a.Kind == KindWebfonts {
		family, _ := a.Style.WebfontFamily()
		return family
	}
	if a.Minified {
		return a.Style.String() + ".min"
	}
	return a.Style.String()
}

// Name returns the path of the asset relative to the cache root, using
// forward slashes.
func (a Asset) Name() string {
	return a.kind() + "/" + a.stem() + "." + string(a.Ext)
}

// Resolver maps assets to local paths and public URLs.
type Resolver struct {
	// StaticRoot is the directory holding the local cache.
	StaticRoot string
	// URLPrefix is the path the host serves StaticRoot under.
	URLPrefix string
	// CDNBase is the remote base URL; empty means DefaultCDNBase.
	CDNBase string
}

// Path returns the local file path of a.
func (r Resolver) Path(a Asset) string {
	return filepath.Join(r.StaticRoot, filepath.FromSlash(a.Name()))
}

// URL returns the public URL of a: the local static URL when serveLocal is
// set, the CDN URL otherwise.
func (r Resolver) URL(a Asset, serveLocal bool) string {
	if serveLocal {
		return path.Join(r.Prefix(), a.Name())
	}
	base := r.CDNBase
	if base == "" {
		base = DefaultCDNBase
	}
	return strings.TrimSuffix(base, "/") + "/" + a.Version + "/" + a.Name()
}

// Resolve returns both the local path and the URL of a.
func (r Resolver) Resolve(a Asset, serveLocal bool) (string, string) {
	return r.Path(a), r.URL(a, serveLocal)
}

// Bundle returns the assets a page needs for style: the style's own file,
// followed by the core layout file unless style is StyleAll, which already
// contains it.
func Bundle(version string, style Style, minified bool, ext Extension) []Asset {
	assets := []Asset{{Version: version, Style: style, Minified: minified, Ext: ext}}
	if style != StyleAll {
		assets = append(assets, Asset{Version: version, Style: styleCore, Minified: minified, Ext: ext})
	}
	return assets
}

// Prefix returns the cleaned URL path the local cache is served under.
func (r Resolver) Prefix() string {
	prefix := r.URLPrefix
	if prefix == "" {
		prefix = DefaultURLPrefix
	}
	return path.Join("/", prefix)
}

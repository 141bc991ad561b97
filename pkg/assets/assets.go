// Package assets embeds the pages served by the demo host.
package assets

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var embeddedTemplates embed.FS

// GetEmbeddedTemplates returns the embedded templates filesystem
func GetEmbeddedTemplates() embed.FS {
	return embeddedTemplates
}

// ParseIndex parses the index page with funcs, which must provide the
// fa_* template functions.
func ParseIndex(funcs template.FuncMap) (*template.Template, error) {
	return template.New("index.html").Funcs(funcs).ParseFS(embeddedTemplates, "templates/index.html")
}

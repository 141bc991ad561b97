package fontawesome

import (
	"net/http"
	"path"
	"strings"
)

// cacheControl is sent with every served asset. Local URLs carry no version
// and a sync rewrites files in place, so browsers revalidate on each use.
const cacheControl = "no-cache"

// Handler serves the local cache. Mount it at Resolver.Prefix()+"/".
// Directory listings and dot files, including in-progress downloads, are
// not served.
func (fa *FontAwesome) Handler() http.Handler {
	prefix := fa.resolver.Prefix()
	files := http.FileServer(http.Dir(fa.resolver.StaticRoot))

	return http.StripPrefix(prefix, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			w.Header().Set("Allow", "GET, HEAD")
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}
		if r.URL.Path == "" || strings.HasSuffix(r.URL.Path, "/") || strings.HasPrefix(path.Base(r.URL.Path), ".") {
			http.NotFound(w, r)
			return
		}

		switch path.Ext(r.URL.Path) {
		case ".woff2":
			w.Header().Set("Content-Type", "font/woff2")
		case ".ttf":
			w.Header().Set("Content-Type", "font/ttf")
		}
		w.Header().Set("Cache-Control", cacheControl)
		files.ServeHTTP(w, r)
	}))
}

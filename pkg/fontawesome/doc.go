// Package fontawesome renders Font Awesome markup for html/template pages
// and keeps an optional local copy of the package's files in sync with the
// version the pages ask for.
//
// Markup either points at the public CDN, with subresource integrity
// digests where they are known, or at the host's own origin. In the latter
// case every load first makes sure the stylesheet or script, plus the
// webfonts a stylesheet references, exist locally at the requested version.
package fontawesome

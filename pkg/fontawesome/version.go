package fontawesome

import (
	"fmt"
	"regexp"

	"github.com/Masterminds/semver/v3"
)

// DefaultVersion is the release the built-in SRI digests were computed for.
const DefaultVersion = "6.2.0"

// versionMarker matches the banner comment at the top of every css/js file,
// e.g. "Font Awesome Free 6.2.0 by @fontawesome".
var versionMarker = regexp.MustCompile(`Font Awesome (?:Free\s)?(\d+\.\d+\.\d+)`)

// ExtractVersion returns the first version marker found in content.
func ExtractVersion(content []byte) (string, bool) {
	m := versionMarker.FindSubmatch(content)
	if m == nil {
		return "", false
	}
	return string(m[1]), true
}

// ValidateVersion checks that version is a plain MAJOR.MINOR.PATCH release.
func ValidateVersion(version string) error {
	v, err := semver.StrictNewVersion(version)
	if err != nil {
		return fmt.Errorf("%w: %q: %v", ErrInvalidVersion, version, err)
	}
	if v.Prerelease() != "" || v.Metadata() != "" {
		return fmt.Errorf("%w: %q: pre-release and build metadata are not published", ErrInvalidVersion, version)
	}
	return nil
}

package fontawesome

import (
	"fmt"
	"strings"
)

// Style is an icon style subset. Only the values declared in this package
// exist; the zero Style is invalid.
type Style struct{ name string }

var (
	StyleAll     = Style{"all"}
	StyleRegular = Style{"regular"}
	StyleSolid   = Style{"solid"}
	StyleBrands  = Style{"brands"}

	// styleCore holds the glyph-layout rules the per-style files omit.
	styleCore = Style{"fontawesome"}

	// Styles lists the selectable styles in declaration order.
	Styles = []Style{StyleAll, StyleRegular, StyleSolid, StyleBrands}

	// ConcreteStyles lists the styles that ship their own webfonts.
	ConcreteStyles = []Style{StyleRegular, StyleSolid, StyleBrands}
)

func (s Style) String() string { return s.name }

// ParseStyle returns the Style named by name.
func ParseStyle(name string) (Style, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "all":
		return StyleAll, nil
	case "regular":
		return StyleRegular, nil
	case "solid":
		return StyleSolid, nil
	case "brands":
		return StyleBrands, nil
	}
	return Style{}, fmt.Errorf("%w: got %q", ErrInvalidStyle, name)
}

// Valid reports whether s is one of the selectable styles.
func (s Style) Valid() bool {
	switch s {
	case StyleAll, StyleRegular, StyleSolid, StyleBrands:
		return true
	}
	return false
}

// Concrete reports whether s is a single style with its own webfonts.
func (s Style) Concrete() bool {
	_, ok := s.WebfontFamily()
	return ok
}

// WebfontFamily returns the font file stem used by the style's stylesheet.
func (s Style) WebfontFamily() (string, bool) {
	switch s {
	case StyleRegular:
		return "fa-regular-400", true
	case StyleSolid:
		return "fa-solid-900", true
	case StyleBrands:
		return "fa-brands-400", true
	}
	return "", false
}

// webfontStyles returns the styles whose webfonts a stylesheet for s needs.
func (s Style) webfontStyles() []Style {
	if s == StyleAll {
		return ConcreteStyles
	}
	if s.Concrete() {
		return []Style{s}
	}
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (s Style) MarshalText() ([]byte, error) {
	return []byte(s.name), nil
}

// UnmarshalText implements encoding.TextUnmarshaler so styles can be read
// straight from configuration files.
func (s *Style) UnmarshalText(text []byte) error {
	parsed, err := ParseStyle(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

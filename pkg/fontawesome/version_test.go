package fontawesome

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractVersion(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
		ok      bool
	}{
		{"free banner", "/*!\n * Font Awesome Free 6.2.0 by @fontawesome - https://fontawesome.com\n */", "6.2.0", true},
		{"pro banner", "/* Font Awesome 5.15.4 */", "5.15.4", true},
		{"first match wins", "Font Awesome Free 6.1.1 ... Font Awesome Free 6.2.0", "6.1.1", true},
		{"no banner", ".fa{display:inline-block}", "", false},
		{"partial version", "Font Awesome Free 6.2", "", false},
		{"empty", "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractVersion([]byte(tt.content))
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidateVersion(t *testing.T) {
	for _, v := range []string{"6.2.0", "5.15.4", "10.0.1"} {
		assert.NoError(t, ValidateVersion(v), v)
	}
	for _, v := range []string{"", "6.2", "v6.2.0", "6.2.0-beta1", "6.2.0+build", "latest", "../6.2.0"} {
		assert.ErrorIs(t, ValidateVersion(v), ErrInvalidVersion, v)
	}
}

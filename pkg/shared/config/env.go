// Package config holds helpers shared by the configuration loaders.
package config

import (
	"os"
	"regexp"
)

// envVarPattern matches ${VAR} or ${VAR:-default}
var envVarPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)(:-([^}]*))?\}`)

// envRef is one parsed ${...} reference.
type envRef struct {
	name       string
	def        string
	hasDefault bool
}

func parseRef(match []string) envRef {
	return envRef{name: match[1], def: match[3], hasDefault: match[2] != ""}
}

// resolve returns the value the reference expands to and whether it had
// anything to expand to.
func (r envRef) resolve() (string, bool) {
	if v, ok := os.LookupEnv(r.name); ok && v != "" {
		return v, true
	}
	if r.hasDefault {
		return r.def, true
	}
	return "", false
}

// ExpandEnv replaces environment variable references in the input string
// with their values.
//
// Supported formats:
//   - ${VAR}          - the value of VAR, or "" if unset
//   - ${VAR:-default} - the value of VAR, or "default" if VAR is unset or empty
//
// Example:
//
//	static_root: ${FA_STATIC_ROOT:-/var/cache/fontawesome}
func ExpandEnv(input string) string {
	return envVarPattern.ReplaceAllStringFunc(input, func(match string) string {
		v, _ := parseRef(envVarPattern.FindStringSubmatch(match)).resolve()
		return v
	})
}

// ExpandEnvBytes is ExpandEnv for file contents read before YAML/JSON
// unmarshaling.
func ExpandEnvBytes(input []byte) []byte {
	return []byte(ExpandEnv(string(input)))
}

// MissingEnvVars returns, in order of first appearance, the variables
// referenced without a default that are unset or empty.
func MissingEnvVars(input string) []string {
	seen := make(map[string]bool)
	var missing []string
	for _, m := range envVarPattern.FindAllStringSubmatch(input, -1) {
		ref := parseRef(m)
		if seen[ref.name] {
			continue
		}
		seen[ref.name] = true
		if _, ok := ref.resolve(); !ok {
			missing = append(missing, ref.name)
		}
	}
	return missing
}

package slug

import (
	"strings"
	"unicode"
)

// Make derives a URL-safe slug from a display name: lowercase, punctuation
// stripped, whitespace runs collapsed to single hyphens. Derivation is
// deterministic and does not attempt to make the result unique; callers
// surface collisions as uniqueness-constraint failures.
func Make(name string) string {
	var b strings.Builder
	lastHyphen := true // suppress leading hyphens

	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastHyphen = false
		case unicode.IsSpace(r) || r == '-' || r == '_':
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
		// everything else (punctuation, symbols) is dropped
	}

	return strings.TrimRight(b.String(), "-")
}

// OrDerive returns the explicit slug when provided, else derives one from
// the name.
func OrDerive(explicit, name string) string {
	if s := strings.TrimSpace(explicit); s != "" {
		return s
	}
	return Make(name)
}

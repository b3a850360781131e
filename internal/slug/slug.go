// Package slug derives URL-safe identifiers from human-readable names.
package slug

import "strings"

// Make lowercases s, trims it, and collapses every run of non-alphanumeric
// characters into a single hyphen. Make(Make(s)) == Make(s).
func Make(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))

	var b strings.Builder
	b.Grow(len(s))
	lastHyphen := true // suppress a leading hyphen
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			lastHyphen = false
		} else if !lastHyphen {
			b.WriteByte('-')
			lastHyphen = true
		}
	}

	return strings.TrimSuffix(b.String(), "-")
}

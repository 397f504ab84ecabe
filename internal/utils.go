package internal

import "strings"

// SanitizeFilename creates a safe file name stem from a keyword. Runs of
// characters outside ASCII letters, digits and Hangul syllables collapse into
// a single underscore; leading and trailing underscores are dropped.
// An empty result falls back to "keyword".
func SanitizeFilename(s string) string {
	var b strings.Builder
	pendingSep := false
	for _, r := range s {
		if !isSafeRune(r) {
			pendingSep = true
			continue
		}
		if pendingSep && b.Len() > 0 {
			b.WriteByte('_')
		}
		pendingSep = false
		b.WriteRune(r)
	}

	if b.Len() == 0 {
		return "keyword"
	}
	return b.String()
}

// isSafeRune checks if a rune may appear in a generated file name
func isSafeRune(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9') || (r >= 0xAC00 && r <= 0xD7A3)
}

package teams

import (
	"regexp"
	"strings"
)

// NormalizedKey is a comparison key for team names. It is never displayed.
type NormalizedKey string

// Normalize lowercases s, spells out "&" as "and" and drops every rune outside a-z and 0-9.
func Normalize(s string) NormalizedKey {
	s = strings.ReplaceAll(strings.ToLower(s), "&", "and")

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return NormalizedKey(b.String())
}

var parenSuffix = regexp.MustCompile(`\s*\(.*\)\s*$`)

// stripParenSuffix removes a trailing parenthesized qualifier, e.g. "Miami (FL)" -> "Miami".
func stripParenSuffix(s string) string {
	return parenSuffix.ReplaceAllString(s, "")
}

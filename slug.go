package hamqtt

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Slug reduces s to the character class [a-zA-Z0-9_-] allowed in discovery
// topic segments. The input is NFKD-decomposed and combining marks are
// stripped, so accented characters fall back to their base letter instead of
// an underscore. Every remaining rune outside the allowed set becomes "_".
func Slug(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	for _, r := range norm.NFKD.String(s) {
		switch {
		case unicode.Is(unicode.M, r):
			// combining marks left over from decomposition
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}

	return b.String()
}

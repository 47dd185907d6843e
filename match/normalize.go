package match

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// accentStripper decomposes text and drops combining marks, so that
// "café" compares equal to "cafe".
var accentStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// StripAccents removes combining diacritical marks from s. On a transform
// failure the input is returned unchanged.
func StripAccents(s string) string {
	out, _, err := transform.String(accentStripper, s)
	if err != nil {
		return s
	}
	return out
}

// Fold normalizes s for comparison: accents are stripped unless
// accentSensitive, and the result is lowercased unless caseSensitive.
func Fold(s string, caseSensitive, accentSensitive bool) string {
	if !accentSensitive {
		s = StripAccents(s)
	}
	if !caseSensitive {
		s = strings.ToLower(s)
	}
	return s
}

package variants

import (
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripDiacritics removes combining marks so "José María" becomes "Jose Maria".
// Non-Latin scripts pass through unchanged; transliteration is out of scope.
var stripDiacritics = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	norm.NFC,
)

func foldDiacritics(s string) string {
	out, _, err := transform.String(stripDiacritics, s)
	if err != nil {
		return s
	}
	return out
}

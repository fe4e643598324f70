// CLAUDE:SUMMARY Lookup key strategies: lowercase+NFC for numerals (diacritics significant), lowercase+strip-accents for markers.
package lexicon

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Key returns the numeral lookup key: lowercase, NFC composed.
// Diacritics are kept, so "ñaar" and "naar" are different keys and a
// decomposed "juróom" (o + U+0301) matches the precomposed table entry.
func Key(s string) string {
	return norm.NFC.String(strings.ToLower(s))
}

// Fold returns the marker lookup key: lowercase with combining marks removed
// (e.g. "Dièse" -> "diese", "méga" -> "mega").
func Fold(s string) string {
	// transform.Chain keeps state between calls; build one per call so Fold
	// stays safe for concurrent use.
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, err := transform.String(t, strings.ToLower(s))
	if err != nil {
		return strings.ToLower(s)
	}
	return result
}

// keyFor returns the key an entry of class c is stored under.
func keyFor(c Class, word string) string {
	if c.isMarker() {
		return Fold(word)
	}
	return Key(word)
}

package shared

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var foldChain = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold lowercases s and strips diacritics, so "Hà Anh" folds to "ha anh".
//
// Falls back to plain lowercasing if the transform fails on malformed input.
func Fold(s string) string {
	folded, _, err := transform.String(foldChain, s)
	if err != nil {
		return strings.ToLower(s)
	}
	return strings.ToLower(folded)
}

// FoldContains reports whether needle is a substring of haystack under [Fold].
func FoldContains(haystack, needle string) bool {
	return strings.Contains(Fold(haystack), Fold(needle))
}

// NormalizeKey produces a stable lookup key from a title and artist name.
func NormalizeKey(title, artist string) string {
	return strings.Join(strings.Fields(Fold(title)), " ") + "|" + strings.Join(strings.Fields(Fold(artist)), " ")
}

package text

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// punctuation is the set of modern punctuation marks absent from
// classical editions. Digitalized source text is stripped of these
// before layout.
const punctuation = "，。、；：「」『』《》〈〉·？！（）〔〕．."

// IsPunctuation reports whether r is a modern punctuation mark that a
// classical edition would omit.
func IsPunctuation(r rune) bool {
	return strings.ContainsRune(punctuation, r)
}

// StripPunctuation removes modern punctuation from s, leaving only the
// characters that appear in a classical edition.
func StripPunctuation(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if IsPunctuation(r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Normalize folds s to Unicode NFC so variant encodings of the same
// character (precomposed vs combining) compare equal downstream.
func Normalize(s string) string {
	return norm.NFC.String(s)
}

// CellCount returns the number of grid cells the runes of s occupy when
// set vertically.
func CellCount(s string) int {
	n := 0
	for _, r := range s {
		if OccupiesCell(r) {
			n++
		}
	}
	return n
}

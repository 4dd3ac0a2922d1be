// Package similarity scores how alike two normalized facility names are.
package similarity

import (
	"unicode/utf8"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Score returns a normalized Levenshtein similarity in [0, 1]:
// (maxLen - editDistance) / maxLen over the longer input's rune length.
// Two empty strings score 1.0. Symmetric in its arguments.
func Score(a, b string) float64 {
	maxLen := utf8.RuneCountInString(a)
	if n := utf8.RuneCountInString(b); n > maxLen {
		maxLen = n
	}
	if maxLen == 0 {
		return 1.0
	}
	dist := fuzzy.LevenshteinDistance(a, b)
	return float64(maxLen-dist) / float64(maxLen)
}

// Package normalize canonicalizes raw facility names for comparison.
package normalize

import (
	"regexp"
	"sort"
	"strings"
)

// Keywords holds the configurable token lists the normalizer strips.
// These are tuning data, not code: see DefaultKeywords and LoadKeywords.
type Keywords struct {
	// LegalSuffixes are stripped only as trailing whole-word tokens,
	// optionally followed by a period (e.g. "llc", "inc", "corp").
	LegalSuffixes []string `json:"legal_suffixes"`
	// TypeDescriptors are facility-type words and phrases stripped
	// anywhere in the name as whole words (e.g. "assisted living").
	TypeDescriptors []string `json:"type_descriptors"`
}

// DefaultKeywords returns the built-in suffix and descriptor lists.
func DefaultKeywords() Keywords {
	return Keywords{
		LegalSuffixes: []string{
			"llc", "l.l.c", "inc", "corp", "corporation",
			"limited", "ltd", "co", "lp", "llp",
		},
		TypeDescriptors: []string{
			"assisted living", "memory care", "senior living",
			"retirement", "nursing home", "skilled nursing",
			"rehabilitation", "rehab", "health center", "care center",
			"residence", "manor", "house", "village", "community",
			"estates", "place", "home", "facility",
		},
	}
}

// Normalizer strips legal suffixes, facility-type descriptors, and
// punctuation noise from facility names. Safe for concurrent use.
type Normalizer struct {
	suffixRe     *regexp.Regexp
	descriptorRe *regexp.Regexp
	stripRe      *regexp.Regexp
	spaceRe      *regexp.Regexp
}

// NewNormalizer builds a Normalizer from the given keyword lists.
func NewNormalizer(kw Keywords) *Normalizer {
	n := &Normalizer{
		stripRe: regexp.MustCompile(`[^a-z0-9 ]`),
		spaceRe: regexp.MustCompile(`\s+`),
	}
	if alt := alternation(kw.LegalSuffixes); alt != "" {
		// Trailing whole-word tokens only, optional period, possibly
		// repeated ("x corp llc"). A suffix-only name strips to empty.
		n.suffixRe = regexp.MustCompile(`(?:(?:^|[,\s])(?:` + alt + `)\.?)+\s*$`)
	}
	if alt := alternation(kw.TypeDescriptors); alt != "" {
		n.descriptorRe = regexp.MustCompile(`\b(?:` + alt + `)\b`)
	}
	return n
}

// Default returns a Normalizer using the built-in keyword lists.
func Default() *Normalizer {
	return NewNormalizer(DefaultKeywords())
}

// Normalize canonicalizes a raw facility name: lowercase and trim, strip
// trailing legal-entity suffixes, strip facility-type descriptors, drop
// everything but lowercase letters, digits, and spaces, and collapse
// whitespace. The strip passes repeat until the name is stable, because
// removing a descriptor can expose a legal suffix as the new trailing
// token ("harbor co assisted living"). Idempotent and side-effect free.
func (n *Normalizer) Normalize(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	for s != "" {
		next := n.pass(s)
		if next == s {
			break
		}
		s = next
	}
	return s
}

// pass runs the strip steps once. Every change removes characters, so
// repeated passes reach a fixed point.
func (n *Normalizer) pass(s string) string {
	if n.suffixRe != nil {
		s = n.suffixRe.ReplaceAllString(s, "")
	}
	if n.descriptorRe != nil {
		s = n.descriptorRe.ReplaceAllString(s, " ")
	}
	s = n.stripRe.ReplaceAllString(s, "")
	s = n.spaceRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// alternation joins escaped tokens longest-first so multi-word phrases
// win over their substrings ("nursing home" before "home").
func alternation(tokens []string) string {
	cleaned := make([]string, 0, len(tokens))
	for _, t := range tokens {
		t = strings.ToLower(strings.TrimSpace(t))
		if t != "" {
			cleaned = append(cleaned, regexp.QuoteMeta(t))
		}
	}
	if len(cleaned) == 0 {
		return ""
	}
	sort.Slice(cleaned, func(i, j int) bool {
		if len(cleaned[i]) != len(cleaned[j]) {
			return len(cleaned[i]) > len(cleaned[j])
		}
		return cleaned[i] < cleaned[j]
	})
	return strings.Join(cleaned, "|")
}

package normalize

import (
	"regexp"
	"strings"
)

var ccnStripRe = regexp.MustCompile(`[^A-Za-z0-9]`)

// StandardizeCCN normalizes a CMS certification number to its canonical
// 6-character form. Source data often drops leading zeros or carries
// separators. Returns "" when nothing usable remains.
func StandardizeCCN(raw string) string {
	ccn := ccnStripRe.ReplaceAllString(strings.TrimSpace(raw), "")
	if ccn == "" {
		return ""
	}
	for len(ccn) < 6 {
		ccn = "0" + ccn
	}
	return ccn[:6]
}

// StateRegionFromCCN returns the two-character state region prefix of a
// standardized CCN, or "" when the CCN is too short.
func StateRegionFromCCN(ccn string) string {
	if len(ccn) < 2 {
		return ""
	}
	return ccn[:2]
}

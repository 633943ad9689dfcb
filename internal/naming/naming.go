// Package naming normalizes content names produced by the host's cloning
// and instance-numbering mechanisms.
package naming

import (
	"regexp"
	"strings"
)

var parenthetical = regexp.MustCompile(`\s*\(.*?\)`)

// Normalize strips the first parenthetical group (together with the
// whitespace before it) from raw and trims the result, so "Eikthyrnir (1)"
// and "Eikthyrnir(Clone)" both become "Eikthyrnir".
func Normalize(raw string) string {
	loc := parenthetical.FindStringIndex(raw)
	if loc == nil {
		return strings.TrimSpace(raw)
	}
	return strings.TrimSpace(raw[:loc[0]] + raw[loc[1]:])
}

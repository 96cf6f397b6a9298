package common

import "strings"

// NormalizeCity trims the input and collapses inner runs of whitespace, so
// "  New   York " becomes "New York". Blank input yields "".
func NormalizeCity(s string) string {
	return strings.Join(strings.Fields(s), " ")
}


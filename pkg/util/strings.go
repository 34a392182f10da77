package util

import "strings"

// NormalizeSymbol trims and uppercases a ticker as typed by a user.
func NormalizeSymbol(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

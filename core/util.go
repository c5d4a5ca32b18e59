package core

import "strings"

// CleanString trims all leading and trailing whitespace in `s` and optionally lowers it.
func CleanString(s string, lower ...bool) string {
	s = strings.TrimSpace(s)
	if len(lower) > 0 && lower[0] {
		return strings.ToLower(s)
	}
	return s
}

// NormalizeName lower-cases a free-text identifier and replaces internal
// whitespace runs with a single underscore, so that equivalent user inputs
// address the same stored aggregate.
func NormalizeName(s string) string {
	return strings.Join(strings.Fields(CleanString(s, true)), "_")
}

package core

import "strings"

// CleanString strips surrounding whitespace from `s`; pass lower to also
// fold it to lower case. Every user-supplied string goes through here
// before validation.
func CleanString(s string, lower ...bool) string {
	s = strings.TrimSpace(s)
	if len(lower) > 0 && lower[0] {
		s = strings.ToLower(s)
	}
	return s
}

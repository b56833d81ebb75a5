package tinydot

import "strings"

// SanitizeKey turns a raw key into a field name by replacing every hyphen
// and ASCII whitespace character with an underscore.
func SanitizeKey(key string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '-', ' ', '\t', '\n', '\v', '\f', '\r':
			return '_'
		}
		return r
	}, key)
}

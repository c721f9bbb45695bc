// Package textproc provides the character-level normalization shared by
// frequency counting and sentence scoring. Both must use identical rules so
// frequency lookups stay consistent.
package textproc

import "strings"

// Normalize lowercases text and replaces every character that is not an
// ASCII letter or whitespace with a single space. Digits, punctuation and
// non-ASCII letters all become separators.
func Normalize(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range strings.ToLower(text) {
		switch {
		case r >= 'a' && r <= 'z':
			b.WriteRune(r)
		case r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '\v' || r == '\f':
			b.WriteRune(r)
		default:
			b.WriteByte(' ')
		}
	}
	return b.String()
}

// Tokenize splits normalized text on whitespace runs, discarding empty tokens.
func Tokenize(normalized string) []string {
	return strings.Fields(normalized)
}

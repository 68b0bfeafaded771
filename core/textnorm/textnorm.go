// Package textnorm folds free text into the comparable forms used by the
// catalog: matcher keys, product names and code letters.
package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// StripDiacritics removes combining marks ("Cómputo" -> "Computo").
// A new chain is built per call since transformers keep internal state.
func StripDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// Fold returns the matcher key for s: lowercase, no diacritics, only
// [a-z0-9 ] with runs of whitespace collapsed to one space.
func Fold(s string) string {
	return keep(strings.ToLower(StripDiacritics(s)), func(r rune) bool {
		return (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
	})
}

// ProductName returns the canonical product name: uppercase letters, digits
// and single spaces.
func ProductName(s string) string {
	return keep(strings.ToUpper(StripDiacritics(s)), func(r rune) bool {
		return (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
	})
}

// Letters returns only the A-Z letters of s, uppercased.
func Letters(s string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(StripDiacritics(s)) {
		if r >= 'A' && r <= 'Z' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// keep drops every rune outside allowed, turns whitespace into single spaces
// and trims the ends.
func keep(s string, allowed func(rune) bool) string {
	var b strings.Builder
	b.Grow(len(s))
	pendingSpace := false
	for _, r := range s {
		switch {
		case unicode.IsSpace(r):
			pendingSpace = b.Len() > 0
		case allowed(r):
			if pendingSpace {
				b.WriteByte(' ')
				pendingSpace = false
			}
			b.WriteRune(r)
		}
	}
	return b.String()
}

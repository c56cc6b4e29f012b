// Package textnorm provides text normalization for Portuguese user input.
// All lookups and comparisons in the engine operate on normalized text so
// that accents, casing and stray whitespace never affect matching.
package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var stripMarks = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	norm.NFC,
)

// Normalize lowercases the input, removes diacritical marks and collapses
// runs of whitespace into single spaces. It is total (never fails) and
// idempotent: Normalize(Normalize(s)) == Normalize(s).
func Normalize(s string) string {
	out, _, err := transform.String(stripMarks, s)
	if err != nil {
		// Transform only fails on malformed UTF-8; fall back to the raw
		// input so normalization stays total.
		out = s
	}
	out = strings.ToLower(out)
	return strings.Join(strings.Fields(out), " ")
}

// Tokens returns the whitespace-separated tokens of the normalized input.
func Tokens(s string) []string {
	return strings.Fields(Normalize(s))
}

// ContainsAny reports whether the normalized input contains any of the
// given normalized substrings.
func ContainsAny(s string, subs ...string) bool {
	n := Normalize(s)
	for _, sub := range subs {
		if strings.Contains(n, Normalize(sub)) {
			return true
		}
	}
	return false
}

// EqualsAny reports whether the normalized input equals any of the given
// normalized candidates.
func EqualsAny(s string, candidates ...string) bool {
	n := Normalize(s)
	for _, c := range candidates {
		if n == Normalize(c) {
			return true
		}
	}
	return false
}

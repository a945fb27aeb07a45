package scanner

import (
	"unicode"
	"unicode/utf8"
)

// --- Option characters -----------------------------------------------------

// IsOptionRune is true for runes which may continue a word or an option name:
// letters (Unicode Alphabetic), numbers, '-' and '_'.
func IsOptionRune(r rune) bool {
	if r == '-' || r == '_' {
		return true
	}
	return unicode.IsLetter(r) || unicode.IsNumber(r) || unicode.Is(unicode.Other_Alphabetic, r)
}

// OptionRun returns the length in bytes of the longest prefix of b consisting
// of option runes.
func OptionRun(b []byte) int {
	n := 0
	for n < len(b) {
		r, sz := utf8.DecodeRune(b[n:])
		if !IsOptionRune(r) {
			break
		}
		n += sz
	}
	return n
}

// LeadingSpace returns the length in bytes of a white space rune at the start
// of b, or 0.
func LeadingSpace(b []byte) int {
	r, sz := utf8.DecodeRune(b)
	if unicode.IsSpace(r) {
		return sz
	}
	return 0
}

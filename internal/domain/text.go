package domain

import (
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Capitalize upper-cases the first character of s and leaves the rest untouched.
// Input is NFC-normalized first so that composed and decomposed forms of the
// same title produce identical quote text.
func Capitalize(s string) string {
	s = norm.NFC.String(s)
	if s == "" {
		return s
	}

	_, size := utf8.DecodeRuneInString(s)

	return cases.Upper(language.Und).String(s[:size]) + s[size:]
}

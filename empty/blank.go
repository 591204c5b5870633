package empty

import (
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Blank reports whether s carries no visible content: it is empty, or
// holds only whitespace, control characters, format characters (such as
// zero-width spaces) and combining marks. The string is NFC-normalized
// first so that a lone combining sequence is judged the same way however
// it was encoded.
//
// Example:
//
//	empty.Blank("")           // true
//	empty.Blank(" \t\r\n")    // true
//	empty.Blank("\u200b")   // true (zero-width space)
//	empty.Blank(" x ")        // false
func Blank[S ~string](s S) bool {
	if len(s) == 0 {
		return true
	}

	for _, r := range norm.NFC.String(string(s)) {
		if unicode.IsSpace(r) || unicode.IsControl(r) || unicode.IsMark(r) || unicode.Is(unicode.Cf, r) {
			continue
		}

		return false
	}

	return true
}

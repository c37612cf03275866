package units

import "unicode"

// IsAmountRune reports whether r may appear in text passed to [Parse]:
// an ASCII digit, the decimal point, a sign, or white space.
// Input fields can use it to filter keystrokes. Accepting a rune does not
// mean the text is valid, only that Parse could consume it.
func IsAmountRune(r rune) bool {
	switch {
	case '0' <= r && r <= '9':
		return true
	case r == '.', r == '+', r == '-':
		return true
	default:
		return unicode.Is(unicode.White_Space, r)
	}
}

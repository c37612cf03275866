package units

import (
	"fmt"
	"strings"
)

const (
	// thinSpace is the digit group separator. It is locale independent
	// and cannot be confused with the decimal point.
	thinSpace     = "\u2009"
	thinSpaceHTML = "&thinsp;"

	// maxDigits is the width of a justified amount, excluding sign,
	// separators and decimal point: integer digits plus decimals.
	maxDigits = 16

	// maskGlyph replaces digits in privacy mode.
	maskGlyph = '#'
)

// SeparatorStyle controls the grouping of integer digits in formatted amounts.
// The zero value is [SeparatorStandard].
type SeparatorStyle uint8

const (
	// SeparatorStandard groups digits only when the integer part is
	// longer than 4 characters, so 1234 stays intact but 12 345 does not.
	SeparatorStandard SeparatorStyle = iota
	// SeparatorNever never groups digits.
	SeparatorNever
	// SeparatorAlways groups digits in threes unconditionally.
	SeparatorAlways
)

var separatorNames = [...]string{
	SeparatorStandard: "standard",
	SeparatorNever:    "never",
	SeparatorAlways:   "always",
}

// ParseSeparatorStyle converts "standard", "never" or "always" to a separator style.
func ParseSeparatorStyle(s string) (SeparatorStyle, error) {
	for i, name := range separatorNames {
		if strings.EqualFold(s, name) {
			return SeparatorStyle(i), nil
		}
	}
	return SeparatorStandard, fmt.Errorf("invalid separator style %q", s)
}

// String method implements the [fmt.Stringer] interface.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (s SeparatorStyle) String() string {
	if int(s) < len(separatorNames) {
		return separatorNames[s]
	}
	return fmt.Sprintf("SeparatorStyle(%d)", uint8(s))
}

// groups reports whether an integer part of the given width gets separators.
func (s SeparatorStyle) groups(width int) bool {
	switch s {
	case SeparatorAlways:
		return true
	case SeparatorStandard:
		return width > 4
	default:
		return false
	}
}

// Format returns the amount expressed in unit u, without the unit name.
// Formatting uses integer arithmetic only and never loses precision:
//
//	Format(LEX, 150000000, false, SeparatorStandard, false) = "1.50000000"
//	Format(LEX, -100000000, false, SeparatorStandard, false) = "-1.00000000"
//	Format(SAT, 1234567, true, SeparatorStandard, false)    = "+1 234 567" (thin spaces)
//
// The output does not depend on the locale.
// The number of digits after the decimal point is always [Unit.Decimals];
// units without decimals have no decimal point.
//
// If plus is true, positive amounts get a '+' sign. Zero never has a sign.
//
// If justify is true, the integer part is left-padded with spaces to
// 16 - [Unit.Decimals] characters, so that amounts in different units line up.
//
// Digit groups of the integer part are separated by a thin space (U+2009),
// depending on sep. Justification padding counts as part of the integer part.
func Format(u Unit, a Amount, plus bool, sep SeparatorStyle, justify bool) string {
	factor := uint64(u.Factor()) //nolint:gosec
	decimals := u.Decimals()

	// Absolute value, also valid for math.MinInt64
	abs := uint64(a) //nolint:gosec
	if a < 0 {
		abs = -abs
	}
	quo, rem := abs/factor, abs%factor

	// Integer digits
	intdigs := 1
	for q := quo / 10; q > 0; q /= 10 {
		intdigs++
	}
	width := intdigs
	if justify {
		width = max(width, maxDigits-decimals)
	}

	// Separators
	seps := 0
	if sep.groups(width) {
		seps = (width - 1) / 3
	}

	// Arithmetic sign
	rsign := 0
	if a < 0 || (plus && a > 0) {
		rsign = 1
	}

	// Decimal point
	dpoint := 0
	if decimals > 0 {
		dpoint = 1
	}

	buf := make([]byte, rsign+width+seps*len(thinSpace)+dpoint+decimals)
	pos := len(buf) - 1

	// Fractional digits
	for range decimals {
		buf[pos] = byte(rem%10) + '0'
		pos--
		rem /= 10
	}

	// Decimal point
	if dpoint > 0 {
		buf[pos] = '.'
		pos--
	}

	// Integer digits and padding
	for i := range width {
		if seps > 0 && i > 0 && i%3 == 0 {
			pos -= len(thinSpace)
			copy(buf[pos+1:], thinSpace)
		}
		if i < intdigs {
			buf[pos] = byte(quo%10) + '0'
			quo /= 10
		} else {
			buf[pos] = ' '
		}
		pos--
	}

	// Arithmetic sign
	if rsign > 0 {
		if a < 0 {
			buf[pos] = '-'
		} else {
			buf[pos] = '+'
		}
	}

	return string(buf)
}

// FormatWithUnit is like [Format] without justification, followed by a space
// and the short name of the unit, for example "1.50000000 LEX".
//
// In HTML, use [FormatHTMLWithUnit] instead: browsers may wrap lines at
// the separators.
func FormatWithUnit(u Unit, a Amount, plus bool, sep SeparatorStyle) string {
	return Format(u, a, plus, sep, false) + " " + u.ShortName()
}

// FormatHTMLWithUnit is like [FormatWithUnit], but the separators are written
// as HTML entities and the result is wrapped in a span that cannot break
// across lines.
func FormatHTMLWithUnit(u Unit, a Amount, plus bool, sep SeparatorStyle) string {
	s := strings.ReplaceAll(FormatWithUnit(u, a, plus, sep), thinSpace, thinSpaceHTML)
	return "<span style='white-space: nowrap;'>" + s + "</span>"
}

// FormatWithPrivacy returns the justified amount followed by a space and the
// short name of the unit.
// If privacy is true, the amount is not shown: the result is a formatted zero
// with every digit replaced by '#', which has the shape of a real amount
// without revealing it.
//
// FormatWithPrivacy panics if the amount is negative.
func FormatWithPrivacy(u Unit, a Amount, sep SeparatorStyle, privacy bool) string {
	if a < 0 {
		panic(fmt.Sprintf("FormatWithPrivacy(%v, %v) failed: negative amount", u, int64(a)))
	}
	var s string
	if privacy {
		s = strings.Map(mask, Format(u, 0, false, sep, true))
	} else {
		s = Format(u, a, false, sep, true)
	}
	return s + " " + u.ShortName()
}

func mask(r rune) rune {
	if '0' <= r && r <= '9' {
		return maskGlyph
	}
	return r
}

package units

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// ErrInvalidAmount is returned, possibly wrapped, by [Parse] for any text
// that cannot be converted to an amount without loss.
var ErrInvalidAmount = errors.New("invalid amount")

// maxParseLen is the longest digit string accepted by [Parse], sign included.
// Any 18-character integer fits into 63 bits.
const maxParseLen = 18

// spaceRemover drops white space, including thin and no-break spaces that
// [Format] or the user may have used to group digits.
var spaceRemover = runes.Remove(runes.In(unicode.White_Space))

// Parse converts text entered in unit u to an amount in base units.
// White space anywhere in the text is ignored, so the output of [Format]
// can be parsed back. The decimal point is always '.', and an optional
// leading sign is accepted:
//
//	Parse(LEX, "1.5")      = 150000000
//	Parse(MicroLEX, "-12") = -1200
//	Parse(SAT, "1 000")    = 1000
//
// The result is exact: the text is never rounded or truncated.
// Parse does not check the money range, see [Amount.InRange].
//
// Parse returns an error wrapping [ErrInvalidAmount] if:
//   - the text is empty;
//   - the text contains more than one decimal point;
//   - there are more digits after the decimal point than [Unit.Decimals];
//   - the amount in base units would have more than 18 characters;
//   - the text contains anything other than digits, white space, one decimal
//     point and a leading sign.
func Parse(u Unit, text string) (Amount, error) {
	a, err := parse(u, text)
	if err != nil {
		return 0, fmt.Errorf("parsing %q in %v: %w", text, u, err)
	}
	return a, nil
}

func parse(u Unit, text string) (Amount, error) {
	if text == "" {
		return 0, fmt.Errorf("%w: empty text", ErrInvalidAmount)
	}
	decimals := u.Decimals()

	s, _, err := transform.String(spaceRemover, text)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidAmount, err)
	}

	whole, frac, _ := strings.Cut(s, ".")
	if strings.Contains(frac, ".") {
		return 0, fmt.Errorf("%w: more than one decimal point", ErrInvalidAmount)
	}
	if len(frac) > decimals {
		return 0, fmt.Errorf("%w: more than %v digit(s) after the decimal point", ErrInvalidAmount, decimals)
	}

	// Shifting the decimal point right by the number of decimals turns
	// the text into an integer number of base units.
	s = whole + frac + strings.Repeat("0", decimals-len(frac))
	if len(s) > maxParseLen {
		return 0, fmt.Errorf("%w: more than %v characters", ErrInvalidAmount, maxParseLen)
	}

	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: not a number", ErrInvalidAmount)
	}
	return Amount(n), nil
}

// MustParse is like [Parse] but panics if the text cannot be parsed.
// It simplifies safe initialization of global variables holding amounts.
func MustParse(u Unit, text string) Amount {
	a, err := Parse(u, text)
	if err != nil {
		panic(fmt.Sprintf("Parse(%v, %q) failed: %v", u, text, err))
	}
	return a
}

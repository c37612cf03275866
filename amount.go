package units

import (
	"errors"
	"fmt"
	"math"

	"github.com/govalues/decimal"
)

var (
	errAmountOverflow  = errors.New("amount overflow")
	errExcessPrecision = errors.New("too many digits after the decimal point")
)

// Amount type represents a quantity of LEX in base units (satoshi),
// the smallest indivisible unit of value.
// Amounts are plain integers: they are copied by value and never shared.
type Amount int64

// MaxMoney is the largest amount that can exist: 21 million LEX.
// Amounts above it, or below zero, are outside the money range;
// see [Amount.InRange].
const MaxMoney Amount = 21_000_000 * 100_000_000

// InRange returns:
//
//	true  if 0 <= a <= MaxMoney
//	false otherwise
//
// An amount outside the money range is still representable and can be
// formatted and parsed; it just cannot be a valid balance or output value.
func (a Amount) InRange() bool {
	return a >= 0 && a <= MaxMoney
}

// Decimal returns the exact value of the amount expressed in unit u,
// with scale equal to [Unit.Decimals].
// For example, 150000000 in [LEX] is 1.50000000.
// See also constructor [NewAmountFromDecimal].
func (a Amount) Decimal(u Unit) decimal.Decimal {
	d, err := decimal.New(int64(a), u.Decimals())
	if err != nil {
		// Unit scales never exceed decimal.MaxScale.
		panic(fmt.Sprintf("decimal.New(%v, %v) failed: %v", int64(a), u.Decimals(), err))
	}
	return d
}

// NewAmountFromDecimal converts a value expressed in unit u to base units.
// Trailing zeros are ignored, so 1.50 LEX and 1.5 LEX give the same amount.
// See also method [Amount.Decimal].
//
// NewAmountFromDecimal returns an error if:
//   - the value has more significant digits after the decimal point than
//     [Unit.Decimals]; the value is never rounded;
//   - the result cannot be represented as an int64.
func NewAmountFromDecimal(u Unit, d decimal.Decimal) (Amount, error) {
	scale := u.Decimals()
	if d.MinScale() > scale {
		return 0, fmt.Errorf("converting %v %v: %w", d, u, errExcessPrecision)
	}
	d = d.Trim(scale).Pad(scale)
	if d.Scale() != scale {
		return 0, fmt.Errorf("converting %v %v: %w", d, u, errAmountOverflow)
	}
	coef := d.Coef()
	if d.IsNeg() {
		if coef > uint64(math.MaxInt64)+1 {
			return 0, fmt.Errorf("converting %v %v: %w", d, u, errAmountOverflow)
		}
		return Amount(-int64(coef)), nil //nolint:gosec
	}
	if coef > math.MaxInt64 {
		return 0, fmt.Errorf("converting %v %v: %w", d, u, errAmountOverflow)
	}
	return Amount(coef), nil
}

/*
Package units implements display units for LEX amounts.
An [Amount] is an integer number of base units (satoshi); a [Unit] is one of
the denominations in which amounts are shown to and entered by users.

# Features

  - Exact conversion between base units and display units using only
    integer arithmetic
  - Locale-independent formatting with optional digit grouping, plus sign
    and justification
  - Privacy mode that hides an amount while keeping its shape
  - Strict parsing of user input that rejects anything it cannot represent
    without loss
  - A stable one-byte encoding of units for persisted settings

# Units

The catalog has four units:

	| Unit     | Short name | Base units  | Decimals |
	| -------- | ---------- | ----------- | -------- |
	| LEX      | LEX        | 100 000 000 | 8        |
	| MilliLEX | mLEX       |     100 000 | 5        |
	| MicroLEX | bits       |         100 | 2        |
	| SAT      | sat        |           1 | 0        |

For every unit the number of base units is 10 raised to the number of decimals.
Unit is implemented as an integer index into generated lookup tables
(see scripts/unit), which are never modified after initialization.
Units, amounts and all functions of the package are safe for concurrent use.

# Formatting and Parsing

[Format] writes an amount with exactly [Unit.Decimals] digits after the
decimal point. Digit groups are separated by a thin space (U+2009), which
cannot be mistaken for a decimal point in any locale.
[Parse] ignores white space, so any output of Format can be parsed back to
the same amount.

# Errors

Invalid user input is reported by errors wrapping [ErrInvalidAmount].
Using a Unit value outside the catalog is a programming error, and the
package panics in that case.
*/
package units

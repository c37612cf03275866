package units

import (
	"database/sql/driver"
	"errors"
	"fmt"
)

//go:generate go run scripts/unit/codegen.go

// Unit type represents a display unit of LEX amounts.
// The zero value is [LEX], the principal unit.
//
// Unit is implemented as an integer index into in-memory arrays that
// store the properties of each unit, such as its factor and number of decimals.
// These arrays are never modified, so the same Unit value can be used
// by multiple goroutines.
//
// When persisting a unit, use the tag returned by the [Unit.Tag] method
// or the short name returned by [Unit.ShortName], rather than the integer index.
// Tags are stable across versions; the index follows catalog order.
//
// Calling a method of an invalid unit, such as Unit(42), is a programming
// error and panics.
type Unit uint8

var (
	errInvalidUnit = errors.New("invalid unit")
	errInvalidTag  = errors.New("invalid unit tag")
)

// Units returns all units in catalog order, starting with [LEX].
// The caller owns the returned slice.
func Units() []Unit {
	units := make([]Unit, unitCount)
	for i := range units {
		units[i] = Unit(i)
	}
	return units
}

// ParseUnit converts a string to a unit.
// The input string may be a long name, a short name, or one of the aliases:
//
//	LEX, lex
//	mLEX, mlex
//	µLEX (bits), bits, µLEX, uLEX, µlex, ulex
//	Satoshi (sat), sat, SAT, satoshi, sats
//
// ParseUnit returns an error if the string does not name a unit.
func ParseUnit(name string) (Unit, error) {
	u, ok := unitLookup[name]
	if !ok {
		return LEX, fmt.Errorf("%w %q", errInvalidUnit, name)
	}
	return u, nil
}

// MustParseUnit is like [ParseUnit] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding units.
func MustParseUnit(name string) Unit {
	u, err := ParseUnit(name)
	if err != nil {
		panic(fmt.Sprintf("ParseUnit(%q) failed: %v", name, err))
	}
	return u
}

// UnitFromTag returns the unit identified by a persisted tag.
// See also method [Unit.Tag].
//
// UnitFromTag returns an error if no unit carries the tag.
func UnitFromTag(tag uint8) (Unit, error) {
	u, ok := unitByTag[tag]
	if !ok {
		return LEX, fmt.Errorf("%w %v", errInvalidTag, tag)
	}
	return u, nil
}

// MustUnitFromTag is like [UnitFromTag] but panics if the tag is unknown.
func MustUnitFromTag(tag uint8) Unit {
	u, err := UnitFromTag(tag)
	if err != nil {
		panic(fmt.Sprintf("UnitFromTag(%v) failed: %v", tag, err))
	}
	return u
}

// Valid returns true if the unit belongs to the catalog.
func (u Unit) Valid() bool {
	return u < unitCount
}

// index returns the position of the unit in the lookup arrays.
func (u Unit) index() int {
	if !u.Valid() {
		panic(fmt.Sprintf("units: invalid unit %d", uint8(u)))
	}
	return int(u)
}

// Factor returns the number of base units in one unit.
// It is always equal to 10^[Unit.Decimals]:
//
//	LEX       100000000
//	MilliLEX     100000
//	MicroLEX        100
//	SAT               1
func (u Unit) Factor() int64 {
	return factorLookup[u.index()]
}

// Decimals returns the number of digits shown after the decimal point
// when an amount is formatted in the unit.
func (u Unit) Decimals() int {
	return int(decimalsLookup[u.index()])
}

// LongName returns the name shown in unit selectors, such as "µLEX (bits)".
func (u Unit) LongName() string {
	return longNameLookup[u.index()]
}

// ShortName returns the name appended to formatted amounts, such as "bits".
func (u Unit) ShortName() string {
	return shortNameLookup[u.index()]
}

// Description returns a longer explanation of the unit, suitable for tooltips.
// Digit groups inside descriptions are separated by thin spaces (U+2009).
func (u Unit) Description() string {
	return descriptionLookup[u.index()]
}

// AmountColumnTitle returns the header of a table column holding amounts
// in the unit, for example "Amount (sat)".
func (u Unit) AmountColumnTitle() string {
	return "Amount (" + u.ShortName() + ")"
}

// Tag returns the stable one-byte identifier of the unit.
// See also constructor [UnitFromTag].
func (u Unit) Tag() uint8 {
	return tagLookup[u.index()]
}

// String method implements the [fmt.Stringer] interface and returns
// the short name of the unit.
// Unlike other methods, String does not panic on an invalid unit.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (u Unit) String() string {
	if !u.Valid() {
		return fmt.Sprintf("Unit(%d)", uint8(u))
	}
	return u.ShortName()
}

// UnmarshalText implements [encoding.TextUnmarshaler] interface.
// See also constructor [ParseUnit].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (u *Unit) UnmarshalText(text []byte) error {
	var err error
	*u, err = ParseUnit(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", LEX, err)
	}
	return nil
}

// MarshalText implements [encoding.TextMarshaler] interface.
// MarshalText always returns the short name.
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (u Unit) MarshalText() ([]byte, error) {
	return []byte(u.ShortName()), nil
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// A JSON null leaves the unit unchanged.
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (u *Unit) UnmarshalJSON(text []byte) error {
	if string(text) == "null" {
		return nil
	}
	if len(text) >= 2 && text[0] == '"' && text[len(text)-1] == '"' {
		text = text[1 : len(text)-1]
	}
	return u.UnmarshalText(text)
}

// MarshalJSON implements the [json.Marshaler] interface.
// MarshalJSON always returns the quoted short name.
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (u Unit) MarshalJSON() ([]byte, error) {
	name := u.ShortName()
	text := make([]byte, 0, len(name)+2)
	text = append(text, '"')
	text = append(text, name...)
	text = append(text, '"')
	return text, nil
}

// UnmarshalBinary implements the [encoding.BinaryUnmarshaler] interface.
// The data must be exactly one byte holding a tag.
// See also constructor [UnitFromTag].
//
// [encoding.BinaryUnmarshaler]: https://pkg.go.dev/encoding#BinaryUnmarshaler
func (u *Unit) UnmarshalBinary(data []byte) error {
	if len(data) != 1 {
		return fmt.Errorf("unmarshaling %T: %w: invalid data length %v", LEX, errInvalidTag, len(data))
	}
	var err error
	*u, err = UnitFromTag(data[0])
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", LEX, err)
	}
	return nil
}

// MarshalBinary implements the [encoding.BinaryMarshaler] interface.
// MarshalBinary always returns a single byte, the tag of the unit.
//
// [encoding.BinaryMarshaler]: https://pkg.go.dev/encoding#BinaryMarshaler
func (u Unit) MarshalBinary() ([]byte, error) {
	return []byte{u.Tag()}, nil
}

// Scan implements the [sql.Scanner] interface.
// Integer columns are read as tags, text columns as unit names.
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (u *Unit) Scan(value any) error {
	var err error
	switch value := value.(type) {
	case int64:
		if value < 0 || value > 255 {
			err = fmt.Errorf("%w %v", errInvalidTag, value)
			break
		}
		*u, err = UnitFromTag(uint8(value))
	case string:
		*u, err = ParseUnit(value)
	case []byte:
		*u, err = ParseUnit(string(value))
	case nil:
		err = fmt.Errorf("%T does not support null values, use %T or *%T", LEX, NullUnit{}, LEX)
	default:
		err = fmt.Errorf("type %T is not supported", value)
	}
	if err != nil {
		err = fmt.Errorf("converting from %T to %T: %w", value, LEX, err)
	}
	return err
}

// Value implements the [driver.Valuer] interface.
// Value always returns the tag as int64.
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (u Unit) Value() (driver.Value, error) {
	return int64(u.Tag()), nil
}

// Format implements the [fmt.Formatter] interface.
// The following [format verbs] are available:
//
//	| Verb       | Example | Description       |
//	| ---------- | ------- | ----------------- |
//	| %c, %s, %v | bits    | Short name        |
//	| %q         | "bits"  | Quoted short name |
//
// The '-' format flag can be used with all verbs.
// Invalid units are formatted as by [Unit.String].
//
// [format verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (u Unit) Format(state fmt.State, verb rune) {
	name := u.String()
	namelen := len(name)

	// Opening and closing quotes
	lquote, tquote := 0, 0
	if verb == 'q' || verb == 'Q' {
		lquote, tquote = 1, 1
	}

	// Calculating padding
	width := lquote + namelen + tquote
	lspaces, tspaces := 0, 0
	if w, ok := state.Width(); ok && w > width {
		switch {
		case state.Flag('-'):
			tspaces = w - width
		default:
			lspaces = w - width
		}
		width = w
	}

	buf := make([]byte, width)
	pos := width - 1

	// Trailing spaces
	for range tspaces {
		buf[pos] = ' '
		pos--
	}

	// Closing quote
	for range tquote {
		buf[pos] = '"'
		pos--
	}

	// Short name
	for i := range namelen {
		buf[pos] = name[namelen-i-1]
		pos--
	}

	// Opening quote
	for range lquote {
		buf[pos] = '"'
		pos--
	}

	// Leading spaces
	for range lspaces {
		buf[pos] = ' '
		pos--
	}

	// Writing result
	//nolint:errcheck
	switch verb {
	case 'q', 'Q', 's', 'S', 'v', 'V', 'c', 'C':
		state.Write(buf)
	default:
		state.Write([]byte("%!"))
		state.Write([]byte{byte(verb)})
		state.Write([]byte("(units.Unit="))
		state.Write(buf)
		state.Write([]byte(")"))
	}
}

// NullUnit represents a unit that can be null.
// Its zero value is null.
// NullUnit is not thread-safe.
type NullUnit struct {
	Unit  Unit
	Valid bool
}

// Scan implements the [sql.Scanner] interface.
// See also method [Unit.Scan].
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (n *NullUnit) Scan(value any) error {
	if value == nil {
		n.Unit = LEX
		n.Valid = false
		return nil
	}
	n.Valid = true
	return n.Unit.Scan(value)
}

// Value implements the [driver.Valuer] interface.
// See also method [Unit.Value].
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (n NullUnit) Value() (driver.Value, error) {
	if !n.Valid {
		return nil, nil
	}
	return n.Unit.Value()
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// See also method [Unit.UnmarshalJSON].
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (n *NullUnit) UnmarshalJSON(text []byte) error {
	if string(text) == "null" {
		n.Unit = LEX
		n.Valid = false
		return nil
	}
	n.Valid = true
	return n.Unit.UnmarshalJSON(text)
}

// MarshalJSON implements the [json.Marshaler] interface.
// See also method [Unit.MarshalJSON].
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (n NullUnit) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return n.Unit.MarshalJSON()
}

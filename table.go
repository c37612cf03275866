package units

// Table is a read-only view of the unit catalog addressed by row index,
// for populating unit selectors. Row i holds the i-th element of [Units].
// The zero value is not usable; create tables with [NewTable].
type Table struct {
	units []Unit
}

// NewTable returns a table with one row per unit, in catalog order.
func NewTable() Table {
	return Table{units: Units()}
}

// Len returns the number of rows.
func (t Table) Len() int {
	return len(t.units)
}

// Unit returns the unit displayed in the row.
// It returns false if the row does not exist.
func (t Table) Unit(row int) (Unit, bool) {
	if row < 0 || row >= len(t.units) {
		return LEX, false
	}
	return t.units[row], true
}

// Name returns the text displayed in the row, the long name of its unit.
func (t Table) Name(row int) (string, bool) {
	u, ok := t.Unit(row)
	if !ok {
		return "", false
	}
	return u.LongName(), true
}

// Tooltip returns the description of the unit in the row.
func (t Table) Tooltip(row int) (string, bool) {
	u, ok := t.Unit(row)
	if !ok {
		return "", false
	}
	return u.Description(), true
}

// Row returns the row displaying unit u, or false if the table has no such row.
func (t Table) Row(u Unit) (int, bool) {
	for i, v := range t.units {
		if v == u {
			return i, true
		}
	}
	return -1, false
}

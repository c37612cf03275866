package units

import "testing"

func TestTable(t *testing.T) {
	tab := NewTable()
	if got, want := tab.Len(), len(Units()); got != want {
		t.Fatalf("NewTable().Len() = %v, want %v", got, want)
	}

	for i, u := range Units() {
		got, ok := tab.Unit(i)
		if !ok || got != u {
			t.Errorf("Unit(%v) = %v, %v, want %v, true", i, got, ok, u)
		}
		name, ok := tab.Name(i)
		if !ok || name != u.LongName() {
			t.Errorf("Name(%v) = %q, %v, want %q, true", i, name, ok, u.LongName())
		}
		tip, ok := tab.Tooltip(i)
		if !ok || tip != u.Description() {
			t.Errorf("Tooltip(%v) = %q, %v, want %q, true", i, tip, ok, u.Description())
		}
		row, ok := tab.Row(u)
		if !ok || row != i {
			t.Errorf("Row(%v) = %v, %v, want %v, true", u, row, ok, i)
		}
	}

	t.Run("out of range", func(t *testing.T) {
		for _, row := range []int{-1, tab.Len(), 100} {
			if _, ok := tab.Unit(row); ok {
				t.Errorf("Unit(%v) reported a row", row)
			}
			if name, ok := tab.Name(row); ok || name != "" {
				t.Errorf("Name(%v) = %q, %v, want \"\", false", row, name, ok)
			}
			if tip, ok := tab.Tooltip(row); ok || tip != "" {
				t.Errorf("Tooltip(%v) = %q, %v, want \"\", false", row, tip, ok)
			}
		}
		if row, ok := tab.Row(Unit(unitCount)); ok || row != -1 {
			t.Errorf("Row(Unit(%v)) = %v, %v, want -1, false", unitCount, row, ok)
		}
	})

	t.Run("names", func(t *testing.T) {
		want := []string{"LEX", "mLEX", "µLEX (bits)", "Satoshi (sat)"}
		for i, w := range want {
			if got, _ := tab.Name(i); got != w {
				t.Errorf("Name(%v) = %q, want %q", i, got, w)
			}
		}
	})
}

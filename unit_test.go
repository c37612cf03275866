package units

import (
	"encoding/json"
	"fmt"
	"testing"
)

func TestUnit_ZeroValue(t *testing.T) {
	var u Unit
	if u != LEX {
		t.Errorf("Unit{} = %v, want %v", u, LEX)
	}
}

func TestUnit_Interfaces(t *testing.T) {
	var i any = LEX
	if _, ok := i.(fmt.Stringer); !ok {
		t.Errorf("%T does not implement fmt.Stringer", i)
	}
	if _, ok := i.(json.Marshaler); !ok {
		t.Errorf("%T does not implement json.Marshaler", i)
	}
	i = new(Unit)
	if _, ok := i.(json.Unmarshaler); !ok {
		t.Errorf("%T does not implement json.Unmarshaler", i)
	}
}

func TestUnits(t *testing.T) {
	got := Units()
	want := []Unit{LEX, MilliLEX, MicroLEX, SAT}
	if len(got) != len(want) {
		t.Fatalf("Units() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Units()[%v] = %v, want %v", i, got[i], want[i])
		}
	}

	t.Run("copy", func(t *testing.T) {
		got[0] = SAT
		if Units()[0] != LEX {
			t.Errorf("Units() shares its result between calls")
		}
	})
}

func TestUnit_Factor(t *testing.T) {
	tests := []struct {
		unit     Unit
		factor   int64
		decimals int
	}{
		{LEX, 100_000_000, 8},
		{MilliLEX, 100_000, 5},
		{MicroLEX, 100, 2},
		{SAT, 1, 0},
	}
	for _, tt := range tests {
		if got := tt.unit.Factor(); got != tt.factor {
			t.Errorf("%v.Factor() = %v, want %v", tt.unit, got, tt.factor)
		}
		if got := tt.unit.Decimals(); got != tt.decimals {
			t.Errorf("%v.Decimals() = %v, want %v", tt.unit, got, tt.decimals)
		}
	}

	t.Run("power of ten", func(t *testing.T) {
		for _, u := range Units() {
			want := int64(1)
			for range u.Decimals() {
				want *= 10
			}
			if got := u.Factor(); got != want {
				t.Errorf("%v.Factor() = %v, want 10^%v", u, got, u.Decimals())
			}
		}
	})
}

func TestUnit_Names(t *testing.T) {
	tests := []struct {
		unit                        Unit
		long, short, desc, colTitle string
	}{
		{LEX, "LEX", "LEX", "biblios", "Amount (LEX)"},
		{MilliLEX, "mLEX", "mLEX", "Milli-biblios (1 / 1\u2009000)", "Amount (mLEX)"},
		{MicroLEX, "µLEX (bits)", "bits", "Micro-biblios (bits) (1 / 1\u2009000\u2009000)", "Amount (bits)"},
		{SAT, "Satoshi (sat)", "sat", "Satoshi (sat) (1 / 100\u2009000\u2009000)", "Amount (sat)"},
	}
	for _, tt := range tests {
		if got := tt.unit.LongName(); got != tt.long {
			t.Errorf("%v.LongName() = %q, want %q", tt.unit, got, tt.long)
		}
		if got := tt.unit.ShortName(); got != tt.short {
			t.Errorf("%v.ShortName() = %q, want %q", tt.unit, got, tt.short)
		}
		if got := tt.unit.String(); got != tt.short {
			t.Errorf("%v.String() = %q, want %q", tt.unit, got, tt.short)
		}
		if got := tt.unit.Description(); got != tt.desc {
			t.Errorf("%v.Description() = %q, want %q", tt.unit, got, tt.desc)
		}
		if got := tt.unit.AmountColumnTitle(); got != tt.colTitle {
			t.Errorf("%v.AmountColumnTitle() = %q, want %q", tt.unit, got, tt.colTitle)
		}
	}
}

func TestUnit_Invalid(t *testing.T) {
	u := Unit(unitCount)
	if u.Valid() {
		t.Errorf("%v.Valid() = true, want false", u)
	}
	if got, want := u.String(), "Unit(4)"; got != want {
		t.Errorf("Unit(4).String() = %q, want %q", got, want)
	}

	methods := map[string]func(){
		"Factor":      func() { u.Factor() },
		"Decimals":    func() { u.Decimals() },
		"LongName":    func() { u.LongName() },
		"ShortName":   func() { u.ShortName() },
		"Description": func() { u.Description() },
		"Tag":         func() { u.Tag() },
	}
	for name, f := range methods {
		t.Run(name, func(t *testing.T) {
			defer func() {
				if r := recover(); r == nil {
					t.Errorf("Unit(4).%v() did not panic", name)
				}
			}()
			f()
		})
	}
}

func TestParseUnit(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			name string
			want Unit
		}{
			{"LEX", LEX},
			{"lex", LEX},
			{"mLEX", MilliLEX},
			{"mlex", MilliLEX},
			{"µLEX (bits)", MicroLEX},
			{"bits", MicroLEX},
			{"uLEX", MicroLEX},
			{"µlex", MicroLEX},
			{"Satoshi (sat)", SAT},
			{"sat", SAT},
			{"SAT", SAT},
			{"satoshi", SAT},
		}
		for _, tt := range tests {
			got, err := ParseUnit(tt.name)
			if err != nil {
				t.Errorf("ParseUnit(%q) failed: %v", tt.name, err)
				continue
			}
			if got != tt.want {
				t.Errorf("ParseUnit(%q) = %v, want %v", tt.name, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []string{
			"", "BTC", "Lex", "MLEX", "bit", " sat", "0",
		}
		for _, tt := range tests {
			_, err := ParseUnit(tt)
			if err == nil {
				t.Errorf("ParseUnit(%q) did not fail", tt)
			}
		}
	})

	t.Run("names round trip", func(t *testing.T) {
		for _, u := range Units() {
			for _, name := range []string{u.LongName(), u.ShortName()} {
				got, err := ParseUnit(name)
				if err != nil || got != u {
					t.Errorf("ParseUnit(%q) = %v, %v, want %v", name, got, err, u)
				}
			}
		}
	})
}

func TestMustParseUnit(t *testing.T) {
	t.Run("error", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("MustParseUnit(\"BTC\") did not panic")
			}
		}()
		MustParseUnit("BTC")
	})
}

func TestUnit_Tag(t *testing.T) {
	tests := []struct {
		unit Unit
		tag  uint8
	}{
		{LEX, 0},
		{MilliLEX, 1},
		{MicroLEX, 2},
		{SAT, 3},
	}
	for _, tt := range tests {
		if got := tt.unit.Tag(); got != tt.tag {
			t.Errorf("%v.Tag() = %v, want %v", tt.unit, got, tt.tag)
		}
		got, err := UnitFromTag(tt.tag)
		if err != nil {
			t.Errorf("UnitFromTag(%v) failed: %v", tt.tag, err)
			continue
		}
		if got != tt.unit {
			t.Errorf("UnitFromTag(%v) = %v, want %v", tt.tag, got, tt.unit)
		}
	}

	t.Run("error", func(t *testing.T) {
		for _, tag := range []uint8{4, 5, 127, 255} {
			if _, err := UnitFromTag(tag); err == nil {
				t.Errorf("UnitFromTag(%v) did not fail", tag)
			}
		}
	})

	t.Run("panic", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("MustUnitFromTag(200) did not panic")
			}
		}()
		MustUnitFromTag(200)
	})
}

func TestUnit_Binary(t *testing.T) {
	for _, u := range Units() {
		data, err := u.MarshalBinary()
		if err != nil {
			t.Errorf("%v.MarshalBinary() failed: %v", u, err)
			continue
		}
		if len(data) != 1 || data[0] != u.Tag() {
			t.Errorf("%v.MarshalBinary() = %v, want [%v]", u, data, u.Tag())
		}
		var got Unit
		if err := got.UnmarshalBinary(data); err != nil {
			t.Errorf("UnmarshalBinary(%v) failed: %v", data, err)
			continue
		}
		if got != u {
			t.Errorf("UnmarshalBinary(%v) = %v, want %v", data, got, u)
		}
	}

	t.Run("error", func(t *testing.T) {
		tests := [][]byte{nil, {}, {4}, {0, 1}}
		for _, tt := range tests {
			var u Unit
			if err := u.UnmarshalBinary(tt); err == nil {
				t.Errorf("UnmarshalBinary(%v) did not fail", tt)
			}
		}
	})
}

func TestUnit_JSON(t *testing.T) {
	type settings struct {
		Unit Unit `json:"unit"`
	}
	for _, u := range Units() {
		data, err := json.Marshal(settings{Unit: u})
		if err != nil {
			t.Errorf("json.Marshal(%v) failed: %v", u, err)
			continue
		}
		want := `{"unit":"` + u.ShortName() + `"}`
		if string(data) != want {
			t.Errorf("json.Marshal(%v) = %s, want %s", u, data, want)
		}
		var got settings
		if err := json.Unmarshal(data, &got); err != nil {
			t.Errorf("json.Unmarshal(%s) failed: %v", data, err)
			continue
		}
		if got.Unit != u {
			t.Errorf("json.Unmarshal(%s) = %v, want %v", data, got.Unit, u)
		}
	}

	t.Run("null", func(t *testing.T) {
		got := settings{Unit: SAT}
		if err := json.Unmarshal([]byte(`{"unit":null}`), &got); err != nil {
			t.Errorf("json.Unmarshal(null) failed: %v", err)
		}
		if got.Unit != SAT {
			t.Errorf("json.Unmarshal(null) = %v, want %v", got.Unit, SAT)
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []string{`{"unit":"BTC"}`, `{"unit":""}`, `{"unit":3}`}
		for _, tt := range tests {
			var got settings
			if err := json.Unmarshal([]byte(tt), &got); err == nil {
				t.Errorf("json.Unmarshal(%s) did not fail", tt)
			}
		}
	})
}

func TestUnit_Text(t *testing.T) {
	for _, u := range Units() {
		text, err := u.MarshalText()
		if err != nil {
			t.Errorf("%v.MarshalText() failed: %v", u, err)
			continue
		}
		var got Unit
		if err := got.UnmarshalText(text); err != nil {
			t.Errorf("UnmarshalText(%q) failed: %v", text, err)
			continue
		}
		if got != u {
			t.Errorf("UnmarshalText(%q) = %v, want %v", text, got, u)
		}
	}
}

func TestUnit_Scan(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			value any
			want  Unit
		}{
			{int64(0), LEX},
			{int64(3), SAT},
			{"bits", MicroLEX},
			{[]byte("mLEX"), MilliLEX},
		}
		for _, tt := range tests {
			var got Unit
			if err := got.Scan(tt.value); err != nil {
				t.Errorf("Scan(%v) failed: %v", tt.value, err)
				continue
			}
			if got != tt.want {
				t.Errorf("Scan(%v) = %v, want %v", tt.value, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []any{nil, int64(-1), int64(4), int64(256), "BTC", 1.5, true}
		for _, tt := range tests {
			var u Unit
			if err := u.Scan(tt); err == nil {
				t.Errorf("Scan(%v) did not fail", tt)
			}
		}
	})
}

func TestUnit_Value(t *testing.T) {
	for _, u := range Units() {
		got, err := u.Value()
		if err != nil {
			t.Errorf("%v.Value() failed: %v", u, err)
			continue
		}
		if got != int64(u.Tag()) {
			t.Errorf("%v.Value() = %v, want %v", u, got, u.Tag())
		}
	}
}

func TestUnit_Format(t *testing.T) {
	tests := []struct {
		unit         Unit
		format, want string
	}{
		// %T verb
		{LEX, "%T", "units.Unit"},
		// %q verb
		{SAT, "%q", "\"sat\""},
		{SAT, "%6q", " \"sat\""},
		{SAT, "%07q", "  \"sat\""}, // '0' is ignored
		{SAT, "%-7q", "\"sat\"  "},
		// %s verb
		{MicroLEX, "%s", "bits"},
		{MicroLEX, "%6s", "  bits"},
		{MicroLEX, "%+6s", "  bits"}, // '+' is ignored
		{MicroLEX, "%-6s", "bits  "},
		// %v verb
		{MilliLEX, "%v", "mLEX"},
		{MilliLEX, "%5v", " mLEX"},
		{MilliLEX, "%-5v", "mLEX "},
		{MilliLEX, "%2v", "mLEX"},
		// %c verb
		{LEX, "%c", "LEX"},
		{LEX, "%-5c", "LEX  "},
		// invalid unit
		{Unit(unitCount), "%v", "Unit(4)"},
		// wrong verbs
		{LEX, "%d", "%!d(units.Unit=LEX)"},
		{SAT, "%b", "%!b(units.Unit=sat)"},
	}
	for _, tt := range tests {
		got := fmt.Sprintf(tt.format, tt.unit)
		if got != tt.want {
			t.Errorf("fmt.Sprintf(%q, %v) = %q, want %q", tt.format, tt.unit, got, tt.want)
		}
	}
}

func TestNullUnit_Scan(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			value any
			want  NullUnit
		}{
			{nil, NullUnit{}},
			{int64(3), NullUnit{Unit: SAT, Valid: true}},
			{"bits", NullUnit{Unit: MicroLEX, Valid: true}},
			{[]byte("LEX"), NullUnit{Unit: LEX, Valid: true}},
		}
		for _, tt := range tests {
			got := NullUnit{Unit: MilliLEX, Valid: true}
			if err := got.Scan(tt.value); err != nil {
				t.Errorf("Scan(%v) failed: %v", tt.value, err)
				continue
			}
			if got != tt.want {
				t.Errorf("Scan(%v) = %v, want %v", tt.value, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []any{int64(4), "BTC", 1.5}
		for _, tt := range tests {
			got := NullUnit{}
			if err := got.Scan(tt); err == nil {
				t.Errorf("Scan(%v) did not fail", tt)
			}
		}
	})
}

func TestNullUnit_Value(t *testing.T) {
	got, err := NullUnit{}.Value()
	if err != nil || got != nil {
		t.Errorf("NullUnit{}.Value() = %v, %v, want nil, nil", got, err)
	}
	got, err = NullUnit{Unit: SAT, Valid: true}.Value()
	if err != nil || got != int64(3) {
		t.Errorf("NullUnit{SAT}.Value() = %v, %v, want 3, nil", got, err)
	}
}

func TestNullUnit_JSON(t *testing.T) {
	type settings struct {
		Unit NullUnit `json:"unit"`
	}
	tests := []struct {
		value NullUnit
		want  string
	}{
		{NullUnit{}, `{"unit":null}`},
		{NullUnit{Unit: MicroLEX, Valid: true}, `{"unit":"bits"}`},
	}
	for _, tt := range tests {
		data, err := json.Marshal(settings{Unit: tt.value})
		if err != nil {
			t.Errorf("json.Marshal(%v) failed: %v", tt.value, err)
			continue
		}
		if string(data) != tt.want {
			t.Errorf("json.Marshal(%v) = %s, want %s", tt.value, data, tt.want)
		}
		got := settings{Unit: NullUnit{Unit: SAT, Valid: true}}
		if err := json.Unmarshal(data, &got); err != nil {
			t.Errorf("json.Unmarshal(%s) failed: %v", data, err)
			continue
		}
		if got.Unit != tt.value {
			t.Errorf("json.Unmarshal(%s) = %v, want %v", data, got.Unit, tt.value)
		}
	}

	t.Run("error", func(t *testing.T) {
		var got settings
		if err := json.Unmarshal([]byte(`{"unit":"BTC"}`), &got); err == nil {
			t.Errorf("json.Unmarshal(BTC) did not fail")
		}
	})
}

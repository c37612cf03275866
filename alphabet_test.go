package units

import "testing"

func TestIsAmountRune(t *testing.T) {
	accepted := "0123456789.+- \t\n\u00a0\u2009\u202f\u3000"
	for _, r := range accepted {
		if !IsAmountRune(r) {
			t.Errorf("IsAmountRune(%q) = false, want true", r)
		}
	}

	rejected := "aAeExX,_'\u00bd\u0661\uff11\x00\ufffd"
	for _, r := range rejected {
		if IsAmountRune(r) {
			t.Errorf("IsAmountRune(%q) = true, want false", r)
		}
	}

	t.Run("format output", func(t *testing.T) {
		styles := []SeparatorStyle{SeparatorStandard, SeparatorNever, SeparatorAlways}
		for _, u := range Units() {
			for _, sep := range styles {
				s := Format(u, -123456789012345, true, sep, true)
				for _, r := range s {
					if !IsAmountRune(r) {
						t.Errorf("Format(%v, ...) = %q, contains %q", u, s, r)
					}
				}
			}
		}
	})
}

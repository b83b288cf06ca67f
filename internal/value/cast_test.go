package value

import (
	"testing"

	"github.com/ctlang/ctc/internal/types"
)

func TestCastIntStringRoundTrip(t *testing.T) {
	tests := []int64{0, 1, 42, -42, 1000000}

	for _, n := range tests {
		v := Int(n)
		asStr := Cast(v, types.STRING)
		back := Cast(asStr, types.INT64)

		if back.Signed() != n {
			t.Errorf("round trip %d -> %q -> %d", n, asStr.S, back.Signed())
		}
	}
}

func TestCastToBool(t *testing.T) {
	tests := []struct {
		name string
		in   Value
		want bool
	}{
		{"nonzero int", Int(1), true},
		{"zero int", Int(0), false},
		{"nonzero float", Float(0.5), true},
		{"zero float", Float(0), false},
		{"string false", Str("false"), false},
		{"empty string", Str(""), false},
		{"other string", Str("hi"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Cast(tt.in, types.BOOL)
			if got.B != tt.want {
				t.Errorf("Cast(%v, BOOL) = %v, want %v", tt.in, got.B, tt.want)
			}
		})
	}
}

func TestCastBoolToString(t *testing.T) {
	if Cast(Bool(true), types.STRING).S != "true" {
		t.Error("true should cast to \"true\"")
	}
	if Cast(Bool(false), types.STRING).S != "false" {
		t.Error("false should cast to \"false\"")
	}
}

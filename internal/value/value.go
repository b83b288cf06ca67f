// Package value implements the compile-time constant values the checker
// folds literals into, and the pure evaluation, cast, and range-check
// functions that operate over them.
package value

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ctlang/ctc/internal/types"
)

// Kind is the tag of a compile-time constant Value.
type Kind int

const (
	NULL Kind = iota
	BOOL
	INT
	FP
	STR
	OBJ
	ADDR
)

// Value is a compile-time constant. Only the field matching Kind is
// meaningful; the rest are zero. INT carries magnitude in an unsigned field
// plus a separate sign flag so that the full two's-complement magnitude
// survives until the assignment-time range check against a target width.
type Value struct {
	Kind Kind

	B bool   // BOOL
	I uint64 // INT magnitude
	Neg bool // INT sign
	D   float64 // FP
	S   string  // STR
	Obj uintptr // OBJ handle
	Addr uint32 // ADDR offset
}

func Null() Value             { return Value{Kind: NULL} }
func Bool(b bool) Value       { return Value{Kind: BOOL, B: b} }
func Str(s string) Value      { return Value{Kind: STR, S: s} }
func Obj2(h uintptr) Value    { return Value{Kind: OBJ, Obj: h} }
func Addr2(off uint32) Value  { return Value{Kind: ADDR, Addr: off} }

// Int builds an INT value from a signed magnitude, matching the source
// representation of a negative literal (sign flag, unsigned magnitude).
func Int(i int64) Value {
	if i < 0 {
		return Value{Kind: INT, I: uint64(-i), Neg: true}
	}
	return Value{Kind: INT, I: uint64(i)}
}

// IntMag builds an INT value directly from an unsigned magnitude and sign
// flag, as used by the unary negation and integer cast paths.
func IntMag(mag uint64, neg bool) Value {
	return Value{Kind: INT, I: mag, Neg: neg}
}

func Float(d float64) Value { return Value{Kind: FP, D: d} }

func (v Value) IsNull() bool { return v.Kind == NULL }
func (v Value) IsBool() bool { return v.Kind == BOOL }
func (v Value) IsInt() bool  { return v.Kind == INT }
func (v Value) IsFP() bool   { return v.Kind == FP }
func (v Value) IsStr() bool  { return v.Kind == STR }
func (v Value) IsObj() bool  { return v.Kind == OBJ }
func (v Value) IsAddr() bool { return v.Kind == ADDR }

// IsZero reports whether v is the additive identity of its kind; used to
// detect division and modulo by zero before folding.
func (v Value) IsZero() bool {
	switch v.Kind {
	case INT:
		return v.I == 0
	case FP:
		return v.D == 0
	default:
		return false
	}
}

// Signed returns the int64 representation of an INT value.
func (v Value) Signed() int64 {
	if v.Neg {
		return -int64(v.I)
	}
	return int64(v.I)
}

// String renders the value as it would be printed by a diagnostic message.
func (v Value) String() string {
	switch v.Kind {
	case NULL:
		return "null"
	case BOOL:
		if v.B {
			return "true"
		}
		return "false"
	case INT:
		if v.Neg {
			return "-" + strconv.FormatUint(v.I, 10)
		}
		return strconv.FormatUint(v.I, 10)
	case FP:
		return strconv.FormatFloat(v.D, 'f', -1, 64)
	case STR:
		return v.S
	case OBJ:
		return fmt.Sprintf("obj(%d)", v.Obj)
	case ADDR:
		return fmt.Sprintf("addr(%d)", v.Addr)
	default:
		return "<invalid value>"
	}
}

// Check validates that a value's kind agrees with a meta's primitive type.
// This mirrors value_check in the original implementation: a programmer-fault
// assertion, not a user-facing diagnostic, since the checker never constructs
// a mismatched pair.
func Check(v Value, t types.Type) bool {
	switch v.Kind {
	case BOOL:
		return t.IsBool()
	case INT:
		return t.IsDecFamily()
	case FP:
		return t.IsFPFamily()
	case STR:
		return t.IsString()
	case OBJ:
		return t.IsObjFamily()
	case ADDR:
		return t.IsString() || t.IsStruct() || t.IsTuple()
	default:
		return false
	}
}

// mustSameKind panics if x and y differ in Kind; a checker bug, not a user
// diagnostic, mirrors the ASSERT2 calls guarding every evaluator in the
// original value.c.
func mustSameKind(x, y Value) {
	if x.Kind != y.Kind {
		panic(fmt.Sprintf("value: mismatched kinds in binary eval: %v vs %v", x.Kind, y.Kind))
	}
}

// Compare orders two values of the same kind. Strings compare
// lexicographically; booleans treat false < true.
func Compare(x, y Value) int {
	mustSameKind(x, y)

	switch x.Kind {
	case BOOL:
		if x.B == y.B {
			return 0
		}
		if x.B {
			return 1
		}
		return -1
	case INT:
		xs, ys := x.Signed(), y.Signed()
		switch {
		case xs == ys:
			return 0
		case xs > ys:
			return 1
		default:
			return -1
		}
	case FP:
		switch {
		case x.D == y.D:
			return 0
		case x.D > y.D:
			return 1
		default:
			return -1
		}
	case STR:
		return strings.Compare(x.S, y.S)
	default:
		panic(fmt.Sprintf("value: invalid value kind for comparison: %v", x.Kind))
	}
}

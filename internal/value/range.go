package value

import (
	"math"

	"github.com/ctlang/ctc/internal/types"
)

// CheckRange decides whether a literal value fits a target numeric Meta,
// per §4.4.2. BOOL and STRING targets are a kind check only.
func CheckRange(val Value, target types.Type) bool {
	switch {
	case target.IsBool():
		return val.IsBool()
	case target.IsString():
		return val.IsStr()
	case target == types.FLOAT:
		if !val.IsFP() {
			return false
		}
		return math.Abs(val.D) <= math.MaxFloat32
	case target == types.DOUBLE:
		return val.IsFP()
	case target.IsSigned():
		return checkSignedRange(val, target.BitWidth())
	case target.IsUnsigned():
		return checkUnsignedRange(val, target.BitWidth())
	default:
		return false
	}
}

// checkSignedRange implements: negative magnitude must be <= 2^(w-1);
// non-negative magnitude must be <= 2^(w-1) - 1.
func checkSignedRange(val Value, width int) bool {
	if !val.IsInt() {
		return false
	}
	max := uint64(1) << uint(width-1)
	if val.Neg {
		return val.I <= max
	}
	return val.I <= max-1
}

// checkUnsignedRange implements: no negative values; magnitude must be
// <= 2^w - 1.
func checkUnsignedRange(val Value, width int) bool {
	if !val.IsInt() {
		return false
	}
	if val.Neg {
		return false
	}
	if width == 64 {
		return true // every uint64 magnitude fits a 64-bit unsigned width
	}
	max := (uint64(1) << uint(width)) - 1
	return val.I <= max
}

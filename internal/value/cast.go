package value

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ctlang/ctc/internal/types"
)

// Cast coerces val to the family named by to (BOOL, an integer width, a
// floating point width, or STRING) following the component-wise rules of
// §4.4.3: numeric non-zero is true, the literal string "false" or an absent
// string is false; int promotes to float; float truncates to int; anything
// formats to string; string parses as base-10, respecting a leading '-'.
func Cast(val Value, to types.Type) Value {
	switch {
	case to.IsBool():
		return castToBool(val)
	case to.IsDecFamily():
		return castToInt(val)
	case to.IsFPFamily():
		return castToFP(val)
	case to.IsString():
		return castToStr(val)
	default:
		panic(fmt.Sprintf("value: invalid cast target %v", to))
	}
}

func castToBool(val Value) Value {
	switch val.Kind {
	case BOOL:
		return val
	case INT:
		return Bool(val.I != 0)
	case FP:
		return Bool(val.D != 0)
	case STR:
		return Bool(val.S != "" && val.S != "false")
	default:
		panic(fmt.Sprintf("value: invalid value for bool cast: %v", val.Kind))
	}
}

func castToInt(val Value) Value {
	switch val.Kind {
	case BOOL:
		if val.B {
			return Int(1)
		}
		return Int(0)
	case INT:
		return val
	case FP:
		if val.D < 0 {
			return Int(int64(val.D))
		}
		return IntMag(uint64(val.D), false)
	case STR:
		s := val.S
		neg := false
		if strings.HasPrefix(s, "-") {
			neg = true
			s = s[1:]
		}
		mag, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			mag = 0
		}
		return IntMag(mag, neg)
	default:
		panic(fmt.Sprintf("value: invalid value for int cast: %v", val.Kind))
	}
}

func castToFP(val Value) Value {
	switch val.Kind {
	case BOOL:
		if val.B {
			return Float(1)
		}
		return Float(0)
	case INT:
		return Float(float64(val.Signed()))
	case FP:
		return val
	case STR:
		d, err := strconv.ParseFloat(val.S, 64)
		if err != nil {
			d = 0
		}
		return Float(d)
	default:
		panic(fmt.Sprintf("value: invalid value for float cast: %v", val.Kind))
	}
}

func castToStr(val Value) Value {
	switch val.Kind {
	case BOOL:
		if val.B {
			return Str("true")
		}
		return Str("false")
	case INT:
		if val.Neg {
			return Str("-" + strconv.FormatUint(val.I, 10))
		}
		return Str(strconv.FormatUint(val.I, 10))
	case FP:
		return Str(strconv.FormatFloat(val.D, 'f', -1, 64))
	case STR:
		return val
	default:
		panic(fmt.Sprintf("value: invalid value for string cast: %v", val.Kind))
	}
}

// Package types defines the closed enumeration of primitive compile-time
// types shared by the Meta and Value models. It has no dependencies on the
// AST or checker so that both can build on top of it without an import
// cycle.
package types

// Type is the closed set of primitive type tags a Meta can carry.
type Type int

const (
	NONE Type = iota
	BOOL
	BYTE
	INT8
	UINT8
	INT16
	UINT16
	INT32
	UINT32
	INT64
	UINT64
	FLOAT
	DOUBLE
	STRING
	STRUCT
	MAP
	ARRAY
	TUPLE
	REF
	VOID
	OBJECT
)

var names = map[Type]string{
	NONE:   "none",
	BOOL:   "bool",
	BYTE:   "byte",
	INT8:   "int8",
	UINT8:  "uint8",
	INT16:  "int16",
	UINT16: "uint16",
	INT32:  "int32",
	UINT32: "uint32",
	INT64:  "int64",
	UINT64: "uint64",
	FLOAT:  "float",
	DOUBLE: "double",
	STRING: "string",
	STRUCT: "struct",
	MAP:    "map",
	ARRAY:  "array",
	TUPLE:  "tuple",
	REF:    "ref",
	VOID:   "void",
	OBJECT: "object",
}

func (t Type) String() string {
	if n, ok := names[t]; ok {
		return n
	}
	return "unknown"
}

// IsDecFamily reports whether t is one of the integer-decimal types that a
// VAL_INT value may be checked against (byte and the signed/unsigned widths).
func (t Type) IsDecFamily() bool {
	switch t {
	case BYTE, INT8, UINT8, INT16, UINT16, INT32, UINT32, INT64, UINT64:
		return true
	}
	return false
}

// IsFPFamily reports whether t is a floating point type.
func (t Type) IsFPFamily() bool {
	return t == FLOAT || t == DOUBLE
}

// IsNumeric reports whether t is an integer or floating point type.
func (t Type) IsNumeric() bool {
	return t.IsDecFamily() || t.IsFPFamily()
}

// IsInteger reports whether t is any integer width, signed or unsigned.
func (t Type) IsInteger() bool {
	return t.IsDecFamily()
}

// IsSigned reports whether t is a signed integer width.
func (t Type) IsSigned() bool {
	switch t {
	case INT8, INT16, INT32, INT64:
		return true
	}
	return false
}

// IsUnsigned reports whether t is an unsigned integer width (byte counts as
// unsigned for range-checking purposes).
func (t Type) IsUnsigned() bool {
	switch t {
	case BYTE, UINT8, UINT16, UINT32, UINT64:
		return true
	}
	return false
}

// BitWidth returns the bit width of an integer or floating point type, or 0
// for any other type.
func (t Type) BitWidth() int {
	switch t {
	case BYTE, INT8, UINT8:
		return 8
	case INT16, UINT16:
		return 16
	case INT32, UINT32, FLOAT:
		return 32
	case INT64, UINT64, DOUBLE:
		return 64
	}
	return 0
}

func (t Type) IsBool() bool   { return t == BOOL }
func (t Type) IsString() bool { return t == STRING }
func (t Type) IsStruct() bool { return t == STRUCT }
func (t Type) IsMap() bool    { return t == MAP }
func (t Type) IsArray() bool  { return t == ARRAY }
func (t Type) IsTuple() bool  { return t == TUPLE }
func (t Type) IsRef() bool    { return t == REF }
func (t Type) IsVoid() bool   { return t == VOID }

// IsObjFamily reports whether t is a reference-counted object family member
// (struct, ref, or the catch-all object handle).
func (t Type) IsObjFamily() bool {
	return t == STRUCT || t == REF || t == OBJECT
}

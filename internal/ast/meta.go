package ast

import (
	"fmt"
	"strings"

	"github.com/ctlang/ctc/internal/types"
)

// Meta describes the compile-time type of an AST node. Structural payload
// is only meaningful for the Type it was constructed with: Key/Val for MAP,
// Elems for TUPLE, Elem/Dims for ARRAY, Decl for STRUCT and REF.
type Meta struct {
	Type    types.Type
	Untyped bool

	Key *Meta // MAP key
	Val *Meta // MAP value

	Elems []*Meta // TUPLE elements, fixed arity at construction

	Elem *Meta // ARRAY element
	Dims []int // ARRAY dimensions, outermost first

	Decl *Id // STRUCT / REF: the declaring Id
}

// NewMeta builds a plain, pinned Meta of the given primitive type.
func NewMeta(t types.Type) *Meta {
	return &Meta{Type: t}
}

// NewUntypedMeta builds an untyped Meta. Per the data model invariant, t
// must be the widest representative of its family: INT64, DOUBLE, BOOL,
// STRING, or MAP.
func NewUntypedMeta(t types.Type) *Meta {
	switch t {
	case types.INT64, types.DOUBLE, types.BOOL, types.STRING, types.MAP:
		return &Meta{Type: t, Untyped: true}
	default:
		panic(fmt.Sprintf("ast: invalid untyped meta type %v", t))
	}
}

func NewBoolMeta() *Meta   { return NewMeta(types.BOOL) }
func NewStringMeta() *Meta { return NewMeta(types.STRING) }
func NewInt32Meta() *Meta  { return NewMeta(types.INT32) }
func NewVoidMeta() *Meta   { return NewMeta(types.VOID) }
func NewRefMeta(decl *Id) *Meta {
	return &Meta{Type: types.REF, Decl: decl}
}

func NewStructMeta(decl *Id) *Meta {
	return &Meta{Type: types.STRUCT, Decl: decl}
}

func NewMapMeta(key, val *Meta) *Meta {
	return &Meta{Type: types.MAP, Key: key, Val: val}
}

// NewArrayMeta builds an ARRAY meta over elem with the given dimensions.
func NewArrayMeta(elem *Meta, dims ...int) *Meta {
	return &Meta{Type: types.ARRAY, Elem: elem, Dims: dims}
}

// NewTupleMeta builds a TUPLE meta; element count is fixed at construction
// and never mutated afterward.
func NewTupleMeta(elems []*Meta) *Meta {
	fixed := make([]*Meta, len(elems))
	copy(fixed, elems)
	return &Meta{Type: types.TUPLE, Elems: fixed}
}

// Copy produces a shallow structural copy of m, used when a declaration's
// Meta is copied onto a referencing expression (meta_copy in the original).
func (m *Meta) Copy() *Meta {
	if m == nil {
		return nil
	}
	cp := *m
	return &cp
}

// Comparable reports whether m is usable as a MAP key: a scalar, not an
// aggregate (MAP, ARRAY, TUPLE, STRUCT).
func (m *Meta) Comparable() bool {
	switch m.Type {
	case types.MAP, types.ARRAY, types.TUPLE, types.STRUCT:
		return false
	default:
		return true
	}
}

// Equals reports whether m and other are compatible for assignment or as
// operator operands. When both sides are typed (or both untyped), aggregate
// types (MAP, ARRAY, TUPLE, STRUCT, REF) require exact structural equality
// and scalar types require exact Type equality. When exactly one side is
// untyped, the untyped Meta is the literal's widest family representative
// (INT64, DOUBLE, BOOL, STRING, or MAP — see the Meta invariants), so it
// compares equal to any pinned Meta of the same family; an untyped MAP
// (from the `map(...)` constructor) therefore equals any MAP Meta without a
// key/value comparison. This is what lets `int8 x = 1` succeed before the
// literal's width is pinned by the assignment-time range check.
func (m *Meta) Equals(other *Meta) bool {
	if m == nil || other == nil {
		return m == other
	}

	if m.Untyped != other.Untyped {
		if sameFamily(m.Type, other.Type) {
			return true
		}
		return false
	}

	if m.Type != other.Type {
		return false
	}

	switch m.Type {
	case types.MAP:
		return m.Key.Equals(other.Key) && m.Val.Equals(other.Val)
	case types.ARRAY:
		if len(m.Dims) != len(other.Dims) {
			return false
		}
		for i := range m.Dims {
			if m.Dims[i] != other.Dims[i] {
				return false
			}
		}
		return m.Elem.Equals(other.Elem)
	case types.TUPLE:
		if len(m.Elems) != len(other.Elems) {
			return false
		}
		for i := range m.Elems {
			if !m.Elems[i].Equals(other.Elems[i]) {
				return false
			}
		}
		return true
	case types.STRUCT, types.REF:
		return m.Decl == other.Decl
	default:
		return true
	}
}

// sameFamily reports whether a and b belong to the same type family for
// the purpose of untyped-literal compatibility: both integer widths, both
// floating-point widths, or the same non-numeric scalar type.
func sameFamily(a, b types.Type) bool {
	switch {
	case a.IsDecFamily() && b.IsDecFamily():
		return true
	case a.IsFPFamily() && b.IsFPFamily():
		return true
	default:
		return a == b
	}
}

// Merge combines the Metas of two operands of a binary operator into the
// result Meta: typed wins over untyped (meta_merge). Both operands are
// assumed already Equals.
func Merge(l, r *Meta) *Meta {
	if !l.Untyped {
		return l.Copy()
	}
	if !r.Untyped {
		return r.Copy()
	}
	return l.Copy()
}

// String renders m for diagnostic messages (meta_to_str).
func (m *Meta) String() string {
	if m == nil {
		return "<nil>"
	}

	switch m.Type {
	case types.MAP:
		return fmt.Sprintf("map(%s, %s)", m.Key, m.Val)
	case types.ARRAY:
		dims := make([]string, len(m.Dims))
		for i, d := range m.Dims {
			dims[i] = fmt.Sprintf("[%d]", d)
		}
		return fmt.Sprintf("%s%s", m.Elem, strings.Join(dims, ""))
	case types.TUPLE:
		parts := make([]string, len(m.Elems))
		for i, e := range m.Elems {
			parts[i] = e.String()
		}
		return fmt.Sprintf("(%s)", strings.Join(parts, ", "))
	case types.STRUCT, types.REF:
		if m.Decl != nil {
			return m.Decl.Name
		}
		return m.Type.String()
	default:
		return m.Type.String()
	}
}

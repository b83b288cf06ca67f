// Package codegen defines the narrow facade the checker-and-IR pipeline
// emits against: one method per expression kind and one per statement
// kind, each returning an opaque back-end expression ref. This package
// does not produce WASM itself; a Backend implementation owns the module,
// memory layout, and function-index space and does the actual emission
// (Binaryen, in the reference toolchain this was distilled from).
package codegen

import (
	"github.com/ctlang/ctc/internal/ast"
	"github.com/ctlang/ctc/internal/value"
)

// Expr is an opaque back-end expression reference. This package never
// inspects it.
type Expr interface{}

// Backend is implemented by whatever code generator a driver plugs in.
// Every method corresponds to one AST expression or statement kind; see
// GenExp and GenStmt for the dispatch that calls them.
type Backend interface {
	ID(id *ast.Id) Expr
	Val(v value.Value, meta *ast.Meta) Expr
	// Array builds a map/array element access. lvalue selects whether the
	// caller wants the element's address (for a store) or its loaded
	// value.
	Array(base, idx Expr, meta *ast.Meta, lvalue bool) Expr
	Op(op ast.OpKind, l, r Expr, meta *ast.Meta) Expr
	Access(base, field Expr) Expr
	Call(fn *ast.Id, args []Expr) Expr
	SQL(kind ast.SQLKind, text string) Expr
	Ternary(pre, in, post Expr) Expr
	Tuple(elems []Expr) Expr
	Reg(idx uint32) Expr
	Global(name string) Expr
	Mem(base, addr, offset uint32, meta *ast.Meta) Expr

	// Statement-level primitives.
	Drop(e Expr) Expr
	SetGlobal(name string, val Expr) Expr
	SetLocal(idx uint32, val Expr) Expr
	GetLocal(idx uint32) Expr
	Store(byteWidth int, offset uint32, address, val Expr, meta *ast.Meta) Expr
	Return(arg Expr) Expr
	I32Const(v int32) Expr
	SyslibCall(fn string, args ...Expr) Expr

	// InternString writes s into the module's data segment (deduping
	// repeats) and returns its byte offset.
	InternString(s string) uint32
}

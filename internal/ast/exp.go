package ast

import (
	"github.com/ctlang/ctc/internal/types"
	"github.com/ctlang/ctc/internal/value"
)

// ExpKind is the discriminant of an expression node.
type ExpKind int

const (
	ExpNull ExpKind = iota
	ExpID
	ExpVal
	ExpType
	ExpArray
	ExpOp
	ExpAccess
	ExpCall
	ExpSQL
	ExpTernary
	ExpTuple
	ExpReg
	ExpGlobal
	ExpMem
)

// OpKind is the operator carried by an ExpOp node.
type OpKind int

const (
	OpAdd OpKind = iota
	OpSub
	OpMul
	OpDiv
	OpMod
	OpBitAnd
	OpBitOr
	OpBitXor
	OpShl
	OpShr
	OpEq
	OpNe
	OpLt
	OpGt
	OpLe
	OpGe
	OpInc
	OpDec
	OpNot
	OpNeg
	OpAnd
	OpOr
	OpAssign
)

// SQLKind classifies a SQL expression.
type SQLKind int

const (
	SQLQuery SQLKind = iota
	SQLInsert
	SQLUpdate
	SQLDelete
)

// Exp is an expression node. Every expression carries a Meta (filled in by
// the checker), a back-reference Id populated when the expression resolves
// to a declaration, and a Pos. Only the fields relevant to Kind are
// meaningful; this mirrors the tagged union of the original implementation
// so that constant folding can rewrite a node's Kind and payload in place
// (e.g. ExpOp -> ExpVal) without invalidating any parent's pointer to it.
type Exp struct {
	Kind ExpKind
	Pos  Position
	Meta *Meta
	Id   *Id

	// ExpID
	Name string

	// ExpVal
	Val value.Value

	// ExpType
	TypeOf   types.Type
	KeyExp   *Exp
	ValExp   *Exp
	TypeName string

	// ExpArray
	ArrBase *Exp
	ArrIdx  *Exp

	// ExpOp
	Op OpKind
	L  *Exp
	R  *Exp // nil for unary operators

	// ExpAccess
	AccBase  *Exp
	AccField *Exp

	// ExpCall
	CallFn   *Exp
	CallArgs []*Exp

	// ExpSQL
	SQLKind SQLKind
	SQLText string

	// ExpTernary
	Pre  *Exp
	In   *Exp
	Post *Exp

	// ExpTuple
	Elems []*Exp

	// ExpReg
	RegIdx uint32

	// ExpGlobal
	GlobalName string

	// ExpMem
	MemBase   uint32
	MemAddr   uint32
	MemOffset uint32
}

// IsID, IsVal, ... are convenience predicates mirroring the original
// is_id_exp/is_val_exp family used throughout the checker.
func (e *Exp) IsID() bool      { return e != nil && e.Kind == ExpID }
func (e *Exp) IsVal() bool     { return e != nil && e.Kind == ExpVal }
func (e *Exp) IsType() bool    { return e != nil && e.Kind == ExpType }
func (e *Exp) IsArray() bool   { return e != nil && e.Kind == ExpArray }
func (e *Exp) IsOp() bool      { return e != nil && e.Kind == ExpOp }
func (e *Exp) IsAccess() bool  { return e != nil && e.Kind == ExpAccess }
func (e *Exp) IsCall() bool    { return e != nil && e.Kind == ExpCall }
func (e *Exp) IsSQL() bool     { return e != nil && e.Kind == ExpSQL }
func (e *Exp) IsTernary() bool { return e != nil && e.Kind == ExpTernary }
func (e *Exp) IsTuple() bool   { return e != nil && e.Kind == ExpTuple }
func (e *Exp) IsGlobal() bool  { return e != nil && e.Kind == ExpGlobal }
func (e *Exp) IsReg() bool     { return e != nil && e.Kind == ExpReg }
func (e *Exp) IsMem() bool     { return e != nil && e.Kind == ExpMem }

// foldToVal rewrites e in place into an ExpVal node carrying v, with meta
// set to an untyped Meta of t. Used by the checker's constant folder so
// that every existing reference to e (as an operand of an enclosing
// expression) observes the folded value without the tree being rebuilt.
func (e *Exp) foldToVal(v value.Value, t types.Type) {
	e.Kind = ExpVal
	e.Val = v
	e.Meta = NewUntypedMeta(t)
}

// FoldToVal exposes foldToVal to the checker package.
func (e *Exp) FoldToVal(v value.Value, t types.Type) { e.foldToVal(v, t) }

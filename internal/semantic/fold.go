package semantic

import (
	"github.com/ctlang/ctc/internal/ast"
	"github.com/ctlang/ctc/internal/diag"
	"github.com/ctlang/ctc/internal/types"
	"github.com/ctlang/ctc/internal/value"
)

// opToValueOp maps an AST operator to the pure value.Op it folds through.
// OpInc, OpDec, and OpAssign have no entry: they act on lvalues, not
// constant values, and are never folded.
var opToValueOp = map[ast.OpKind]value.Op{
	ast.OpAdd:    value.OpAdd,
	ast.OpSub:    value.OpSub,
	ast.OpMul:    value.OpMul,
	ast.OpDiv:    value.OpDiv,
	ast.OpMod:    value.OpMod,
	ast.OpBitAnd: value.OpBitAnd,
	ast.OpBitOr:  value.OpBitOr,
	ast.OpBitXor: value.OpBitXor,
	ast.OpShl:    value.OpShl,
	ast.OpShr:    value.OpShr,
	ast.OpEq:     value.OpEq,
	ast.OpNe:     value.OpNe,
	ast.OpLt:     value.OpLt,
	ast.OpGt:     value.OpGt,
	ast.OpLe:     value.OpLe,
	ast.OpGe:     value.OpGe,
	ast.OpNeg:    value.OpNeg,
	ast.OpNot:    value.OpNot,
}

// foldConst evaluates e's operator over its already-checked, already-VAL
// operands and rewrites e in place into the result, per exp_op_eval_const.
// l and r must both be ExpVal nodes (r nil for a unary operator); that
// invariant is the caller's responsibility, since only checkOp knows both
// operands are untyped.
func (c *Context) foldConst(e *ast.Exp, l, r *ast.Exp, resultType types.Type) bool {
	if !l.IsVal() {
		panic("semantic: foldConst called with a non-VAL left operand")
	}

	vop, ok := opToValueOp[e.Op]
	if !ok {
		panic("semantic: operator is not foldable")
	}

	var rv *value.Value
	if r != nil {
		if !r.IsVal() {
			panic("semantic: foldConst called with a non-VAL right operand")
		}
		rv = &r.Val
	}

	result, err := value.Eval(vop, l.Val, rv)
	if err != nil {
		c.report(diag.DivideByZero, r.Pos)
		return false
	}

	e.FoldToVal(result, resultType)
	return true
}

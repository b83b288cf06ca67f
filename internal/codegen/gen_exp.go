package codegen

import "github.com/ctlang/ctc/internal/ast"

// GenExp translates a checked expression into the back end's Expr, calling
// b once per node per the table in the statement-lowering design. lvalue
// only affects ExpArray: when true the back end is asked for the
// element's address rather than its loaded value, matching the dynamic-
// index store path of an assignment.
func GenExp(b Backend, e *ast.Exp, lvalue bool) Expr {
	if e == nil {
		return nil
	}

	switch e.Kind {
	case ast.ExpNull:
		return nil

	case ast.ExpID:
		return b.ID(e.Id)

	case ast.ExpVal:
		return b.Val(e.Val, e.Meta)

	case ast.ExpArray:
		base := GenExp(b, e.ArrBase, false)
		idx := GenExp(b, e.ArrIdx, false)
		return b.Array(base, idx, e.Meta, lvalue)

	case ast.ExpOp:
		l := GenExp(b, e.L, false)
		var r Expr
		if e.R != nil {
			r = GenExp(b, e.R, false)
		}
		return b.Op(e.Op, l, r, e.Meta)

	case ast.ExpAccess:
		base := GenExp(b, e.AccBase, false)
		field := GenExp(b, e.AccField, lvalue)
		return b.Access(base, field)

	case ast.ExpCall:
		args := make([]Expr, len(e.CallArgs))
		for i, a := range e.CallArgs {
			args[i] = GenExp(b, a, false)
		}
		return b.Call(e.CallFn.Id, args)

	case ast.ExpSQL:
		return b.SQL(e.SQLKind, e.SQLText)

	case ast.ExpTernary:
		return b.Ternary(GenExp(b, e.Pre, false), GenExp(b, e.In, false), GenExp(b, e.Post, false))

	case ast.ExpTuple:
		elems := make([]Expr, len(e.Elems))
		for i, el := range e.Elems {
			elems[i] = GenExp(b, el, false)
		}
		return b.Tuple(elems)

	case ast.ExpReg:
		return b.Reg(e.RegIdx)

	case ast.ExpGlobal:
		return b.Global(e.GlobalName)

	case ast.ExpMem:
		return b.Mem(e.MemBase, e.MemAddr, e.MemOffset, e.Meta)

	default:
		panic("codegen: invalid expression kind")
	}
}

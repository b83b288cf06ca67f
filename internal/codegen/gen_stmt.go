package codegen

import "github.com/ctlang/ctc/internal/ast"

// GenStmt translates one checked, lowered statement into the back end's
// Expr. reserved DDL is a no-op: nothing in this package's scope consumes
// raw SQL DDL text at code-gen time.
func GenStmt(b Backend, s *ast.Stmt) Expr {
	switch s.Kind {
	case ast.StmtExp:
		return genExpStmt(b, s)

	case ast.StmtAssign:
		return genAssignStmt(b, s)

	case ast.StmtReturn:
		return b.Return(GenExp(b, s.Arg, false))

	case ast.StmtDDL:
		return nil

	case ast.StmtPragma:
		return genPragmaStmt(b, s)

	default:
		panic("codegen: invalid statement kind")
	}
}

// genExpStmt drops the result of a bare call statement whose return type
// is non-void; every other expression statement's value is discarded by
// construction (nothing reads GenExp's return here).
func genExpStmt(b Backend, s *ast.Stmt) Expr {
	e := s.Exp
	if e.IsCall() && !e.Meta.Type.IsVoid() {
		return b.Drop(GenExp(b, e, false))
	}
	return GenExp(b, e, false)
}

// genAssignStmt distinguishes the four storage classes of an assignment's
// left-hand side: global symbol, register (local), fixed-address memory
// (struct field or array subscript with a constant offset), and
// variable-index memory (array subscript with a dynamic index, whose
// address must be computed in lvalue mode).
func genAssignStmt(b Backend, s *ast.Stmt) Expr {
	l, r := s.L, s.R

	val := GenExp(b, r, false)
	if val == nil {
		return nil
	}

	switch l.Kind {
	case ast.ExpGlobal:
		return b.SetGlobal(l.GlobalName, val)

	case ast.ExpReg:
		return b.SetLocal(l.RegIdx, val)

	case ast.ExpMem:
		address := b.GetLocal(l.MemBase)
		width := byteWidth(l.Meta)
		return b.Store(width, l.MemAddr+l.MemOffset, address, val, l.Meta)

	default:
		// Variable-index array element: the address must be computed by
		// re-walking the lvalue expression in lvalue mode.
		address := GenExp(b, l, true)
		return b.Store(byteWidth(l.Meta), 0, address, val, l.Meta)
	}
}

func genPragmaStmt(b Backend, s *ast.Stmt) Expr {
	condition := GenExp(b, s.PragmaVal, false)

	var description Expr
	if s.PragmaDesc != nil {
		description = GenExp(b, s.PragmaDesc, false)
	} else {
		description = b.I32Const(0)
	}

	offset := b.InternString(s.PragmaStr)
	return b.SyslibCall("assert", condition, b.I32Const(int32(offset)), description)
}

// byteWidth returns the storage width in bytes for a Store of meta. Array
// element addresses are always stored as a 32-bit index regardless of the
// element's own width.
func byteWidth(meta *ast.Meta) int {
	if meta.Type.IsArray() {
		return 4
	}
	return meta.Type.BitWidth() / 8
}

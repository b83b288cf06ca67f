package semantic

import (
	"github.com/ctlang/ctc/internal/ast"
	"github.com/ctlang/ctc/internal/diag"
)

// CheckBlk walks every statement of blk in order, advancing the context's
// sequence number as it goes so name resolution honors declaration order.
func (c *Context) CheckBlk(blk *ast.Blk) {
	prevBlk := c.Blk
	c.Blk = blk
	defer func() { c.Blk = prevBlk }()

	for i, s := range blk.Stmts {
		c.SetSeqNo(i)
		c.CheckStmt(s)
	}
}

// CheckStmt checks one statement. Unlike CheckExp it never signals failure
// to its caller: per the error policy, a failing sub-expression aborts only
// that statement's own checking, and the walker moves on to the next
// sibling statement regardless.
func (c *Context) CheckStmt(s *ast.Stmt) {
	if s == nil {
		return
	}

	switch s.Kind {
	case ast.StmtNull, ast.StmtGoto, ast.StmtDDL:
		// no expressions to check

	case ast.StmtID:
		// declaration with no initializer; nothing more to check here

	case ast.StmtExp:
		c.CheckExp(s.Exp)

	case ast.StmtAssign:
		c.checkAssignStmt(s)

	case ast.StmtIf:
		c.checkIfStmt(s)

	case ast.StmtLoop:
		c.checkLoopStmt(s)

	case ast.StmtSwitch:
		c.checkSwitchStmt(s)

	case ast.StmtCase:
		if s.Val != nil {
			c.CheckExp(s.Val)
		}
		c.CheckStmt(s.Then)

	case ast.StmtReturn:
		c.checkReturnStmt(s)

	case ast.StmtJump:
		if s.JumpCond != nil {
			c.CheckExp(s.JumpCond)
		}

	case ast.StmtBlk:
		c.CheckBlk(s.Blk)

	case ast.StmtPragma:
		if s.PragmaVal != nil {
			c.CheckExp(s.PragmaVal)
		}
		if s.PragmaDesc != nil {
			c.CheckExp(s.PragmaDesc)
		}

	default:
		panic("semantic: invalid statement kind")
	}
}

func (c *Context) checkAssignStmt(s *ast.Stmt) {
	// ASSIGN statements carry the same shape as an OP_ASSIGN expression;
	// reuse that rule directly rather than duplicating it.
	op := &ast.Exp{Kind: ast.ExpOp, Op: ast.OpAssign, L: s.L, R: s.R, Pos: s.Pos}
	c.CheckExp(op)
}

func (c *Context) checkIfStmt(s *ast.Stmt) {
	if c.CheckExp(s.Cond) && !s.Cond.Meta.Type.IsBool() {
		c.report(diag.InvalidCondType, s.Cond.Pos, s.Cond.Meta.String())
	}
	c.CheckStmt(s.Then)
	for _, elif := range s.Elifs {
		if c.CheckExp(elif.Cond) && !elif.Cond.Meta.Type.IsBool() {
			c.report(diag.InvalidCondType, elif.Cond.Pos, elif.Cond.Meta.String())
		}
		c.CheckStmt(elif.Then)
	}
	c.CheckStmt(s.Else)
}

func (c *Context) checkLoopStmt(s *ast.Stmt) {
	c.CheckStmt(s.Init)
	if s.Cond != nil {
		if c.CheckExp(s.Cond) && !s.Cond.Meta.Type.IsBool() {
			c.report(diag.InvalidCondType, s.Cond.Pos, s.Cond.Meta.String())
		}
	}
	c.CheckStmt(s.Post)
	c.CheckStmt(s.Body)
}

func (c *Context) checkSwitchStmt(s *ast.Stmt) {
	if !c.CheckExp(s.Cond) {
		return
	}
	for _, cs := range s.Cases {
		if cs.Val != nil {
			if c.CheckExp(cs.Val) && !s.Cond.Meta.Equals(cs.Val.Meta) {
				c.report(diag.MismatchedType, cs.Val.Pos, s.Cond.Meta.String(), cs.Val.Meta.String())
			}
		}
		c.CheckStmt(cs.Then)
	}
}

func (c *Context) checkReturnStmt(s *ast.Stmt) {
	retMeta := ast.NewVoidMeta()
	if c.Fn != nil && c.Fn.RetMeta != nil {
		retMeta = c.Fn.RetMeta
	}

	if s.Arg == nil {
		if !retMeta.Type.IsVoid() {
			c.report(diag.MismatchedType, s.Pos, retMeta.String(), "void")
		}
		return
	}

	if !c.CheckExp(s.Arg) {
		return
	}
	if !retMeta.Equals(s.Arg.Meta) {
		c.report(diag.MismatchedType, s.Arg.Pos, retMeta.String(), s.Arg.Meta.String())
	}
}

package ast

import "github.com/ctlang/ctc/internal/value"

// This file holds the smart constructors a parser uses to build Stmt and
// Exp nodes. A constructor that receives a null child returns null itself
// when that child would render the node meaningless, so a parser in error
// recovery can propagate nil upward without hand-checking every case.

// NewNullStmt returns the null statement, used as a placeholder when parsing
// fails to recover a meaningful statement.
func NewNullStmt(pos Position) *Stmt {
	return &Stmt{Kind: StmtNull, Pos: pos}
}

// NewIdStmt wraps a declaration as a statement (e.g. a bare `var x int`
// with no initializer). Returns nil if id is nil.
func NewIdStmt(id *Id, pos Position) *Stmt {
	if id == nil {
		return nil
	}
	return &Stmt{Kind: StmtID, Id: id, Pos: pos}
}

// NewExpStmt wraps a bare expression (typically a call) as a statement.
// Returns nil if exp is nil.
func NewExpStmt(exp *Exp, pos Position) *Stmt {
	if exp == nil {
		return nil
	}
	return &Stmt{Kind: StmtExp, Exp: exp, Pos: pos}
}

// NewAssignStmt builds `l := r`. Returns nil if either side is nil.
func NewAssignStmt(l, r *Exp, pos Position) *Stmt {
	if l == nil || r == nil {
		return nil
	}
	return &Stmt{Kind: StmtAssign, L: l, R: r, Pos: pos}
}

// NewIfStmt builds an IF statement with optional elif clauses and else
// branch. Returns nil if cond or then is nil.
func NewIfStmt(cond *Exp, then *Stmt, elifs []ElifClause, els *Stmt, pos Position) *Stmt {
	if cond == nil || then == nil {
		return nil
	}
	return &Stmt{Kind: StmtIf, Cond: cond, Then: then, Elifs: elifs, Else: els, Pos: pos}
}

// NewLoopStmt builds a loop statement. body is guaranteed non-null: if the
// caller passes nil, an empty block at pos is synthesized so the checker
// and IR lowering never have to special-case a missing loop body.
func NewLoopStmt(kind LoopKind, init *Stmt, cond *Exp, post *Stmt, body *Stmt, pos Position) *Stmt {
	if body == nil {
		body = &Stmt{Kind: StmtBlk, Blk: NewBlk(BlkLoop, pos), Pos: pos}
	}
	return &Stmt{Kind: StmtLoop, LoopKind: kind, Init: init, Cond: cond, Post: post, Body: body, Pos: pos}
}

// NewSwitchStmt builds a SWITCH statement over the given cases. Returns nil
// if cond is nil.
func NewSwitchStmt(cond *Exp, cases []*Stmt, pos Position) *Stmt {
	if cond == nil {
		return nil
	}
	return &Stmt{Kind: StmtSwitch, Cond: cond, Cases: cases, Pos: pos}
}

// NewCaseStmt builds one CASE arm. val is nil for the default arm.
func NewCaseStmt(val *Exp, then *Stmt, pos Position) *Stmt {
	return &Stmt{Kind: StmtCase, Val: val, Then: then, Pos: pos}
}

// NewReturnStmt builds a RETURN statement; arg is nil for a bare `return`.
func NewReturnStmt(arg *Exp, pos Position) *Stmt {
	return &Stmt{Kind: StmtReturn, Arg: arg, Pos: pos}
}

// NewGotoStmt builds a GOTO statement. Returns nil if label is empty.
func NewGotoStmt(label string, pos Position) *Stmt {
	if label == "" {
		return nil
	}
	return &Stmt{Kind: StmtGoto, Label: label, Pos: pos}
}

// NewJumpStmt builds a BREAK or CONTINUE, optionally guarded by a condition.
func NewJumpStmt(kind JumpKind, cond *Exp, pos Position) *Stmt {
	return &Stmt{Kind: StmtJump, JumpKind: kind, JumpCond: cond, Pos: pos}
}

// NewDDLStmt wraps a raw SQL DDL string. Returns nil if text is empty.
func NewDDLStmt(text string, pos Position) *Stmt {
	if text == "" {
		return nil
	}
	return &Stmt{Kind: StmtDDL, Text: text, Pos: pos}
}

// NewBlkStmt wraps a Blk as a statement. Returns nil if blk is nil.
func NewBlkStmt(blk *Blk, pos Position) *Stmt {
	if blk == nil {
		return nil
	}
	return &Stmt{Kind: StmtBlk, Blk: blk, Pos: pos}
}

// NewPragmaStmt builds a compiler directive statement.
func NewPragmaStmt(kind PragmaKind, val *Exp, str string, desc *Exp, pos Position) *Stmt {
	return &Stmt{Kind: StmtPragma, PragmaKind: kind, PragmaVal: val, PragmaStr: str, PragmaDesc: desc, Pos: pos}
}

// MakeAssignStmt synthesizes an assignment statement for a declaration with
// an initializer. If varId is a tuple-of-ids, each element becomes an id
// expression whose Id back-reference and Meta are copied from the element
// Id, and the left-hand side is a tuple expression; otherwise the
// left-hand side is a single id expression.
func MakeAssignStmt(varId *Id, valExp *Exp, pos Position) *Stmt {
	if varId == nil || valExp == nil {
		return nil
	}

	if varId.Kind == IdTuple {
		elems := make([]*Exp, len(varId.Elems))
		for i, e := range varId.Elems {
			elems[i] = &Exp{Kind: ExpID, Id: e, Name: e.Name, Meta: e.Meta.Copy(), Pos: pos}
		}
		lhs := &Exp{Kind: ExpTuple, Elems: elems, Meta: varId.Meta.Copy(), Pos: pos}
		return NewAssignStmt(lhs, valExp, pos)
	}

	lhs := &Exp{Kind: ExpID, Id: varId, Name: varId.Name, Meta: varId.Meta.Copy(), Pos: pos}
	return NewAssignStmt(lhs, valExp, pos)
}

// MakeMallocStmt synthesizes `reg[regIdx] := malloc_N(size)`, where N in
// {32, 64} is selected by align in {4, 8}. The register and call expression
// are both given INT32 metas.
func MakeMallocStmt(regIdx uint32, size uint64, align int, pos Position) *Stmt {
	fn := "malloc_32"
	if align == 8 {
		fn = "malloc_64"
	}

	lhs := &Exp{Kind: ExpReg, RegIdx: regIdx, Meta: NewInt32Meta(), Pos: pos}

	callee := &Exp{Kind: ExpID, Name: fn, Meta: NewInt32Meta(), Pos: pos}
	call := &Exp{
		Kind:     ExpCall,
		CallFn:   callee,
		CallArgs: []*Exp{{Kind: ExpVal, Val: value.Int(int64(size)), Meta: NewInt32Meta(), Pos: pos}},
		Meta:     NewInt32Meta(),
		Pos:      pos,
	}

	return NewAssignStmt(lhs, call, pos)
}

// Package ir lowers a checked AST into basic blocks: straight-line
// statement runs connected by conditional branches, ready for a code-gen
// facade to translate into a structured control-flow back end (the
// relooper algorithm Binaryen implements, in the reference toolchain).
package ir

import "github.com/ctlang/ctc/internal/ast"

// RelooperBlock is the opaque handle a code-gen facade attaches to a
// BasicBlock once it has built the back end's own representation of it.
// This package never inspects it; C6 owns the type underneath.
type RelooperBlock interface{}

// Branch is a conditional or unconditional edge out of a BasicBlock. Cond
// is nil for an unconditional branch, which must be the last one added (a
// block's branch list is evaluated in order, first match wins, matching an
// if/else-if/else chain).
type Branch struct {
	Cond *ast.Exp
	Blk  *BasicBlock
}

// BasicBlock is one straight-line region of checked statements. Ids
// records declarations that become visible within this block (for
// generating local slots); Piggyback carries statements that must run at
// every point control leaves the block - most notably a for-loop's step
// statement, which must execute before every branch back to the loop
// header, including a `continue`.
type BasicBlock struct {
	Ids       []*ast.Id
	Stmts     []*ast.Stmt
	Brs       []Branch
	Piggyback []*ast.Stmt

	Relooper RelooperBlock
}

// NewBB returns an empty basic block.
func NewBB() *BasicBlock {
	return &BasicBlock{}
}

func (bb *BasicBlock) AddID(id *ast.Id) {
	bb.Ids = append(bb.Ids, id)
}

func (bb *BasicBlock) AddStmt(s *ast.Stmt) {
	if s == nil {
		return
	}
	bb.Stmts = append(bb.Stmts, s)
}

// AddBranch appends a branch to target, guarded by cond (nil for an
// unconditional fallthrough/jump).
func (bb *BasicBlock) AddBranch(cond *ast.Exp, target *BasicBlock) {
	bb.Brs = append(bb.Brs, Branch{Cond: cond, Blk: target})
}

func (bb *BasicBlock) AddPiggyback(s *ast.Stmt) {
	if s == nil {
		return
	}
	bb.Piggyback = append(bb.Piggyback, s)
}

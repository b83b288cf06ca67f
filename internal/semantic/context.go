// Package semantic implements the checker: a recursive walk over the AST
// that resolves names against a Scope, computes and stores a Meta on every
// expression, folds constant sub-expressions, and range-checks literals
// against their target width.
package semantic

import (
	"github.com/ctlang/ctc/internal/ast"
	"github.com/ctlang/ctc/internal/diag"
	"github.com/ctlang/ctc/internal/scope"
)

// Context is the mutable state threaded through a single function's check.
// It is not safe for concurrent use; the checker is strictly single-pass
// and single-threaded (see the top-level design notes on concurrency).
type Context struct {
	Scope   scope.Scope
	Errs    diag.Sink
	Fn      *ast.Id // enclosing function, for RETURN and parameter lookup
	Blk     *ast.Blk
	seqNo   int
	acquired *ast.Id // redirect target for bare-name lookups; see Acquire
}

// NewContext builds a checker context over the given scope for the given
// enclosing function (nil at the top level, outside any function body).
func NewContext(sc scope.Scope, fn *ast.Id) *Context {
	return &Context{Scope: sc, Fn: fn}
}

// Acquired returns the Id bare-name lookups are currently redirected to, or
// nil if none is set.
func (c *Context) Acquired() *ast.Id {
	return c.acquired
}

// guard restores the previously acquired Id when released. Acquire returns
// one so that every call site - including early returns on error - restores
// the prior value with a single deferred call, per design note option (c).
type guard struct {
	c    *Context
	prev *ast.Id
}

// release restores the Context's acquired Id to what it was before Acquire
// was called.
func (g guard) release() {
	g.c.acquired = g.prev
}

// Acquire installs id as the acquired Id for the duration of the returned
// guard's lifetime; the caller must `defer g.release()` immediately.
func (c *Context) Acquire(id *ast.Id) guard {
	g := guard{c: c, prev: c.acquired}
	c.acquired = id
	return g
}

// SeqNo returns the sequence number at which the current statement's name
// lookups should resolve.
func (c *Context) SeqNo() int {
	return c.seqNo
}

// SetSeqNo updates the sequence number as the checker advances through a
// block's statement list.
func (c *Context) SetSeqNo(n int) {
	c.seqNo = n
}

// report appends a new diagnostic to the context's error sink.
func (c *Context) report(kind diag.Kind, pos ast.Position, args ...string) {
	c.Errs.Add(diag.New(kind, pos, args...))
}

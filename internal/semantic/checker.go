package semantic

import (
	"github.com/ctlang/ctc/internal/ast"
	"github.com/ctlang/ctc/internal/diag"
	"github.com/ctlang/ctc/internal/scope"
)

// Check is the checker's entry point: check(block, function_context, scope)
// -> errors. fn is nil when blk is not inside any function body. The
// returned errors are empty when no checking rule was violated; a QUERY SQL
// expression is left without a Meta even then. Downstream phases (folding
// results aside, which already happened in-place during this call) must not
// run when errors are returned.
func Check(blk *ast.Blk, fn *ast.Id, sc scope.Scope) []*diag.Error {
	ctx := NewContext(sc, fn)
	ctx.CheckBlk(blk)
	return ctx.Errs.Errors()
}

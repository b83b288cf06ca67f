// Package scope defines the abstract lookup services the semantic checker
// depends on. The checker never walks a symbol table itself; it asks a
// Scope for the four primitives below and otherwise only deals in the
// *ast.Id values a Scope hands back.
package scope

import "github.com/ctlang/ctc/internal/ast"

// Scope resolves names against whatever symbol table the caller built while
// parsing. SeqNo values are opaque to the checker: it passes the index of
// the statement being checked within its block, so a Scope implementation can honor
// declaration order (a name is visible only from the statement after its
// declaration onward).
type Scope interface {
	// LookupName resolves a bare identifier against the scope chain
	// enclosing seqNo, honoring declaration order. Returns ok=false if no
	// declaration is visible.
	LookupName(seqNo int, name string) (id *ast.Id, ok bool)

	// LookupParam resolves name against fn's parameter list.
	LookupParam(fn *ast.Id, name string) (id *ast.Id, ok bool)

	// LookupField resolves name against a struct or contract Id's fields.
	LookupField(aggregate *ast.Id, name string) (id *ast.Id, ok bool)
}

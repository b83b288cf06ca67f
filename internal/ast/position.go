// Package ast defines the typed abstract syntax tree the checker walks: the
// declared-name model (Id), the expression and statement node families (Exp,
// Stmt), lexical blocks (Blk), and the Meta type annotation those nodes
// carry. The lexer and parser that produce these nodes are external
// collaborators; this package only defines the shapes they construct
// through the smart constructors in constructors.go.
package ast

import "fmt"

// Position is a source location. It is a plain value supplied by whatever
// parser builds a tree out of these node constructors; this package assigns
// no meaning to Offset beyond carrying it through to diagnostics.
type Position struct {
	Line   int
	Column int
	Offset int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Package fixture builds the end-to-end scenarios named in the checker's
// testable-properties section as ready-to-run (block, function, scope)
// triples, shared by this package's snapshot test and the ctc command line
// so that both exercise exactly the same inputs.
package fixture

import (
	"github.com/ctlang/ctc/internal/ast"
	"github.com/ctlang/ctc/internal/scope"
	"github.com/ctlang/ctc/internal/types"
	"github.com/ctlang/ctc/internal/value"
)

// Scenario is one named end-to-end input to Check.
type Scenario struct {
	Name string
	Blk  *ast.Blk
	Fn   *ast.Id
	Sc   scope.Scope
}

func intLit(n int64, pos ast.Position) *ast.Exp {
	return &ast.Exp{Kind: ast.ExpVal, Val: value.Int(n), Pos: pos}
}

func idExp(id *ast.Id, pos ast.Position) *ast.Exp {
	return &ast.Exp{Kind: ast.ExpID, Name: id.Name, Pos: pos}
}

// Scenarios returns every scenario in the order the spec lists them.
func Scenarios() []Scenario {
	return []Scenario{
		constantFold(),
		overflow(),
		mapAssignMismatch(),
		returnMismatch(),
		divideByZero(),
		tupleElemCountMismatch(),
	}
}

func constantFold() Scenario {
	x := ast.NewVarId("x", ast.NewMeta(types.INT32), ast.Position{})
	tbl := scope.NewTable()
	tbl.Declare(0, x)

	sum := &ast.Exp{
		Kind: ast.ExpOp, Op: ast.OpAdd,
		L: intLit(1, ast.Position{Line: 1, Column: 10}),
		R: intLit(2, ast.Position{Line: 1, Column: 14}),
	}
	assign := ast.NewAssignStmt(idExp(x, ast.Position{}), sum, ast.Position{})

	blk := ast.NewBlk(ast.BlkNormal, ast.Position{})
	blk.Add(assign)
	return Scenario{Name: "int32 x = 1 + 2", Blk: blk, Sc: tbl}
}

func overflow() Scenario {
	x := ast.NewVarId("x", ast.NewMeta(types.INT8), ast.Position{})
	tbl := scope.NewTable()
	tbl.Declare(0, x)

	lit := intLit(200, ast.Position{Line: 1, Column: 10})
	assign := ast.NewAssignStmt(idExp(x, ast.Position{}), lit, ast.Position{})

	blk := ast.NewBlk(ast.BlkNormal, ast.Position{})
	blk.Add(assign)
	return Scenario{Name: "int8 x = 200", Blk: blk, Sc: tbl}
}

func mapAssignMismatch() Scenario {
	k := ast.NewVarId("k", ast.NewMeta(types.INT32), ast.Position{})
	m := ast.NewVarId("m", ast.NewMapMeta(ast.NewMeta(types.INT32), ast.NewStringMeta()), ast.Position{})

	tbl := scope.NewTable()
	tbl.Declare(0, k)
	tbl.Declare(0, m)

	sub := &ast.Exp{Kind: ast.ExpArray, ArrBase: idExp(m, ast.Position{}), ArrIdx: idExp(k, ast.Position{})}
	lit := intLit(1, ast.Position{Line: 1, Column: 20})
	assign := ast.NewAssignStmt(sub, lit, ast.Position{})

	blk := ast.NewBlk(ast.BlkNormal, ast.Position{})
	blk.Add(assign)
	return Scenario{Name: `map(int32, string) m; int32 k; m[k] = 1`, Blk: blk, Sc: tbl}
}

func returnMismatch() Scenario {
	fn := ast.NewFuncId("foo", nil, ast.NewMeta(types.INT32), ast.Position{})
	tbl := scope.NewTable()

	ret := ast.NewReturnStmt(&ast.Exp{Kind: ast.ExpVal, Val: value.Bool(true)}, ast.Position{Line: 1, Column: 30})

	blk := ast.NewBlk(ast.BlkFunc, ast.Position{})
	blk.Add(ret)
	return Scenario{Name: "func foo() returns int32 { return true; }", Blk: blk, Fn: fn, Sc: tbl}
}

func divideByZero() Scenario {
	x := ast.NewVarId("x", ast.NewMeta(types.INT32), ast.Position{})
	tbl := scope.NewTable()
	tbl.Declare(0, x)

	div := &ast.Exp{
		Kind: ast.ExpOp, Op: ast.OpDiv,
		L: intLit(1, ast.Position{Line: 1, Column: 10}),
		R: intLit(0, ast.Position{Line: 1, Column: 14}),
	}
	assign := ast.NewAssignStmt(idExp(x, ast.Position{}), div, ast.Position{})

	blk := ast.NewBlk(ast.BlkNormal, ast.Position{})
	blk.Add(assign)
	return Scenario{Name: "int x = 1 / 0", Blk: blk, Sc: tbl}
}

func tupleElemCountMismatch() Scenario {
	a := ast.NewVarId("a", ast.NewMeta(types.INT32), ast.Position{})
	b := ast.NewVarId("b", ast.NewMeta(types.INT32), ast.Position{})
	tbl := scope.NewTable()
	tbl.Declare(0, a)
	tbl.Declare(0, b)

	lhs := &ast.Exp{Kind: ast.ExpTuple, Elems: []*ast.Exp{idExp(a, ast.Position{}), idExp(b, ast.Position{})}}
	rhs := &ast.Exp{
		Kind: ast.ExpTuple,
		Elems: []*ast.Exp{
			intLit(1, ast.Position{}),
			intLit(2, ast.Position{}),
			intLit(3, ast.Position{}),
		},
		Pos: ast.Position{Line: 1, Column: 12},
	}
	assign := ast.NewAssignStmt(lhs, rhs, ast.Position{})

	blk := ast.NewBlk(ast.BlkNormal, ast.Position{})
	blk.Add(assign)
	return Scenario{Name: "(a, b) = (1, 2, 3)", Blk: blk, Sc: tbl}
}

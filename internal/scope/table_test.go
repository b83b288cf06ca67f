package scope

import (
	"testing"

	"github.com/ctlang/ctc/internal/ast"
)

func TestLookupNameHonorsDeclarationOrder(t *testing.T) {
	tbl := NewTable()
	x1 := ast.NewVarId("x", ast.NewInt32Meta(), ast.Position{})
	x2 := ast.NewVarId("x", ast.NewBoolMeta(), ast.Position{})
	tbl.Declare(0, x1)
	tbl.Declare(5, x2)

	if got, ok := tbl.LookupName(3, "x"); !ok || got != x1 {
		t.Errorf("LookupName(3, x) = %v, want x1", got)
	}
	if got, ok := tbl.LookupName(5, "x"); !ok || got != x2 {
		t.Errorf("LookupName(5, x) = %v, want x2", got)
	}
	if _, ok := tbl.LookupName(-1, "x"); ok {
		t.Error("LookupName before any declaration should fail")
	}
}

func TestLookupParam(t *testing.T) {
	p := ast.NewParamId("n", ast.NewInt32Meta(), ast.Position{})
	fn := ast.NewFuncId("f", []*ast.Id{p}, ast.NewVoidMeta(), ast.Position{})

	tbl := NewTable()
	if got, ok := tbl.LookupParam(fn, "n"); !ok || got != p {
		t.Errorf("LookupParam(fn, n) = %v, want p", got)
	}
	if _, ok := tbl.LookupParam(fn, "missing"); ok {
		t.Error("LookupParam(missing) should fail")
	}
}

func TestLookupField(t *testing.T) {
	f := ast.NewVarId("balance", ast.NewInt32Meta(), ast.Position{})
	s := ast.NewStructId("Account", []*ast.Id{f}, ast.Position{})

	tbl := NewTable()
	if got, ok := tbl.LookupField(s, "balance"); !ok || got != f {
		t.Errorf("LookupField(s, balance) = %v, want f", got)
	}
	if _, ok := tbl.LookupField(s, "missing"); ok {
		t.Error("LookupField(missing) should fail")
	}
}

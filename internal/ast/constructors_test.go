package ast

import "testing"

func TestNewIdStmtNullPropagation(t *testing.T) {
	if s := NewIdStmt(nil, Position{}); s != nil {
		t.Errorf("NewIdStmt(nil) = %v, want nil", s)
	}

	id := NewVarId("x", NewInt32Meta(), Position{})
	s := NewIdStmt(id, Position{})
	if s == nil || s.Kind != StmtID || s.Id != id {
		t.Errorf("NewIdStmt(id) = %v, want StmtID wrapping id", s)
	}
}

func TestNewExpStmtNullPropagation(t *testing.T) {
	if s := NewExpStmt(nil, Position{}); s != nil {
		t.Errorf("NewExpStmt(nil) = %v, want nil", s)
	}
}

func TestNewAssignStmtNullPropagation(t *testing.T) {
	exp := &Exp{Kind: ExpVal}
	if s := NewAssignStmt(nil, exp, Position{}); s != nil {
		t.Error("NewAssignStmt with nil lhs should be nil")
	}
	if s := NewAssignStmt(exp, nil, Position{}); s != nil {
		t.Error("NewAssignStmt with nil rhs should be nil")
	}
	if s := NewAssignStmt(exp, exp, Position{}); s == nil {
		t.Error("NewAssignStmt with both sides set should not be nil")
	}
}

func TestNewLoopStmtSynthesizesBody(t *testing.T) {
	s := NewLoopStmt(LoopWhile, nil, &Exp{Kind: ExpVal}, nil, nil, Position{Line: 3})
	if s.Body == nil {
		t.Fatal("NewLoopStmt must guarantee a non-null body")
	}
	if s.Body.Kind != StmtBlk || s.Body.Blk == nil {
		t.Errorf("synthesized body = %+v, want an empty StmtBlk", s.Body)
	}
	if s.Body.Blk.Kind != BlkLoop {
		t.Errorf("synthesized body block kind = %v, want BlkLoop", s.Body.Blk.Kind)
	}
}

func TestNewLoopStmtKeepsSuppliedBody(t *testing.T) {
	body := NewBlkStmt(NewBlk(BlkLoop, Position{}), Position{})
	s := NewLoopStmt(LoopFor, nil, nil, nil, body, Position{})
	if s.Body != body {
		t.Error("NewLoopStmt must not replace a caller-supplied body")
	}
}

func TestMakeAssignStmtSingleId(t *testing.T) {
	id := NewVarId("x", NewInt32Meta(), Position{})
	val := &Exp{Kind: ExpVal, Meta: NewInt32Meta()}

	s := MakeAssignStmt(id, val, Position{})
	if s == nil || s.Kind != StmtAssign {
		t.Fatalf("MakeAssignStmt = %v, want StmtAssign", s)
	}
	if s.L.Kind != ExpID || s.L.Id != id {
		t.Errorf("lhs = %+v, want ExpID referencing the var Id", s.L)
	}
	if s.R != val {
		t.Error("rhs must be the supplied value expression")
	}
}

func TestMakeAssignStmtTupleId(t *testing.T) {
	a := NewVarId("a", NewInt32Meta(), Position{})
	b := NewVarId("b", NewBoolMeta(), Position{})
	tup := NewTupleId([]*Id{a, b}, Position{})
	val := &Exp{Kind: ExpTuple, Meta: tup.Meta}

	s := MakeAssignStmt(tup, val, Position{})
	if s.L.Kind != ExpTuple {
		t.Fatalf("lhs kind = %v, want ExpTuple", s.L.Kind)
	}
	if len(s.L.Elems) != 2 {
		t.Fatalf("lhs elems = %d, want 2", len(s.L.Elems))
	}
	if s.L.Elems[0].Id != a || s.L.Elems[1].Id != b {
		t.Error("tuple element expressions must back-reference the original Ids")
	}
}

func TestMakeMallocStmtSelectsHelperByAlign(t *testing.T) {
	s32 := MakeMallocStmt(0, 16, 4, Position{})
	if got := s32.R.CallFn.Name; got != "malloc_32" {
		t.Errorf("align 4 selected %q, want malloc_32", got)
	}

	s64 := MakeMallocStmt(1, 16, 8, Position{})
	if got := s64.R.CallFn.Name; got != "malloc_64" {
		t.Errorf("align 8 selected %q, want malloc_64", got)
	}

	if s32.L.Meta.Type != s32.R.Meta.Type {
		t.Error("register and call expression must share INT32 meta")
	}
}

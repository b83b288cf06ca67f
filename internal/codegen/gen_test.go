package codegen

import (
	"fmt"
	"testing"

	"github.com/ctlang/ctc/internal/ast"
	"github.com/ctlang/ctc/internal/value"
)

// recordingBackend is a stub Backend that stringifies every call it
// receives instead of emitting real WASM, so tests can assert on dispatch
// order and arguments without a Binaryen dependency.
type recordingBackend struct {
	calls []string
	strs  map[string]uint32
}

func newRecordingBackend() *recordingBackend {
	return &recordingBackend{strs: map[string]uint32{}}
}

func (b *recordingBackend) record(format string, args ...interface{}) Expr {
	s := fmt.Sprintf(format, args...)
	b.calls = append(b.calls, s)
	return s
}

func (b *recordingBackend) ID(id *ast.Id) Expr                  { return b.record("ID(%s)", id.Name) }
func (b *recordingBackend) Val(v value.Value, m *ast.Meta) Expr { return b.record("Val(%v)", v) }
func (b *recordingBackend) Array(base, idx Expr, m *ast.Meta, lvalue bool) Expr {
	return b.record("Array(%v,%v,lvalue=%v)", base, idx, lvalue)
}
func (b *recordingBackend) Op(op ast.OpKind, l, r Expr, m *ast.Meta) Expr {
	return b.record("Op(%v,%v,%v)", op, l, r)
}
func (b *recordingBackend) Access(base, field Expr) Expr {
	return b.record("Access(%v,%v)", base, field)
}
func (b *recordingBackend) Call(fn *ast.Id, args []Expr) Expr {
	return b.record("Call(%s,%v)", fn.Name, args)
}
func (b *recordingBackend) SQL(kind ast.SQLKind, text string) Expr {
	return b.record("SQL(%v,%s)", kind, text)
}
func (b *recordingBackend) Ternary(pre, in, post Expr) Expr {
	return b.record("Ternary(%v,%v,%v)", pre, in, post)
}
func (b *recordingBackend) Tuple(elems []Expr) Expr { return b.record("Tuple(%v)", elems) }
func (b *recordingBackend) Reg(idx uint32) Expr     { return b.record("Reg(%d)", idx) }
func (b *recordingBackend) Global(name string) Expr { return b.record("Global(%s)", name) }
func (b *recordingBackend) Mem(base, addr, offset uint32, m *ast.Meta) Expr {
	return b.record("Mem(%d,%d,%d)", base, addr, offset)
}
func (b *recordingBackend) Drop(e Expr) Expr               { return b.record("Drop(%v)", e) }
func (b *recordingBackend) SetGlobal(name string, v Expr) Expr {
	return b.record("SetGlobal(%s,%v)", name, v)
}
func (b *recordingBackend) SetLocal(idx uint32, v Expr) Expr {
	return b.record("SetLocal(%d,%v)", idx, v)
}
func (b *recordingBackend) GetLocal(idx uint32) Expr { return b.record("GetLocal(%d)", idx) }
func (b *recordingBackend) Store(byteWidth int, offset uint32, address, val Expr, m *ast.Meta) Expr {
	return b.record("Store(w=%d,off=%d,%v,%v)", byteWidth, offset, address, val)
}
func (b *recordingBackend) Return(arg Expr) Expr { return b.record("Return(%v)", arg) }
func (b *recordingBackend) I32Const(v int32) Expr { return b.record("I32Const(%d)", v) }
func (b *recordingBackend) SyslibCall(fn string, args ...Expr) Expr {
	return b.record("SyslibCall(%s,%v)", fn, args)
}
func (b *recordingBackend) InternString(s string) uint32 {
	if off, ok := b.strs[s]; ok {
		return off
	}
	off := uint32(len(b.strs))
	b.strs[s] = off
	return off
}

func TestGenExpDispatchesValToBackend(t *testing.T) {
	b := newRecordingBackend()
	e := &ast.Exp{Kind: ast.ExpVal, Val: value.Int(1), Meta: ast.NewInt32Meta()}
	GenExp(b, e, false)
	if len(b.calls) != 1 || b.calls[0] != "Val(1)" {
		t.Fatalf("unexpected calls: %v", b.calls)
	}
}

func TestGenExpOpRecursesIntoOperands(t *testing.T) {
	b := newRecordingBackend()
	l := &ast.Exp{Kind: ast.ExpVal, Val: value.Int(1), Meta: ast.NewInt32Meta()}
	r := &ast.Exp{Kind: ast.ExpVal, Val: value.Int(2), Meta: ast.NewInt32Meta()}
	e := &ast.Exp{Kind: ast.ExpOp, Op: ast.OpAdd, L: l, R: r, Meta: ast.NewInt32Meta()}
	GenExp(b, e, false)
	if len(b.calls) != 3 {
		t.Fatalf("expected 2 operand calls + 1 op call, got %v", b.calls)
	}
}

func TestGenExpArrayPropagatesLvalue(t *testing.T) {
	b := newRecordingBackend()
	base := &ast.Exp{Kind: ast.ExpID, Id: &ast.Id{Name: "arr"}}
	idx := &ast.Exp{Kind: ast.ExpVal, Val: value.Int(0), Meta: ast.NewInt32Meta()}
	e := &ast.Exp{Kind: ast.ExpArray, ArrBase: base, ArrIdx: idx, Meta: ast.NewInt32Meta()}
	GenExp(b, e, true)
	last := b.calls[len(b.calls)-1]
	if last != "Array(ID(arr),Val(0),lvalue=true)" {
		t.Fatalf("lvalue flag not propagated: %s", last)
	}
}

func TestGenStmtDropsNonVoidCallResult(t *testing.T) {
	b := newRecordingBackend()
	fn := &ast.Id{Name: "f", RetMeta: ast.NewInt32Meta()}
	call := &ast.Exp{Kind: ast.ExpCall, CallFn: &ast.Exp{Kind: ast.ExpID, Id: fn}, Meta: ast.NewInt32Meta()}
	s := ast.NewExpStmt(call, ast.Position{})
	GenStmt(b, s)
	if b.calls[len(b.calls)-1] != "Drop(Call(f,[]))" {
		t.Fatalf("expected dropped call result, got %v", b.calls)
	}
}

func TestGenStmtAssignToRegister(t *testing.T) {
	b := newRecordingBackend()
	l := &ast.Exp{Kind: ast.ExpReg, RegIdx: 3, Meta: ast.NewInt32Meta()}
	r := &ast.Exp{Kind: ast.ExpVal, Val: value.Int(5), Meta: ast.NewInt32Meta()}
	s := ast.NewAssignStmt(l, r, ast.Position{})
	GenStmt(b, s)
	want := "SetLocal(3,Val(5))"
	if b.calls[len(b.calls)-1] != want {
		t.Fatalf("got %v, want %s", b.calls, want)
	}
}

func TestGenStmtAssignToFixedMemory(t *testing.T) {
	b := newRecordingBackend()
	l := &ast.Exp{Kind: ast.ExpMem, MemBase: 0, MemAddr: 8, MemOffset: 4, Meta: ast.NewInt32Meta()}
	r := &ast.Exp{Kind: ast.ExpVal, Val: value.Int(7), Meta: ast.NewInt32Meta()}
	s := ast.NewAssignStmt(l, r, ast.Position{})
	GenStmt(b, s)
	want := "Store(w=4,off=12,GetLocal(0),Val(7))"
	if b.calls[len(b.calls)-1] != want {
		t.Fatalf("got %v, want %s", b.calls, want)
	}
}

func TestGenStmtReturnIsNilSafeForBareReturn(t *testing.T) {
	b := newRecordingBackend()
	s := ast.NewReturnStmt(nil, ast.Position{})
	GenStmt(b, s)
	want := "Return(<nil>)"
	if b.calls[len(b.calls)-1] != want {
		t.Fatalf("got %v, want %s", b.calls, want)
	}
}

func TestGenStmtPragmaInternsStringAndDefaultsDescription(t *testing.T) {
	b := newRecordingBackend()
	cond := &ast.Exp{Kind: ast.ExpVal, Val: value.Bool(true), Meta: ast.NewBoolMeta()}
	s := ast.NewPragmaStmt(ast.PragmaAssert, cond, "x must be positive", nil, ast.Position{})
	GenStmt(b, s)
	last := b.calls[len(b.calls)-1]
	want := "SyslibCall(assert,[Val(true) I32Const(0) I32Const(0)])"
	if last != want {
		t.Fatalf("got %s, want %s", last, want)
	}
}

func TestGenStmtDDLIsNoOp(t *testing.T) {
	b := newRecordingBackend()
	s := &ast.Stmt{Kind: ast.StmtDDL, Text: "CREATE TABLE t (id INT)"}
	if got := GenStmt(b, s); got != nil {
		t.Fatalf("DDL statement must gen to nil, got %v", got)
	}
	if len(b.calls) != 0 {
		t.Fatalf("DDL statement must not call the backend, got %v", b.calls)
	}
}

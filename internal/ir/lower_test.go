package ir

import (
	"testing"

	"github.com/ctlang/ctc/internal/ast"
)

func TestLowerStraightLine(t *testing.T) {
	blk := ast.NewBlk(ast.BlkFunc, ast.Position{})
	s1 := ast.NewExpStmt(&ast.Exp{Kind: ast.ExpVal}, ast.Position{})
	s2 := ast.NewExpStmt(&ast.Exp{Kind: ast.ExpVal}, ast.Position{})
	blk.Add(s1)
	blk.Add(s2)

	entry, blocks := Lower(blk)
	if len(blocks) != 1 {
		t.Fatalf("straight-line body produced %d blocks, want 1", len(blocks))
	}
	if len(entry.Stmts) != 2 {
		t.Fatalf("entry block has %d statements, want 2", len(entry.Stmts))
	}
}

func TestLowerIfCreatesThenElseJoin(t *testing.T) {
	blk := ast.NewBlk(ast.BlkFunc, ast.Position{})
	then := ast.NewBlkStmt(ast.NewBlk(ast.BlkIf, ast.Position{}), ast.Position{})
	ifStmt := ast.NewIfStmt(&ast.Exp{Kind: ast.ExpVal}, then, nil, nil, ast.Position{})
	blk.Add(ifStmt)

	entry, _ := Lower(blk)
	if len(entry.Brs) != 2 {
		t.Fatalf("entry has %d branches, want 2 (then + else fallthrough)", len(entry.Brs))
	}
	if entry.Brs[0].Cond == nil {
		t.Error("first branch out of an if-head must be the conditional one")
	}
	if entry.Brs[1].Cond != nil {
		t.Error("second branch out of an if-head must be the unconditional else/fallthrough")
	}
}

func TestLowerLoopPiggybacksStep(t *testing.T) {
	post := ast.NewExpStmt(&ast.Exp{Kind: ast.ExpVal}, ast.Position{})
	body := ast.NewBlkStmt(ast.NewBlk(ast.BlkLoop, ast.Position{}), ast.Position{})
	cond := &ast.Exp{Kind: ast.ExpVal}
	loop := ast.NewLoopStmt(ast.LoopFor, nil, cond, post, body, ast.Position{})

	blk := ast.NewBlk(ast.BlkFunc, ast.Position{})
	blk.Add(loop)

	_, blocks := Lower(blk)

	var found bool
	for _, bb := range blocks {
		for _, pg := range bb.Piggyback {
			if pg == post {
				found = true
			}
		}
	}
	if !found {
		t.Error("loop step statement must piggyback onto the body's exit block")
	}
}

func TestLowerContinuePiggybacksStepToo(t *testing.T) {
	post := ast.NewExpStmt(&ast.Exp{Kind: ast.ExpVal}, ast.Position{})
	bodyBlk := ast.NewBlk(ast.BlkLoop, ast.Position{})
	bodyBlk.Add(ast.NewJumpStmt(ast.JumpContinue, nil, ast.Position{}))
	body := ast.NewBlkStmt(bodyBlk, ast.Position{})
	loop := ast.NewLoopStmt(ast.LoopFor, nil, &ast.Exp{Kind: ast.ExpVal}, post, body, ast.Position{})

	blk := ast.NewBlk(ast.BlkFunc, ast.Position{})
	blk.Add(loop)

	_, blocks := Lower(blk)

	var found bool
	for _, bb := range blocks {
		for _, pg := range bb.Piggyback {
			if pg == post {
				found = true
			}
		}
	}
	if !found {
		t.Error("an explicit continue must also piggyback the loop step before jumping to the header")
	}
}

func TestLowerBreakOutsideLoopPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("lowering a break outside any loop should panic")
		}
	}()

	blk := ast.NewBlk(ast.BlkFunc, ast.Position{})
	blk.Add(ast.NewJumpStmt(ast.JumpBreak, nil, ast.Position{}))
	Lower(blk)
}

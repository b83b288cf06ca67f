package ir

import "github.com/ctlang/ctc/internal/ast"

// loopFrame tracks the blocks a BREAK/CONTINUE inside the loop currently
// being lowered must target, and the step statement that must piggyback
// onto any edge that returns to the header.
type loopFrame struct {
	header *BasicBlock
	exit   *BasicBlock
	post   *ast.Stmt
}

// Lowerer holds the state of one function's lowering pass: every block
// created, in creation order, and the stack of enclosing loops.
type Lowerer struct {
	Blocks []*BasicBlock
	loops  []loopFrame
}

// NewLowerer returns an empty lowering pass.
func NewLowerer() *Lowerer {
	return &Lowerer{}
}

func (l *Lowerer) newBB() *BasicBlock {
	bb := NewBB()
	l.Blocks = append(l.Blocks, bb)
	return bb
}

// Lower lowers a checked function body into basic blocks and returns the
// entry block. Every block reachable from it is also appended to
// l.Blocks in the order it was created.
func Lower(blk *ast.Blk) (entry *BasicBlock, blocks []*BasicBlock) {
	l := NewLowerer()
	entry = l.newBB()
	l.lowerBlk(entry, blk)
	return entry, l.Blocks
}

func (l *Lowerer) lowerBlk(cur *BasicBlock, blk *ast.Blk) *BasicBlock {
	for _, s := range blk.Stmts {
		cur = l.lowerStmt(cur, s)
	}
	return cur
}

func (l *Lowerer) lowerStmt(cur *BasicBlock, s *ast.Stmt) *BasicBlock {
	if s == nil {
		return cur
	}

	switch s.Kind {
	case ast.StmtNull:
		return cur

	case ast.StmtID, ast.StmtExp, ast.StmtAssign, ast.StmtDDL, ast.StmtPragma, ast.StmtGoto:
		cur.AddStmt(s)
		return cur

	case ast.StmtIf:
		return l.lowerIf(cur, s.Cond, s.Then, s.Elifs, s.Else)

	case ast.StmtLoop:
		return l.lowerLoop(cur, s)

	case ast.StmtSwitch:
		return l.lowerSwitch(cur, s)

	case ast.StmtReturn:
		cur.AddStmt(s)
		return l.newBB() // unreachable after a return; gives later statements somewhere inert to land

	case ast.StmtJump:
		return l.lowerJump(cur, s)

	case ast.StmtBlk:
		return l.lowerBlk(cur, s.Blk)

	default:
		panic("ir: invalid statement kind during lowering")
	}
}

// lowerIf lowers an IF/ELIF*/ELSE chain. Each elif is lowered as a nested
// IF inside the previous condition's else branch, matching how an
// elif-chain reads as sugar for nested ifs.
func (l *Lowerer) lowerIf(cur *BasicBlock, cond *ast.Exp, then *ast.Stmt, elifs []ast.ElifClause, els *ast.Stmt) *BasicBlock {
	join := l.newBB()

	thenBB := l.newBB()
	cur.AddBranch(cond, thenBB)
	thenExit := l.lowerStmt(thenBB, then)
	thenExit.AddBranch(nil, join)

	elseBB := l.newBB()
	cur.AddBranch(nil, elseBB)

	var elseExit *BasicBlock
	switch {
	case len(elifs) > 0:
		elseExit = l.lowerIf(elseBB, elifs[0].Cond, elifs[0].Then, elifs[1:], els)
	case els != nil:
		elseExit = l.lowerStmt(elseBB, els)
	default:
		elseExit = elseBB
	}
	elseExit.AddBranch(nil, join)

	return join
}

// lowerLoop lowers a FOR/WHILE/DO-WHILE statement. The loop's Post
// statement (the step of a for-loop, typically) piggybacks on the body's
// exit block so it runs once before control returns to the header on
// every path, including a bare fallthrough and an explicit `continue`.
func (l *Lowerer) lowerLoop(cur *BasicBlock, s *ast.Stmt) *BasicBlock {
	cur = l.lowerStmt(cur, s.Init)

	header := l.newBB()
	cur.AddBranch(nil, header)

	exit := l.newBB()
	bodyEntry := l.newBB()

	if s.Cond != nil {
		header.AddBranch(s.Cond, bodyEntry)
		header.AddBranch(nil, exit)
	} else {
		header.AddBranch(nil, bodyEntry)
	}

	l.loops = append(l.loops, loopFrame{header: header, exit: exit, post: s.Post})
	bodyExit := l.lowerStmt(bodyEntry, s.Body)
	l.loops = l.loops[:len(l.loops)-1]

	if s.Post != nil {
		bodyExit.AddPiggyback(s.Post)
	}
	bodyExit.AddBranch(nil, header)

	return exit
}

// lowerSwitch lowers each CASE arm as a conditional branch comparing the
// discriminant; a default arm (Val == nil) is taken unconditionally if no
// earlier case matched.
func (l *Lowerer) lowerSwitch(cur *BasicBlock, s *ast.Stmt) *BasicBlock {
	join := l.newBB()
	discriminant := s.Cond
	hasDefault := false

	for _, cs := range s.Cases {
		caseBB := l.newBB()

		if cs.Val != nil {
			cond := &ast.Exp{Kind: ast.ExpOp, Op: ast.OpEq, L: discriminant, R: cs.Val, Pos: cs.Pos}
			cur.AddBranch(cond, caseBB)
		} else {
			cur.AddBranch(nil, caseBB)
			hasDefault = true
		}

		caseExit := l.lowerStmt(caseBB, cs.Then)
		caseExit.AddBranch(nil, join)

		if cs.Val != nil {
			next := l.newBB()
			cur.AddBranch(nil, next)
			cur = next
		}
	}
	if !hasDefault {
		cur.AddBranch(nil, join)
	}

	return join
}

func (l *Lowerer) lowerJump(cur *BasicBlock, s *ast.Stmt) *BasicBlock {
	if len(l.loops) == 0 {
		panic("ir: break/continue outside a loop")
	}
	frame := l.loops[len(l.loops)-1]

	var target *BasicBlock
	if s.JumpKind == ast.JumpBreak {
		target = frame.exit
	} else {
		target = frame.header
		if frame.post != nil {
			cur.AddPiggyback(frame.post)
		}
	}

	cur.AddBranch(s.JumpCond, target)

	if s.JumpCond == nil {
		return l.newBB()
	}
	return cur
}

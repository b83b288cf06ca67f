package semantic

import (
	"strconv"

	"github.com/ctlang/ctc/internal/ast"
	"github.com/ctlang/ctc/internal/diag"
	"github.com/ctlang/ctc/internal/types"
	"github.com/ctlang/ctc/internal/value"
)

// reservedMapFn is the constructor name the checker special-cases: calling
// it builds an untyped MAP value rather than resolving a user function.
const reservedMapFn = "map"

// CheckExp walks e, resolving names, composing its Meta, and folding
// constant sub-expressions in place. It reports at most one error per
// sub-expression: once a child check fails, the parent stops descending
// into further children but the caller is expected to continue checking
// sibling statements.
func (c *Context) CheckExp(e *ast.Exp) bool {
	if e == nil {
		return true
	}

	switch e.Kind {
	case ast.ExpNull:
		return true
	case ast.ExpID:
		return c.checkID(e)
	case ast.ExpVal:
		return c.checkVal(e)
	case ast.ExpType:
		return c.checkType(e)
	case ast.ExpArray:
		return c.checkArray(e)
	case ast.ExpOp:
		return c.checkOp(e)
	case ast.ExpAccess:
		return c.checkAccess(e)
	case ast.ExpCall:
		return c.checkCall(e)
	case ast.ExpSQL:
		return c.checkSQL(e)
	case ast.ExpTernary:
		return c.checkTernary(e)
	case ast.ExpTuple:
		return c.checkTuple(e)
	default:
		// ExpReg, ExpGlobal, ExpMem are synthesized during lowering and
		// already carry a Meta; there is nothing left to check.
		return true
	}
}

func (c *Context) checkID(e *ast.Exp) bool {
	var id *ast.Id
	var ok bool

	if acq := c.Acquired(); acq != nil {
		id, ok = c.Scope.LookupField(acq, e.Name)
	} else {
		if c.Fn != nil {
			id, ok = c.Scope.LookupParam(c.Fn, e.Name)
		}
		if !ok {
			id, ok = c.Scope.LookupName(c.SeqNo(), e.Name)
			if ok && id.IsContract() {
				id, ok = c.Scope.LookupField(id, e.Name)
			}
		}
	}

	if !ok {
		c.report(diag.UndefinedID, e.Pos, e.Name)
		return false
	}

	id.IsUsed = true
	e.Id = id
	e.Meta = id.Meta.Copy()
	return true
}

func (c *Context) checkVal(e *ast.Exp) bool {
	switch e.Val.Kind {
	case value.NULL:
		e.Meta = ast.NewMeta(types.REF)
	case value.BOOL:
		e.Meta = ast.NewBoolMeta()
	case value.INT:
		e.Meta = ast.NewUntypedMeta(types.INT64)
	case value.FP:
		e.Meta = ast.NewUntypedMeta(types.DOUBLE)
	case value.STR:
		e.Meta = ast.NewStringMeta()
	default:
		panic("semantic: invalid value kind in VAL expression")
	}
	return true
}

func (c *Context) checkType(e *ast.Exp) bool {
	switch e.TypeOf {
	case types.STRUCT:
		var id *ast.Id
		var ok bool
		if acq := c.Acquired(); acq != nil {
			id, ok = c.Scope.LookupField(acq, e.TypeName)
		} else {
			id, ok = c.Scope.LookupName(c.SeqNo(), e.TypeName)
		}
		if !ok || (!id.IsStruct() && !id.IsContract()) {
			c.report(diag.UndefinedType, e.Pos, e.TypeName)
			return false
		}
		id.IsUsed = true
		e.Id = id
		e.Meta = id.Meta.Copy()
		return true

	case types.MAP:
		if !c.CheckExp(e.KeyExp) {
			return false
		}
		if !e.KeyExp.Meta.Comparable() {
			c.report(diag.InvalidKeyType, e.KeyExp.Pos, e.KeyExp.Meta.String())
			return false
		}
		if !c.CheckExp(e.ValExp) {
			return false
		}
		e.Meta = ast.NewMapMeta(e.KeyExp.Meta, e.ValExp.Meta)
		return true

	default:
		e.Meta = ast.NewMeta(e.TypeOf)
		return true
	}
}

func (c *Context) checkArray(e *ast.Exp) bool {
	if !c.CheckExp(e.ArrBase) {
		return false
	}
	baseMeta := e.ArrBase.Meta

	if !baseMeta.Type.IsArray() && !baseMeta.Type.IsMap() {
		c.report(diag.InvalidSubscript, e.ArrBase.Pos, baseMeta.String())
		return false
	}
	e.Id = e.ArrBase.Id

	if !c.CheckExp(e.ArrIdx) {
		return false
	}
	idxMeta := e.ArrIdx.Meta

	if baseMeta.Type.IsMap() {
		if !baseMeta.Key.Equals(idxMeta) {
			c.report(diag.MismatchedType, e.ArrIdx.Pos, baseMeta.Key.String(), idxMeta.String())
			return false
		}
		e.Meta = baseMeta.Val.Copy()
		return true
	}

	if !idxMeta.Type.IsInteger() {
		c.report(diag.InvalidSizeVal, e.ArrIdx.Pos, idxMeta.String())
		return false
	}
	e.Meta = baseMeta.Copy()
	return true
}

func (c *Context) checkAccess(e *ast.Exp) bool {
	if !c.CheckExp(e.AccBase) {
		return false
	}
	baseMeta := e.AccBase.Meta
	id := e.AccBase.Id

	if id == nil || baseMeta.Type.IsTuple() {
		c.report(diag.NotAccessibleExp, e.AccBase.Pos, baseMeta.String())
		return false
	}

	if id.IsVariable() {
		typeID := baseMeta.Decl
		if typeID == nil || (!typeID.IsStruct() && !typeID.IsContract()) {
			c.report(diag.NotAccessibleExp, e.AccBase.Pos, baseMeta.String())
			return false
		}
		id = typeID
	} else if id.IsFunction() && !baseMeta.Type.IsStruct() && !baseMeta.Type.IsRef() {
		c.report(diag.NotAccessibleExp, e.AccBase.Pos, baseMeta.String())
		return false
	}

	g := c.Acquire(id)
	defer g.release()

	if !c.CheckExp(e.AccField) {
		return false
	}

	e.Id = e.AccField.Id
	e.Meta = e.AccField.Meta.Copy()
	return true
}

func (c *Context) checkCall(e *ast.Exp) bool {
	if e.CallFn.Kind == ast.ExpID && e.CallFn.Name == reservedMapFn {
		if len(e.CallArgs) > 0 {
			if !c.CheckExp(e.CallArgs[0]) {
				return false
			}
			if !e.CallArgs[0].Meta.Type.IsInteger() {
				c.report(diag.InvalidSizeVal, e.CallArgs[0].Pos, e.CallArgs[0].Meta.String())
				return false
			}
		}
		e.Meta = ast.NewUntypedMeta(types.MAP)
		return true
	}

	if !c.CheckExp(e.CallFn) {
		return false
	}
	fn := e.CallFn.Id
	if fn == nil || !fn.IsFunction() {
		c.report(diag.NotCallableExp, e.CallFn.Pos, e.CallFn.Meta.String())
		return false
	}

	if len(fn.Params) != len(e.CallArgs) {
		c.report(diag.MismatchedCount, e.CallFn.Pos, strconv.Itoa(len(fn.Params)), strconv.Itoa(len(e.CallArgs)))
		return false
	}

	for i, arg := range e.CallArgs {
		if !c.CheckExp(arg) {
			return false
		}
		param := fn.Params[i]
		if !param.Meta.Equals(arg.Meta) {
			c.report(diag.MismatchedType, arg.Pos, param.Meta.String(), arg.Meta.String())
			return false
		}
	}

	e.Id = fn
	e.Meta = fn.Meta.Copy()
	return true
}

func (c *Context) checkSQL(e *ast.Exp) bool {
	switch e.SQLKind {
	case ast.SQLQuery:
		// Column meta is deliberately left unspecified; a driver that
		// knows the schema fills it in separately.
	case ast.SQLInsert, ast.SQLUpdate, ast.SQLDelete:
		e.Meta = ast.NewInt32Meta()
	}
	return true
}

func (c *Context) checkTernary(e *ast.Exp) bool {
	if !c.CheckExp(e.Pre) {
		return false
	}
	if !e.Pre.Meta.Type.IsBool() {
		c.report(diag.InvalidCondType, e.Pre.Pos, e.Pre.Meta.String())
		return false
	}

	if !c.CheckExp(e.In) {
		return false
	}
	if !c.CheckExp(e.Post) {
		return false
	}

	if !e.In.Meta.Equals(e.Post.Meta) {
		c.report(diag.MismatchedType, e.Post.Pos, e.In.Meta.String(), e.Post.Meta.String())
		return false
	}

	e.Meta = e.In.Meta.Copy()
	return true
}

func (c *Context) checkTuple(e *ast.Exp) bool {
	metas := make([]*ast.Meta, len(e.Elems))
	for i, el := range e.Elems {
		if !c.CheckExp(el) {
			return false
		}
		metas[i] = el.Meta
	}
	e.Meta = ast.NewTupleMeta(metas)
	return true
}

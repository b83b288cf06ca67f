package scope

import "github.com/ctlang/ctc/internal/ast"

// entry binds a name to the Id declared for it at seqNo and after.
type entry struct {
	seqNo int
	name  string
	id    *ast.Id
}

// Table is a minimal in-memory Scope used by tests and by small standalone
// programs: every declaration is recorded flatly with the sequence number
// it becomes visible at, and LookupName returns the closest prior
// declaration with that name. It does not model nested block scoping
// beyond seqNo ordering; a real front end's symbol table can implement
// Scope directly against its own data structures instead.
type Table struct {
	entries []entry
}

// NewTable returns an empty symbol table.
func NewTable() *Table {
	return &Table{}
}

// Declare records id as visible from seqNo onward.
func (t *Table) Declare(seqNo int, id *ast.Id) {
	t.entries = append(t.entries, entry{seqNo: seqNo, name: id.Name, id: id})
}

// LookupName returns the last declaration of name whose seqNo is <= the
// query seqNo, i.e. the innermost/most-recent visible binding.
func (t *Table) LookupName(seqNo int, name string) (*ast.Id, bool) {
	var best *entry
	for i := range t.entries {
		e := &t.entries[i]
		if e.name != name || e.seqNo > seqNo {
			continue
		}
		if best == nil || e.seqNo >= best.seqNo {
			best = e
		}
	}
	if best == nil {
		return nil, false
	}
	return best.id, true
}

// LookupParam resolves name against fn's parameter list.
func (t *Table) LookupParam(fn *ast.Id, name string) (*ast.Id, bool) {
	if fn == nil {
		return nil, false
	}
	if p := fn.ParamByName(name); p != nil {
		return p, true
	}
	return nil, false
}

// LookupField resolves name against aggregate's fields.
func (t *Table) LookupField(aggregate *ast.Id, name string) (*ast.Id, bool) {
	if aggregate == nil {
		return nil, false
	}
	if f := aggregate.FieldByName(name); f != nil {
		return f, true
	}
	return nil, false
}

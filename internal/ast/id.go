package ast

// IdKind classifies a declared name.
type IdKind int

const (
	IdVar IdKind = iota
	IdParam
	IdFunc
	IdStruct
	IdContract
	IdTuple
	IdEnum
)

// Id is a declared name: a variable, parameter, function, struct, contract,
// tuple-of-ids (the left-hand side of a `(a, b) := ...` declaration), or
// enum member. The Meta field is the compile-time type of what the name
// designates; IsUsed is set by the checker the first time an ID expression
// resolves to this declaration.
type Id struct {
	Kind   IdKind
	Name   string
	Pos    Position
	Meta   *Meta
	IsUsed bool

	// IdFunc
	Params  []*Id
	RetMeta *Meta

	// IdStruct / IdContract: field declarations, in declaration order.
	Fields []*Id

	// IdTuple: the ids named on a `(a, b) := ...` left-hand side.
	Elems []*Id

	// IdEnum
	EnumValue int64
}

func (id *Id) IsVariable() bool  { return id.Kind == IdVar }
func (id *Id) IsParameter() bool { return id.Kind == IdParam }
func (id *Id) IsFunction() bool  { return id.Kind == IdFunc }
func (id *Id) IsStruct() bool    { return id.Kind == IdStruct }
func (id *Id) IsContract() bool  { return id.Kind == IdContract }
func (id *Id) IsTuple() bool     { return id.Kind == IdTuple }
func (id *Id) IsEnum() bool      { return id.Kind == IdEnum }

// FieldByName performs a linear search of Fields by case-sensitive name; the
// real field-lookup-by-name primitive lives in the Scope the checker is
// given (see the scope package) — this helper exists only for tests and for
// scope implementations that want a default.
func (id *Id) FieldByName(name string) *Id {
	for _, f := range id.Fields {
		if f.Name == name {
			return f
		}
	}
	return nil
}

// ParamByName performs the equivalent linear search over Params.
func (id *Id) ParamByName(name string) *Id {
	for _, p := range id.Params {
		if p.Name == name {
			return p
		}
	}
	return nil
}

// NewVarId constructs a variable Id.
func NewVarId(name string, meta *Meta, pos Position) *Id {
	return &Id{Kind: IdVar, Name: name, Meta: meta, Pos: pos}
}

// NewParamId constructs a function-parameter Id.
func NewParamId(name string, meta *Meta, pos Position) *Id {
	return &Id{Kind: IdParam, Name: name, Meta: meta, Pos: pos}
}

// NewFuncId constructs a function Id. Its Meta is the function's own type
// (used when a function reference is taken as a value); RetMeta is the
// return type checked against RETURN statements.
func NewFuncId(name string, params []*Id, retMeta *Meta, pos Position) *Id {
	return &Id{Kind: IdFunc, Name: name, Params: params, RetMeta: retMeta, Meta: retMeta, Pos: pos}
}

// NewStructId constructs a struct Id with the given field declarations. Its
// own Meta is a STRUCT meta referencing itself.
func NewStructId(name string, fields []*Id, pos Position) *Id {
	id := &Id{Kind: IdStruct, Name: name, Fields: fields, Pos: pos}
	id.Meta = NewStructMeta(id)
	return id
}

// NewContractId constructs a contract Id with the given field/member
// declarations.
func NewContractId(name string, fields []*Id, pos Position) *Id {
	id := &Id{Kind: IdContract, Name: name, Fields: fields, Pos: pos}
	id.Meta = NewStructMeta(id)
	return id
}

// NewTupleId constructs a tuple-of-ids Id (the left-hand side of a
// multi-value declaration).
func NewTupleId(elems []*Id, pos Position) *Id {
	metas := make([]*Meta, len(elems))
	for i, e := range elems {
		metas[i] = e.Meta
	}
	return &Id{Kind: IdTuple, Elems: elems, Meta: NewTupleMeta(metas), Pos: pos}
}

// NewEnumId constructs an enum member Id.
func NewEnumId(name string, value int64, meta *Meta, pos Position) *Id {
	return &Id{Kind: IdEnum, Name: name, EnumValue: value, Meta: meta, Pos: pos}
}

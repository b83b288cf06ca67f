package diag

// Kind identifies the class of a diagnostic. The set is fixed; the checker
// never raises an error outside it.
type Kind int

const (
	UndefinedID Kind = iota
	UndefinedType
	InvalidKeyType
	InvalidSubscript
	InvalidSizeVal
	InvalidOpType
	InvalidLvalue
	InvalidCondType
	MismatchedType
	MismatchedElemCnt
	MismatchedCount
	NumericOverflow
	DivideByZero
	NotAccessibleExp
	NotCallableExp
)

var kindNames = map[Kind]string{
	UndefinedID:        "UNDEFINED_ID",
	UndefinedType:      "UNDEFINED_TYPE",
	InvalidKeyType:     "INVALID_KEY_TYPE",
	InvalidSubscript:   "INVALID_SUBSCRIPT",
	InvalidSizeVal:     "INVALID_SIZE_VAL",
	InvalidOpType:      "INVALID_OP_TYPE",
	InvalidLvalue:      "INVALID_LVALUE",
	InvalidCondType:    "INVALID_COND_TYPE",
	MismatchedType:     "MISMATCHED_TYPE",
	MismatchedElemCnt:  "MISMATCHED_ELEM_CNT",
	MismatchedCount:    "MISMATCHED_COUNT",
	NumericOverflow:    "NUMERIC_OVERFLOW",
	DivideByZero:       "DIVIDE_BY_ZERO",
	NotAccessibleExp:   "NOT_ACCESSIBLE_EXP",
	NotCallableExp:     "NOT_CALLABLE_EXP",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "UNKNOWN_ERROR"
}

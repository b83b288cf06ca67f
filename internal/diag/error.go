// Package diag defines the structured diagnostics the semantic checker
// raises and formats them with source context for a terminal.
package diag

import (
	"fmt"
	"strings"

	"github.com/ctlang/ctc/internal/ast"
)

// Error is a single semantic diagnostic: a fixed Kind, the source position
// it was raised at, and up to two formatted string arguments (typically
// type renderings, e.g. MismatchedType's "want" and "got").
type Error struct {
	Kind Kind
	Pos  ast.Position
	Arg0 string
	Arg1 string
}

func New(kind Kind, pos ast.Position, args ...string) *Error {
	e := &Error{Kind: kind, Pos: pos}
	if len(args) > 0 {
		e.Arg0 = args[0]
	}
	if len(args) > 1 {
		e.Arg1 = args[1]
	}
	return e
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Format("", false)
}

// message renders the human-readable text for the error, independent of
// source context.
func (e *Error) message() string {
	switch e.Kind {
	case UndefinedID:
		return fmt.Sprintf("undefined identifier %q", e.Arg0)
	case UndefinedType:
		return fmt.Sprintf("undefined type %q", e.Arg0)
	case InvalidKeyType:
		return fmt.Sprintf("%s is not a valid map key type", e.Arg0)
	case InvalidSubscript:
		return fmt.Sprintf("%s is not subscriptable", e.Arg0)
	case InvalidSizeVal:
		return fmt.Sprintf("invalid size argument %s", e.Arg0)
	case InvalidOpType:
		return fmt.Sprintf("operator not defined for %s", e.Arg0)
	case InvalidLvalue:
		return "expression is not a usable lvalue"
	case InvalidCondType:
		return fmt.Sprintf("condition must be bool, got %s", e.Arg0)
	case MismatchedType:
		return fmt.Sprintf("type mismatch: expected %s, got %s", e.Arg0, e.Arg1)
	case MismatchedElemCnt:
		return fmt.Sprintf("element count mismatch: expected %s, got %s", e.Arg0, e.Arg1)
	case MismatchedCount:
		return fmt.Sprintf("argument count mismatch: expected %s, got %s", e.Arg0, e.Arg1)
	case NumericOverflow:
		return fmt.Sprintf("value does not fit in %s", e.Arg0)
	case DivideByZero:
		return "division by zero"
	case NotAccessibleExp:
		return fmt.Sprintf("%s has no accessible fields", e.Arg0)
	case NotCallableExp:
		return fmt.Sprintf("%s is not callable", e.Arg0)
	default:
		return "unknown error"
	}
}

// Format renders the error, optionally against source text for a caret
// pointing at e.Pos. source may be empty when no source text is available.
func (e *Error) Format(source string, color bool) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%s at %s\n", e.Kind, e.Pos))

	if line := sourceLine(source, e.Pos.Line); line != "" {
		lineNumStr := fmt.Sprintf("%4d | ", e.Pos.Line)
		sb.WriteString(lineNumStr)
		sb.WriteString(line)
		sb.WriteString("\n")
		sb.WriteString(strings.Repeat(" ", len(lineNumStr)+e.Pos.Column-1))
		if color {
			sb.WriteString("\033[1;31m")
		}
		sb.WriteString("^")
		if color {
			sb.WriteString("\033[0m")
		}
		sb.WriteString("\n")
	}

	if color {
		sb.WriteString("\033[1m")
	}
	sb.WriteString(e.message())
	if color {
		sb.WriteString("\033[0m")
	}

	return sb.String()
}

func sourceLine(source string, lineNum int) string {
	if source == "" {
		return ""
	}
	lines := strings.Split(source, "\n")
	if lineNum < 1 || lineNum > len(lines) {
		return ""
	}
	return lines[lineNum-1]
}

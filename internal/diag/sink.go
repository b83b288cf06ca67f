package diag

import (
	"fmt"
	"strings"
)

// Sink is the append-only error collector a checking pass writes into. It
// has no remove/reset operation: a pass either finishes clean or its
// caller discards the whole result when Sink is non-empty.
type Sink struct {
	errs []*Error
}

// Add appends an already-built Error.
func (s *Sink) Add(e *Error) {
	s.errs = append(s.errs, e)
}

// HasErrors reports whether any error was recorded.
func (s *Sink) HasErrors() bool {
	return len(s.errs) > 0
}

// Errors returns all recorded errors, in report order.
func (s *Sink) Errors() []*Error {
	return s.errs
}

// FormatAll renders every recorded error against source, separated by a
// blank line and numbered when there is more than one.
func (s *Sink) FormatAll(source string, color bool) string {
	if len(s.errs) == 0 {
		return ""
	}
	if len(s.errs) == 1 {
		return s.errs[0].Format(source, color)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("checking failed with %d error(s):\n\n", len(s.errs)))
	for i, e := range s.errs {
		sb.WriteString(fmt.Sprintf("[%d/%d] ", i+1, len(s.errs)))
		sb.WriteString(e.Format(source, color))
		if i < len(s.errs)-1 {
			sb.WriteString("\n\n")
		}
	}
	return sb.String()
}

package executor

import (
	"fmt"
	"strings"
)

// Result is the generic query result returned to the caller.
type Result struct {
	Columns []string
	Rows    [][]any

	// For insert: rows written. For select: rows returned.
	AffectedRows int64
}

// FormatRow renders row i as "(v1, v2, ...)".
func (r *Result) FormatRow(i int) string {
	var b strings.Builder
	b.WriteByte('(')
	for j, v := range r.Rows[i] {
		if j > 0 {
			b.WriteString(", ")
		}
		fmt.Fprint(&b, v)
	}
	b.WriteByte(')')
	return b.String()
}

// Lines renders every row, one per element.
func (r *Result) Lines() []string {
	out := make([]string, len(r.Rows))
	for i := range r.Rows {
		out[i] = r.FormatRow(i)
	}
	return out
}

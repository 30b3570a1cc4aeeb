package planner

import (
	"strings"

	"github.com/tuannm99/novalite/internal/record"
	"github.com/tuannm99/novalite/internal/sql/parser"
)

// Plan is the interface for executable plans.
type Plan interface {
	planNode()
}

// ----- Plan nodes -----

// InsertPlan carries the row as written by the user; it is validated at
// execution time.
type InsertPlan struct {
	TableName string
	Row       record.Row
}

func (*InsertPlan) planNode() {}

// SeqScanPlan is a full scan with projection and an optional filter.
type SeqScanPlan struct {
	TableName string
	Columns   []record.Column // in output order
	Filter    *Filter         // nil == every row
}

func (*SeqScanPlan) planNode() {}

// Filter is a typed "<column> <op> <value>". The id column compares
// numerically, text columns compare bytewise.
type Filter struct {
	Column record.Column
	Op     parser.Op
	Int    int64
	Text   string
}

// Match evaluates the filter against r.
func (f *Filter) Match(r record.Row) bool {
	v, ok := r.Value(f.Column.Name)
	if !ok {
		return false
	}

	var cmp int
	switch x := v.(type) {
	case int32:
		switch {
		case int64(x) < f.Int:
			cmp = -1
		case int64(x) > f.Int:
			cmp = 1
		}
	case string:
		cmp = strings.Compare(x, f.Text)
	default:
		return false
	}

	switch f.Op {
	case parser.OpEq:
		return cmp == 0
	case parser.OpNe:
		return cmp != 0
	case parser.OpLt:
		return cmp < 0
	case parser.OpGt:
		return cmp > 0
	case parser.OpLe:
		return cmp <= 0
	case parser.OpGe:
		return cmp >= 0
	default:
		return false
	}
}

package planner

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tuannm99/novalite/internal/record"
	"github.com/tuannm99/novalite/internal/sql/parser"
)

// BuildPlan builds a physical plan from an AST Statement, resolving column
// names against schema. Unknown columns and mistyped values are syntax errors.
func BuildPlan(stmt parser.Statement, schema record.Schema) (Plan, error) {
	switch s := stmt.(type) {
	case *parser.InsertStmt:
		return buildInsertPlan(s)
	case *parser.SelectStmt:
		return buildSelectPlan(s, schema)
	default:
		return nil, fmt.Errorf("planner: unsupported statement type %T", stmt)
	}
}

func buildInsertPlan(s *parser.InsertStmt) (Plan, error) {
	if len(s.Values) != 3 {
		return nil, fmt.Errorf("%w: insert wants 3 values, got %d", parser.ErrSyntax, len(s.Values))
	}

	id, ok := s.Values[0].Value.(int64)
	if !ok {
		return nil, fmt.Errorf("%w: id must be an integer", parser.ErrSyntax)
	}

	return &InsertPlan{
		TableName: s.TableName,
		Row: record.Row{
			ID:       int32(id),
			Username: s.Values[1].Raw,
			Email:    s.Values[2].Raw,
		},
	}, nil
}

func buildSelectPlan(s *parser.SelectStmt, schema record.Schema) (Plan, error) {
	plan := &SeqScanPlan{
		TableName: s.TableName,
		Columns:   make([]record.Column, 0, schema.NumCols()),
	}

	if s.Columns == nil {
		plan.Columns = append(plan.Columns, schema.Cols...)
	} else {
		for _, name := range s.Columns {
			col, ok := schema.Lookup(name)
			if !ok {
				return nil, fmt.Errorf("%w: unknown column %q (have %s)",
					parser.ErrSyntax, name, strings.Join(schema.Names(), ", "))
			}
			plan.Columns = append(plan.Columns, col)
		}
	}

	if s.Where != nil {
		f, err := buildFilter(s.Where, schema)
		if err != nil {
			return nil, err
		}
		plan.Filter = f
	}
	return plan, nil
}

func buildFilter(w *parser.WhereExpr, schema record.Schema) (*Filter, error) {
	col, ok := schema.Lookup(w.Column)
	if !ok {
		return nil, fmt.Errorf("%w: unknown column %q", parser.ErrSyntax, w.Column)
	}

	f := &Filter{Column: col, Op: w.Op}
	switch col.Type {
	case record.ColInt32:
		n, err := strconv.ParseInt(w.Value.Raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %s wants an integer, got %q", parser.ErrSyntax, col.Name, w.Value.Raw)
		}
		f.Int = n
	case record.ColText:
		f.Text = w.Value.Raw
	default:
		return nil, fmt.Errorf("planner: unsupported column type %s", col.Type)
	}
	return f, nil
}

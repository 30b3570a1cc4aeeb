package executor

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/tuannm99/novalite/internal/heap"
	"github.com/tuannm99/novalite/internal/record"
	"github.com/tuannm99/novalite/internal/sql/parser"
	"github.com/tuannm99/novalite/internal/sql/planner"
)

// Executor prepares and executes statements against one table.
type Executor struct {
	Table  *heap.Table
	Schema record.Schema

	log *zap.Logger
}

func NewExecutor(tbl *heap.Table, log *zap.Logger) *Executor {
	if log == nil {
		log = zap.NewNop()
	}
	return &Executor{
		Table:  tbl,
		Schema: record.UsersSchema,
		log:    log,
	}
}

// ExecSQL is the top-level entry: command line -> Result.
func (e *Executor) ExecSQL(sql string) (*Result, error) {
	plan, err := e.Prepare(sql)
	if err != nil {
		return nil, err
	}
	return e.Execute(plan)
}

// Prepare parses and plans one line without touching the table.
func (e *Executor) Prepare(sql string) (planner.Plan, error) {
	stmt, err := parser.Parse(sql)
	if err != nil {
		return nil, err
	}
	return planner.BuildPlan(stmt, e.Schema)
}

// Execute runs a prepared plan. Failed statements leave the table unchanged.
func (e *Executor) Execute(p planner.Plan) (*Result, error) {
	switch plan := p.(type) {
	case *planner.InsertPlan:
		return e.execInsert(plan)
	case *planner.SeqScanPlan:
		return e.execSeqScan(plan)
	default:
		return nil, fmt.Errorf("executor: unsupported plan type %T", p)
	}
}

func (e *Executor) execInsert(p *planner.InsertPlan) (*Result, error) {
	if err := record.Validate(p.Row); err != nil {
		return nil, err
	}
	if err := e.Table.Insert(p.Row); err != nil {
		if errors.Is(err, heap.ErrTableFull) {
			e.log.Debug("insert rejected", zap.Int("capacity", e.Table.Capacity()))
		}
		return nil, err
	}
	e.log.Debug("row inserted", zap.Stringer("row", p.Row), zap.Int("rows", e.Table.NumRows()))
	return &Result{AffectedRows: 1}, nil
}

func (e *Executor) execSeqScan(p *planner.SeqScanPlan) (*Result, error) {
	res := &Result{Columns: make([]string, len(p.Columns))}
	for i, c := range p.Columns {
		res.Columns[i] = c.Name
	}

	var filter func(record.Row) bool
	if p.Filter != nil {
		filter = p.Filter.Match
	}

	for c := e.Table.StartWhere(filter); !c.EndOfTable(); c.Advance() {
		row, err := c.Value()
		if err != nil {
			return nil, fmt.Errorf("executor: read row %d: %w", c.RowNum(), err)
		}
		if !c.Matches(row) {
			continue
		}

		out := make([]any, len(p.Columns))
		for i, col := range p.Columns {
			out[i], _ = row.Value(col.Name)
		}
		res.Rows = append(res.Rows, out)
	}

	res.AffectedRows = int64(len(res.Rows))
	e.log.Debug("seq scan done",
		zap.Int("scanned", e.Table.NumRows()),
		zap.Int64("matched", res.AffectedRows),
	)
	return res, nil
}

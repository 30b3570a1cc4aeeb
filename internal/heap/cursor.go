package heap

import "github.com/tuannm99/novalite/internal/record"

// Cursor walks row numbers 0..NumRows-1 in order. It reads through the
// table's pager for the current row only, so it can be dropped mid-scan.
type Cursor struct {
	table      *Table
	rowNum     int
	endOfTable bool
	filter     func(record.Row) bool
}

// Start positions a cursor at the first row.
func (t *Table) Start() *Cursor {
	return &Cursor{
		table:      t,
		rowNum:     0,
		endOfTable: t.numRows == 0,
	}
}

// StartWhere is Start with a predicate. The cursor still visits every row;
// Matches reports whether the current one satisfies the predicate.
func (t *Table) StartWhere(filter func(record.Row) bool) *Cursor {
	c := t.Start()
	c.filter = filter
	return c
}

// End positions a cursor one past the last row, where the next insert goes.
func (t *Table) End() *Cursor {
	return &Cursor{
		table:      t,
		rowNum:     t.numRows,
		endOfTable: true,
	}
}

func (c *Cursor) EndOfTable() bool { return c.endOfTable }
func (c *Cursor) RowNum() int      { return c.rowNum }

// Value decodes the row under the cursor.
func (c *Cursor) Value() (record.Row, error) {
	return c.table.RowAt(c.rowNum)
}

// Matches reports whether r passes the cursor's predicate; no predicate matches everything.
func (c *Cursor) Matches(r record.Row) bool {
	return c.filter == nil || c.filter(r)
}

func (c *Cursor) Advance() {
	c.rowNum++
	if c.rowNum >= c.table.numRows {
		c.endOfTable = true
	}
}

package heap

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/tuannm99/novalite/internal/record"
	"github.com/tuannm99/novalite/internal/storage"
)

const (
	// RowsPerPage is 14: slots are densely packed, no page header.
	RowsPerPage = storage.PageSize / record.RowSize
	// TableMaxRows is the capacity ceiling, fixed at compile time.
	TableMaxRows = RowsPerPage * storage.TableMaxPages
)

var (
	ErrTableFull         = errors.New("heap: table full")
	ErrRowOutOfRange     = errors.New("heap: row number out of range")
	ErrTooManyRowsOnDisk = errors.New("heap: db file holds more rows than the table capacity")
)

// Table maps a logical row number to a slot inside a pager page.
// Row i lives in page i/RowsPerPage at byte (i%RowsPerPage)*RowSize.
type Table struct {
	pager   *storage.Pager
	numRows int
	log     *zap.Logger
}

// Open derives the row count from the pager's file length: every full page
// holds RowsPerPage rows, the trailing partial page holds what its bytes span.
func Open(pager *storage.Pager, log *zap.Logger) (*Table, error) {
	if log == nil {
		log = zap.NewNop()
	}

	length := pager.FileLength()
	fullPages := int(length / storage.PageSize)
	tail := int(length % storage.PageSize)
	numRows := fullPages*RowsPerPage + tail/record.RowSize

	if numRows > TableMaxRows {
		return nil, fmt.Errorf("%w: %d rows", ErrTooManyRowsOnDisk, numRows)
	}

	log.Debug("table opened", zap.Int("rows", numRows), zap.Bool("persistent", pager.Persistent()))
	return &Table{pager: pager, numRows: numRows, log: log}, nil
}

// OpenMemory returns an empty table that is never persisted.
func OpenMemory(log *zap.Logger) *Table {
	t, _ := Open(storage.OpenMemory(), log)
	return t
}

func (t *Table) NumRows() int  { return t.numRows }
func (t *Table) Capacity() int { return TableMaxRows }

// rowSlot returns the RowSize bytes backing row n.
func (t *Table) rowSlot(n int) ([]byte, error) {
	page, err := t.pager.GetPage(n / RowsPerPage)
	if err != nil {
		return nil, err
	}
	off := (n % RowsPerPage) * record.RowSize
	return page[off : off+record.RowSize], nil
}

// Insert appends r. Either the row is written and counted, or nothing changes.
func (t *Table) Insert(r record.Row) error {
	if t.numRows >= TableMaxRows {
		return ErrTableFull
	}

	// encode first so a validation failure never touches the page
	buf, err := record.EncodeRow(r)
	if err != nil {
		return err
	}

	slot, err := t.rowSlot(t.End().RowNum())
	if err != nil {
		return err
	}
	copy(slot, buf)
	t.numRows++
	return nil
}

// RowAt decodes row n; n must be below NumRows.
func (t *Table) RowAt(n int) (record.Row, error) {
	if n < 0 || n >= t.numRows {
		return record.Row{}, fmt.Errorf("%w: %d (rows=%d)", ErrRowOutOfRange, n, t.numRows)
	}
	slot, err := t.rowSlot(n)
	if err != nil {
		return record.Row{}, err
	}
	return record.Decode(slot)
}

// Close flushes every cached page that holds rows, then releases the pager.
// All pages but the last are written in full; the last one only up to its
// final row so the file stays as short as possible.
func (t *Table) Close() error {
	var errs []error

	fullPages := t.numRows / RowsPerPage
	for i := 0; i < fullPages; i++ {
		if !t.pager.Cached(i) {
			continue
		}
		if err := t.pager.Flush(i, storage.PageSize); err != nil {
			errs = append(errs, err)
		}
	}

	// There may be a partial page to write to the end of the file
	if extra := t.numRows % RowsPerPage; extra > 0 && t.pager.Cached(fullPages) {
		if err := t.pager.Flush(fullPages, extra*record.RowSize); err != nil {
			errs = append(errs, err)
		}
	}

	if err := t.pager.Close(); err != nil {
		errs = append(errs, err)
	}

	t.log.Debug("table closed", zap.Int("rows", t.numRows), zap.Int64("file_length", t.pager.FileLength()))
	return errors.Join(errs...)
}

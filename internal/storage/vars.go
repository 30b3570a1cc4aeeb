package storage

import (
	"errors"
)

const (
	OneKB = 1 << 10 // 1,024

	// PageSize is the unit of file I/O and in-memory caching.
	PageSize = 4 * OneKB // 4,096
	// TableMaxPages bounds the page cache and therefore the table capacity.
	TableMaxPages = 100
)

const (
	FileMode0644 = 0o644 // rw-r--r--
)

var (
	ErrCorruptFile     = errors.New("storage: db file is not a whole number of rows, corrupt file")
	ErrPageOutOfBounds = errors.New("storage: page number out of bounds")
	ErrNullPage        = errors.New("storage: tried to flush a page that is not cached")
	ErrFlushSize       = errors.New("storage: flush size exceeds page size")
	ErrBadRowSize      = errors.New("storage: row size must be in (0, PageSize]")
	ErrLocked          = errors.New("storage: db file is locked by another process")
	ErrPagerClosed     = errors.New("storage: pager is closed")
)

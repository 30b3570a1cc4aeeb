package storage

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"
)

// Options tune how a Pager opens its file.
type Options struct {
	// RowSize is the fixed record size; the trailing partial page of the
	// file must hold a whole number of records.
	RowSize int
	// Lock takes an exclusive advisory lock on the file for the pager's lifetime.
	Lock   bool
	Logger *zap.Logger
}

// Pager is a lazy page cache over a single file. Pages are loaded at most
// once and never evicted; they are written back only by Flush.
//
// A Pager without a file (OpenMemory) keeps everything in memory and its
// Flush is a no-op.
type Pager struct {
	file       *os.File // nil for in-memory pagers
	path       string
	fileLength int64
	locked     bool
	closed     bool

	pages [TableMaxPages][]byte // nil == not loaded yet

	log *zap.Logger
}

// Open opens or creates the db file at path.
func Open(path string, opts Options) (*Pager, error) {
	if opts.RowSize <= 0 || opts.RowSize > PageSize {
		return nil, ErrBadRowSize
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	file, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, FileMode0644)
	if err != nil {
		return nil, fmt.Errorf("open db file: %w", err)
	}

	p := &Pager{file: file, path: path, log: log}

	if opts.Lock {
		if err := lockFile(file); err != nil {
			_ = file.Close()
			return nil, err
		}
		p.locked = true
	}

	info, err := file.Stat()
	if err != nil {
		_ = p.release()
		return nil, fmt.Errorf("stat db file: %w", err)
	}
	p.fileLength = info.Size()

	// Full pages are flushed as PageSize bytes, the last one only as far as
	// its rows reach.
	if tail := p.fileLength % PageSize; tail%int64(opts.RowSize) != 0 {
		_ = p.release()
		return nil, fmt.Errorf("%w: %s has length %d", ErrCorruptFile, path, p.fileLength)
	}

	log.Debug("pager opened",
		zap.String("path", path),
		zap.String("size", humanize.Bytes(uint64(p.fileLength))),
		zap.Bool("locked", p.locked),
	)
	return p, nil
}

// OpenMemory returns a pager with no backing file.
func OpenMemory() *Pager {
	return &Pager{log: zap.NewNop()}
}

// Persistent reports whether the pager is backed by a file.
func (p *Pager) Persistent() bool { return p.file != nil }

// FileLength is the db file size in bytes as of open plus any flushes.
func (p *Pager) FileLength() int64 { return p.fileLength }

// NumPages counts pages that hold persisted bytes, the partial last one included.
func (p *Pager) NumPages() int {
	n := int(p.fileLength / PageSize)
	if p.fileLength%PageSize != 0 {
		n++
	}
	return n
}

// GetPage returns the cached buffer for page n, loading it on first access.
func (p *Pager) GetPage(n int) ([]byte, error) {
	if p.closed {
		return nil, ErrPagerClosed
	}
	if n < 0 || n >= TableMaxPages {
		return nil, fmt.Errorf("%w: %d >= %d", ErrPageOutOfBounds, n, TableMaxPages)
	}

	if p.pages[n] != nil {
		return p.pages[n], nil
	}

	// Cache miss. Allocate memory and load from file.
	page := make([]byte, PageSize)
	if p.file != nil && n < p.NumPages() {
		read, err := p.file.ReadAt(page, int64(n)*PageSize)
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("read page %d: %w", n, err)
		}
		p.log.Debug("page loaded", zap.Int("page", n), zap.Int("bytes", read))
	}

	p.pages[n] = page
	return page, nil
}

// Cached reports whether page n has been loaded into memory.
func (p *Pager) Cached(n int) bool {
	return n >= 0 && n < TableMaxPages && p.pages[n] != nil
}

// Flush writes the first size bytes of cached page n to its file offset.
func (p *Pager) Flush(n int, size int) error {
	if p.closed {
		return ErrPagerClosed
	}
	if n < 0 || n >= TableMaxPages {
		return fmt.Errorf("%w: %d >= %d", ErrPageOutOfBounds, n, TableMaxPages)
	}
	if p.pages[n] == nil {
		return fmt.Errorf("%w: page %d", ErrNullPage, n)
	}
	if size < 0 || size > PageSize {
		return fmt.Errorf("%w: %d", ErrFlushSize, size)
	}
	if p.file == nil {
		return nil
	}

	off := int64(n) * PageSize
	if _, err := p.file.WriteAt(p.pages[n][:size], off); err != nil {
		return fmt.Errorf("write page %d: %w", n, err)
	}
	if end := off + int64(size); end > p.fileLength {
		p.fileLength = end
	}
	return nil
}

// Close drops every buffer and releases the file. It does not flush.
func (p *Pager) Close() error {
	if p.closed {
		return ErrPagerClosed
	}
	for i := range p.pages {
		p.pages[i] = nil
	}
	if p.file == nil {
		p.closed = true
		return nil
	}

	p.log.Debug("pager closed",
		zap.String("path", p.path),
		zap.String("size", humanize.Bytes(uint64(p.fileLength))),
	)
	return p.release()
}

func (p *Pager) release() error {
	p.closed = true
	var unlockErr error
	if p.locked {
		unlockErr = unlockFile(p.file)
		p.locked = false
	}
	if err := p.file.Close(); err != nil {
		return fmt.Errorf("close db file: %w", err)
	}
	return unlockErr
}

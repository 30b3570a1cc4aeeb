package repl

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tuannm99/novalite/internal/storage"
)

// History is the REPL history file, one command per line.
type History struct {
	path  string
	max   int
	lines []string
}

// NewHistory keeps at most max lines in memory; max <= 0 means no limit.
// An empty path disables the file.
func NewHistory(path string, max int) *History {
	return &History{path: path, max: max}
}

func (h *History) Lines() []string { return h.lines }

func (h *History) Load() error {
	if h.path == "" {
		return nil
	}
	f, err := os.Open(h.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	defer func() { _ = f.Close() }()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" {
			continue
		}
		h.push(s)
	}
	return sc.Err()
}

func (h *History) Append(line string) error {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}
	h.push(line)
	if h.path == "" {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(h.path), 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(h.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, storage.FileMode0644)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	_, err = fmt.Fprintln(f, line)
	return err
}

func (h *History) push(line string) {
	h.lines = append(h.lines, line)
	if h.max > 0 && len(h.lines) > h.max {
		h.lines = h.lines[len(h.lines)-h.max:]
	}
}

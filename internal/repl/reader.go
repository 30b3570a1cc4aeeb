package repl

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
)

// LineReader yields one input line per call, without the trailing newline.
// io.EOF ends the session.
type LineReader interface {
	ReadLine(prompt string) (string, error)
	Close() error
}

// ScanReader reads lines from a non-interactive source. The prompt is
// written to out so piped sessions see the same transcript as a terminal.
type ScanReader struct {
	sc  *bufio.Scanner
	out io.Writer
}

func NewScanReader(in io.Reader, out io.Writer) *ScanReader {
	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 0, 4096), 1<<20)
	return &ScanReader{sc: sc, out: out}
}

func (r *ScanReader) ReadLine(prompt string) (string, error) {
	if _, err := io.WriteString(r.out, prompt); err != nil {
		return "", err
	}
	if !r.sc.Scan() {
		if err := r.sc.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSuffix(r.sc.Text(), "\r"), nil
}

func (r *ScanReader) Close() error { return nil }

// TermReader is the interactive reader: line editing plus persistent history.
type TermReader struct {
	rl   *readline.Instance
	hist *History
}

func NewTermReader(hist *History) (*TermReader, error) {
	rl, err := readline.NewEx(&readline.Config{
		InterruptPrompt: "^C",
		EOFPrompt:       ".exit",
	})
	if err != nil {
		return nil, fmt.Errorf("readline: %w", err)
	}

	// preload history so the up arrow works immediately
	if hist != nil {
		for _, line := range hist.Lines() {
			_ = rl.SaveHistory(line)
		}
	}
	return &TermReader{rl: rl, hist: hist}, nil
}

func (r *TermReader) ReadLine(prompt string) (string, error) {
	r.rl.SetPrompt(prompt)
	for {
		line, err := r.rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			// Ctrl+C drops the current line
			continue
		}
		if err != nil {
			return "", err
		}
		if r.hist != nil {
			_ = r.hist.Append(line)
		}
		return line, nil
	}
}

func (r *TermReader) Close() error { return r.rl.Close() }

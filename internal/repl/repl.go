package repl

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/tuannm99/novalite/internal/heap"
	"github.com/tuannm99/novalite/internal/record"
	"github.com/tuannm99/novalite/internal/sql/executor"
	"github.com/tuannm99/novalite/internal/sql/parser"
)

const DefaultPrompt = "db > "

// REPL drives one session: read a line, run it, print the outcome.
type REPL struct {
	In     LineReader
	Out    io.Writer
	Exec   *executor.Executor
	Prompt string

	log *zap.Logger
}

func New(in LineReader, out io.Writer, ex *executor.Executor, log *zap.Logger) *REPL {
	if log == nil {
		log = zap.NewNop()
	}
	return &REPL{In: in, Out: out, Exec: ex, Prompt: DefaultPrompt, log: log}
}

// Run loops until .exit or end of input, then closes the table so every
// cached page is flushed. Statement errors are printed and the loop goes on;
// only read, write and close failures are returned.
func (r *REPL) Run() error {
	for {
		line, err := r.In.ReadLine(r.Prompt)
		if errors.Is(err, io.EOF) {
			return r.close()
		}
		if err != nil {
			_ = r.close()
			return fmt.Errorf("repl: read input: %w", err)
		}

		if strings.HasPrefix(line, ".") {
			if line == ".exit" {
				return r.close()
			}
			if err := r.println(fmt.Sprintf("Unrecognized command '%s'.", line)); err != nil {
				return err
			}
			continue
		}

		if err := r.runStatement(line); err != nil {
			return err
		}
	}
}

func (r *REPL) runStatement(line string) error {
	res, err := r.Exec.ExecSQL(line)
	if err != nil {
		r.log.Debug("statement failed", zap.String("input", line), zap.Error(err))
		return r.println(Describe(err, line))
	}

	for _, l := range res.Lines() {
		if err := r.println(l); err != nil {
			return err
		}
	}
	return r.println("Executed.")
}

func (r *REPL) println(s string) error {
	if _, err := fmt.Fprintln(r.Out, s); err != nil {
		return fmt.Errorf("repl: write output: %w", err)
	}
	return nil
}

func (r *REPL) close() error {
	if err := r.Exec.Table.Close(); err != nil {
		return fmt.Errorf("repl: close table: %w", err)
	}
	return nil
}

// Describe maps a statement error to the line printed for the user.
func Describe(err error, line string) string {
	switch {
	case errors.Is(err, heap.ErrTableFull):
		return "Error: Table full."
	case errors.Is(err, record.ErrIDNotPositive):
		return "ID must be positive."
	case errors.Is(err, record.ErrStringTooLong):
		return "String is too long."
	case errors.Is(err, parser.ErrSyntax):
		return "Syntax error."
	case errors.Is(err, parser.ErrUnrecognizedStatement):
		return fmt.Sprintf("Unrecognized keyword at start of '%s'.", line)
	default:
		return fmt.Sprintf("Error: %v", err)
	}
}

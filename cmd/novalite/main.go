package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/chzyer/readline"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/tuannm99/novalite/internal"
	"github.com/tuannm99/novalite/internal/heap"
	"github.com/tuannm99/novalite/internal/record"
	"github.com/tuannm99/novalite/internal/repl"
	"github.com/tuannm99/novalite/internal/sql/executor"
	"github.com/tuannm99/novalite/internal/storage"
	"github.com/tuannm99/novalite/pkg/logger"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run returns the process exit code so deferred cleanup (log sync, terminal
// restore) happens before exit.
func run(args []string) int {
	fs := pflag.NewFlagSet("novalite", pflag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: novalite [flags] [dbfile]\n")
		fs.PrintDefaults()
	}
	internal.RegisterFlags(fs)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}

	cfg, err := internal.LoadConfigWithFlags(fs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		return 1
	}
	if fs.NArg() > 0 {
		cfg.Storage.Path = fs.Arg(0)
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		return 1
	}
	defer func() { _ = log.Sync() }()

	tbl, err := openTable(cfg, log)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	in, err := newReader(cfg)
	if err != nil {
		_ = tbl.Close()
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer func() { _ = in.Close() }()

	r := repl.New(in, os.Stdout, executor.NewExecutor(tbl, log), log)
	if cfg.REPL.Prompt != "" {
		r.Prompt = cfg.REPL.Prompt
	}
	if err := r.Run(); err != nil {
		log.Error("session ended with error", zap.Error(err))
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func openTable(cfg *internal.NovaLiteConfig, log *zap.Logger) (*heap.Table, error) {
	if cfg.Storage.Path == "" {
		log.Info("no db file given, using an in-memory table")
		return heap.OpenMemory(log), nil
	}

	p, err := storage.Open(cfg.Storage.Path, storage.Options{
		RowSize: record.RowSize,
		Lock:    cfg.Storage.Lock,
		Logger:  log,
	})
	if err != nil {
		return nil, fmt.Errorf("open db file %s: %w", cfg.Storage.Path, err)
	}

	tbl, err := heap.Open(p, log)
	if err != nil {
		_ = p.Close()
		return nil, fmt.Errorf("open db file %s: %w", cfg.Storage.Path, err)
	}
	return tbl, nil
}

// newReader picks line editing for a terminal and a plain scanner otherwise,
// so piped scripts produce the exact prompt transcript.
func newReader(cfg *internal.NovaLiteConfig) (repl.LineReader, error) {
	if !readline.IsTerminal(int(os.Stdin.Fd())) {
		return repl.NewScanReader(os.Stdin, os.Stdout), nil
	}

	hist := repl.NewHistory(cfg.REPL.HistoryFile, cfg.REPL.HistoryMax)
	if err := hist.Load(); err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}
	return repl.NewTermReader(hist)
}

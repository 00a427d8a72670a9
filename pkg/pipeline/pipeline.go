// Package pipeline runs the concurrent n-gram counting pipeline: a fixed
// pool of workers counts disjoint file subsets locally, shuffles the
// partial counts to their owning workers in one all-to-all exchange,
// reduces, and reports in worker-id order. The coordinator holds no
// counting state of its own; every frequency map lives inside exactly one
// worker at any point in the run.
package pipeline

import (
	"errors"
	"io"
	"log/slog"
	"os"

	"golang.org/x/sync/errgroup"
)

// Config carries everything one run needs.
type Config struct {
	// Files are the input paths to count. They are handed out round-robin,
	// so their order fixes which worker reads which file.
	Files []string

	// NgramSize is the sliding window width. 1 counts single words.
	NgramSize int

	// Workers is the size of the fixed worker pool. It also fixes the
	// key-ownership partition, so two runs must use the same value for
	// their block contents to be comparable.
	Workers int

	// Header caps the number of entries printed per worker block.
	Header int

	// Out receives the report blocks. Defaults to os.Stdout.
	Out io.Writer

	// Logger receives progress and skip diagnostics. Defaults to
	// slog.Default().
	Logger *slog.Logger
}

// Stats summarizes a finished run. Unique and occurrence totals are sums
// over the per-worker final maps, which hold disjoint key sets, so no
// n-gram is ever counted twice.
type Stats struct {
	TotalFiles   int
	Processed    int
	Skipped      int
	UniqueNgrams int
	Occurrences  uint64
}

func (cfg *Config) validate() error {
	if cfg.NgramSize < 1 {
		return errors.New("pipeline: ngram size must be at least 1")
	}
	if cfg.Workers < 1 {
		return errors.New("pipeline: worker count must be at least 1")
	}
	if cfg.Header < 1 {
		return errors.New("pipeline: header must be at least 1")
	}
	return nil
}

// Run executes one full pipeline pass and blocks until every worker has
// printed its block. The returned error is the first reporting failure, if
// any; workers behind the failed one still run to completion so nothing
// leaks.
func Run(cfg Config) (Stats, error) {
	if err := cfg.validate(); err != nil {
		return Stats{}, err
	}

	out := cfg.Out
	if out == nil {
		out = os.Stdout
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	// round-robin assignment, so file i goes to worker i mod W
	assigned := make([][]string, cfg.Workers)
	for i, path := range cfg.Files {
		assigned[i%cfg.Workers] = append(assigned[i%cfg.Workers], path)
	}

	ex := newExchange(cfg.Workers)
	rep := newReporter(cfg.Header, out)

	logger.Info("starting count",
		"workers", cfg.Workers,
		"files", len(cfg.Files),
		"ngram_size", cfg.NgramSize)

	workers := make([]*worker, cfg.Workers)
	var grp errgroup.Group
	for id := 0; id < cfg.Workers; id++ {
		w := &worker{
			id:      id,
			files:   assigned[id],
			n:       cfg.NgramSize,
			workers: cfg.Workers,
			ex:      ex,
			rep:     rep,
			logger:  logger,
		}
		workers[id] = w
		grp.Go(w.run)
	}

	if err := grp.Wait(); err != nil {
		return Stats{}, err
	}

	stats := Stats{TotalFiles: len(cfg.Files)}
	for _, w := range workers {
		stats.Processed += w.stats.Processed
		stats.Skipped += w.stats.Skipped
		stats.UniqueNgrams += w.stats.UniqueNgrams
		stats.Occurrences += w.stats.Occurrences
	}
	return stats, nil
}

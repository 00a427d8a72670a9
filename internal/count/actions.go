// Package count implements the count command: discover .txt files under a
// root directory, run the concurrent n-gram pipeline over them, and print
// one ordered frequency block per worker.
package count

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/dtnitsch/corpusfreq/models"
	"github.com/dtnitsch/corpusfreq/pkg/discover"
	"github.com/dtnitsch/corpusfreq/pkg/pipeline"
	"github.com/google/uuid"
	"github.com/urfave/cli/v2"
)

func CountAction(c *cli.Context) error {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
	logger = logger.With("run_id", uuid.New().String())
	startTime := time.Now()

	cfg := models.DefaultRunConfig()
	if c.IsSet("config") {
		loaded, err := models.LoadRunConfig(c.String("config"))
		if err != nil {
			logger.Error("failed to load config file", "path", c.String("config"), "error", err)
			os.Exit(2)
		}
		cfg = loaded
	}

	// Explicit flags win over config file values
	if c.IsSet("root") {
		cfg.RootDir = c.String("root")
	}
	if c.IsSet("ngram") {
		cfg.NgramSize = c.Int("ngram")
	}
	if c.IsSet("workers") {
		cfg.Workers = c.Int("workers")
	}
	if c.IsSet("header") {
		cfg.Header = c.Int("header")
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Usage:")
		fmt.Fprintln(os.Stderr, `  corpusfreq count --root ./corpus`)
		fmt.Fprintln(os.Stderr, `  corpusfreq count --root ./corpus --ngram 2 --workers 8`)
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Need help? Run: corpusfreq count --help")
		os.Exit(1)
	}

	files, err := discover.Files(cfg.RootDir, func(ext string) bool { return ext == ".txt" })
	if err != nil {
		logger.Error("failed to scan root directory", "root", cfg.RootDir, "error", err)
		os.Exit(2)
	}
	logger.Info("Input scan complete", "root", cfg.RootDir, "files", len(files))

	stats, err := pipeline.Run(pipeline.Config{
		Files:     files,
		NgramSize: cfg.NgramSize,
		Workers:   cfg.Workers,
		Header:    cfg.Header,
		Out:       os.Stdout,
		Logger:    logger,
	})
	if err != nil {
		return fmt.Errorf("failed to run count pipeline: %w", err)
	}

	logger.Info("Count complete",
		"files", stats.TotalFiles,
		"processed", stats.Processed,
		"skipped", stats.Skipped,
		"unique_ngrams", stats.UniqueNgrams,
		"occurrences", stats.Occurrences,
		"total_time_seconds", time.Since(startTime).Seconds())

	return nil
}

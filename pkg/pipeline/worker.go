package pipeline

import (
	"log/slog"
	"os"

	"github.com/dtnitsch/corpusfreq/pkg/hash"
	"github.com/dtnitsch/corpusfreq/pkg/ngram"
	"github.com/dtnitsch/corpusfreq/pkg/tokenizer"
)

// worker owns a disjoint slice of the input files and, after the exchange,
// a disjoint slice of the key space. All of its maps are private; the only
// sharing points are the exchange slots and the reporter.
type worker struct {
	id      int
	files   []string
	n       int
	workers int
	ex      *exchange
	rep     *reporter
	logger  *slog.Logger

	stats Stats
}

// run drives the worker through its four phases: local count, shuffle
// exchange, reduce, ordered report.
func (w *worker) run() error {
	local := w.countLocal()
	w.logger.Debug("local count complete",
		"worker", w.id,
		"files", len(w.files),
		"unique_ngrams", len(local))

	w.ex.publish(w.id, w.partition(local))

	final := make(ngram.FrequencyMap)
	for _, part := range w.ex.collect(w.id) {
		final.Merge(part)
	}
	w.logger.Debug("reduce complete",
		"worker", w.id,
		"unique_ngrams", len(final))

	w.stats.UniqueNgrams = len(final)
	w.stats.Occurrences = final.Total()

	return w.rep.emit(w.id, final)
}

// countLocal builds the worker's local frequency map from its assigned
// files. A file that cannot be read is logged and skipped; it contributes
// nothing, and the exchange still takes place afterwards so peers are
// never left waiting on this worker.
func (w *worker) countLocal() ngram.FrequencyMap {
	local := make(ngram.FrequencyMap)
	for _, path := range w.files {
		raw, err := os.ReadFile(path)
		if err != nil {
			w.logger.Warn("failed to read file, skipping",
				"worker", w.id,
				"path", path,
				"error", err)
			w.stats.Skipped++
			continue
		}

		scanner := tokenizer.NewScanner(raw)
		for scanner.Scan() {
			local.AddSentence(scanner.Tokens(), w.n)
		}
		w.stats.Processed++
	}
	return local
}

// partition splits the local map into one sub-map per peer using the
// shared ownership hash. Every peer gets a sub-map even when it is empty,
// so the exchange always sees a full set of handoffs.
func (w *worker) partition(local ngram.FrequencyMap) []ngram.FrequencyMap {
	parts := make([]ngram.FrequencyMap, w.workers)
	for i := range parts {
		parts[i] = make(ngram.FrequencyMap)
	}
	for gram, count := range local {
		parts[hash.Owner(gram, w.workers)][gram] = count
	}
	return parts
}

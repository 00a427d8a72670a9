package pipeline

import (
	"bufio"
	"fmt"
	"io"
	"sync"

	"github.com/dtnitsch/corpusfreq/pkg/ngram"
)

// reporter serializes the per-worker result blocks into worker-id order. A
// worker arriving out of turn waits on the condition until its predecessor
// has printed and advanced the shared turn counter.
type reporter struct {
	mu     sync.Mutex
	cond   *sync.Cond
	turn   int
	header int
	out    io.Writer
}

func newReporter(header int, out io.Writer) *reporter {
	r := &reporter{header: header, out: out}
	r.cond = sync.NewCond(&r.mu)
	return r
}

// emit prints worker id's block once its turn comes up. The whole block is
// written while the lock is held, so blocks from different workers can
// never interleave. The turn advances even when the write fails; a failed
// writer must not strand its successors.
func (r *reporter) emit(id int, final ngram.FrequencyMap) error {
	r.mu.Lock()
	for r.turn != id {
		r.cond.Wait()
	}

	err := r.writeBlock(id, final)

	r.turn++
	r.cond.Broadcast()
	r.mu.Unlock()
	return err
}

// writeBlock prints the block label, the top entries sorted by descending
// count with ties broken by key, and a closing blank line. An empty map
// still gets its label and blank line so the stream always holds one block
// per worker.
func (r *reporter) writeBlock(id int, final ngram.FrequencyMap) error {
	w := bufio.NewWriter(r.out)
	fmt.Fprintf(w, "--- worker %d ---\n", id)
	for _, entry := range final.Top(r.header) {
		fmt.Fprintf(w, "%s: %d\n", entry.Gram, entry.Count)
	}
	fmt.Fprintln(w)
	return w.Flush()
}

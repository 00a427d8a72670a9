package pipeline

import "github.com/dtnitsch/corpusfreq/pkg/ngram"

// exchange carries the all-to-all handoff of locally counted sub-maps.
// Every ordered worker pair (from, to) owns one single-producer
// single-consumer slot, written exactly once and read exactly once per run,
// so the handoff itself needs no lock.
type exchange struct {
	slots [][]chan ngram.FrequencyMap // indexed [from][to]
}

func newExchange(workers int) *exchange {
	slots := make([][]chan ngram.FrequencyMap, workers)
	for from := range slots {
		slots[from] = make([]chan ngram.FrequencyMap, workers)
		for to := range slots[from] {
			// capacity 1 so publishing never waits on a slow peer
			slots[from][to] = make(chan ngram.FrequencyMap, 1)
		}
	}
	return &exchange{slots: slots}
}

// publish hands worker from's sub-maps to their owners, one per peer, self
// included. It never blocks. Each worker must publish exactly once per run,
// even when all of its input files failed, or the peers' collect calls
// would wait forever.
func (e *exchange) publish(from int, parts []ngram.FrequencyMap) {
	for to, part := range parts {
		e.slots[from][to] <- part
	}
}

// collect blocks until every worker has published a sub-map addressed to
// to, then returns the inbound sub-maps indexed by sender. Together with
// publish this is the full barrier between counting and reducing: nobody
// reduces until every pairwise handoff exists.
func (e *exchange) collect(to int) []ngram.FrequencyMap {
	parts := make([]ngram.FrequencyMap, len(e.slots))
	for from := range e.slots {
		parts[from] = <-e.slots[from][to]
	}
	return parts
}

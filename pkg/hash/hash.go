// Package hash assigns n-gram keys to their owning worker.
package hash

import "hash/fnv"

// Owner returns the id of the worker that is authoritative for gram during
// the reduce phase. It is a pure function of the key, so every worker
// computes the same assignment independently. Two different grams may share
// an owner; skew is a performance concern, never a correctness one.
func Owner(gram string, workers int) int {
	h := fnv.New32a()
	h.Write([]byte(gram))

	// mask with 0x7fffffff to ensure non-negative number before mod
	return int(h.Sum32()&0x7fffffff) % workers
}

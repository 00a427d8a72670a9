// Package ngram holds the frequency-map type shared by the counting
// pipeline, along with window extraction, merging, and top-N selection.
package ngram

import (
	"sort"
	"strings"
)

// FrequencyMap maps an n-gram key to its occurrence count. Keys are the
// n-gram's tokens joined by a single space.
type FrequencyMap map[string]uint64

// AddSentence slides a window of n consecutive tokens across one sentence,
// counting each window once. Windows never cross the sentence, so a
// sentence with fewer than n tokens contributes nothing.
func (m FrequencyMap) AddSentence(tokens []string, n int) {
	for i := 0; i+n <= len(tokens); i++ {
		m[strings.Join(tokens[i:i+n], " ")]++
	}
}

// Merge folds other into m, summing counts per key.
func (m FrequencyMap) Merge(other FrequencyMap) {
	for gram, count := range other {
		m[gram] += count
	}
}

// Total returns the sum of all counts in m.
func (m FrequencyMap) Total() uint64 {
	var total uint64
	for _, count := range m {
		total += count
	}
	return total
}

// Entry pairs an n-gram with its count for sorting and display.
type Entry struct {
	Gram  string
	Count uint64
}

// Top returns at most limit entries of m, sorted by count descending with
// ties broken by key ascending.
func (m FrequencyMap) Top(limit int) []Entry {
	entries := make([]Entry, 0, len(m))
	for gram, count := range m {
		entries = append(entries, Entry{Gram: gram, Count: count})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Gram < entries[j].Gram
	})

	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}

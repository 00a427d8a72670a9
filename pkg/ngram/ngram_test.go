package ngram

import (
	"reflect"
	"testing"
)

func TestAddSentence_Unigrams(t *testing.T) {
	m := make(FrequencyMap)
	m.AddSentence([]string{"the", "cat", "sat"}, 1)
	m.AddSentence([]string{"the", "dog", "sat"}, 1)

	want := FrequencyMap{"the": 2, "cat": 1, "sat": 2, "dog": 1}
	if !reflect.DeepEqual(m, want) {
		t.Errorf("counts = %v, want %v", m, want)
	}
}

func TestAddSentence_SlidingWindow(t *testing.T) {
	m := make(FrequencyMap)
	m.AddSentence([]string{"a", "b", "c"}, 2)

	want := FrequencyMap{"a b": 1, "b c": 1}
	if !reflect.DeepEqual(m, want) {
		t.Errorf("counts = %v, want %v", m, want)
	}
}

func TestAddSentence_WindowLargerThanSentence(t *testing.T) {
	m := make(FrequencyMap)
	m.AddSentence([]string{"a", "b", "c"}, 4)

	if len(m) != 0 {
		t.Errorf("counts = %v, want empty map", m)
	}
}

func TestAddSentence_WindowEqualsSentence(t *testing.T) {
	m := make(FrequencyMap)
	m.AddSentence([]string{"a", "b", "c"}, 3)

	want := FrequencyMap{"a b c": 1}
	if !reflect.DeepEqual(m, want) {
		t.Errorf("counts = %v, want %v", m, want)
	}
}

func TestMerge_SumsCounts(t *testing.T) {
	m := FrequencyMap{"the": 2, "cat": 1}
	m.Merge(FrequencyMap{"the": 3, "dog": 1})

	want := FrequencyMap{"the": 5, "cat": 1, "dog": 1}
	if !reflect.DeepEqual(m, want) {
		t.Errorf("merged = %v, want %v", m, want)
	}
}

func TestMerge_EmptyOther(t *testing.T) {
	m := FrequencyMap{"the": 2}
	m.Merge(FrequencyMap{})

	want := FrequencyMap{"the": 2}
	if !reflect.DeepEqual(m, want) {
		t.Errorf("merged = %v, want %v", m, want)
	}
}

func TestTotal(t *testing.T) {
	m := FrequencyMap{"the": 2, "cat": 1, "sat": 2}
	if got := m.Total(); got != 5 {
		t.Errorf("Total() = %d, want 5", got)
	}

	if got := (FrequencyMap{}).Total(); got != 0 {
		t.Errorf("Total() of empty map = %d, want 0", got)
	}
}

func TestTop_SortsCountDescThenKeyAsc(t *testing.T) {
	m := FrequencyMap{"the": 2, "sat": 2, "cat": 1, "dog": 1}

	got := m.Top(10)
	want := []Entry{
		{Gram: "sat", Count: 2},
		{Gram: "the", Count: 2},
		{Gram: "cat", Count: 1},
		{Gram: "dog", Count: 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Top(10) = %v, want %v", got, want)
	}
}

func TestTop_Truncates(t *testing.T) {
	m := FrequencyMap{"a": 5, "b": 4, "c": 3, "d": 2, "e": 1}

	got := m.Top(2)
	want := []Entry{{Gram: "a", Count: 5}, {Gram: "b", Count: 4}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Top(2) = %v, want %v", got, want)
	}
}

func TestTop_EmptyMap(t *testing.T) {
	if got := (FrequencyMap{}).Top(10); len(got) != 0 {
		t.Errorf("Top(10) of empty map = %v, want no entries", got)
	}
}

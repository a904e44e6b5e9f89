package repository

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKnowledgeStoreGetCreatesEmptyRecord(t *testing.T) {
	store := NewKnowledgeStore()

	known := store.Get("alice")
	assert.Empty(t, known)

	// The record now exists and stays empty until replaced
	assert.Empty(t, store.Get("alice"))
}

func TestKnowledgeStoreReplaceDeduplicates(t *testing.T) {
	store := NewKnowledgeStore()

	stored := store.Replace("alice", []string{"A", "A", "B", "A", "C", "B"})
	assert.Equal(t, []string{"A", "B", "C"}, stored)
	assert.Equal(t, []string{"A", "B", "C"}, store.Get("alice"))
}

func TestKnowledgeStoreReplaceIsWholesale(t *testing.T) {
	store := NewKnowledgeStore()

	store.Replace("alice", []string{"A", "B"})
	stored := store.Replace("alice", []string{"C"})

	// No merge with the previous set
	assert.Equal(t, []string{"C"}, stored)
	assert.Equal(t, []string{"C"}, store.Get("alice"))
}

func TestKnowledgeStoreReplaceIsIdempotent(t *testing.T) {
	store := NewKnowledgeStore()

	first := store.Replace("alice", []string{"A", "B", "A"})
	second := store.Replace("alice", []string{"A", "B", "A"})
	assert.Equal(t, first, second)
}

func TestKnowledgeStoreReturnsCopies(t *testing.T) {
	store := NewKnowledgeStore()
	store.Replace("alice", []string{"A", "B"})

	got := store.Get("alice")
	got[0] = "mutated"

	assert.Equal(t, []string{"A", "B"}, store.Get("alice"))
}

func TestKnowledgeStoreConcurrentReplaceSameStudent(t *testing.T) {
	store := NewKnowledgeStore()

	const writers = 32
	payloads := make([][]string, writers)
	for i := range payloads {
		payloads[i] = []string{fmt.Sprintf("A%d", i), fmt.Sprintf("B%d", i)}
	}

	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			store.Replace("alice", payloads[i])
		}(i)
	}
	wg.Wait()

	// The final state matches exactly one submitted payload, never an
	// interleaving of two.
	final := store.Get("alice")
	require.Len(t, final, 2)
	matched := false
	for _, payload := range payloads {
		if final[0] == payload[0] && final[1] == payload[1] {
			matched = true
			break
		}
	}
	assert.True(t, matched, "final state %v does not match any submitted payload", final)
}

func TestKnowledgeStoreConcurrentDistinctStudents(t *testing.T) {
	store := NewKnowledgeStore()

	const students = 64
	var wg sync.WaitGroup
	for i := 0; i < students; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := fmt.Sprintf("student-%d", i)
			store.Replace(id, []string{fmt.Sprintf("C%d", i)})
			assert.Equal(t, []string{fmt.Sprintf("C%d", i)}, store.Get(id))
		}(i)
	}
	wg.Wait()

	for i := 0; i < students; i++ {
		id := fmt.Sprintf("student-%d", i)
		assert.Equal(t, []string{fmt.Sprintf("C%d", i)}, store.Get(id))
	}
}

func TestDedupe(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{"empty", nil, []string{}},
		{"no duplicates", []string{"A", "B"}, []string{"A", "B"}},
		{"first-seen order wins", []string{"B", "A", "B", "A"}, []string{"B", "A"}},
		{"unknown codes kept verbatim", []string{"NOT_IN_CATALOG", "A"}, []string{"NOT_IN_CATALOG", "A"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, dedupe(tt.input))
		})
	}
}

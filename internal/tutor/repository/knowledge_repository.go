package repository

import (
	"sync"
)

// KnowledgeStore holds per-student known-concept sets for the lifetime
// of the process. The map lock only guards record creation; each record
// carries its own mutex, so operations on different students never
// serialize against each other.
type KnowledgeStore struct {
	mu      sync.RWMutex
	records map[string]*studentRecord
}

type studentRecord struct {
	mu    sync.Mutex
	known []string
}

func NewKnowledgeStore() *KnowledgeStore {
	return &KnowledgeStore{
		records: make(map[string]*studentRecord),
	}
}

// record returns the student's record, creating an empty one on first
// reference.
func (s *KnowledgeStore) record(studentID string) *studentRecord {
	s.mu.RLock()
	rec, ok := s.records[studentID]
	s.mu.RUnlock()
	if ok {
		return rec
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if rec, ok = s.records[studentID]; ok {
		return rec
	}
	rec = &studentRecord{}
	s.records[studentID] = rec
	return rec
}

// Get returns a copy of the student's known concept codes. A student
// never seen before gets an empty record.
func (s *KnowledgeStore) Get(studentID string) []string {
	rec := s.record(studentID)
	rec.mu.Lock()
	defer rec.mu.Unlock()
	return append([]string{}, rec.known...)
}

// Replace deduplicates codes preserving first-seen order and installs
// the result as the student's entire known set. The previous set is
// discarded, never merged. Returns a copy of what was stored.
func (s *KnowledgeStore) Replace(studentID string, codes []string) []string {
	deduped := dedupe(codes)

	rec := s.record(studentID)
	rec.mu.Lock()
	defer rec.mu.Unlock()
	rec.known = deduped
	return append([]string{}, deduped...)
}

func dedupe(codes []string) []string {
	seen := make(map[string]bool, len(codes))
	out := make([]string, 0, len(codes))
	for _, code := range codes {
		if seen[code] {
			continue
		}
		seen[code] = true
		out = append(out, code)
	}
	return out
}

var knowledge = NewKnowledgeStore()

// SetKnowledgeStore swaps the process-wide store. Used by tests to start
// from a clean slate.
func SetKnowledgeStore(s *KnowledgeStore) {
	knowledge = s
}

// KnownConcepts reads the student's current known set, creating an
// empty record for a new student.
func KnownConcepts(studentID string) []string {
	return knowledge.Get(studentID)
}

// ReplaceKnownConcepts installs the student's new known set wholesale.
func ReplaceKnownConcepts(studentID string, codes []string) []string {
	return knowledge.Replace(studentID, codes)
}

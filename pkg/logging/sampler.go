package logging

import (
	"sync"
)

// ErrorSampler reduces log noise from a flapping upstream by sampling
// repeated errors: the first occurrence is logged, then every Nth.
type ErrorSampler struct {
	mu       sync.Mutex
	counts   map[string]int
	interval int
}

// NewErrorSampler creates a sampler that passes the 1st occurrence and
// every interval-th occurrence of each error key.
func NewErrorSampler(interval int) *ErrorSampler {
	if interval < 1 {
		interval = 10
	}
	return &ErrorSampler{
		counts:   make(map[string]int),
		interval: interval,
	}
}

// ShouldLog records one occurrence of errorKey and reports whether this
// occurrence should be logged.
func (s *ErrorSampler) ShouldLog(errorKey string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.counts[errorKey]++
	count := s.counts[errorKey]

	return count == 1 || count%s.interval == 0
}

// Count returns the number of occurrences recorded for errorKey.
func (s *ErrorSampler) Count(errorKey string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.counts[errorKey]
}

// Reset clears the count for errorKey, so its next occurrence logs again.
func (s *ErrorSampler) Reset(errorKey string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.counts, errorKey)
}

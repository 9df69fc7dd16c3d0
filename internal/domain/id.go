package domain

import (
	"sync"
	"time"
)

// IDSource hands out record identifiers derived from the wall clock in
// milliseconds. Identifiers are strictly increasing within one process even
// when several are requested in the same millisecond.
type IDSource struct {
	mu   sync.Mutex
	last int64
	now  func() time.Time
}

// NewIDSource creates an IDSource reading time.Now.
func NewIDSource() *IDSource {
	return &IDSource{now: time.Now}
}

// Next returns the next identifier.
func (s *IDSource) Next() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.now().UnixMilli()
	if id <= s.last {
		id = s.last + 1
	}
	s.last = id
	return id
}

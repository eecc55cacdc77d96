package resolve

import "sync"

// PathSet is a deduplicating set of canonical absolute paths. The lock is
// the bookkeeping primitive that makes "check membership and insert" one
// atomic step for the sourced-set sharing across sibling sources; the
// parse itself is single threaded.
type PathSet struct {
	mu      sync.RWMutex
	members map[string]struct{}
}

// NewPathSet returns an empty set.
func NewPathSet() *PathSet {
	return &PathSet{members: make(map[string]struct{})}
}

// Visit inserts path and reports whether it was absent: true means the
// caller is first and may proceed, false means the path was already
// visited.
func (s *PathSet) Visit(path string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.members[path]; ok {
		return false
	}
	s.members[path] = struct{}{}
	return true
}

// Contains reports membership without inserting.
func (s *PathSet) Contains(path string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.members[path]
	return ok
}

// Add records a path unconditionally.
func (s *PathSet) Add(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.members[path] = struct{}{}
}

// Len returns the number of recorded paths.
func (s *PathSet) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.members)
}

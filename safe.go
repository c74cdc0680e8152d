package pool

import "sync"

// SafePool is a mutex-protected wrapper around Pool for callers that cannot
// guarantee a single owner. Pool itself performs no locking.
type SafePool[T any] struct {
	mu sync.Mutex
	p  *Pool[T]
}

// NewSafe creates a new thread-safe pool. Arguments are as for New.
func NewSafe[T any](initialCapacity int, opts ...Option) *SafePool[T] {
	return &SafePool[T]{p: New[T](initialCapacity, opts...)}
}

// Acquire thread-safely vends a zero-valued slot.
func (s *SafePool[T]) Acquire() *T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.p.Acquire()
}

// AcquireRef thread-safely vends a zero-valued slot and its Ref.
func (s *SafePool[T]) AcquireRef() (Ref, *T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.p.AcquireRef()
}

// Get thread-safely resolves a Ref.
func (s *SafePool[T]) Get(r Ref) *T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.p.Get(r)
}

// Clear thread-safely releases every block.
func (s *SafePool[T]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.p.Clear()
}

// Close thread-safely clears the pool.
func (s *SafePool[T]) Close() error {
	s.Clear()
	return nil
}

// Enumerate thread-safely walks every reserved slot. fn runs with the lock
// held and must not call back into s.
func (s *SafePool[T]) Enumerate(fn func(*T)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.p.Enumerate(fn)
}

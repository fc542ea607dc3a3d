package arena

import (
	"io"
	"runtime"
	"sync"
)

// SafeArena is a mutex-protected wrapper around Arena for concurrent
// access. All operations are serialized behind one lock; callers that
// need more than a critical section should partition one Arena per
// goroutine instead.
type SafeArena struct {
	mu sync.Mutex
	a  *Arena
}

// NewSafeArena creates a thread-safe arena. Parameters are the same as
// for New.
func NewSafeArena(capacity int, opts ...Option) *SafeArena {
	return &SafeArena{a: New(capacity, opts...)}
}

// AllocBytes thread-safely allocates n bytes. Returns nil if n <= 0.
func (s *SafeArena) AllocBytes(n int) []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.AllocBytes(n)
}

// Realloc thread-safely grows a previously allocated region.
func (s *SafeArena) Realloc(old []byte, newSize int) []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Realloc(old, newSize)
}

// EnsureCapacity thread-safely pre-reserves room for n bytes.
func (s *SafeArena) EnsureCapacity(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.EnsureCapacity(n)
}

// Reset thread-safely rewinds all bump offsets for arena reuse.
func (s *SafeArena) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.Reset()
}

// Release thread-safely drops all blocks and makes the arena unusable.
func (s *SafeArena) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.Release()
}

// SizeInUse thread-safely returns the total bytes handed out.
func (s *SafeArena) SizeInUse() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.SizeInUse()
}

// Capacity thread-safely returns the total reserved bytes.
func (s *SafeArena) Capacity() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Capacity()
}

// NumBlocks thread-safely returns the number of blocks in the chain.
func (s *SafeArena) NumBlocks() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.NumBlocks()
}

// Utilization thread-safely returns the used-to-capacity ratio.
func (s *SafeArena) Utilization() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Utilization()
}

// Metrics thread-safely returns a snapshot of arena statistics.
func (s *SafeArena) Metrics() Metrics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Metrics()
}

// Dump thread-safely writes the chain description to w.
func (s *SafeArena) Dump(w io.Writer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.Dump(w)
}

// SafeAlloc thread-safely returns a pointer to a zeroed T stored inside
// the arena.
func SafeAlloc[T any](s *SafeArena) *T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Alloc[T](s.a)
}

// SafeAllocUninitialized thread-safely returns a *T without zeroing the
// memory.
func SafeAllocUninitialized[T any](s *SafeArena) *T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return AllocUninitialized[T](s.a)
}

// SafeAllocSlice thread-safely allocates a slice of n elements of type T.
func SafeAllocSlice[T any](s *SafeArena, n int) []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return AllocSlice[T](s.a, n)
}

// SafeAllocSliceZeroed thread-safely allocates a slice of n elements
// with zeroed memory.
func SafeAllocSliceZeroed[T any](s *SafeArena, n int) []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return AllocSliceZeroed[T](s.a, n)
}

// SafePtrAndKeepAlive returns t after pinning the wrapped arena.
func SafePtrAndKeepAlive[T any](s *SafeArena, t *T) *T {
	s.mu.Lock()
	defer s.mu.Unlock()
	runtime.KeepAlive(s.a)
	return t
}

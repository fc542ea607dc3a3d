// Package arena implements a block-chained bump allocator (memory arena).
// Typical usage: create one arena per phase (a request, a frame, a parse),
// allocate many temporary buffers from it, then Reset() at the end of the
// phase for cheap bulk cleanup.
package arena

import "unsafe"

// DefaultInitialCapacity is the head block capacity used when New is
// given a capacity <= 0 (64 KiB).
const DefaultInitialCapacity = 1 << 16

// DefaultAlignment is the byte boundary every returned region starts on
// unless overridden with WithAlignment.
const DefaultAlignment = 8

// block is one contiguous reserved region. buf starts on an aligned
// address and len(buf) is the block's capacity; used is the bump offset,
// always a multiple of the arena's alignment.
type block struct {
	buf  []byte
	used int
}

// Arena is a block-chained bump allocator. Not goroutine-safe; exactly
// one owner may allocate from it at a time. Use SafeArena for concurrent
// access.
type Arena struct {
	blocks  []block
	headCap int // capacity of block 0, the growth-policy reference
	align   int
	reserve ReserveFunc
}

// New creates an Arena and eagerly reserves its head block.
// If capacity <= 0, DefaultInitialCapacity is used.
//
// Reservation failure is fatal: the default ReserveFunc is make, which
// does not return on memory exhaustion. There is no error-returning
// variant of any allocation path.
func New(capacity int, opts ...Option) *Arena {
	if capacity <= 0 {
		capacity = DefaultInitialCapacity
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.align <= 0 || o.align&(o.align-1) != 0 {
		panic("arena: alignment must be a power of two")
	}
	a := &Arena{
		headCap: capacity,
		align:   o.align,
		reserve: o.reserve,
	}
	a.blocks = append(a.blocks, a.newBlock(capacity))
	return a
}

// AllocBytes returns an n-byte slice pointing into the arena's backing
// storage. The start address is aligned to the arena's alignment and the
// region is untouched by the arena until the next Reset or Release.
// Returns nil if n <= 0. Panics if the arena has been released.
//
// The caller must keep the arena reachable while the returned slice is
// in use.
func (a *Arena) AllocBytes(n int) []byte {
	a.panicIfReleased()
	if n <= 0 {
		return nil
	}

	// The size is rounded up before any capacity comparison so that
	// every reserved span, and therefore every bump offset, stays a
	// multiple of the alignment.
	size := alignSize(n, a.align)

	// First-fit walk from the head: after a Reset, earlier blocks are
	// reusable and must be refilled before the chain grows. Chain
	// length stays small under the doubling policy.
	for i := range a.blocks {
		b := &a.blocks[i]
		if b.used+size <= len(b.buf) {
			return b.take(size, n)
		}
	}

	return a.grow(size).take(size, n)
}

// Realloc grows a region previously returned by AllocBytes. The old
// region's size is len(old).
//
//   - newSize <= 0 returns nil.
//   - old == nil behaves exactly like AllocBytes(newSize).
//   - newSize <= len(old) returns old unchanged; the arena never
//     reclaims the unused tail of a region.
//   - Otherwise a fresh region is allocated, len(old) bytes are copied
//     into it, and the new region is returned. The old region stays
//     reserved but orphaned until the next Reset; this waste is the
//     standing trade-off of a region allocator.
func (a *Arena) Realloc(old []byte, newSize int) []byte {
	a.panicIfReleased()
	if newSize <= 0 {
		return nil
	}
	if old == nil {
		return a.AllocBytes(newSize)
	}
	if newSize <= len(old) {
		return old
	}
	fresh := a.AllocBytes(newSize)
	copy(fresh, old)
	return fresh
}

// EnsureCapacity pre-reserves so that a following AllocBytes(n) will not
// append a new block. Panics if the arena has been released.
func (a *Arena) EnsureCapacity(n int) {
	a.panicIfReleased()
	if n <= 0 {
		return
	}
	size := alignSize(n, a.align)
	for i := range a.blocks {
		if b := &a.blocks[i]; b.used+size <= len(b.buf) {
			return
		}
	}
	a.grow(size)
}

// Reset rewinds every block's bump offset to zero, in chain order,
// keeping all reserved storage for reuse. Regions handed out before the
// Reset must be treated as invalidated by the caller; the arena does not
// detect continued use of stale regions.
func (a *Arena) Reset() {
	a.panicIfReleased()
	for i := range a.blocks {
		a.blocks[i].used = 0
	}
}

// Release drops every block and its backing storage, leaving the arena
// in a terminal empty state. Any subsequent AllocBytes, Realloc, Reset
// or EnsureCapacity panics; the accounting queries remain callable and
// report zero.
func (a *Arena) Release() {
	a.blocks = nil
}

// take reserves size bytes at the block's bump offset and returns the
// first n of them. size is the aligned span, n the caller's request.
func (b *block) take(size, n int) []byte {
	start := b.used
	b.used += size
	// Avoids the bounds check a plain re-slice would carry.
	return unsafe.Slice((*byte)(unsafe.Pointer(&b.buf[start])), n)
}

// grow appends one block big enough for an aligned request of size
// bytes and returns it. The new capacity doubles the head block's
// capacity, or doubles the request when the request is at least as
// large. The reference is the head, not the tail, so block capacities
// track the arena's original sizing rather than compounding per block.
func (a *Arena) grow(size int) *block {
	newCap := size * 2
	if a.headCap > size {
		newCap = a.headCap * 2
	}
	a.blocks = append(a.blocks, a.newBlock(newCap))
	return &a.blocks[len(a.blocks)-1]
}

// newBlock reserves capacity bytes starting on an aligned address. The
// reservation is padded by align-1 bytes because a ReserveFunc only
// guarantees the runtime's natural alignment of the buffer base.
func (a *Arena) newBlock(capacity int) block {
	raw := a.reserve(capacity + a.align - 1)
	if len(raw) < capacity+a.align-1 {
		panic("arena: ReserveFunc returned a short buffer")
	}
	shift := 0
	if rem := int(uintptr(unsafe.Pointer(unsafe.SliceData(raw))) & uintptr(a.align-1)); rem != 0 {
		shift = a.align - rem
	}
	return block{buf: raw[shift : shift+capacity]}
}

func (a *Arena) panicIfReleased() {
	if a.blocks == nil {
		panic("arena: use after Release")
	}
}

// alignSize rounds n up to the next multiple of align (a power of two).
func alignSize(n, align int) int {
	return (n + align - 1) &^ (align - 1)
}

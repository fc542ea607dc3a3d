// Package arena implements a block-chained bump allocator (memory arena)
// for Go.
//
// # Overview
//
// An arena reserves memory in large blocks and hands out aligned,
// sequentially packed regions from them. Nothing is freed individually;
// the whole arena is rewound (Reset) or torn down (Release) at once.
// This fits workloads with phase-based lifetimes:
//
//   - Request-scoped buffers in servers
//   - Per-frame game or simulation state
//   - Parser scratch space with batch cleanup
//   - Reducing garbage collection pressure on hot paths
//
// # Basic Usage
//
//	a := arena.New(0) // default initial capacity
//	defer a.Release() // tear down when done
//
//	// Allocate raw bytes
//	buf := a.AllocBytes(1024)
//
//	// Grow an existing region (copy-on-grow, never in place shrink)
//	buf = a.Realloc(buf, 4096)
//
//	// Allocate typed values
//	ptr := arena.Alloc[MyStruct](a)
//	slice := arena.AllocSlice[int](a, 100)
//
//	// Rewind for reuse
//	a.Reset()
//
// # Block Chain and Growth
//
// The arena starts with one block of the requested capacity. When no
// block has room for a request, one new block is appended: its capacity
// is double the head block's capacity, or double the (aligned) request
// when the request is at least as large. Allocation walks the chain
// first-fit from the head, so blocks emptied by Reset are refilled
// before the chain grows again.
//
// # Alignment
//
// Every returned region starts on the arena's alignment boundary
// (default 8 bytes, configurable with WithAlignment). Request sizes are
// rounded up to the boundary before any capacity accounting, and each
// block's storage itself starts on the boundary, so the guarantee holds
// for any configured power of two.
//
// # Lifecycle and Safety Contract
//
//   - Regions are valid until the next Reset or Release.
//   - Reset keeps all reserved storage; regions handed out earlier are
//     invalidated by contract. The arena cannot detect stale use.
//   - Release is terminal: further allocation, Realloc, Reset or
//     EnsureCapacity panics with "arena: use after Release". The
//     accounting queries remain callable and report zero. A released
//     arena is never silently re-initialized.
//   - Memory exhaustion is fatal: the reservation path panics or aborts,
//     it never returns an error value.
//
// # Thread Safety
//
// Arena is single-owner and performs no internal synchronization. For
// concurrent use, wrap it in SafeArena (one coarse mutex) or partition
// one Arena per goroutine:
//
//	s := arena.NewSafeArena(0)
//	defer s.Release()
//	buf := s.AllocBytes(1024)
//	ptr := arena.SafeAlloc[MyStruct](s)
//
// # Monitoring
//
// SizeInUse, Capacity, NumBlocks and Utilization observe the chain
// without mutating it; Metrics snapshots them all, and Dump renders the
// per-block layout for debugging:
//
//	m := a.Metrics()
//	fmt.Printf("utilization: %.2f%%\n", m.Utilization*100)
//	a.Dump(os.Stderr)
package arena

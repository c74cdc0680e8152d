// Package pool implements a non-freeing pooled memory manager: a typed
// arena that vends fixed-size slots cheaply and releases them only in bulk.
//
// # Overview
//
// A Pool[T] hands out zero-valued *T slots from its most recent block with
// a bump cursor. When the block is exhausted a new one is allocated with
// twice the previous capacity. Slots are never freed individually; Clear
// releases every block at once and returns the pool to its initial state.
// This suits workloads that build a large structure, use it, and throw the
// whole thing away, such as repeatedly building and checking binary trees.
//
// # Basic Usage
//
//	p := pool.New[Node](32) // first block holds 64 nodes
//	defer p.Close()         // release on scope exit
//
//	n := p.Acquire()        // zero-valued *Node
//	ref, m := p.AcquireRef() // slot plus a Ref usable as an index link
//	n.Left = ref
//	_ = p.Get(ref) == m     // true
//
//	p.Clear()               // every vended slot is now invalid
//
// # Growth
//
// Capacity doubles before every new block, starting from the configured
// initial capacity I, so blocks hold 2I, 4I, 8I, ... items. After Clear the
// progression starts again at 2I.
//
// # Backing
//
// Heap blocks (the default) are ordinary Go slices. Mmap blocks are
// anonymous mappings outside the Go heap; they are unmapped by Clear or,
// for a pool dropped without Clear, by a runtime cleanup. Mmap requires an
// item type with no Go pointers; use Ref for links between items.
//
// # Enumeration
//
// Enumerate visits every reserved slot, including the not-yet-vended tail
// of the most recent block, which reads as zero values.
//
// # Thread Safety
//
// Pool is not thread-safe. Use one pool per goroutine, or SafePool when a
// pool must be shared.
//
// # Failure
//
// Block size overflow and backing allocation failure are fatal: Acquire
// panics with an error wrapping ErrSizeOverflow or ErrAllocationFailure.
// Using a slot or Ref after Clear is undefined and not detected.
package pool

package pool

import (
	"fmt"
	"reflect"
	"runtime"
	"unsafe"
)

// DefaultInitialCapacity is the initial capacity, in items, used when New is
// given a non-positive capacity.
const DefaultInitialCapacity = 32

// block is one registry entry: a contiguous run of slots and the layout it
// was allocated with.
type block[T any] struct {
	items  []T
	layout Layout
}

// Pool is a non-freeing pooled memory manager for items of type T.
// Slots are vended one at a time from the most recent block and released
// only in bulk by Clear. Not goroutine-safe; use SafePool for shared access.
type Pool[T any] struct {
	blocks  []block[T]
	initCap int
	curCap  int

	// cur is the active block's items; cursor is the next slot to vend and
	// end is one past its last slot. cursor == end means no room left.
	cur    []T
	cursor int
	end    int

	vended  int
	backing Backing
	maps    *mapTable // non-nil for Mmap backing
}

// New creates a Pool whose first block holds 2*initialCapacity items.
// If initialCapacity <= 0, DefaultInitialCapacity is used.
//
// New panics if T is zero-sized, or if Mmap backing is requested for a T
// holding Go pointers or on a platform without anonymous mappings.
func New[T any](initialCapacity int, opts ...Option) *Pool[T] {
	if initialCapacity <= 0 {
		initialCapacity = DefaultInitialCapacity
	}
	var zero T
	if unsafe.Sizeof(zero) == 0 {
		panic(fmt.Errorf("%w: %s", ErrZeroSizedItem, reflect.TypeFor[T]()))
	}

	o := options{backing: Heap}
	for _, opt := range opts {
		opt(&o)
	}

	p := &Pool[T]{
		initCap: initialCapacity,
		curCap:  initialCapacity,
		backing: o.backing,
	}
	if o.backing == Mmap {
		if !mmapSupported {
			panic(ErrMmapUnsupported)
		}
		if t := reflect.TypeFor[T](); hasPointers(t) {
			panic(fmt.Errorf("%w: %s", ErrPointerItem, t))
		}
		p.maps = &mapTable{}
		// Unmaps the blocks of a pool dropped without Clear or Close.
		runtime.AddCleanup(p, func(m *mapTable) { _ = m.unmapAll() }, p.maps)
	}
	return p
}

// Acquire returns a pointer to a zero-valued T owned by the pool.
// The pointer is valid until the next Clear. Acquire panics with
// ErrSizeOverflow or ErrAllocationFailure if a new block cannot be obtained.
func (p *Pool[T]) Acquire() *T {
	_, item := p.vend()
	return item
}

// AcquireRef is like Acquire but also returns the slot's Ref.
func (p *Pool[T]) AcquireRef() (Ref, *T) {
	slot, item := p.vend()
	return makeRef(len(p.blocks)-1, slot), item
}

// vend bumps the cursor, growing first if the active block is exhausted.
func (p *Pool[T]) vend() (slot int, item *T) {
	if p.cursor == p.end {
		p.grow()
	}
	slot = p.cursor
	item = &p.cur[slot]
	p.cursor++
	p.vended++
	return slot, item
}

// Get resolves a Ref vended in the current generation. The zero Ref
// resolves to nil. Refs from an earlier generation must not be used.
func (p *Pool[T]) Get(r Ref) *T {
	if r == 0 {
		return nil
	}
	b, s := r.split()
	return &p.blocks[b].items[s]
}

// Clear releases every block and returns the pool to its just-created
// state. Every pointer and Ref previously vended becomes invalid.
// Clear on an empty pool is a no-op.
func (p *Pool[T]) Clear() {
	if len(p.blocks) == 0 {
		return
	}
	var err error
	if p.maps != nil {
		err = p.maps.unmapAll()
	}
	clear(p.blocks)
	p.blocks = p.blocks[:0]
	p.curCap = p.initCap
	p.cur = nil
	p.cursor, p.end = 0, 0
	p.vended = 0
	if err != nil {
		panic(fmt.Errorf("%w: %w", ErrReleaseFailure, err))
	}
}

// Close clears the pool. It lets a pool be released with defer.
func (p *Pool[T]) Close() error {
	p.Clear()
	return nil
}

// Enumerate calls fn for every slot of every block, in block order and
// ascending address order within a block.
//
// Every block is walked across its whole capacity, the most recent one
// included, so slots not yet vended by Acquire are visited as zero values.
func (p *Pool[T]) Enumerate(fn func(*T)) {
	last := len(p.blocks) - 1
	for i := range p.blocks {
		items := p.blocks[i].items
		if i == last {
			items = items[:p.end]
		}
		for j := range items {
			fn(&items[j])
		}
	}
}

// hasPointers reports whether values of t hold anything the garbage
// collector must trace.
func hasPointers(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return false
	case reflect.Array:
		return t.Len() > 0 && hasPointers(t.Elem())
	case reflect.Struct:
		for i := range t.NumField() {
			if hasPointers(t.Field(i).Type) {
				return true
			}
		}
		return false
	default:
		return true
	}
}

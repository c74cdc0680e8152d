package pool

import (
	"fmt"
	"math"
	"math/bits"
	"runtime"
	"unsafe"
)

// Layout describes how a block was allocated: Count items of Size bytes
// each, aligned to Align.
type Layout struct {
	Count int
	Size  uintptr
	Align uintptr
}

// layoutOf returns the layout of a block holding n items of type T.
func layoutOf[T any](n int) Layout {
	var zero T
	return Layout{Count: n, Size: unsafe.Sizeof(zero), Align: unsafe.Alignof(zero)}
}

// Bytes returns the block's size in bytes. ok is false if the size does
// not fit in an int.
func (l Layout) Bytes() (n int, ok bool) {
	if l.Count < 0 {
		return 0, false
	}
	hi, lo := bits.Mul(uint(l.Count), uint(l.Size))
	if hi != 0 || lo > math.MaxInt {
		return 0, false
	}
	return int(lo), true
}

// grow doubles the capacity and starts a new block of that many items.
// The doubled capacity is committed only once the block is obtained.
func (p *Pool[T]) grow() {
	if p.curCap > math.MaxInt/2 {
		panic(fmt.Errorf("%w: cannot double capacity %d", ErrSizeOverflow, p.curCap))
	}
	next := p.curCap + p.curCap

	l := layoutOf[T](next)
	size, ok := l.Bytes()
	if !ok {
		panic(fmt.Errorf("%w: %d items of %d bytes", ErrSizeOverflow, l.Count, l.Size))
	}

	items, err := p.allocate(l, size)
	if err != nil {
		panic(fmt.Errorf("%w: %d bytes: %w", ErrAllocationFailure, size, err))
	}
	p.curCap = next
	p.blocks = append(p.blocks, block[T]{items: items, layout: l})
	p.cur = items
	p.cursor, p.end = 0, len(items)
}

// allocate obtains zeroed memory for one block from the pool's backing.
func (p *Pool[T]) allocate(l Layout, size int) ([]T, error) {
	switch p.backing {
	case Mmap:
		mem, err := mapBlock(size)
		if err != nil {
			return nil, err
		}
		p.maps.regions = append(p.maps.regions, mem)
		return unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(mem))), l.Count), nil
	default:
		return makeBlock[T](l.Count)
	}
}

// makeBlock allocates a heap block, turning the runtime's refusal of an
// oversized slice into an error.
func makeBlock[T any](n int) (items []T, err error) {
	defer func() {
		if r := recover(); r != nil {
			re, ok := r.(runtime.Error)
			if !ok {
				panic(r)
			}
			items, err = nil, re
		}
	}()
	return make([]T, n), nil
}

package pool

import "errors"

var (
	// ErrSizeOverflow indicates that the next block's capacity or byte size
	// does not fit in the platform's address arithmetic.
	ErrSizeOverflow = errors.New("pool: block size overflows address space")

	// ErrAllocationFailure indicates that the backing allocator could not
	// satisfy a block request.
	ErrAllocationFailure = errors.New("pool: block allocation failed")

	// ErrReleaseFailure indicates that a block could not be returned to the
	// backing allocator.
	ErrReleaseFailure = errors.New("pool: block release failed")

	// ErrZeroSizedItem indicates a pool was created for a zero-sized item type.
	ErrZeroSizedItem = errors.New("pool: zero-sized item type")

	// ErrPointerItem indicates an item type holding Go pointers was paired
	// with a backing the garbage collector does not scan.
	ErrPointerItem = errors.New("pool: item type contains pointers")

	// ErrMmapUnsupported indicates Mmap backing was requested on a platform
	// without anonymous mappings.
	ErrMmapUnsupported = errors.New("pool: mmap backing not supported on this platform")
)

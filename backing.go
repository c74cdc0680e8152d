package pool

import (
	"errors"
	"fmt"
)

// Backing selects where a pool's blocks come from.
type Backing uint8

const (
	// Heap blocks are typed Go slices, zeroed by the runtime and reclaimed
	// by the garbage collector once a generation is cleared.
	Heap Backing = iota

	// Mmap blocks are anonymous private mappings, zero-filled by the kernel
	// and unmapped on Clear. The item type must not contain Go pointers.
	Mmap
)

func (b Backing) String() string {
	switch b {
	case Heap:
		return "heap"
	case Mmap:
		return "mmap"
	default:
		return fmt.Sprintf("backing(%d)", uint8(b))
	}
}

// ParseBacking parses "heap" or "mmap".
func ParseBacking(s string) (Backing, error) {
	switch s {
	case "heap", "":
		return Heap, nil
	case "mmap":
		return Mmap, nil
	default:
		return Heap, fmt.Errorf("pool: unknown backing %q", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (b Backing) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (b *Backing) UnmarshalText(text []byte) error {
	v, err := ParseBacking(string(text))
	if err != nil {
		return err
	}
	*b = v
	return nil
}

// Option configures a Pool.
type Option func(*options)

type options struct {
	backing Backing
}

// WithBacking selects the block backing. The default is Heap.
func WithBacking(b Backing) Option {
	return func(o *options) { o.backing = b }
}

// mapTable tracks the mapped regions of an Mmap pool. It is kept apart
// from the Pool so a cleanup can unmap the regions of an abandoned pool.
type mapTable struct {
	regions [][]byte
}

// unmapAll unmaps every region and forgets them, returning the joined
// errors of any failed unmaps.
func (m *mapTable) unmapAll() error {
	var errs []error
	for i, r := range m.regions {
		if err := unmapBlock(r); err != nil {
			errs = append(errs, err)
		}
		m.regions[i] = nil
	}
	m.regions = m.regions[:0]
	return errors.Join(errs...)
}

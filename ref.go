package pool

import "fmt"

const refSlotBits = 48

// Ref identifies a slot within one generation of a Pool. The zero Ref is
// the nil reference. Refs let pointer-free item types link to each other.
type Ref uint64

func makeRef(blk, slot int) Ref {
	return Ref(uint64(blk)<<refSlotBits|uint64(slot)) + 1
}

func (r Ref) split() (blk, slot int) {
	v := uint64(r - 1)
	return int(v >> refSlotBits), int(v & (1<<refSlotBits - 1))
}

// IsNil reports whether r is the zero Ref.
func (r Ref) IsNil() bool { return r == 0 }

func (r Ref) String() string {
	if r == 0 {
		return "ref(nil)"
	}
	b, s := r.split()
	return fmt.Sprintf("ref(%d:%d)", b, s)
}

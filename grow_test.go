package pool

import (
	"math"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayoutOf(t *testing.T) {
	l := layoutOf[item](16)
	assert.Equal(t, 16, l.Count)
	assert.Equal(t, unsafe.Sizeof(item{}), l.Size)
	assert.Equal(t, unsafe.Alignof(item{}), l.Align)

	n, ok := l.Bytes()
	require.True(t, ok)
	assert.Equal(t, 16*int(unsafe.Sizeof(item{})), n)
}

func TestLayoutBytesOverflow(t *testing.T) {
	tests := []struct {
		name   string
		layout Layout
		ok     bool
	}{
		{"small", Layout{Count: 8, Size: 16, Align: 8}, true},
		{"max int of bytes", Layout{Count: math.MaxInt, Size: 1, Align: 1}, true},
		{"product exceeds int", Layout{Count: math.MaxInt/2 + 1, Size: 2, Align: 2}, false},
		{"product exceeds uint", Layout{Count: math.MaxInt, Size: 1 << 8, Align: 8}, false},
		{"negative count", Layout{Count: -1, Size: 8, Align: 8}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := tt.layout.Bytes()
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func TestGrowCapacityOverflowPanics(t *testing.T) {
	p := New[int64](math.MaxInt/2 + 1)
	requirePanicsIs(t, ErrSizeOverflow, func() { p.Acquire() })
	assert.Zero(t, p.NumBlocks(), "no block is allocated on overflow")
}

func TestGrowByteSizeOverflowPanics(t *testing.T) {
	p := New[[64]byte](math.MaxInt / 4)
	requirePanicsIs(t, ErrSizeOverflow, func() { p.Acquire() })
	assert.Zero(t, p.NumBlocks(), "no block is allocated on overflow")
}

func TestGrowRecordsLayout(t *testing.T) {
	p := New[item](4)
	defer p.Close()

	for range 8 + 16 + 1 {
		p.Acquire()
	}
	require.Len(t, p.blocks, 3)
	for i, b := range p.blocks {
		want := layoutOf[item](4 << (i + 1))
		assert.Equal(t, want, b.layout, "block %d", i)
		assert.Len(t, b.items, want.Count, "block %d", i)
	}
	assert.Equal(t, 1, p.cursor)
	assert.Equal(t, 32, p.end)
}

func TestGrowAllocationFailurePanics(t *testing.T) {
	if math.MaxInt == math.MaxInt32 {
		t.Skip("oversized block fits the address space on 32-bit platforms")
	}
	backings := []Backing{Heap}
	if mmapSupported {
		backings = append(backings, Mmap)
	}

	// Doubled, 1<<58 int64 items is 1<<62 bytes: no Layout overflow, but
	// beyond anything either backing can hand out.
	const initial = math.MaxInt >> 5
	for _, b := range backings {
		t.Run(b.String(), func(t *testing.T) {
			p := New[int64](initial, WithBacking(b))
			requirePanicsIs(t, ErrAllocationFailure, func() { p.Acquire() })

			assert.Zero(t, p.NumBlocks(), "no block is registered on failure")
			assert.Equal(t, p.initCap, p.curCap, "capacity is not doubled on failure")
			assert.Zero(t, p.cursor)
			assert.Zero(t, p.end)
			assert.Zero(t, p.Allocated())
		})
	}
}

func TestMakeBlock(t *testing.T) {
	items, err := makeBlock[int64](8)
	require.NoError(t, err)
	assert.Len(t, items, 8)

	if math.MaxInt == math.MaxInt32 {
		return
	}
	big, err := makeBlock[[1 << 20]byte](math.MaxInt >> 20)
	require.Error(t, err)
	assert.Nil(t, big)
}

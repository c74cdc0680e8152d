//go:build unix

package tree

import (
	"testing"

	"github.com/pavanmanishd/pool"
)

func newMmapPool(t *testing.T) *Pool {
	t.Helper()
	return pool.New[Node](pool.DefaultInitialCapacity, pool.WithBacking(pool.Mmap))
}

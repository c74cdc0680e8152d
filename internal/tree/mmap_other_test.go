//go:build !unix

package tree

import "testing"

func newMmapPool(t *testing.T) *Pool {
	t.Skip("mmap backing not supported")
	return nil
}

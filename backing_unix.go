//go:build unix

package pool

import "golang.org/x/sys/unix"

const mmapSupported = true

// mapBlock maps n bytes of zero-filled anonymous memory.
func mapBlock(n int) ([]byte, error) {
	return unix.Mmap(-1, 0, n, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
}

func unmapBlock(b []byte) error {
	return unix.Munmap(b)
}

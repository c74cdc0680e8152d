//go:build !unix

package pool

const mmapSupported = false

func mapBlock(int) ([]byte, error) {
	return nil, ErrMmapUnsupported
}

func unmapBlock([]byte) error {
	return ErrMmapUnsupported
}

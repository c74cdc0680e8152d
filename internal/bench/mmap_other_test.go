//go:build !unix

package bench

const mmapAvailable = false

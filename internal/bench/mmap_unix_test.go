//go:build unix

package bench

const mmapAvailable = true

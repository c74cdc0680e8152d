package bench

import (
	"fmt"
	"io"
	"time"

	"github.com/pavanmanishd/pool"
)

// Tree is the result of building and checking one tree.
type Tree struct {
	Depth int
	Check int
}

// Round is the result of one batch of same-depth trees.
type Round struct {
	Depth      int
	Iterations int
	Check      int
}

// Report collects the results of a run.
type Report struct {
	Stretch   Tree
	Rounds    []Round
	LongLived Tree

	Elapsed time.Duration
	Pools   pool.PoolMetrics // peak metrics summed over every pool used
}

// WriteTo writes the report in the benchmark's console format.
func (r *Report) WriteTo(w io.Writer) (int64, error) {
	var total int64
	write := func(format string, args ...any) error {
		n, err := fmt.Fprintf(w, format, args...)
		total += int64(n)
		return err
	}
	if err := write("stretch tree of depth %d\t check: %d\n", r.Stretch.Depth, r.Stretch.Check); err != nil {
		return total, err
	}
	for _, rd := range r.Rounds {
		if err := write("%d\t trees of depth %d\t check: %d\n", rd.Iterations, rd.Depth, rd.Check); err != nil {
			return total, err
		}
	}
	if err := write("long lived tree of depth %d\t check: %d\n", r.LongLived.Depth, r.LongLived.Check); err != nil {
		return total, err
	}
	return total, nil
}

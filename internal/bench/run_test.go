package bench

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pavanmanishd/pool"
	"github.com/pavanmanishd/pool/internal/tree"
)

func testConfig(depth int) Config {
	cfg := DefaultConfig()
	cfg.MaxDepth = depth
	cfg.Workers = 2
	return cfg
}

func TestRun(t *testing.T) {
	rep, err := Run(context.Background(), testConfig(10))
	require.NoError(t, err)

	assert.Equal(t, Tree{Depth: 11, Check: tree.Size(11)}, rep.Stretch)
	assert.Equal(t, Tree{Depth: 10, Check: tree.Size(10)}, rep.LongLived)

	want := []Round{
		{Depth: 4, Iterations: 1024, Check: 1024 * tree.Size(4)},
		{Depth: 6, Iterations: 256, Check: 256 * tree.Size(6)},
		{Depth: 8, Iterations: 64, Check: 64 * tree.Size(8)},
		{Depth: 10, Iterations: 16, Check: 16 * tree.Size(10)},
	}
	assert.Equal(t, want, rep.Rounds)
	assert.Positive(t, rep.Elapsed.Nanoseconds())
	assert.Positive(t, rep.Pools.NumBlocks)
	assert.Positive(t, rep.Pools.Allocated)
}

func TestRunRaisesShallowDepth(t *testing.T) {
	rep, err := Run(context.Background(), testConfig(1))
	require.NoError(t, err)

	assert.Equal(t, 7, rep.Stretch.Depth)
	assert.Equal(t, 6, rep.LongLived.Depth)
	require.Len(t, rep.Rounds, 2)
	assert.Equal(t, Round{Depth: 4, Iterations: 64, Check: 64 * tree.Size(4)}, rep.Rounds[0])
	assert.Equal(t, Round{Depth: 6, Iterations: 16, Check: 16 * tree.Size(6)}, rep.Rounds[1])
}

func TestRunWorkerCountDoesNotChangeResults(t *testing.T) {
	serial := testConfig(8)
	serial.Workers = 1
	parallel := testConfig(8)
	parallel.Workers = 8

	a, err := Run(context.Background(), serial)
	require.NoError(t, err)
	b, err := Run(context.Background(), parallel)
	require.NoError(t, err)
	assert.Equal(t, a.Rounds, b.Rounds)
}

func TestRunMmapBacking(t *testing.T) {
	if !mmapAvailable {
		t.Skip("mmap backing not supported")
	}
	cfg := testConfig(8)
	cfg.Backing = pool.Mmap
	cfg.InitialCapacity = 1

	rep, err := Run(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, tree.Size(8), rep.LongLived.Check)
}

func TestRunCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, testConfig(10))
	require.ErrorIs(t, err, context.Canceled)
}

func TestRunInvalidConfig(t *testing.T) {
	cfg := testConfig(10)
	cfg.Workers = 0
	_, err := Run(context.Background(), cfg)
	require.ErrorIs(t, err, errBadWorkers)
}

func TestReportWriteTo(t *testing.T) {
	rep := &Report{
		Stretch:   Tree{Depth: 7, Check: 255},
		Rounds:    []Round{{Depth: 4, Iterations: 64, Check: 1984}, {Depth: 6, Iterations: 16, Check: 2032}},
		LongLived: Tree{Depth: 6, Check: 127},
	}
	var buf bytes.Buffer
	n, err := rep.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(buf.Len()), n)

	want := "stretch tree of depth 7\t check: 255\n" +
		"64\t trees of depth 4\t check: 1984\n" +
		"16\t trees of depth 6\t check: 2032\n" +
		"long lived tree of depth 6\t check: 127\n"
	assert.Equal(t, want, buf.String())
}

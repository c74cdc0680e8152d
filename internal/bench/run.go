package bench

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/pavanmanishd/pool"
	"github.com/pavanmanishd/pool/internal/tree"
)

// Run executes the benchmark described by cfg.
//
// A stretch tree one level deeper than the maximum is built and discarded,
// then a long-lived tree of maximum depth is kept while rounds of shallower
// trees are built and checked. Each round runs on its own worker with its
// own pool and writes only its own slot of Report.Rounds.
func Run(ctx context.Context, cfg Config) (*Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	start := time.Now()
	maxDepth := cfg.EffectiveMaxDepth()

	p := newPool(cfg)
	defer p.Close()

	rep := &Report{}
	rep.Stretch = Tree{Depth: maxDepth + 1, Check: tree.Check(p, tree.Make(p, maxDepth+1))}
	p.Clear()

	longLived := tree.Make(p, maxDepth)

	n := (maxDepth-cfg.MinDepth)/2 + 1
	rep.Rounds = make([]Round, n)
	peaks := make([]pool.PoolMetrics, n)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)
	for i := range rep.Rounds {
		g.Go(func() error {
			return runRound(gctx, cfg, maxDepth, i, &rep.Rounds[i], &peaks[i])
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	rep.LongLived = Tree{Depth: maxDepth, Check: tree.Check(p, longLived)}
	rep.Pools = p.Metrics()
	for _, m := range peaks {
		rep.Pools = rep.Pools.Add(m)
	}
	p.Clear()

	rep.Elapsed = time.Since(start)
	return rep, nil
}

// runRound builds and checks the trees of round i, clearing the pool after
// every tree. peak receives the pool metrics just before the last clear.
func runRound(ctx context.Context, cfg Config, maxDepth, i int, out *Round, peak *pool.PoolMetrics) error {
	depth := cfg.MinDepth + 2*i
	iterations := 1 << (maxDepth - 2*i)

	p := newPool(cfg)
	defer p.Close()

	check := 0
	for it := range iterations {
		if err := ctx.Err(); err != nil {
			return err
		}
		check += tree.Check(p, tree.Make(p, depth))
		if it == iterations-1 {
			*peak = p.Metrics()
		}
		p.Clear()
	}
	*out = Round{Depth: depth, Iterations: iterations, Check: check}
	return nil
}

func newPool(cfg Config) *tree.Pool {
	return pool.New[tree.Node](cfg.InitialCapacity, pool.WithBacking(cfg.Backing))
}

// binarytrees builds and checks binary trees whose nodes come from a
// non-freeing pool, one pool per worker.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"

	"github.com/urfave/cli/v2"

	"github.com/pavanmanishd/pool"
	"github.com/pavanmanishd/pool/internal/bench"
)

var (
	minDepthFlag = &cli.IntFlag{
		Name:  "min-depth",
		Usage: "Depth of the shallowest round of trees",
		Value: bench.DefaultMinDepth,
	}
	initialCapacityFlag = &cli.IntFlag{
		Name:  "initial-capacity",
		Usage: "Initial pool capacity in nodes (the first block holds twice this)",
		Value: pool.DefaultInitialCapacity,
	}
	workersFlag = &cli.IntFlag{
		Name:  "workers",
		Usage: "Maximum number of rounds run in parallel (0 = GOMAXPROCS)",
	}
	backingFlag = &cli.StringFlag{
		Name:  "backing",
		Usage: "Pool block backing: heap or mmap",
		Value: pool.Heap.String(),
	}
	configFlag = &cli.StringFlag{
		Name:  "config",
		Usage: "TOML configuration file",
	}
	verbosityFlag = &cli.StringFlag{
		Name:  "verbosity",
		Usage: "Log level: debug, info, warn, error",
		Value: "info",
	}
)

func newApp() *cli.App {
	return &cli.App{
		Name:      "binarytrees",
		Usage:     "binary-trees benchmark on a non-freeing node pool",
		ArgsUsage: "[depth]",
		Flags: []cli.Flag{
			minDepthFlag,
			initialCapacityFlag,
			workersFlag,
			backingFlag,
			configFlag,
			verbosityFlag,
		},
		Action: binarytrees,
	}
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func binarytrees(ctx *cli.Context) error {
	logger, err := newLogger(ctx)
	if err != nil {
		return err
	}
	cfg, err := makeConfig(ctx, logger)
	if err != nil {
		return err
	}

	runCtx, stop := signal.NotifyContext(ctx.Context, os.Interrupt)
	defer stop()

	logger.Info("Starting benchmark", "depth", cfg.EffectiveMaxDepth(), "min", cfg.MinDepth,
		"capacity", cfg.InitialCapacity, "workers", cfg.Workers, "backing", cfg.Backing)
	rep, err := bench.Run(runCtx, cfg)
	if err != nil {
		return err
	}
	if _, err := rep.WriteTo(ctx.App.Writer); err != nil {
		return err
	}
	logger.Info("Benchmark finished", "elapsed", rep.Elapsed,
		"blocks", rep.Pools.NumBlocks, "reserved", rep.Pools.BytesReserved,
		"utilization", fmt.Sprintf("%.2f", rep.Pools.Utilization))
	return nil
}

func newLogger(ctx *cli.Context) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(ctx.String(verbosityFlag.Name))); err != nil {
		return nil, fmt.Errorf("invalid verbosity: %w", err)
	}
	return slog.New(slog.NewTextHandler(ctx.App.ErrWriter, &slog.HandlerOptions{Level: level})), nil
}

// makeConfig layers the config file, then explicitly set flags, then the
// depth argument over the defaults.
func makeConfig(ctx *cli.Context, logger *slog.Logger) (bench.Config, error) {
	cfg := bench.DefaultConfig()
	if path := ctx.String(configFlag.Name); path != "" {
		var err error
		if cfg, err = bench.LoadConfig(path); err != nil {
			return cfg, err
		}
	}
	if ctx.IsSet(minDepthFlag.Name) {
		cfg.MinDepth = ctx.Int(minDepthFlag.Name)
	}
	if ctx.IsSet(initialCapacityFlag.Name) {
		cfg.InitialCapacity = ctx.Int(initialCapacityFlag.Name)
	}
	if ctx.IsSet(workersFlag.Name) && ctx.Int(workersFlag.Name) > 0 {
		cfg.Workers = ctx.Int(workersFlag.Name)
	}
	if ctx.IsSet(backingFlag.Name) {
		b, err := pool.ParseBacking(ctx.String(backingFlag.Name))
		if err != nil {
			return cfg, err
		}
		cfg.Backing = b
	}
	if arg := ctx.Args().First(); arg != "" {
		depth, err := strconv.Atoi(arg)
		if err != nil {
			logger.Warn("Ignoring unparsable depth", "arg", arg, "default", cfg.MaxDepth)
		} else {
			cfg.MaxDepth = depth
		}
	}
	return cfg, cfg.Validate()
}

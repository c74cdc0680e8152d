// Package bench runs the binary-trees benchmark on pooled nodes.
package bench

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/BurntSushi/toml"

	"github.com/pavanmanishd/pool"
)

const (
	// DefaultMaxDepth is the requested depth when none is given.
	DefaultMaxDepth = 10

	// DefaultMinDepth is the depth of the shallowest round.
	DefaultMinDepth = 4
)

// Config holds benchmark settings.
type Config struct {
	MaxDepth        int          `toml:"max_depth"`
	MinDepth        int          `toml:"min_depth"`
	InitialCapacity int          `toml:"initial_capacity"`
	Workers         int          `toml:"workers"`
	Backing         pool.Backing `toml:"backing"`
}

// DefaultConfig returns the default settings.
func DefaultConfig() Config {
	return Config{
		MaxDepth:        DefaultMaxDepth,
		MinDepth:        DefaultMinDepth,
		InitialCapacity: pool.DefaultInitialCapacity,
		Workers:         runtime.GOMAXPROCS(0),
		Backing:         pool.Heap,
	}
}

// LoadConfig reads a TOML file over the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("bench: load config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return cfg, fmt.Errorf("bench: unknown config key %q in %s", undecoded[0].String(), path)
	}
	return cfg, nil
}

var (
	errBadDepth    = errors.New("bench: depths must be non-negative")
	errBadWorkers  = errors.New("bench: workers must be positive")
	errDepthTooBig = errors.New("bench: max depth too large")
)

// maxSupportedDepth keeps 1<<depth iteration counts and node counts in range.
const maxSupportedDepth = 30

// Validate checks cfg for values the benchmark cannot run with.
func (c Config) Validate() error {
	if c.MaxDepth < 0 || c.MinDepth < 0 {
		return errBadDepth
	}
	if c.EffectiveMaxDepth() > maxSupportedDepth {
		return fmt.Errorf("%w: %d > %d", errDepthTooBig, c.EffectiveMaxDepth(), maxSupportedDepth)
	}
	if c.Workers <= 0 {
		return errBadWorkers
	}
	return nil
}

// EffectiveMaxDepth is the requested depth raised to at least MinDepth+2.
func (c Config) EffectiveMaxDepth() int {
	return max(c.MinDepth+2, c.MaxDepth)
}

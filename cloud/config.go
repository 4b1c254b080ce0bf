// config.go — functional options and deterministic defaults.
//
// Design:
//   • cloudConfig is the single source of truth for all generator knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newCloudConfig applies options in-order (later overrides earlier).
//   • Option violations are recorded in cfg.err and surfaced by generators
//     as ErrOptionViolation — option constructors never panic.

package cloud

import (
	"fmt"
	"math/rand"
)

// Deterministic defaults (named, no magic numbers).
const (
	// defaultSeed is the fixed "zero" seed used when callers pass seed==0.
	// The value is arbitrary but stable to keep reproducible defaults.
	defaultSeed int64 = 1

	// defaultStdDev is the Gaussian spread of points around a cluster center.
	defaultStdDev = 0.5

	// defaultMinBound / defaultMaxBound delimit the axis-aligned box in which
	// cluster centers, uniform points, and line segments are placed.
	defaultMinBound = 0.0
	defaultMaxBound = 10.0
)

// Generator name constants used to prefix errors with context.
const (
	generatorClusters   = "Clusters"
	generatorUniformBox = "UniformBox"
	generatorCollinear  = "Collinear"
)

// Minimum point counts per generator.
const (
	// MinClusterPoints is the smallest meaningful clustered cloud: one point.
	MinClusterPoints = 1

	// MinUniformPoints is the smallest meaningful uniform cloud: one point.
	MinUniformPoints = 1

	// MinCollinearPoints is the smallest point count for which "evenly
	// spaced" is well defined (two endpoints).
	MinCollinearPoints = 2
)

// Option configures a generator via functional arguments.
type Option func(*cloudConfig)

// cloudConfig aggregates all knobs used by generators.
// It is passed by value to generators (immutable to callers).
type cloudConfig struct {
	// rng drives every stochastic choice; resolved, never nil.
	rng *rand.Rand

	// stddev is the Gaussian spread around cluster centers; >= 0.
	stddev float64

	// minBound/maxBound delimit the generation box; minBound < maxBound.
	minBound float64
	maxBound float64

	// err records the first option violation, surfaced on invocation.
	err error
}

// newCloudConfig constructs a config with deterministic defaults and applies
// all options in order. Complexity: O(len(opts)).
func newCloudConfig(opts ...Option) cloudConfig {
	cfg := cloudConfig{
		rng:      rngFromSeed(0), // default deterministic stream
		stddev:   defaultStdDev,
		minBound: defaultMinBound,
		maxBound: defaultMaxBound,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithSeed freezes the generator's random stream. Policy: seed==0 selects the
// fixed default seed; any other value is used verbatim. Same seed ⇒ identical
// cloud across runs and platforms.
func WithSeed(seed int64) Option {
	return func(cfg *cloudConfig) { cfg.rng = rngFromSeed(seed) }
}

// WithRand supplies an externally owned RNG, e.g. to continue an existing
// deterministic stream across several generators. A nil RNG is a violation.
func WithRand(rng *rand.Rand) Option {
	return func(cfg *cloudConfig) {
		if rng == nil {
			cfg.err = fmt.Errorf("%w: WithRand(nil)", ErrOptionViolation)

			return
		}
		cfg.rng = rng
	}
}

// WithStdDev sets the Gaussian spread around cluster centers.
// Negative values are a violation; 0 collapses each cluster to its center.
func WithStdDev(sigma float64) Option {
	return func(cfg *cloudConfig) {
		if sigma < 0 {
			cfg.err = fmt.Errorf("%w: WithStdDev(%v) must be >= 0", ErrOptionViolation, sigma)

			return
		}
		cfg.stddev = sigma
	}
}

// WithBounds sets the axis-aligned generation box [min,max]^3.
// min must be strictly below max.
func WithBounds(min, max float64) Option {
	return func(cfg *cloudConfig) {
		if min >= max {
			cfg.err = fmt.Errorf("%w: WithBounds(%v,%v) requires min < max", ErrOptionViolation, min, max)

			return
		}
		cfg.minBound, cfg.maxBound = min, max
	}
}

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultSeed; otherwise use the provided seed verbatim.
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultSeed
	}

	return rand.New(rand.NewSource(s))
}

package cauchyrs

import "github.com/pkg/errors"

// Boundary (user) errors, per spec §7 tier 1. These are the only errors
// this package returns; every invariant violation (tier 2) panics instead,
// since it indicates a logic bug unreachable from valid input.
var (
	ErrInvalidDataShards   = errors.New("cauchyrs: data shard count must be between 1 and 24")
	ErrInvalidParityShards = errors.New("cauchyrs: parity shard count must be between 1 and 6")
	ErrShortContext        = errors.New("cauchyrs: context is too short")
	ErrContextSize         = errors.New("cauchyrs: context length does not match its (w, k, m) header")
	ErrNotRowZeroOptimized = errors.New("cauchyrs: context fails the row-0-optimized predicate")

	ErrShardSizeZero      = errors.New("cauchyrs: shard size must be greater than zero")
	ErrShardSizeAlignment = errors.New("cauchyrs: shard size must be a multiple of the field width and of 8")
	ErrTooFewSources      = errors.New("cauchyrs: fewer than k source shards supplied")
	ErrNoTargets          = errors.New("cauchyrs: no target shards requested")
	ErrTooManyTargets     = errors.New("cauchyrs: more target shards requested than parity shards exist")
	ErrSourceTargetOverlap = errors.New("cauchyrs: sources and targets overlap")
	ErrShardIndexRange    = errors.New("cauchyrs: sources or targets reference a shard index outside [0, k+m)")
)

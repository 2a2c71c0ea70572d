// Package cauchyrs implements Cauchy Reed-Solomon erasure coding over
// small binary extension fields GF(2^w), w in {2, 4, 8}.
//
// A Context, built once per (k, m) shard configuration via New, embeds a
// pre-computed, bit-expanded Cauchy generator matrix. Encode then uses
// that context to reconstruct any subset of missing shards from any k
// surviving ones, driving a cache-aware XOR kernel rather than Galois
// field multiplication.
//
// The package is purely synchronous: a Context is read-only and may be
// shared across concurrent Encode calls on disjoint shard buffers, but no
// call returns before the shards it was asked to compute are complete.
// Scheduling work onto a worker pool, as internal/asyncdispatch does, is a
// concern for the embedding application, not this package.
package cauchyrs

package cauchyrs

import "github.com/templexxx/xorsimd"

// dotChunkSize implements chunk_size(w, k, shardSize) from spec §4.5: it
// starts from shardSize/w and halves it while it is above 64, even, and the
// dot kernel's combined working set (one destination chunk plus up to k*w
// source chunks, (1+k*w)*chunkSize) exceeds 1 MiB. Halving stops at 64 or
// at an odd size even if the working set is still above 1 MiB.
func dotChunkSize(w, k int, shardSize int) int {
	chunkSize := shardSize / w
	for chunkSize > 64 && chunkSize%2 == 0 && (1+k*w)*chunkSize > 1048576 {
		chunkSize /= 2
	}
	return chunkSize
}

// dot implements the dot kernel from spec §4.5: target is overwritten with
// Σ row[i]·source[i], computed at shard granularity via XOR over the
// bit-matrix row `row` (length k*w*w), using the surviving-shard index
// vector `survivors` (length k) to map each bit-matrix column-block to a
// physical shard in `shards`.
func dot(w, k int, shards [][]byte, shardSize int, row []byte, survivors []int, targetIndex int) {
	chunkSize := dotChunkSize(w, k, shardSize)
	target := shards[targetIndex]

	for shardOffset := 0; shardOffset < shardSize; shardOffset += w * chunkSize {
		for a := 0; a < w; a++ {
			dst := target[shardOffset+a*chunkSize : shardOffset+(a+1)*chunkSize]
			var toCombine [][]byte
			for b := 0; b < k; b++ {
				source := shards[survivors[b]]
				for c := 0; c < w; c++ {
					if row[a*(k*w)+b*w+c] == 0 {
						continue
					}
					off := shardOffset + c*chunkSize
					toCombine = append(toCombine, source[off:off+chunkSize])
				}
			}
			// toCombine always has at least one chunk: every row produced
			// by bitmatrix.go or invert.go has >= 1 one-bit per inner row
			// by construction (spec §4.5).
			combine(dst, toCombine)
		}
	}
}

// combine writes XOR(srcs...) into dst: a copy for the first source and
// an XOR-accumulate for every subsequent one, exactly the "copied" flag
// semantics of spec §4.5's inner loop. When there is more than one source
// chunk to fold together, the multi-way accumulate is delegated to
// xorsimd.Encode, which implements the same copy-then-accumulate pattern
// with an architecture-aware fast path.
func combine(dst []byte, srcs [][]byte) {
	if len(srcs) == 1 {
		copy(dst, srcs[0])
		return
	}
	xorsimd.Encode(dst, srcs)
}

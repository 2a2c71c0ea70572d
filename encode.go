package cauchyrs

// Encode implements the encode operation from spec §4.6/§6.2. buffer holds
// the k data shards packed contiguously (k*shardSize bytes); parity holds
// the m parity shards as separate equally-sized slices. sources marks the
// shards that are currently valid and readable; targets marks the shards
// to (re)compute. Bit i < k refers to the data shard at buffer[i*shardSize
// : (i+1)*shardSize]; bit k+i refers to parity[i].
//
// Preconditions (spec §6.2), all surfaced as distinct errors: shardSize >
// 0 and a multiple of both the context's field width and 8; popcount(sources)
// >= k; popcount(targets) in [1, m]; sources and targets disjoint; every
// set bit < k+m.
func (c *Context) Encode(sources, targets uint32, buffer []byte, parity [][]byte) error {
	k, m, w := c.k, c.m, c.w

	if len(parity) != m {
		return ErrShardIndexRange
	}
	if len(buffer) == 0 || len(buffer)%k != 0 {
		return ErrShardSizeZero
	}
	shardSize := len(buffer) / k
	if shardSize == 0 {
		return ErrShardSizeZero
	}
	if shardSize%w != 0 || shardSize%8 != 0 {
		return ErrShardSizeAlignment
	}
	for _, p := range parity {
		if len(p) != shardSize {
			return ErrShardSizeAlignment
		}
	}

	total := k + m
	if total >= 31 {
		panic("cauchyrs: k+m must be less than 31 (overflow guard)")
	}
	allBits := uint32(1)<<uint(total) - 1
	if sources&^allBits != 0 || targets&^allBits != 0 {
		return ErrShardIndexRange
	}
	if sources&targets != 0 {
		return ErrSourceTargetOverlap
	}
	if popcount(sources) < k {
		return ErrTooFewSources
	}
	tc := popcount(targets)
	if tc == 0 {
		return ErrNoTargets
	}
	if tc > m {
		return ErrTooManyTargets
	}

	shards := make([][]byte, total)
	for i := 0; i < k; i++ {
		shards[i] = buffer[i*shardSize : (i+1)*shardSize]
	}
	for i := 0; i < m; i++ {
		shards[k+i] = parity[i]
	}

	encodeShards(w, k, m, c.enc, sources, targets, shards, shardSize)
	return nil
}

func popcount(flags uint32) int {
	count := 0
	for flags != 0 {
		count += int(flags & 1)
		flags >>= 1
	}
	return count
}

func firstSet(flags uint32) int {
	i := 0
	for flags&(1<<uint(i)) == 0 {
		i++
	}
	return i
}

// encodeShards implements reed_solomon_encode from spec §4.6: it picks a
// fast path when possible (pure replication for k=1, or XOR-only recovery
// of a single data erasure using the row-0-optimized property), and
// otherwise builds a decoding matrix and drives the dot kernel row by row.
func encodeShards(w, k, m int, enc bitMatrix, sources, targets uint32, shards [][]byte, shardSize int) {
	if k == 1 {
		source := shards[firstSet(sources)]
		for i := 0; i < k+m; i++ {
			if targets&(1<<uint(i)) != 0 {
				copy(shards[i], source)
			}
		}
		return
	}

	firstKPlus1 := uint32(1)<<uint(k+1) - 1
	if popcount(targets) == 1 &&
		popcount(sources&firstKPlus1) == k &&
		popcount(targets&firstKPlus1) == 1 {
		target := shards[firstSet(targets)]
		copied := false
		for i := 0; i < k+1; i++ {
			if sources&(1<<uint(i)) == 0 {
				continue
			}
			if !copied {
				copy(target, shards[i])
				copied = true
			} else {
				Xor(shards[i], 0, target, 0, shardSize)
			}
		}
		return
	}

	max := k
	kerasures := 0
	for i := 0; i < k; i++ {
		if sources&(1<<uint(i)) == 0 {
			max = i
			kerasures++
		}
	}
	if sources&(1<<uint(k)) == 0 {
		max = k
	}

	if kerasures > 1 || (kerasures == 1 && sources&(1<<uint(k)) == 0) {
		survivors := make([]int, 0, k)
		for i := 0; len(survivors) < k; i++ {
			if sources&(1<<uint(i)) != 0 {
				survivors = append(survivors, i)
			}
		}
		dec := buildDecodingMatrix(enc, w, k, survivors)
		for i := 0; kerasures > 0 && i < max; i++ {
			if sources&(1<<uint(i)) == 0 {
				dot(w, k, shards, shardSize, dec.blockRow(i, w), survivors, i)
				kerasures--
			}
		}
	}

	if kerasures > 0 {
		survivors := make([]int, k)
		for i := 0; i < k; i++ {
			if i < max {
				survivors[i] = i
			} else {
				survivors[i] = i + 1
			}
		}
		dot(w, k, shards, shardSize, enc.blockRow(0, w), survivors, max)
	}

	for i := 0; i < m; i++ {
		if sources&(1<<uint(k+i)) == 0 {
			survivors := make([]int, k)
			for s := 0; s < k; s++ {
				survivors[s] = s
			}
			dot(w, k, shards, shardSize, enc.blockRow(i, w), survivors, k+i)
		}
	}
}

package cauchyrs

// generatorMatrix is the m x k Cauchy generator matrix M from spec §3/§4.2,
// stored row-major with entries in [0, 2^w).
type generatorMatrix struct {
	k, m int
	data []int // len == m*k
}

func newGeneratorMatrix(k, m int) generatorMatrix {
	return generatorMatrix{k: k, m: m, data: make([]int, m*k)}
}

func (g generatorMatrix) at(r, c int) int      { return g.data[r*g.k+c] }
func (g generatorMatrix) set(r, c, v int)      { g.data[r*g.k+c] = v }

// buildMatrix implements build_matrix(w, k, m, x, y, tables) from spec
// §4.2. It returns the normalized generator matrix and the aggregate
// bit-weight, which must equal the tabulated b (self-check enforced by the
// caller in context.go).
func buildMatrix(t *fieldTables, k, m, x, y int) (generatorMatrix, int) {
	g := newGeneratorMatrix(k, m)
	count := t.bit[1] * k

	switch {
	case m == 1:
		// Row 0 is all ones; x, y are sentinel -1.
		for c := 0; c < k; c++ {
			g.set(0, c, 1)
		}

	case m == 2:
		// Row 0 is all ones; row 1 is min[1..k], the k smallest-bit-weight
		// non-zero elements, starting with 1 itself (spec §4.2, m=2 case).
		for c := 0; c < k; c++ {
			g.set(0, c, 1)
		}
		for c := 0; c < k; c++ {
			v := t.min[c+1]
			g.set(1, c, v)
			count += t.bit[v]
		}

	default:
		// Cauchy construction: M[r,c] = 1 / ((y+r) XOR (x+c)).
		for r := 0; r < m; r++ {
			for c := 0; c < k; c++ {
				g.set(r, c, t.divide(1, (y+r)^(x+c)))
			}
		}
		// Normalize rows 1..m-1 by dividing by row 0 (column-wise), then
		// normalize row 0 to all ones by dividing it by itself.
		for r := 1; r < m; r++ {
			for c := 0; c < k; c++ {
				g.set(r, c, t.divide(g.at(r, c), g.at(0, c)))
			}
		}
		for c := 0; c < k; c++ {
			g.set(0, c, t.divide(g.at(0, c), g.at(0, c)))
		}
		// Normalize each row r>=1 by the column divisor that minimizes the
		// row's resulting bit-weight.
		for r := 1; r < m; r++ {
			result := 0
			for c := 0; c < k; c++ {
				result += t.bit[g.at(r, c)]
			}
			column := -1
			for c := 0; c < k; c++ {
				bitsForColumn := 0
				for d := 0; d < k; d++ {
					bitsForColumn += t.bit[t.divide(g.at(r, d), g.at(r, c))]
				}
				if bitsForColumn < result {
					result = bitsForColumn
					column = g.at(r, c)
				}
			}
			if column >= 0 {
				for c := 0; c < k; c++ {
					g.set(r, c, t.divide(g.at(r, c), column))
				}
			}
			count += result
		}
	}

	return g, count
}

package cauchyrs

import "fmt"

// w2Polynomials, w4Polynomials and w8Polynomials are the allowed primitive
// polynomials per field width, per spec §6.2.
var (
	w2Polynomials = []int{7}
	w4Polynomials = []int{19}
	w8Polynomials = []int{
		29, 43, 45, 77, 95, 99, 101, 105,
		113, 135, 141, 169, 195, 207, 231, 245,
	}
)

// SearchResult is one row of the table Search computes: the best (w, p, x,
// y) found for a given (k, m), and the resulting bit-weight b.
type SearchResult struct {
	K, M, W, P, X, Y, B int
}

// Search implements search() from spec §6.2/§9: it enumerates every
// allowed (w, p, x, y) tuple for every (k, m) with k in [1, MaxDataShards]
// and m in [1, MaxParityShards], and returns the tuple that minimizes the
// resulting bit matrix's bit-weight b for each pair.
//
// This is an offline developer procedure, never on the create/Encode
// runtime path (spec §1, §9): the result it computes is already baked
// into parameterTable in params.go. Regenerating that table means running
// this, not the other way around.
func Search() [MaxDataShards][MaxParityShards]SearchResult {
	var out [MaxDataShards][MaxParityShards]SearchResult
	for k := 1; k <= MaxDataShards; k++ {
		for m := 1; m <= MaxParityShards; m++ {
			out[k-1][m-1] = SearchOne(k, m)
		}
	}
	return out
}

// SearchOne runs the same search as Search, but for a single (k, m) pair —
// the piece callers that only need one row (cmd/cauchyrs search, backed by
// internal/paramcache) should call instead of recomputing the whole table.
func SearchOne(k, m int) SearchResult {
	best := SearchResult{K: k, M: m, B: -1}
	widths := []struct {
		w  int
		ps []int
	}{
		{2, w2Polynomials},
		{4, w4Polynomials},
		{8, w8Polynomials},
	}
	for _, wp := range widths {
		w := wp.w
		if k+m > 1<<uint(w) {
			continue
		}
		for _, p := range wp.ps {
			tables := buildFieldTables(w, p)
			if m <= 2 {
				_, b := buildMatrix(tables, k, m, -1, -1)
				if best.B == -1 || b < best.B {
					best = SearchResult{k, m, w, p, -1, -1, b}
				}
				continue
			}
			z := 1 << uint(w)
			for x := 0; x+k <= z; x++ {
				for y := 0; y+m <= z; y++ {
					if x == y {
						continue
					}
					if x < y && x+k > y {
						continue
					}
					if y < x && y+m > x {
						continue
					}
					_, b := buildMatrix(tables, k, m, x, y)
					if best.B == -1 || b < best.B {
						best = SearchResult{k, m, w, p, x, y, b}
					}
				}
			}
		}
	}
	return best
}

// PrintTable writes the rows of the Go source literal for parameterTable
// (params.go) to the given writer — the developer workflow for
// regenerating the embedded table after changing the allowed polynomial
// sets (spec §9).
func PrintTable(w interface{ Write([]byte) (int, error) }) {
	table := Search()
	for k := 0; k < MaxDataShards; k++ {
		fmt.Fprint(w, "\t{")
		for m := 0; m < MaxParityShards; m++ {
			r := table[k][m]
			if m > 0 {
				fmt.Fprint(w, ", ")
			}
			fmt.Fprintf(w, "{%d, %d, %d, %d, %d}", r.W, r.P, r.X, r.Y, r.B)
		}
		fmt.Fprintln(w, "},")
	}
}

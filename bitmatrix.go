package cauchyrs

// bitMatrix is a row-major matrix of single bits (one byte per bit, as
// spec §3 "Encoding context" stores it) with `rows` rows and `cols`
// columns.
type bitMatrix struct {
	rows, cols int
	data       []byte
}

func newBitMatrix(rows, cols int) bitMatrix {
	return bitMatrix{rows: rows, cols: cols, data: make([]byte, rows*cols)}
}

func (b bitMatrix) at(r, c int) byte  { return b.data[r*b.cols+c] }
func (b bitMatrix) set(r, c int, v byte) { b.data[r*b.cols+c] = v }

// row returns the raw bit row [r*cols, (r+1)*cols) for use by the dot
// kernel (§4.5), which only needs a flat slice of 0/1 bytes.
func (b bitMatrix) row(r int) []byte { return b.data[r*b.cols : (r+1)*b.cols] }

// blockRow returns the w consecutive matrix rows [i*w, (i+1)*w) flattened
// into one slice of length w*cols. Rows i*w..i*w+w-1 are contiguous in
// row-major storage, so this is a reslice, not a copy. This is the shape
// the dot kernel (§4.5) expects: one flattened w-row block per shard to
// reconstruct or encode.
func (b bitMatrix) blockRow(i, w int) []byte {
	return b.data[i*w*b.cols : (i+1)*w*b.cols]
}

// expandMatrix implements expand(M) from spec §4.3: each field element
// M[r,c] is replaced by the w x w binary companion matrix of
// multiplication-by-M[r,c], producing the mw x kw bit matrix B.
//
// The flat index for bit (a, b) of block (r, c) is r*w*k*w + b*k*w + c*w + a
// (original_source/binding.c's create_bitmatrix_encoding), equivalent to
// row-major storage with row = r*w+b, col = c*w+a.
func expandMatrix(t *fieldTables, g generatorMatrix) bitMatrix {
	w := t.w
	b := newBitMatrix(g.m*w, g.k*w)
	for r := 0; r < g.m; r++ {
		for c := 0; c < g.k; c++ {
			x := g.at(r, c)
			for a := 0; a < w; a++ {
				for col := 0; col < w; col++ {
					bit := byte(0)
					if x&(1<<uint(col)) != 0 {
						bit = 1
					}
					b.set(r*w+col, c*w+a, bit)
				}
				x = t.multiply(x, 2)
			}
		}
	}
	return b
}

// isRowZeroOptimized implements spec §4.3's "row-0-optimized" predicate:
// the top w rows of an encoding bit matrix must equal the identity. It
// holds by construction whenever row 0 of the generator matrix is all
// ones, and is re-checked at context load (context.go).
func isRowZeroOptimized(b bitMatrix, w, k int) bool {
	for c := 0; c < k; c++ {
		for row := 0; row < w; row++ {
			for col := 0; col < w; col++ {
				want := byte(0)
				if row == col {
					want = 1
				}
				if b.at(row, c*w+col) != want {
					return false
				}
			}
		}
	}
	return true
}

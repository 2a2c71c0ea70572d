package cauchyrs

import "testing"

func TestBlockRowIsContiguousReslice(t *testing.T) {
	b := newBitMatrix(12, 4)
	for i := range b.data {
		b.data[i] = byte(i % 2)
	}
	block := b.blockRow(1, 3) // rows [3, 6)
	want := b.data[3*4 : 6*4]
	if len(block) != len(want) {
		t.Fatalf("blockRow length %d, want %d", len(block), len(want))
	}
	for i := range want {
		if block[i] != want[i] {
			t.Fatalf("blockRow[%d] = %d, want %d", i, block[i], want[i])
		}
	}
}

func TestExpandMatrixOfIdentityRowIsIdentityBlock(t *testing.T) {
	tables := buildFieldTables(8, 29)
	g := newGeneratorMatrix(3, 1)
	g.set(0, 0, 1)
	g.set(0, 1, 1)
	g.set(0, 2, 1)
	b := expandMatrix(tables, g)
	for c := 0; c < 3; c++ {
		for row := 0; row < 8; row++ {
			for col := 0; col < 8; col++ {
				want := byte(0)
				if row == col {
					want = 1
				}
				if b.at(row, c*8+col) != want {
					t.Fatalf("identity expansion mismatch at block %d row %d col %d", c, row, col)
				}
			}
		}
	}
}

func TestIsRowZeroOptimizedOnRealContexts(t *testing.T) {
	for k := 1; k <= MaxDataShards; k++ {
		for m := 1; m <= MaxParityShards; m++ {
			p := lookupParams(k, m)
			tables := buildFieldTables(p.w, p.p)
			g, _ := buildMatrix(tables, k, m, p.x, p.y)
			enc := expandMatrix(tables, g)
			if !isRowZeroOptimized(enc, p.w, k) {
				t.Errorf("k=%d m=%d: built context is not row-0-optimized", k, m)
			}
		}
	}
}

func TestIsRowZeroOptimizedRejectsTamperedMatrix(t *testing.T) {
	p := lookupParams(4, 2)
	tables := buildFieldTables(p.w, p.p)
	g, _ := buildMatrix(tables, 4, 2, p.x, p.y)
	enc := expandMatrix(tables, g)
	enc.set(0, 0, enc.at(0, 0)^1)
	if isRowZeroOptimized(enc, p.w, 4) {
		t.Fatal("tampered matrix should fail the row-0-optimized predicate")
	}
}

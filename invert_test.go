package cauchyrs

import "testing"

func TestGaussJordanInvertRoundTrip(t *testing.T) {
	n := 8
	a := newBitMatrix(n, n)
	// a deliberately non-trivial but invertible matrix: identity plus a
	// strictly-upper-triangular perturbation.
	for i := 0; i < n; i++ {
		a.set(i, i, 1)
	}
	a.set(0, 3, 1)
	a.set(1, 4, 1)
	a.set(2, 7, 1)

	inv := gaussJordanInvert(a)

	product := multiplyBit(a, inv, n)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			want := byte(0)
			if r == c {
				want = 1
			}
			if product.at(r, c) != want {
				t.Fatalf("a * inv != identity at (%d, %d): got %d, want %d", r, c, product.at(r, c), want)
			}
		}
	}
}

func TestGaussJordanInvertSingularPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic inverting a singular matrix")
		}
	}()
	n := 4
	a := newBitMatrix(n, n)
	for c := 0; c < n; c++ {
		a.set(0, c, 1) // duplicate the first row, making it singular
		a.set(1, c, 1)
	}
	gaussJordanInvert(a)
}

func TestBuildDecodingMatrixOfIdentitySurvivorsIsIdentity(t *testing.T) {
	p := lookupParams(4, 2)
	tables := buildFieldTables(p.w, p.p)
	g, _ := buildMatrix(tables, 4, 2, p.x, p.y)
	enc := expandMatrix(tables, g)

	dec := buildDecodingMatrix(enc, p.w, 4, []int{0, 1, 2, 3})
	n := 4 * p.w
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			want := byte(0)
			if r == c {
				want = 1
			}
			if dec.at(r, c) != want {
				t.Fatalf("decoding matrix for all-data survivors should be identity, got (%d,%d)=%d", r, c, dec.at(r, c))
			}
		}
	}
}

func multiplyBit(a, b bitMatrix, n int) bitMatrix {
	out := newBitMatrix(n, n)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			var sum byte
			for i := 0; i < n; i++ {
				sum ^= a.at(r, i) & b.at(i, c)
			}
			out.set(r, c, sum)
		}
	}
	return out
}

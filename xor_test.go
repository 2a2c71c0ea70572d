package cauchyrs

import (
	"testing"

	"lukechampine.com/frand"
)

func TestXorSelfInverse(t *testing.T) {
	a := frand.Bytes(257)
	b := frand.Bytes(257)
	original := append([]byte(nil), b...)

	Xor(a, 0, b, 0, len(a))
	Xor(a, 0, b, 0, len(a))

	for i := range b {
		if b[i] != original[i] {
			t.Fatalf("xor-xor did not round-trip at byte %d", i)
		}
	}
}

func TestXorMatchesNaiveByteLoopAcrossAlignments(t *testing.T) {
	for _, srcOff := range []int{0, 1, 3, 7} {
		for _, dstOff := range []int{0, 1, 2, 5} {
			size := 200
			src := frand.Bytes(srcOff + size)
			dst := frand.Bytes(dstOff + size)
			want := append([]byte(nil), dst...)
			for i := 0; i < size; i++ {
				want[dstOff+i] ^= src[srcOff+i]
			}

			Xor(src, srcOff, dst, dstOff, size)

			for i := 0; i < len(dst); i++ {
				if dst[i] != want[i] {
					t.Fatalf("srcOff=%d dstOff=%d: byte %d = %d, want %d", srcOff, dstOff, i, dst[i], want[i])
				}
			}
		}
	}
}

func TestXorEmptyRangeIsNoop(t *testing.T) {
	src := frand.Bytes(8)
	dst := frand.Bytes(8)
	before := append([]byte(nil), dst...)
	Xor(src, 0, dst, 0, 0)
	for i := range dst {
		if dst[i] != before[i] {
			t.Fatalf("zero-size xor modified dst at byte %d", i)
		}
	}
}

package cauchyrs

import "unsafe"

// Xor implements the "xor" operation from spec §6.2: it XORs size bytes of
// source (starting at sourceOffset) into target (starting at
// targetOffset), in place. It is the same primitive the single-erasure
// fast path in encodeShards uses, exposed directly for convenience; the dot
// kernel (§4.5) combines its chunks through combine instead.
//
// The fast path advances byte-by-byte until source and target reach a
// common 8-byte alignment, then XORs 8 bytes at a time, then finishes
// byte-by-byte. If source and target have different misalignment modulo
// 8, it falls back to a pure byte-by-byte XOR. Semantics are identical
// either way — only throughput differs.
func Xor(source []byte, sourceOffset int, target []byte, targetOffset int, size int) {
	src := source[sourceOffset : sourceOffset+size]
	dst := target[targetOffset : targetOffset+size]
	xorBytes(dst, src)
}

func unaligned64(p unsafe.Pointer) uintptr {
	return uintptr(p) & 7
}

func xorBytes(dst, src []byte) {
	if len(src) == 0 {
		return
	}
	srcPtr := unsafe.Pointer(&src[0])
	dstPtr := unsafe.Pointer(&dst[0])

	if unaligned64(srcPtr) != unaligned64(dstPtr) {
		for i := range src {
			dst[i] ^= src[i]
		}
		return
	}

	i := 0
	for i < len(src) && unaligned64(unsafe.Pointer(&src[i])) != 0 {
		dst[i] ^= src[i]
		i++
	}
	words := (len(src) - i) / 8
	if words > 0 {
		srcWords := unsafe.Slice((*uint64)(unsafe.Pointer(&src[i])), words)
		dstWords := unsafe.Slice((*uint64)(unsafe.Pointer(&dst[i])), words)
		for w := 0; w < words; w++ {
			dstWords[w] ^= srcWords[w]
		}
		i += words * 8
	}
	for ; i < len(src); i++ {
		dst[i] ^= src[i]
	}
}

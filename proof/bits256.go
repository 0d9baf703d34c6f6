package proof

import "github.com/forestrie/go-vectorproof/hash"

// Bits256 is a 256-bit flag vector, used for the flags/skips bitmaps of a
// multi-proof witness. Bit 0 is the least significant bit (step 0), per
// spec: "treat flags and skips as 256-bit integers... implement as integer
// shifts, not arrays." Backed by four uint64 words rather than math/big so
// that the proof engine's scratch memory stays O(1) and allocation-free.
type Bits256 [4]uint64

// Bit reports whether bit i is set. i must be in [0, 256).
func (b Bits256) Bit(i int) bool {
	return (b[i/64]>>(i%64))&1 != 0
}

// SetBit sets bit i to 1. i must be in [0, 256).
func (b *Bits256) SetBit(i int) {
	b[i/64] |= 1 << (i % 64)
}

// ToDigest encodes b as a 32-byte big-endian value: the most significant
// word (bits 192..255) occupies the first 8 bytes.
func (b Bits256) ToDigest() hash.Digest {
	var d hash.Digest
	for w := 0; w < 4; w++ {
		word := b[3-w]
		off := w * 8
		for i := 0; i < 8; i++ {
			d[off+i] = byte(word >> (56 - 8*i))
		}
	}
	return d
}

// Bits256FromDigest decodes a 32-byte big-endian value into a Bits256.
func Bits256FromDigest(d hash.Digest) Bits256 {
	var b Bits256
	for w := 0; w < 4; w++ {
		off := w * 8
		var word uint64
		for i := 0; i < 8; i++ {
			word = word<<8 | uint64(d[off+i])
		}
		b[3-w] = word
	}
	return b
}

// Package tree computes element-roots and committed roots from an element
// sequence, and provides the builder convenience type clients use to derive
// proof witnesses (see [Builder]). It is the inverse of package proof: the
// proof engine is the root of trust and can be fully tested without this
// package.
package tree

import (
	"github.com/forestrie/go-vectorproof/hash"
	"github.com/forestrie/go-vectorproof/leaf"
)

// ElementRoot reduces leaf hashes of elements pairwise until one digest
// remains. For an odd count at any level, the last digest is carried up
// unchanged rather than hashed with a phantom zero sibling — this is the
// unbalanced-tree rule that keeps append proofs short (spec §4.2). Returns
// the zero digest for an empty sequence.
func ElementRoot(elements []hash.Digest, mode hash.Mode) hash.Digest {
	n := len(elements)
	if n == 0 {
		return hash.Zero
	}

	level := make([]hash.Digest, n)
	for i, e := range elements {
		level[i] = leaf.Hash(e)
	}

	for len(level) > 1 {
		next := make([]hash.Digest, 0, (len(level)+1)/2)
		for i := 0; i < len(level); i += 2 {
			if i+1 == len(level) {
				// odd one out: carried up unchanged, no phantom sibling.
				next = append(next, level[i])
				break
			}
			next = append(next, hash.Combine(mode, level[i], level[i+1]))
		}
		level = next
	}
	return level[0]
}

// Root returns the committed root for elements: H(u256(N) || ElementRoot),
// or the zero digest when elements is empty.
func Root(elements []hash.Digest, mode hash.Mode) hash.Digest {
	return hash.CommitRoot(uint64(len(elements)), ElementRoot(elements, mode))
}

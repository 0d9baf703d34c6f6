package proof

import (
	"math/bits"

	"github.com/forestrie/go-vectorproof/hash"
	"github.com/forestrie/go-vectorproof/leaf"
)

// AppendWitness is the witness needed to extend a tree of N elements: one
// decommitment per perfect subtree on the current append frontier, ordered
// from the largest (leftmost) subtree to the smallest (rightmost). Its
// length is always popcount(N).
type AppendWitness struct {
	N        uint64
	Decommit []hash.Digest
}

// frontierHeights returns, for n, the bit positions that are set, from the
// most significant to the least significant. Each set bit corresponds to
// one perfect subtree of size 2^height on the append frontier.
func frontierHeights(n uint64) []uint64 {
	heights := make([]uint64, 0, bits.OnesCount64(n))
	for h := 63; h >= 0; h-- {
		if n&(1<<uint(h)) != 0 {
			heights = append(heights, uint64(h))
		}
	}
	return heights
}

// foldFrontier reconstructs the element-root of n elements from its
// frontier decommitments: fold from the smallest (rightmost, last in the
// witness) toward the largest, always placing the larger/existing subtree
// on the left.
func foldFrontier(mode hash.Mode, heights []uint64, peaks map[uint64]hash.Digest) (hash.Digest, error) {
	if len(heights) == 0 {
		return hash.Zero, nil
	}
	cur, ok := peaks[heights[len(heights)-1]]
	if !ok {
		return hash.Digest{}, ErrInvalidProof
	}
	for i := len(heights) - 2; i >= 0; i-- {
		p, ok := peaks[heights[i]]
		if !ok {
			return hash.Digest{}, ErrInvalidProof
		}
		cur = hash.Combine(mode, p, cur)
	}
	return cur, nil
}

// appendMany runs the binary-counter construction: each new leaf is folded
// into the frontier exactly as mmr.AddHashedLeaf backfills an MMR, merging
// with existing peaks of equal height bottom-up, until no two peaks share a
// height. Returns the old and new element-roots.
func appendMany(mode hash.Mode, w AppendWitness, newElements []hash.Digest) (oldRoot, newRoot hash.Digest, err error) {
	heights := frontierHeights(w.N)
	if len(heights) != len(w.Decommit) {
		return hash.Digest{}, hash.Digest{}, ErrInvalidProof
	}

	peaks := make(map[uint64]hash.Digest, len(heights))
	for i, h := range heights {
		peaks[h] = w.Decommit[i]
	}

	oldRoot, err = foldFrontier(mode, heights, peaks)
	if err != nil {
		return hash.Digest{}, hash.Digest{}, err
	}

	count := w.N
	for _, e := range newElements {
		cur := leaf.Hash(e)
		height := uint64(0)
		for (count>>height)&1 == 1 {
			existing, ok := peaks[height]
			if !ok {
				return hash.Digest{}, hash.Digest{}, ErrInvalidProof
			}
			cur = hash.Combine(mode, existing, cur)
			delete(peaks, height)
			height++
		}
		peaks[height] = cur
		count++
	}

	newRoot, err = foldFrontier(mode, frontierHeights(count), peaks)
	if err != nil {
		return hash.Digest{}, hash.Digest{}, err
	}
	return oldRoot, newRoot, nil
}

// AppendOne extends a tree of N elements (committed to by root) with a
// single new element, returning the root after the append. w.Decommit must
// carry exactly popcount(N) frontier decommitments.
func AppendOne(mode hash.Mode, root hash.Digest, newElement hash.Digest, w AppendWitness) (hash.Digest, error) {
	return AppendMany(mode, root, []hash.Digest{newElement}, w)
}

// AppendMany extends a tree of N elements with newElements, returning the
// new committed root. The empty tree (N == 0, root == 0) is the base case:
// no decommitments are required and the new root is simply the root built
// from newElements alone.
func AppendMany(mode hash.Mode, root hash.Digest, newElements []hash.Digest, w AppendWitness) (hash.Digest, error) {
	if (root == hash.Zero) != (w.N == 0) {
		return hash.Digest{}, ErrInvalidTree
	}
	if len(newElements) == 0 {
		return hash.Digest{}, ErrInvalidProof
	}

	oldElementRoot, newElementRoot, err := appendMany(mode, w, newElements)
	if err != nil {
		return hash.Digest{}, err
	}
	if hash.CommitRoot(w.N, oldElementRoot) != root {
		return hash.Digest{}, ErrInvalidProof
	}
	return hash.CommitRoot(w.N+uint64(len(newElements)), newElementRoot), nil
}

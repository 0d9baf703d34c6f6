package proof

import "github.com/forestrie/go-vectorproof/hash"

// MinCombinedIndex returns the smallest index whose single-proof path
// necessarily carries through the frontier peak of n's lowest set bit,
// which is the index a combined proof's covered set must reach for its
// witness to double as an append witness. Equivalently, n with its lowest
// set bit cleared: the first index of the smallest frontier subtree.
func MinCombinedIndex(n uint64) uint64 {
	if n == 0 {
		return 0
	}
	return n & (n - 1)
}

// CombinedWitness bundles a multi-proof over a set of claimed indices with
// the append witness for the same tree. Building both from one pass over
// the tree keeps them consistent; MultiAndAppend independently checks the
// multi-proof and the append witness against the same root rather than
// trying to derive one algebraically from the other's decommitment stream.
type CombinedWitness struct {
	Multi  MultiWitness
	Append AppendWitness
}

// maxUint64 returns the largest value in xs. xs must be non-empty.
func maxUint64(xs []uint64) uint64 {
	m := xs[0]
	for _, x := range xs[1:] {
		if x > m {
			m = x
		}
	}
	return m
}

// MultiAndAppend verifies that elements occupy their claimed positions
// (given in strictly decreasing index order) and, in the same step, that
// appending newElements extends root correctly. The claimed index set must
// include at least one index >= MinCombinedIndex(N): that is what
// guarantees the multi-proof replay exposes every frontier peak the append
// half needs, not that every claimed index clears the bar.
func MultiAndAppend(mode hash.Mode, root hash.Digest, elements []hash.Digest, indices []uint64, newElements []hash.Digest, w CombinedWitness) (hash.Digest, error) {
	if err := checkEmptiness(root, w.Multi.N); err != nil {
		return hash.Digest{}, err
	}
	if w.Multi.N != w.Append.N {
		return hash.Digest{}, ErrInvalidProof
	}
	if len(indices) != len(elements) || len(indices) == 0 {
		return hash.Digest{}, ErrLengthMismatch
	}
	if maxUint64(indices) < MinCombinedIndex(w.Multi.N) {
		return hash.Digest{}, ErrInvalidProof
	}
	if mode != hash.Sorted {
		// multi-proofs are sorted-pair only; see MultiWitness.
		return hash.Digest{}, ErrInvalidProof
	}
	if !VerifyMulti(root, elements, w.Multi) {
		return hash.Digest{}, ErrInvalidProof
	}
	return AppendMany(mode, root, newElements, w.Append)
}

// MultiUpdateAndAppend combines an update of k existing elements with an
// append of new ones in a single witness pass: elements at indices are
// overwritten with newValues, and newElements are appended, all against one
// CombinedWitness.
func MultiUpdateAndAppend(mode hash.Mode, root hash.Digest, elements, newValues []hash.Digest, indices []uint64, newElements []hash.Digest, w CombinedWitness) (hash.Digest, error) {
	if err := checkEmptiness(root, w.Multi.N); err != nil {
		return hash.Digest{}, err
	}
	if w.Multi.N != w.Append.N {
		return hash.Digest{}, ErrInvalidProof
	}
	if len(indices) != len(elements) || len(elements) != len(newValues) || len(indices) == 0 {
		return hash.Digest{}, ErrLengthMismatch
	}
	if maxUint64(indices) < MinCombinedIndex(w.Multi.N) {
		return hash.Digest{}, ErrInvalidProof
	}
	if mode != hash.Sorted {
		return hash.Digest{}, ErrInvalidProof
	}

	updatedRoot, err := UpdateMulti(root, elements, newValues, w.Multi)
	if err != nil {
		return hash.Digest{}, err
	}

	// w.Append must already be stated against the post-update frontier: an
	// update that touches a frontier peak changes the digest the append
	// replay starts from. Builder.ProveCombinedUpdate builds w.Append this
	// way, from the tree with newValues already substituted in, so this
	// engine-level call stays a plain stateless replay against whatever
	// frontier witness it is handed.
	return AppendMany(mode, updatedRoot, newElements, w.Append)
}

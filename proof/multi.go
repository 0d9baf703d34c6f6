package proof

import (
	"github.com/forestrie/go-vectorproof/hash"
	"github.com/forestrie/go-vectorproof/leaf"
)

// MultiWitness is the witness for a claim over k distinct elements: N, two
// 256-bit step maps (Flags, Skips), and the decommitments consumed along
// the way. Multi-proofs are defined only in sorted-pair mode: the FIFO
// replay below never needs to know which operand is "left", so it never
// needs the positional bookkeeping ordered mode would require. The source
// this spec distills only ever bags multi-proofs in sorted-pair mode, and
// extending the bit-pair encoding with a third, position bit is future
// work, not something this engine guesses at.
type MultiWitness struct {
	N        uint64
	Flags    Bits256
	Skips    Bits256
	Decommit []hash.Digest
}

// multiReplay runs the ring-queue algorithm (spec §4.3.2) to a single
// output digest: pop the front of the queue, and depending on the bit pair
// at the current step either carry it forward unchanged (skip, !flag),
// combine it with the next queue entry (!skip, flag), combine it with the
// next decommitment (!skip, !flag), or stop (skip, flag).
//
// Elements are supplied in strictly decreasing index order; the queue is
// seeded in that same order, front-to-back, with no reversal: Q[w] =
// leaf(elements[w]).
func multiReplay(w MultiWitness, leaves []hash.Digest) (hash.Digest, error) {
	k := len(leaves)
	if k == 0 {
		return hash.Digest{}, ErrInvalidProof
	}

	queue := make([]hash.Digest, k)
	copy(queue, leaves)

	di := 0
	for bit := 0; ; bit++ {
		if bit >= 256 {
			return hash.Digest{}, ErrInvalidProof
		}
		s := w.Skips.Bit(bit)
		f := w.Flags.Bit(bit)

		if s && f {
			if len(queue) != 1 {
				return hash.Digest{}, ErrInvalidProof
			}
			if di != len(w.Decommit) {
				return hash.Digest{}, ErrInvalidProof
			}
			return queue[0], nil
		}
		if len(queue) == 0 {
			return hash.Digest{}, ErrInvalidProof
		}

		a := queue[0]
		queue = queue[1:]

		switch {
		case s && !f:
			queue = append(queue, a)
		case !s && f:
			if len(queue) == 0 {
				return hash.Digest{}, ErrInvalidProof
			}
			b := queue[0]
			queue = queue[1:]
			queue = append(queue, hash.Pair(a, b))
		default:
			if di >= len(w.Decommit) {
				return hash.Digest{}, ErrInvalidProof
			}
			d := w.Decommit[di]
			di++
			queue = append(queue, hash.Pair(a, d))
		}
	}
}

// VerifyMulti verifies that elements occupy the k claimed positions implied
// by w's witness shape, reconstructing root. elements must be supplied in
// strictly decreasing index order, matching how the witness was built.
func VerifyMulti(root hash.Digest, elements []hash.Digest, w MultiWitness) bool {
	if err := checkEmptiness(root, w.N); err != nil {
		return false
	}
	if w.N == 0 || len(elements) == 0 {
		return false
	}
	leaves := make([]hash.Digest, len(elements))
	for i, e := range elements {
		leaves[i] = leaf.Hash(e)
	}
	elementRoot, err := multiReplay(w, leaves)
	if err != nil {
		return false
	}
	return hash.CommitRoot(w.N, elementRoot) == root
}

// UpdateMulti reconstructs root from elements and w, then replays the
// identical bit-and-decommitment sequence against newElements, returning
// the root after all k positions are overwritten in one step. elements and
// newElements must have the same length, in the same decreasing index
// order.
func UpdateMulti(root hash.Digest, elements, newElements []hash.Digest, w MultiWitness) (hash.Digest, error) {
	if err := checkEmptiness(root, w.N); err != nil {
		return hash.Digest{}, err
	}
	if w.N == 0 {
		return hash.Digest{}, ErrEmptyTree
	}
	if len(elements) != len(newElements) {
		return hash.Digest{}, ErrLengthMismatch
	}
	if len(elements) == 0 {
		return hash.Digest{}, ErrInvalidProof
	}

	oldLeaves := make([]hash.Digest, len(elements))
	for i, e := range elements {
		oldLeaves[i] = leaf.Hash(e)
	}
	oldElementRoot, err := multiReplay(w, oldLeaves)
	if err != nil {
		return hash.Digest{}, ErrInvalidProof
	}
	if hash.CommitRoot(w.N, oldElementRoot) != root {
		return hash.Digest{}, ErrInvalidProof
	}

	newLeaves := make([]hash.Digest, len(newElements))
	for i, e := range newElements {
		newLeaves[i] = leaf.Hash(e)
	}
	newElementRoot, err := multiReplay(w, newLeaves)
	if err != nil {
		return hash.Digest{}, ErrInvalidProof
	}
	return hash.CommitRoot(w.N, newElementRoot), nil
}

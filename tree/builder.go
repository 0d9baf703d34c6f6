package tree

import (
	"github.com/forestrie/go-vectorproof/hash"
	"github.com/forestrie/go-vectorproof/leaf"
	"github.com/forestrie/go-vectorproof/proof"
)

// Builder accumulates elements and derives proof witnesses, acting as the
// inverse of the proof package: where proof only ever replays a witness
// against a claimed root, Builder holds the full element history needed to
// produce one. Mutating a Builder never invalidates previously issued
// witnesses, since those are immutable snapshots.
type Builder struct {
	mode     hash.Mode
	elements []hash.Digest
	peaks    map[uint64]hash.Digest
}

// NewBuilder returns an empty builder using mode for every combine.
func NewBuilder(mode hash.Mode) *Builder {
	return &Builder{mode: mode, peaks: make(map[uint64]hash.Digest)}
}

// Len returns the number of elements added so far.
func (b *Builder) Len() uint64 {
	return uint64(len(b.elements))
}

// Append adds element, maintaining the frontier peaks incrementally the
// same way mmr.AddHashedLeaf backfills an MMR: fold the new leaf upward
// while a peak of equal height already exists.
func (b *Builder) Append(element hash.Digest) {
	cur := leaf.Hash(element)
	height := uint64(0)
	for {
		existing, ok := b.peaks[height]
		if !ok {
			break
		}
		cur = hash.Combine(b.mode, existing, cur)
		delete(b.peaks, height)
		height++
	}
	b.peaks[height] = cur
	b.elements = append(b.elements, element)
}

// ElementRoot returns the current element-root.
func (b *Builder) ElementRoot() hash.Digest {
	return ElementRoot(b.elements, b.mode)
}

// Root returns the current committed root.
func (b *Builder) Root() hash.Digest {
	return hash.CommitRoot(b.Len(), b.ElementRoot())
}

// levels returns every level of the reduction, levels[0] being leaf hashes
// and levels[len-1] being the single-element-root slice. Recomputed on
// demand: Builder favors simplicity over the incremental bookkeeping a
// production log would want for this path.
func (b *Builder) levels() [][]hash.Digest {
	n := len(b.elements)
	if n == 0 {
		return [][]hash.Digest{{}}
	}
	level := make([]hash.Digest, n)
	for i, e := range b.elements {
		level[i] = leaf.Hash(e)
	}
	levels := [][]hash.Digest{level}
	for len(level) > 1 {
		next := make([]hash.Digest, 0, (len(level)+1)/2)
		for i := 0; i < len(level); i += 2 {
			if i+1 == len(level) {
				next = append(next, level[i])
				break
			}
			next = append(next, hash.Combine(b.mode, level[i], level[i+1]))
		}
		level = next
		levels = append(levels, level)
	}
	return levels
}

// ProveSingle returns the membership witness for the element at index.
func (b *Builder) ProveSingle(index uint64) (proof.SingleWitness, error) {
	n := b.Len()
	if index >= n {
		return proof.SingleWitness{}, proof.ErrInvalidProof
	}
	levels := b.levels()

	w := proof.SingleWitness{N: n}
	idx := index
	upper := n - 1
	for _, level := range levels[:len(levels)-1] {
		if idx == upper && idx%2 == 0 {
			// carry: no sibling, no decommitment needed.
		} else {
			w.Decommitments = append(w.Decommitments, level[idx^1])
		}
		idx >>= 1
		upper >>= 1
	}
	return w, nil
}

// ProveAppend returns the current frontier witness, consumable by
// proof.AppendOne/AppendMany to extend this tree's root.
func (b *Builder) ProveAppend() proof.AppendWitness {
	n := b.Len()
	w := proof.AppendWitness{N: n}
	for h := 63; h >= 0; h-- {
		if n&(uint64(1)<<uint(h)) != 0 {
			w.Decommit = append(w.Decommit, b.peaks[uint64(h)])
		}
	}
	return w
}

// qitem is one live entry in the multi-proof's ring queue: a partial digest,
// the tree index it currently occupies, and how many levels it has already
// climbed (needed to look up that level's length and hence its last index,
// the same "upper" bookkeeping the single-proof replay carries).
type qitem struct {
	digest hash.Digest
	idx    uint64
	depth  int
}

// ProveMulti returns the multi-proof witness for the distinct indices
// (order not significant on input), plus the elements in the strictly
// decreasing index order the returned witness expects at verification
// time.
//
// The witness is built by walking the same FIFO ring queue the verifier's
// replay consumes: seed the queue with the claimed leaves in decreasing
// index order, then repeatedly pop the front item and decide, from its
// (idx, depth), whether it carries unchanged (the level's odd node out),
// combines with the next queue item (its sibling is also claimed), or
// combines with a fresh decommitment — pushing the result to the back.
// Because builder and verifier walk the identical queue discipline, the
// bits and decommitment order they agree on fall out of the tree shape
// alone, not an arbitrary encoding choice.
func (b *Builder) ProveMulti(indices []uint64) ([]hash.Digest, proof.MultiWitness, error) {
	n := b.Len()
	if len(indices) == 0 {
		return nil, proof.MultiWitness{}, proof.ErrInvalidProof
	}
	sortedDesc := append([]uint64(nil), indices...)
	sortUint64Desc(sortedDesc)
	for i, idx := range sortedDesc {
		if idx >= n {
			return nil, proof.MultiWitness{}, proof.ErrInvalidProof
		}
		if i > 0 && sortedDesc[i] == sortedDesc[i-1] {
			return nil, proof.MultiWitness{}, proof.ErrInvalidProof
		}
	}

	levels := b.levels()

	queue := make([]qitem, len(sortedDesc))
	for i, idx := range sortedDesc {
		queue[i] = qitem{digest: levels[0][idx], idx: idx, depth: 0}
	}

	var w proof.MultiWitness
	w.N = n
	bitpos := 0
	for len(queue) > 1 || queue[0].depth < len(levels)-1 {
		a := queue[0]
		queue = queue[1:]
		lastIdx := uint64(len(levels[a.depth]) - 1)

		switch {
		case a.idx == lastIdx && a.idx%2 == 0:
			w.Skips.SetBit(bitpos)
			queue = append(queue, qitem{digest: a.digest, idx: a.idx >> 1, depth: a.depth + 1})
		case len(queue) > 0 && queue[0].depth == a.depth && (queue[0].idx>>1) == (a.idx>>1):
			sibling := queue[0]
			queue = queue[1:]
			w.Flags.SetBit(bitpos)
			combined := hash.Pair(a.digest, sibling.digest)
			queue = append(queue, qitem{digest: combined, idx: a.idx >> 1, depth: a.depth + 1})
		default:
			sibling := levels[a.depth][a.idx^1]
			w.Decommit = append(w.Decommit, sibling)
			combined := hash.Pair(a.digest, sibling)
			queue = append(queue, qitem{digest: combined, idx: a.idx >> 1, depth: a.depth + 1})
		}
		bitpos++
	}
	w.Flags.SetBit(bitpos)
	w.Skips.SetBit(bitpos)

	elements := make([]hash.Digest, len(sortedDesc))
	for i, idx := range sortedDesc {
		elements[i] = b.elements[idx]
	}
	return elements, w, nil
}

// checkMinCombinedIndex enforces that indices includes at least one index
// reaching proof.MinCombinedIndex(n): the invariant that guarantees the
// multi-proof replay touches every frontier peak the append half needs.
// Not every claimed index needs to clear the bar, only the largest.
func checkMinCombinedIndex(indices []uint64, n uint64) error {
	if len(indices) == 0 {
		return proof.ErrInvalidProof
	}
	max := indices[0]
	for _, idx := range indices[1:] {
		if idx > max {
			max = idx
		}
	}
	if max < proof.MinCombinedIndex(n) {
		return proof.ErrInvalidProof
	}
	return nil
}

// ProveCombined returns a CombinedWitness covering indices (at least one of
// which must be >= proof.MinCombinedIndex(Len())), together with the
// elements in the order MultiAndAppend expects.
func (b *Builder) ProveCombined(indices []uint64) ([]hash.Digest, proof.CombinedWitness, error) {
	if err := checkMinCombinedIndex(indices, b.Len()); err != nil {
		return nil, proof.CombinedWitness{}, err
	}
	elements, multi, err := b.ProveMulti(indices)
	if err != nil {
		return nil, proof.CombinedWitness{}, err
	}
	return elements, proof.CombinedWitness{Multi: multi, Append: b.ProveAppend()}, nil
}

// ProveCombinedUpdate returns a witness for overwriting the elements at
// indices with newValues and, in the same step, appending newElements. At
// least one of indices must be >= proof.MinCombinedIndex(Len()).
//
// Unlike ProveCombined, the append half cannot simply be b.ProveAppend():
// when an updated index falls on the current append frontier, the update
// changes that frontier peak's digest, and an append witness taken from the
// pre-update tree would no longer match. This rebuilds a scratch Builder
// over the post-update elements and takes the append witness from there, so
// it is always stated against the frontier the update actually produces.
func (b *Builder) ProveCombinedUpdate(indices []uint64, newValues []hash.Digest) ([]hash.Digest, []hash.Digest, proof.CombinedWitness, error) {
	if len(indices) != len(newValues) {
		return nil, nil, proof.CombinedWitness{}, proof.ErrLengthMismatch
	}
	if err := checkMinCombinedIndex(indices, b.Len()); err != nil {
		return nil, nil, proof.CombinedWitness{}, err
	}
	elements, multi, err := b.ProveMulti(indices)
	if err != nil {
		return nil, nil, proof.CombinedWitness{}, err
	}

	valueByIndex := make(map[uint64]hash.Digest, len(indices))
	for i, idx := range indices {
		valueByIndex[idx] = newValues[i]
	}
	updated := append([]hash.Digest(nil), b.elements...)
	for idx, v := range valueByIndex {
		updated[idx] = v
	}

	sortedDesc := append([]uint64(nil), indices...)
	sortUint64Desc(sortedDesc)
	sortedNewValues := make([]hash.Digest, len(sortedDesc))
	for i, idx := range sortedDesc {
		sortedNewValues[i] = valueByIndex[idx]
	}

	rebased := NewBuilder(b.mode)
	for _, e := range updated {
		rebased.Append(e)
	}

	return elements, sortedNewValues, proof.CombinedWitness{Multi: multi, Append: rebased.ProveAppend()}, nil
}

func sortUint64Desc(s []uint64) {
	// insertion sort: callers pass small claim sets, not large ones.
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j-1] < s[j]; j-- {
			s[j-1], s[j] = s[j], s[j-1]
		}
	}
}

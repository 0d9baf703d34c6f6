package proof

import (
	"testing"

	"github.com/forestrie/go-vectorproof/hash"
	"github.com/forestrie/go-vectorproof/leaf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildFourLeafWitness constructs, by hand, the multi-proof for claiming
// indices {3, 1} (in that, strictly decreasing, order) out of a 4-element
// tree. Replaying the ring queue front-to-back — seeded [leaf3, leaf1], no
// reversal — index 3 needs leaf2 from the witness first (step 0), then
// index 1 needs leaf0 (step 1), and only then do the two partial results,
// now siblings at depth 1, combine with each other (step 2).
func buildFourLeafWitness(e0, e1, e2, e3 hash.Digest) (hash.Digest, MultiWitness) {
	l0, l1, l2, l3 := leaf.Hash(e0), leaf.Hash(e1), leaf.Hash(e2), leaf.Hash(e3)
	elementRoot := hash.Pair(hash.Pair(l0, l1), hash.Pair(l2, l3))
	root := hash.CommitRoot(4, elementRoot)

	var w MultiWitness
	w.N = 4
	w.Flags.SetBit(2)
	w.Flags.SetBit(3)
	w.Skips.SetBit(3)
	w.Decommit = []hash.Digest{l2, l0}
	return root, w
}

func TestVerifyMultiTwoNonAdjacentClaims(t *testing.T) {
	e0, e1, e2, e3 := digestFor(1), digestFor(2), digestFor(3), digestFor(4)
	root, w := buildFourLeafWitness(e0, e1, e2, e3)

	// strictly decreasing index order: index 3 then index 1.
	assert.True(t, VerifyMulti(root, []hash.Digest{e3, e1}, w))
}

func TestVerifyMultiRejectsWrongElement(t *testing.T) {
	e0, e1, e2, e3 := digestFor(1), digestFor(2), digestFor(3), digestFor(4)
	root, w := buildFourLeafWitness(e0, e1, e2, e3)

	assert.False(t, VerifyMulti(root, []hash.Digest{e3, digestFor(99)}, w))
}

func TestUpdateMultiOverwritesBothClaims(t *testing.T) {
	e0, e1, e2, e3 := digestFor(1), digestFor(2), digestFor(3), digestFor(4)
	root, w := buildFourLeafWitness(e0, e1, e2, e3)

	newE3, newE1 := digestFor(40), digestFor(20)
	newRoot, err := UpdateMulti(root, []hash.Digest{e3, e1}, []hash.Digest{newE3, newE1}, w)
	require.NoError(t, err)

	l0, l2 := leaf.Hash(e0), leaf.Hash(e2)
	wantElementRoot := hash.Pair(hash.Pair(l0, leaf.Hash(newE1)), hash.Pair(l2, leaf.Hash(newE3)))
	assert.Equal(t, hash.CommitRoot(4, wantElementRoot), newRoot)
}

func TestUpdateMultiRejectsLengthMismatch(t *testing.T) {
	e0, e1, e2, e3 := digestFor(1), digestFor(2), digestFor(3), digestFor(4)
	root, w := buildFourLeafWitness(e0, e1, e2, e3)

	_, err := UpdateMulti(root, []hash.Digest{e3, e1}, []hash.Digest{digestFor(9)}, w)
	assert.ErrorIs(t, err, ErrLengthMismatch)
}

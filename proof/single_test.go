package proof

import (
	"testing"

	"github.com/forestrie/go-vectorproof/hash"
	"github.com/forestrie/go-vectorproof/leaf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func digestFor(b byte) hash.Digest {
	var d hash.Digest
	d[0] = b
	return d
}

func TestVerifySingleOneElementTree(t *testing.T) {
	e0 := digestFor(1)
	root := hash.CommitRoot(1, leaf.Hash(e0))
	w := SingleWitness{N: 1}

	assert.True(t, VerifySingleSorted(root, 0, e0, w))
}

func TestVerifySingleTwoElementTree(t *testing.T) {
	e0, e1 := digestFor(1), digestFor(2)
	elementRoot := hash.Pair(leaf.Hash(e0), leaf.Hash(e1))
	root := hash.CommitRoot(2, elementRoot)

	w0 := SingleWitness{N: 2, Decommitments: []hash.Digest{leaf.Hash(e1)}}
	w1 := SingleWitness{N: 2, Decommitments: []hash.Digest{leaf.Hash(e0)}}

	assert.True(t, VerifySingleSorted(root, 0, e0, w0))
	assert.True(t, VerifySingleSorted(root, 1, e1, w1))
}

func TestVerifySingleCarryConsumesNoWitness(t *testing.T) {
	e0, e1, e2 := digestFor(1), digestFor(2), digestFor(3)
	pair01 := hash.Pair(leaf.Hash(e0), leaf.Hash(e1))
	elementRoot := hash.Pair(pair01, leaf.Hash(e2))
	root := hash.CommitRoot(3, elementRoot)

	w := SingleWitness{N: 3, Decommitments: []hash.Digest{pair01}}
	require.Len(t, w.Decommitments, 1)
	assert.True(t, VerifySingleSorted(root, 2, e2, w))
}

func TestVerifySingleRejectsWrongElement(t *testing.T) {
	e0, e1 := digestFor(1), digestFor(2)
	elementRoot := hash.Pair(leaf.Hash(e0), leaf.Hash(e1))
	root := hash.CommitRoot(2, elementRoot)
	w := SingleWitness{N: 2, Decommitments: []hash.Digest{leaf.Hash(e1)}}

	assert.False(t, VerifySingleSorted(root, 0, digestFor(99), w))
}

func TestVerifySingleRejectsEmptyTreeMismatch(t *testing.T) {
	e0 := digestFor(1)
	assert.False(t, VerifySingleSorted(hash.Zero, 0, e0, SingleWitness{N: 1}))
}

func TestUpdateSingleReplaysWitnessAgainstNewElement(t *testing.T) {
	e0, e1 := digestFor(1), digestFor(2)
	elementRoot := hash.Pair(leaf.Hash(e0), leaf.Hash(e1))
	root := hash.CommitRoot(2, elementRoot)
	w := SingleWitness{N: 2, Decommitments: []hash.Digest{leaf.Hash(e1)}}

	newE0 := digestFor(42)
	newRoot, err := UpdateSingleSorted(root, 0, e0, newE0, w)
	require.NoError(t, err)

	wantElementRoot := hash.Pair(leaf.Hash(newE0), leaf.Hash(e1))
	assert.Equal(t, hash.CommitRoot(2, wantElementRoot), newRoot)
}

func TestUpdateSingleRejectsMismatchedRoot(t *testing.T) {
	e0, e1 := digestFor(1), digestFor(2)
	w := SingleWitness{N: 2, Decommitments: []hash.Digest{leaf.Hash(e1)}}

	_, err := UpdateSingleSorted(digestFor(7), 0, e0, digestFor(8), w)
	assert.ErrorIs(t, err, ErrInvalidProof)
}

package proof

import (
	"testing"

	"github.com/forestrie/go-vectorproof/hash"
	"github.com/forestrie/go-vectorproof/leaf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendManyFromFiveToEight(t *testing.T) {
	elems := make([]hash.Digest, 8)
	for i := range elems {
		elems[i] = digestFor(byte(i + 1))
	}
	leaves := make([]hash.Digest, 8)
	for i, e := range elems {
		leaves[i] = leaf.Hash(e)
	}

	p01 := hash.Pair(leaves[0], leaves[1])
	p23 := hash.Pair(leaves[2], leaves[3])
	p0123 := hash.Pair(p01, p23)

	oldElementRoot := hash.Pair(p0123, leaves[4])
	oldRoot := hash.CommitRoot(5, oldElementRoot)

	w := AppendWitness{N: 5, Decommit: []hash.Digest{p0123, leaves[4]}}

	newRoot, err := AppendMany(hash.Sorted, oldRoot, elems[5:8], w)
	require.NoError(t, err)

	p45 := hash.Pair(leaves[4], leaves[5])
	p67 := hash.Pair(leaves[6], leaves[7])
	p4567 := hash.Pair(p45, p67)
	wantElementRoot := hash.Pair(p0123, p4567)

	assert.Equal(t, hash.CommitRoot(8, wantElementRoot), newRoot)
}

func TestAppendOneOntoEmptyTree(t *testing.T) {
	e0 := digestFor(7)
	newRoot, err := AppendOne(hash.Sorted, hash.Zero, e0, AppendWitness{N: 0})
	require.NoError(t, err)
	assert.Equal(t, hash.CommitRoot(1, leaf.Hash(e0)), newRoot)
}

func TestAppendManyRejectsDecommitmentCountMismatch(t *testing.T) {
	_, err := AppendMany(hash.Sorted, digestFor(9), []hash.Digest{digestFor(1)}, AppendWitness{N: 5, Decommit: []hash.Digest{digestFor(2)}})
	assert.Error(t, err)
}

func TestMinCombinedIndexClearsLowestSetBit(t *testing.T) {
	cases := map[uint64]uint64{
		1: 0, 2: 0, 3: 2, 4: 0, 5: 4, 8: 0,
		23: 22, 48: 32, 365: 364, 384: 256, 580: 576, 1792: 1536,
	}
	for n, want := range cases {
		assert.Equal(t, want, MinCombinedIndex(n), "n=%d", n)
	}
}

package tree

import (
	"testing"

	"github.com/forestrie/go-vectorproof/hash"
	"github.com/forestrie/go-vectorproof/leaf"
	"github.com/stretchr/testify/assert"
)

func elementAt(b byte) hash.Digest {
	var d hash.Digest
	d[0] = b
	return d
}

func TestElementRootEmptyIsZero(t *testing.T) {
	assert.Equal(t, hash.Zero, ElementRoot(nil, hash.Sorted))
}

func TestRootEmptyIsZero(t *testing.T) {
	assert.Equal(t, hash.Zero, Root(nil, hash.Sorted))
}

func TestRootNonEmptyEncodesCount(t *testing.T) {
	elems := []hash.Digest{elementAt(1), elementAt(2), elementAt(3)}
	root := Root(elems, hash.Sorted)
	assert.NotEqual(t, hash.Zero, root)
	assert.Equal(t, hash.CommitRoot(3, ElementRoot(elems, hash.Sorted)), root)
}

func TestElementRootOddCountCarriesLastUnchanged(t *testing.T) {
	elems := []hash.Digest{elementAt(1), elementAt(2), elementAt(3)}
	pairOfFirstTwo := ElementRoot(elems[:2], hash.Sorted)
	want := hash.Pair(pairOfFirstTwo, leaf.Hash(elems[2]))
	assert.Equal(t, want, ElementRoot(elems, hash.Sorted))
}
